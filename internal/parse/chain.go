package parse

// RateCharge pairs a unit rate with the billed amount for one charge type.
type RateCharge struct {
	Rate   float64
	Charge float64
}

// matcher resolves one textual encoding of a charge. ok reports a usable
// match. A resolved rate of exactly 0 is the "not resolved" sentinel:
// matchers report ok=false for it so the next encoding in the chain is tried.
// A legitimately free charge line is therefore skipped too; that mirrors the
// source data's behavior and is pinned by tests rather than "fixed".
type matcher func(text string) (RateCharge, bool)

// firstMatch runs matchers in order and returns the first hit, or a zero
// RateCharge when no encoding matched.
func firstMatch(text string, matchers ...matcher) RateCharge {
	for _, m := range matchers {
		if rc, ok := m(text); ok {
			return rc
		}
	}
	return RateCharge{}
}
