package entity

// AccountInfo is the best-effort account identity recovered from a bill.
// At most one is kept per batch of documents; any field may be empty.
type AccountInfo struct {
	AccountNumber  string `json:"account_number"`
	CustomerName   string `json:"customer_name"`
	ServiceAddress string `json:"service_address"`
	CityStateZip   string `json:"city_state_zip"`
}

// Empty reports whether nothing was recovered at all.
func (a AccountInfo) Empty() bool {
	return a.AccountNumber == "" && a.CustomerName == "" &&
		a.ServiceAddress == "" && a.CityStateZip == ""
}
