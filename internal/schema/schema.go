package schema

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/utilibill/bills-tracker/internal/entity"
)

// BuildBillRecordSchema returns a JSON-Schema (draft 2020-12 subset) for the
// assembled record. It is a sanity gate, not a completeness check: every
// numeric field may legitimately be 0 and every date absent, so the schema
// constrains types and signs only.
func BuildBillRecordSchema() map[string]any {
	date := map[string]any{"type": "string", "pattern": `^\d{4}-\d{2}-\d{2}T`}
	number := map[string]any{"type": "number"}

	charges := func(extra map[string]any) map[string]any {
		props := map[string]any{
			"basic_service_charge": number,
			"delivery_rate":        number,
			"delivery_charge":      number,
			"supply_rate":          number,
			"supply_charge":        number,
			"total_delivery":       number,
			"total_supply":         number,
			"total_taxes":          number,
			"total_cost":           number,
		}
		for k, v := range extra {
			props[k] = v
		}
		return map[string]any{"type": "object", "properties": props}
	}

	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"file_name":      map[string]any{"type": "string", "minLength": 1},
			"statement_date": date,
			"service_start":  date,
			"service_end":    date,
			"days":           map[string]any{"type": "integer", "minimum": 0},
			"electric": charges(map[string]any{
				"usage_kwh":         number,
				"transition_rate":   number,
				"transition_charge": number,
				"sbc_rate":          number,
				"sbc_charge":        number,
			}),
			"gas":                   charges(map[string]any{"usage_therms": number}),
			"total_energy_charges":  number,
			"miscellaneous_charges": number,
			"amount_due":            number,
		},
		"required": []string{"file_name", "days", "electric", "gas"},
	}
}

// ValidateBillRecord marshals rec and validates it against the record schema.
func ValidateBillRecord(rec entity.BillRecord) error {
	data, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("marshal record: %w", err)
	}
	return ValidateJSONAgainstSchema(BuildBillRecordSchema(), data)
}

// ValidateJSONAgainstSchema validates "data" against "schemaMap".
func ValidateJSONAgainstSchema(schemaMap map[string]any, data []byte) error {
	b, err := json.Marshal(schemaMap)
	if err != nil {
		return fmt.Errorf("marshal schema: %w", err)
	}
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("schema.json", bytes.NewReader(b)); err != nil {
		return fmt.Errorf("add schema: %w", err)
	}
	schema, err := compiler.Compile("schema.json")
	if err != nil {
		return fmt.Errorf("compile schema: %w", err)
	}
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("unmarshal data: %w", err)
	}
	if err := schema.Validate(v); err != nil {
		return fmt.Errorf("json does not match schema: %w", err)
	}
	return nil
}
