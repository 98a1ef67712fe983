package entity

import (
	"time"

	"github.com/google/uuid"
)

// BillRecord is the typed result of extracting one bill document. Every
// numeric field defaults to 0 and every date to nil; "not found" is a valid
// terminal state, never an error.
type BillRecord struct {
	ID                   uuid.UUID       `json:"id,omitempty"`
	FileName             string          `json:"file_name"`
	StatementDate        *time.Time      `json:"statement_date,omitempty"`
	ServiceStart         *time.Time      `json:"service_start,omitempty"`
	ServiceEnd           *time.Time      `json:"service_end,omitempty"`
	Days                 int             `json:"days"`
	Electric             ElectricCharges `json:"electric"`
	Gas                  GasCharges      `json:"gas"`
	TotalEnergyCharges   float64         `json:"total_energy_charges"`
	MiscellaneousCharges float64         `json:"miscellaneous_charges"`
	AmountDue            float64         `json:"amount_due"`
	CreatedAt            time.Time       `json:"created_at,omitempty"`
}

// ElectricCharges holds the electricity portion of a bill.
type ElectricCharges struct {
	UsageKWh           float64 `json:"usage_kwh"`
	BasicServiceCharge float64 `json:"basic_service_charge"`
	DeliveryRate       float64 `json:"delivery_rate"`
	DeliveryCharge     float64 `json:"delivery_charge"`
	TransitionRate     float64 `json:"transition_rate"`
	TransitionCharge   float64 `json:"transition_charge"`
	SBCRate            float64 `json:"sbc_rate"`
	SBCCharge          float64 `json:"sbc_charge"`
	SupplyRate         float64 `json:"supply_rate"`
	SupplyCharge       float64 `json:"supply_charge"`
	TotalDelivery      float64 `json:"total_delivery"`
	TotalSupply        float64 `json:"total_supply"`
	TotalTaxes         float64 `json:"total_taxes"`
	TotalCost          float64 `json:"total_cost"`
}

// GasCharges holds the natural gas portion of a bill. Usage is in therms
// (CCF on some layouts; the extractor accepts both units).
type GasCharges struct {
	UsageTherms        float64 `json:"usage_therms"`
	BasicServiceCharge float64 `json:"basic_service_charge"`
	DeliveryRate       float64 `json:"delivery_rate"`
	DeliveryCharge     float64 `json:"delivery_charge"`
	SupplyRate         float64 `json:"supply_rate"`
	SupplyCharge       float64 `json:"supply_charge"`
	TotalDelivery      float64 `json:"total_delivery"`
	TotalSupply        float64 `json:"total_supply"`
	TotalTaxes         float64 `json:"total_taxes"`
	TotalCost          float64 `json:"total_cost"`
}
