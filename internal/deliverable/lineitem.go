package deliverable

// Line item kinds.
const (
	KindSection        = "section"
	KindProductionDay  = "production_day"
	KindExecutionScope = "execution_scope"
	KindDeliverable    = "deliverable"
	KindPostMinimum    = "post_minimum"
	KindModifierFixed  = "modifier_fixed"
	KindPriceFloor     = "price_floor"
)

// LineItem is one row of the itemized quote. For priced kinds,
// Amount == Quantity * UnitPrice; section markers and the price floor
// carry an amount only.
type LineItem struct {
	ID                    string  `json:"id"`
	Kind                  string  `json:"kind"`
	Label                 string  `json:"label"`
	Quantity              float64 `json:"quantity,omitempty"`
	Unit                  string  `json:"unit,omitempty"`
	UnitPrice             float64 `json:"unit_price,omitempty"`
	Amount                float64 `json:"amount"`
	EligibleForMultiplier bool    `json:"eligible_for_multiplier,omitempty"`
	IsSection             bool    `json:"is_section,omitempty"`
}

func section(id, label string) LineItem {
	return LineItem{ID: id, Kind: KindSection, Label: label, IsSection: true}
}
