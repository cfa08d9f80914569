package deliverable

import "github.com/fieldcraft/cinequote/internal/money"

// ScopedMultiplier reports the effect of multiplier-type modifiers. The
// delta is kept separate from the per-line amounts so breakdowns can show
// it as its own row; stored line item amounts are never rewritten.
type ScopedMultiplier struct {
	Multiplier           float64  `json:"multiplier"`
	AppliedToLineItemIDs []string `json:"applied_to_line_item_ids"`
	MultiplierAmount     float64  `json:"multiplier_amount"`
}

// applyScopedMultiplier compounds every selected multiplier modifier and
// applies the product only to lines flagged eligible (production days and
// execution scope, never deliverables, post minimums or fixed add-ons with
// the flag unset).
func applyScopedMultiplier(items []LineItem, selections Selections, catalog Catalog) ScopedMultiplier {
	multiplier := 1.0
	for _, m := range selections.visibleModifiers(catalog) {
		if m.Pricing.Type == PricingMultiplier && m.Pricing.Value > 0 {
			multiplier *= m.Pricing.Value
		}
	}

	result := ScopedMultiplier{Multiplier: multiplier, AppliedToLineItemIDs: []string{}}
	if multiplier == 1 {
		return result
	}

	var base float64
	for _, item := range items {
		if item.IsSection || !item.EligibleForMultiplier {
			continue
		}
		base += item.Amount
		result.AppliedToLineItemIDs = append(result.AppliedToLineItemIDs, item.ID)
	}

	result.MultiplierAmount = money.Round2(base * (multiplier - 1))
	return result
}
