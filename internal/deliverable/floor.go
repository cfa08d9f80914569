package deliverable

import "github.com/fieldcraft/cinequote/internal/money"

// applyMinimumEngagement raises the quote to the catalog's minimum project
// subtotal, recording the shortfall as its own visible line item. Post-only
// engagements are exempt: the floor guarantees a minimum for jobs that put
// a crew in the field.
func applyMinimumEngagement(items []LineItem, rules Rules, includeProductionDays bool) ([]LineItem, float64) {
	if !includeProductionDays || rules.MinimumProjectSubtotal <= 0 {
		return items, 0
	}

	subtotal := lineSubtotal(items)
	if subtotal >= rules.MinimumProjectSubtotal {
		return items, 0
	}

	shortfall := money.Round2(rules.MinimumProjectSubtotal - subtotal)
	items = append(items, LineItem{
		ID:     "price_floor",
		Kind:   KindPriceFloor,
		Label:  "Minimum project engagement",
		Amount: shortfall,
	})
	return items, shortfall
}

// lineSubtotal sums all priced lines, excluding any floor adjustment.
func lineSubtotal(items []LineItem) float64 {
	var total float64
	for _, item := range items {
		if item.IsSection || item.Kind == KindPriceFloor {
			continue
		}
		total += item.Amount
	}
	return money.Round2(total)
}
