package deliverable

import (
	"math"

	"github.com/fieldcraft/cinequote/internal/money"
)

// buildLineItems expands the selections into ordered, sectioned line items:
// Production, Deliverables, Post-Production, Add-ons. Downstream export
// relies on this exact order. Rule violations return domain errors.
func buildLineItems(selections Selections, catalog Catalog, effectiveDays float64) ([]LineItem, error) {
	scopeIdx, ok := catalog.scopeIndex(selections.ExecutionScopeID)
	if !ok {
		return nil, domainErrorf("execution scope %q not found in catalog", selections.ExecutionScopeID)
	}
	scope := catalog.ExecutionScopes[scopeIdx]

	var items []LineItem

	if effectiveDays > 0 {
		items = append(items, section("section_production", "Production"))
		items = append(items, LineItem{
			ID:                    "production_days",
			Kind:                  KindProductionDay,
			Label:                 "Production days",
			Quantity:              effectiveDays,
			Unit:                  "day",
			UnitPrice:             catalog.Rules.BaseDayRate,
			Amount:                money.Round2(effectiveDays * catalog.Rules.BaseDayRate),
			EligibleForMultiplier: true,
		})
		items = append(items, LineItem{
			ID:                    "execution_scope:" + scope.ID,
			Kind:                  KindExecutionScope,
			Label:                 scope.Label,
			Quantity:              effectiveDays,
			Unit:                  "day",
			UnitPrice:             scope.PerDayAdd,
			Amount:                money.Round2(effectiveDays * scope.PerDayAdd),
			EligibleForMultiplier: true,
		})
	}

	if len(selections.Deliverables) > 0 {
		items = append(items, section("section_deliverables", "Deliverables"))
		for _, sel := range selections.Deliverables {
			d, ok := catalog.deliverable(sel.DeliverableID)
			if !ok {
				return nil, domainErrorf("deliverable %q not found in catalog", sel.DeliverableID)
			}
			if d.Constraints.RequiresPost && !selections.PostRequested {
				return nil, domainErrorf("deliverable %q requires post-production, which was not requested", d.Label)
			}
			if d.Constraints.MinExecutionScope != "" {
				minIdx, ok := catalog.scopeIndex(d.Constraints.MinExecutionScope)
				if !ok {
					return nil, domainErrorf("execution scope %q not found in catalog", d.Constraints.MinExecutionScope)
				}
				if minIdx > scopeIdx {
					return nil, domainErrorf("deliverable %q requires execution scope %q or higher", d.Label, catalog.ExecutionScopes[minIdx].Label)
				}
			}

			items = append(items, LineItem{
				ID:        "deliverable:" + d.ID,
				Kind:      KindDeliverable,
				Label:     d.Label,
				Quantity:  sel.Quantity,
				Unit:      d.Unit,
				UnitPrice: deliverableUnitPrice(sel, selections, d),
				Amount:    money.Round2(sel.Quantity * deliverableUnitPrice(sel, selections, d)),
			})
		}
	}

	if selections.PostRequested && !selections.postOnly() {
		if post := combinedPostMinimum(selections, catalog); post > 0 {
			items = append(items,
				section("section_post", "Post-Production"),
				LineItem{
					ID:        "post_minimum",
					Kind:      KindPostMinimum,
					Label:     "Post-production minimum",
					Quantity:  1,
					Unit:      "project",
					UnitPrice: money.Round2(post),
					Amount:    money.Round2(post),
				})
		}
	}

	var addons []LineItem
	for _, m := range selections.visibleModifiers(catalog) {
		if m.Pricing.Type != PricingFixed {
			// Multiplier modifiers apply globally to eligible lines and
			// are reported as a pricing delta, never rendered here.
			continue
		}
		addons = append(addons, LineItem{
			ID:                    "modifier:" + m.ID,
			Kind:                  KindModifierFixed,
			Label:                 m.Label,
			Quantity:              1,
			Unit:                  m.Pricing.Unit,
			UnitPrice:             m.Pricing.Value,
			Amount:                money.Round2(m.Pricing.Value),
			EligibleForMultiplier: m.EligibleForMultiplier,
		})
	}
	if len(addons) > 0 {
		items = append(items, section("section_addons", "Add-ons"))
		items = append(items, addons...)
	}

	return items, nil
}

// deliverableUnitPrice: a typed-in custom rate wins, then a per-deliverable
// override, then the catalog price.
func deliverableUnitPrice(sel SelectedDeliverable, selections Selections, d Deliverable) float64 {
	if sel.CustomRate != nil {
		return *sel.CustomRate
	}
	if v, ok := selections.UnitPriceOverrides[d.ID]; ok {
		return v
	}
	return d.UnitPrice
}

// combinedPostMinimum aggregates one post-minimum charge across all selected
// deliverables: per unit, the larger of the deliverable's own minimum and
// the catalog-wide minimum, unless explicitly overridden.
func combinedPostMinimum(selections Selections, catalog Catalog) float64 {
	var total float64
	for _, sel := range selections.Deliverables {
		d, ok := catalog.deliverable(sel.DeliverableID)
		if !ok {
			continue
		}
		per := math.Max(d.PostMinimum, catalog.Rules.MinimumPostPerDeliverable)
		if sel.PostMinimumOverride != nil {
			per = *sel.PostMinimumOverride
		}
		total += per * sel.Quantity
	}
	return total
}
