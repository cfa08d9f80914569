package deliverable

import "fmt"

// buildSummary assembles the client-facing estimate summary: category and
// scope labels plus deliverable/modifier lists, with quantities but no
// prices.
func buildSummary(selections Selections, catalog Catalog, category ProductionCategory) EstimateSummary {
	summary := EstimateSummary{
		CategoryLabel: category.Label,
		Deliverables:  []string{},
		Modifiers:     []string{},
	}

	if idx, ok := catalog.scopeIndex(selections.ExecutionScopeID); ok {
		summary.ScopeLabel = catalog.ExecutionScopes[idx].Label
	}

	for _, sel := range selections.Deliverables {
		d, ok := catalog.deliverable(sel.DeliverableID)
		if !ok {
			continue
		}
		if sel.Quantity > 1 {
			summary.Deliverables = append(summary.Deliverables, fmt.Sprintf("%s ×%g", d.Label, sel.Quantity))
		} else {
			summary.Deliverables = append(summary.Deliverables, d.Label)
		}
	}

	for _, m := range selections.visibleModifiers(catalog) {
		summary.Modifiers = append(summary.Modifiers, m.Label)
	}

	return summary
}
