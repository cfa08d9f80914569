package deliverable

// EffectiveProductionDays resolves how many production days the job bills.
// Locked-day deliverables can only raise the requested day count (the
// highest locked requirement wins, requirements don't stack). A result
// still below the strictest minProductionDays constraint is a hard error,
// never silently corrected.
func EffectiveProductionDays(selections Selections, catalog Catalog) (float64, error) {
	if !selections.includesProductionDays() {
		return 0, nil
	}

	days := selections.ProductionDays
	var minDays float64
	for _, sel := range selections.Deliverables {
		d, ok := catalog.deliverable(sel.DeliverableID)
		if !ok {
			return 0, domainErrorf("deliverable %q not found in catalog", sel.DeliverableID)
		}
		if d.ProductionDayPolicy.Mode == DayPolicyLocked {
			locked := d.ProductionDayPolicy.ProductionDaysLocked * sel.Quantity
			if locked > days {
				days = locked
			}
		}
		if d.Constraints.MinProductionDays > minDays {
			minDays = d.Constraints.MinProductionDays
		}
	}

	if days < minDays {
		return 0, domainErrorf("selected deliverables require at least %g production days, got %g", minDays, days)
	}
	return days, nil
}
