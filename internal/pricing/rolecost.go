package pricing

import "math"

// RoleCost computes the pre-multiplier cost of one selected role. The formula
// is chosen strictly by the rate's unit type; selection fields that don't
// apply to that type are ignored. Missing numeric fields price as zero —
// the engine never fails on incomplete selections.
func RoleCost(role SelectedRole, rate RateDefinition, dayType DayType, customHours float64, settings Settings) float64 {
	switch rate.UnitType {
	case UnitDay:
		return dayCost(role, rate, dayType, customHours, settings)
	case UnitPer5Min:
		return per5MinCost(role, rate, dayType)
	case UnitPerRequest:
		return role.Requests * bestRate(rate)
	case UnitFlat:
		// Flat fees ignore headcount and quantity entirely.
		return bestRate(rate)
	default:
		return 0
	}
}

func dayCost(role SelectedRole, rate RateDefinition, dayType DayType, customHours float64, settings Settings) float64 {
	// Explicit half/full day counts on the role override the global day
	// type, whatever it is set to.
	if role.HalfDays != nil || role.FullDays != nil {
		var half, full float64
		if role.HalfDays != nil {
			half = *role.HalfDays
		}
		if role.FullDays != nil {
			full = *role.FullDays
		}
		return role.CrewQty * (half*rate.HalfDayRate + full*rate.FullDayRate)
	}

	switch dayType {
	case DayHalf:
		return role.CrewQty * rate.HalfDayRate
	case DayCustom:
		// Hours up to the standard day prorate against the full-day rate;
		// hours beyond it bill at the hourly equivalent times the overtime
		// multiplier. This is an excess-of-standard-day policy, not a
		// plain hourly rate.
		prorata := math.Min(customHours, fullDayHours) / fullDayHours * rate.FullDayRate * role.CrewQty
		var overtime float64
		if customHours > fullDayHours {
			m := settings.OvertimeMultiplier
			if m <= 0 {
				m = 1
			}
			overtime = rate.FullDayRate / fullDayHours * (customHours - fullDayHours) * m * role.CrewQty
		}
		return prorata + overtime
	default:
		return role.CrewQty * rate.FullDayRate
	}
}

func per5MinCost(role SelectedRole, rate RateDefinition, dayType DayType) float64 {
	blocks := math.Ceil(role.MinutesOutput / 5)

	// The half/full "day" rates double as the per-block price keyed by day
	// type. For custom or unset day types the higher of the two applies;
	// that fallback has no stated business rationale but is the observed
	// behavior, kept pending product clarification.
	var perBlock float64
	switch {
	case dayType == DayHalf && rate.HalfDayRate > 0:
		perBlock = rate.HalfDayRate
	case dayType == DayFull && rate.FullDayRate > 0:
		perBlock = rate.FullDayRate
	default:
		perBlock = bestRate(rate)
	}

	count := role.DeliverableCount
	if count <= 0 {
		count = 1
	}
	return blocks * perBlock * count
}

func bestRate(rate RateDefinition) float64 {
	return math.Max(rate.HalfDayRate, rate.FullDayRate)
}
