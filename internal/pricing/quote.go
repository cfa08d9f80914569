package pricing

import (
	"fmt"
	"strings"

	"github.com/fieldcraft/cinequote/internal/money"
)

// CalculateQuote prices a job from the role rate catalog, gear catalog and
// settings. It returns nil when the catalogs or settings haven't been
// supplied yet (nil slices, nil settings): the caller invokes this reactively
// on every form change, so "not enough data to price" is a sentinel, not an
// error. Empty-but-present catalogs still price.
//
// The optional deliverableEstimate feeds the aggregated deliverable quantity
// of the deliverable engine into per-5-minute editing roles.
func CalculateQuote(form FormData, dayRates []RateDefinition, gearCosts []GearItem, settings *Settings, deliverableEstimate *DeliverableEstimate) *QuoteResult {
	if dayRates == nil || gearCosts == nil || settings == nil {
		return nil
	}

	hours := billedHours(form)
	expMult := experienceMultiplier(form, *settings)
	industry := orOne(form.IndustryIndex)
	region := orOne(form.RegionMultiplier)
	mult := expMult * industry * region

	var (
		items         []LineItem
		laborSubtotal float64
	)

	if form.SinglePriceEnabled {
		laborSubtotal = form.SinglePrice
		items = []LineItem{{Description: "Fixed Price Quote", Amount: money.Round2(laborSubtotal)}}
	} else {
		var production, post []LineItem
		for _, role := range form.SelectedRoles {
			rate, ok := findRate(dayRates, role.RoleID)
			if !ok {
				continue
			}
			if deliverableEstimate != nil && rate.UnitType == UnitPer5Min && deliverableEstimate.TotalQuantity > 0 {
				role.DeliverableCount = deliverableEstimate.TotalQuantity
			}
			amount := RoleCost(role, rate, form.DayType, hours, *settings) * mult
			laborSubtotal += amount

			item := LineItem{Description: roleDescription(role, rate), Amount: money.Round2(amount)}
			if isPostProduction(rate) {
				post = append(post, item)
			} else {
				production = append(production, item)
			}
		}

		if form.AudioPostEnabled {
			if rate, ok := findRate(dayRates, AudioPostRateID); ok {
				amount := audioPostRate(rate, form.DayType) * mult
				laborSubtotal += amount
				post = append(post, LineItem{Description: rate.Role, Amount: money.Round2(amount)})
			}
		}

		if len(production) > 0 {
			items = append(items, LineItem{Description: "Production & Crew", IsSection: true})
			items = append(items, production...)
		}
		if len(post) > 0 {
			items = append(items, LineItem{Description: "Post-Production", IsSection: true})
			items = append(items, post...)
		}
	}

	overhead := laborSubtotal * settings.OverheadPercent / 100
	profit := laborSubtotal * settings.ProfitMarginPercent / 100
	laborWithMarkup := laborSubtotal + overhead + profit

	gear := gearAmortized(form, gearCosts, *settings, hours)
	travel := form.TravelMiles * settings.MileageRate
	rentals := form.RentalCost

	var usage float64
	if form.UsageRightsEnabled {
		usage = form.UsageRightsCost
	}

	var talent float64
	if form.TalentEnabled {
		talent = form.TalentPrimaryCount*form.TalentPrimaryRate + form.TalentExtraCount*form.TalentExtraRate
	}

	subtotal := laborWithMarkup + gear + travel + rentals + usage + talent
	if form.CustomPrice != nil {
		subtotal = *form.CustomPrice
	}

	// Rush fee, nonprofit discount and the custom discount are each taken
	// off the same pre-adjustment subtotal and then combined. They are not
	// chained; whether that is intended is an open product question, kept
	// as observed.
	var rush, nonprofit float64
	if form.RushEnabled {
		rush = subtotal * settings.RushFeePercent / 100
	}
	if form.NonprofitEnabled {
		nonprofit = subtotal * settings.NonprofitDiscountPercent / 100
	}
	customDiscount := subtotal * form.CustomDiscountPercent / 100

	adjusted := subtotal + rush - nonprofit - customDiscount
	taxable := adjusted
	if !settings.TaxTravel {
		taxable -= travel
	}
	tax := taxable * settings.TaxRatePercent / 100

	total := money.Round2(adjusted + tax)
	deposit := money.Round2(total * settings.DepositPercent / 100)

	return &QuoteResult{
		LineItems:               items,
		LaborSubtotal:           money.Round2(laborSubtotal),
		Overhead:                money.Round2(overhead),
		ProfitMargin:            money.Round2(profit),
		LaborWithOverheadProfit: money.Round2(laborWithMarkup),
		GearAmortized:           money.Round2(gear),
		TravelCost:              money.Round2(travel),
		RentalCosts:             money.Round2(rentals),
		UsageRightsCost:         money.Round2(usage),
		TalentFees:              money.Round2(talent),
		Subtotal:                money.Round2(subtotal),
		RushFee:                 money.Round2(rush),
		NonprofitDiscount:       money.Round2(nonprofit),
		CustomDiscount:          money.Round2(customDiscount),
		TaxableAmount:           money.Round2(taxable),
		Tax:                     money.Round2(tax),
		Total:                   total,
		DepositDue:              deposit,
		BalanceDue:              money.Round2(total - deposit),
		DayType:                 form.DayType,
		Hours:                   hours,
		ExperienceMultiplier:    expMult,
		AppliedMultipliers: AppliedMultipliers{
			Experience: expMult,
			Industry:   industry,
			Region:     region,
		},
	}
}

func billedHours(form FormData) float64 {
	switch form.DayType {
	case DayHalf:
		return fullDayHours / 2
	case DayCustom:
		return form.CustomHours
	default:
		return fullDayHours
	}
}

func experienceMultiplier(form FormData, settings Settings) float64 {
	// A custom multiplier typed by the user always wins over the preset.
	if form.CustomMultiplier != nil && *form.CustomMultiplier > 0 {
		return *form.CustomMultiplier
	}
	if m, ok := settings.ExperienceLevels[form.ExperienceLevel]; ok && m > 0 {
		return m
	}
	return 1
}

func orOne(v float64) float64 {
	if v <= 0 {
		return 1
	}
	return v
}

func findRate(dayRates []RateDefinition, id string) (RateDefinition, bool) {
	for _, r := range dayRates {
		if r.ID == id {
			return r, true
		}
	}
	return RateDefinition{}, false
}

// isPostProduction prefers the explicit catalog tag. Untagged rates fall back
// to the legacy heuristic: output-priced unit types and editor/revision role
// names bill as post-production.
func isPostProduction(rate RateDefinition) bool {
	switch rate.Category {
	case CategoryPostProduction:
		return true
	case CategoryProduction:
		return false
	}
	if rate.UnitType == UnitPer5Min || rate.UnitType == UnitPerRequest {
		return true
	}
	name := strings.ToLower(rate.Role)
	return strings.Contains(name, "editor") || strings.Contains(name, "revision")
}

func roleDescription(role SelectedRole, rate RateDefinition) string {
	if rate.UnitType == UnitDay && role.CrewQty > 1 {
		return fmt.Sprintf("%s (crew of %g)", rate.Role, role.CrewQty)
	}
	return rate.Role
}

func audioPostRate(rate RateDefinition, dayType DayType) float64 {
	if dayType == DayHalf {
		return rate.HalfDayRate
	}
	return rate.FullDayRate
}

func gearAmortized(form FormData, gearCosts []GearItem, settings Settings, hours float64) float64 {
	if !form.GearEnabled {
		return 0
	}
	amortDays := settings.GearAmortizationDays
	if amortDays <= 0 {
		amortDays = 1
	}

	selected := make(map[string]bool, len(form.SelectedGearIDs))
	for _, id := range form.SelectedGearIDs {
		selected[id] = true
	}

	var total float64
	for _, item := range gearCosts {
		// With no explicit selection the default-included kit applies.
		include := selected[item.ID]
		if form.SelectedGearIDs == nil {
			include = item.IncludeByDefault
		}
		if !include {
			continue
		}
		total += item.TotalInvestment / amortDays * (hours / fullDayHours)
	}
	return total
}
