package pricing

import (
	"math"
	"reflect"
	"testing"
)

func baseCatalog() []RateDefinition {
	return []RateDefinition{
		{ID: "r1", Role: "Videographer", UnitType: UnitDay, HalfDayRate: 1000, FullDayRate: 2000, Active: true},
		{ID: "ed", Role: "Editor", UnitType: UnitPer5Min, HalfDayRate: 40, FullDayRate: 50, Active: true},
		{ID: "audio_post", Role: "Audio Pre/Post-Production", UnitType: UnitFlat, HalfDayRate: 300, FullDayRate: 500, Active: true},
	}
}

func oneRoleForm() FormData {
	return FormData{
		DayType:       DayFull,
		SelectedRoles: []SelectedRole{{RoleID: "r1", CrewQty: 1}},
	}
}

func TestCalculateQuote_MissingInputsReturnNil(t *testing.T) {
	form := oneRoleForm()
	settings := &Settings{}

	if got := CalculateQuote(form, nil, []GearItem{}, settings, nil); got != nil {
		t.Fatalf("expected nil result without day rates, got %+v", got)
	}
	if got := CalculateQuote(form, baseCatalog(), nil, settings, nil); got != nil {
		t.Fatalf("expected nil result without gear catalog, got %+v", got)
	}
	if got := CalculateQuote(form, baseCatalog(), []GearItem{}, nil, nil); got != nil {
		t.Fatalf("expected nil result without settings, got %+v", got)
	}
}

func TestCalculateQuote_BareFullDay(t *testing.T) {
	// Empty (but present) gear catalog and zeroed settings still price.
	result := CalculateQuote(oneRoleForm(), baseCatalog(), []GearItem{}, &Settings{}, nil)
	if result == nil {
		t.Fatal("expected a result")
	}

	nearlyEqual(t, "laborSubtotal", result.LaborSubtotal, 2000)
	nearlyEqual(t, "subtotal", result.Subtotal, 2000)
	nearlyEqual(t, "total", result.Total, 2000)
	nearlyEqual(t, "depositDue", result.DepositDue, 0)
	nearlyEqual(t, "balanceDue", result.BalanceDue, 2000)
	nearlyEqual(t, "hours", result.Hours, 10)
}

func TestCalculateQuote_CustomHoursOvertime(t *testing.T) {
	form := oneRoleForm()
	form.DayType = DayCustom
	form.CustomHours = 12

	result := CalculateQuote(form, baseCatalog(), []GearItem{}, &Settings{OvertimeMultiplier: 1.5}, nil)
	if result == nil {
		t.Fatal("expected a result")
	}
	nearlyEqual(t, "laborSubtotal", result.LaborSubtotal, 2600)
	nearlyEqual(t, "total", result.Total, 2600)
}

func TestCalculateQuote_Idempotent(t *testing.T) {
	form := oneRoleForm()
	form.SelectedRoles = append(form.SelectedRoles, SelectedRole{RoleID: "ed", MinutesOutput: 12})
	settings := &Settings{OverheadPercent: 10, ProfitMarginPercent: 20, TaxRatePercent: 8, DepositPercent: 50}

	first := CalculateQuote(form, baseCatalog(), []GearItem{}, settings, nil)
	second := CalculateQuote(form, baseCatalog(), []GearItem{}, settings, nil)
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("identical inputs produced different results:\n%+v\n%+v", first, second)
	}
}

func TestCalculateQuote_SectionOrdering(t *testing.T) {
	form := oneRoleForm()
	form.SelectedRoles = append(form.SelectedRoles, SelectedRole{RoleID: "ed", MinutesOutput: 10})

	result := CalculateQuote(form, baseCatalog(), []GearItem{}, &Settings{}, nil)
	if result == nil {
		t.Fatal("expected a result")
	}

	want := []string{"Production & Crew", "Videographer", "Post-Production", "Editor"}
	if len(result.LineItems) != len(want) {
		t.Fatalf("line items = %+v, want descriptions %v", result.LineItems, want)
	}
	for i, desc := range want {
		if result.LineItems[i].Description != desc {
			t.Fatalf("line %d = %q, want %q", i, result.LineItems[i].Description, desc)
		}
	}
	if !result.LineItems[0].IsSection || !result.LineItems[2].IsSection {
		t.Fatal("expected section markers at positions 0 and 2")
	}
	if result.LineItems[0].Amount != 0 || result.LineItems[2].Amount != 0 {
		t.Fatal("section markers must carry zero amounts")
	}
}

func TestCalculateQuote_PostOnlySelectionOmitsProductionSection(t *testing.T) {
	form := FormData{
		DayType:       DayFull,
		SelectedRoles: []SelectedRole{{RoleID: "ed", MinutesOutput: 5}},
	}

	result := CalculateQuote(form, baseCatalog(), []GearItem{}, &Settings{}, nil)
	if result == nil {
		t.Fatal("expected a result")
	}
	if len(result.LineItems) != 2 || result.LineItems[0].Description != "Post-Production" {
		t.Fatalf("expected a lone post-production section, got %+v", result.LineItems)
	}
}

func TestCalculateQuote_Multipliers(t *testing.T) {
	form := oneRoleForm()
	form.ExperienceLevel = "senior"
	form.IndustryIndex = 1.1

	settings := &Settings{ExperienceLevels: map[string]float64{"senior": 1.5}}
	result := CalculateQuote(form, baseCatalog(), []GearItem{}, settings, nil)
	if result == nil {
		t.Fatal("expected a result")
	}
	nearlyEqual(t, "preset labor", result.LaborSubtotal, 3300)
	nearlyEqual(t, "experience", result.AppliedMultipliers.Experience, 1.5)
	nearlyEqual(t, "industry", result.AppliedMultipliers.Industry, 1.1)
	nearlyEqual(t, "region", result.AppliedMultipliers.Region, 1)

	// The user-typed custom multiplier always beats the preset.
	custom := 2.0
	form.CustomMultiplier = &custom
	result = CalculateQuote(form, baseCatalog(), []GearItem{}, settings, nil)
	nearlyEqual(t, "custom labor", result.LaborSubtotal, 4400)
	nearlyEqual(t, "custom experience", result.ExperienceMultiplier, 2)
}

func TestCalculateQuote_OverheadProfitOnLaborOnly(t *testing.T) {
	form := oneRoleForm()
	form.TravelMiles = 100
	form.RentalCost = 500

	settings := &Settings{OverheadPercent: 10, ProfitMarginPercent: 20, MileageRate: 1}
	result := CalculateQuote(form, baseCatalog(), []GearItem{}, settings, nil)
	if result == nil {
		t.Fatal("expected a result")
	}

	nearlyEqual(t, "overhead", result.Overhead, 200)
	nearlyEqual(t, "profitMargin", result.ProfitMargin, 400)
	nearlyEqual(t, "laborWithOverheadProfit", result.LaborWithOverheadProfit, 2600)
	nearlyEqual(t, "travelCost", result.TravelCost, 100)
	nearlyEqual(t, "rentalCosts", result.RentalCosts, 500)
	// Markup never touches travel or rentals.
	nearlyEqual(t, "subtotal", result.Subtotal, 3200)
}

func TestCalculateQuote_GearAmortization(t *testing.T) {
	gear := []GearItem{
		{ID: "cam", Name: "Cinema camera", TotalInvestment: 10000, IncludeByDefault: true},
		{ID: "drone", Name: "Drone", TotalInvestment: 4000},
	}
	settings := &Settings{GearAmortizationDays: 100}

	form := oneRoleForm()
	form.GearEnabled = true

	// Nil selection falls back to the default kit: 10000/100 over a full day.
	result := CalculateQuote(form, baseCatalog(), gear, settings, nil)
	nearlyEqual(t, "default kit", result.GearAmortized, 100)

	// Explicit selection overrides the defaults, half day scales by 0.5.
	form.SelectedGearIDs = []string{"drone"}
	form.DayType = DayHalf
	result = CalculateQuote(form, baseCatalog(), gear, settings, nil)
	nearlyEqual(t, "selected drone half day", result.GearAmortized, 20)

	form.GearEnabled = false
	result = CalculateQuote(form, baseCatalog(), gear, settings, nil)
	nearlyEqual(t, "gear disabled", result.GearAmortized, 0)
}

func TestCalculateQuote_RushAndNonprofitShareBase(t *testing.T) {
	form := oneRoleForm()
	form.RushEnabled = true
	form.NonprofitEnabled = true

	settings := &Settings{RushFeePercent: 10, NonprofitDiscountPercent: 20}
	result := CalculateQuote(form, baseCatalog(), []GearItem{}, settings, nil)
	if result == nil {
		t.Fatal("expected a result")
	}

	// Both adjustments come off the 2000 subtotal independently; the
	// discount is not applied to the rush-inflated amount.
	nearlyEqual(t, "rushFee", result.RushFee, 200)
	nearlyEqual(t, "nonprofitDiscount", result.NonprofitDiscount, 400)
	nearlyEqual(t, "total", result.Total, 1800)
}

func TestCalculateQuote_TaxExcludesTravelByDefault(t *testing.T) {
	form := oneRoleForm()
	form.TravelMiles = 100

	settings := &Settings{TaxRatePercent: 10, MileageRate: 1}
	result := CalculateQuote(form, baseCatalog(), []GearItem{}, settings, nil)
	nearlyEqual(t, "taxableAmount", result.TaxableAmount, 2000)
	nearlyEqual(t, "tax", result.Tax, 200)
	nearlyEqual(t, "total", result.Total, 2300)

	settings.TaxTravel = true
	result = CalculateQuote(form, baseCatalog(), []GearItem{}, settings, nil)
	nearlyEqual(t, "taxableAmount with travel", result.TaxableAmount, 2100)
	nearlyEqual(t, "total with travel taxed", result.Total, 2310)
}

func TestCalculateQuote_DepositBalanceIdentity(t *testing.T) {
	form := oneRoleForm()
	settings := &Settings{TaxRatePercent: 8.25, DepositPercent: 33.33}

	result := CalculateQuote(form, baseCatalog(), []GearItem{}, settings, nil)
	if result == nil {
		t.Fatal("expected a result")
	}
	if diff := math.Abs(result.DepositDue + result.BalanceDue - result.Total); diff > 0.01 {
		t.Fatalf("deposit %v + balance %v diverges from total %v", result.DepositDue, result.BalanceDue, result.Total)
	}
	for name, v := range map[string]float64{
		"total":   result.Total,
		"deposit": result.DepositDue,
		"balance": result.BalanceDue,
		"tax":     result.Tax,
	} {
		if math.Abs(v*100-math.Round(v*100)) > 1e-9 {
			t.Fatalf("%s = %v has sub-cent residue", name, v)
		}
	}
}

func TestCalculateQuote_SingleFixedPriceMode(t *testing.T) {
	form := FormData{
		DayType:            DayFull,
		SinglePriceEnabled: true,
		SinglePrice:        5000,
		TravelMiles:        50,
	}
	settings := &Settings{OverheadPercent: 10, ProfitMarginPercent: 20, MileageRate: 2}

	result := CalculateQuote(form, baseCatalog(), []GearItem{}, settings, nil)
	if result == nil {
		t.Fatal("expected a result")
	}
	if len(result.LineItems) != 1 || result.LineItems[0].Description != "Fixed Price Quote" {
		t.Fatalf("expected the synthetic fixed price line, got %+v", result.LineItems)
	}
	nearlyEqual(t, "laborSubtotal", result.LaborSubtotal, 5000)
	nearlyEqual(t, "laborWithOverheadProfit", result.LaborWithOverheadProfit, 6500)
	nearlyEqual(t, "subtotal", result.Subtotal, 6600)
	nearlyEqual(t, "total", result.Total, 6600)
}

func TestCalculateQuote_AudioPostLine(t *testing.T) {
	form := FormData{DayType: DayHalf, SelectedRoles: []SelectedRole{}, AudioPostEnabled: true}

	result := CalculateQuote(form, baseCatalog(), []GearItem{}, &Settings{}, nil)
	if result == nil {
		t.Fatal("expected a result")
	}
	if len(result.LineItems) != 2 || result.LineItems[0].Description != "Post-Production" {
		t.Fatalf("expected audio under post-production, got %+v", result.LineItems)
	}
	nearlyEqual(t, "half-day audio rate", result.LaborSubtotal, 300)

	form.DayType = DayFull
	result = CalculateQuote(form, baseCatalog(), []GearItem{}, &Settings{}, nil)
	nearlyEqual(t, "full-day audio rate", result.LaborSubtotal, 500)
}

func TestCalculateQuote_DeliverableEstimateFeedsEditors(t *testing.T) {
	form := FormData{
		DayType:       DayFull,
		SelectedRoles: []SelectedRole{{RoleID: "ed", MinutesOutput: 10}},
	}
	estimate := &DeliverableEstimate{TotalQuantity: 4}

	result := CalculateQuote(form, baseCatalog(), []GearItem{}, &Settings{}, estimate)
	if result == nil {
		t.Fatal("expected a result")
	}
	// 2 blocks × 50 × 4 deliverables.
	nearlyEqual(t, "laborSubtotal", result.LaborSubtotal, 400)
}

func TestCalculateQuote_CustomPriceAndDiscount(t *testing.T) {
	form := oneRoleForm()
	override := 1000.0
	form.CustomPrice = &override
	form.CustomDiscountPercent = 10

	result := CalculateQuote(form, baseCatalog(), []GearItem{}, &Settings{}, nil)
	if result == nil {
		t.Fatal("expected a result")
	}
	nearlyEqual(t, "subtotal", result.Subtotal, 1000)
	nearlyEqual(t, "customDiscount", result.CustomDiscount, 100)
	nearlyEqual(t, "total", result.Total, 900)
}

func TestCalculateQuote_UnknownRoleIsSkipped(t *testing.T) {
	form := oneRoleForm()
	form.SelectedRoles = append(form.SelectedRoles, SelectedRole{RoleID: "ghost", CrewQty: 3})

	result := CalculateQuote(form, baseCatalog(), []GearItem{}, &Settings{}, nil)
	if result == nil {
		t.Fatal("expected a result")
	}
	nearlyEqual(t, "laborSubtotal", result.LaborSubtotal, 2000)
}

func TestDeriveNegotiationRange(t *testing.T) {
	form := oneRoleForm()
	settings := &Settings{ProfitMarginPercent: 20, DesiredProfitMarginPercent: 25}

	result := CalculateQuote(form, baseCatalog(), []GearItem{}, settings, nil)
	if result == nil {
		t.Fatal("expected a result")
	}
	rng := DeriveNegotiationRange(result, settings)
	if rng == nil {
		t.Fatal("expected a range")
	}
	// Total 2400 with a 400 profit contribution.
	nearlyEqual(t, "low", rng.Low, 2000)
	nearlyEqual(t, "high", rng.High, 3000)

	if DeriveNegotiationRange(nil, settings) != nil {
		t.Fatal("nil result must derive a nil range")
	}
}
