package pricing

import (
	"math"
	"testing"
)

func nearlyEqual(t *testing.T, name string, got, want float64) {
	t.Helper()
	if math.Abs(got-want) > 1e-9 {
		t.Fatalf("%s = %v, want %v", name, got, want)
	}
}

func dayRate(half, full float64) RateDefinition {
	return RateDefinition{ID: "r1", Role: "Videographer", UnitType: UnitDay, HalfDayRate: half, FullDayRate: full, Active: true}
}

func TestRoleCost_DayHalfAndFull(t *testing.T) {
	rate := dayRate(1000, 2000)
	role := SelectedRole{RoleID: "r1", CrewQty: 2}

	nearlyEqual(t, "half day", RoleCost(role, rate, DayHalf, 0, Settings{}), 2000)
	nearlyEqual(t, "full day", RoleCost(role, rate, DayFull, 0, Settings{}), 4000)
}

func TestRoleCost_ExplicitDaysOverrideGlobalDayType(t *testing.T) {
	rate := dayRate(1000, 2000)
	full := 2.0
	role := SelectedRole{RoleID: "r1", CrewQty: 1, FullDays: &full}

	for _, dt := range []DayType{DayHalf, DayFull, DayCustom} {
		nearlyEqual(t, "override under "+string(dt), RoleCost(role, rate, dt, 6, Settings{}), 4000)
	}

	half := 1.0
	role.HalfDays = &half
	nearlyEqual(t, "half+full override", RoleCost(role, rate, DayHalf, 0, Settings{}), 5000)
}

func TestRoleCost_CustomHoursProrataAndOvertime(t *testing.T) {
	rate := dayRate(1000, 2000)
	role := SelectedRole{RoleID: "r1", CrewQty: 1}
	settings := Settings{OvertimeMultiplier: 1.5}

	// At exactly the standard day there is no overtime component.
	nearlyEqual(t, "10 hours", RoleCost(role, rate, DayCustom, 10, settings), 2000)
	// Two hours past the standard day bill at the hourly slice times 1.5.
	nearlyEqual(t, "12 hours", RoleCost(role, rate, DayCustom, 12, settings), 2600)
	// Short days prorate against the full-day rate.
	nearlyEqual(t, "6 hours", RoleCost(role, rate, DayCustom, 6, settings), 1200)
}

func TestRoleCost_Per5Min(t *testing.T) {
	rate := RateDefinition{ID: "ed", Role: "Editor", UnitType: UnitPer5Min, HalfDayRate: 40, FullDayRate: 50}

	// 12 minutes → 3 blocks.
	role := SelectedRole{RoleID: "ed", MinutesOutput: 12}
	nearlyEqual(t, "half rate", RoleCost(role, rate, DayHalf, 0, Settings{}), 120)
	nearlyEqual(t, "full rate", RoleCost(role, rate, DayFull, 0, Settings{}), 150)
	// Custom day type falls back to the higher of the two rates.
	nearlyEqual(t, "custom fallback", RoleCost(role, rate, DayCustom, 8, Settings{}), 150)

	role.DeliverableCount = 3
	nearlyEqual(t, "deliverable count", RoleCost(role, rate, DayFull, 0, Settings{}), 450)
}

func TestRoleCost_PerRequestAndFlat(t *testing.T) {
	perReq := RateDefinition{ID: "rv", Role: "Revision", UnitType: UnitPerRequest, HalfDayRate: 75, FullDayRate: 100}
	nearlyEqual(t, "per request", RoleCost(SelectedRole{Requests: 4}, perReq, DayFull, 0, Settings{}), 400)

	flat := RateDefinition{ID: "lic", Role: "Licensing", UnitType: UnitFlat, HalfDayRate: 0, FullDayRate: 500}
	// Headcount never changes a flat fee.
	nearlyEqual(t, "flat qty 1", RoleCost(SelectedRole{CrewQty: 1}, flat, DayFull, 0, Settings{}), 500)
	nearlyEqual(t, "flat qty 5", RoleCost(SelectedRole{CrewQty: 5}, flat, DayHalf, 0, Settings{}), 500)
}

func TestRoleCost_UnknownUnitTypeIsZero(t *testing.T) {
	rate := RateDefinition{ID: "x", Role: "Mystery", UnitType: "per_frame", FullDayRate: 999}
	nearlyEqual(t, "unknown unit", RoleCost(SelectedRole{CrewQty: 3}, rate, DayFull, 0, Settings{}), 0)
}
