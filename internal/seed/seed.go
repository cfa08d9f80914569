package seed

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/fieldcraft/cinequote/internal/deliverable"
	"github.com/fieldcraft/cinequote/internal/pricing"
)

// Stats contains seed operation counters.
type Stats struct {
	Inserts int
}

// Run executes the startup seed in an idempotent way: a default role rate
// catalog, a default gear kit, the settings singleton and the deliverable
// catalog document. Admin user seeding is the auth service's job.
func Run(db *sql.DB) (Stats, error) {
	tx, err := db.Begin()
	if err != nil {
		return Stats{}, fmt.Errorf("begin seed transaction: %w", err)
	}

	stats := Stats{}

	if err := ensureDayRates(tx, &stats); err != nil {
		_ = tx.Rollback()
		return Stats{}, err
	}
	if err := ensureGear(tx, &stats); err != nil {
		_ = tx.Rollback()
		return Stats{}, err
	}
	if err := ensureSettings(tx, &stats); err != nil {
		_ = tx.Rollback()
		return Stats{}, err
	}
	if err := ensureCatalog(tx, &stats); err != nil {
		_ = tx.Rollback()
		return Stats{}, err
	}

	if err := tx.Commit(); err != nil {
		return Stats{}, fmt.Errorf("commit seed transaction: %w", err)
	}

	return stats, nil
}

// DefaultDayRates is the starter role rate catalog for a small studio.
func DefaultDayRates() []pricing.RateDefinition {
	return []pricing.RateDefinition{
		{ID: "videographer", Role: "Videographer", UnitType: pricing.UnitDay, Category: pricing.CategoryProduction, HalfDayRate: 1000, FullDayRate: 1800, Active: true},
		{ID: "director", Role: "Director", UnitType: pricing.UnitDay, Category: pricing.CategoryProduction, HalfDayRate: 1500, FullDayRate: 2800, Active: true},
		{ID: "gaffer", Role: "Gaffer", UnitType: pricing.UnitDay, Category: pricing.CategoryProduction, HalfDayRate: 450, FullDayRate: 800, Active: true},
		{ID: "editor", Role: "Editor", UnitType: pricing.UnitPer5Min, Category: pricing.CategoryPostProduction, HalfDayRate: 40, FullDayRate: 55, Active: true},
		{ID: "revisions", Role: "Revision Rounds", UnitType: pricing.UnitPerRequest, Category: pricing.CategoryPostProduction, HalfDayRate: 75, FullDayRate: 120, Active: true},
		{ID: "licensing", Role: "Music Licensing", UnitType: pricing.UnitFlat, Category: pricing.CategoryPostProduction, FullDayRate: 350, Active: true},
		{ID: pricing.AudioPostRateID, Role: "Audio Pre/Post-Production", UnitType: pricing.UnitFlat, Category: pricing.CategoryPostProduction, HalfDayRate: 300, FullDayRate: 500, Active: true},
	}
}

// DefaultGear is the starter gear catalog.
func DefaultGear() []pricing.GearItem {
	return []pricing.GearItem{
		{ID: "camera_kit", Name: "Cinema camera kit", TotalInvestment: 18000, IncludeByDefault: true},
		{ID: "lighting_kit", Name: "Lighting kit", TotalInvestment: 6000, IncludeByDefault: true},
		{ID: "audio_kit", Name: "Field audio kit", TotalInvestment: 3500, IncludeByDefault: true},
		{ID: "drone", Name: "Drone", TotalInvestment: 4200},
	}
}

// DefaultSettings is the starter studio configuration.
func DefaultSettings() pricing.Settings {
	return pricing.Settings{
		OverheadPercent:          10,
		ProfitMarginPercent:      20,
		TaxRatePercent:           8.25,
		DepositPercent:           50,
		RushFeePercent:           20,
		NonprofitDiscountPercent: 10,
		OvertimeMultiplier:       1.5,
		GearAmortizationDays:     150,
		MileageRate:              0.67,
		ExperienceLevels: map[string]float64{
			"emerging":    0.8,
			"established": 1,
			"senior":      1.25,
		},
		DesiredProfitMarginPercent: 30,
	}
}

// DefaultCatalog is the starter deliverable catalog document.
func DefaultCatalog() deliverable.Catalog {
	return deliverable.Catalog{
		ProductionCategories: []deliverable.ProductionCategory{
			{ID: "corporate", Label: "Corporate & Brand"},
			{ID: "wedding", Label: "Weddings & Events"},
			{ID: "live_production", Label: "Live Production"},
		},
		ExecutionScopes: []deliverable.ExecutionScope{
			{ID: "capture_only", Label: "Capture Only", PerDayAdd: 0},
			{ID: "directed_capture", Label: "Directed Capture", PerDayAdd: 400},
			{ID: "full_service", Label: "Full Creative Service", PerDayAdd: 900},
		},
		Deliverables: []deliverable.Deliverable{
			{ID: "highlight", Label: "Highlight Film", UnitPrice: 1200, Unit: "video", PostMinimum: 500},
			{ID: "social_cut", Label: "Social Cutdown", UnitPrice: 250, Unit: "video", PostMinimum: 100},
			{
				ID: "event_doc", Label: "Full Event Documentary", UnitPrice: 3200, Unit: "video", PostMinimum: 800,
				Constraints:         deliverable.Constraints{MinProductionDays: 2, RequiresPost: true, MinExecutionScope: "directed_capture"},
				ProductionDayPolicy: deliverable.ProductionDayPolicy{Mode: deliverable.DayPolicyLocked, ProductionDaysLocked: 2},
			},
			{ID: "raw_footage", Label: "Raw Footage Handoff", UnitPrice: 400, Unit: "project"},
		},
		Modifiers: []deliverable.Modifier{
			{ID: "script_development", Label: "Script Development", Pricing: deliverable.ModifierPricing{Type: deliverable.PricingFixed, Value: 600, Unit: "project"}, Visibility: deliverable.VisibilityPublic},
			{ID: "live_environment", Label: "Live Environment Premium", Pricing: deliverable.ModifierPricing{Type: deliverable.PricingMultiplier, Value: 1.2}, Visibility: deliverable.VisibilityPublic},
			{ID: "rush_turnaround", Label: "Rush Turnaround", Pricing: deliverable.ModifierPricing{Type: deliverable.PricingMultiplier, Value: 1.25}, Visibility: deliverable.VisibilityPublic},
			{ID: "captions", Label: "Closed Captions", Pricing: deliverable.ModifierPricing{Type: deliverable.PricingFixed, Value: 150, Unit: "project"}, Visibility: deliverable.VisibilityPublic, RequiresPostRequested: true},
			{ID: "partner_rate", Label: "Partner Rate Adjustment", Pricing: deliverable.ModifierPricing{Type: deliverable.PricingFixed, Value: -500, Unit: "project"}, Visibility: deliverable.VisibilityAdmin},
		},
		Rules: deliverable.Rules{
			BaseDayRate:               1500,
			MinimumProjectSubtotal:    2500,
			MinimumPostPerDeliverable: 300,
		},
	}
}

func ensureDayRates(tx *sql.Tx, stats *Stats) error {
	for _, r := range DefaultDayRates() {
		var exists bool
		if err := tx.QueryRow(`SELECT EXISTS(SELECT 1 FROM day_rates WHERE id = ? LIMIT 1)`, r.ID).Scan(&exists); err != nil {
			return fmt.Errorf("check day rate existence: %w", err)
		}
		if exists {
			continue
		}
		if _, err := tx.Exec(`
			INSERT INTO day_rates (id, role, unit_type, category, half_day_rate, full_day_rate, active)
			VALUES (?, ?, ?, ?, ?, ?, ?)
		`, r.ID, r.Role, string(r.UnitType), string(r.Category), r.HalfDayRate, r.FullDayRate, r.Active); err != nil {
			return fmt.Errorf("insert day rate %s: %w", r.ID, err)
		}
		stats.Inserts++
	}
	return nil
}

func ensureGear(tx *sql.Tx, stats *Stats) error {
	for _, g := range DefaultGear() {
		var exists bool
		if err := tx.QueryRow(`SELECT EXISTS(SELECT 1 FROM gear_items WHERE id = ? LIMIT 1)`, g.ID).Scan(&exists); err != nil {
			return fmt.Errorf("check gear existence: %w", err)
		}
		if exists {
			continue
		}
		if _, err := tx.Exec(`
			INSERT INTO gear_items (id, name, total_investment, include_by_default)
			VALUES (?, ?, ?, ?)
		`, g.ID, g.Name, g.TotalInvestment, g.IncludeByDefault); err != nil {
			return fmt.Errorf("insert gear item %s: %w", g.ID, err)
		}
		stats.Inserts++
	}
	return nil
}

func ensureSettings(tx *sql.Tx, stats *Stats) error {
	var exists bool
	if err := tx.QueryRow(`SELECT EXISTS(SELECT 1 FROM settings WHERE id = 1)`).Scan(&exists); err != nil {
		return fmt.Errorf("check settings existence: %w", err)
	}
	if exists {
		return nil
	}

	body, err := json.Marshal(DefaultSettings())
	if err != nil {
		return fmt.Errorf("marshal default settings: %w", err)
	}
	if _, err := tx.Exec(`INSERT INTO settings (id, body_json) VALUES (1, ?)`, string(body)); err != nil {
		return fmt.Errorf("insert settings singleton: %w", err)
	}
	stats.Inserts++
	return nil
}

func ensureCatalog(tx *sql.Tx, stats *Stats) error {
	var exists bool
	if err := tx.QueryRow(`SELECT EXISTS(SELECT 1 FROM deliverable_catalog WHERE id = 1)`).Scan(&exists); err != nil {
		return fmt.Errorf("check catalog existence: %w", err)
	}
	if exists {
		return nil
	}

	body, err := json.Marshal(DefaultCatalog())
	if err != nil {
		return fmt.Errorf("marshal default catalog: %w", err)
	}
	if _, err := tx.Exec(`INSERT INTO deliverable_catalog (id, body_json) VALUES (1, ?)`, string(body)); err != nil {
		return fmt.Errorf("insert catalog singleton: %w", err)
	}
	stats.Inserts++
	return nil
}
