// Package deliverable prices jobs from a deliverable catalog: categories,
// execution scopes, deliverables and modifiers expand into itemized lines,
// a minimum-engagement floor and a scoped multiplier. Unlike the role
// engine, rule violations here are structured domain errors; the
// orchestrator converts them into validations instead of propagating.
package deliverable

// ProductionCategory groups jobs by the kind of shoot being quoted.
type ProductionCategory struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

// ExecutionScope describes how much creative and operational responsibility
// the vendor takes on, priced as a per-day adder. Catalog order is
// significant: scopes are listed from lowest to highest responsibility, and
// deliverable constraints compare by that order.
type ExecutionScope struct {
	ID        string  `json:"id"`
	Label     string  `json:"label"`
	PerDayAdd float64 `json:"per_day_add"`
}

// Constraints restricts when a deliverable may be quoted.
type Constraints struct {
	MinProductionDays float64 `json:"min_production_days,omitempty"`
	RequiresPost      bool    `json:"requires_post,omitempty"`
	MinExecutionScope string  `json:"min_execution_scope,omitempty"`
}

// Production day policy modes.
const (
	DayPolicyDefault = "default"
	DayPolicyLocked  = "locked"
)

// ProductionDayPolicy controls whether a deliverable forces a fixed number
// of production days per unit quoted.
type ProductionDayPolicy struct {
	Mode                 string  `json:"mode,omitempty"`
	ProductionDaysLocked float64 `json:"production_days_locked,omitempty"`
}

// Deliverable is one sellable output in the catalog.
type Deliverable struct {
	ID                  string              `json:"id"`
	Label               string              `json:"label"`
	UnitPrice           float64             `json:"unit_price"`
	Unit                string              `json:"unit"`
	PostMinimum         float64             `json:"post_minimum,omitempty"`
	Constraints         Constraints         `json:"constraints,omitempty"`
	ProductionDayPolicy ProductionDayPolicy `json:"production_day_policy,omitempty"`
}

// Modifier pricing types and visibility levels.
const (
	PricingFixed      = "fixed"
	PricingMultiplier = "multiplier"

	VisibilityPublic = "public"
	VisibilityAdmin  = "admin"
)

// ModifierPricing describes how a modifier charges: a fixed add-on amount or
// a multiplicative factor over eligible line items.
type ModifierPricing struct {
	Type  string  `json:"type"`
	Value float64 `json:"value"`
	Unit  string  `json:"unit,omitempty"`
}

// Modifier is an optional adjustment selectable on top of the base job.
type Modifier struct {
	ID                    string          `json:"id"`
	Label                 string          `json:"label"`
	Pricing               ModifierPricing `json:"pricing"`
	Visibility            string          `json:"visibility,omitempty"`
	EligibleForMultiplier bool            `json:"eligible_for_multiplier,omitempty"`
	RequiresPostRequested bool            `json:"requires_post_requested,omitempty"`
}

// Rules holds catalog-wide pricing constants.
type Rules struct {
	BaseDayRate               float64 `json:"base_day_rate"`
	MinimumProjectSubtotal    float64 `json:"minimum_project_subtotal"`
	MinimumPostPerDeliverable float64 `json:"minimum_post_per_deliverable"`
}

// Catalog is the static configuration document the caller supplies with
// every calculation.
type Catalog struct {
	ProductionCategories []ProductionCategory `json:"production_categories"`
	ExecutionScopes      []ExecutionScope     `json:"execution_scopes"`
	Deliverables         []Deliverable        `json:"deliverables"`
	Modifiers            []Modifier           `json:"modifiers"`
	Rules                Rules                `json:"rules"`
}

func (c Catalog) category(id string) (ProductionCategory, bool) {
	for _, cat := range c.ProductionCategories {
		if cat.ID == id {
			return cat, true
		}
	}
	return ProductionCategory{}, false
}

// scopeIndex returns the responsibility order of a scope. Lower index means
// lower responsibility and cost.
func (c Catalog) scopeIndex(id string) (int, bool) {
	for i, s := range c.ExecutionScopes {
		if s.ID == id {
			return i, true
		}
	}
	return 0, false
}

func (c Catalog) deliverable(id string) (Deliverable, bool) {
	for _, d := range c.Deliverables {
		if d.ID == id {
			return d, true
		}
	}
	return Deliverable{}, false
}

func (c Catalog) modifier(id string) (Modifier, bool) {
	for _, m := range c.Modifiers {
		if m.ID == id {
			return m, true
		}
	}
	return Modifier{}, false
}
