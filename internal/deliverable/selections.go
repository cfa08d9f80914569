package deliverable

// WorkTypePostOnly marks jobs with no billable production days; deliverable
// unit prices are assumed to bake in editing cost for those.
const WorkTypePostOnly = "post_only"

// SelectedDeliverable is one deliverable chosen on the job.
type SelectedDeliverable struct {
	DeliverableID string `json:"deliverable_id"`
	Quantity      float64 `json:"quantity"`

	// CustomRate beats any override or catalog unit price.
	CustomRate *float64 `json:"custom_rate,omitempty"`
	// PostMinimumOverride replaces the computed per-unit post minimum.
	PostMinimumOverride *float64 `json:"post_minimum_override,omitempty"`
}

// Context carries who is quoting; admin mode reveals admin-only modifiers.
type Context struct {
	Mode string `json:"mode,omitempty"`
}

// Selections is the normalized job description for the deliverable engine.
type Selections struct {
	ProductionCategoryID  string                `json:"production_category_id"`
	ExecutionScopeID      string                `json:"execution_scope_id"`
	ProductionDays        float64               `json:"production_days"`
	IncludeProductionDays *bool                 `json:"include_production_days,omitempty"`
	WorkType              string                `json:"work_type,omitempty"`
	PostRequested         bool                  `json:"post_requested,omitempty"`
	Deliverables          []SelectedDeliverable `json:"deliverables"`
	ModifierIDs           []string              `json:"modifier_ids,omitempty"`
	UnitPriceOverrides    map[string]float64    `json:"unit_price_overrides,omitempty"`
	Context               Context               `json:"context,omitempty"`
}

// includesProductionDays defaults to true when the flag is absent.
func (s Selections) includesProductionDays() bool {
	return s.IncludeProductionDays == nil || *s.IncludeProductionDays
}

// postOnly jobs suppress the separate post-minimum section: with no billed
// production days the deliverable unit prices already carry editing cost.
func (s Selections) postOnly() bool {
	return !s.includesProductionDays() || s.WorkType == WorkTypePostOnly
}

// admin reports whether admin-only catalog entries are visible.
func (s Selections) admin() bool {
	return s.Context.Mode == "admin"
}

// visibleModifiers resolves the selected modifier ids against the catalog,
// dropping unknown ids, admin-only entries outside admin mode, and modifiers
// that require post-production when it isn't requested.
func (s Selections) visibleModifiers(catalog Catalog) []Modifier {
	var out []Modifier
	for _, id := range s.ModifierIDs {
		m, ok := catalog.modifier(id)
		if !ok {
			continue
		}
		if m.Visibility == VisibilityAdmin && !s.admin() {
			continue
		}
		if m.RequiresPostRequested && !s.PostRequested {
			continue
		}
		out = append(out, m)
	}
	return out
}

func (s Selections) hasModifier(id string) bool {
	for _, m := range s.ModifierIDs {
		if m == id {
			return true
		}
	}
	return false
}
