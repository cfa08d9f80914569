package deliverable

// Well-known catalog ids referenced by advisory checks. Catalogs that don't
// use these ids simply never trigger the corresponding warning.
const (
	scopeCaptureOnly      = "capture_only"
	categoryLive          = "live_production"
	modifierScriptDev     = "script_development"
	modifierLiveRiskCover = "live_environment"
)

// Warning codes.
const (
	CodeScopeBelowModifier = "SCOPE_BELOW_MODIFIER"
	CodeLiveRiskUncovered  = "LIVE_RISK_UNCOVERED"
)

// buildWarnings flags selection combinations worth a second look. Warnings
// never block pricing.
func buildWarnings(selections Selections, catalog Catalog) []Warning {
	warnings := []Warning{}

	if selections.ExecutionScopeID == scopeCaptureOnly && selections.hasModifier(modifierScriptDev) {
		warnings = append(warnings, Warning{
			Code:    CodeScopeBelowModifier,
			Message: "capture-only scope selected alongside script development; consider a higher execution scope",
		})
	}

	if selections.ProductionCategoryID == categoryLive && !selections.hasModifier(modifierLiveRiskCover) {
		if _, ok := catalog.modifier(modifierLiveRiskCover); ok {
			warnings = append(warnings, Warning{
				Code:    CodeLiveRiskUncovered,
				Message: "live production selected without the live environment risk modifier",
			})
		}
	}

	return warnings
}
