package deliverable

import "github.com/fieldcraft/cinequote/internal/money"

// Validation severities and codes.
const (
	SeverityError = "error"

	CodeCalculationError = "CALCULATION_ERROR"
)

// Validation is a structured failure entry. Callers detect a failed
// calculation by scanning for error-severity validations; the engine never
// raises.
type Validation struct {
	Code     string `json:"code"`
	Severity string `json:"severity"`
	Message  string `json:"message"`
}

// Warning is advisory only: it flags a potentially suboptimal selection but
// never blocks pricing or export.
type Warning struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Pricing is the numeric breakdown of a deliverable quote.
type Pricing struct {
	SubtotalBeforeFloor    float64          `json:"subtotal_before_floor"`
	MinimumProjectSubtotal float64          `json:"minimum_project_subtotal"`
	PriceFloorAdded        float64          `json:"price_floor_added"`
	SubtotalAfterFloor     float64          `json:"subtotal_after_floor"`
	ScopedMultiplier       ScopedMultiplier `json:"scoped_multiplier"`
	Total                  float64          `json:"total"`
}

// EstimateSummary is the client-facing description of the job: labels only,
// no prices.
type EstimateSummary struct {
	CategoryLabel string   `json:"category_label"`
	ScopeLabel    string   `json:"scope_label"`
	Deliverables  []string `json:"deliverables"`
	Modifiers     []string `json:"modifiers"`
}

// Result is the fully computed deliverable quote.
type Result struct {
	EstimateSummary EstimateSummary `json:"estimate_summary"`
	LineItems       []LineItem      `json:"line_items"`
	Pricing         Pricing         `json:"pricing"`
	Warnings        []Warning       `json:"warnings"`
	Validations     []Validation    `json:"validations"`
}

// Failed reports whether the calculation produced an error-severity
// validation.
func (r Result) Failed() bool {
	for _, v := range r.Validations {
		if v.Severity == SeverityError {
			return true
		}
	}
	return false
}

// DeliverableQuantity sums the quantity of all deliverable lines. The role
// engine consumes it to size per-5-minute editing work across deliverables.
func (r Result) DeliverableQuantity() float64 {
	var total float64
	for _, item := range r.LineItems {
		if item.Kind == KindDeliverable {
			total += item.Quantity
		}
	}
	return total
}

// CalculateDeliverableQuote prices the selections against the catalog. It
// never returns an error: any rule violation in the pipeline yields a result
// with empty line items, zeroed pricing and a single CALCULATION_ERROR
// validation carrying the message.
func CalculateDeliverableQuote(selections Selections, catalog Catalog) Result {
	result, err := calculate(selections, catalog)
	if err != nil {
		return Result{
			LineItems: []LineItem{},
			Warnings:  []Warning{},
			Validations: []Validation{{
				Code:     CodeCalculationError,
				Severity: SeverityError,
				Message:  err.Error(),
			}},
		}
	}
	return result
}

func calculate(selections Selections, catalog Catalog) (Result, error) {
	category, ok := catalog.category(selections.ProductionCategoryID)
	if !ok {
		return Result{}, domainErrorf("production category %q not found in catalog", selections.ProductionCategoryID)
	}

	days, err := EffectiveProductionDays(selections, catalog)
	if err != nil {
		return Result{}, err
	}

	items, err := buildLineItems(selections, catalog, days)
	if err != nil {
		return Result{}, err
	}

	subtotalBefore := lineSubtotal(items)
	items, floorAdded := applyMinimumEngagement(items, catalog.Rules, selections.includesProductionDays())
	subtotalAfter := money.Round2(subtotalBefore + floorAdded)

	multiplier := applyScopedMultiplier(items, selections, catalog)

	return Result{
		EstimateSummary: buildSummary(selections, catalog, category),
		LineItems:       items,
		Pricing: Pricing{
			SubtotalBeforeFloor:    subtotalBefore,
			MinimumProjectSubtotal: money.Round2(catalog.Rules.MinimumProjectSubtotal),
			PriceFloorAdded:        floorAdded,
			SubtotalAfterFloor:     subtotalAfter,
			ScopedMultiplier:       multiplier,
			Total:                  money.Round2(subtotalAfter + multiplier.MultiplierAmount),
		},
		Warnings:    buildWarnings(selections, catalog),
		Validations: []Validation{},
	}, nil
}
