package pricing

// UnitType selects the pricing formula family for a rate.
type UnitType string

const (
	UnitDay        UnitType = "day"
	UnitPer5Min    UnitType = "per_5_min"
	UnitPerRequest UnitType = "per_request"
	UnitFlat       UnitType = "flat"
)

// RoleCategory classifies a rate for line-item sectioning. Catalogs authored
// before the tag existed leave it empty; classification then falls back to a
// name heuristic (see isPostProduction).
type RoleCategory string

const (
	CategoryProduction     RoleCategory = "production"
	CategoryPostProduction RoleCategory = "post_production"
)

// DayType is the billing granularity selected for the whole job.
type DayType string

const (
	DayHalf   DayType = "half"
	DayFull   DayType = "full"
	DayCustom DayType = "custom"
)

const (
	// fullDayHours is the standard billable day; custom-hour jobs prorate
	// against it and bill overtime beyond it.
	fullDayHours = 10.0

	// AudioPostRateID is the well-known catalog id for the flat audio
	// pre/post-production rate referenced by FormData.AudioPostEnabled.
	AudioPostRateID = "audio_post"
)

// RateDefinition is one entry of the role rate catalog.
type RateDefinition struct {
	ID          string       `json:"id"`
	Role        string       `json:"role"`
	UnitType    UnitType     `json:"unit_type"`
	Category    RoleCategory `json:"category,omitempty"`
	HalfDayRate float64      `json:"half_day_rate"`
	FullDayRate float64      `json:"full_day_rate"`
	Active      bool         `json:"active"`
}

// SelectedRole is one crew selection on the job. Fields irrelevant to the
// referenced rate's unit type are ignored by the cost formula.
type SelectedRole struct {
	RoleID  string  `json:"role_id"`
	CrewQty float64 `json:"quantity"`

	// HalfDays/FullDays, when set, override the global day type for this
	// role regardless of what the form selected.
	HalfDays *float64 `json:"half_days,omitempty"`
	FullDays *float64 `json:"full_days,omitempty"`

	MinutesOutput    float64 `json:"minutes_output,omitempty"`
	Requests         float64 `json:"requests,omitempty"`
	DeliverableCount float64 `json:"deliverable_count,omitempty"`
}

// GearItem is one entry of the gear catalog. Its quote contribution is the
// investment amortized over the configured day count, scaled by billed hours.
type GearItem struct {
	ID               string  `json:"id"`
	Name             string  `json:"name"`
	TotalInvestment  float64 `json:"total_investment"`
	IncludeByDefault bool    `json:"include_by_default"`
}

// Settings carries the studio-wide pricing configuration.
type Settings struct {
	OverheadPercent            float64            `json:"overhead_percent"`
	ProfitMarginPercent        float64            `json:"profit_margin_percent"`
	TaxRatePercent             float64            `json:"tax_rate_percent"`
	TaxTravel                  bool               `json:"tax_travel"`
	DepositPercent             float64            `json:"deposit_percent"`
	RushFeePercent             float64            `json:"rush_fee_percent"`
	NonprofitDiscountPercent   float64            `json:"nonprofit_discount_percent"`
	OvertimeMultiplier         float64            `json:"overtime_multiplier"`
	GearAmortizationDays       float64            `json:"gear_amortization_days"`
	MileageRate                float64            `json:"mileage_rate"`
	ExperienceLevels           map[string]float64 `json:"experience_levels,omitempty"`
	DesiredProfitMarginPercent float64            `json:"desired_profit_margin_percent"`
}

// FormData is the normalized job description collected by the caller.
type FormData struct {
	DayType          DayType  `json:"day_type"`
	CustomHours      float64  `json:"custom_hours,omitempty"`
	ExperienceLevel  string   `json:"experience_level,omitempty"`
	CustomMultiplier *float64 `json:"custom_multiplier,omitempty"`
	IndustryIndex    float64  `json:"industry_index,omitempty"`
	RegionMultiplier float64  `json:"region_multiplier,omitempty"`

	SelectedRoles []SelectedRole `json:"selected_roles"`

	GearEnabled     bool     `json:"gear_enabled,omitempty"`
	SelectedGearIDs []string `json:"selected_gear_ids,omitempty"`

	TravelMiles        float64 `json:"travel_miles,omitempty"`
	RentalCost         float64 `json:"rental_cost,omitempty"`
	UsageRightsEnabled bool    `json:"usage_rights_enabled,omitempty"`
	UsageRightsCost    float64 `json:"usage_rights_cost,omitempty"`

	TalentEnabled      bool    `json:"talent_enabled,omitempty"`
	TalentPrimaryCount float64 `json:"talent_primary_count,omitempty"`
	TalentPrimaryRate  float64 `json:"talent_primary_rate,omitempty"`
	TalentExtraCount   float64 `json:"talent_extra_count,omitempty"`
	TalentExtraRate    float64 `json:"talent_extra_rate,omitempty"`

	RushEnabled      bool `json:"rush_enabled,omitempty"`
	NonprofitEnabled bool `json:"nonprofit_enabled,omitempty"`
	AudioPostEnabled bool `json:"audio_post_enabled,omitempty"`

	SinglePriceEnabled bool    `json:"single_price_enabled,omitempty"`
	SinglePrice        float64 `json:"single_price,omitempty"`

	CustomPrice           *float64 `json:"custom_price,omitempty"`
	CustomDiscountPercent float64  `json:"custom_discount_percent,omitempty"`
}

// DeliverableEstimate is the cross-engine side channel: the deliverable
// engine's aggregated quantity can feed per-5-minute editing roles.
type DeliverableEstimate struct {
	TotalQuantity float64 `json:"total_quantity"`
}

// LineItem is one display row of the quote. Section markers carry a zero
// amount and no price semantics.
type LineItem struct {
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
	IsSection   bool    `json:"is_section,omitempty"`
}

// AppliedMultipliers records which scaling factors went into labor pricing.
type AppliedMultipliers struct {
	Experience float64 `json:"experience"`
	Industry   float64 `json:"industry"`
	Region     float64 `json:"region"`
}

// QuoteResult is the fully computed quote. All monetary fields are rounded
// to cents before they land here.
type QuoteResult struct {
	LineItems []LineItem `json:"line_items"`

	LaborSubtotal           float64 `json:"labor_subtotal"`
	Overhead                float64 `json:"overhead"`
	ProfitMargin            float64 `json:"profit_margin"`
	LaborWithOverheadProfit float64 `json:"labor_with_overhead_profit"`
	GearAmortized           float64 `json:"gear_amortized"`
	TravelCost              float64 `json:"travel_cost"`
	RentalCosts             float64 `json:"rental_costs"`
	UsageRightsCost         float64 `json:"usage_rights_cost"`
	TalentFees              float64 `json:"talent_fees"`
	Subtotal                float64 `json:"subtotal"`
	RushFee                 float64 `json:"rush_fee"`
	NonprofitDiscount       float64 `json:"nonprofit_discount"`
	CustomDiscount          float64 `json:"custom_discount"`
	TaxableAmount           float64 `json:"taxable_amount"`
	Tax                     float64 `json:"tax"`
	Total                   float64 `json:"total"`
	DepositDue              float64 `json:"deposit_due"`
	BalanceDue              float64 `json:"balance_due"`

	DayType              DayType            `json:"day_type"`
	Hours                float64            `json:"hours"`
	ExperienceMultiplier float64            `json:"experience_multiplier"`
	AppliedMultipliers   AppliedMultipliers `json:"applied_multipliers"`
}
