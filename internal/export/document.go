// Package export flattens engine results into one document shape that the
// clipboard, print and PDF consumers all template from. Both engines
// converge here on {description, amount} lines plus total and deposit
// split; export never recomputes pricing.
package export

import (
	"fmt"
	"time"

	"github.com/fieldcraft/cinequote/internal/deliverable"
	"github.com/fieldcraft/cinequote/internal/money"
	"github.com/fieldcraft/cinequote/internal/pricing"
)

// Line is one display row of an exported document.
type Line struct {
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
	IsSection   bool    `json:"is_section,omitempty"`
}

// Document is the engine-independent export shape.
type Document struct {
	Title      string    `json:"title"`
	Number     string    `json:"number,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	Lines      []Line    `json:"lines"`
	Total      float64   `json:"total"`
	DepositDue float64   `json:"deposit_due"`
	BalanceDue float64   `json:"balance_due"`
}

// FromQuote flattens a role-engine result. The labor line items come first,
// then the non-labor cost components and adjustments from the numeric
// breakdown. Returns nil for a nil result.
func FromQuote(result *pricing.QuoteResult, title string) *Document {
	if result == nil {
		return nil
	}

	lines := make([]Line, 0, len(result.LineItems)+8)
	for _, item := range result.LineItems {
		lines = append(lines, Line{Description: item.Description, Amount: item.Amount, IsSection: item.IsSection})
	}

	appendIfNonzero := func(desc string, amount float64) {
		if amount != 0 {
			lines = append(lines, Line{Description: desc, Amount: amount})
		}
	}
	appendIfNonzero("Overhead", result.Overhead)
	appendIfNonzero("Profit Margin", result.ProfitMargin)
	appendIfNonzero("Gear & Equipment", result.GearAmortized)
	appendIfNonzero("Travel", result.TravelCost)
	appendIfNonzero("Rentals", result.RentalCosts)
	appendIfNonzero("Usage Rights", result.UsageRightsCost)
	appendIfNonzero("Talent Fees", result.TalentFees)
	appendIfNonzero("Rush Fee", result.RushFee)
	appendIfNonzero("Nonprofit Discount", -result.NonprofitDiscount)
	appendIfNonzero("Discount", -result.CustomDiscount)
	appendIfNonzero("Tax", result.Tax)

	return &Document{
		Title:      title,
		CreatedAt:  time.Now(),
		Lines:      lines,
		Total:      result.Total,
		DepositDue: result.DepositDue,
		BalanceDue: result.BalanceDue,
	}
}

// FromDeliverableQuote flattens a deliverable-engine result. The deliverable
// engine has no deposit concept, so the split is derived here from the
// studio deposit percentage. Returns nil for failed results; callers should
// gate export on Failed().
func FromDeliverableQuote(result deliverable.Result, title string, depositPercent float64) *Document {
	if result.Failed() {
		return nil
	}

	lines := make([]Line, 0, len(result.LineItems)+1)
	for _, item := range result.LineItems {
		lines = append(lines, Line{Description: item.Label, Amount: item.Amount, IsSection: item.IsSection})
	}
	if sm := result.Pricing.ScopedMultiplier; sm.MultiplierAmount != 0 {
		lines = append(lines, Line{
			Description: fmt.Sprintf("Production multiplier (x%.2f)", sm.Multiplier),
			Amount:      sm.MultiplierAmount,
		})
	}

	total := result.Pricing.Total
	deposit := money.Round2(total * depositPercent / 100)
	return &Document{
		Title:      title,
		CreatedAt:  time.Now(),
		Lines:      lines,
		Total:      total,
		DepositDue: deposit,
		BalanceDue: money.Round2(total - deposit),
	}
}
