package pricing

import "github.com/fieldcraft/cinequote/internal/money"

// NegotiationRange is a derived low/high bracket around the committed total,
// used as client negotiation guidance. It never alters the quote itself.
type NegotiationRange struct {
	Low  float64 `json:"low"`
	High float64 `json:"high"`
}

// DeriveNegotiationRange brackets an already-computed quote. The low tier is
// the break-even floor (the total with the profit-margin contribution taken
// back out); the high tier scales the total by the desired profit margin.
// Both tiers are derived from the same numbers as the committed quote so the
// displayed tiers can never disagree with it.
func DeriveNegotiationRange(result *QuoteResult, settings *Settings) *NegotiationRange {
	if result == nil || settings == nil {
		return nil
	}
	return &NegotiationRange{
		Low:  money.Round2(result.Total - result.ProfitMargin),
		High: money.Round2(result.Total * (1 + settings.DesiredProfitMarginPercent/100)),
	}
}
