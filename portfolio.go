package tracker

import (
	"iter"
	"slices"

	"github.com/invtracker/tracker/timepoint"
)

// Portfolio aggregates investments and values them in a base currency,
// through a designated vehicle holding the USD to base-currency exchange
// rate.
type Portfolio struct {
	row
	rate        *Vehicle
	investments []*Investment
}

// NewPortfolio returns a portfolio valued through the given USD to
// base-currency rate vehicle. Duplicate investments are kept once.
func NewPortfolio(rate *Vehicle, investments ...*Investment) *Portfolio {
	p := &Portfolio{rate: rate}
	for _, inv := range investments {
		p.AddInvestment(inv)
	}
	return p
}

// Rate returns the USD to base-currency exchange-rate vehicle.
func (p *Portfolio) Rate() *Vehicle { return p.rate }

// AddInvestment adds an investment to the portfolio. The membership has set
// semantics: adding the same investment again is a no-op.
func (p *Portfolio) AddInvestment(inv *Investment) {
	if slices.Contains(p.investments, inv) {
		return
	}
	p.investments = append(p.investments, inv)
}

// Investments returns an iterator over the portfolio's investments.
func (p *Portfolio) Investments() iter.Seq[*Investment] {
	return func(yield func(*Investment) bool) {
		for _, inv := range p.investments {
			if !yield(inv) {
				return
			}
		}
	}
}

// Len returns the number of investments in the portfolio.
func (p *Portfolio) Len() int { return len(p.investments) }

// PriceAt returns the portfolio's value at 'on' in the base currency: the
// sum of every covered investment's USD value converted at the exchange rate
// recorded at 'on'. Investments lacking coverage at 'on' contribute zero.
//
// An empty portfolio values to zero, but ContainsDate is then false
// everywhere: callers must treat an uncovered point as undefined, not as a
// meaningful zero.
func (p *Portfolio) PriceAt(on timepoint.Point) (float64, error) {
	rate, err := p.rate.PriceAt(on)
	if err != nil {
		return 0, err
	}
	var sum float64
	for _, inv := range p.investments {
		if !inv.ContainsDate(on) {
			continue
		}
		usd, err := inv.PriceAt(on)
		if err != nil {
			return 0, err
		}
		sum += usd * rate
	}
	return sum, nil
}

// ContainsDate reports whether at least one investment contains 'on'. The
// portfolio is defined wherever any holding has data, not where all of them
// do.
func (p *Portfolio) ContainsDate(on timepoint.Point) bool {
	for _, inv := range p.investments {
		if inv.ContainsDate(on) {
			return true
		}
	}
	return false
}

// Table returns the remote collection portfolios are saved to.
func (p *Portfolio) Table() string { return tablePortfolios }

var _ PriceTicker = (*Portfolio)(nil)
var _ Entry = (*Portfolio)(nil)
