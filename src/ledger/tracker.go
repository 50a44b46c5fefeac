package ledger

import "github.com/shopspring/decimal"

// Tracker is an in-memory registry of portfolios keyed by name. It backs
// workflows that operate on a user's whole holdings set before anything is
// persisted.
type Tracker struct {
	portfolios []*Portfolio
}

// NewTracker returns an empty tracker.
func NewTracker() *Tracker {
	return &Tracker{}
}

// CreatePortfolio creates and registers a new named portfolio.
func (t *Tracker) CreatePortfolio(name string) *Portfolio {
	p := NewPortfolio(name)
	t.portfolios = append(t.portfolios, p)
	return p
}

// Portfolio returns the portfolio with the given name, or nil.
func (t *Tracker) Portfolio(name string) *Portfolio {
	for _, p := range t.portfolios {
		if p.Name == name {
			return p
		}
	}
	return nil
}

// DeletePortfolio removes a portfolio and all positions it owns. It reports
// whether the portfolio existed.
func (t *Tracker) DeletePortfolio(name string) bool {
	for i, p := range t.portfolios {
		if p.Name == name {
			t.portfolios = append(t.portfolios[:i], t.portfolios[i+1:]...)
			return true
		}
	}
	return false
}

// Portfolios returns all registered portfolios in creation order.
func (t *Tracker) Portfolios() []*Portfolio {
	return t.portfolios
}

// TotalValue returns the combined current value across every portfolio.
func (t *Tracker) TotalValue() decimal.Decimal {
	total := decimal.Zero
	for _, p := range t.portfolios {
		total = total.Add(p.TotalValue())
	}
	return total
}
