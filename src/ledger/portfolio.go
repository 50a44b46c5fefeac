package ledger

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"
)

// Portfolio holds the positions of one portfolio keyed by symbol. Symbols are
// unique within a portfolio; insertion order is irrelevant. The portfolio is
// not safe for concurrent mutation, callers serialize merges (one logical
// mutation per request, guarded by the storage transaction boundary).
type Portfolio struct {
	Name      string
	CreatedAt time.Time

	positions map[string]*Position
}

// NewPortfolio returns an empty portfolio with the given name.
func NewPortfolio(name string) *Portfolio {
	return &Portfolio{
		Name:      name,
		CreatedAt: time.Now().UTC(),
		positions: make(map[string]*Position),
	}
}

// AddPosition adds an asset to the portfolio, merging it into an existing
// position of the same symbol if there is one.
//
// On a merge the quantity is the sum of both quantities and the purchase price
// is the quantity-weighted average cost basis:
//
//	(oldQty*oldPurchase + newQty*newPurchase) / (oldQty + newQty)
//
// When the merged quantity nets out to zero the purchase price is reset to the
// newly supplied one instead; the position restarts from that price. The
// current price is always overwritten, never averaged. Negative resulting
// quantities are permitted, oversell validation belongs upstream.
func (p *Portfolio) AddPosition(symbol, name string, quantity, currentPrice, purchasePrice decimal.Decimal) *Position {
	now := time.Now().UTC()

	existing, ok := p.positions[symbol]
	if !ok {
		pos := &Position{
			Symbol:        symbol,
			Name:          name,
			Quantity:      quantity,
			CurrentPrice:  currentPrice,
			PurchasePrice: purchasePrice,
			PurchaseDate:  now,
			UpdatedAt:     now,
		}
		p.positions[symbol] = pos
		return pos
	}

	mergedQuantity := existing.Quantity.Add(quantity)
	var mergedPurchasePrice decimal.Decimal
	if mergedQuantity.IsZero() {
		// Avoid dividing by zero; the flat position restarts at the new price.
		mergedPurchasePrice = purchasePrice
	} else {
		totalCost := existing.CostBasis().Add(quantity.Mul(purchasePrice))
		mergedPurchasePrice = totalCost.Div(mergedQuantity)
	}

	pos := &Position{
		Symbol:        symbol,
		Name:          name,
		Quantity:      mergedQuantity,
		CurrentPrice:  currentPrice,
		PurchasePrice: mergedPurchasePrice,
		PurchaseDate:  now,
		UpdatedAt:     now,
	}
	p.positions[symbol] = pos
	return pos
}

// SetPosition places a fully formed position into the portfolio, replacing any
// existing one for the same symbol. Used when rehydrating from storage.
func (p *Portfolio) SetPosition(pos *Position) {
	p.positions[pos.Symbol] = pos
}

// RemovePosition deletes the whole position for a symbol. It reports whether
// the symbol was present.
func (p *Portfolio) RemovePosition(symbol string) bool {
	if _, ok := p.positions[symbol]; !ok {
		return false
	}
	delete(p.positions, symbol)
	return true
}

// Position returns the position for a symbol, or nil if the portfolio does not
// hold it.
func (p *Portfolio) Position(symbol string) *Position {
	return p.positions[symbol]
}

// Positions returns all positions sorted by symbol.
func (p *Portfolio) Positions() []*Position {
	out := make([]*Position, 0, len(p.positions))
	for _, pos := range p.positions {
		out = append(out, pos)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Symbol < out[j].Symbol })
	return out
}

// TotalValue returns the sum of the current values of all positions.
func (p *Portfolio) TotalValue() decimal.Decimal {
	total := decimal.Zero
	for _, pos := range p.positions {
		total = total.Add(pos.CurrentValue())
	}
	return total
}

// TotalCostBasis returns the sum of the cost bases of all positions.
func (p *Portfolio) TotalCostBasis() decimal.Decimal {
	total := decimal.Zero
	for _, pos := range p.positions {
		total = total.Add(pos.CostBasis())
	}
	return total
}

// TotalGainLoss returns total current value minus total cost basis.
func (p *Portfolio) TotalGainLoss() decimal.Decimal {
	return p.TotalValue().Sub(p.TotalCostBasis())
}

// TotalGainLossPercent computes the portfolio gain/loss percentage from the
// aggregated totals, not by averaging per-asset percentages. Zero total cost
// basis yields exactly zero, same rule as the per-position figure.
func (p *Portfolio) TotalGainLossPercent() decimal.Decimal {
	basis := p.TotalCostBasis()
	if basis.IsZero() {
		return decimal.Zero
	}
	return p.TotalGainLoss().Div(basis).Mul(hundred)
}
