package ledger

import (
	"time"

	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// Position is the aggregated holding of a single symbol within a portfolio.
// Quantity and prices are exact decimals; PurchasePrice is the quantity-weighted
// average cost of every buy merged into the position, never a plain average.
type Position struct {
	Symbol        string          `json:"symbol"`
	Name          string          `json:"name"`
	Quantity      decimal.Decimal `json:"quantity"`
	CurrentPrice  decimal.Decimal `json:"current_price"`
	PurchasePrice decimal.Decimal `json:"purchase_price"`
	PurchaseDate  time.Time       `json:"purchase_date"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// CurrentValue returns quantity times current market price.
func (p *Position) CurrentValue() decimal.Decimal {
	return p.Quantity.Mul(p.CurrentPrice)
}

// CostBasis returns quantity times weighted-average purchase price.
func (p *Position) CostBasis() decimal.Decimal {
	return p.Quantity.Mul(p.PurchasePrice)
}

// GainLoss returns the unrealized gain or loss of the position.
func (p *Position) GainLoss() decimal.Decimal {
	return p.CurrentValue().Sub(p.CostBasis())
}

// GainLossPercent returns the unrealized gain or loss as a percentage of cost
// basis. A zero cost basis yields exactly zero so consumers always get a
// displayable number.
func (p *Position) GainLossPercent() decimal.Decimal {
	basis := p.CostBasis()
	if basis.IsZero() {
		return decimal.Zero
	}
	return p.GainLoss().Div(basis).Mul(hundred)
}
