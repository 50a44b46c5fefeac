package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Position is the persisted form of a ledger position. (portfolio_id, symbol)
// is unique; quantities and prices are NUMERIC columns scanned into exact
// decimals.
type Position struct {
	ID            int             `db:"id"`
	PortfolioID   int             `db:"portfolio_id"`
	Symbol        string          `db:"symbol"`
	Name          string          `db:"name"`
	Quantity      decimal.Decimal `db:"quantity"`
	CurrentPrice  decimal.Decimal `db:"current_price"`
	PurchasePrice decimal.Decimal `db:"purchase_price"`
	PurchaseDate  time.Time       `db:"purchase_date"`
	CreatedAt     time.Time       `db:"created_at"`
	UpdatedAt     time.Time       `db:"updated_at"`
}
