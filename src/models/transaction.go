package models

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	TransactionTypeBuy  = "buy"
	TransactionTypeSell = "sell"
)

type Transaction struct {
	ID              int             `db:"id"`
	PortfolioID     int             `db:"portfolio_id"`
	PositionID      int             `db:"position_id"`
	TransactionType string          `db:"transaction_type"`
	Quantity        decimal.Decimal `db:"quantity"`
	Price           decimal.Decimal `db:"price"`
	Notes           string          `db:"notes"`
	TransactionDate time.Time       `db:"transaction_date"`
	CreatedAt       time.Time       `db:"created_at"`
}
