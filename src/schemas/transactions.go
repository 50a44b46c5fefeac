package schemas

import (
	"time"

	"github.com/shopspring/decimal"
)

type CreateTransactionRequest struct {
	Symbol          string          `json:"symbol"`
	TransactionType string          `json:"transaction_type"`
	Quantity        decimal.Decimal `json:"quantity"`
	Price           decimal.Decimal `json:"price"`
	Notes           string          `json:"notes"`
	TransactionDate *time.Time      `json:"transaction_date,omitempty"`
}

type TransactionResponse struct {
	ID              int             `json:"id"`
	PortfolioID     int             `json:"portfolio_id"`
	PositionID      int             `json:"position_id"`
	TransactionType string          `json:"transaction_type"`
	Quantity        decimal.Decimal `json:"quantity"`
	Price           decimal.Decimal `json:"price"`
	Notes           string          `json:"notes"`
	TransactionDate time.Time       `json:"transaction_date"`
	CreatedAt       time.Time       `json:"created_at"`
}
