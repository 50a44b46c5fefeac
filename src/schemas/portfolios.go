package schemas

import (
	"time"

	"github.com/shopspring/decimal"
)

type CreatePortfolioRequest struct {
	UserID      int    `json:"user_id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

type UpdatePortfolioRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

type PortfolioResponse struct {
	ID          int       `json:"id"`
	UserID      int       `json:"user_id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// AssetSummary carries the derived valuation figures of one position. All
// fields are computed on read, never stored.
type AssetSummary struct {
	Symbol          string          `json:"symbol"`
	Name            string          `json:"name"`
	Quantity        decimal.Decimal `json:"quantity"`
	CurrentPrice    decimal.Decimal `json:"current_price"`
	PurchasePrice   decimal.Decimal `json:"purchase_price"`
	CurrentValue    decimal.Decimal `json:"current_value"`
	CostBasis       decimal.Decimal `json:"cost_basis"`
	GainLoss        decimal.Decimal `json:"gain_loss"`
	GainLossPercent decimal.Decimal `json:"gain_loss_percent"`
	PurchaseDate    time.Time       `json:"purchase_date"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

type PortfolioSummary struct {
	ID                   int             `json:"id"`
	Name                 string          `json:"name"`
	Assets               []AssetSummary  `json:"assets"`
	TotalValue           decimal.Decimal `json:"total_value"`
	TotalCostBasis       decimal.Decimal `json:"total_cost_basis"`
	TotalGainLoss        decimal.Decimal `json:"total_gain_loss"`
	TotalGainLossPercent decimal.Decimal `json:"total_gain_loss_percent"`
}
