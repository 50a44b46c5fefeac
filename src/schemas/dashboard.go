package schemas

import "github.com/shopspring/decimal"

type PerformerStat struct {
	Symbol        string          `json:"symbol"`
	Name          string          `json:"name"`
	ReturnPercent decimal.Decimal `json:"return_percent"`
	GainLoss      decimal.Decimal `json:"gain_loss"`
}

// DashboardStats aggregates every portfolio of a user. Percentages follow the
// same rule as the ledger: exactly zero when the invested amount is zero.
type DashboardStats struct {
	TotalPortfolioValue  decimal.Decimal  `json:"total_portfolio_value"`
	TotalInvested        decimal.Decimal  `json:"total_invested"`
	TotalGainLoss        decimal.Decimal  `json:"total_gain_loss"`
	GainLossPercent      decimal.Decimal  `json:"gain_loss_percentage"`
	NumberOfPortfolios   int              `json:"number_of_portfolios"`
	NumberOfAssets       int              `json:"number_of_assets"`
	BestPerformer        *PerformerStat   `json:"best_performer,omitempty"`
	WorstPerformer       *PerformerStat   `json:"worst_performer,omitempty"`
	AverageReturn        *decimal.Decimal `json:"average_return,omitempty"`
	DiversificationScore int              `json:"diversification_score"`
	WinningAssets        int              `json:"winning_assets"`
	LosingAssets         int              `json:"losing_assets"`
}
