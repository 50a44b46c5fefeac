package services_test

import (
	"context"
	"testing"

	"tracker/src/schemas"
	"tracker/src/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetStats(t *testing.T) {
	ctx := context.Background()

	portfolioRepo := newMemPortfolioRepo()
	positionRepo := newMemPositionRepo()
	transactionRepo := newMemTransactionRepo()
	portfolioService := services.NewPortfolioService(portfolioRepo, positionRepo, transactionRepo)
	dashboard := services.NewDashboardService(portfolioRepo, positionRepo)

	growth, err := portfolioService.CreatePortfolio(ctx, &schemas.CreatePortfolioRequest{UserID: 1, Name: "Growth"})
	require.NoError(t, err)
	income, err := portfolioService.CreatePortfolio(ctx, &schemas.CreatePortfolioRequest{UserID: 1, Name: "Income"})
	require.NoError(t, err)

	// someone else's portfolio must not leak into user 1's stats
	_, err = portfolioService.CreatePortfolio(ctx, &schemas.CreatePortfolioRequest{UserID: 2, Name: "Other"})
	require.NoError(t, err)

	for _, req := range []struct {
		portfolioID int
		asset       schemas.AddAssetRequest
	}{
		{growth.ID, schemas.AddAssetRequest{Symbol: "AAPL", Name: "Apple Inc.", Quantity: dec("10"), CurrentPrice: dec("100"), PurchasePrice: dec("80")}},
		{growth.ID, schemas.AddAssetRequest{Symbol: "GOOGL", Name: "Alphabet", Quantity: dec("5"), CurrentPrice: dec("200"), PurchasePrice: dec("250")}},
		{income.ID, schemas.AddAssetRequest{Symbol: "KO", Name: "Coca-Cola", Quantity: dec("20"), CurrentPrice: dec("50"), PurchasePrice: dec("50")}},
		{income.ID, schemas.AddAssetRequest{Symbol: "FREE", Name: "Airdrop", Quantity: dec("7"), CurrentPrice: dec("3"), PurchasePrice: dec("0")}},
	} {
		asset := req.asset
		_, err := portfolioService.AddAsset(ctx, req.portfolioID, &asset)
		require.NoError(t, err)
	}

	stats, err := dashboard.GetStats(ctx, 1)
	require.NoError(t, err)

	// values: 10*100 + 5*200 + 20*50 + 7*3 = 3021
	assert.True(t, stats.TotalPortfolioValue.Equal(dec("3021")), "got %s", stats.TotalPortfolioValue)
	// invested: 10*80 + 5*250 + 20*50 + 0 = 3050
	assert.True(t, stats.TotalInvested.Equal(dec("3050")))
	assert.True(t, stats.TotalGainLoss.Equal(dec("-29")))

	want := dec("-29").Div(dec("3050")).Mul(dec("100"))
	assert.True(t, stats.GainLossPercent.Equal(want))

	assert.Equal(t, 2, stats.NumberOfPortfolios)
	assert.Equal(t, 4, stats.NumberOfAssets)
	assert.Equal(t, 4, stats.DiversificationScore)

	// AAPL +200, GOOGL -250, KO flat, FREE +21 with zero basis
	assert.Equal(t, 2, stats.WinningAssets)
	assert.Equal(t, 1, stats.LosingAssets)

	require.NotNil(t, stats.BestPerformer)
	require.NotNil(t, stats.WorstPerformer)
	assert.Equal(t, "AAPL", stats.BestPerformer.Symbol)
	assert.Equal(t, "GOOGL", stats.WorstPerformer.Symbol)

	// FREE has no cost basis, so only three positions contribute returns
	require.NotNil(t, stats.AverageReturn)
	aapl := dec("25")   // 200/800*100
	googl := dec("-20") // -250/1250*100
	ko := dec("0")
	wantAvg := aapl.Add(googl).Add(ko).Div(dec("3"))
	assert.True(t, stats.AverageReturn.Equal(wantAvg), "got %s want %s", stats.AverageReturn, wantAvg)
}

func TestGetStatsEmptyUser(t *testing.T) {
	ctx := context.Background()
	dashboard := services.NewDashboardService(newMemPortfolioRepo(), newMemPositionRepo())

	stats, err := dashboard.GetStats(ctx, 7)
	require.NoError(t, err)

	assert.True(t, stats.TotalPortfolioValue.IsZero())
	assert.True(t, stats.GainLossPercent.IsZero(), "zero invested yields exactly zero percent")
	assert.Equal(t, 0, stats.NumberOfPortfolios)
	assert.Nil(t, stats.BestPerformer)
	assert.Nil(t, stats.AverageReturn)
}

func TestGetStatsCaching(t *testing.T) {
	ctx := context.Background()

	portfolioRepo := newMemPortfolioRepo()
	positionRepo := newMemPositionRepo()
	transactionRepo := newMemTransactionRepo()
	portfolioService := services.NewPortfolioService(portfolioRepo, positionRepo, transactionRepo)
	dashboard := services.NewDashboardService(portfolioRepo, positionRepo)

	p, err := portfolioService.CreatePortfolio(ctx, &schemas.CreatePortfolioRequest{UserID: 1, Name: "Growth"})
	require.NoError(t, err)

	before, err := dashboard.GetStats(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 0, before.NumberOfAssets)

	_, err = portfolioService.AddAsset(ctx, p.ID, &schemas.AddAssetRequest{
		Symbol: "AAPL", Name: "Apple Inc.", Quantity: dec("1"), CurrentPrice: dec("1"), PurchasePrice: dec("1"),
	})
	require.NoError(t, err)

	cached, err := dashboard.GetStats(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 0, cached.NumberOfAssets, "stale value served within TTL")

	dashboard.InvalidateStats(1)

	fresh, err := dashboard.GetStats(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 1, fresh.NumberOfAssets)
}
