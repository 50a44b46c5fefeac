package controllers

import (
	"context"

	"tracker/src/models"
	"tracker/src/schemas"
)

func (c *Controller) CreatePortfolio(ctx context.Context, req *schemas.CreatePortfolioRequest) (*models.Portfolio, error) {
	return c.PortfolioService.CreatePortfolio(ctx, req)
}

func (c *Controller) GetPortfolio(ctx context.Context, id int) (*models.Portfolio, error) {
	return c.PortfolioService.GetPortfolio(ctx, id)
}

func (c *Controller) GetPortfoliosByUser(ctx context.Context, userID int) ([]models.Portfolio, error) {
	return c.PortfolioService.GetPortfoliosByUser(ctx, userID)
}

func (c *Controller) UpdatePortfolio(ctx context.Context, id int, req *schemas.UpdatePortfolioRequest) (*models.Portfolio, error) {
	return c.PortfolioService.UpdatePortfolio(ctx, id, req)
}

func (c *Controller) DeletePortfolio(ctx context.Context, id int) (bool, error) {
	return c.PortfolioService.DeletePortfolio(ctx, id)
}

func (c *Controller) AddAsset(ctx context.Context, portfolioID int, req *schemas.AddAssetRequest) (*models.Position, error) {
	return c.PortfolioService.AddAsset(ctx, portfolioID, req)
}

func (c *Controller) RemoveAsset(ctx context.Context, portfolioID int, symbol string) (bool, error) {
	return c.PortfolioService.RemoveAsset(ctx, portfolioID, symbol)
}

func (c *Controller) GetSummary(ctx context.Context, portfolioID int) (*schemas.PortfolioSummary, error) {
	return c.PortfolioService.GetSummary(ctx, portfolioID)
}

func (c *Controller) RecordTransaction(ctx context.Context, portfolioID int, req *schemas.CreateTransactionRequest) (*models.Transaction, error) {
	return c.PortfolioService.RecordTransaction(ctx, portfolioID, req)
}

func (c *Controller) GetTransactions(ctx context.Context, portfolioID int) ([]models.Transaction, error) {
	return c.PortfolioService.GetTransactions(ctx, portfolioID)
}
