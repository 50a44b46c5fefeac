package controllers

import (
	"context"

	"tracker/src/models"
	"tracker/src/schemas"
)

func (c *Controller) SaveBrokerCredentials(ctx context.Context, brokerName string, req *schemas.SaveBrokerCredentialsRequest) (*models.BrokerCredential, error) {
	return c.SyncService.SaveCredentials(ctx, brokerName, req)
}

func (c *Controller) GetBrokerCredentials(ctx context.Context, userID int) ([]schemas.BrokerCredentialResponse, error) {
	return c.SyncService.GetCredentials(ctx, userID)
}

func (c *Controller) DeleteBrokerCredentials(ctx context.Context, userID int, brokerName string) (bool, error) {
	return c.SyncService.DeleteCredentials(ctx, userID, brokerName)
}

func (c *Controller) SyncHoldings(ctx context.Context, userID, portfolioID int, brokerName string) (*schemas.SyncHoldingsResponse, error) {
	resp, err := c.SyncService.SyncHoldings(ctx, userID, portfolioID, brokerName)
	if err != nil {
		return nil, err
	}
	c.DashboardService.InvalidateStats(userID)
	return resp, nil
}

func (c *Controller) SyncTrades(ctx context.Context, userID, portfolioID int, brokerName string) (*schemas.SyncTradesResponse, error) {
	return c.SyncService.SyncTrades(ctx, userID, portfolioID, brokerName)
}
