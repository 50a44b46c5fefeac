package controllers

import (
	"context"

	"tracker/src/schemas"
)

func (c *Controller) GetDashboardStats(ctx context.Context, userID int) (*schemas.DashboardStats, error) {
	return c.DashboardService.GetStats(ctx, userID)
}
