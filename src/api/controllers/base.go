package controllers

import (
	"tracker/src/services"
)

type Controller struct {
	PortfolioService services.PortfolioServiceI
	SyncService      services.SyncServiceI
	DashboardService services.DashboardServiceI
}

func NewController(
	portfolioService services.PortfolioServiceI,
	syncService services.SyncServiceI,
	dashboardService services.DashboardServiceI,
) *Controller {
	return &Controller{
		PortfolioService: portfolioService,
		SyncService:      syncService,
		DashboardService: dashboardService,
	}
}
