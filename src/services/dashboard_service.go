package services

import (
	"context"
	"sync"
	"time"

	"tracker/src/ledger"
	"tracker/src/repositories"
	"tracker/src/schemas"
	"tracker/src/utils"

	"github.com/shopspring/decimal"
)

const statsCacheTTL = 30 * time.Second

type DashboardServiceI interface {
	GetStats(ctx context.Context, userID int) (*schemas.DashboardStats, error)
	InvalidateStats(userID int)
}

// DashboardService aggregates gain/loss figures across all portfolios of a
// user. Everything is derived from stored positions on read; results are
// cached briefly per user.
type DashboardService struct {
	portfolioRepo repositories.PortfolioRepository
	positionRepo  repositories.PositionRepository

	mu     sync.Mutex
	caches map[int]*utils.Cache[*schemas.DashboardStats]
}

func NewDashboardService(
	portfolioRepo repositories.PortfolioRepository,
	positionRepo repositories.PositionRepository,
) *DashboardService {
	return &DashboardService{
		portfolioRepo: portfolioRepo,
		positionRepo:  positionRepo,
		caches:        make(map[int]*utils.Cache[*schemas.DashboardStats]),
	}
}

func (s *DashboardService) cacheFor(userID int) *utils.Cache[*schemas.DashboardStats] {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.caches[userID]
	if !ok {
		c = utils.NewCache[*schemas.DashboardStats]()
		s.caches[userID] = c
	}
	return c
}

// InvalidateStats drops the cached aggregate after a mutation.
func (s *DashboardService) InvalidateStats(userID int) {
	s.cacheFor(userID).Clear()
}

func (s *DashboardService) GetStats(ctx context.Context, userID int) (*schemas.DashboardStats, error) {
	cache := s.cacheFor(userID)
	if stats, ok := cache.Get(); ok {
		return stats, nil
	}

	portfolios, err := s.portfolioRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	totalValue := decimal.Zero
	totalInvested := decimal.Zero
	assetCount := 0
	winning, losing := 0, 0
	symbols := make(map[string]struct{})
	returnsSum := decimal.Zero
	returnsCount := 0
	var best, worst *schemas.PerformerStat

	for _, p := range portfolios {
		positions, err := s.positionRepo.GetByPortfolioID(ctx, p.ID)
		if err != nil {
			return nil, err
		}

		book := ledger.NewPortfolio(p.Name)
		for i := range positions {
			book.SetPosition(&ledger.Position{
				Symbol:        positions[i].Symbol,
				Name:          positions[i].Name,
				Quantity:      positions[i].Quantity,
				CurrentPrice:  positions[i].CurrentPrice,
				PurchasePrice: positions[i].PurchasePrice,
			})
		}

		totalValue = totalValue.Add(book.TotalValue())
		totalInvested = totalInvested.Add(book.TotalCostBasis())
		assetCount += len(positions)

		for _, pos := range book.Positions() {
			symbols[pos.Symbol] = struct{}{}

			gainLoss := pos.GainLoss()
			if gainLoss.IsPositive() {
				winning++
			} else if gainLoss.IsNegative() {
				losing++
			}

			// Performer ranking only considers positions with money invested,
			// a zero basis has no meaningful return percentage.
			basis := pos.CostBasis()
			if !basis.IsPositive() {
				continue
			}
			returnPct := pos.GainLossPercent()
			returnsSum = returnsSum.Add(returnPct)
			returnsCount++

			stat := &schemas.PerformerStat{
				Symbol:        pos.Symbol,
				Name:          pos.Name,
				ReturnPercent: returnPct,
				GainLoss:      gainLoss,
			}
			if best == nil || stat.ReturnPercent.GreaterThan(best.ReturnPercent) {
				best = stat
			}
			if worst == nil || stat.ReturnPercent.LessThan(worst.ReturnPercent) {
				worst = stat
			}
		}
	}

	totalGainLoss := totalValue.Sub(totalInvested)
	gainLossPercent := decimal.Zero
	if !totalInvested.IsZero() {
		gainLossPercent = totalGainLoss.Div(totalInvested).Mul(decimal.NewFromInt(100))
	}

	var averageReturn *decimal.Decimal
	if returnsCount > 0 {
		avg := returnsSum.Div(decimal.NewFromInt(int64(returnsCount)))
		averageReturn = &avg
	}

	stats := &schemas.DashboardStats{
		TotalPortfolioValue:  totalValue,
		TotalInvested:        totalInvested,
		TotalGainLoss:        totalGainLoss,
		GainLossPercent:      gainLossPercent,
		NumberOfPortfolios:   len(portfolios),
		NumberOfAssets:       assetCount,
		BestPerformer:        best,
		WorstPerformer:       worst,
		AverageReturn:        averageReturn,
		DiversificationScore: len(symbols),
		WinningAssets:        winning,
		LosingAssets:         losing,
	}
	cache.Set(stats, statsCacheTTL)
	return stats, nil
}
