package services

import (
	"context"
	"time"

	"tracker/src/ledger"
	"tracker/src/models"
	"tracker/src/repositories"
	"tracker/src/schemas"
)

type PortfolioServiceI interface {
	CreatePortfolio(ctx context.Context, req *schemas.CreatePortfolioRequest) (*models.Portfolio, error)
	GetPortfolio(ctx context.Context, id int) (*models.Portfolio, error)
	GetPortfoliosByUser(ctx context.Context, userID int) ([]models.Portfolio, error)
	UpdatePortfolio(ctx context.Context, id int, req *schemas.UpdatePortfolioRequest) (*models.Portfolio, error)
	DeletePortfolio(ctx context.Context, id int) (bool, error)
	AddAsset(ctx context.Context, portfolioID int, req *schemas.AddAssetRequest) (*models.Position, error)
	RemoveAsset(ctx context.Context, portfolioID int, symbol string) (bool, error)
	GetSummary(ctx context.Context, portfolioID int) (*schemas.PortfolioSummary, error)
	RecordTransaction(ctx context.Context, portfolioID int, req *schemas.CreateTransactionRequest) (*models.Transaction, error)
	GetTransactions(ctx context.Context, portfolioID int) ([]models.Transaction, error)
}

type PortfolioService struct {
	portfolioRepo   repositories.PortfolioRepository
	positionRepo    repositories.PositionRepository
	transactionRepo repositories.TransactionRepository
}

func NewPortfolioService(
	portfolioRepo repositories.PortfolioRepository,
	positionRepo repositories.PositionRepository,
	transactionRepo repositories.TransactionRepository,
) *PortfolioService {
	return &PortfolioService{
		portfolioRepo:   portfolioRepo,
		positionRepo:    positionRepo,
		transactionRepo: transactionRepo,
	}
}

func (s *PortfolioService) CreatePortfolio(ctx context.Context, req *schemas.CreatePortfolioRequest) (*models.Portfolio, error) {
	p := &models.Portfolio{
		UserID:      req.UserID,
		Name:        req.Name,
		Description: req.Description,
	}
	if err := s.portfolioRepo.Create(ctx, p, nil); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *PortfolioService) GetPortfolio(ctx context.Context, id int) (*models.Portfolio, error) {
	p, err := s.portfolioRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, ErrPortfolioNotFound
	}
	return p, nil
}

func (s *PortfolioService) GetPortfoliosByUser(ctx context.Context, userID int) ([]models.Portfolio, error) {
	return s.portfolioRepo.GetByUserID(ctx, userID)
}

func (s *PortfolioService) UpdatePortfolio(ctx context.Context, id int, req *schemas.UpdatePortfolioRequest) (*models.Portfolio, error) {
	p, err := s.GetPortfolio(ctx, id)
	if err != nil {
		return nil, err
	}
	if req.Name != "" {
		p.Name = req.Name
	}
	p.Description = req.Description
	if err := s.portfolioRepo.Update(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// DeletePortfolio removes the portfolio together with every position and
// transaction it owns.
func (s *PortfolioService) DeletePortfolio(ctx context.Context, id int) (bool, error) {
	return s.portfolioRepo.Delete(ctx, id)
}

// AddAsset runs the ledger add-or-merge against the stored position for the
// symbol and persists the result. Concurrent merges on the same symbol are
// serialized by the upsert, one logical mutation per request.
func (s *PortfolioService) AddAsset(ctx context.Context, portfolioID int, req *schemas.AddAssetRequest) (*models.Position, error) {
	if req.Symbol == "" {
		return nil, ErrSymbolRequired
	}
	if _, err := s.GetPortfolio(ctx, portfolioID); err != nil {
		return nil, err
	}

	stored, err := s.positionRepo.GetBySymbol(ctx, portfolioID, req.Symbol)
	if err != nil {
		return nil, err
	}

	book := ledger.NewPortfolio("")
	if stored != nil {
		book.SetPosition(&ledger.Position{
			Symbol:        stored.Symbol,
			Name:          stored.Name,
			Quantity:      stored.Quantity,
			CurrentPrice:  stored.CurrentPrice,
			PurchasePrice: stored.PurchasePrice,
			PurchaseDate:  stored.PurchaseDate,
			UpdatedAt:     stored.UpdatedAt,
		})
	}
	merged := book.AddPosition(req.Symbol, req.Name, req.Quantity, req.CurrentPrice, req.PurchasePrice)

	position := &models.Position{
		PortfolioID:   portfolioID,
		Symbol:        merged.Symbol,
		Name:          merged.Name,
		Quantity:      merged.Quantity,
		CurrentPrice:  merged.CurrentPrice,
		PurchasePrice: merged.PurchasePrice,
		PurchaseDate:  merged.PurchaseDate,
	}
	if stored != nil {
		position.ID = stored.ID
		position.CreatedAt = stored.CreatedAt
	}
	if err := s.positionRepo.Upsert(ctx, position, nil); err != nil {
		return nil, err
	}
	return position, nil
}

func (s *PortfolioService) RemoveAsset(ctx context.Context, portfolioID int, symbol string) (bool, error) {
	return s.positionRepo.Delete(ctx, portfolioID, symbol)
}

// GetSummary rebuilds the ledger from stored positions and derives the
// valuation figures; nothing derived is ever read from storage.
func (s *PortfolioService) GetSummary(ctx context.Context, portfolioID int) (*schemas.PortfolioSummary, error) {
	p, err := s.GetPortfolio(ctx, portfolioID)
	if err != nil {
		return nil, err
	}

	positions, err := s.positionRepo.GetByPortfolioID(ctx, portfolioID)
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
			PurchaseDate:  positions[i].PurchaseDate,
			UpdatedAt:     positions[i].UpdatedAt,
		})
	}

	summary := &schemas.PortfolioSummary{
		ID:                   p.ID,
		Name:                 p.Name,
		Assets:               make([]schemas.AssetSummary, 0, len(positions)),
		TotalValue:           book.TotalValue(),
		TotalCostBasis:       book.TotalCostBasis(),
		TotalGainLoss:        book.TotalGainLoss(),
		TotalGainLossPercent: book.TotalGainLossPercent(),
	}
	for _, pos := range book.Positions() {
		summary.Assets = append(summary.Assets, schemas.AssetSummary{
			Symbol:          pos.Symbol,
			Name:            pos.Name,
			Quantity:        pos.Quantity,
			CurrentPrice:    pos.CurrentPrice,
			PurchasePrice:   pos.PurchasePrice,
			CurrentValue:    pos.CurrentValue(),
			CostBasis:       pos.CostBasis(),
			GainLoss:        pos.GainLoss(),
			GainLossPercent: pos.GainLossPercent(),
			PurchaseDate:    pos.PurchaseDate,
			UpdatedAt:       pos.UpdatedAt,
		})
	}
	return summary, nil
}

// RecordTransaction appends a buy/sell event against an existing position.
// The transaction log is append-only and does not move the position; position
// state changes go through AddAsset.
func (s *PortfolioService) RecordTransaction(ctx context.Context, portfolioID int, req *schemas.CreateTransactionRequest) (*models.Transaction, error) {
	transactionType, ok := NormalizeTransactionType(req.TransactionType)
	if !ok {
		return nil, ErrInvalidTransactionType
	}
	position, err := s.positionRepo.GetBySymbol(ctx, portfolioID, req.Symbol)
	if err != nil {
		return nil, err
	}
	if position == nil {
		return nil, ErrPositionNotFound
	}

	transactionDate := time.Now().UTC()
	if req.TransactionDate != nil {
		transactionDate = *req.TransactionDate
	}

	t := &models.Transaction{
		PortfolioID:     portfolioID,
		PositionID:      position.ID,
		TransactionType: transactionType,
		Quantity:        req.Quantity,
		Price:           req.Price,
		Notes:           req.Notes,
		TransactionDate: transactionDate,
	}
	if err := s.transactionRepo.Create(ctx, t, nil); err != nil {
		return nil, err
	}
	return t, nil
}

func (s *PortfolioService) GetTransactions(ctx context.Context, portfolioID int) ([]models.Transaction, error) {
	if _, err := s.GetPortfolio(ctx, portfolioID); err != nil {
		return nil, err
	}
	return s.transactionRepo.GetByPortfolioID(ctx, portfolioID)
}
