package services_test

import (
	"context"
	"fmt"
	"sort"
	"time"

	"tracker/src/clients/broker"
	"tracker/src/models"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

type memPortfolioRepo struct {
	nextID     int
	portfolios map[int]*models.Portfolio
}

func newMemPortfolioRepo() *memPortfolioRepo {
	return &memPortfolioRepo{portfolios: make(map[int]*models.Portfolio)}
}

func (r *memPortfolioRepo) GetByID(_ context.Context, id int) (*models.Portfolio, error) {
	p, ok := r.portfolios[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *memPortfolioRepo) GetByUserID(_ context.Context, userID int) ([]models.Portfolio, error) {
	var out []models.Portfolio
	for _, p := range r.portfolios {
		if p.UserID == userID {
			out = append(out, *p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *memPortfolioRepo) Create(_ context.Context, p *models.Portfolio, _ pgx.Tx) error {
	r.nextID++
	p.ID = r.nextID
	p.CreatedAt = time.Now()
	p.UpdatedAt = p.CreatedAt
	cp := *p
	r.portfolios[p.ID] = &cp
	return nil
}

func (r *memPortfolioRepo) Update(_ context.Context, p *models.Portfolio) error {
	if _, ok := r.portfolios[p.ID]; !ok {
		return fmt.Errorf("portfolio %d not found", p.ID)
	}
	cp := *p
	r.portfolios[p.ID] = &cp
	return nil
}

func (r *memPortfolioRepo) Delete(_ context.Context, id int) (bool, error) {
	if _, ok := r.portfolios[id]; !ok {
		return false, nil
	}
	delete(r.portfolios, id)
	return true, nil
}

type memPositionRepo struct {
	nextID    int
	positions map[int]map[string]*models.Position
}

func newMemPositionRepo() *memPositionRepo {
	return &memPositionRepo{positions: make(map[int]map[string]*models.Position)}
}

func (r *memPositionRepo) GetByPortfolioID(_ context.Context, portfolioID int) ([]models.Position, error) {
	var out []models.Position
	for _, p := range r.positions[portfolioID] {
		out = append(out, *p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Symbol < out[j].Symbol })
	return out, nil
}

func (r *memPositionRepo) GetBySymbol(_ context.Context, portfolioID int, symbol string) (*models.Position, error) {
	p, ok := r.positions[portfolioID][symbol]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *memPositionRepo) Upsert(_ context.Context, p *models.Position, _ pgx.Tx) error {
	byPortfolio, ok := r.positions[p.PortfolioID]
	if !ok {
		byPortfolio = make(map[string]*models.Position)
		r.positions[p.PortfolioID] = byPortfolio
	}
	if existing, ok := byPortfolio[p.Symbol]; ok {
		p.ID = existing.ID
	} else {
		r.nextID++
		p.ID = r.nextID
		p.CreatedAt = time.Now()
	}
	p.UpdatedAt = time.Now()
	cp := *p
	byPortfolio[p.Symbol] = &cp
	return nil
}

func (r *memPositionRepo) Delete(_ context.Context, portfolioID int, symbol string) (bool, error) {
	if _, ok := r.positions[portfolioID][symbol]; !ok {
		return false, nil
	}
	delete(r.positions[portfolioID], symbol)
	return true, nil
}

type memTransactionRepo struct {
	nextID       int
	transactions []models.Transaction
}

func newMemTransactionRepo() *memTransactionRepo {
	return &memTransactionRepo{}
}

func (r *memTransactionRepo) GetByPortfolioID(_ context.Context, portfolioID int) ([]models.Transaction, error) {
	var out []models.Transaction
	for _, t := range r.transactions {
		if t.PortfolioID == portfolioID {
			out = append(out, t)
		}
	}
	return out, nil
}

func (r *memTransactionRepo) Create(_ context.Context, t *models.Transaction, _ pgx.Tx) error {
	r.nextID++
	t.ID = r.nextID
	t.CreatedAt = time.Now()
	r.transactions = append(r.transactions, *t)
	return nil
}

func (r *memTransactionRepo) Exists(_ context.Context, portfolioID, positionID int, transactionType string,
	quantity, price decimal.Decimal, transactionDate time.Time) (bool, error) {
	for _, t := range r.transactions {
		if t.PortfolioID == portfolioID && t.PositionID == positionID &&
			t.TransactionType == transactionType &&
			t.Quantity.Equal(quantity) && t.Price.Equal(price) &&
			t.TransactionDate.Equal(transactionDate) {
			return true, nil
		}
	}
	return false, nil
}

type memCredentialRepo struct {
	nextID      int
	credentials map[string]*models.BrokerCredential
}

func newMemCredentialRepo() *memCredentialRepo {
	return &memCredentialRepo{credentials: make(map[string]*models.BrokerCredential)}
}

func credentialKey(userID int, brokerName string) string {
	return fmt.Sprintf("%d/%s", userID, brokerName)
}

func (r *memCredentialRepo) GetByUserID(_ context.Context, userID int) ([]models.BrokerCredential, error) {
	var out []models.BrokerCredential
	for _, c := range r.credentials {
		if c.UserID == userID {
			out = append(out, *c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].BrokerName < out[j].BrokerName })
	return out, nil
}

func (r *memCredentialRepo) GetByUserAndBroker(_ context.Context, userID int, brokerName string) (*models.BrokerCredential, error) {
	c, ok := r.credentials[credentialKey(userID, brokerName)]
	if !ok {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

func (r *memCredentialRepo) Upsert(_ context.Context, c *models.BrokerCredential, _ pgx.Tx) error {
	key := credentialKey(c.UserID, c.BrokerName)
	if existing, ok := r.credentials[key]; ok {
		c.ID = existing.ID
	} else {
		r.nextID++
		c.ID = r.nextID
	}
	cp := *c
	r.credentials[key] = &cp
	return nil
}

func (r *memCredentialRepo) Delete(_ context.Context, userID int, brokerName string) (bool, error) {
	key := credentialKey(userID, brokerName)
	if _, ok := r.credentials[key]; !ok {
		return false, nil
	}
	delete(r.credentials, key)
	return true, nil
}

func (r *memCredentialRepo) TouchLastSynced(_ context.Context, id int, syncedAt time.Time) error {
	for _, c := range r.credentials {
		if c.ID == id {
			at := syncedAt
			c.LastSyncedAt = &at
			return nil
		}
	}
	return fmt.Errorf("credential %d not found", id)
}

type mockBrokerClient struct {
	name     string
	holdings []broker.Holding
	trades   []broker.Trade
	err      error

	lastCreds broker.Credentials
}

func (c *mockBrokerClient) Name() string { return c.name }

func (c *mockBrokerClient) GetHoldings(_ context.Context, creds broker.Credentials) ([]broker.Holding, error) {
	c.lastCreds = creds
	return c.holdings, c.err
}

func (c *mockBrokerClient) GetTrades(_ context.Context, creds broker.Credentials) ([]broker.Trade, error) {
	c.lastCreds = creds
	return c.trades, c.err
}
