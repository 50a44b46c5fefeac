package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"tracker/src/clients/broker"
	"tracker/src/models"
	"tracker/src/repositories"
	"tracker/src/schemas"
	"tracker/src/utils"
	"tracker/src/vault"
)

// NormalizeTransactionType maps a broker transaction-type string onto the
// canonical buy/sell values, case-insensitively. Unrecognized types are
// reported as not ok and skipped by importers.
func NormalizeTransactionType(raw string) (string, bool) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case models.TransactionTypeBuy:
		return models.TransactionTypeBuy, true
	case models.TransactionTypeSell:
		return models.TransactionTypeSell, true
	default:
		return "", false
	}
}

type SyncServiceI interface {
	SaveCredentials(ctx context.Context, brokerName string, req *schemas.SaveBrokerCredentialsRequest) (*models.BrokerCredential, error)
	GetCredentials(ctx context.Context, userID int) ([]schemas.BrokerCredentialResponse, error)
	DeleteCredentials(ctx context.Context, userID int, brokerName string) (bool, error)
	SyncHoldings(ctx context.Context, userID, portfolioID int, brokerName string) (*schemas.SyncHoldingsResponse, error)
	SyncTrades(ctx context.Context, userID, portfolioID int, brokerName string) (*schemas.SyncTradesResponse, error)
}

// SyncService imports holdings and trades from linked brokers. Credentials go
// through the vault on both sides: encrypted before storage, decrypted right
// before use and never persisted in plaintext.
type SyncService struct {
	portfolioService PortfolioServiceI
	positionRepo     repositories.PositionRepository
	transactionRepo  repositories.TransactionRepository
	credentialRepo   repositories.BrokerCredentialRepository

	brokers *broker.Registry
	vault   *vault.Vault
}

func NewSyncService(
	portfolioService PortfolioServiceI,
	positionRepo repositories.PositionRepository,
	transactionRepo repositories.TransactionRepository,
	credentialRepo repositories.BrokerCredentialRepository,
	brokers *broker.Registry,
	v *vault.Vault,
) *SyncService {
	return &SyncService{
		portfolioService: portfolioService,
		positionRepo:     positionRepo,
		transactionRepo:  transactionRepo,
		credentialRepo:   credentialRepo,
		brokers:          brokers,
		vault:            v,
	}
}

func (s *SyncService) SaveCredentials(ctx context.Context, brokerName string, req *schemas.SaveBrokerCredentialsRequest) (*models.BrokerCredential, error) {
	if _, err := s.brokers.Client(brokerName); err != nil {
		return nil, err
	}

	cred := &models.BrokerCredential{
		UserID:       req.UserID,
		BrokerName:   brokerName,
		BrokerUserID: req.BrokerUserID,
		APIKey:       s.vault.Encrypt(req.APIKey),
		APISecret:    s.vault.Encrypt(req.APISecret),
		AccessToken:  s.vault.Encrypt(req.AccessToken),
		RefreshToken: s.vault.Encrypt(req.RefreshToken),
		Active:       true,
	}
	if err := s.credentialRepo.Upsert(ctx, cred, nil); err != nil {
		return nil, err
	}
	return cred, nil
}

func (s *SyncService) GetCredentials(ctx context.Context, userID int) ([]schemas.BrokerCredentialResponse, error) {
	credentials, err := s.credentialRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	out := make([]schemas.BrokerCredentialResponse, 0, len(credentials))
	for _, c := range credentials {
		out = append(out, schemas.BrokerCredentialResponse{
			ID:              c.ID,
			BrokerName:      c.BrokerName,
			BrokerUserID:    c.BrokerUserID,
			HasAPIKey:       c.APIKey != "",
			HasAPISecret:    c.APISecret != "",
			HasAccessToken:  c.AccessToken != "",
			HasRefreshToken: c.RefreshToken != "",
			Active:          c.Active,
			LastSyncedAt:    c.LastSyncedAt,
		})
	}
	return out, nil
}

func (s *SyncService) DeleteCredentials(ctx context.Context, userID int, brokerName string) (bool, error) {
	return s.credentialRepo.Delete(ctx, userID, brokerName)
}

// SyncHoldings imports the broker's reported holdings into a portfolio. Each
// holding is merged through the ledger with the broker's average price as the
// purchase price and its last traded price as the current price.
func (s *SyncService) SyncHoldings(ctx context.Context, userID, portfolioID int, brokerName string) (*schemas.SyncHoldingsResponse, error) {
	client, creds, credID, err := s.connect(ctx, userID, brokerName)
	if err != nil {
		return nil, err
	}
	if _, err := s.portfolioService.GetPortfolio(ctx, portfolioID); err != nil {
		return nil, err
	}

	holdings, err := client.GetHoldings(ctx, creds)
	if err != nil {
		return nil, err
	}

	logger := utils.LoggerFromContext(ctx)
	imported := 0
	for _, h := range holdings {
		if h.Symbol == "" {
			logger.WithField("broker", brokerName).Warn("skipping holding without a symbol")
			continue
		}
		existing, err := s.positionRepo.GetBySymbol(ctx, portfolioID, h.Symbol)
		if err != nil {
			return nil, err
		}

		name := h.Name
		if name == "" {
			name = h.Symbol
		}
		if _, err := s.portfolioService.AddAsset(ctx, portfolioID, &schemas.AddAssetRequest{
			Symbol:        h.Symbol,
			Name:          name,
			Quantity:      h.Quantity,
			CurrentPrice:  h.LastPrice,
			PurchasePrice: h.AveragePrice,
		}); err != nil {
			return nil, err
		}
		if existing == nil {
			imported++
		}
	}

	if err := s.credentialRepo.TouchLastSynced(ctx, credID, time.Now().UTC()); err != nil {
		return nil, err
	}

	return &schemas.SyncHoldingsResponse{
		Success:        true,
		Message:        fmt.Sprintf("Successfully synced %d holdings", len(holdings)),
		HoldingsCount:  len(holdings),
		AssetsImported: imported,
	}, nil
}

// SyncTrades imports the broker tradebook as transactions. Trades with an
// unrecognized type or no matching position are skipped, and a trade whose
// identifying tuple (portfolio, position, type, quantity, price, timestamp)
// already exists is treated as a duplicate.
func (s *SyncService) SyncTrades(ctx context.Context, userID, portfolioID int, brokerName string) (*schemas.SyncTradesResponse, error) {
	client, creds, credID, err := s.connect(ctx, userID, brokerName)
	if err != nil {
		return nil, err
	}
	if _, err := s.portfolioService.GetPortfolio(ctx, portfolioID); err != nil {
		return nil, err
	}

	trades, err := client.GetTrades(ctx, creds)
	if err != nil {
		return nil, err
	}

	logger := utils.LoggerFromContext(ctx)
	created, skipped := 0, 0
	for _, trade := range trades {
		transactionType, ok := NormalizeTransactionType(trade.Type)
		if !ok {
			logger.WithFields(map[string]interface{}{
				"broker": brokerName,
				"type":   trade.Type,
			}).Warn("skipping trade with unrecognized transaction type")
			skipped++
			continue
		}

		position, err := s.positionRepo.GetBySymbol(ctx, portfolioID, trade.Symbol)
		if err != nil {
			return nil, err
		}
		if position == nil {
			skipped++
			continue
		}

		exists, err := s.transactionRepo.Exists(ctx, portfolioID, position.ID, transactionType,
			trade.Quantity, trade.Price, trade.ExecutedAt)
		if err != nil {
			return nil, err
		}
		if exists {
			skipped++
			continue
		}

		if err := s.transactionRepo.Create(ctx, &models.Transaction{
			PortfolioID:     portfolioID,
			PositionID:      position.ID,
			TransactionType: transactionType,
			Quantity:        trade.Quantity,
			Price:           trade.Price,
			TransactionDate: trade.ExecutedAt,
		}, nil); err != nil {
			return nil, err
		}
		created++
	}

	if err := s.credentialRepo.TouchLastSynced(ctx, credID, time.Now().UTC()); err != nil {
		return nil, err
	}

	return &schemas.SyncTradesResponse{
		Success:       true,
		Message:       fmt.Sprintf("Imported %d of %d trades", created, len(trades)),
		TradesFetched: len(trades),
		TradesCreated: created,
		Skipped:       skipped,
	}, nil
}

// connect resolves the broker client and the user's decrypted credentials. A
// stored secret that decrypts to the empty string is unusable (tampered
// ciphertext or a rotated vault key) and aborts the sync.
func (s *SyncService) connect(ctx context.Context, userID int, brokerName string) (broker.Client, broker.Credentials, int, error) {
	client, err := s.brokers.Client(brokerName)
	if err != nil {
		return nil, broker.Credentials{}, 0, err
	}

	stored, err := s.credentialRepo.GetByUserAndBroker(ctx, userID, brokerName)
	if err != nil {
		return nil, broker.Credentials{}, 0, err
	}
	if stored == nil || !stored.Active || stored.AccessToken == "" {
		return nil, broker.Credentials{}, 0, ErrBrokerNotLinked
	}

	creds := broker.Credentials{
		APIKey:      s.vault.Decrypt(stored.APIKey),
		APISecret:   s.vault.Decrypt(stored.APISecret),
		AccessToken: s.vault.Decrypt(stored.AccessToken),
	}
	if creds.AccessToken == "" || (stored.APIKey != "" && creds.APIKey == "") {
		return nil, broker.Credentials{}, 0, ErrCredentialUnusable
	}
	return client, creds, stored.ID, nil
}
