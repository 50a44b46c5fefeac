package schemas

import "time"

type SaveBrokerCredentialsRequest struct {
	UserID       int    `json:"user_id"`
	BrokerUserID string `json:"broker_user_id"`
	APIKey       string `json:"api_key"`
	APISecret    string `json:"api_secret"`
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// BrokerCredentialResponse never echoes secrets back, only whether each one is
// on file.
type BrokerCredentialResponse struct {
	ID              int        `json:"id"`
	BrokerName      string     `json:"broker_name"`
	BrokerUserID    string     `json:"broker_user_id"`
	HasAPIKey       bool       `json:"has_api_key"`
	HasAPISecret    bool       `json:"has_api_secret"`
	HasAccessToken  bool       `json:"has_access_token"`
	HasRefreshToken bool       `json:"has_refresh_token"`
	Active          bool       `json:"is_active"`
	LastSyncedAt    *time.Time `json:"last_synced_at,omitempty"`
}

type SyncHoldingsResponse struct {
	Success        bool   `json:"success"`
	Message        string `json:"message"`
	HoldingsCount  int    `json:"holdings_count"`
	AssetsImported int    `json:"assets_imported"`
}

type SyncTradesResponse struct {
	Success       bool   `json:"success"`
	Message       string `json:"message"`
	TradesFetched int    `json:"trades_fetched"`
	TradesCreated int    `json:"trades_created"`
	Skipped       int    `json:"skipped"`
}
