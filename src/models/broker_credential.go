package models

import "time"

// BrokerCredential stores one user's credentials for one broker; the pair
// (user_id, broker_name) is unique. Secret columns hold vault ciphertext,
// plaintext is never persisted.
type BrokerCredential struct {
	ID           int        `db:"id"`
	UserID       int        `db:"user_id"`
	BrokerName   string     `db:"broker_name"`
	BrokerUserID string     `db:"broker_user_id"`
	APIKey       string     `db:"api_key"`
	APISecret    string     `db:"api_secret"`
	AccessToken  string     `db:"access_token"`
	RefreshToken string     `db:"refresh_token"`
	Active       bool       `db:"is_active"`
	LastSyncedAt *time.Time `db:"last_synced_at"`
	CreatedAt    time.Time  `db:"created_at"`
	UpdatedAt    time.Time  `db:"updated_at"`
}
