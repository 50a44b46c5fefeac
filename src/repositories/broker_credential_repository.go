package repositories

import (
	"context"
	"time"

	"tracker/src/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type BrokerCredentialRepository interface {
	GetByUserID(ctx context.Context, userID int) ([]models.BrokerCredential, error)
	GetByUserAndBroker(ctx context.Context, userID int, brokerName string) (*models.BrokerCredential, error)
	Upsert(ctx context.Context, c *models.BrokerCredential, tx pgx.Tx) error
	Delete(ctx context.Context, userID int, brokerName string) (bool, error)
	TouchLastSynced(ctx context.Context, id int, syncedAt time.Time) error
}

type brokerCredentialRepo struct {
	db *pgxpool.Pool
}

func NewBrokerCredentialRepository(db *pgxpool.Pool) BrokerCredentialRepository {
	return &brokerCredentialRepo{db: db}
}

const brokerCredentialColumns = `id, user_id, broker_name, broker_user_id, api_key, api_secret,
	access_token, refresh_token, is_active, last_synced_at, created_at, updated_at`

func (r *brokerCredentialRepo) GetByUserID(ctx context.Context, userID int) ([]models.BrokerCredential, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+brokerCredentialColumns+` FROM broker_credentials WHERE user_id = $1 ORDER BY broker_name`,
		userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var credentials []models.BrokerCredential
	for rows.Next() {
		var c models.BrokerCredential
		if err := scanBrokerCredential(rows, &c); err != nil {
			return nil, err
		}
		credentials = append(credentials, c)
	}
	return credentials, rows.Err()
}

func (r *brokerCredentialRepo) GetByUserAndBroker(ctx context.Context, userID int, brokerName string) (*models.BrokerCredential, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+brokerCredentialColumns+` FROM broker_credentials WHERE user_id = $1 AND broker_name = $2`,
		userID, brokerName)

	var c models.BrokerCredential
	if err := scanBrokerCredential(row, &c); err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &c, nil
}

// Upsert keys on the unique (user_id, broker_name) pair; saving credentials
// for an already linked broker replaces the stored ciphertexts.
func (r *brokerCredentialRepo) Upsert(ctx context.Context, c *models.BrokerCredential, tx pgx.Tx) error {
	query := `
		INSERT INTO broker_credentials (user_id, broker_name, broker_user_id, api_key, api_secret, access_token, refresh_token, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (user_id, broker_name) DO UPDATE SET
			broker_user_id = EXCLUDED.broker_user_id,
			api_key = EXCLUDED.api_key,
			api_secret = EXCLUDED.api_secret,
			access_token = EXCLUDED.access_token,
			refresh_token = EXCLUDED.refresh_token,
			is_active = EXCLUDED.is_active,
			updated_at = now()
		RETURNING id`

	args := []any{c.UserID, c.BrokerName, c.BrokerUserID, c.APIKey, c.APISecret, c.AccessToken, c.RefreshToken, c.Active}
	if tx != nil {
		return tx.QueryRow(ctx, query, args...).Scan(&c.ID)
	}
	return r.db.QueryRow(ctx, query, args...).Scan(&c.ID)
}

func (r *brokerCredentialRepo) Delete(ctx context.Context, userID int, brokerName string) (bool, error) {
	tag, err := r.db.Exec(ctx,
		`DELETE FROM broker_credentials WHERE user_id = $1 AND broker_name = $2`, userID, brokerName)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (r *brokerCredentialRepo) TouchLastSynced(ctx context.Context, id int, syncedAt time.Time) error {
	_, err := r.db.Exec(ctx,
		`UPDATE broker_credentials SET last_synced_at = $1, updated_at = now() WHERE id = $2`, syncedAt, id)
	return err
}

func scanBrokerCredential(row pgx.Row, c *models.BrokerCredential) error {
	return row.Scan(&c.ID, &c.UserID, &c.BrokerName, &c.BrokerUserID, &c.APIKey, &c.APISecret,
		&c.AccessToken, &c.RefreshToken, &c.Active, &c.LastSyncedAt, &c.CreatedAt, &c.UpdatedAt)
}
