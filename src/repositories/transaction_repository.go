package repositories

import (
	"context"
	"time"

	"tracker/src/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

type TransactionRepository interface {
	GetByPortfolioID(ctx context.Context, portfolioID int) ([]models.Transaction, error)
	Create(ctx context.Context, t *models.Transaction, tx pgx.Tx) error
	// Exists reports whether a transaction with the exact same identifying
	// tuple is already recorded; broker imports use it to skip duplicates.
	Exists(ctx context.Context, portfolioID, positionID int, transactionType string,
		quantity, price decimal.Decimal, transactionDate time.Time) (bool, error)
}

type transactionRepo struct {
	db *pgxpool.Pool
}

func NewTransactionRepository(db *pgxpool.Pool) TransactionRepository {
	return &transactionRepo{db: db}
}

func (r *transactionRepo) GetByPortfolioID(ctx context.Context, portfolioID int) ([]models.Transaction, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, portfolio_id, position_id, transaction_type, quantity, price, notes, transaction_date, created_at
		FROM transactions
		WHERE portfolio_id = $1
		ORDER BY transaction_date DESC`, portfolioID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var transactions []models.Transaction
	for rows.Next() {
		var t models.Transaction
		if err := rows.Scan(&t.ID, &t.PortfolioID, &t.PositionID, &t.TransactionType,
			&t.Quantity, &t.Price, &t.Notes, &t.TransactionDate, &t.CreatedAt); err != nil {
			return nil, err
		}
		transactions = append(transactions, t)
	}
	return transactions, rows.Err()
}

func (r *transactionRepo) Create(ctx context.Context, t *models.Transaction, tx pgx.Tx) error {
	query := `
		INSERT INTO transactions (portfolio_id, position_id, transaction_type, quantity, price, notes, transaction_date)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at`

	var err error
	if tx == nil {
		tx, err = r.db.Begin(ctx)
		if err != nil {
			return err
		}
		defer func() {
			if err != nil {
				_ = tx.Rollback(ctx)
			}
		}()

		err = tx.QueryRow(ctx, query,
			t.PortfolioID, t.PositionID, t.TransactionType, t.Quantity, t.Price, t.Notes, t.TransactionDate,
		).Scan(&t.ID, &t.CreatedAt)
		if err != nil {
			return err
		}
		return tx.Commit(ctx)
	}

	return tx.QueryRow(ctx, query,
		t.PortfolioID, t.PositionID, t.TransactionType, t.Quantity, t.Price, t.Notes, t.TransactionDate,
	).Scan(&t.ID, &t.CreatedAt)
}

func (r *transactionRepo) Exists(ctx context.Context, portfolioID, positionID int, transactionType string,
	quantity, price decimal.Decimal, transactionDate time.Time) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS (
			SELECT 1 FROM transactions
			WHERE portfolio_id = $1 AND position_id = $2 AND transaction_type = $3
				AND quantity = $4 AND price = $5 AND transaction_date = $6
		)`,
		portfolioID, positionID, transactionType, quantity, price, transactionDate).
		Scan(&exists)
	return exists, err
}
