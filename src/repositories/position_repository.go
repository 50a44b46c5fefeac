package repositories

import (
	"context"

	"tracker/src/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PositionRepository interface {
	GetByPortfolioID(ctx context.Context, portfolioID int) ([]models.Position, error)
	GetBySymbol(ctx context.Context, portfolioID int, symbol string) (*models.Position, error)
	Upsert(ctx context.Context, p *models.Position, tx pgx.Tx) error
	Delete(ctx context.Context, portfolioID int, symbol string) (bool, error)
}

type positionRepo struct {
	db *pgxpool.Pool
}

func NewPositionRepository(db *pgxpool.Pool) PositionRepository {
	return &positionRepo{db: db}
}

func (r *positionRepo) GetByPortfolioID(ctx context.Context, portfolioID int) ([]models.Position, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, portfolio_id, symbol, name, quantity, current_price, purchase_price, purchase_date, created_at, updated_at
		FROM positions
		WHERE portfolio_id = $1
		ORDER BY symbol`, portfolioID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var positions []models.Position
	for rows.Next() {
		var p models.Position
		if err := rows.Scan(&p.ID, &p.PortfolioID, &p.Symbol, &p.Name, &p.Quantity, &p.CurrentPrice,
			&p.PurchasePrice, &p.PurchaseDate, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, err
		}
		positions = append(positions, p)
	}
	return positions, rows.Err()
}

func (r *positionRepo) GetBySymbol(ctx context.Context, portfolioID int, symbol string) (*models.Position, error) {
	var p models.Position
	err := r.db.QueryRow(ctx,
		`SELECT id, portfolio_id, symbol, name, quantity, current_price, purchase_price, purchase_date, created_at, updated_at
		FROM positions
		WHERE portfolio_id = $1 AND symbol = $2`, portfolioID, symbol).
		Scan(&p.ID, &p.PortfolioID, &p.Symbol, &p.Name, &p.Quantity, &p.CurrentPrice,
			&p.PurchasePrice, &p.PurchaseDate, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

// Upsert writes the merged position state produced by the ledger. The conflict
// target (portfolio_id, symbol) keeps symbols unique per portfolio.
func (r *positionRepo) Upsert(ctx context.Context, p *models.Position, tx pgx.Tx) error {
	query := `
		INSERT INTO positions (portfolio_id, symbol, name, quantity, current_price, purchase_price, purchase_date)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (portfolio_id, symbol) DO UPDATE SET
			name = EXCLUDED.name,
			quantity = EXCLUDED.quantity,
			current_price = EXCLUDED.current_price,
			purchase_price = EXCLUDED.purchase_price,
			purchase_date = EXCLUDED.purchase_date,
			updated_at = now()
		RETURNING id`

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
			p.PortfolioID, p.Symbol, p.Name, p.Quantity, p.CurrentPrice, p.PurchasePrice, p.PurchaseDate,
		).Scan(&p.ID)
		if err != nil {
			return err
		}
		return tx.Commit(ctx)
	}

	return tx.QueryRow(ctx, query,
		p.PortfolioID, p.Symbol, p.Name, p.Quantity, p.CurrentPrice, p.PurchasePrice, p.PurchaseDate,
	).Scan(&p.ID)
}

func (r *positionRepo) Delete(ctx context.Context, portfolioID int, symbol string) (bool, error) {
	tag, err := r.db.Exec(ctx,
		`DELETE FROM positions WHERE portfolio_id = $1 AND symbol = $2`, portfolioID, symbol)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}
