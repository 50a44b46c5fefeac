package repositories

import (
	"context"

	"tracker/src/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PortfolioRepository interface {
	GetByID(ctx context.Context, id int) (*models.Portfolio, error)
	GetByUserID(ctx context.Context, userID int) ([]models.Portfolio, error)
	Create(ctx context.Context, p *models.Portfolio, tx pgx.Tx) error
	Update(ctx context.Context, p *models.Portfolio) error
	Delete(ctx context.Context, id int) (bool, error)
}

type portfolioRepo struct {
	db *pgxpool.Pool
}

func NewPortfolioRepository(db *pgxpool.Pool) PortfolioRepository {
	return &portfolioRepo{db: db}
}

func (r *portfolioRepo) GetByID(ctx context.Context, id int) (*models.Portfolio, error) {
	var p models.Portfolio
	err := r.db.QueryRow(ctx,
		`SELECT id, user_id, name, description, created_at, updated_at FROM portfolios WHERE id = $1`, id).
		Scan(&p.ID, &p.UserID, &p.Name, &p.Description, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

func (r *portfolioRepo) GetByUserID(ctx context.Context, userID int) ([]models.Portfolio, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, user_id, name, description, created_at, updated_at
		FROM portfolios
		WHERE user_id = $1
		ORDER BY created_at`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var portfolios []models.Portfolio
	for rows.Next() {
		var p models.Portfolio
		if err := rows.Scan(&p.ID, &p.UserID, &p.Name, &p.Description, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, err
		}
		portfolios = append(portfolios, p)
	}
	return portfolios, rows.Err()
}

func (r *portfolioRepo) Create(ctx context.Context, p *models.Portfolio, tx pgx.Tx) error {
	query := `
		INSERT INTO portfolios (user_id, name, description)
		VALUES ($1, $2, $3)
		RETURNING id, created_at, updated_at`

	if tx != nil {
		return tx.QueryRow(ctx, query, p.UserID, p.Name, p.Description).
			Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)
	}
	return r.db.QueryRow(ctx, query, p.UserID, p.Name, p.Description).
		Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)
}

func (r *portfolioRepo) Update(ctx context.Context, p *models.Portfolio) error {
	_, err := r.db.Exec(ctx,
		`UPDATE portfolios SET name = $1, description = $2, updated_at = now() WHERE id = $3`,
		p.Name, p.Description, p.ID)
	return err
}

// Delete removes the portfolio; positions and transactions cascade via FK.
func (r *portfolioRepo) Delete(ctx context.Context, id int) (bool, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM portfolios WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}
