package repo

import (
	"context"

	dom "Shop/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

// CategoryRepo provides category persistence.
// Errors come back raw from pgx; the service layer classifies them.
type CategoryRepo interface {
	Create(ctx context.Context, name string) (dom.Category, error)
	GetByID(ctx context.Context, id int64) (dom.Category, error)
	GetAll(ctx context.Context) ([]dom.Category, error)
	Delete(ctx context.Context, id int64) (dom.Category, error)
}

// PGCategoryRepo implements CategoryRepo with Postgres.
type PGCategoryRepo struct {
	db *pgxpool.Pool
}

// NewPGCategoryRepo returns a new PGCategoryRepo.
func NewPGCategoryRepo(db *pgxpool.Pool) *PGCategoryRepo {
	return &PGCategoryRepo{db: db}
}

func (r *PGCategoryRepo) Create(ctx context.Context, name string) (dom.Category, error) {
	query := `
		INSERT INTO categories (name)
		VALUES ($1)
		RETURNING id, name, created_at`
	var c dom.Category
	err := r.db.QueryRow(ctx, query, name).Scan(&c.ID, &c.Name, &c.CreatedAt)
	return c, err
}

func (r *PGCategoryRepo) GetByID(ctx context.Context, id int64) (dom.Category, error) {
	var c dom.Category
	err := r.db.QueryRow(ctx,
		`SELECT id, name, created_at FROM categories WHERE id = $1`,
		id,
	).Scan(&c.ID, &c.Name, &c.CreatedAt)
	return c, err
}

func (r *PGCategoryRepo) GetAll(ctx context.Context) ([]dom.Category, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, name, created_at FROM categories ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var list []dom.Category
	for rows.Next() {
		var c dom.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.CreatedAt); err != nil {
			return nil, err
		}
		list = append(list, c)
	}
	return list, rows.Err()
}

// Delete removes the category and returns the deleted row.
func (r *PGCategoryRepo) Delete(ctx context.Context, id int64) (dom.Category, error) {
	query := `
		DELETE FROM categories WHERE id = $1
		RETURNING id, name, created_at`
	var c dom.Category
	err := r.db.QueryRow(ctx, query, id).Scan(&c.ID, &c.Name, &c.CreatedAt)
	return c, err
}
