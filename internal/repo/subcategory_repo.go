package repo

import (
	"context"

	dom "Shop/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

// SubCategoryRepo provides subcategory persistence.
type SubCategoryRepo interface {
	Create(ctx context.Context, categoryID int64, name string) (dom.SubCategory, error)
	GetByID(ctx context.Context, id int64) (dom.SubCategory, error)
	GetAll(ctx context.Context) ([]dom.SubCategory, error)
	Delete(ctx context.Context, id int64) (dom.SubCategory, error)
}

// PGSubCategoryRepo implements SubCategoryRepo with Postgres.
type PGSubCategoryRepo struct {
	db *pgxpool.Pool
}

// NewPGSubCategoryRepo returns a new PGSubCategoryRepo.
func NewPGSubCategoryRepo(db *pgxpool.Pool) *PGSubCategoryRepo {
	return &PGSubCategoryRepo{db: db}
}

// Create inserts a subcategory. A missing parent category surfaces as a
// foreign key violation from Postgres.
func (r *PGSubCategoryRepo) Create(ctx context.Context, categoryID int64, name string) (dom.SubCategory, error) {
	query := `
		INSERT INTO sub_categories (category_id, name)
		VALUES ($1, $2)
		RETURNING id, category_id, name, created_at`
	var sc dom.SubCategory
	err := r.db.QueryRow(ctx, query, categoryID, name).Scan(
		&sc.ID, &sc.CategoryID, &sc.Name, &sc.CreatedAt,
	)
	return sc, err
}

func (r *PGSubCategoryRepo) GetByID(ctx context.Context, id int64) (dom.SubCategory, error) {
	var sc dom.SubCategory
	err := r.db.QueryRow(ctx,
		`SELECT id, category_id, name, created_at FROM sub_categories WHERE id = $1`,
		id,
	).Scan(&sc.ID, &sc.CategoryID, &sc.Name, &sc.CreatedAt)
	return sc, err
}

func (r *PGSubCategoryRepo) GetAll(ctx context.Context) ([]dom.SubCategory, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, category_id, name, created_at FROM sub_categories ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var list []dom.SubCategory
	for rows.Next() {
		var sc dom.SubCategory
		if err := rows.Scan(&sc.ID, &sc.CategoryID, &sc.Name, &sc.CreatedAt); err != nil {
			return nil, err
		}
		list = append(list, sc)
	}
	return list, rows.Err()
}

// Delete removes the subcategory and returns the deleted row.
func (r *PGSubCategoryRepo) Delete(ctx context.Context, id int64) (dom.SubCategory, error) {
	query := `
		DELETE FROM sub_categories WHERE id = $1
		RETURNING id, category_id, name, created_at`
	var sc dom.SubCategory
	err := r.db.QueryRow(ctx, query, id).Scan(
		&sc.ID, &sc.CategoryID, &sc.Name, &sc.CreatedAt,
	)
	return sc, err
}
