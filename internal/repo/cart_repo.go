package repo

import (
	"context"

	dom "Shop/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

// CartRepo provides cart and cart item persistence. Carts are always scoped
// to the owning user.
type CartRepo interface {
	Create(ctx context.Context, c dom.Cart) (dom.Cart, error)
	GetByID(ctx context.Context, userID, id int64) (dom.Cart, error)
	GetAll(ctx context.Context, userID int64) ([]dom.Cart, error)
	Delete(ctx context.Context, userID, id int64) (dom.Cart, error)
	AddItem(ctx context.Context, item dom.CartItem) (dom.CartItem, error)
	GetItems(ctx context.Context, cartID int64) ([]dom.CartItem, error)
}

// PGCartRepo implements CartRepo with Postgres.
type PGCartRepo struct {
	db *pgxpool.Pool
}

// NewPGCartRepo returns a new PGCartRepo.
func NewPGCartRepo(db *pgxpool.Pool) *PGCartRepo {
	return &PGCartRepo{db: db}
}

func (r *PGCartRepo) Create(ctx context.Context, c dom.Cart) (dom.Cart, error) {
	query := `
		INSERT INTO carts (user_id, name, remainder_date)
		VALUES ($1, $2, $3)
		RETURNING id, user_id, name, remainder_date, status, created_at`
	var out dom.Cart
	err := r.db.QueryRow(ctx, query, c.UserID, c.Name, c.ReminderDate).Scan(
		&out.ID, &out.UserID, &out.Name, &out.ReminderDate, &out.Status, &out.CreatedAt,
	)
	return out, err
}

func (r *PGCartRepo) GetByID(ctx context.Context, userID, id int64) (dom.Cart, error) {
	query := `
		SELECT id, user_id, name, remainder_date, status, created_at
		FROM carts WHERE id = $1 AND user_id = $2`
	var c dom.Cart
	err := r.db.QueryRow(ctx, query, id, userID).Scan(
		&c.ID, &c.UserID, &c.Name, &c.ReminderDate, &c.Status, &c.CreatedAt,
	)
	return c, err
}

func (r *PGCartRepo) GetAll(ctx context.Context, userID int64) ([]dom.Cart, error) {
	query := `
		SELECT id, user_id, name, remainder_date, status, created_at
		FROM carts WHERE user_id = $1 ORDER BY created_at DESC`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var list []dom.Cart
	for rows.Next() {
		var c dom.Cart
		if err := rows.Scan(&c.ID, &c.UserID, &c.Name, &c.ReminderDate,
			&c.Status, &c.CreatedAt); err != nil {
			return nil, err
		}
		list = append(list, c)
	}
	return list, rows.Err()
}

// Delete removes the cart (items go with it via FK cascade) and returns the
// deleted row.
func (r *PGCartRepo) Delete(ctx context.Context, userID, id int64) (dom.Cart, error) {
	query := `
		DELETE FROM carts WHERE id = $1 AND user_id = $2
		RETURNING id, user_id, name, remainder_date, status, created_at`
	var c dom.Cart
	err := r.db.QueryRow(ctx, query, id, userID).Scan(
		&c.ID, &c.UserID, &c.Name, &c.ReminderDate, &c.Status, &c.CreatedAt,
	)
	return c, err
}

// AddItem inserts a cart item. Unknown cart or product ids surface as
// foreign key violations from Postgres.
func (r *PGCartRepo) AddItem(ctx context.Context, item dom.CartItem) (dom.CartItem, error) {
	query := `
		INSERT INTO cart_items (cart_id, product_id, quantity)
		VALUES ($1, $2, $3)
		RETURNING id, cart_id, product_id, quantity`
	var out dom.CartItem
	err := r.db.QueryRow(ctx, query, item.CartID, item.ProductID, item.Quantity).Scan(
		&out.ID, &out.CartID, &out.ProductID, &out.Quantity,
	)
	return out, err
}

func (r *PGCartRepo) GetItems(ctx context.Context, cartID int64) ([]dom.CartItem, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, cart_id, product_id, quantity FROM cart_items WHERE cart_id = $1 ORDER BY id`,
		cartID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []dom.CartItem
	for rows.Next() {
		var it dom.CartItem
		if err := rows.Scan(&it.ID, &it.CartID, &it.ProductID, &it.Quantity); err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	return items, rows.Err()
}
