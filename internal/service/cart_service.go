package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	dom "Shop/internal/domain"
	"Shop/internal/repo"
	"Shop/internal/utils"

	"github.com/jackc/pgx/v5"
)

// CartService handles cart lifecycle and item placement.
type CartService struct {
	repo repo.CartRepo
}

// NewCartService returns a new CartService.
func NewCartService(r repo.CartRepo) *CartService {
	return &CartService{repo: r}
}

// Create validates and stores a new cart for the user. A reminder date, when
// present, must be strictly in the future; times are absolute instants, so the
// comparison is independent of the offset the client supplied.
func (s *CartService) Create(ctx context.Context, userID int64, name string, reminder *time.Time) (dom.Cart, error) {
	name = strings.TrimSpace(name)

	if reminder != nil && !reminder.After(time.Now()) {
		return dom.Cart{}, ErrReminderInPast
	}

	return s.repo.Create(ctx, dom.Cart{
		UserID:       userID,
		Name:         name,
		ReminderDate: reminder,
	})
}

// GetByID returns the user's cart together with its items.
func (s *CartService) GetByID(ctx context.Context, userID, id int64) (dom.Cart, []dom.CartItem, error) {
	c, err := s.repo.GetByID(ctx, userID, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return dom.Cart{}, nil, fmt.Errorf("%w: cart with id %d", ErrNotFound, id)
		}
		return dom.Cart{}, nil, err
	}
	items, err := s.repo.GetItems(ctx, c.ID)
	if err != nil {
		return dom.Cart{}, nil, err
	}
	return c, items, nil
}

func (s *CartService) GetAll(ctx context.Context, userID int64) ([]dom.Cart, error) {
	return s.repo.GetAll(ctx, userID)
}

// AddItem places a product into the user's cart. The cart must belong to the
// user; an unknown product id is a not-found error.
func (s *CartService) AddItem(ctx context.Context, userID, cartID, productID int64, quantity int) (dom.CartItem, error) {
	if _, err := s.repo.GetByID(ctx, userID, cartID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return dom.CartItem{}, fmt.Errorf("%w: cart with id %d", ErrNotFound, cartID)
		}
		return dom.CartItem{}, err
	}

	item, err := s.repo.AddItem(ctx, dom.CartItem{
		CartID:    cartID,
		ProductID: productID,
		Quantity:  quantity,
	})
	if err != nil {
		if utils.IsPGForeignKeyViolation(err) {
			return dom.CartItem{}, fmt.Errorf("%w: product with id %d", ErrNotFound, productID)
		}
		if utils.IsPGUniqueViolation(err) {
			return dom.CartItem{}, fmt.Errorf("%w: product %d is already in cart %d", ErrIntegrity, productID, cartID)
		}
		return dom.CartItem{}, err
	}
	return item, nil
}

// Delete removes the user's cart and returns the deleted entity.
func (s *CartService) Delete(ctx context.Context, userID, id int64) (dom.Cart, error) {
	c, err := s.repo.Delete(ctx, userID, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return dom.Cart{}, fmt.Errorf("%w: cart with id %d", ErrNotFound, id)
		}
		return dom.Cart{}, err
	}
	return c, nil
}
