package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"testing"
	"time"

	dom "Shop/internal/domain"
	"Shop/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"
)

// memCartRepo keeps carts in memory and mimics the FK semantics of the real
// schema: items may only reference known product ids.
type memCartRepo struct {
	nextID   int64
	carts    map[int64]dom.Cart
	items    map[int64][]dom.CartItem
	products map[int64]bool
}

func newMemCartRepo(productIDs ...int64) *memCartRepo {
	products := map[int64]bool{}
	for _, id := range productIDs {
		products[id] = true
	}
	return &memCartRepo{
		nextID:   1,
		carts:    map[int64]dom.Cart{},
		items:    map[int64][]dom.CartItem{},
		products: products,
	}
}

func (m *memCartRepo) Create(ctx context.Context, c dom.Cart) (dom.Cart, error) {
	c.ID = m.nextID
	m.nextID++
	c.Status = dom.CartStatusActive
	c.CreatedAt = time.Now()
	m.carts[c.ID] = c
	return c, nil
}

func (m *memCartRepo) GetByID(ctx context.Context, userID, id int64) (dom.Cart, error) {
	c, ok := m.carts[id]
	if !ok || c.UserID != userID {
		return dom.Cart{}, pgx.ErrNoRows
	}
	return c, nil
}

func (m *memCartRepo) GetAll(ctx context.Context, userID int64) ([]dom.Cart, error) {
	var out []dom.Cart
	for _, c := range m.carts {
		if c.UserID == userID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (m *memCartRepo) Delete(ctx context.Context, userID, id int64) (dom.Cart, error) {
	c, ok := m.carts[id]
	if !ok || c.UserID != userID {
		return dom.Cart{}, pgx.ErrNoRows
	}
	delete(m.carts, id)
	return c, nil
}

func (m *memCartRepo) AddItem(ctx context.Context, item dom.CartItem) (dom.CartItem, error) {
	if !m.products[item.ProductID] {
		return dom.CartItem{}, &pgconn.PgError{Code: "23503"}
	}
	for _, it := range m.items[item.CartID] {
		if it.ProductID == item.ProductID {
			return dom.CartItem{}, &pgconn.PgError{Code: "23505"}
		}
	}
	item.ID = m.nextID
	m.nextID++
	m.items[item.CartID] = append(m.items[item.CartID], item)
	return item, nil
}

func (m *memCartRepo) GetItems(ctx context.Context, cartID int64) ([]dom.CartItem, error) {
	return m.items[cartID], nil
}

func newCartRouter(productIDs ...int64) *gin.Engine {
	r := gin.New()
	h := NewCartHandler(service.NewCartService(newMemCartRepo(productIDs...)))
	api := r.Group("/api/v1", withUser(1))
	api.POST("/cart/create", h.Create)
	api.GET("/cart/get-by-id/:id", h.GetByID)
	api.GET("/cart/get-by-id", MethodNotAllowed)
	api.GET("/cart/get-all", h.GetAll)
	api.POST("/cart/add-to-cart/:id", h.AddToCart)
	api.DELETE("/cart/:id", h.Delete)
	return r
}

func createCart(t *testing.T, r http.Handler, body string) int64 {
	t.Helper()
	w := doJSON(t, r, http.MethodPost, "/api/v1/cart/create", body)
	require.Equal(t, http.StatusCreated, w.Code)
	var resp struct {
		ID int64 `json:"id"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp.ID
}

func TestCartCreate(t *testing.T) {
	r := newCartRouter()

	t.Run("ok", func(t *testing.T) {
		id := createCart(t, r, `{"name": "groceries"}`)
		require.Positive(t, id)
	})

	t.Run("name too short", func(t *testing.T) {
		w := doJSON(t, r, http.MethodPost, "/api/v1/cart/create", `{"name": "ab"}`)
		require.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})

	t.Run("name too long", func(t *testing.T) {
		body := fmt.Sprintf(`{"name": %q}`, strings.Repeat("a", 51))
		w := doJSON(t, r, http.MethodPost, "/api/v1/cart/create", body)
		require.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})

	t.Run("past reminder", func(t *testing.T) {
		past := time.Now().Add(-time.Hour).Format(time.RFC3339)
		body := fmt.Sprintf(`{"name": "groceries", "remainder_date": %q}`, past)
		w := doJSON(t, r, http.MethodPost, "/api/v1/cart/create", body)
		require.Equal(t, http.StatusUnprocessableEntity, w.Code)
		require.Contains(t, w.Body.String(), "Reminder date cannot be in the past")
	})

	t.Run("future reminder", func(t *testing.T) {
		future := time.Now().Add(time.Hour).Format(time.RFC3339)
		body := fmt.Sprintf(`{"name": "groceries", "remainder_date": %q}`, future)
		w := doJSON(t, r, http.MethodPost, "/api/v1/cart/create", body)
		require.Equal(t, http.StatusCreated, w.Code)
	})
}

func TestCartGetByID(t *testing.T) {
	r := newCartRouter(7)
	id := createCart(t, r, `{"name": "groceries"}`)

	w := doJSON(t, r, http.MethodPost, fmt.Sprintf("/api/v1/cart/add-to-cart/%d", id),
		`{"product_id": 7, "quantity": 3}`)
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, r, http.MethodGet, fmt.Sprintf("/api/v1/cart/get-by-id/%d", id), "")
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		ID     int64  `json:"id"`
		Name   string `json:"name"`
		Status string `json:"status"`
		Items  []struct {
			ProductID int64 `json:"product_id"`
			Quantity  int   `json:"quantity"`
		} `json:"items"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Equal(t, id, resp.ID)
	require.Equal(t, "active", resp.Status)
	require.Len(t, resp.Items, 1)
	require.Equal(t, int64(7), resp.Items[0].ProductID)

	w = doJSON(t, r, http.MethodGet, "/api/v1/cart/get-by-id/999", "")
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestCartGetByIDInvalidID(t *testing.T) {
	r := newCartRouter()
	w := doJSON(t, r, http.MethodGet, "/api/v1/cart/get-by-id/invalid_id", "")
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestCartGetByIDWithoutID(t *testing.T) {
	r := newCartRouter()
	w := doJSON(t, r, http.MethodGet, "/api/v1/cart/get-by-id", "")
	require.Equal(t, http.StatusMethodNotAllowed, w.Code)
}

func TestCartAddToCartQuantityBounds(t *testing.T) {
	r := newCartRouter(7)
	id := createCart(t, r, `{"name": "groceries"}`)
	path := fmt.Sprintf("/api/v1/cart/add-to-cart/%d", id)

	w := doJSON(t, r, http.MethodPost, path, `{"product_id": 7, "quantity": 11}`)
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)

	w = doJSON(t, r, http.MethodPost, path, `{"product_id": 7, "quantity": 0}`)
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)

	w = doJSON(t, r, http.MethodPost, path, `{"product_id": 7, "quantity": 10}`)
	require.Equal(t, http.StatusCreated, w.Code)
}

func TestCartAddToCartUnknownProduct(t *testing.T) {
	r := newCartRouter(7)
	id := createCart(t, r, `{"name": "groceries"}`)

	w := doJSON(t, r, http.MethodPost, fmt.Sprintf("/api/v1/cart/add-to-cart/%d", id),
		`{"product_id": 404, "quantity": 1}`)
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestCartAddToCartDuplicateProduct(t *testing.T) {
	r := newCartRouter(7)
	id := createCart(t, r, `{"name": "groceries"}`)
	path := fmt.Sprintf("/api/v1/cart/add-to-cart/%d", id)

	w := doJSON(t, r, http.MethodPost, path, `{"product_id": 7, "quantity": 1}`)
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, r, http.MethodPost, path, `{"product_id": 7, "quantity": 1}`)
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCartGetAllAndDelete(t *testing.T) {
	r := newCartRouter()

	w := doJSON(t, r, http.MethodGet, "/api/v1/cart/get-all", "")
	require.Equal(t, http.StatusNotFound, w.Code)

	id := createCart(t, r, `{"name": "groceries"}`)

	w = doJSON(t, r, http.MethodGet, "/api/v1/cart/get-all", "")
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Carts []struct {
			ID int64 `json:"id"`
		} `json:"carts"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Carts, 1)

	w = doJSON(t, r, http.MethodDelete, fmt.Sprintf("/api/v1/cart/%d", id), "")
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodDelete, fmt.Sprintf("/api/v1/cart/%d", id), "")
	require.Equal(t, http.StatusNotFound, w.Code)
}
