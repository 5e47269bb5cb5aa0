package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	dom "Shop/internal/domain"
	"Shop/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"
)

type memCategoryRepo struct {
	nextID int64
	byID   map[int64]dom.Category
	names  map[string]bool
}

func newMemCategoryRepo() *memCategoryRepo {
	return &memCategoryRepo{nextID: 1, byID: map[int64]dom.Category{}, names: map[string]bool{}}
}

func (m *memCategoryRepo) Create(ctx context.Context, name string) (dom.Category, error) {
	if m.names[name] {
		return dom.Category{}, &pgconn.PgError{Code: "23505"}
	}
	c := dom.Category{ID: m.nextID, Name: name}
	m.nextID++
	m.byID[c.ID] = c
	m.names[name] = true
	return c, nil
}

func (m *memCategoryRepo) GetByID(ctx context.Context, id int64) (dom.Category, error) {
	c, ok := m.byID[id]
	if !ok {
		return dom.Category{}, pgx.ErrNoRows
	}
	return c, nil
}

func (m *memCategoryRepo) GetAll(ctx context.Context) ([]dom.Category, error) {
	var out []dom.Category
	for _, c := range m.byID {
		out = append(out, c)
	}
	return out, nil
}

func (m *memCategoryRepo) Delete(ctx context.Context, id int64) (dom.Category, error) {
	c, ok := m.byID[id]
	if !ok {
		return dom.Category{}, pgx.ErrNoRows
	}
	delete(m.byID, id)
	delete(m.names, c.Name)
	return c, nil
}

func newCategoryRouter() *gin.Engine {
	r := gin.New()
	h := NewCategoryHandler(service.NewCategoryService(newMemCategoryRepo()))
	api := r.Group("/api/v1")
	api.POST("/category/create", h.Create)
	api.GET("/category/get-by-id/:id", h.GetByID)
	api.GET("/category/get-all", h.GetAll)
	api.DELETE("/category/:id", h.Delete)
	return r
}

func TestCategoryCreateThenDelete(t *testing.T) {
	r := newCategoryRouter()
	name := uuid.NewString()

	w := doJSON(t, r, http.MethodPost, "/api/v1/category/create", fmt.Sprintf(`{"name": %q}`, name))
	require.Equal(t, http.StatusCreated, w.Code)

	var created struct {
		ID   int64  `json:"id"`
		Name string `json:"name"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	require.Equal(t, name, created.Name)

	w = doJSON(t, r, http.MethodDelete, fmt.Sprintf("/api/v1/category/%d", created.ID), "")
	require.Equal(t, http.StatusOK, w.Code)

	var deleted struct {
		ID int64 `json:"id"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &deleted))
	require.Equal(t, created.ID, deleted.ID)
}

func TestCategoryCreateEmptyName(t *testing.T) {
	r := newCategoryRouter()
	w := doJSON(t, r, http.MethodPost, "/api/v1/category/create", `{"name": ""}`)
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestCategoryCreateWrongType(t *testing.T) {
	r := newCategoryRouter()
	w := doJSON(t, r, http.MethodPost, "/api/v1/category/create", `{"name": 12345}`)
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestCategoryCreateDuplicate(t *testing.T) {
	r := newCategoryRouter()
	body := `{"name": "books"}`
	w := doJSON(t, r, http.MethodPost, "/api/v1/category/create", body)
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, r, http.MethodPost, "/api/v1/category/create", body)
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Contains(t, w.Body.String(), "detail")
}

func TestCategoryDeleteMissing(t *testing.T) {
	r := newCategoryRouter()
	w := doJSON(t, r, http.MethodDelete, "/api/v1/category/12345", "")
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestCategoryGetAll(t *testing.T) {
	r := newCategoryRouter()

	// Empty collection answers 404 on this API.
	w := doJSON(t, r, http.MethodGet, "/api/v1/category/get-all", "")
	require.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(t, r, http.MethodPost, "/api/v1/category/create", `{"name": "books"}`)
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/v1/category/get-all", "")
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Categories []struct {
			Name string `json:"name"`
		} `json:"categories"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Categories, 1)
	require.Equal(t, "books", resp.Categories[0].Name)
}

func TestCategoryGetByID(t *testing.T) {
	r := newCategoryRouter()

	w := doJSON(t, r, http.MethodPost, "/api/v1/category/create", `{"name": "books"}`)
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/v1/category/get-by-id/1", "")
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/v1/category/get-by-id/999", "")
	require.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/v1/category/get-by-id/invalid_id", "")
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)
}
