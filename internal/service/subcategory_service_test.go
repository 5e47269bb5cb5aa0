package service

import (
	"context"
	"testing"

	dom "Shop/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"
)

type fakeSubCategoryRepo struct {
	nextID     int64
	categories map[int64]bool
	subs       map[int64]dom.SubCategory
	names      map[string]bool
}

func newFakeSubCategoryRepo(categoryIDs ...int64) *fakeSubCategoryRepo {
	cats := map[int64]bool{}
	for _, id := range categoryIDs {
		cats[id] = true
	}
	return &fakeSubCategoryRepo{
		nextID:     1,
		categories: cats,
		subs:       map[int64]dom.SubCategory{},
		names:      map[string]bool{},
	}
}

func (f *fakeSubCategoryRepo) Create(ctx context.Context, categoryID int64, name string) (dom.SubCategory, error) {
	if !f.categories[categoryID] {
		return dom.SubCategory{}, &pgconn.PgError{Code: "23503"}
	}
	if f.names[name] {
		return dom.SubCategory{}, &pgconn.PgError{Code: "23505"}
	}
	sc := dom.SubCategory{ID: f.nextID, CategoryID: categoryID, Name: name}
	f.nextID++
	f.subs[sc.ID] = sc
	f.names[name] = true
	return sc, nil
}

func (f *fakeSubCategoryRepo) GetByID(ctx context.Context, id int64) (dom.SubCategory, error) {
	sc, ok := f.subs[id]
	if !ok {
		return dom.SubCategory{}, pgx.ErrNoRows
	}
	return sc, nil
}

func (f *fakeSubCategoryRepo) GetAll(ctx context.Context) ([]dom.SubCategory, error) {
	var out []dom.SubCategory
	for _, sc := range f.subs {
		out = append(out, sc)
	}
	return out, nil
}

func (f *fakeSubCategoryRepo) Delete(ctx context.Context, id int64) (dom.SubCategory, error) {
	sc, ok := f.subs[id]
	if !ok {
		return dom.SubCategory{}, pgx.ErrNoRows
	}
	delete(f.subs, id)
	delete(f.names, sc.Name)
	return sc, nil
}

func TestSubCategoryCreate(t *testing.T) {
	ctx := context.Background()

	t.Run("missing parent category -> not found", func(t *testing.T) {
		svc := NewSubCategoryService(newFakeSubCategoryRepo(), nil)
		_, err := svc.Create(ctx, 42, "phones")
		require.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("duplicate name -> integrity", func(t *testing.T) {
		svc := NewSubCategoryService(newFakeSubCategoryRepo(1), nil)
		_, err := svc.Create(ctx, 1, "phones")
		require.NoError(t, err)
		_, err = svc.Create(ctx, 1, "phones")
		require.ErrorIs(t, err, ErrIntegrity)
	})

	t.Run("create under existing category", func(t *testing.T) {
		svc := NewSubCategoryService(newFakeSubCategoryRepo(1), nil)
		sc, err := svc.Create(ctx, 1, "  phones ")
		require.NoError(t, err)
		require.Equal(t, "phones", sc.Name)
		require.Equal(t, int64(1), sc.CategoryID)
	})
}

func TestSubCategoryGetAndDelete(t *testing.T) {
	ctx := context.Background()
	svc := NewSubCategoryService(newFakeSubCategoryRepo(1), nil)

	sc, err := svc.Create(ctx, 1, "phones")
	require.NoError(t, err)

	got, err := svc.GetByID(ctx, sc.ID)
	require.NoError(t, err)
	require.Equal(t, sc, got)

	_, err = svc.GetByID(ctx, sc.ID+1)
	require.ErrorIs(t, err, ErrNotFound)

	list, err := svc.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)

	deleted, err := svc.Delete(ctx, sc.ID)
	require.NoError(t, err)
	require.Equal(t, sc.ID, deleted.ID)

	_, err = svc.Delete(ctx, sc.ID)
	require.ErrorIs(t, err, ErrNotFound)

	list, err = svc.GetAll(ctx)
	require.NoError(t, err)
	require.Empty(t, list)
}
