package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"Shop/internal/cache"
	dom "Shop/internal/domain"
	"Shop/internal/repo"
	"Shop/internal/utils"

	"github.com/jackc/pgx/v5"
	"golang.org/x/sync/singleflight"
)

// SubCategoryService handles subcategory lifecycle.
type SubCategoryService struct {
	repo  repo.SubCategoryRepo
	cache *cache.SubCategoryCache
	sf    singleflight.Group
}

// NewSubCategoryService creates a SubCategoryService. If c is nil, caching is disabled.
func NewSubCategoryService(r repo.SubCategoryRepo, c *cache.SubCategoryCache) *SubCategoryService {
	return &SubCategoryService{repo: r, cache: c}
}

// Create inserts a subcategory under an existing category. A missing parent
// category is a not-found error, a duplicate name an integrity error.
func (s *SubCategoryService) Create(ctx context.Context, categoryID int64, name string) (dom.SubCategory, error) {
	name = strings.TrimSpace(name)
	sc, err := s.repo.Create(ctx, categoryID, name)
	if err != nil {
		if utils.IsPGForeignKeyViolation(err) {
			return dom.SubCategory{}, fmt.Errorf("%w: category with id %d", ErrNotFound, categoryID)
		}
		if utils.IsPGUniqueViolation(err) {
			return dom.SubCategory{}, fmt.Errorf("%w: sub-category %q already exists", ErrIntegrity, name)
		}
		return dom.SubCategory{}, err
	}
	s.invalidateCache(ctx)
	return sc, nil
}

func (s *SubCategoryService) GetByID(ctx context.Context, id int64) (dom.SubCategory, error) {
	if s.cache != nil {
		if sc, err := s.cache.GetByID(ctx, id); err == nil && sc != nil {
			return *sc, nil
		}
	}
	sc, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return dom.SubCategory{}, fmt.Errorf("%w: sub-category with id %d", ErrNotFound, id)
		}
		return dom.SubCategory{}, err
	}
	if s.cache != nil {
		_ = s.cache.SetByID(ctx, sc)
	}
	return sc, nil
}

func (s *SubCategoryService) GetAll(ctx context.Context) ([]dom.SubCategory, error) {
	if s.cache != nil {
		v, err, _ := s.sf.Do("all", func() (interface{}, error) {
			if list, err := s.cache.GetAll(ctx); err == nil && list != nil {
				return list, nil
			}
			list, err := s.repo.GetAll(ctx)
			if err != nil {
				return nil, err
			}
			_ = s.cache.SetAll(ctx, list)
			return list, nil
		})
		if err != nil {
			return nil, err
		}
		return v.([]dom.SubCategory), nil
	}
	return s.repo.GetAll(ctx)
}

// Delete removes the subcategory and returns the deleted entity.
func (s *SubCategoryService) Delete(ctx context.Context, id int64) (dom.SubCategory, error) {
	sc, err := s.repo.Delete(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return dom.SubCategory{}, fmt.Errorf("%w: sub-category with id %d", ErrNotFound, id)
		}
		return dom.SubCategory{}, err
	}
	s.invalidateCache(ctx)
	return sc, nil
}

func (s *SubCategoryService) invalidateCache(ctx context.Context) {
	if s.cache != nil {
		_ = s.cache.InvalidateAll(ctx)
	}
}
