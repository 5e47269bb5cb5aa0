package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	dom "Shop/internal/domain"
	"Shop/internal/repo"
	"Shop/internal/utils"

	"github.com/jackc/pgx/v5"
)

// CategoryService handles category lifecycle.
type CategoryService struct {
	repo repo.CategoryRepo
}

// NewCategoryService returns a new CategoryService.
func NewCategoryService(r repo.CategoryRepo) *CategoryService {
	return &CategoryService{repo: r}
}

func (s *CategoryService) Create(ctx context.Context, name string) (dom.Category, error) {
	name = strings.TrimSpace(name)
	c, err := s.repo.Create(ctx, name)
	if err != nil {
		if utils.IsPGUniqueViolation(err) {
			return dom.Category{}, fmt.Errorf("%w: category %q already exists", ErrIntegrity, name)
		}
		return dom.Category{}, err
	}
	return c, nil
}

func (s *CategoryService) GetByID(ctx context.Context, id int64) (dom.Category, error) {
	c, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return dom.Category{}, fmt.Errorf("%w: category with id %d", ErrNotFound, id)
		}
		return dom.Category{}, err
	}
	return c, nil
}

func (s *CategoryService) GetAll(ctx context.Context) ([]dom.Category, error) {
	return s.repo.GetAll(ctx)
}

// Delete removes the category and returns the deleted entity.
func (s *CategoryService) Delete(ctx context.Context, id int64) (dom.Category, error) {
	c, err := s.repo.Delete(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return dom.Category{}, fmt.Errorf("%w: category with id %d", ErrNotFound, id)
		}
		return dom.Category{}, err
	}
	return c, nil
}
