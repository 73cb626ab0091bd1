package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/gosimple/slug"
	"gorm.io/gorm"

	"github.com/Zayed4321/FoodHouse-Backend/internal/cache"
	apperrors "github.com/Zayed4321/FoodHouse-Backend/internal/errors"
	"github.com/Zayed4321/FoodHouse-Backend/internal/model"
	"github.com/Zayed4321/FoodHouse-Backend/internal/repository"
)

const (
	categoryListCacheKey = "categories:all"
	categoryCacheTTL     = 5 * time.Minute
)

// CategoryService exposes catalog category operations.
type CategoryService interface {
	Create(ctx context.Context, name string) (*model.Category, error)
	Update(ctx context.Context, id uuid.UUID, name string) (*model.Category, error)
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context) ([]model.Category, error)
	GetBySlug(ctx context.Context, categorySlug string) (*model.Category, error)
}

type categoryService struct {
	categoryRepo repository.CategoryRepository
	cache        *cache.Client
}

// NewCategoryService builds a CategoryService with repository and cache.
func NewCategoryService(categoryRepo repository.CategoryRepository, cache *cache.Client) CategoryService {
	return &categoryService{categoryRepo: categoryRepo, cache: cache}
}

// Create adds a category with a generated slug; duplicate names conflict.
func (s *categoryService) Create(ctx context.Context, name string) (*model.Category, error) {
	if name == "" {
		return nil, apperrors.NewValidationError("name is required")
	}

	existing, err := s.categoryRepo.FindByName(ctx, name)
	if err == nil && existing != nil {
		return nil, apperrors.ErrCategoryExists
	}
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("check category existence: %w", err)
	}

	category := &model.Category{
		Name: name,
		Slug: slug.Make(name),
	}
	if err := s.categoryRepo.Create(ctx, category); err != nil {
		return nil, fmt.Errorf("create category: %w", err)
	}

	_ = s.cache.Delete(ctx, categoryListCacheKey)
	return category, nil
}

// Update renames a category and regenerates its slug.
func (s *categoryService) Update(ctx context.Context, id uuid.UUID, name string) (*model.Category, error) {
	if name == "" {
		return nil, apperrors.NewValidationError("name is required")
	}

	category, err := s.categoryRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrCategoryNotFound
		}
		return nil, fmt.Errorf("find category: %w", err)
	}

	category.Name = name
	category.Slug = slug.Make(name)
	if err := s.categoryRepo.Update(ctx, category); err != nil {
		return nil, fmt.Errorf("update category: %w", err)
	}

	_ = s.cache.Delete(ctx, categoryListCacheKey)
	return category, nil
}

// Delete removes a category by ID.
func (s *categoryService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.categoryRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete category: %w", err)
	}
	_ = s.cache.Delete(ctx, categoryListCacheKey)
	return nil
}

// List returns all categories, served from cache when warm.
func (s *categoryService) List(ctx context.Context) ([]model.Category, error) {
	if data, _ := s.cache.Get(ctx, categoryListCacheKey); data != nil {
		var cached []model.Category
		if err := json.Unmarshal(data, &cached); err == nil {
			return cached, nil
		}
	}

	categories, err := s.categoryRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	if payload, err := json.Marshal(categories); err == nil {
		_ = s.cache.Set(ctx, categoryListCacheKey, payload, categoryCacheTTL)
	}
	return categories, nil
}

// GetBySlug returns the category matching the given slug.
func (s *categoryService) GetBySlug(ctx context.Context, categorySlug string) (*model.Category, error) {
	category, err := s.categoryRepo.FindBySlug(ctx, categorySlug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrCategoryNotFound
		}
		return nil, fmt.Errorf("find category: %w", err)
	}
	return category, nil
}
