package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/gosimple/slug"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/Zayed4321/FoodHouse-Backend/internal/cache"
	apperrors "github.com/Zayed4321/FoodHouse-Backend/internal/errors"
	"github.com/Zayed4321/FoodHouse-Backend/internal/model"
	"github.com/Zayed4321/FoodHouse-Backend/internal/repository"
	"github.com/Zayed4321/FoodHouse-Backend/internal/storage"
)

const (
	productListCacheKey = "products:recent"
	productCacheTTL     = 5 * time.Minute
	productListLimit    = 12
	similarLimit        = 3

	// MaxPhotoSize bounds uploaded product photos.
	MaxPhotoSize = 1 << 20 // 1 MB
)

// ProductInput carries the fields of a product create or update request.
type ProductInput struct {
	Name        string
	Description string
	Price       decimal.Decimal
	CategoryID  uuid.UUID
	Quantity    int
	Shipping    bool
}

// PhotoUpload is an optional product photo attached to a create or update.
type PhotoUpload struct {
	Reader      io.Reader
	ContentType string
	Size        int64
}

// ProductService exposes catalog product operations.
type ProductService interface {
	Create(ctx context.Context, in ProductInput, photo *PhotoUpload) (*model.Product, error)
	Update(ctx context.Context, id uuid.UUID, in ProductInput, photo *PhotoUpload) (*model.Product, error)
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context) ([]model.Product, error)
	GetBySlug(ctx context.Context, productSlug string) (*model.Product, error)
	Photo(ctx context.Context, id uuid.UUID) (io.ReadCloser, string, error)
	Filter(ctx context.Context, categoryIDs []uuid.UUID, priceRange []decimal.Decimal) ([]model.Product, error)
	Search(ctx context.Context, keyword string) ([]model.Product, error)
	Similar(ctx context.Context, productID, categoryID uuid.UUID) ([]model.Product, error)
	ByCategorySlug(ctx context.Context, categorySlug string) (*model.Category, []model.Product, error)
}

type productService struct {
	productRepo  repository.ProductRepository
	categoryRepo repository.CategoryRepository
	photos       *storage.PhotoStore
	cache        *cache.Client
}

// NewProductService builds a ProductService with repositories, photo store
// and cache.
func NewProductService(
	productRepo repository.ProductRepository,
	categoryRepo repository.CategoryRepository,
	photos *storage.PhotoStore,
	cache *cache.Client,
) ProductService {
	return &productService{
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
		photos:       photos,
		cache:        cache,
	}
}

func (s *productService) validate(in ProductInput, photo *PhotoUpload) error {
	switch {
	case in.Name == "":
		return apperrors.NewValidationError("name is required")
	case in.Description == "":
		return apperrors.NewValidationError("description is required")
	case in.Price.LessThanOrEqual(decimal.Zero):
		return apperrors.NewValidationError("price must be greater than zero")
	case in.CategoryID == uuid.Nil:
		return apperrors.NewValidationError("category is required")
	case in.Quantity <= 0:
		return apperrors.NewValidationError("quantity is required")
	}
	if photo != nil && photo.Size > MaxPhotoSize {
		return apperrors.NewValidationError("photo needs to be less than 1mb")
	}
	return nil
}

// Create validates input, persists the product and stores its photo.
func (s *productService) Create(ctx context.Context, in ProductInput, photo *PhotoUpload) (*model.Product, error) {
	if err := s.validate(in, photo); err != nil {
		return nil, err
	}
	if _, err := s.categoryRepo.FindByID(ctx, in.CategoryID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrCategoryNotFound
		}
		return nil, fmt.Errorf("find category: %w", err)
	}

	product := &model.Product{
		ID:          uuid.New(),
		Name:        in.Name,
		Slug:        slug.Make(in.Name),
		Description: in.Description,
		Price:       in.Price,
		CategoryID:  in.CategoryID,
		Quantity:    in.Quantity,
		Shipping:    in.Shipping,
	}

	if photo != nil {
		path, err := s.photos.Save(product.ID.String(), photo.Reader)
		if err != nil {
			return nil, fmt.Errorf("store photo: %w", err)
		}
		product.PhotoPath = path
		product.PhotoContentType = photo.ContentType
	}

	if err := s.productRepo.Create(ctx, product); err != nil {
		return nil, fmt.Errorf("create product: %w", err)
	}

	_ = s.cache.Delete(ctx, productListCacheKey)
	return product, nil
}

// Update validates input and merges it over the stored product.
func (s *productService) Update(ctx context.Context, id uuid.UUID, in ProductInput, photo *PhotoUpload) (*model.Product, error) {
	if err := s.validate(in, photo); err != nil {
		return nil, err
	}

	product, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrProductNotFound
		}
		return nil, fmt.Errorf("find product: %w", err)
	}

	product.Name = in.Name
	product.Slug = slug.Make(in.Name)
	product.Description = in.Description
	product.Price = in.Price
	product.CategoryID = in.CategoryID
	product.Quantity = in.Quantity
	product.Shipping = in.Shipping

	if photo != nil {
		path, err := s.photos.Save(product.ID.String(), photo.Reader)
		if err != nil {
			return nil, fmt.Errorf("store photo: %w", err)
		}
		product.PhotoPath = path
		product.PhotoContentType = photo.ContentType
	}

	if err := s.productRepo.Update(ctx, product); err != nil {
		return nil, fmt.Errorf("update product: %w", err)
	}

	_ = s.cache.Delete(ctx, productListCacheKey)
	return product, nil
}

// Delete removes a product and its stored photo.
func (s *productService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.productRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	_ = s.photos.Remove(id.String())
	_ = s.cache.Delete(ctx, productListCacheKey)
	return nil
}

// List returns the newest products, photo excluded, served from cache when
// warm.
func (s *productService) List(ctx context.Context) ([]model.Product, error) {
	if data, _ := s.cache.Get(ctx, productListCacheKey); data != nil {
		var cached []model.Product
		if err := json.Unmarshal(data, &cached); err == nil {
			return cached, nil
		}
	}

	products, err := s.productRepo.List(ctx, productListLimit)
	if err != nil {
		return nil, err
	}

	if payload, err := json.Marshal(products); err == nil {
		_ = s.cache.Set(ctx, productListCacheKey, payload, productCacheTTL)
	}
	return products, nil
}

// GetBySlug returns the product matching the given slug.
func (s *productService) GetBySlug(ctx context.Context, productSlug string) (*model.Product, error) {
	product, err := s.productRepo.FindBySlug(ctx, productSlug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrProductNotFound
		}
		return nil, fmt.Errorf("find product: %w", err)
	}
	return product, nil
}

// Photo opens the stored photo of a product.
func (s *productService) Photo(ctx context.Context, id uuid.UUID) (io.ReadCloser, string, error) {
	product, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", apperrors.ErrProductNotFound
		}
		return nil, "", fmt.Errorf("find product: %w", err)
	}
	if !product.HasPhoto() {
		return nil, "", apperrors.ErrProductNotFound
	}

	reader, err := s.photos.Open(product.ID.String())
	if err != nil {
		return nil, "", fmt.Errorf("open photo: %w", err)
	}
	return reader, product.PhotoContentType, nil
}

// Filter narrows products by category set and an optional [min, max] price
// range.
func (s *productService) Filter(ctx context.Context, categoryIDs []uuid.UUID, priceRange []decimal.Decimal) ([]model.Product, error) {
	filter := repository.ProductFilter{CategoryIDs: categoryIDs}
	if len(priceRange) == 2 {
		filter.MinPrice = &priceRange[0]
		filter.MaxPrice = &priceRange[1]
	}
	return s.productRepo.Filter(ctx, filter)
}

// Search matches the keyword against product names and descriptions.
func (s *productService) Search(ctx context.Context, keyword string) ([]model.Product, error) {
	if keyword == "" {
		return nil, apperrors.NewValidationError("keyword is required")
	}
	return s.productRepo.Search(ctx, keyword)
}

// Similar returns up to three other products from the same category.
func (s *productService) Similar(ctx context.Context, productID, categoryID uuid.UUID) ([]model.Product, error) {
	return s.productRepo.Similar(ctx, categoryID, productID, similarLimit)
}

// ByCategorySlug returns a category and its products.
func (s *productService) ByCategorySlug(ctx context.Context, categorySlug string) (*model.Category, []model.Product, error) {
	category, err := s.categoryRepo.FindBySlug(ctx, categorySlug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, apperrors.ErrCategoryNotFound
		}
		return nil, nil, fmt.Errorf("find category: %w", err)
	}

	products, err := s.productRepo.ByCategory(ctx, category.ID)
	if err != nil {
		return nil, nil, err
	}
	return category, products, nil
}
