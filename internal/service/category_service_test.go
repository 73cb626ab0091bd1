package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	apperrors "github.com/Zayed4321/FoodHouse-Backend/internal/errors"
	"github.com/Zayed4321/FoodHouse-Backend/internal/model"
)

// MockCategoryRepository is a mock implementation of CategoryRepository.
type MockCategoryRepository struct {
	mock.Mock
}

func (m *MockCategoryRepository) Create(ctx context.Context, category *model.Category) error {
	args := m.Called(ctx, category)
	return args.Error(0)
}

func (m *MockCategoryRepository) Update(ctx context.Context, category *model.Category) error {
	args := m.Called(ctx, category)
	return args.Error(0)
}

func (m *MockCategoryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockCategoryRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Category, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Category), args.Error(1)
}

func (m *MockCategoryRepository) FindByName(ctx context.Context, name string) (*model.Category, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Category), args.Error(1)
}

func (m *MockCategoryRepository) FindBySlug(ctx context.Context, slug string) (*model.Category, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Category), args.Error(1)
}

func (m *MockCategoryRepository) List(ctx context.Context) ([]model.Category, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Category), args.Error(1)
}

func TestCategoryService_Create(t *testing.T) {
	t.Run("creates with generated slug", func(t *testing.T) {
		mockRepo := new(MockCategoryRepository)
		mockRepo.On("FindByName", mock.Anything, "Ice Cream").Return(nil, gorm.ErrRecordNotFound)
		mockRepo.On("Create", mock.Anything, mock.MatchedBy(func(c *model.Category) bool {
			return c.Name == "Ice Cream" && c.Slug == "ice-cream"
		})).Return(nil)

		svc := NewCategoryService(mockRepo, nil)
		category, err := svc.Create(context.Background(), "Ice Cream")

		require.NoError(t, err)
		assert.Equal(t, "ice-cream", category.Slug)
		mockRepo.AssertExpectations(t)
	})

	t.Run("duplicate name conflicts", func(t *testing.T) {
		mockRepo := new(MockCategoryRepository)
		mockRepo.On("FindByName", mock.Anything, "Pizza").
			Return(&model.Category{Name: "Pizza"}, nil)

		svc := NewCategoryService(mockRepo, nil)
		category, err := svc.Create(context.Background(), "Pizza")

		assert.Nil(t, category)
		assert.ErrorIs(t, err, apperrors.ErrCategoryExists)
		mockRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("empty name rejected", func(t *testing.T) {
		svc := NewCategoryService(new(MockCategoryRepository), nil)
		_, err := svc.Create(context.Background(), "")

		var validationErr *apperrors.ValidationError
		assert.ErrorAs(t, err, &validationErr)
	})
}

func TestCategoryService_Update(t *testing.T) {
	id := uuid.New()

	t.Run("renames and reslugs", func(t *testing.T) {
		mockRepo := new(MockCategoryRepository)
		mockRepo.On("FindByID", mock.Anything, id).
			Return(&model.Category{ID: id, Name: "Pizza", Slug: "pizza"}, nil)
		mockRepo.On("Update", mock.Anything, mock.MatchedBy(func(c *model.Category) bool {
			return c.Name == "Wood-fired Pizza" && c.Slug == "wood-fired-pizza"
		})).Return(nil)

		svc := NewCategoryService(mockRepo, nil)
		category, err := svc.Update(context.Background(), id, "Wood-fired Pizza")

		require.NoError(t, err)
		assert.Equal(t, "wood-fired-pizza", category.Slug)
	})

	t.Run("unknown category", func(t *testing.T) {
		mockRepo := new(MockCategoryRepository)
		mockRepo.On("FindByID", mock.Anything, id).Return(nil, gorm.ErrRecordNotFound)

		svc := NewCategoryService(mockRepo, nil)
		_, err := svc.Update(context.Background(), id, "Anything")

		assert.ErrorIs(t, err, apperrors.ErrCategoryNotFound)
	})
}

func TestCategoryService_GetBySlug(t *testing.T) {
	mockRepo := new(MockCategoryRepository)
	mockRepo.On("FindBySlug", mock.Anything, "missing").Return(nil, gorm.ErrRecordNotFound)

	svc := NewCategoryService(mockRepo, nil)
	_, err := svc.GetBySlug(context.Background(), "missing")

	assert.ErrorIs(t, err, apperrors.ErrCategoryNotFound)
}
