package service

import (
	"context"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/Zayed4321/FoodHouse-Backend/internal/auth"
	apperrors "github.com/Zayed4321/FoodHouse-Backend/internal/errors"
	"github.com/Zayed4321/FoodHouse-Backend/internal/model"
)

// MockUserRepository is a mock implementation of UserRepository.
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) Update(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) FindByNameAndEmail(ctx context.Context, name, email string) (*model.User, error) {
	args := m.Called(ctx, name, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) FindByEmailAndAnswer(ctx context.Context, email, answer string) (*model.User, error) {
	args := m.Called(ctx, email, answer)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) List(ctx context.Context) ([]model.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.User), args.Error(1)
}

func validRegisterInput() RegisterInput {
	return RegisterInput{
		Name:            "Test User",
		Email:           "test@example.com",
		Password:        "password123",
		ConfirmPassword: "password123",
		Answer:          "pizza",
		Phone:           "555-0100",
	}
}

func TestUserService_Register(t *testing.T) {
	t.Run("successful registration", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		mockRepo.On("FindByNameAndEmail", mock.Anything, "Test User", "test@example.com").
			Return(nil, gorm.ErrRecordNotFound)
		mockRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.User")).Return(nil)

		svc := NewUserService(mockRepo, auth.NewJWTService("test-secret"))
		user, err := svc.Register(context.Background(), validRegisterInput())

		require.NoError(t, err)
		require.NotNil(t, user)
		assert.Equal(t, "test@example.com", user.Email)
		assert.Equal(t, model.RoleUser, user.Role)
		assert.NotEmpty(t, user.PasswordHash)
		assert.NotEqual(t, "password123", user.PasswordHash)
		assert.True(t, auth.CheckPassword("password123", user.PasswordHash))
		mockRepo.AssertExpectations(t)
	})

	t.Run("password mismatch creates nothing", func(t *testing.T) {
		mockRepo := new(MockUserRepository)

		svc := NewUserService(mockRepo, auth.NewJWTService("test-secret"))
		in := validRegisterInput()
		in.Password = "abc123"
		in.ConfirmPassword = "xyz789"
		user, err := svc.Register(context.Background(), in)

		assert.Nil(t, user)
		var validationErr *apperrors.ValidationError
		assert.ErrorAs(t, err, &validationErr)
		mockRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("missing required field short-circuits", func(t *testing.T) {
		mockRepo := new(MockUserRepository)

		svc := NewUserService(mockRepo, auth.NewJWTService("test-secret"))
		in := validRegisterInput()
		in.Answer = ""
		_, err := svc.Register(context.Background(), in)

		var validationErr *apperrors.ValidationError
		assert.ErrorAs(t, err, &validationErr)
		mockRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("duplicate name and email conflicts", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		mockRepo.On("FindByNameAndEmail", mock.Anything, "Test User", "test@example.com").
			Return(&model.User{Email: "test@example.com"}, nil)

		svc := NewUserService(mockRepo, auth.NewJWTService("test-secret"))
		user, err := svc.Register(context.Background(), validRegisterInput())

		assert.Nil(t, user)
		assert.ErrorIs(t, err, apperrors.ErrUserExists)
		mockRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("duplicate email under a different name conflicts on insert", func(t *testing.T) {
		// Passes the name+email pre-check, then trips the unique email index.
		// Relies on gorm's TranslateError mapping mysql 1062 to the sentinel.
		mockRepo := new(MockUserRepository)
		mockRepo.On("FindByNameAndEmail", mock.Anything, "Test User", "test@example.com").
			Return(nil, gorm.ErrRecordNotFound)
		mockRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.User")).
			Return(gorm.ErrDuplicatedKey)

		svc := NewUserService(mockRepo, auth.NewJWTService("test-secret"))
		user, err := svc.Register(context.Background(), validRegisterInput())

		assert.Nil(t, user)
		assert.ErrorIs(t, err, apperrors.ErrUserExists)
		assert.Equal(t, http.StatusConflict, apperrors.MapErrorToHTTP(err).StatusCode)
		mockRepo.AssertExpectations(t)
	})
}

func TestUserService_Login(t *testing.T) {
	hashed, err := auth.HashPassword("password123")
	require.NoError(t, err)

	t.Run("successful login issues token", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		mockRepo.On("FindByEmail", mock.Anything, "test@example.com").Return(&model.User{
			ID:           uuid.New(),
			Name:         "Test User",
			Email:        "test@example.com",
			PasswordHash: hashed,
			Role:         model.RoleUser,
		}, nil)

		svc := NewUserService(mockRepo, auth.NewJWTService("test-secret"))
		user, token, err := svc.Login(context.Background(), "test@example.com", "password123")

		require.NoError(t, err)
		require.NotNil(t, user)
		assert.NotEmpty(t, token)
		mockRepo.AssertExpectations(t)
	})

	t.Run("wrong password issues no token", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		mockRepo.On("FindByEmail", mock.Anything, "test@example.com").Return(&model.User{
			ID:           uuid.New(),
			Email:        "test@example.com",
			PasswordHash: hashed,
		}, nil)

		svc := NewUserService(mockRepo, auth.NewJWTService("test-secret"))
		user, token, err := svc.Login(context.Background(), "test@example.com", "wrong-password")

		assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
		assert.Nil(t, user)
		assert.Empty(t, token)
	})

	t.Run("unknown email", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		mockRepo.On("FindByEmail", mock.Anything, "nobody@example.com").
			Return(nil, gorm.ErrRecordNotFound)

		svc := NewUserService(mockRepo, auth.NewJWTService("test-secret"))
		_, token, err := svc.Login(context.Background(), "nobody@example.com", "password123")

		assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
		assert.Empty(t, token)
	})

	t.Run("missing credentials", func(t *testing.T) {
		mockRepo := new(MockUserRepository)

		svc := NewUserService(mockRepo, auth.NewJWTService("test-secret"))
		_, _, err := svc.Login(context.Background(), "", "")

		var validationErr *apperrors.ValidationError
		assert.ErrorAs(t, err, &validationErr)
		mockRepo.AssertNotCalled(t, "FindByEmail", mock.Anything, mock.Anything)
	})
}

func TestUserService_ForgotPassword(t *testing.T) {
	t.Run("successful reset rehashes", func(t *testing.T) {
		oldHash, err := auth.HashPassword("old-password")
		require.NoError(t, err)

		stored := &model.User{ID: uuid.New(), Email: "test@example.com", Answer: "pizza", PasswordHash: oldHash}
		mockRepo := new(MockUserRepository)
		mockRepo.On("FindByEmailAndAnswer", mock.Anything, "test@example.com", "pizza").Return(stored, nil)
		mockRepo.On("Update", mock.Anything, mock.MatchedBy(func(u *model.User) bool {
			return u.PasswordHash != oldHash && auth.CheckPassword("new-password", u.PasswordHash)
		})).Return(nil)

		svc := NewUserService(mockRepo, auth.NewJWTService("test-secret"))
		err = svc.ForgotPassword(context.Background(), "test@example.com", "pizza", "new-password")

		require.NoError(t, err)
		mockRepo.AssertExpectations(t)
	})

	t.Run("wrong email or answer", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		mockRepo.On("FindByEmailAndAnswer", mock.Anything, "test@example.com", "burgers").
			Return(nil, gorm.ErrRecordNotFound)

		svc := NewUserService(mockRepo, auth.NewJWTService("test-secret"))
		err := svc.ForgotPassword(context.Background(), "test@example.com", "burgers", "new-password")

		assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
	})
}

func TestUserService_UpdateProfile(t *testing.T) {
	userID := uuid.New()

	t.Run("no password keeps stored hash", func(t *testing.T) {
		oldHash, err := auth.HashPassword("old-password")
		require.NoError(t, err)

		stored := &model.User{ID: userID, Name: "Old Name", Email: "test@example.com", PasswordHash: oldHash}
		mockRepo := new(MockUserRepository)
		mockRepo.On("FindByID", mock.Anything, userID).Return(stored, nil)
		mockRepo.On("Update", mock.Anything, mock.MatchedBy(func(u *model.User) bool {
			return u.PasswordHash == oldHash && u.Name == "New Name"
		})).Return(nil)

		svc := NewUserService(mockRepo, auth.NewJWTService("test-secret"))
		user, err := svc.UpdateProfile(context.Background(), userID, UpdateProfileInput{Name: "New Name"})

		require.NoError(t, err)
		assert.Equal(t, oldHash, user.PasswordHash)
		assert.Equal(t, "test@example.com", user.Email)
		mockRepo.AssertExpectations(t)
	})

	t.Run("short password rejected", func(t *testing.T) {
		mockRepo := new(MockUserRepository)

		svc := NewUserService(mockRepo, auth.NewJWTService("test-secret"))
		user, err := svc.UpdateProfile(context.Background(), userID, UpdateProfileInput{Password: "abc"})

		assert.Nil(t, user)
		var validationErr *apperrors.ValidationError
		assert.ErrorAs(t, err, &validationErr)
		mockRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("provided password is rehashed", func(t *testing.T) {
		oldHash, err := auth.HashPassword("old-password")
		require.NoError(t, err)

		stored := &model.User{ID: userID, Email: "test@example.com", PasswordHash: oldHash}
		mockRepo := new(MockUserRepository)
		mockRepo.On("FindByID", mock.Anything, userID).Return(stored, nil)
		mockRepo.On("Update", mock.Anything, mock.AnythingOfType("*model.User")).Return(nil)

		svc := NewUserService(mockRepo, auth.NewJWTService("test-secret"))
		user, err := svc.UpdateProfile(context.Background(), userID, UpdateProfileInput{Password: "brand-new-password"})

		require.NoError(t, err)
		assert.NotEqual(t, oldHash, user.PasswordHash)
		assert.True(t, auth.CheckPassword("brand-new-password", user.PasswordHash))
	})
}
