package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/Zayed4321/FoodHouse-Backend/internal/auth"
	"github.com/Zayed4321/FoodHouse-Backend/internal/model"
)

// MockUserRepository is a mock implementation of repository.UserRepository.
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

func okHandler(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]bool{"ok": true})
}

func doRequest(e *echo.Echo, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestAuthenticated(t *testing.T) {
	tokens := auth.NewJWTService("test-secret")
	userID := uuid.New()

	e := echo.New()
	e.GET("/protected", func(c echo.Context) error {
		got, ok := UserID(c)
		require.True(t, ok)
		assert.Equal(t, userID, got)
		return okHandler(c)
	}, Authenticated(tokens))

	t.Run("valid token passes through with subject in context", func(t *testing.T) {
		token, err := tokens.Issue(userID)
		require.NoError(t, err)

		rec := doRequest(e, token)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("missing token is rejected", func(t *testing.T) {
		rec := doRequest(e, "")
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Contains(t, rec.Body.String(), `"success":false`)
	})

	t.Run("garbage token is rejected", func(t *testing.T) {
		rec := doRequest(e, "not-a-token")
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("token signed with another secret is rejected", func(t *testing.T) {
		other := auth.NewJWTService("other-secret")
		token, err := other.Issue(userID)
		require.NoError(t, err)

		rec := doRequest(e, token)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestRequireAdmin(t *testing.T) {
	tokens := auth.NewJWTService("test-secret")

	newServer := func(repo *MockUserRepository) *echo.Echo {
		e := echo.New()
		e.GET("/protected", okHandler, Authenticated(tokens), RequireAdmin(repo))
		return e
	}

	t.Run("admin account continues", func(t *testing.T) {
		adminID := uuid.New()
		repo := new(MockUserRepository)
		repo.On("FindByID", mock.Anything, adminID).
			Return(&model.User{ID: adminID, Role: model.RoleAdmin}, nil)

		token, err := tokens.Issue(adminID)
		require.NoError(t, err)

		rec := doRequest(newServer(repo), token)
		assert.Equal(t, http.StatusOK, rec.Code)
		repo.AssertExpectations(t)
	})

	t.Run("ordinary account is forbidden", func(t *testing.T) {
		userID := uuid.New()
		repo := new(MockUserRepository)
		repo.On("FindByID", mock.Anything, userID).
			Return(&model.User{ID: userID, Role: model.RoleUser}, nil)

		token, err := tokens.Issue(userID)
		require.NoError(t, err)

		rec := doRequest(newServer(repo), token)
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("account deleted after issuance is forbidden", func(t *testing.T) {
		goneID := uuid.New()
		repo := new(MockUserRepository)
		repo.On("FindByID", mock.Anything, goneID).
			Return(nil, gorm.ErrRecordNotFound)

		token, err := tokens.Issue(goneID)
		require.NoError(t, err)

		rec := doRequest(newServer(repo), token)
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("role is read per request so a downgrade bites immediately", func(t *testing.T) {
		flipID := uuid.New()
		repo := new(MockUserRepository)
		repo.On("FindByID", mock.Anything, flipID).
			Return(&model.User{ID: flipID, Role: model.RoleAdmin}, nil).Once()
		repo.On("FindByID", mock.Anything, flipID).
			Return(&model.User{ID: flipID, Role: model.RoleUser}, nil).Once()

		token, err := tokens.Issue(flipID)
		require.NoError(t, err)

		e := newServer(repo)
		assert.Equal(t, http.StatusOK, doRequest(e, token).Code)
		assert.Equal(t, http.StatusForbidden, doRequest(e, token).Code)
	})
}
