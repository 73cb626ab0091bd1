package middleware

import (
	"github.com/google/uuid"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"

	"github.com/Zayed4321/FoodHouse-Backend/internal/auth"
	apperrors "github.com/Zayed4321/FoodHouse-Backend/internal/errors"
)

// userContextKey is where the resolved account identifier lives on the echo
// context once the bearer token has been verified.
const userContextKey = "user"

// Authenticated resolves the bearer token from the Authorization header and
// attaches the account identifier to the request context. Requests with a
// missing, malformed, tampered or expired token are rejected before the
// handler runs.
func Authenticated(tokens *auth.JWTService) echo.MiddlewareFunc {
	return echojwt.WithConfig(echojwt.Config{
		ContextKey: userContextKey,
		ParseTokenFunc: func(c echo.Context, tokenString string) (interface{}, error) {
			userID, err := tokens.Verify(tokenString)
			if err != nil {
				return nil, err
			}
			return userID, nil
		},
		ErrorHandler: func(c echo.Context, err error) error {
			httpErr := apperrors.MapErrorToHTTP(apperrors.ErrInvalidToken)
			return c.JSON(httpErr.StatusCode, httpErr.ToResponse())
		},
	})
}

// UserID returns the account identifier resolved by Authenticated.
func UserID(c echo.Context) (uuid.UUID, bool) {
	id, ok := c.Get(userContextKey).(uuid.UUID)
	return id, ok
}
