package middleware

import (
	"github.com/labstack/echo/v4"

	apperrors "github.com/Zayed4321/FoodHouse-Backend/internal/errors"
	"github.com/Zayed4321/FoodHouse-Backend/internal/repository"
)

// RequireAdmin permits continuation only for accounts holding the admin role.
// Must run after Authenticated. The role is read from the store on every
// request: tokens carry no role, so a downgrade takes effect immediately.
// An account deleted after token issuance is treated as forbidden.
func RequireAdmin(users repository.UserRepository) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			userID, ok := UserID(c)
			if !ok {
				httpErr := apperrors.MapErrorToHTTP(apperrors.ErrInvalidToken)
				return c.JSON(httpErr.StatusCode, httpErr.ToResponse())
			}

			user, err := users.FindByID(c.Request().Context(), userID)
			if err != nil || !user.IsAdmin() {
				httpErr := apperrors.MapErrorToHTTP(apperrors.ErrForbidden)
				return c.JSON(httpErr.StatusCode, httpErr.ToResponse())
			}

			return next(c)
		}
	}
}
