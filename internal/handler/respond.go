package handler

import (
	"log"

	"github.com/labstack/echo/v4"

	apperrors "github.com/Zayed4321/FoodHouse-Backend/internal/errors"
)

// fail converts a domain error into the client-facing envelope. Store and
// other internal faults are logged and collapsed into a generic outcome so
// nothing unhandled reaches the transport layer.
func fail(c echo.Context, err error) error {
	httpErr := apperrors.MapErrorToHTTP(err)
	if httpErr.Code == "INTERNAL_ERROR" {
		log.Printf("request %s %s failed: %v", c.Request().Method, c.Path(), err)
	}
	return c.JSON(httpErr.StatusCode, httpErr.ToResponse())
}
