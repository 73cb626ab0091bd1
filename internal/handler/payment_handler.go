package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	apperrors "github.com/Zayed4321/FoodHouse-Backend/internal/errors"
	"github.com/Zayed4321/FoodHouse-Backend/internal/middleware"
	"github.com/Zayed4321/FoodHouse-Backend/internal/service"
)

// PaymentHandler handles checkout endpoints against the external gateway.
type PaymentHandler struct {
	paymentService service.PaymentService
}

// NewPaymentHandler creates a new payment handler.
func NewPaymentHandler(paymentService service.PaymentService) *PaymentHandler {
	return &PaymentHandler{paymentService: paymentService}
}

// CartItemRequest is one line of a checkout cart.
type CartItemRequest struct {
	ProductID uuid.UUID `json:"product_id" validate:"required"`
	Quantity  int       `json:"quantity" validate:"required,min=1"`
}

// CheckoutRequest represents a checkout submission.
type CheckoutRequest struct {
	Cart  []CartItemRequest `json:"cart" validate:"required,min=1,dive"`
	Nonce string            `json:"nonce" validate:"required"`
}

// ClientToken godoc
// @Summary Get a gateway client token for the frontend
// @Tags payment
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /product/gateway/token [get]
func (h *PaymentHandler) ClientToken(c echo.Context) error {
	token, err := h.paymentService.ClientToken(c.Request().Context())
	if err != nil {
		return fail(c, err)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"success":     true,
		"clientToken": token,
	})
}

// Checkout godoc
// @Summary Pay for a cart and place the order
// @Tags payment
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CheckoutRequest true "Cart and payment nonce"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} errors.Response
// @Failure 402 {object} errors.Response
// @Router /product/gateway/payment [post]
func (h *PaymentHandler) Checkout(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return fail(c, apperrors.ErrInvalidToken)
	}

	var req CheckoutRequest
	if err := c.Bind(&req); err != nil {
		return fail(c, apperrors.NewValidationError("invalid request body"))
	}
	if err := c.Validate(&req); err != nil {
		return fail(c, apperrors.NewValidationError(err.Error()))
	}

	cart := make([]service.CartItem, 0, len(req.Cart))
	for _, line := range req.Cart {
		cart = append(cart, service.CartItem{
			ProductID: line.ProductID,
			Quantity:  line.Quantity,
		})
	}

	order, err := h.paymentService.Checkout(c.Request().Context(), userID, cart, req.Nonce)
	if err != nil {
		return fail(c, err)
	}

	return c.JSON(http.StatusCreated, map[string]interface{}{
		"success": true,
		"message": "order placed successfully",
		"order":   order,
	})
}
