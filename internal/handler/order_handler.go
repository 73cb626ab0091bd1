package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	apperrors "github.com/Zayed4321/FoodHouse-Backend/internal/errors"
	"github.com/Zayed4321/FoodHouse-Backend/internal/middleware"
	"github.com/Zayed4321/FoodHouse-Backend/internal/model"
	"github.com/Zayed4321/FoodHouse-Backend/internal/service"
)

// OrderHandler handles order endpoints.
type OrderHandler struct {
	orderService service.OrderService
}

// NewOrderHandler creates a new order handler.
func NewOrderHandler(orderService service.OrderService) *OrderHandler {
	return &OrderHandler{orderService: orderService}
}

// OrderStatusRequest represents an order status update.
type OrderStatusRequest struct {
	Status model.OrderStatus `json:"status" validate:"required"`
}

// MyOrders godoc
// @Summary List the authenticated buyer's orders
// @Tags orders
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} errors.Response
// @Router /users/orders [get]
func (h *OrderHandler) MyOrders(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return fail(c, apperrors.ErrInvalidToken)
	}

	orders, err := h.orderService.ListForBuyer(c.Request().Context(), userID)
	if err != nil {
		return fail(c, err)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"success": true,
		"orders":  orders,
	})
}

// AllOrders godoc
// @Summary List all orders (admin)
// @Tags orders
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{}
// @Failure 403 {object} errors.Response
// @Router /users/all-orders [get]
func (h *OrderHandler) AllOrders(c echo.Context) error {
	orders, err := h.orderService.ListAll(c.Request().Context())
	if err != nil {
		return fail(c, err)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"success": true,
		"orders":  orders,
	})
}

// UpdateStatus godoc
// @Summary Update an order's fulfilment status (admin)
// @Tags orders
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param orderId path string true "Order ID"
// @Param request body OrderStatusRequest true "New status"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} errors.Response
// @Failure 404 {object} errors.Response
// @Router /users/order-status/{orderId} [put]
func (h *OrderHandler) UpdateStatus(c echo.Context) error {
	orderID, err := uuid.Parse(c.Param("orderId"))
	if err != nil {
		return fail(c, apperrors.NewValidationError("invalid order id"))
	}

	var req OrderStatusRequest
	if err := c.Bind(&req); err != nil {
		return fail(c, apperrors.NewValidationError("invalid request body"))
	}
	if err := c.Validate(&req); err != nil {
		return fail(c, apperrors.NewValidationError(err.Error()))
	}

	order, err := h.orderService.UpdateStatus(c.Request().Context(), orderID, req.Status)
	if err != nil {
		return fail(c, err)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"success": true,
		"order":   order,
	})
}
