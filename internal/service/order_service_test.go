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

func TestOrderService_UpdateStatus(t *testing.T) {
	orderID := uuid.New()

	t.Run("moves order to a known status", func(t *testing.T) {
		repo := new(MockOrderRepository)
		repo.On("UpdateStatus", mock.Anything, orderID, model.OrderStatusShipping).
			Return(&model.Order{ID: orderID, Status: model.OrderStatusShipping}, nil)

		svc := NewOrderService(repo)
		order, err := svc.UpdateStatus(context.Background(), orderID, model.OrderStatusShipping)

		require.NoError(t, err)
		assert.Equal(t, model.OrderStatusShipping, order.Status)
	})

	t.Run("rejects unknown status without touching the store", func(t *testing.T) {
		repo := new(MockOrderRepository)
		svc := NewOrderService(repo)

		_, err := svc.UpdateStatus(context.Background(), orderID, model.OrderStatus("Teleported"))

		var validationErr *apperrors.ValidationError
		assert.ErrorAs(t, err, &validationErr)
		repo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("missing order", func(t *testing.T) {
		repo := new(MockOrderRepository)
		repo.On("UpdateStatus", mock.Anything, orderID, model.OrderStatusCancelled).
			Return(nil, gorm.ErrRecordNotFound)

		svc := NewOrderService(repo)
		_, err := svc.UpdateStatus(context.Background(), orderID, model.OrderStatusCancelled)

		assert.ErrorIs(t, err, apperrors.ErrOrderNotFound)
	})
}

func TestOrderService_ListForBuyer(t *testing.T) {
	buyerID := uuid.New()
	repo := new(MockOrderRepository)
	repo.On("ListByBuyer", mock.Anything, buyerID).
		Return([]model.Order{{BuyerID: buyerID}, {BuyerID: buyerID}}, nil)

	svc := NewOrderService(repo)
	orders, err := svc.ListForBuyer(context.Background(), buyerID)

	require.NoError(t, err)
	assert.Len(t, orders, 2)
}
