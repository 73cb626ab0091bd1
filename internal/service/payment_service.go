package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	apperrors "github.com/Zayed4321/FoodHouse-Backend/internal/errors"
	"github.com/Zayed4321/FoodHouse-Backend/internal/model"
	"github.com/Zayed4321/FoodHouse-Backend/internal/payment"
	"github.com/Zayed4321/FoodHouse-Backend/internal/repository"
)

// CartItem is one product line of a checkout request.
type CartItem struct {
	ProductID uuid.UUID
	Quantity  int
}

// PaymentService handles checkout against the external payment gateway.
type PaymentService interface {
	ClientToken(ctx context.Context) (string, error)
	Checkout(ctx context.Context, buyerID uuid.UUID, cart []CartItem, nonce string) (*model.Order, error)
}

type paymentService struct {
	productRepo repository.ProductRepository
	orderRepo   repository.OrderRepository
	gateway     payment.Gateway
}

// NewPaymentService creates a new payment service.
func NewPaymentService(
	productRepo repository.ProductRepository,
	orderRepo repository.OrderRepository,
	gateway payment.Gateway,
) PaymentService {
	return &paymentService{
		productRepo: productRepo,
		orderRepo:   orderRepo,
		gateway:     gateway,
	}
}

// ClientToken fetches a tokenization token from the gateway.
func (s *paymentService) ClientToken(ctx context.Context) (string, error) {
	token, err := s.gateway.ClientToken(ctx)
	if err != nil {
		return "", fmt.Errorf("gateway client token: %w", err)
	}
	return token, nil
}

// Checkout totals the cart from current stored prices, submits the sale to
// the gateway and persists an order for the buyer on success. Client-sent
// prices are never trusted.
func (s *paymentService) Checkout(ctx context.Context, buyerID uuid.UUID, cart []CartItem, nonce string) (*model.Order, error) {
	if len(cart) == 0 {
		return nil, apperrors.NewValidationError("cart is empty")
	}
	if nonce == "" {
		return nil, apperrors.NewValidationError("payment nonce is required")
	}

	ids := make([]uuid.UUID, 0, len(cart))
	for _, line := range cart {
		if line.Quantity <= 0 {
			return nil, apperrors.NewValidationError("quantity must be at least 1")
		}
		ids = append(ids, line.ProductID)
	}

	products, err := s.productRepo.FindByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("find products: %w", err)
	}
	byID := make(map[uuid.UUID]model.Product, len(products))
	for _, product := range products {
		byID[product.ID] = product
	}

	total := decimal.Zero
	items := make([]model.OrderItem, 0, len(cart))
	for _, line := range cart {
		product, ok := byID[line.ProductID]
		if !ok {
			return nil, apperrors.ErrProductNotFound
		}

		lineTotal := product.Price.Mul(decimal.NewFromInt(int64(line.Quantity)))
		total = total.Add(lineTotal)
		items = append(items, model.OrderItem{
			ProductID: product.ID,
			UnitPrice: product.Price,
			Quantity:  line.Quantity,
		})
	}

	result, err := s.gateway.Sale(ctx, total, nonce)
	if err != nil {
		return nil, fmt.Errorf("gateway sale: %w", err)
	}
	if !result.Success {
		return nil, apperrors.ErrPaymentDeclined
	}

	order := &model.Order{
		BuyerID:       buyerID,
		Status:        model.OrderStatusNotProcessed,
		TransactionID: result.TransactionID,
		Total:         total,
		Items:         items,
	}
	if err := s.orderRepo.Create(ctx, order); err != nil {
		return nil, fmt.Errorf("create order: %w", err)
	}

	return order, nil
}
