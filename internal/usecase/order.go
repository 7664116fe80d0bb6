package usecase

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"

	domainErrors "github.com/qrplate/qrplate/internal/domain/errors"
	"github.com/qrplate/qrplate/internal/domain/model"
	"github.com/qrplate/qrplate/internal/domain/repository"
)

// Dispatcher routes a persisted order to the configured sinks and
// returns the resolved final status. Implementations must never fail
// order creation.
type Dispatcher interface {
	Dispatch(ctx context.Context, order *model.Order) model.OrderStatus
}

// PlaceOrderItem is one requested line of a new order.
type PlaceOrderItem struct {
	ID             string
	Name           string
	Quantity       int
	UnitPrice      float64
	Customizations []string
}

// PlaceOrderInput carries the raw payload accepted from the ordering
// surface (QR menu or AI assistant).
type PlaceOrderInput struct {
	BusinessID string
	TableID    string
	Items      []PlaceOrderItem
	Tax        float64
	Discount   float64
	Notes      string
	AISummary  string
}

// OrderUseCase encapsulates order confirmation: validation, the
// eligibility gate, persistence, and sink dispatch.
type OrderUseCase struct {
	orders     repository.OrderRepository
	businesses repository.BusinessRepository
	dispatcher Dispatcher
}

// NewOrderUseCase constructs OrderUseCase.
func NewOrderUseCase(orders repository.OrderRepository, businesses repository.BusinessRepository, dispatcher Dispatcher) *OrderUseCase {
	return &OrderUseCase{orders: orders, businesses: businesses, dispatcher: dispatcher}
}

// Place validates and persists a new order with status received, then
// fans it out to the configured sinks. Sink outcomes only influence
// the returned status, never the success of order creation.
func (u *OrderUseCase) Place(ctx context.Context, input PlaceOrderInput) (*model.Order, error) {
	if err := validatePlaceOrder(input); err != nil {
		return nil, err
	}

	business, err := u.businesses.GetByID(ctx, input.BusinessID)
	if err != nil {
		return nil, err
	}
	if !business.OrderingEnabled {
		return nil, domainErrors.ErrOrderingDisabled
	}

	order := buildOrder(input)
	if err := u.orders.Create(ctx, order); err != nil {
		return nil, err
	}

	order.Status = u.dispatcher.Dispatch(ctx, order)
	return order, nil
}

// Get returns one order by id.
func (u *OrderUseCase) Get(ctx context.Context, id string) (*model.Order, error) {
	return u.orders.GetByID(ctx, id)
}

func validatePlaceOrder(input PlaceOrderInput) error {
	if input.BusinessID == "" {
		return fmt.Errorf("%w: business id is required", domainErrors.ErrInvalidOrder)
	}
	if input.TableID == "" {
		return fmt.Errorf("%w: table id is required", domainErrors.ErrInvalidOrder)
	}
	if len(input.Items) == 0 {
		return fmt.Errorf("%w: at least one item is required", domainErrors.ErrInvalidOrder)
	}
	for i, item := range input.Items {
		if item.Quantity <= 0 {
			return fmt.Errorf("%w: item %d has non-positive quantity", domainErrors.ErrInvalidOrder, i)
		}
		if item.UnitPrice < 0 {
			return fmt.Errorf("%w: item %d has negative price", domainErrors.ErrInvalidOrder, i)
		}
	}
	if input.Tax < 0 || input.Discount < 0 {
		return fmt.Errorf("%w: tax and discount must be non-negative", domainErrors.ErrInvalidOrder)
	}
	return nil
}

func buildOrder(input PlaceOrderInput) *model.Order {
	items := make([]model.OrderItem, 0, len(input.Items))
	subtotal := 0.0
	for _, in := range input.Items {
		lineTotal := round2(float64(in.Quantity) * in.UnitPrice)
		subtotal += lineTotal
		items = append(items, model.OrderItem{
			ID:             in.ID,
			Name:           in.Name,
			Quantity:       in.Quantity,
			UnitPrice:      in.UnitPrice,
			Total:          lineTotal,
			Customizations: in.Customizations,
		})
	}
	subtotal = round2(subtotal)

	return &model.Order{
		ID:         uuid.New().String(),
		BusinessID: input.BusinessID,
		TableID:    input.TableID,
		Items:      items,
		Subtotal:   subtotal,
		Tax:        round2(input.Tax),
		Discount:   round2(input.Discount),
		Total:      round2(subtotal + input.Tax - input.Discount),
		Notes:      input.Notes,
		AISummary:  input.AISummary,
		Status:     model.OrderStatusReceived,
		CreatedAt:  time.Now().UTC(),
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
