package repository

import (
	"context"

	"github.com/qrplate/qrplate/internal/domain/model"
)

// OrderRepository persists customer orders.
type OrderRepository interface {
	Create(ctx context.Context, order *model.Order) error
	GetByID(ctx context.Context, id string) (*model.Order, error)
	// UpdateStatus writes the post-dispatch status. The orchestrator is
	// the only caller; it writes at most once per order.
	UpdateStatus(ctx context.Context, orderID string, status model.OrderStatus) error
}
