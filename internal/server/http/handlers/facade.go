package handlers

import (
	"context"

	"github.com/qrplate/qrplate/internal/domain/model"
	"github.com/qrplate/qrplate/internal/usecase"
)

// OrderFacade encapsulates order operations exposed via HTTP.
type OrderFacade interface {
	PlaceOrder(ctx context.Context, input usecase.PlaceOrderInput) (*model.Order, error)
	Order(ctx context.Context, id string) (*model.Order, error)
}

// BusinessFacade manages tenants and the ordering gate.
type BusinessFacade interface {
	RegisterBusiness(ctx context.Context, name string) (*model.Business, error)
	SetOrderingEnabled(ctx context.Context, id string, enabled bool) error
}

// SinkConfigFacade manages per-business sink configuration.
type SinkConfigFacade interface {
	PrinterConfig(ctx context.Context, businessID string) (*model.PrinterConfig, error)
	SavePrinterConfig(ctx context.Context, businessID string, cfg *model.PrinterConfig) error
	PosConfig(ctx context.Context, businessID string) (*model.PosConfig, error)
	SavePosConfig(ctx context.Context, businessID string, cfg *model.PosConfig) error
}

// OrderingFacade aggregates the full set of operations used across handlers.
type OrderingFacade interface {
	OrderFacade
	BusinessFacade
	SinkConfigFacade
}
