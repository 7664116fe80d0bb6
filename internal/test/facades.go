package test

import (
	"context"
	"time"

	"github.com/qrplate/qrplate/internal/domain/model"
	"github.com/qrplate/qrplate/internal/usecase"
)

// OrderFacadeStub provides controllable behaviour for order endpoints.
type OrderFacadeStub struct {
	PlaceFn func(context.Context, usecase.PlaceOrderInput) (*model.Order, error)
	OrderFn func(context.Context, string) (*model.Order, error)
}

// PlaceOrder delegates to the provided function or returns a default order.
func (s OrderFacadeStub) PlaceOrder(ctx context.Context, input usecase.PlaceOrderInput) (*model.Order, error) {
	if s.PlaceFn != nil {
		return s.PlaceFn(ctx, input)
	}
	return &model.Order{
		ID:         "order-1",
		BusinessID: input.BusinessID,
		TableID:    input.TableID,
		Status:     model.OrderStatusReceived,
		CreatedAt:  time.Unix(0, 0),
	}, nil
}

// Order returns a predefined order.
func (s OrderFacadeStub) Order(ctx context.Context, id string) (*model.Order, error) {
	if s.OrderFn != nil {
		return s.OrderFn(ctx, id)
	}
	return &model.Order{ID: id, Status: model.OrderStatusReceived, CreatedAt: time.Unix(0, 0)}, nil
}

// BusinessFacadeStub simulates tenant management.
type BusinessFacadeStub struct {
	RegisterFn func(context.Context, string) (*model.Business, error)
	GateFn     func(context.Context, string, bool) error
}

func (s BusinessFacadeStub) RegisterBusiness(ctx context.Context, name string) (*model.Business, error) {
	if s.RegisterFn != nil {
		return s.RegisterFn(ctx, name)
	}
	return &model.Business{ID: "biz-1", Name: name, OrderingEnabled: true}, nil
}

func (s BusinessFacadeStub) SetOrderingEnabled(ctx context.Context, id string, enabled bool) error {
	if s.GateFn != nil {
		return s.GateFn(ctx, id, enabled)
	}
	return nil
}

// SinkConfigFacadeStub simulates sink configuration management.
type SinkConfigFacadeStub struct {
	PrinterFn     func(context.Context, string) (*model.PrinterConfig, error)
	SavePrinterFn func(context.Context, string, *model.PrinterConfig) error
	PosFn         func(context.Context, string) (*model.PosConfig, error)
	SavePosFn     func(context.Context, string, *model.PosConfig) error
}

func (s SinkConfigFacadeStub) PrinterConfig(ctx context.Context, businessID string) (*model.PrinterConfig, error) {
	if s.PrinterFn != nil {
		return s.PrinterFn(ctx, businessID)
	}
	return &model.PrinterConfig{Transport: model.PrinterTransportHTTP, Payload: model.PrinterPayloadJSON}, nil
}

func (s SinkConfigFacadeStub) SavePrinterConfig(ctx context.Context, businessID string, cfg *model.PrinterConfig) error {
	if s.SavePrinterFn != nil {
		return s.SavePrinterFn(ctx, businessID, cfg)
	}
	return nil
}

func (s SinkConfigFacadeStub) PosConfig(ctx context.Context, businessID string) (*model.PosConfig, error) {
	if s.PosFn != nil {
		return s.PosFn(ctx, businessID)
	}
	return &model.PosConfig{Provider: "generic", Endpoint: "https://pos.example", Method: "POST", TimeoutMs: 5000}, nil
}

func (s SinkConfigFacadeStub) SavePosConfig(ctx context.Context, businessID string, cfg *model.PosConfig) error {
	if s.SavePosFn != nil {
		return s.SavePosFn(ctx, businessID, cfg)
	}
	return nil
}

// OrderingFacadeStub aggregates all facade stubs for router level tests.
type OrderingFacadeStub struct {
	OrderFacadeStub
	BusinessFacadeStub
	SinkConfigFacadeStub
}
