package app

import (
	"context"

	"github.com/qrplate/qrplate/internal/domain/model"
	"github.com/qrplate/qrplate/internal/usecase"
)

// OrderingFacade aggregates the application operations exposed over HTTP.
type OrderingFacade struct {
	orders     *usecase.OrderUseCase
	configs    *usecase.SinkConfigUseCase
	businesses *usecase.BusinessUseCase
}

// NewOrderingFacade constructs the facade over the use cases.
func NewOrderingFacade(orders *usecase.OrderUseCase, configs *usecase.SinkConfigUseCase, businesses *usecase.BusinessUseCase) *OrderingFacade {
	return &OrderingFacade{orders: orders, configs: configs, businesses: businesses}
}

func (f *OrderingFacade) PlaceOrder(ctx context.Context, input usecase.PlaceOrderInput) (*model.Order, error) {
	return f.orders.Place(ctx, input)
}

func (f *OrderingFacade) Order(ctx context.Context, id string) (*model.Order, error) {
	return f.orders.Get(ctx, id)
}

func (f *OrderingFacade) RegisterBusiness(ctx context.Context, name string) (*model.Business, error) {
	return f.businesses.Register(ctx, name)
}

func (f *OrderingFacade) SetOrderingEnabled(ctx context.Context, id string, enabled bool) error {
	return f.businesses.SetOrderingEnabled(ctx, id, enabled)
}

func (f *OrderingFacade) PrinterConfig(ctx context.Context, businessID string) (*model.PrinterConfig, error) {
	return f.configs.PrinterConfig(ctx, businessID)
}

func (f *OrderingFacade) SavePrinterConfig(ctx context.Context, businessID string, cfg *model.PrinterConfig) error {
	return f.configs.SavePrinterConfig(ctx, businessID, cfg)
}

func (f *OrderingFacade) PosConfig(ctx context.Context, businessID string) (*model.PosConfig, error) {
	return f.configs.PosConfig(ctx, businessID)
}

func (f *OrderingFacade) SavePosConfig(ctx context.Context, businessID string, cfg *model.PosConfig) error {
	return f.configs.SavePosConfig(ctx, businessID, cfg)
}
