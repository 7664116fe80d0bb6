package repository

import (
	"context"

	"github.com/qrplate/qrplate/internal/domain/model"
)

// SinkConfigRepository persists per-business printer and POS endpoint
// configuration. Lookups return ErrNotFound when a business has never
// configured a sink; callers treat that as "disabled".
type SinkConfigRepository interface {
	PrinterConfig(ctx context.Context, businessID string) (*model.PrinterConfig, error)
	SavePrinterConfig(ctx context.Context, businessID string, cfg *model.PrinterConfig) error
	PosConfig(ctx context.Context, businessID string) (*model.PosConfig, error)
	SavePosConfig(ctx context.Context, businessID string, cfg *model.PosConfig) error
}
