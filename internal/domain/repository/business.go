package repository

import (
	"context"

	"github.com/qrplate/qrplate/internal/domain/model"
)

// BusinessRepository persists restaurant tenants.
type BusinessRepository interface {
	Create(ctx context.Context, business *model.Business) error
	GetByID(ctx context.Context, id string) (*model.Business, error)
	SetOrderingEnabled(ctx context.Context, id string, enabled bool) error
}
