package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	domainErrors "github.com/qrplate/qrplate/internal/domain/errors"
	"github.com/qrplate/qrplate/internal/domain/model"
	"github.com/qrplate/qrplate/internal/domain/repository"
)

// BusinessUseCase manages restaurant tenants and the ordering gate.
type BusinessUseCase struct {
	businesses repository.BusinessRepository
}

// NewBusinessUseCase constructs BusinessUseCase.
func NewBusinessUseCase(businesses repository.BusinessRepository) *BusinessUseCase {
	return &BusinessUseCase{businesses: businesses}
}

// Register creates a new business with ordering enabled.
func (u *BusinessUseCase) Register(ctx context.Context, name string) (*model.Business, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: business name is required", domainErrors.ErrInvalidBusiness)
	}
	business := &model.Business{
		ID:              uuid.New().String(),
		Name:            name,
		OrderingEnabled: true,
		CreatedAt:       time.Now().UTC(),
	}
	if err := u.businesses.Create(ctx, business); err != nil {
		return nil, err
	}
	return business, nil
}

// SetOrderingEnabled flips the subscription gate for a business.
func (u *BusinessUseCase) SetOrderingEnabled(ctx context.Context, id string, enabled bool) error {
	return u.businesses.SetOrderingEnabled(ctx, id, enabled)
}
