package pos

import (
	"context"

	"github.com/qrplate/qrplate/internal/domain/model"
)

// ProviderGeneric is the default provider key for unnamed POS
// integrations.
const ProviderGeneric = "generic"

// GenericAdapter posts the entire canonical order as JSON, verbatim.
type GenericAdapter struct {
	sender *sender
}

func (a *GenericAdapter) Provider() string {
	return ProviderGeneric
}

func (a *GenericAdapter) SendOrder(ctx context.Context, order model.CanonicalOrder, cfg *model.PosConfig) error {
	return a.sender.post(ctx, cfg, order)
}
