// Package pos routes canonical orders to point-of-sale systems. Each
// vendor gets one Adapter owning the canonical-to-vendor payload
// translation; adding a vendor means implementing an adapter and
// registering its provider key, nothing more.
package pos

import (
	"context"

	"github.com/qrplate/qrplate/internal/domain/model"
)

// Adapter translates a canonical order into one vendor's expected
// request shape and delivers it. Adapters are pure translators around
// the shared sender; retry policy, if ever added, belongs in a
// decorator, not here.
type Adapter interface {
	Provider() string
	SendOrder(ctx context.Context, order model.CanonicalOrder, cfg *model.PosConfig) error
}
