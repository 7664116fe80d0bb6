package pos

import (
	"context"
	"log/slog"
	"strings"

	"github.com/qrplate/qrplate/internal/domain/model"
)

// Registry resolves vendor adapters by provider key. Unknown or empty
// keys fall back to the generic adapter, so new vendors never require
// orchestrator changes.
type Registry struct {
	adapters map[string]Adapter
	fallback Adapter
}

// NewRegistry builds the registry with all known vendor adapters
// sharing one sender.
func NewRegistry(logger *slog.Logger) *Registry {
	s := newSender(logger)
	generic := &GenericAdapter{sender: s}
	r := &Registry{
		adapters: make(map[string]Adapter),
		fallback: generic,
	}
	r.Register(generic)
	r.Register(&CaspitAdapter{sender: s})
	r.Register(&PriorityAdapter{sender: s})
	return r
}

// Register adds or replaces the adapter for its provider key.
func (r *Registry) Register(a Adapter) {
	r.adapters[a.Provider()] = a
}

// Resolve returns the adapter for the provider key, defaulting to the
// generic adapter.
func (r *Registry) Resolve(provider string) Adapter {
	if a, ok := r.adapters[strings.ToLower(strings.TrimSpace(provider))]; ok {
		return a
	}
	return r.fallback
}

// Send resolves the configured provider's adapter and delivers the
// order through it.
func (r *Registry) Send(ctx context.Context, order model.CanonicalOrder, cfg *model.PosConfig) error {
	return r.Resolve(cfg.Provider).SendOrder(ctx, order, cfg)
}
