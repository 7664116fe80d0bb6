package pos

import (
	"log/slog"

	"go.uber.org/fx"
)

// Module exposes the POS adapter registry to the fx graph.
var Module = fx.Provide(newRegistry)

type registryParams struct {
	fx.In

	Logger *slog.Logger
}

func newRegistry(p registryParams) *Registry {
	return NewRegistry(p.Logger)
}
