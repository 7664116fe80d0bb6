package printer

import (
	"log/slog"

	"go.uber.org/fx"

	"github.com/qrplate/qrplate/internal/config"
)

// Module exposes the printer sink client to the fx graph.
var Module = fx.Provide(newClient)

type clientParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

func newClient(p clientParams) *Client {
	return NewClient(p.Config.PrinterSendTimeout, p.Logger)
}
