package dispatch

import (
	"log/slog"

	"go.uber.org/fx"
)

// Module exposes the dispatch orchestrator to the fx graph.
var Module = fx.Provide(newDispatcher)

type dispatcherParams struct {
	fx.In

	Configs  ConfigProvider
	Printer  PrinterSink
	Pos      PosSender
	Statuses StatusWriter
	Logger   *slog.Logger
}

func newDispatcher(p dispatcherParams) *Dispatcher {
	return NewDispatcher(p.Configs, p.Printer, p.Pos, p.Statuses, p.Logger)
}
