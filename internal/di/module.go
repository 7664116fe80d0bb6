package di

import (
	"go.uber.org/fx"

	"github.com/qrplate/qrplate/internal/app"
	"github.com/qrplate/qrplate/internal/config"
	"github.com/qrplate/qrplate/internal/dispatch"
	"github.com/qrplate/qrplate/internal/domain/repository"
	"github.com/qrplate/qrplate/internal/logger"
	"github.com/qrplate/qrplate/internal/server/http/handlers"
	"github.com/qrplate/qrplate/internal/server/http/router"
	"github.com/qrplate/qrplate/internal/sink/pos"
	"github.com/qrplate/qrplate/internal/sink/printer"
	"github.com/qrplate/qrplate/internal/storage/postgres"
	"github.com/qrplate/qrplate/internal/usecase"
)

func Module(opts ...fx.Option) fx.Option {
	modules := []fx.Option{
		config.Module,
		logger.Module,
		postgres.Module,
		printer.Module,
		pos.Module,
		dispatch.Module,
		usecase.Module,
		fx.Provide(
			func(configs repository.SinkConfigRepository) dispatch.ConfigProvider { return configs },
			func(orders repository.OrderRepository) dispatch.StatusWriter { return orders },
			func(client *printer.Client) dispatch.PrinterSink { return client },
			func(registry *pos.Registry) dispatch.PosSender { return registry },
			func(d *dispatch.Dispatcher) usecase.Dispatcher { return d },
			func(f *app.OrderingFacade) handlers.OrderingFacade { return f },
		),
		router.Module,
		app.Module,
	}
	modules = append(modules, opts...)
	return fx.Options(modules...)
}
