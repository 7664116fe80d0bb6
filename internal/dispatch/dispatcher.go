package dispatch

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	domainErrors "github.com/qrplate/qrplate/internal/domain/errors"
	"github.com/qrplate/qrplate/internal/domain/model"
)

// ConfigProvider loads sink configuration for a business on demand.
// ErrNotFound is equivalent to a disabled sink.
type ConfigProvider interface {
	PrinterConfig(ctx context.Context, businessID string) (*model.PrinterConfig, error)
	PosConfig(ctx context.Context, businessID string) (*model.PosConfig, error)
}

// PrinterSink delivers a formatted order copy to the kitchen printer.
type PrinterSink interface {
	Send(ctx context.Context, order model.CanonicalOrder, cfg *model.PrinterConfig) Outcome
}

// PosSender delivers a canonical order through the vendor adapter
// resolved from the config's provider key.
type PosSender interface {
	Send(ctx context.Context, order model.CanonicalOrder, cfg *model.PosConfig) error
}

// StatusWriter persists the resolved post-dispatch order status.
type StatusWriter interface {
	UpdateStatus(ctx context.Context, orderID string, status model.OrderStatus) error
}

// Dispatcher fans a confirmed order out to the kitchen printer and the
// POS system. Each sink is fault-isolated: no sink failure ever
// escapes to the order-creation caller.
type Dispatcher struct {
	configs  ConfigProvider
	printer  PrinterSink
	pos      PosSender
	statuses StatusWriter
	logger   *slog.Logger
}

// NewDispatcher constructs the fan-out orchestrator.
func NewDispatcher(configs ConfigProvider, printer PrinterSink, pos PosSender, statuses StatusWriter, logger *slog.Logger) *Dispatcher {
	return &Dispatcher{configs: configs, printer: printer, pos: pos, statuses: statuses, logger: logger}
}

// Dispatch routes the order to both sinks, resolves the final status,
// and writes it back once when it differs from received. It is invoked
// exactly once per order, strictly after the row exists with status
// received. The returned status is the observable contract; wall-clock
// ordering of the two sink calls is not.
func (d *Dispatcher) Dispatch(ctx context.Context, order *model.Order) model.OrderStatus {
	// Client disconnects must not abort an in-flight fan-out.
	ctx = context.WithoutCancel(ctx)

	canonical := model.Canonicalize(order)

	var (
		printerOutcome Outcome
		posOutcome     Outcome
		wg             sync.WaitGroup
	)
	wg.Add(2)
	go func() {
		defer wg.Done()
		printerOutcome = d.dispatchPrinter(ctx, canonical)
	}()
	go func() {
		defer wg.Done()
		posOutcome = d.dispatchPos(ctx, canonical)
	}()
	wg.Wait()

	d.logOutcome(order.ID, "printer", printerOutcome)
	d.logOutcome(order.ID, "pos", posOutcome)

	status := Resolve(printerOutcome, posOutcome)
	if status != model.OrderStatusReceived {
		if err := d.statuses.UpdateStatus(ctx, order.ID, status); err != nil {
			d.logger.Error("order status update failed",
				slog.String("order_id", order.ID),
				slog.String("status", string(status)),
				slog.String("error", err.Error()),
			)
		}
	}
	return status
}

func (d *Dispatcher) dispatchPrinter(ctx context.Context, order model.CanonicalOrder) Outcome {
	cfg, err := d.configs.PrinterConfig(ctx, order.BusinessID)
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			return Skipped()
		}
		return Failed("load printer config: " + err.Error())
	}
	return d.printer.Send(ctx, order, cfg)
}

func (d *Dispatcher) dispatchPos(ctx context.Context, order model.CanonicalOrder) Outcome {
	cfg, err := d.configs.PosConfig(ctx, order.BusinessID)
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			return Skipped()
		}
		return Failed("load pos config: " + err.Error())
	}
	if !cfg.Enabled {
		return Skipped()
	}
	if err := d.pos.Send(ctx, order, cfg); err != nil {
		return Failed(err.Error())
	}
	return Succeeded()
}

func (d *Dispatcher) logOutcome(orderID, sink string, outcome Outcome) {
	switch outcome.Kind {
	case OutcomeError:
		d.logger.Error("sink dispatch failed",
			slog.String("order_id", orderID),
			slog.String("sink", sink),
			slog.String("reason", outcome.Reason),
		)
	default:
		d.logger.Info("sink dispatch finished",
			slog.String("order_id", orderID),
			slog.String("sink", sink),
			slog.String("outcome", string(outcome.Kind)),
		)
	}
}
