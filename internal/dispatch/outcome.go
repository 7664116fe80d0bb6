package dispatch

import "github.com/qrplate/qrplate/internal/domain/model"

// OutcomeKind classifies the result of one sink delivery attempt.
type OutcomeKind string

const (
	OutcomeSkipped OutcomeKind = "skipped"
	OutcomeSuccess OutcomeKind = "success"
	OutcomeError   OutcomeKind = "error"
)

// Outcome is the per-sink dispatch result captured before status
// resolution. It is ephemeral and never persisted.
type Outcome struct {
	Kind   OutcomeKind
	Reason string
}

// Skipped marks a sink that was disabled or unconfigured. Not an error.
func Skipped() Outcome {
	return Outcome{Kind: OutcomeSkipped}
}

// Succeeded marks a delivered order copy.
func Succeeded() Outcome {
	return Outcome{Kind: OutcomeSuccess}
}

// Failed marks a delivery attempt that did not reach the sink, with
// enough context for operator logs.
func Failed(reason string) Outcome {
	return Outcome{Kind: OutcomeError, Reason: reason}
}

// Resolve folds two independent sink outcomes into the final order
// status by fixed priority. A success on either sink always outranks
// any error on the other; both sinks skipped leaves the status as
// received.
func Resolve(printer, pos Outcome) model.OrderStatus {
	switch {
	case pos.Kind == OutcomeSuccess:
		return model.OrderStatusSentToPOS
	case printer.Kind == OutcomeSuccess:
		return model.OrderStatusSentToPrinter
	case pos.Kind == OutcomeError:
		return model.OrderStatusPOSError
	case printer.Kind == OutcomeError:
		return model.OrderStatusPrinterError
	default:
		return model.OrderStatusReceived
	}
}
