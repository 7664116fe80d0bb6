package model

import "time"

// OrderStatus describes the delivery state of an order after sink dispatch.
type OrderStatus string

const (
	OrderStatusReceived      OrderStatus = "received"
	OrderStatusSentToPrinter OrderStatus = "sent_to_printer"
	OrderStatusPrinterError  OrderStatus = "printer_error"
	OrderStatusSentToPOS     OrderStatus = "sent_to_pos"
	OrderStatusPOSError      OrderStatus = "pos_error"
)

// OrderItem is a single priced line of an order.
type OrderItem struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	Quantity       int      `json:"quantity"`
	UnitPrice      float64  `json:"unitPrice"`
	Total          float64  `json:"total"`
	Customizations []string `json:"customizations,omitempty"`
}

// Order describes a confirmed customer order persisted by the ordering API.
// Status starts as received and is written at most once more, by the
// dispatch orchestrator, after both sink attempts complete.
type Order struct {
	ID         string
	BusinessID string
	TableID    string
	Items      []OrderItem
	Subtotal   float64
	Tax        float64
	Discount   float64
	Total      float64
	Notes      string
	AISummary  string
	Status     OrderStatus
	CreatedAt  time.Time
}
