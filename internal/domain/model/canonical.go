package model

import "time"

// OrderSource identifies the channel an order was created through.
type OrderSource string

const (
	SourceQRMenu OrderSource = "QR_MENU"
	SourceAI     OrderSource = "AI"
)

// CanonicalOrder is the sink-agnostic order representation that every
// vendor-specific payload derives from. It is a value object built once
// at dispatch time and never mutated afterwards.
type CanonicalOrder struct {
	OrderID    string      `json:"orderId"`
	BusinessID string      `json:"businessId"`
	TableID    string      `json:"table"`
	Source     OrderSource `json:"source"`
	Items      []OrderItem `json:"items"`
	Subtotal   float64     `json:"subtotal"`
	Tax        float64     `json:"tax"`
	Discount   float64     `json:"discount"`
	Total      float64     `json:"total"`
	Notes      string      `json:"notes,omitempty"`
	CreatedAt  time.Time   `json:"createdAt"`
}

// Canonicalize derives the canonical representation of a persisted order.
// Orders that carry an AI-generated summary are tagged as AI-sourced.
func Canonicalize(o *Order) CanonicalOrder {
	source := SourceQRMenu
	if o.AISummary != "" {
		source = SourceAI
	}
	items := make([]OrderItem, len(o.Items))
	copy(items, o.Items)
	return CanonicalOrder{
		OrderID:    o.ID,
		BusinessID: o.BusinessID,
		TableID:    o.TableID,
		Source:     source,
		Items:      items,
		Subtotal:   o.Subtotal,
		Tax:        o.Tax,
		Discount:   o.Discount,
		Total:      o.Total,
		Notes:      o.Notes,
		CreatedAt:  o.CreatedAt,
	}
}
