package dto

import "time"

// OrderItemRequest is one requested order line.
type OrderItemRequest struct {
	ID             string   `json:"id"`
	Name           string   `json:"name" binding:"required"`
	Quantity       int      `json:"quantity" binding:"required"`
	UnitPrice      float64  `json:"unitPrice"`
	Customizations []string `json:"customizations,omitempty"`
}

// PlaceOrderRequest is the payload for POST /api/orders.
type PlaceOrderRequest struct {
	BusinessID string             `json:"businessId" binding:"required"`
	TableID    string             `json:"tableId" binding:"required"`
	Items      []OrderItemRequest `json:"items" binding:"required"`
	Tax        float64            `json:"tax"`
	Discount   float64            `json:"discount"`
	Notes      string             `json:"notes,omitempty"`
	AISummary  string             `json:"aiSummary,omitempty"`
}

// OrderItemResponse is one priced order line.
type OrderItemResponse struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	Quantity       int      `json:"quantity"`
	UnitPrice      float64  `json:"unitPrice"`
	Total          float64  `json:"total"`
	Customizations []string `json:"customizations,omitempty"`
}

// OrderResponse mirrors a persisted order, including the post-dispatch
// status.
type OrderResponse struct {
	ID         string              `json:"id"`
	BusinessID string              `json:"businessId"`
	TableID    string              `json:"tableId"`
	Items      []OrderItemResponse `json:"items"`
	Subtotal   float64             `json:"subtotal"`
	Tax        float64             `json:"tax"`
	Discount   float64             `json:"discount"`
	Total      float64             `json:"total"`
	Notes      string              `json:"notes,omitempty"`
	Status     string              `json:"status"`
	CreatedAt  time.Time           `json:"createdAt"`
}
