package pos

import (
	"context"
	"time"

	"github.com/qrplate/qrplate/internal/domain/model"
)

const ProviderCaspit = "caspit"

type caspitPayload struct {
	ExternalID string       `json:"external_id"`
	TableCode  string       `json:"table_code"`
	Source     string       `json:"source"`
	Items      []caspitItem `json:"items"`
	Subtotal   float64      `json:"subtotal"`
	Tax        float64      `json:"tax"`
	Discount   float64      `json:"discount"`
	Total      float64      `json:"total"`
	Comment    string       `json:"comment,omitempty"`
	CreatedAt  string       `json:"created_at"`
}

type caspitItem struct {
	ProductName string  `json:"product_name"`
	Quantity    int     `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
	LineTotal   float64 `json:"line_total"`
}

// CaspitAdapter maps orders into Caspit's snake_case order-intake
// shape, amounts in shekels.
type CaspitAdapter struct {
	sender *sender
}

func (a *CaspitAdapter) Provider() string {
	return ProviderCaspit
}

func (a *CaspitAdapter) SendOrder(ctx context.Context, order model.CanonicalOrder, cfg *model.PosConfig) error {
	items := make([]caspitItem, 0, len(order.Items))
	for _, item := range order.Items {
		total := item.Total
		if total == 0 {
			total = float64(item.Quantity) * item.UnitPrice
		}
		items = append(items, caspitItem{
			ProductName: item.Name,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
			LineTotal:   total,
		})
	}
	payload := caspitPayload{
		ExternalID: order.OrderID,
		TableCode:  order.TableID,
		Source:     string(order.Source),
		Items:      items,
		Subtotal:   order.Subtotal,
		Tax:        order.Tax,
		Discount:   order.Discount,
		Total:      order.Total,
		Comment:    order.Notes,
		CreatedAt:  order.CreatedAt.UTC().Format(time.RFC3339),
	}
	return a.sender.post(ctx, cfg, payload)
}
