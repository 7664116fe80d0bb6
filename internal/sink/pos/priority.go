package pos

import (
	"context"
	"math"

	"github.com/qrplate/qrplate/internal/domain/model"
)

const ProviderPriority = "priority"

// Priority expects a nested order document with monetary amounts as
// integer agorot.
type priorityPayload struct {
	Order priorityOrder `json:"order"`
}

type priorityOrder struct {
	Reference   string         `json:"reference"`
	Branch      string         `json:"branch"`
	Table       string         `json:"table"`
	Lines       []priorityLine `json:"lines"`
	TotalAgorot int64          `json:"total_agorot"`
	IssuedAt    int64          `json:"issued_at"`
}

type priorityLine struct {
	Description string `json:"description"`
	Count       int    `json:"count"`
	PriceAgorot int64  `json:"price_agorot"`
}

// PriorityAdapter maps orders into the Priority envelope shape.
type PriorityAdapter struct {
	sender *sender
}

func (a *PriorityAdapter) Provider() string {
	return ProviderPriority
}

func (a *PriorityAdapter) SendOrder(ctx context.Context, order model.CanonicalOrder, cfg *model.PosConfig) error {
	lines := make([]priorityLine, 0, len(order.Items))
	for _, item := range order.Items {
		lines = append(lines, priorityLine{
			Description: item.Name,
			Count:       item.Quantity,
			PriceAgorot: agorot(item.UnitPrice),
		})
	}
	payload := priorityPayload{Order: priorityOrder{
		Reference:   order.OrderID,
		Branch:      order.BusinessID,
		Table:       order.TableID,
		Lines:       lines,
		TotalAgorot: agorot(order.Total),
		IssuedAt:    order.CreatedAt.Unix(),
	}}
	return a.sender.post(ctx, cfg, payload)
}

func agorot(shekels float64) int64 {
	return int64(math.Round(shekels * 100))
}
