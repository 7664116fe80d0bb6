package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/qrplate/qrplate/internal/domain/errors"
	"github.com/qrplate/qrplate/internal/domain/model"
	"github.com/qrplate/qrplate/internal/server/http/dto"
	"github.com/qrplate/qrplate/internal/usecase"
)

// OrderHandler manages order endpoints.
type OrderHandler struct {
	facade OrderFacade
}

// NewOrderHandler constructs OrderHandler.
func NewOrderHandler(facade OrderFacade) *OrderHandler {
	return &OrderHandler{facade: facade}
}

// Place handles POST /api/orders. The response always reflects the
// final post-dispatch status; sink failures never fail this call.
func (h *OrderHandler) Place(c *gin.Context) {
	var req dto.PlaceOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	order, err := h.facade.PlaceOrder(c.Request.Context(), toPlaceOrderInput(req))
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrInvalidOrder):
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		case errors.Is(err, domainErrors.ErrOrderingDisabled):
			c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
		case errors.Is(err, domainErrors.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "business not found"})
		default:
			c.Status(http.StatusInternalServerError)
		}
		return
	}

	c.JSON(http.StatusCreated, toOrderResponse(order))
}

// Get handles GET /api/orders/:id.
func (h *OrderHandler) Get(c *gin.Context) {
	order, err := h.facade.Order(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			c.Status(http.StatusNotFound)
			return
		}
		c.Status(http.StatusInternalServerError)
		return
	}
	c.JSON(http.StatusOK, toOrderResponse(order))
}

func toPlaceOrderInput(req dto.PlaceOrderRequest) usecase.PlaceOrderInput {
	items := make([]usecase.PlaceOrderItem, 0, len(req.Items))
	for _, item := range req.Items {
		items = append(items, usecase.PlaceOrderItem{
			ID:             item.ID,
			Name:           item.Name,
			Quantity:       item.Quantity,
			UnitPrice:      item.UnitPrice,
			Customizations: item.Customizations,
		})
	}
	return usecase.PlaceOrderInput{
		BusinessID: req.BusinessID,
		TableID:    req.TableID,
		Items:      items,
		Tax:        req.Tax,
		Discount:   req.Discount,
		Notes:      req.Notes,
		AISummary:  req.AISummary,
	}
}

func toOrderResponse(order *model.Order) dto.OrderResponse {
	items := make([]dto.OrderItemResponse, 0, len(order.Items))
	for _, item := range order.Items {
		items = append(items, dto.OrderItemResponse{
			ID:             item.ID,
			Name:           item.Name,
			Quantity:       item.Quantity,
			UnitPrice:      item.UnitPrice,
			Total:          item.Total,
			Customizations: item.Customizations,
		})
	}
	return dto.OrderResponse{
		ID:         order.ID,
		BusinessID: order.BusinessID,
		TableID:    order.TableID,
		Items:      items,
		Subtotal:   order.Subtotal,
		Tax:        order.Tax,
		Discount:   order.Discount,
		Total:      order.Total,
		Notes:      order.Notes,
		Status:     string(order.Status),
		CreatedAt:  order.CreatedAt,
	}
}
