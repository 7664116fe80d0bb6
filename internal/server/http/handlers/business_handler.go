package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/qrplate/qrplate/internal/domain/errors"
	"github.com/qrplate/qrplate/internal/server/http/dto"
)

// BusinessHandler manages tenant registration and the ordering gate.
type BusinessHandler struct {
	facade BusinessFacade
}

// NewBusinessHandler constructs BusinessHandler.
func NewBusinessHandler(facade BusinessFacade) *BusinessHandler {
	return &BusinessHandler{facade: facade}
}

// Register handles POST /api/businesses.
func (h *BusinessHandler) Register(c *gin.Context) {
	var req dto.BusinessRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	business, err := h.facade.RegisterBusiness(c.Request.Context(), req.Name)
	if err != nil {
		if errors.Is(err, domainErrors.ErrInvalidBusiness) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
			return
		}
		c.Status(http.StatusInternalServerError)
		return
	}
	c.JSON(http.StatusCreated, dto.BusinessResponse{
		ID:              business.ID,
		Name:            business.Name,
		OrderingEnabled: business.OrderingEnabled,
	})
}

// SetOrderingGate handles PUT /api/businesses/:id/ordering.
func (h *BusinessHandler) SetOrderingGate(c *gin.Context) {
	var req dto.OrderingGateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if err := h.facade.SetOrderingEnabled(c.Request.Context(), c.Param("id"), req.Enabled); err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			c.Status(http.StatusNotFound)
			return
		}
		c.Status(http.StatusInternalServerError)
		return
	}
	c.Status(http.StatusNoContent)
}
