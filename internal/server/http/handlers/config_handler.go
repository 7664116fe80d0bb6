package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/qrplate/qrplate/internal/domain/errors"
	"github.com/qrplate/qrplate/internal/domain/model"
	"github.com/qrplate/qrplate/internal/server/http/dto"
)

// SinkConfigHandler manages the dashboard sink configuration endpoints.
type SinkConfigHandler struct {
	facade SinkConfigFacade
}

// NewSinkConfigHandler constructs SinkConfigHandler.
func NewSinkConfigHandler(facade SinkConfigFacade) *SinkConfigHandler {
	return &SinkConfigHandler{facade: facade}
}

// PrinterConfig handles GET /api/businesses/:id/printer-config.
// Header values are redacted by the use case before they reach here.
func (h *SinkConfigHandler) PrinterConfig(c *gin.Context) {
	cfg, err := h.facade.PrinterConfig(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			c.Status(http.StatusNotFound)
			return
		}
		c.Status(http.StatusInternalServerError)
		return
	}
	c.JSON(http.StatusOK, dto.PrinterConfigResponse{
		Enabled:     cfg.Enabled,
		Type:        string(cfg.Transport),
		Endpoint:    cfg.Endpoint,
		PayloadType: string(cfg.Payload),
		Headers:     cfg.Headers,
		Port:        cfg.Port,
	})
}

// SavePrinterConfig handles PUT /api/businesses/:id/printer-config.
func (h *SinkConfigHandler) SavePrinterConfig(c *gin.Context) {
	var req dto.PrinterConfigRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	cfg := &model.PrinterConfig{
		Enabled:   req.Enabled,
		Transport: model.PrinterTransport(req.Type),
		Endpoint:  req.Endpoint,
		Payload:   model.PrinterPayload(req.PayloadType),
		Headers:   req.Headers,
		Port:      req.Port,
	}
	if err := h.facade.SavePrinterConfig(c.Request.Context(), c.Param("id"), cfg); err != nil {
		if errors.Is(err, domainErrors.ErrInvalidSinkConfig) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
			return
		}
		c.Status(http.StatusInternalServerError)
		return
	}
	c.Status(http.StatusNoContent)
}

// PosConfig handles GET /api/businesses/:id/pos-config.
func (h *SinkConfigHandler) PosConfig(c *gin.Context) {
	cfg, err := h.facade.PosConfig(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			c.Status(http.StatusNotFound)
			return
		}
		c.Status(http.StatusInternalServerError)
		return
	}
	c.JSON(http.StatusOK, dto.PosConfigResponse{
		Enabled:   cfg.Enabled,
		Provider:  cfg.Provider,
		Endpoint:  cfg.Endpoint,
		Method:    cfg.Method,
		Headers:   cfg.Headers,
		TimeoutMs: cfg.TimeoutMs,
	})
}

// SavePosConfig handles PUT /api/businesses/:id/pos-config.
func (h *SinkConfigHandler) SavePosConfig(c *gin.Context) {
	var req dto.PosConfigRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	cfg := &model.PosConfig{
		Enabled:   req.Enabled,
		Provider:  req.Provider,
		Endpoint:  req.Endpoint,
		Method:    req.Method,
		Headers:   req.Headers,
		TimeoutMs: req.TimeoutMs,
	}
	if err := h.facade.SavePosConfig(c.Request.Context(), c.Param("id"), cfg); err != nil {
		if errors.Is(err, domainErrors.ErrInvalidSinkConfig) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
			return
		}
		c.Status(http.StatusInternalServerError)
		return
	}
	c.Status(http.StatusNoContent)
}
