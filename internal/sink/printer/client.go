package printer

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/qrplate/qrplate/internal/dispatch"
	"github.com/qrplate/qrplate/internal/domain/model"
	"github.com/qrplate/qrplate/internal/sink/format"
)

const defaultSendTimeout = 10 * time.Second

// Client is the single generic sender for kitchen printer endpoints.
// There are no per-vendor printer adapters; the payload shape is
// selected by configuration alone.
type Client struct {
	httpClient *http.Client
	logger     *slog.Logger
}

// NewClient creates a printer client. Every delivery is bounded by the
// given timeout; zero falls back to a 10s default.
func NewClient(timeout time.Duration, logger *slog.Logger) *Client {
	if timeout <= 0 {
		timeout = defaultSendTimeout
	}
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger,
	}
}

// Send delivers one formatted order copy to the configured printer.
// Disabled, absent, or endpoint-less configs are a skip, never an
// error; tcp/serial transports fail closed without any network action.
func (c *Client) Send(ctx context.Context, order model.CanonicalOrder, cfg *model.PrinterConfig) dispatch.Outcome {
	if cfg == nil || !cfg.Enabled || strings.TrimSpace(cfg.Endpoint) == "" {
		return dispatch.Skipped()
	}

	switch cfg.Transport {
	case model.PrinterTransportTCP, model.PrinterTransportSerial:
		return dispatch.Failed(fmt.Sprintf("unsupported transport %q", cfg.Transport))
	}

	body := format.Format(order, cfg.Payload)
	endpoint := normalizeEndpoint(cfg.Endpoint)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(body))
	if err != nil {
		return dispatch.Failed("build printer request: " + err.Error())
	}
	req.Header.Set("Content-Type", format.ContentType(cfg.Payload))
	for k, v := range cfg.Headers {
		req.Header.Set(k, v)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return dispatch.Failed("printer request: " + err.Error())
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		excerpt, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		c.logger.Error("printer rejected order",
			slog.String("order_id", order.OrderID),
			slog.Int("status", resp.StatusCode),
		)
		return dispatch.Failed(fmt.Sprintf("printer responded %d: %s", resp.StatusCode, strings.TrimSpace(string(excerpt))))
	}
	return dispatch.Succeeded()
}

// Business-entered endpoints frequently omit the scheme.
func normalizeEndpoint(endpoint string) string {
	endpoint = strings.TrimSpace(endpoint)
	if strings.HasPrefix(endpoint, "http://") || strings.HasPrefix(endpoint, "https://") {
		return endpoint
	}
	return "http://" + endpoint
}
