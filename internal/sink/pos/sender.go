package pos

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/qrplate/qrplate/internal/domain/model"
)

// sender is the shared execution discipline for every adapter: scheme
// check before any network action, one deadline-bound POST, and a
// typed error per failure class.
type sender struct {
	httpClient *http.Client
	logger     *slog.Logger
}

func newSender(logger *slog.Logger) *sender {
	// Per-call deadlines come from config.TimeoutMs, not a client-wide
	// timeout.
	return &sender{httpClient: &http.Client{}, logger: logger}
}

func (s *sender) post(ctx context.Context, cfg *model.PosConfig, payload any) error {
	endpoint := strings.TrimSpace(cfg.Endpoint)
	if !strings.HasPrefix(endpoint, "http://") && !strings.HasPrefix(endpoint, "https://") {
		return ErrBadEndpoint
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("encode pos payload: %w", err)
	}

	timeout := cfg.Timeout()
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build pos request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	for k, v := range cfg.Headers {
		req.Header.Set(k, v)
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return TimeoutError{Limit: timeout}
		}
		return ConnectionError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		excerpt, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		s.logger.Error("pos request rejected",
			slog.String("provider", cfg.Provider),
			slog.Int("status", resp.StatusCode),
			slog.Any("headers", model.RedactHeaders(cfg.Headers)),
		)
		return StatusError{Code: resp.StatusCode, Body: strings.TrimSpace(string(excerpt))}
	}
	return nil
}
