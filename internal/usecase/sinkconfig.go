package usecase

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	domainErrors "github.com/qrplate/qrplate/internal/domain/errors"
	"github.com/qrplate/qrplate/internal/domain/model"
	"github.com/qrplate/qrplate/internal/domain/repository"
)

const (
	minPosTimeoutMs     = 100
	maxPosTimeoutMs     = 60000
	defaultPosTimeoutMs = 10000
)

// SinkConfigUseCase validates and persists per-business sink
// configuration. Invariants are enforced here, at write time; dispatch
// re-checks only what it must (URL scheme, transport support).
type SinkConfigUseCase struct {
	configs repository.SinkConfigRepository
}

// NewSinkConfigUseCase constructs SinkConfigUseCase.
func NewSinkConfigUseCase(configs repository.SinkConfigRepository) *SinkConfigUseCase {
	return &SinkConfigUseCase{configs: configs}
}

// SavePrinterConfig validates and stores a printer configuration.
// tcp/serial are accepted here and rejected at dispatch time.
func (u *SinkConfigUseCase) SavePrinterConfig(ctx context.Context, businessID string, cfg *model.PrinterConfig) error {
	if cfg.Transport == "" {
		cfg.Transport = model.PrinterTransportHTTP
	}
	if cfg.Payload == "" {
		cfg.Payload = model.PrinterPayloadJSON
	}
	switch cfg.Transport {
	case model.PrinterTransportHTTP, model.PrinterTransportHTTPS, model.PrinterTransportTCP, model.PrinterTransportSerial:
	default:
		return fmt.Errorf("%w: unknown printer transport %q", domainErrors.ErrInvalidSinkConfig, cfg.Transport)
	}
	switch cfg.Payload {
	case model.PrinterPayloadJSON, model.PrinterPayloadText, model.PrinterPayloadXML:
	default:
		return fmt.Errorf("%w: unknown printer payload type %q", domainErrors.ErrInvalidSinkConfig, cfg.Payload)
	}
	if cfg.Enabled {
		switch cfg.Transport {
		case model.PrinterTransportHTTP, model.PrinterTransportHTTPS:
			if strings.TrimSpace(cfg.Endpoint) == "" {
				return fmt.Errorf("%w: enabled printer requires an endpoint", domainErrors.ErrInvalidSinkConfig)
			}
		}
	}
	return u.configs.SavePrinterConfig(ctx, businessID, cfg)
}

// PrinterConfig loads the stored printer configuration with
// secret-bearing header values redacted for display.
func (u *SinkConfigUseCase) PrinterConfig(ctx context.Context, businessID string) (*model.PrinterConfig, error) {
	cfg, err := u.configs.PrinterConfig(ctx, businessID)
	if err != nil {
		return nil, err
	}
	cfg.Headers = model.RedactHeaders(cfg.Headers)
	return cfg, nil
}

// SavePosConfig validates and stores a POS configuration.
func (u *SinkConfigUseCase) SavePosConfig(ctx context.Context, businessID string, cfg *model.PosConfig) error {
	if cfg.Provider == "" {
		cfg.Provider = "generic"
	}
	if cfg.Method == "" {
		cfg.Method = http.MethodPost
	}
	if cfg.Method != http.MethodPost {
		return fmt.Errorf("%w: pos method must be POST", domainErrors.ErrInvalidSinkConfig)
	}
	endpoint := strings.TrimSpace(cfg.Endpoint)
	if !strings.HasPrefix(endpoint, "http://") && !strings.HasPrefix(endpoint, "https://") {
		return fmt.Errorf("%w: pos endpoint must start with http:// or https://", domainErrors.ErrInvalidSinkConfig)
	}
	if cfg.TimeoutMs == 0 {
		cfg.TimeoutMs = defaultPosTimeoutMs
	}
	if cfg.TimeoutMs < minPosTimeoutMs || cfg.TimeoutMs > maxPosTimeoutMs {
		return fmt.Errorf("%w: pos timeout must be between %d and %d ms", domainErrors.ErrInvalidSinkConfig, minPosTimeoutMs, maxPosTimeoutMs)
	}
	return u.configs.SavePosConfig(ctx, businessID, cfg)
}

// PosConfig loads the stored POS configuration with secret-bearing
// header values redacted for display.
func (u *SinkConfigUseCase) PosConfig(ctx context.Context, businessID string) (*model.PosConfig, error) {
	cfg, err := u.configs.PosConfig(ctx, businessID)
	if err != nil {
		return nil, err
	}
	cfg.Headers = model.RedactHeaders(cfg.Headers)
	return cfg, nil
}
