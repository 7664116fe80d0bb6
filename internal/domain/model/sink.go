package model

import (
	"strings"
	"time"
)

// PrinterTransport is the connection type of a kitchen printer endpoint.
type PrinterTransport string

const (
	PrinterTransportHTTP   PrinterTransport = "http"
	PrinterTransportHTTPS  PrinterTransport = "https"
	PrinterTransportTCP    PrinterTransport = "tcp"
	PrinterTransportSerial PrinterTransport = "serial"
)

// PrinterPayload selects the wire format of the kitchen ticket body.
type PrinterPayload string

const (
	PrinterPayloadJSON PrinterPayload = "json"
	PrinterPayloadText PrinterPayload = "text"
	PrinterPayloadXML  PrinterPayload = "xml"
)

// PrinterConfig holds a business-supplied kitchen printer endpoint.
// tcp/serial are accepted as stored configuration but rejected at
// dispatch time; there is no lower-level transport implementation.
type PrinterConfig struct {
	Enabled   bool
	Transport PrinterTransport
	Endpoint  string
	Payload   PrinterPayload
	Headers   map[string]string
	Port      int
}

// PosConfig holds a business-supplied POS integration endpoint.
type PosConfig struct {
	Enabled   bool
	Provider  string
	Endpoint  string
	Method    string
	Headers   map[string]string
	TimeoutMs int
}

// Timeout returns the per-call deadline for POS requests.
func (c PosConfig) Timeout() time.Duration {
	return time.Duration(c.TimeoutMs) * time.Millisecond
}

// RedactedValue replaces secret-bearing header values in any
// observability or API output.
const RedactedValue = "[REDACTED]"

var secretHeaderMarkers = []string{"key", "secret", "token", "password"}

// RedactHeaders returns a copy of headers safe for logs and config
// reads. Values whose key looks secret-bearing are masked; the input
// map is never modified and full values still go out on the wire.
func RedactHeaders(headers map[string]string) map[string]string {
	if headers == nil {
		return nil
	}
	out := make(map[string]string, len(headers))
	for k, v := range headers {
		if isSecretHeader(k) {
			out[k] = RedactedValue
			continue
		}
		out[k] = v
	}
	return out
}

func isSecretHeader(key string) bool {
	lower := strings.ToLower(key)
	for _, marker := range secretHeaderMarkers {
		if strings.Contains(lower, marker) {
			return true
		}
	}
	return false
}
