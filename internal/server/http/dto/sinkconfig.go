package dto

// PrinterConfigRequest is the payload for PUT .../printer-config.
type PrinterConfigRequest struct {
	Enabled     bool              `json:"enabled"`
	Type        string            `json:"type"`
	Endpoint    string            `json:"endpoint"`
	PayloadType string            `json:"payloadType"`
	Headers     map[string]string `json:"headers,omitempty"`
	Port        int               `json:"port,omitempty"`
}

// PrinterConfigResponse mirrors the stored printer configuration with
// secret header values redacted.
type PrinterConfigResponse struct {
	Enabled     bool              `json:"enabled"`
	Type        string            `json:"type"`
	Endpoint    string            `json:"endpoint"`
	PayloadType string            `json:"payloadType"`
	Headers     map[string]string `json:"headers,omitempty"`
	Port        int               `json:"port,omitempty"`
}

// PosConfigRequest is the payload for PUT .../pos-config.
type PosConfigRequest struct {
	Enabled   bool              `json:"enabled"`
	Provider  string            `json:"provider"`
	Endpoint  string            `json:"endpoint"`
	Method    string            `json:"method"`
	Headers   map[string]string `json:"headers,omitempty"`
	TimeoutMs int               `json:"timeoutMs"`
}

// PosConfigResponse mirrors the stored POS configuration with secret
// header values redacted.
type PosConfigResponse struct {
	Enabled   bool              `json:"enabled"`
	Provider  string            `json:"provider"`
	Endpoint  string            `json:"endpoint"`
	Method    string            `json:"method"`
	Headers   map[string]string `json:"headers,omitempty"`
	TimeoutMs int               `json:"timeoutMs"`
}

// BusinessRequest is the payload for POST /api/businesses.
type BusinessRequest struct {
	Name string `json:"name" binding:"required"`
}

// BusinessResponse mirrors a registered business.
type BusinessResponse struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	OrderingEnabled bool   `json:"orderingEnabled"`
}

// OrderingGateRequest toggles the ordering gate for a business.
type OrderingGateRequest struct {
	Enabled bool `json:"enabled"`
}
