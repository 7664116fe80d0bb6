package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/qrplate/qrplate/internal/domain/errors"
	"github.com/qrplate/qrplate/internal/domain/model"
	"github.com/qrplate/qrplate/internal/server/http/dto"
	"github.com/qrplate/qrplate/internal/usecase"
	testhelpers "github.com/qrplate/qrplate/internal/test"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func performRequest(t *testing.T, method, route, path string, handler gin.HandlerFunc, body []byte) *httptest.ResponseRecorder {
	t.Helper()
	router := gin.New()
	router.Handle(method, route, handler)

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func placeOrderBody(t *testing.T) []byte {
	t.Helper()
	body, err := json.Marshal(dto.PlaceOrderRequest{
		BusinessID: "biz-1",
		TableID:    "7",
		Items: []dto.OrderItemRequest{
			{ID: "i-1", Name: "Pizza", Quantity: 2, UnitPrice: 40},
		},
	})
	if err != nil {
		t.Fatalf("marshal request: %v", err)
	}
	return body
}

func TestOrderHandlerPlace(t *testing.T) {
	handler := NewOrderHandler(testhelpers.OrderFacadeStub{PlaceFn: func(_ context.Context, input usecase.PlaceOrderInput) (*model.Order, error) {
		if input.BusinessID != "biz-1" || len(input.Items) != 1 {
			t.Fatalf("unexpected input passed to facade: %+v", input)
		}
		return &model.Order{ID: "ord-1", BusinessID: input.BusinessID, Status: model.OrderStatusSentToPOS}, nil
	}})

	resp := performRequest(t, http.MethodPost, "/orders", "/orders", handler.Place, placeOrderBody(t))
	if resp.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", resp.Code)
	}

	var got dto.OrderResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if got.ID != "ord-1" || got.Status != "sent_to_pos" {
		t.Fatalf("expected post-dispatch status in response, got %+v", got)
	}
}

func TestOrderHandlerPlaceErrors(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{"invalid order", domainErrors.ErrInvalidOrder, http.StatusUnprocessableEntity},
		{"ordering disabled", domainErrors.ErrOrderingDisabled, http.StatusForbidden},
		{"unknown business", domainErrors.ErrNotFound, http.StatusNotFound},
		{"internal", errors.New("db down"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			handler := NewOrderHandler(testhelpers.OrderFacadeStub{PlaceFn: func(context.Context, usecase.PlaceOrderInput) (*model.Order, error) {
				return nil, tc.err
			}})
			resp := performRequest(t, http.MethodPost, "/orders", "/orders", handler.Place, placeOrderBody(t))
			if resp.Code != tc.want {
				t.Fatalf("expected %d, got %d", tc.want, resp.Code)
			}
		})
	}
}

func TestOrderHandlerPlaceRejectsMalformedBody(t *testing.T) {
	handler := NewOrderHandler(testhelpers.OrderFacadeStub{PlaceFn: func(context.Context, usecase.PlaceOrderInput) (*model.Order, error) {
		t.Fatal("facade must not be called for malformed body")
		return nil, nil
	}})
	resp := performRequest(t, http.MethodPost, "/orders", "/orders", handler.Place, []byte("{not json"))
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.Code)
	}
}

func TestOrderHandlerGet(t *testing.T) {
	handler := NewOrderHandler(testhelpers.OrderFacadeStub{OrderFn: func(_ context.Context, id string) (*model.Order, error) {
		if id != "ord-1" {
			t.Fatalf("unexpected id %s", id)
		}
		return &model.Order{ID: id, Status: model.OrderStatusSentToPrinter}, nil
	}})

	resp := performRequest(t, http.MethodGet, "/orders/:id", "/orders/ord-1", handler.Get, nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}

	handler = NewOrderHandler(testhelpers.OrderFacadeStub{OrderFn: func(context.Context, string) (*model.Order, error) {
		return nil, domainErrors.ErrNotFound
	}})
	resp = performRequest(t, http.MethodGet, "/orders/:id", "/orders/missing", handler.Get, nil)
	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.Code)
	}
}

func TestBusinessHandlerRegister(t *testing.T) {
	name := testhelpers.RandomASCIIString(5, 20)
	handler := NewBusinessHandler(testhelpers.BusinessFacadeStub{})
	body, _ := json.Marshal(dto.BusinessRequest{Name: name})

	resp := performRequest(t, http.MethodPost, "/businesses", "/businesses", handler.Register, body)
	if resp.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", resp.Code)
	}

	var got dto.BusinessResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if got.Name != name || !got.OrderingEnabled {
		t.Fatalf("unexpected response: %+v", got)
	}

	handler = NewBusinessHandler(testhelpers.BusinessFacadeStub{RegisterFn: func(context.Context, string) (*model.Business, error) {
		return nil, fmt.Errorf("%w: name required", domainErrors.ErrInvalidBusiness)
	}})
	resp = performRequest(t, http.MethodPost, "/businesses", "/businesses", handler.Register, body)
	if resp.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", resp.Code)
	}
}

func TestBusinessHandlerSetOrderingGate(t *testing.T) {
	var gotID string
	var gotEnabled bool
	handler := NewBusinessHandler(testhelpers.BusinessFacadeStub{GateFn: func(_ context.Context, id string, enabled bool) error {
		gotID = id
		gotEnabled = enabled
		return nil
	}})
	body, _ := json.Marshal(dto.OrderingGateRequest{Enabled: true})

	resp := performRequest(t, http.MethodPut, "/businesses/:id/ordering", "/businesses/biz-1/ordering", handler.SetOrderingGate, body)
	if resp.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", resp.Code)
	}
	if gotID != "biz-1" || !gotEnabled {
		t.Fatalf("unexpected gate call: id=%s enabled=%v", gotID, gotEnabled)
	}

	handler = NewBusinessHandler(testhelpers.BusinessFacadeStub{GateFn: func(context.Context, string, bool) error {
		return domainErrors.ErrNotFound
	}})
	resp = performRequest(t, http.MethodPut, "/businesses/:id/ordering", "/businesses/missing/ordering", handler.SetOrderingGate, body)
	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.Code)
	}
}

func TestSinkConfigHandlerPrinterConfig(t *testing.T) {
	handler := NewSinkConfigHandler(testhelpers.SinkConfigFacadeStub{PrinterFn: func(_ context.Context, businessID string) (*model.PrinterConfig, error) {
		if businessID != "biz-1" {
			t.Fatalf("unexpected business id %s", businessID)
		}
		return &model.PrinterConfig{
			Enabled:   true,
			Transport: model.PrinterTransportHTTP,
			Endpoint:  "http://printer.local",
			Payload:   model.PrinterPayloadText,
			Headers:   map[string]string{"X-Printer-Key": model.RedactedValue},
		}, nil
	}})

	resp := performRequest(t, http.MethodGet, "/businesses/:id/printer-config", "/businesses/biz-1/printer-config", handler.PrinterConfig, nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}

	var got dto.PrinterConfigResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if got.Type != "http" || got.PayloadType != "text" {
		t.Fatalf("unexpected response: %+v", got)
	}
	if got.Headers["X-Printer-Key"] != model.RedactedValue {
		t.Fatalf("expected redacted header in response, got %q", got.Headers["X-Printer-Key"])
	}

	handler = NewSinkConfigHandler(testhelpers.SinkConfigFacadeStub{PrinterFn: func(context.Context, string) (*model.PrinterConfig, error) {
		return nil, domainErrors.ErrNotFound
	}})
	resp = performRequest(t, http.MethodGet, "/businesses/:id/printer-config", "/businesses/missing/printer-config", handler.PrinterConfig, nil)
	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.Code)
	}
}

func TestSinkConfigHandlerSavePrinterConfig(t *testing.T) {
	var saved *model.PrinterConfig
	handler := NewSinkConfigHandler(testhelpers.SinkConfigFacadeStub{SavePrinterFn: func(_ context.Context, businessID string, cfg *model.PrinterConfig) error {
		if businessID != "biz-1" {
			t.Fatalf("unexpected business id %s", businessID)
		}
		saved = cfg
		return nil
	}})

	body, _ := json.Marshal(dto.PrinterConfigRequest{
		Enabled:     true,
		Type:        "http",
		Endpoint:    "http://printer.local",
		PayloadType: "xml",
	})
	resp := performRequest(t, http.MethodPut, "/businesses/:id/printer-config", "/businesses/biz-1/printer-config", handler.SavePrinterConfig, body)
	if resp.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", resp.Code)
	}
	if saved == nil || saved.Payload != model.PrinterPayloadXML {
		t.Fatalf("unexpected saved config: %+v", saved)
	}

	handler = NewSinkConfigHandler(testhelpers.SinkConfigFacadeStub{SavePrinterFn: func(context.Context, string, *model.PrinterConfig) error {
		return fmt.Errorf("%w: unknown transport", domainErrors.ErrInvalidSinkConfig)
	}})
	resp = performRequest(t, http.MethodPut, "/businesses/:id/printer-config", "/businesses/biz-1/printer-config", handler.SavePrinterConfig, body)
	if resp.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", resp.Code)
	}
}

func TestSinkConfigHandlerPosConfig(t *testing.T) {
	handler := NewSinkConfigHandler(testhelpers.SinkConfigFacadeStub{PosFn: func(context.Context, string) (*model.PosConfig, error) {
		return &model.PosConfig{
			Enabled:   true,
			Provider:  "caspit",
			Endpoint:  "https://pos.example",
			Method:    "POST",
			Headers:   map[string]string{"X-Api-Key": model.RedactedValue},
			TimeoutMs: 5000,
		}, nil
	}})

	resp := performRequest(t, http.MethodGet, "/businesses/:id/pos-config", "/businesses/biz-1/pos-config", handler.PosConfig, nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}

	var got dto.PosConfigResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if got.Provider != "caspit" || got.TimeoutMs != 5000 {
		t.Fatalf("unexpected response: %+v", got)
	}
	if got.Headers["X-Api-Key"] != model.RedactedValue {
		t.Fatalf("expected redacted header in response, got %q", got.Headers["X-Api-Key"])
	}
}

func TestSinkConfigHandlerSavePosConfig(t *testing.T) {
	var saved *model.PosConfig
	handler := NewSinkConfigHandler(testhelpers.SinkConfigFacadeStub{SavePosFn: func(_ context.Context, _ string, cfg *model.PosConfig) error {
		saved = cfg
		return nil
	}})

	body, _ := json.Marshal(dto.PosConfigRequest{
		Enabled:   true,
		Provider:  "priority",
		Endpoint:  "https://pos.example",
		TimeoutMs: 2500,
	})
	resp := performRequest(t, http.MethodPut, "/businesses/:id/pos-config", "/businesses/biz-1/pos-config", handler.SavePosConfig, body)
	if resp.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", resp.Code)
	}
	if saved == nil || saved.Provider != "priority" || saved.TimeoutMs != 2500 {
		t.Fatalf("unexpected saved config: %+v", saved)
	}

	handler = NewSinkConfigHandler(testhelpers.SinkConfigFacadeStub{SavePosFn: func(context.Context, string, *model.PosConfig) error {
		return fmt.Errorf("%w: timeout out of range", domainErrors.ErrInvalidSinkConfig)
	}})
	resp = performRequest(t, http.MethodPut, "/businesses/:id/pos-config", "/businesses/biz-1/pos-config", handler.SavePosConfig, body)
	if resp.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", resp.Code)
	}
}
