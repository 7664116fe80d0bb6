package router

import (
	"bytes"
	"compress/gzip"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	testhelpers "github.com/qrplate/qrplate/internal/test"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}

func TestSetupRegistersRoutes(t *testing.T) {
	engine := Setup(testhelpers.OrderingFacadeStub{}, testLogger())

	cases := []struct {
		method string
		path   string
		body   string
		want   int
	}{
		{http.MethodPost, "/api/orders", `{"businessId":"biz-1","tableId":"7","items":[{"name":"Pizza","quantity":1}]}`, http.StatusCreated},
		{http.MethodGet, "/api/orders/ord-1", "", http.StatusOK},
		{http.MethodPost, "/api/businesses", `{"name":"Cafe"}`, http.StatusCreated},
		{http.MethodPut, "/api/businesses/biz-1/ordering", `{"enabled":false}`, http.StatusNoContent},
		{http.MethodGet, "/api/businesses/biz-1/printer-config", "", http.StatusOK},
		{http.MethodPut, "/api/businesses/biz-1/printer-config", `{"type":"http","payloadType":"json"}`, http.StatusNoContent},
		{http.MethodGet, "/api/businesses/biz-1/pos-config", "", http.StatusOK},
		{http.MethodPut, "/api/businesses/biz-1/pos-config", `{"provider":"generic","endpoint":"https://pos.example","timeoutMs":5000}`, http.StatusNoContent},
	}

	for _, tc := range cases {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			var reader io.Reader
			if tc.body != "" {
				reader = bytes.NewBufferString(tc.body)
			}
			req := httptest.NewRequest(tc.method, tc.path, reader)
			if tc.body != "" {
				req.Header.Set("Content-Type", "application/json")
			}
			w := httptest.NewRecorder()
			engine.ServeHTTP(w, req)
			if w.Code != tc.want {
				t.Fatalf("expected %d, got %d (%s)", tc.want, w.Code, w.Body.String())
			}
		})
	}
}

func TestSetupUnknownRoute(t *testing.T) {
	engine := Setup(testhelpers.OrderingFacadeStub{}, testLogger())

	req := httptest.NewRequest(http.MethodGet, "/api/unknown", nil)
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}

func TestSetupCompressesResponses(t *testing.T) {
	engine := Setup(testhelpers.OrderingFacadeStub{}, testLogger())

	req := httptest.NewRequest(http.MethodGet, "/api/orders/ord-1", nil)
	req.Header.Set("Accept-Encoding", "gzip")
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if w.Header().Get("Content-Encoding") != "gzip" {
		t.Fatalf("expected gzip response, got %q", w.Header().Get("Content-Encoding"))
	}

	zr, err := gzip.NewReader(w.Body)
	if err != nil {
		t.Fatalf("open gzip body: %v", err)
	}
	defer zr.Close()
	var got map[string]any
	if err := json.NewDecoder(zr).Decode(&got); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if got["id"] != "ord-1" {
		t.Fatalf("unexpected body: %v", got)
	}
}

func TestSetupAcceptsGzipRequests(t *testing.T) {
	engine := Setup(testhelpers.OrderingFacadeStub{}, testLogger())

	var compressed bytes.Buffer
	zw := gzip.NewWriter(&compressed)
	if _, err := zw.Write([]byte(`{"name":"Cafe"}`)); err != nil {
		t.Fatalf("compress body: %v", err)
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("close writer: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, "/api/businesses", &compressed)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Content-Encoding", "gzip")
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201 for gzip request, got %d (%s)", w.Code, w.Body.String())
	}
}
