package format

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/qrplate/qrplate/internal/domain/model"
)

func sampleOrder() model.CanonicalOrder {
	return model.CanonicalOrder{
		OrderID:    "a1b2c3d4-e5f6-7890-abcd-ef1234567890",
		BusinessID: "biz-1",
		TableID:    "12",
		Source:     model.SourceQRMenu,
		Items: []model.OrderItem{
			{ID: "i-1", Name: "Coffee", Quantity: 1, UnitPrice: 12, Total: 12},
			{ID: "i-2", Name: "Shakshuka", Quantity: 2, UnitPrice: 38, Total: 76, Customizations: []string{"extra spicy"}},
		},
		Subtotal:  88,
		Tax:       0,
		Discount:  0,
		Total:     88,
		Notes:     "no cutlery",
		CreatedAt: time.Date(2024, 6, 1, 12, 30, 0, 0, time.UTC),
	}
}

func TestFormatIsPure(t *testing.T) {
	order := sampleOrder()
	for _, payload := range []model.PrinterPayload{model.PrinterPayloadJSON, model.PrinterPayloadText, model.PrinterPayloadXML} {
		first := Format(order, payload)
		second := Format(order, payload)
		if first != second {
			t.Fatalf("formatting %s twice produced different output", payload)
		}
	}
}

func TestReceiptLayout(t *testing.T) {
	got := Receipt(sampleOrder())

	if !strings.Contains(got, "Coffee x1 - ₪12.00") {
		t.Fatalf("expected coffee line in receipt, got:\n%s", got)
	}
	if !strings.Contains(got, "Shakshuka x2 - ₪76.00") {
		t.Fatalf("expected shakshuka line with line total, got:\n%s", got)
	}
	if !strings.Contains(got, "  + extra spicy\n") {
		t.Fatalf("expected indented customization line, got:\n%s", got)
	}
	if !strings.Contains(got, "Order: a1b2c3d4\n") {
		t.Fatalf("expected order id truncated to 8 chars, got:\n%s", got)
	}
	if !strings.Contains(got, "Table: 12") {
		t.Fatalf("expected table line, got:\n%s", got)
	}
	if !strings.Contains(got, "TOTAL: ₪88.00") {
		t.Fatalf("expected total line, got:\n%s", got)
	}
	if !strings.Contains(got, "Note: no cutlery") {
		t.Fatalf("expected notes line, got:\n%s", got)
	}
}

func TestReceiptFallbacks(t *testing.T) {
	order := model.CanonicalOrder{
		OrderID: "short",
		Items:   []model.OrderItem{{Quantity: 0, UnitPrice: -1}},
	}
	got := Receipt(order)
	if !strings.Contains(got, "Item x1 - ₪0.00") {
		t.Fatalf("expected fallback item line, got:\n%s", got)
	}
	if strings.Contains(got, "Note:") {
		t.Fatalf("did not expect a notes line, got:\n%s", got)
	}
}

func TestJSONIsPrettyAndStable(t *testing.T) {
	got := JSON(sampleOrder())
	if !strings.Contains(got, "\n  \"orderId\"") {
		t.Fatalf("expected pretty-printed orderId field, got:\n%s", got)
	}

	var decoded map[string]any
	if err := json.Unmarshal([]byte(got), &decoded); err != nil {
		t.Fatalf("formatter output is not valid JSON: %v", err)
	}
	if decoded["source"] != "QR_MENU" {
		t.Fatalf("expected source field, got %v", decoded["source"])
	}
}

func TestXMLEscapesUntrustedText(t *testing.T) {
	order := sampleOrder()
	order.Items = []model.OrderItem{{
		Name:           `<script>&"attack"'`,
		Quantity:       1,
		UnitPrice:      5,
		Customizations: []string{"a<b"},
	}}

	got := XML(order)
	if strings.Contains(got, "<script>") {
		t.Fatalf("expected raw markup to be escaped, got:\n%s", got)
	}
	if !strings.Contains(got, "&lt;script&gt;&amp;&quot;attack&quot;&apos;") {
		t.Fatalf("expected escaped item name, got:\n%s", got)
	}
	if !strings.Contains(got, "<customization>a&lt;b</customization>") {
		t.Fatalf("expected escaped customization, got:\n%s", got)
	}
}

func TestXMLStructure(t *testing.T) {
	got := XML(sampleOrder())
	for _, fragment := range []string{
		"<order>",
		"<orderId>a1b2c3d4-e5f6-7890-abcd-ef1234567890</orderId>",
		"<tableId>12</tableId>",
		"<createdAt>2024-06-01T12:30:00Z</createdAt>",
		"<totalAmount>88.00</totalAmount>",
		"<quantity>2</quantity>",
		"<price>38.00</price>",
		"</order>",
	} {
		if !strings.Contains(got, fragment) {
			t.Fatalf("expected fragment %q in XML, got:\n%s", fragment, got)
		}
	}
}

func TestFormatUnknownPayloadFallsBackToText(t *testing.T) {
	got := Format(sampleOrder(), model.PrinterPayload("csv"))
	if !strings.Contains(got, "NEW ORDER") {
		t.Fatalf("expected text receipt fallback, got:\n%s", got)
	}
}

func TestContentType(t *testing.T) {
	cases := map[model.PrinterPayload]string{
		model.PrinterPayloadJSON: "application/json",
		model.PrinterPayloadText: "text/plain",
		model.PrinterPayloadXML:  "application/xml",
	}
	for payload, want := range cases {
		if got := ContentType(payload); got != want {
			t.Fatalf("payload %s: expected %s, got %s", payload, want, got)
		}
	}
}
