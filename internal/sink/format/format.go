// Package format turns a canonical order into one of the wire
// representations accepted by kitchen printer endpoints. All functions
// are pure: same order in, byte-identical string out, no I/O.
package format

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/qrplate/qrplate/internal/domain/model"
)

const (
	fallbackItemName = "Item"
	timeLayout       = "02/01/2006 15:04"
)

// Format renders the order in the configured payload type. Unknown
// payload types fall back to the plain-text receipt.
func Format(order model.CanonicalOrder, payload model.PrinterPayload) string {
	switch payload {
	case model.PrinterPayloadJSON:
		return JSON(order)
	case model.PrinterPayloadXML:
		return XML(order)
	default:
		return Receipt(order)
	}
}

// ContentType returns the Content-Type header matching a payload type.
func ContentType(payload model.PrinterPayload) string {
	switch payload {
	case model.PrinterPayloadJSON:
		return "application/json"
	case model.PrinterPayloadXML:
		return "application/xml"
	default:
		return "text/plain"
	}
}

// JSON serializes the order pretty-printed with stable field names.
func JSON(order model.CanonicalOrder) string {
	data, err := json.MarshalIndent(order, "", "  ")
	if err != nil {
		return "{}"
	}
	return string(data)
}

// Receipt renders the fixed-layout kitchen ticket.
func Receipt(order model.CanonicalOrder) string {
	var b strings.Builder
	b.WriteString("======== NEW ORDER ========\n")
	fmt.Fprintf(&b, "Order: %s\n", shortID(order.OrderID))
	fmt.Fprintf(&b, "Table: %s\n", order.TableID)
	fmt.Fprintf(&b, "Time:  %s\n", order.CreatedAt.Local().Format(timeLayout))
	b.WriteString("\n")
	for _, item := range order.Items {
		fmt.Fprintf(&b, "%s x%d - ₪%.2f\n", itemName(item), itemQuantity(item), lineTotal(item))
		for _, c := range item.Customizations {
			fmt.Fprintf(&b, "  + %s\n", c)
		}
	}
	b.WriteString("---------------------------\n")
	fmt.Fprintf(&b, "TOTAL: ₪%.2f\n", order.Total)
	if order.Notes != "" {
		fmt.Fprintf(&b, "Note: %s\n", order.Notes)
	}
	b.WriteString("===========================\n")
	return b.String()
}

var xmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&apos;",
)

// XML renders a minimal hand-built document. All text content is
// escaped unconditionally; order fields originate from customers.
func XML(order model.CanonicalOrder) string {
	var b strings.Builder
	b.WriteString("<order>\n")
	fmt.Fprintf(&b, "  <orderId>%s</orderId>\n", xmlEscaper.Replace(order.OrderID))
	fmt.Fprintf(&b, "  <tableId>%s</tableId>\n", xmlEscaper.Replace(order.TableID))
	fmt.Fprintf(&b, "  <createdAt>%s</createdAt>\n", order.CreatedAt.UTC().Format(time.RFC3339))
	fmt.Fprintf(&b, "  <totalAmount>%.2f</totalAmount>\n", order.Total)
	b.WriteString("  <items>\n")
	for _, item := range order.Items {
		b.WriteString("    <item>\n")
		fmt.Fprintf(&b, "      <name>%s</name>\n", xmlEscaper.Replace(itemName(item)))
		fmt.Fprintf(&b, "      <quantity>%d</quantity>\n", itemQuantity(item))
		fmt.Fprintf(&b, "      <price>%.2f</price>\n", itemPrice(item))
		if len(item.Customizations) > 0 {
			b.WriteString("      <customizations>\n")
			for _, c := range item.Customizations {
				fmt.Fprintf(&b, "        <customization>%s</customization>\n", xmlEscaper.Replace(c))
			}
			b.WriteString("      </customizations>\n")
		}
		b.WriteString("    </item>\n")
	}
	b.WriteString("  </items>\n")
	b.WriteString("</order>\n")
	return b.String()
}

// Kitchen tickets show a short order reference.
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

func itemName(item model.OrderItem) string {
	if item.Name == "" {
		return fallbackItemName
	}
	return item.Name
}

func itemQuantity(item model.OrderItem) int {
	if item.Quantity <= 0 {
		return 1
	}
	return item.Quantity
}

func itemPrice(item model.OrderItem) float64 {
	if item.UnitPrice < 0 {
		return 0
	}
	return item.UnitPrice
}

func lineTotal(item model.OrderItem) float64 {
	if item.Total > 0 {
		return item.Total
	}
	return float64(itemQuantity(item)) * itemPrice(item)
}
