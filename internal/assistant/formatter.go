package assistant

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/avabot/assistant/internal/catalog"
)

const (
	// responsePreamble opens every successful product listing.
	responsePreamble = "Here are some products you might be interested in:\n"

	// notFoundMessage is returned when a shopping query matched nothing.
	// Not an error; the products array is simply omitted.
	notFoundMessage = "Sorry, I couldn't find any products that match your request."

	// fieldPlaceholder stands in for absent optional product fields.
	fieldPlaceholder = "N/A"
)

// FormatProducts renders a non-empty match list into the multi-line reply
// text. Callers must handle the empty case with notFoundMessage instead.
func FormatProducts(products []catalog.Product) string {
	var b strings.Builder
	b.WriteString(responsePreamble)
	for _, p := range products {
		currency := p.Currency
		if currency == "" {
			currency = catalog.DefaultCurrency
		}
		fmt.Fprintf(&b, "\n- %s - %s %s", p.Name, formatPrice(p.Price), currency)
		fmt.Fprintf(&b, "\nSpecifications: %s", orPlaceholder(p.Specifications))
		fmt.Fprintf(&b, "\nFeatures: %s", orPlaceholder(p.Features))
		fmt.Fprintf(&b, "\nDetails: %s\n", orPlaceholder(p.Description))
	}
	return b.String()
}

// formatPrice prints whole prices without a decimal point (3000, not 3000.00)
// while keeping fractional prices intact.
func formatPrice(price float64) string {
	return strconv.FormatFloat(price, 'f', -1, 64)
}

func orPlaceholder(s string) string {
	if s == "" {
		return fieldPlaceholder
	}
	return s
}
