package assistant

import (
	"regexp"
	"strconv"
	"strings"
)

// priceTokenRegex matches 1-3 leading digits optionally followed by repeated
// comma-plus-three-digit groups, e.g. "250", "1,000", "12,500". An ungrouped
// run like "5000" splits into two matches ("500" and "0"); that quirk is
// load-bearing for the exactly-two rule below and is kept as-is.
var priceTokenRegex = regexp.MustCompile(`\d{1,3}(?:,\d{3})*`)

// PriceRange is an inclusive price filter. Low is always the first numeric
// token found in the query and High the second, with no ordering correction:
// a query stating the bounds in reverse yields an always-empty range.
type PriceRange struct {
	Low  int
	High int
}

// ExtractPriceRange scans the query for price-like numeric tokens. A range
// is returned only when exactly two tokens are present; zero, one, or three
// and more tokens mean no price filter applies.
func ExtractPriceRange(query string) *PriceRange {
	tokens := priceTokenRegex.FindAllString(query, -1)
	if len(tokens) != 2 {
		return nil
	}

	low, err := strconv.Atoi(strings.ReplaceAll(tokens[0], ",", ""))
	if err != nil {
		return nil
	}
	high, err := strconv.Atoi(strings.ReplaceAll(tokens[1], ",", ""))
	if err != nil {
		return nil
	}

	return &PriceRange{Low: low, High: high}
}
