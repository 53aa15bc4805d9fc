package assistant

import "strings"

// The keyword sets are deliberately named, package-level values rather than
// inline literals so tests can reference them, but their contents are fixed:
// changing them changes which queries reach the product matcher at all.

// shoppingKeywords mark a query as product discovery, purchase, or detail
// lookup. Matching is by substring on the lowercased query.
var shoppingKeywords = []string{
	"buy", "price", "product", "purchase", "order",
	"specifications", "features", "details",
}

// greetingKeywords trigger the fixed self-introduction instead of a call to
// the completion service.
var greetingKeywords = []string{
	"hello", "hi", "good morning", "good afternoon", "who are you",
}

// IsShoppingQuery reports whether the lowercased query contains any shopping
// keyword. Pure function, no side effects.
func IsShoppingQuery(lowered string) bool {
	return containsAny(lowered, shoppingKeywords)
}

// IsGreeting reports whether the lowercased query contains any greeting
// phrase.
func IsGreeting(lowered string) bool {
	return containsAny(lowered, greetingKeywords)
}

func containsAny(s string, keywords []string) bool {
	for _, keyword := range keywords {
		if strings.Contains(s, keyword) {
			return true
		}
	}
	return false
}
