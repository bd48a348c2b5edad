package category

import "strings"

// Category is one label from the closed set of inquiry categories.
type Category string

const (
	CardArrival     Category = "card arrival"
	ChangePIN       Category = "change pin"
	ExchangeRate    Category = "exchange rate"
	CountrySupport  Category = "country support"
	CancelTransfer  Category = "cancel transfer"
	ChargeDispute   Category = "charge dispute"
	CustomerService Category = "customer service"
)

// Fallback is returned when no canonical label can be resolved from
// generated text.
const Fallback = CustomerService

// canonical holds the declared order. Normalization and prompt rendering
// both iterate this slice, so the order is part of the contract: when
// generated text mentions several labels, the first one here wins.
var canonical = []Category{
	CardArrival,
	ChangePIN,
	ExchangeRate,
	CountrySupport,
	CancelTransfer,
	ChargeDispute,
	CustomerService,
}

// Canonical returns the category set in declared order.
func Canonical() []Category {
	out := make([]Category, len(canonical))
	copy(out, canonical)
	return out
}

// Valid reports whether c is a member of the canonical set.
func Valid(c Category) bool {
	for _, item := range canonical {
		if item == c {
			return true
		}
	}
	return false
}

// Normalize resolves raw generated text to a member of set. Matching is
// substring containment on the lower-cased, trimmed text, not equality:
// the generation service routinely wraps the label in punctuation, casing
// changes, or surrounding words. The first label in set order that appears
// in the text wins; if none appears, fallback is returned.
func Normalize(raw string, set []Category, fallback Category) Category {
	text := strings.ToLower(strings.TrimSpace(raw))
	for _, label := range set {
		if strings.Contains(text, string(label)) {
			return label
		}
	}
	return fallback
}

// Resolve normalizes raw against the canonical set with the default
// fallback.
func Resolve(raw string) Category {
	return Normalize(raw, canonical, Fallback)
}
