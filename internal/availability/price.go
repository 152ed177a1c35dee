package availability

import "strings"

const pricePlaceholder = "-"

// ParseAdultPrice extracts the adult fare from a partner price string such as
// "Y:1250000 C:-". Each space separated token is a colon separated list whose last
// segment is a candidate price. Placeholder and empty candidates are ignored and the
// last remaining candidate wins. ok is false when no candidate survives.
func ParseAdultPrice(raw string) (price string, ok bool) {
	for _, token := range strings.Split(raw, " ") {
		segments := strings.Split(token, ":")
		candidate := strings.TrimSpace(segments[len(segments)-1])
		if candidate == "" || candidate == pricePlaceholder {
			continue
		}
		price, ok = candidate, true
	}

	return price, ok
}
