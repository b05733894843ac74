package request

import (
	"encoding/json"
	"strconv"
	"strings"
)

// defaultNumericValue is the fallback for any line-item numeric field that
// is absent or does not parse. The browser form posts whatever is in the
// input box, so values arrive as JSON numbers or as strings.
const defaultNumericValue = 0

func numberOrDefault(v interface{}, fallback float64) float64 {
	switch n := v.(type) {
	case nil:
		return fallback
	case float64:
		return n
	case json.Number:
		parsed, err := n.Float64()
		if err != nil {
			return fallback
		}
		return parsed
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err != nil {
			return fallback
		}
		return parsed
	default:
		return fallback
	}
}
