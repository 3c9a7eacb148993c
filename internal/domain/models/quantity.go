package models

import (
	"encoding/json"
	"strconv"
	"strings"
)

// Quantity is the canonical numeric type for all stock and sale quantities.
// Upstream clients historically sent quantities as either numbers or display
// strings; decoding accepts both. The coercion contract: anything that does
// not parse as a float becomes 0, never an error.
type Quantity float64

// UnmarshalJSON accepts a JSON number, a numeric string, or null.
func (q *Quantity) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if s == "null" {
		*q = 0
		return nil
	}
	if len(s) >= 2 && s[0] == '"' {
		var str string
		if err := json.Unmarshal(data, &str); err != nil {
			*q = 0
			return nil
		}
		*q = Quantity(ParseQuantity(str))
		return nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		*q = 0
		return nil
	}
	*q = Quantity(f)
	return nil
}

// MarshalJSON always emits a plain number.
func (q Quantity) MarshalJSON() ([]byte, error) {
	return json.Marshal(float64(q))
}

// Float returns the numeric value for arithmetic.
func (q Quantity) Float() float64 { return float64(q) }

// ParseQuantity coerces a display string to a number. Unparseable input
// yields 0.
func ParseQuantity(s string) float64 {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0
	}
	return f
}

// FormatQuantity renders a quantity for display, trimming trailing zeros.
func FormatQuantity(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
