package models

import (
	"encoding/json"
	"testing"
)

func TestQuantityUnmarshal(t *testing.T) {
	testCases := []struct {
		name  string
		input string
		want  float64
	}{
		{name: "plain number", input: `12.5`, want: 12.5},
		{name: "integer number", input: `40`, want: 40},
		{name: "numeric string", input: `"10"`, want: 10},
		{name: "decimal string", input: `"3.25"`, want: 3.25},
		{name: "padded string", input: `" 7 "`, want: 7},
		{name: "empty string", input: `""`, want: 0},
		{name: "garbage string", input: `"ten kilos"`, want: 0},
		{name: "null", input: `null`, want: 0},
		{name: "negative number", input: `-4`, want: -4},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var q Quantity
			if err := json.Unmarshal([]byte(tc.input), &q); err != nil {
				t.Fatalf("Unmarshal(%s) error = %v", tc.input, err)
			}
			if q.Float() != tc.want {
				t.Errorf("Unmarshal(%s) = %v, want %v", tc.input, q.Float(), tc.want)
			}
		})
	}
}

func TestQuantityMarshal(t *testing.T) {
	raw, err := json.Marshal(Quantity(30))
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	if string(raw) != "30" {
		t.Errorf("Marshal(30) = %s, want 30", raw)
	}
}

func TestQuantityRoundTripInStruct(t *testing.T) {
	// Clients historically sent quantity as a display string; decoding a
	// record must accept it and re-encode as a number.
	var movement StockMovement
	payload := `{"id":"movement-1","fruitType":"Orange","movementType":"in","quantity":"50"}`
	if err := json.Unmarshal([]byte(payload), &movement); err != nil {
		t.Fatalf("Unmarshal movement error = %v", err)
	}
	if movement.Quantity.Float() != 50 {
		t.Fatalf("movement quantity = %v, want 50", movement.Quantity.Float())
	}
}

func TestParseQuantity(t *testing.T) {
	if got := ParseQuantity("abc"); got != 0 {
		t.Errorf("ParseQuantity(abc) = %v, want 0", got)
	}
	if got := ParseQuantity("2.5"); got != 2.5 {
		t.Errorf("ParseQuantity(2.5) = %v, want 2.5", got)
	}
}

func TestFormatQuantity(t *testing.T) {
	if got := FormatQuantity(30); got != "30" {
		t.Errorf("FormatQuantity(30) = %q, want 30", got)
	}
	if got := FormatQuantity(2.50); got != "2.5" {
		t.Errorf("FormatQuantity(2.50) = %q, want 2.5", got)
	}
}

func TestNewIDMonotonic(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		id := NewID("purchase")
		if seen[id] {
			t.Fatalf("NewID produced duplicate %s", id)
		}
		seen[id] = true
	}
}
