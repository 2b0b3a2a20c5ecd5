package entities

import (
	"math"
	"testing"
)

func TestQuantity_Add(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Quantity
		expected Quantity
		ok       bool
	}{
		{"small", 250, 40, 290, true},
		{"zero", 0, 0, 0, true},
		{"exactly max", math.MaxInt64 - 1, 1, math.MaxInt64, true},
		{"overflow by one", math.MaxInt64, 1, 0, false},
		{"two large", math.MaxInt64 / 2, math.MaxInt64/2 + 2, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sum, ok := tt.a.Add(tt.b)
			if ok != tt.ok || sum != tt.expected {
				t.Errorf("Add(%d, %d) = (%d, %v), expected (%d, %v)", tt.a, tt.b, sum, ok, tt.expected, tt.ok)
			}
		})
	}
}
