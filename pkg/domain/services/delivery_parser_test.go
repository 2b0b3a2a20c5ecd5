package services

import (
	"reflect"
	"strings"
	"testing"

	"github.com/vsinha/breadsim/pkg/domain/entities"
)

func TestParseDeliverySpec(t *testing.T) {
	tests := []struct {
		name     string
		spec     string
		expected []entities.DeliveryEvent
	}{
		{
			name:     "empty",
			spec:     "",
			expected: []entities.DeliveryEvent{},
		},
		{
			name:     "whitespace only",
			spec:     "  \t\n ",
			expected: []entities.DeliveryEvent{},
		},
		{
			name:     "single",
			spec:     "(5,500)",
			expected: []entities.DeliveryEvent{{Day: 5, Quantity: 500, Sequence: 0}},
		},
		{
			name: "already ordered",
			spec: "(19,250) (40,200) (50,40)",
			expected: []entities.DeliveryEvent{
				{Day: 19, Quantity: 250, Sequence: 0},
				{Day: 40, Quantity: 200, Sequence: 1},
				{Day: 50, Quantity: 40, Sequence: 2},
			},
		},
		{
			name: "unordered with ties",
			spec: "(50,30)  (15,100)\t(35,500) (15,7)",
			expected: []entities.DeliveryEvent{
				{Day: 15, Quantity: 100, Sequence: 1},
				{Day: 15, Quantity: 7, Sequence: 3},
				{Day: 35, Quantity: 500, Sequence: 2},
				{Day: 50, Quantity: 30, Sequence: 0},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			events, err := ParseDeliverySpec(tt.spec)
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if !reflect.DeepEqual(events, tt.expected) {
				t.Errorf("Expected %+v, got %+v", tt.expected, events)
			}
		})
	}
}

func TestParseDeliverySpec_Errors(t *testing.T) {
	tests := []struct {
		name        string
		spec        string
		kind        entities.ErrorKind
		errContains string
	}{
		{"zero tuple", "(0,0)", entities.Validation, "day must be at least 1"},
		{"zero quantity", "(3,0)", entities.Validation, "quantity must be positive"},
		{"negative day", "(-2,10)", entities.Validation, "day must be at least 1"},
		{"missing open paren", "5,500)", entities.MalformedTuple, "missing parenthesis"},
		{"missing close paren", "(5,500", entities.MalformedTuple, "missing parenthesis"},
		{"wrong separator", "(5;500)", entities.MalformedTuple, "single comma"},
		{"too many fields", "(5,500,1)", entities.MalformedTuple, "single comma"},
		{"non numeric", "(five,500)", entities.MalformedTuple, "must be integers"},
		{"space inside tuple", "(5, 500)", entities.MalformedTuple, "(5,"},
		{"overflow", "(5,99999999999999999999)", entities.MalformedTuple, "out of range"},
		{"bad token after good", "(1,10) (2,x)", entities.MalformedTuple, "(2,x)"},
		{"total overflows", "(1,9223372036854775807) (1,1)", entities.Validation, "total quantity"},
		{"total overflows across days", "(1,4611686018427387904) (9,4611686018427387904)", entities.Validation, "(9,4611686018427387904)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			events, err := ParseDeliverySpec(tt.spec)
			if err == nil {
				t.Fatalf("Expected error, got events %+v", events)
			}
			if !entities.IsKind(err, tt.kind) {
				t.Errorf("Expected %s, got %v", tt.kind, err)
			}
			if !strings.Contains(err.Error(), tt.errContains) {
				t.Errorf("Expected error containing %q, got %q", tt.errContains, err.Error())
			}
			if events != nil {
				t.Errorf("Expected no events on error, got %+v", events)
			}
		})
	}
}

func TestParseDeliverySpec_MaxTotalQuantity(t *testing.T) {
	events, err := ParseDeliverySpec("(1,9223372036854775806) (2,1)")
	if err != nil {
		t.Fatalf("Expected a total of exactly MaxInt64 to be accepted, got %v", err)
	}
	if len(events) != 2 {
		t.Errorf("Expected 2 events, got %d", len(events))
	}
}

func TestParseDeliverySpec_Deterministic(t *testing.T) {
	spec := "(40,200) (19,250) (50,40) (19,1) (40,3)"

	first, err := ParseDeliverySpec(spec)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	second, err := ParseDeliverySpec(spec)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if !reflect.DeepEqual(first, second) {
		t.Errorf("Parsing is not deterministic: %+v vs %+v", first, second)
	}
}

func TestFormatDeliverySpec(t *testing.T) {
	events, err := ParseDeliverySpec("(50,40)   (19,250) (40,200)")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	formatted := FormatDeliverySpec(events)
	if formatted != "(19,250) (40,200) (50,40)" {
		t.Errorf("Unexpected canonical form %q", formatted)
	}

	reparsed, err := ParseDeliverySpec(formatted)
	if err != nil {
		t.Fatalf("Canonical form failed to parse: %v", err)
	}
	for i := range events {
		if events[i].Day != reparsed[i].Day || events[i].Quantity != reparsed[i].Quantity {
			t.Errorf("Position %d changed: %v vs %v", i, events[i], reparsed[i])
		}
	}

	if FormatDeliverySpec(nil) != "" {
		t.Error("Expected empty spec for no events")
	}
}
