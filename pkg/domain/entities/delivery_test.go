package entities

import (
	"testing"
)

func TestDeliveryEvent_Validation(t *testing.T) {
	valid, err := NewDeliveryEvent(5, 500, "north", 0)
	if err != nil {
		t.Fatalf("Expected valid delivery creation to succeed: %v", err)
	}
	if valid.Quantity != 500 {
		t.Errorf("Expected quantity 500, got %d", valid.Quantity)
	}

	testCases := []struct {
		name        string
		day         Day
		quantity    Quantity
		expectError string
	}{
		{"zero day and quantity", 0, 0, `validation error: "(0,0)": day must be at least 1, got 0`},
		{"negative day", -3, 10, `validation error: "(-3,10)": day must be at least 1, got -3`},
		{"zero quantity", 4, 0, `validation error: "(4,0)": quantity must be positive, got 0`},
		{"negative quantity", 4, -1, `validation error: "(4,-1)": quantity must be positive, got -1`},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewDeliveryEvent(tc.day, tc.quantity, "", 0)
			if err == nil {
				t.Fatalf("Expected error for %s, but got none", tc.name)
			}
			if !IsKind(err, Validation) {
				t.Errorf("Expected validation error kind, got %v", err)
			}
			if err.Error() != tc.expectError {
				t.Errorf("Expected error '%s', got '%s'", tc.expectError, err.Error())
			}
		})
	}
}

func TestSortDeliveryEvents_StableOnTies(t *testing.T) {
	events := []DeliveryEvent{
		{Day: 10, Quantity: 1, Sequence: 0},
		{Day: 3, Quantity: 2, Sequence: 1},
		{Day: 10, Quantity: 3, Sequence: 2},
		{Day: 3, Quantity: 4, Sequence: 3},
	}

	SortDeliveryEvents(events)

	expected := []int{1, 3, 0, 2}
	for i, seq := range expected {
		if events[i].Sequence != seq {
			t.Errorf("Position %d: expected sequence %d, got %d", i, seq, events[i].Sequence)
		}
	}
}

func TestErrorKind_String(t *testing.T) {
	kinds := map[ErrorKind]string{
		ArgumentCount:      "argument count error",
		NonIntegerArgument: "non-integer argument error",
		MalformedTuple:     "malformed tuple error",
		Validation:         "validation error",
		ErrorKind(99):      "unknown error",
	}
	for kind, expected := range kinds {
		if kind.String() != expected {
			t.Errorf("Expected %q, got %q", expected, kind.String())
		}
	}
}

func TestIsKind_Wrapped(t *testing.T) {
	err := NewMalformedTupleError("(1;2)", "expected (day,quantity)")
	wrapped := &SimulationError{Kind: ArgumentCount, Message: "outer", Err: err}

	if !IsKind(err, MalformedTuple) {
		t.Error("Expected malformed tuple kind")
	}
	if IsKind(err, Validation) {
		t.Error("Did not expect validation kind")
	}
	if !IsKind(wrapped, ArgumentCount) {
		t.Error("Expected outermost kind to match")
	}
	if IsKind(nil, Validation) {
		t.Error("nil error should match no kind")
	}
}
