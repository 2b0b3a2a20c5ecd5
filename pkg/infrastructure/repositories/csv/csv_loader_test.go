package csv

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vsinha/breadsim/pkg/domain/entities"
)

func TestLoader_ReadDeliveries(t *testing.T) {
	content := "day,quantity,provider\n40,200,corner\n19,250,mill\n"

	deliveries, err := NewLoader().ReadDeliveries(strings.NewReader(content))
	if err != nil {
		t.Fatalf("Failed to read deliveries: %v", err)
	}

	if len(deliveries) != 2 {
		t.Fatalf("Expected 2 deliveries, got %d", len(deliveries))
	}
	// Rows keep file order; the delivery repository sorts them.
	if deliveries[0].Day != 40 || deliveries[0].Provider != "corner" || deliveries[0].Sequence != 0 {
		t.Errorf("Unexpected first delivery %+v", deliveries[0])
	}
	if deliveries[1].Quantity != 250 || deliveries[1].Sequence != 1 {
		t.Errorf("Unexpected second delivery %+v", deliveries[1])
	}
}

func TestLoader_ReadDeliveries_HeaderOnly(t *testing.T) {
	deliveries, err := NewLoader().ReadDeliveries(strings.NewReader("day,quantity\n"))
	if err != nil {
		t.Fatalf("Expected empty schedule to be valid: %v", err)
	}
	if len(deliveries) != 0 {
		t.Errorf("Expected no deliveries, got %d", len(deliveries))
	}
}

func TestLoader_ReadDeliveries_Errors(t *testing.T) {
	testCases := []struct {
		name        string
		content     string
		kind        *entities.ErrorKind
		errContains string
	}{
		{"empty file", "", nil, "must have a header"},
		{"wrong header", "date,qty\n1,2\n", nil, "header mismatch"},
		{"short row", "day,quantity\n5\n", nil, "expected 2 columns"},
		{"non numeric day", "day,quantity\nfive,10\n", kindPtr(entities.MalformedTuple), "row 2"},
		{"zero day", "day,quantity\n0,0\n", kindPtr(entities.Validation), "day must be at least 1"},
		{"negative quantity", "day,quantity\n1,10\n2,-5\n", kindPtr(entities.Validation), "row 3"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewLoader().ReadDeliveries(strings.NewReader(tc.content))
			if err == nil {
				t.Fatalf("Expected error for %s, but got none", tc.name)
			}
			if !strings.Contains(err.Error(), tc.errContains) {
				t.Errorf("Expected error containing %q, got %q", tc.errContains, err.Error())
			}
			if tc.kind != nil && !entities.IsKind(err, *tc.kind) {
				t.Errorf("Expected %s, got %v", *tc.kind, err)
			}
		})
	}
}

func TestLoader_LoadDeliveries_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "deliveries.csv")
	if err := os.WriteFile(path, []byte("day,quantity\n5,500\n"), 0o600); err != nil {
		t.Fatalf("Failed to write fixture: %v", err)
	}

	deliveries, err := NewLoader().LoadDeliveries(path)
	if err != nil {
		t.Fatalf("Failed to load deliveries: %v", err)
	}
	if len(deliveries) != 1 || deliveries[0].Quantity != 500 {
		t.Errorf("Unexpected deliveries %+v", deliveries)
	}

	if _, err := NewLoader().LoadDeliveries(filepath.Join(t.TempDir(), "missing.csv")); err == nil {
		t.Error("Expected error for missing file")
	}
}

func kindPtr(kind entities.ErrorKind) *entities.ErrorKind {
	return &kind
}
