package validate_test

import (
	"errors"
	"testing"

	"github.com/Gunvolt24/supplier_orders/internal/domain"
	"github.com/Gunvolt24/supplier_orders/pkg/validate"
)

func TestToAPIStatus(t *testing.T) {
	cases := []struct {
		ui   string
		want domain.FulfillmentStatus
	}{
		{"pending", domain.StatusPending},
		{"confirmed", domain.StatusProcessing},
		{"processing", domain.StatusProcessing},
		{" Shipped ", domain.StatusShipped},
		{"delivered", domain.StatusDelivered},
		{"cancelled", domain.StatusCancelled},
		{"returned", domain.StatusReturned},
	}
	for _, tc := range cases {
		got, err := validate.ToAPIStatus(tc.ui)
		if err != nil {
			t.Fatalf("ToAPIStatus(%q) unexpected error: %v", tc.ui, err)
		}
		if got != tc.want {
			t.Fatalf("ToAPIStatus(%q) = %q, want %q", tc.ui, got, tc.want)
		}
	}
}

func TestToAPIStatus_Unknown(t *testing.T) {
	for _, ui := range []string{"", "lost", "canceled"} {
		if _, err := validate.ToAPIStatus(ui); !errors.Is(err, validate.ErrInvalidStatus) {
			t.Fatalf("ToAPIStatus(%q) err=%v, want ErrInvalidStatus", ui, err)
		}
	}
}

func TestFulfillmentStatus(t *testing.T) {
	if err := validate.FulfillmentStatus(domain.StatusConfirmed); err != nil {
		t.Fatalf("confirmed is accepted by the backend, got %v", err)
	}
	if err := validate.FulfillmentStatus("Shipped"); !errors.Is(err, validate.ErrInvalidStatus) {
		t.Fatalf("API statuses are case-sensitive, got %v", err)
	}
}

func TestStatusFilter(t *testing.T) {
	if err := validate.StatusFilter(""); err != nil {
		t.Fatalf("empty filter must be allowed, got %v", err)
	}
	if err := validate.StatusFilter("pending"); err != nil {
		t.Fatalf("pending filter must be allowed, got %v", err)
	}
	if err := validate.StatusFilter("bogus"); !errors.Is(err, validate.ErrInvalidStatus) {
		t.Fatalf("bogus filter err=%v, want ErrInvalidStatus", err)
	}
}
