package domain

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestProductStatus_IsValid(t *testing.T) {
	t.Parallel()

	valid := []ProductStatus{ProductStatusArchived, ProductStatusOnSale, ProductStatusPending, ProductStatusSoldOut}
	for _, s := range valid {
		if !s.IsValid() {
			t.Errorf("status %q should be valid", s)
		}
	}

	invalid := []ProductStatus{"", "on sale", "ON_SALE", "Discontinued"}
	for _, s := range invalid {
		if s.IsValid() {
			t.Errorf("status %q should be invalid", s)
		}
	}
}

func TestMoney_DecimalRoundTrip(t *testing.T) {
	t.Parallel()

	// 19.99 is not representable in binary floating point; the decimal
	// representation must survive a string round-trip exactly.
	price, err := decimal.NewFromString("19.99")
	if err != nil {
		t.Fatalf("NewFromString: %v", err)
	}

	back, err := decimal.NewFromString(price.String())
	if err != nil {
		t.Fatalf("round-trip parse: %v", err)
	}

	if !price.Equal(back) {
		t.Errorf("round-trip changed value: %s -> %s", price, back)
	}
	if price.String() != "19.99" {
		t.Errorf("String: got %q, want %q", price.String(), "19.99")
	}

	// At least 10 significant digits with 2 decimal places.
	big, err := decimal.NewFromString("12345678.90")
	if err != nil {
		t.Fatalf("NewFromString: %v", err)
	}
	if big.String() != "12345678.9" && big.StringFixed(2) != "12345678.90" {
		t.Errorf("unexpected representation: %s", big)
	}
}

func TestOrder_ItemCount(t *testing.T) {
	t.Parallel()

	o := Order{Items: []OrderItem{{Quantity: 2}, {Quantity: 3}}}
	if got := o.ItemCount(); got != 5 {
		t.Errorf("ItemCount: got %d, want 5", got)
	}
}
