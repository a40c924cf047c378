package models

import "testing"

func TestComputeCartTotals(t *testing.T) {
	lines := []Cart{
		{
			Quantity: 2,
			Product:  Product{Price: price("200.00"), DiscountPrice: price("175.00")},
		},
		{
			Quantity: 1,
			Product:  Product{Price: price("100.00")},
		},
	}

	totals := ComputeCartTotals(lines)

	if !totals.Subtotal.Equal(price("500.00")) {
		t.Fatalf("subtotal = %s, want 500.00", totals.Subtotal)
	}
	if !totals.Discount.Equal(price("50.00")) {
		t.Fatalf("discount = %s, want 50.00", totals.Discount)
	}
	if !totals.Total.Equal(price("450.00")) {
		t.Fatalf("total = %s, want 450.00", totals.Total)
	}
	if !totals.Total.Equal(totals.Subtotal.Sub(totals.Discount)) {
		t.Fatalf("total must equal subtotal - discount, got %s", totals.Total)
	}
}

func TestComputeCartTotalsEmpty(t *testing.T) {
	totals := ComputeCartTotals(nil)
	if !totals.Subtotal.IsZero() || !totals.Discount.IsZero() || !totals.Total.IsZero() {
		t.Fatalf("empty cart totals should all be zero, got %+v", totals)
	}
}

func TestCountCartItemsSumsQuantities(t *testing.T) {
	lines := []Cart{
		{Quantity: 2},
		{Quantity: 3},
	}
	if got := CountCartItems(lines); got != 5 {
		t.Fatalf("count = %d, want 5", got)
	}
	if got := CountCartItems(nil); got != 0 {
		t.Fatalf("empty cart count = %d, want 0", got)
	}
}

func TestLineTotalUsesEffectivePrice(t *testing.T) {
	line := Cart{
		Quantity: 3,
		Product:  Product{Price: price("100.00"), DiscountPrice: price("80.00")},
	}
	if got := line.LineTotal(); !got.Equal(price("240.00")) {
		t.Fatalf("line total = %s, want 240.00", got)
	}
}
