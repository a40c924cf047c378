package models

import (
	"testing"

	"github.com/shopspring/decimal"
)

func price(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestFinalPriceUsesDiscountWhenValid(t *testing.T) {
	p := Product{Price: price("500.00"), DiscountPrice: price("450.00")}

	if !p.HasDiscount() {
		t.Fatalf("expected product to have a discount")
	}
	if got := p.FinalPrice(); !got.Equal(price("450.00")) {
		t.Fatalf("final price = %s, want 450.00", got)
	}
}

func TestFinalPriceIgnoresZeroDiscount(t *testing.T) {
	p := Product{Price: price("500.00")}

	if p.HasDiscount() {
		t.Fatalf("zero discount price should not count as a discount")
	}
	if got := p.FinalPrice(); !got.Equal(price("500.00")) {
		t.Fatalf("final price = %s, want 500.00", got)
	}
}

func TestFinalPriceIgnoresInflatedDiscount(t *testing.T) {
	// A discount price above the listed price is bad data, not a markup.
	p := Product{Price: price("100.00"), DiscountPrice: price("120.00")}

	if p.HasDiscount() {
		t.Fatalf("inflated discount price should not count as a discount")
	}
	if got := p.FinalPrice(); !got.Equal(price("100.00")) {
		t.Fatalf("final price = %s, want 100.00", got)
	}
}

func TestOffer(t *testing.T) {
	cases := []struct {
		name     string
		price    string
		discount string
		want     string
	}{
		{"twenty percent", "500.00", "400.00", "20%"},
		{"no discount", "500.00", "0", ""},
		{"rounds down", "300.00", "200.00", "33%"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := Product{Price: price(tc.price), DiscountPrice: price(tc.discount)}
			if got := p.Offer(); got != tc.want {
				t.Fatalf("offer = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestInStock(t *testing.T) {
	p := Product{Stock: 1}
	if !p.InStock() {
		t.Fatalf("stock 1 should be purchasable")
	}
	p.Stock = 0
	if p.InStock() {
		t.Fatalf("stock 0 should not be purchasable")
	}
}
