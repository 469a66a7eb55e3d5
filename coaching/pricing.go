package coaching

import (
	"fmt"
	"math"
	"slices"
)

// AllowedDiscounts are the discount percentages a booking may carry.
var AllowedDiscounts = []int{0, 10, 15, 20, 25, 50}

type Quote struct {
	BasePrice  float64 `json:"basePrice"`
	FinalPrice float64 `json:"finalPrice"`
}

// ComputePrice prices a booking. Hourly services multiply the unit price by
// the duration; flat services ignore it. The discount is applied to the base
// price without rounding.
func ComputePrice(service ServiceType, unitPrice, duration float64, discount int) (Quote, error) {
	if !service.Valid() {
		return Quote{}, fmt.Errorf("%w: %q", ErrInvalidService, service)
	}

	if !slices.Contains(AllowedDiscounts, discount) {
		return Quote{}, fmt.Errorf("%w: %d", ErrInvalidDiscount, discount)
	}

	base := unitPrice
	if service.Hourly() {
		base = unitPrice * duration
	}

	return Quote{
		BasePrice:  base,
		FinalPrice: base * (1 - float64(discount)/100),
	}, nil
}

// CheckPrice verifies the stored final price against the pricing formula.
func (b Booking) CheckPrice() error {
	want := b.BasePrice * (1 - float64(b.Discount)/100)
	if math.Abs(want-b.FinalPrice) > 1e-9*math.Max(1, math.Abs(want)) {
		return fmt.Errorf("%w: booking %s has %.4f, want %.4f", ErrPriceMismatch, b.ID, b.FinalPrice, want)
	}
	return nil
}
