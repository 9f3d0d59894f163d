package tracker

import (
	"fmt"

	"github.com/invtracker/tracker/timepoint"
)

// PriceTicker is anything holding a USD value that changes as time passes.
// Vehicle, Investment and Portfolio all satisfy it; they share no other
// structure.
type PriceTicker interface {
	// PriceAt returns the USD price at exactly the given point, or an error
	// wrapping ErrNotFound when the point is not covered.
	PriceAt(on timepoint.Point) (float64, error)
	// ContainsDate reports whether the ticker has a price at exactly the
	// given point.
	ContainsDate(on timepoint.Point) bool
}

// PriceDifference returns the price at 'later' minus the price at 'earlier'.
// A point absent from the ticker surfaces as ErrNotFound.
func PriceDifference(t PriceTicker, earlier, later timepoint.Point) (float64, error) {
	to, err := t.PriceAt(later)
	if err != nil {
		return 0, err
	}
	from, err := t.PriceAt(earlier)
	if err != nil {
		return 0, err
	}
	return to - from, nil
}

// RateOfReturn returns the rate of return between 'earlier' and 'later',
// relative to the price at 'earlier'. A zero basis price is reported as
// ErrZeroBasis rather than propagating a non-finite value.
func RateOfReturn(t PriceTicker, earlier, later timepoint.Point) (float64, error) {
	diff, err := PriceDifference(t, earlier, later)
	if err != nil {
		return 0, err
	}
	basis, err := t.PriceAt(earlier)
	if err != nil {
		return 0, err
	}
	if basis == 0 {
		return 0, fmt.Errorf("cannot compute a rate of return from a zero price at %s: %w", earlier, ErrZeroBasis)
	}
	return diff / basis, nil
}
