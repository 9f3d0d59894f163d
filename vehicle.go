package tracker

import (
	"fmt"
	"iter"

	"github.com/invtracker/tracker/timepoint"
)

// Vehicle is a named instrument that can be invested in, holding a sparse
// series of USD prices at points in time.
type Vehicle struct {
	row
	symbol string
	name   string
	prices timepoint.Series
}

// NewVehicle returns a vehicle with the given symbol and display name.
// If several past prices share the same point, only the last one is kept.
func NewVehicle(symbol, name string, pastPrices ...PastPrice) *Vehicle {
	v := &Vehicle{symbol: symbol, name: name}
	v.AddPastPrices(pastPrices...)
	return v
}

// Symbol returns the vehicle's ticker symbol.
func (v *Vehicle) Symbol() string { return v.symbol }

// Name returns the vehicle's display name.
func (v *Vehicle) Name() string { return v.name }

// AddPastPrice records a price observation. An observation at the same point
// as a previous one overwrites it.
func (v *Vehicle) AddPastPrice(pp PastPrice) { v.prices.Append(pp.When, pp.Price) }

// AddPastPrices records price observations in order, so the last observation
// at any given point wins.
func (v *Vehicle) AddPastPrices(pps ...PastPrice) {
	for _, pp := range pps {
		v.AddPastPrice(pp)
	}
}

// PriceAt returns the recorded USD price at exactly 'on'. There is no
// interpolation: an unrecorded point is an ErrNotFound error.
func (v *Vehicle) PriceAt(on timepoint.Point) (float64, error) {
	price, ok := v.prices.Get(on)
	if !ok {
		return 0, fmt.Errorf("vehicle %q has no price at %s: %w", v.symbol, on, ErrNotFound)
	}
	return price, nil
}

// ContainsDate reports whether the vehicle has a price recorded at exactly 'on'.
func (v *Vehicle) ContainsDate(on timepoint.Point) bool { return v.prices.Contains(on) }

// Count returns the number of distinct points recorded in this vehicle.
func (v *Vehicle) Count() int { return v.prices.Len() }

// IsEmpty reports whether the vehicle has no recorded prices. Callers use it
// to validate a vehicle has enough history before relying on it.
func (v *Vehicle) IsEmpty() bool { return v.prices.Len() == 0 }

// PastPrices returns an iterator over the recorded observations in
// chronological order.
func (v *Vehicle) PastPrices() iter.Seq[PastPrice] {
	return func(yield func(PastPrice) bool) {
		for on, price := range v.prices.Values() {
			if !yield(PastPrice{When: on, Price: price}) {
				return
			}
		}
	}
}

// Table returns the remote collection vehicles are saved to.
func (v *Vehicle) Table() string { return tableVehicles }

var _ PriceTicker = (*Vehicle)(nil)
var _ Entry = (*Vehicle)(nil)
