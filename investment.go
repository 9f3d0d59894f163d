package tracker

import (
	"fmt"

	"github.com/invtracker/tracker/timepoint"
)

// Investment is a single capital commitment into a vehicle at a point in
// time. Its value at any other point derives from the vehicle's price
// movement, scaled to the principal.
type Investment struct {
	row
	when      timepoint.Point
	principal float64
	vehicle   *Vehicle
}

// NewInvestment returns an investment of 'principal' USD into 'vehicle' made
// at 'when'.
//
// It fails with ErrInvalidArgument unless the vehicle has a recorded price at
// 'when' and the principal is greater than zero; on failure no investment
// exists at all.
func NewInvestment(when timepoint.Point, principal float64, vehicle *Vehicle) (*Investment, error) {
	if vehicle == nil {
		return nil, fmt.Errorf("investment requires a vehicle: %w", ErrInvalidArgument)
	}
	if !vehicle.ContainsDate(when) {
		return nil, fmt.Errorf("vehicle %q has no record of its price at %s, when the investment was made: %w",
			vehicle.Symbol(), when, ErrInvalidArgument)
	}
	if principal <= 0 {
		return nil, fmt.Errorf("investment principal %v is not greater than zero: %w", principal, ErrInvalidArgument)
	}
	return &Investment{when: when, principal: principal, vehicle: vehicle}, nil
}

// When returns the point at which the investment was made.
func (inv *Investment) When() timepoint.Point { return inv.when }

// Principal returns the amount invested, in USD.
func (inv *Investment) Principal() float64 { return inv.principal }

// Vehicle returns the vehicle invested into. The investment shares the
// vehicle, it does not own it.
func (inv *Investment) Vehicle() *Vehicle { return inv.vehicle }

// PriceAt returns the investment's USD value at 'on': the principal grown by
// the vehicle's rate of return between the entry point and 'on'. The value is
// defined wherever the vehicle has data, on either side of the entry point.
func (inv *Investment) PriceAt(on timepoint.Point) (float64, error) {
	ror, err := RateOfReturn(inv.vehicle, inv.when, on)
	if err != nil {
		return 0, err
	}
	return inv.principal * (1 + ror), nil
}

// ContainsDate reports whether the underlying vehicle has a price at 'on'.
func (inv *Investment) ContainsDate(on timepoint.Point) bool {
	return inv.vehicle.ContainsDate(on)
}

// Table returns the remote collection investments are saved to.
func (inv *Investment) Table() string { return tableInvestments }

var _ PriceTicker = (*Investment)(nil)
var _ Entry = (*Investment)(nil)
