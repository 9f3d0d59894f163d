package tracker

import "github.com/invtracker/tracker/timepoint"

// pt is a helper for tests to create points from const strings.
func pt(str string) timepoint.Point { return timepoint.MustParse(str) }

// newTestVehicle is a helper for tests to create a vehicle priced at the
// given point/price pairs.
func newTestVehicle(symbol, name string, prices map[string]float64) *Vehicle {
	v := NewVehicle(symbol, name)
	for on, price := range prices {
		v.AddPastPrice(PastPrice{When: pt(on), Price: price})
	}
	return v
}
