package tracker

import "github.com/invtracker/tracker/timepoint"

// PastPrice is the price of an investment vehicle at a specific point in
// time, in USD.
type PastPrice struct {
	When  timepoint.Point `json:"date_time"`
	Price float64         `json:"price"`
}
