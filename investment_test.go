package tracker

import (
	"errors"
	"math"
	"testing"
)

func TestNewInvestment_Validation(t *testing.T) {
	v := newTestVehicle("VOO", "Vanguard", map[string]float64{"2000-01": 100})

	testCases := []struct {
		name      string
		when      string
		principal float64
	}{
		{"zero principal", "2000-01", 0},
		{"negative principal", "2000-01", -5},
		{"uncovered timestamp", "1999-12", 10},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			inv, err := NewInvestment(pt(tc.when), tc.principal, v)
			if !errors.Is(err, ErrInvalidArgument) {
				t.Errorf("want ErrInvalidArgument, got %v", err)
			}
			if inv != nil {
				t.Error("no investment must exist after a failed construction")
			}
		})
	}

	if _, err := NewInvestment(pt("2000-01"), 10, nil); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("a nil vehicle must be ErrInvalidArgument, got %v", err)
	}
}

func TestInvestment_PriceAt(t *testing.T) {
	v := newTestVehicle("VOO", "Vanguard", map[string]float64{
		"2000-01": 100,
		"2024-06": 150,
	})
	inv, err := NewInvestment(pt("2000-01"), 10, v)
	if err != nil {
		t.Fatal(err)
	}

	// The vehicle's rate of return is 0.5, so 10 grows to 15.
	price, err := inv.PriceAt(pt("2024-06"))
	if err != nil {
		t.Fatal(err)
	}
	if price != 15 {
		t.Errorf("PriceAt = %v, want 15", price)
	}

	// At the entry point the investment is worth exactly its principal.
	price, err = inv.PriceAt(pt("2000-01"))
	if err != nil {
		t.Fatal(err)
	}
	if price != 10 {
		t.Errorf("PriceAt at the entry point = %v, want 10", price)
	}

	if _, err := inv.PriceAt(pt("2010-01")); !errors.Is(err, ErrNotFound) {
		t.Errorf("an uncovered point must be ErrNotFound, got %v", err)
	}
}

func TestInvestment_CoverageFollowsVehicle(t *testing.T) {
	// The investment is defined at exactly the points its vehicle has data
	// for, on either side of the entry date.
	v := newTestVehicle("VOO", "Vanguard", map[string]float64{
		"2000-01": 100,
		"2024-06": 150,
	})
	inv, err := NewInvestment(pt("2024-06"), 30, v)
	if err != nil {
		t.Fatal(err)
	}

	if !inv.ContainsDate(pt("2000-01")) {
		t.Error("coverage before the entry date delegates to the vehicle")
	}
	if inv.ContainsDate(pt("2010-01")) {
		t.Error("coverage must be false where the vehicle has no data")
	}

	// Projecting backward is defined too: 30 * (1 + (100-150)/150) = 20.
	price, err := inv.PriceAt(pt("2000-01"))
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(price-20) > 1e-9 {
		t.Errorf("PriceAt before the entry date = %v, want 20", price)
	}
}

func TestInvestment_Identity(t *testing.T) {
	v := newTestVehicle("VOO", "Vanguard", map[string]float64{"2000-01": 100})
	inv, err := NewInvestment(pt("2000-01"), 10, v)
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := inv.ID(); ok {
		t.Error("a new investment has never been persisted and must have no id")
	}
	if inv.Table() != "investments" {
		t.Errorf("Table = %q, want %q", inv.Table(), "investments")
	}
}
