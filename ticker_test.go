package tracker

import (
	"errors"
	"testing"
)

func TestPriceDifference(t *testing.T) {
	v := newTestVehicle("VOO", "Vanguard", map[string]float64{
		"2000-01": 100,
		"2024-06": 150,
	})

	diff, err := PriceDifference(v, pt("2000-01"), pt("2024-06"))
	if err != nil {
		t.Fatal(err)
	}
	if diff != 50 {
		t.Errorf("PriceDifference = %v, want 50", diff)
	}

	if _, err := PriceDifference(v, pt("2000-01"), pt("2010-01")); !errors.Is(err, ErrNotFound) {
		t.Errorf("missing later endpoint must be ErrNotFound, got %v", err)
	}
	if _, err := PriceDifference(v, pt("2010-01"), pt("2024-06")); !errors.Is(err, ErrNotFound) {
		t.Errorf("missing earlier endpoint must be ErrNotFound, got %v", err)
	}
}

func TestRateOfReturn(t *testing.T) {
	v := newTestVehicle("VOO", "Vanguard", map[string]float64{
		"2000-01": 100,
		"2024-06": 150,
	})

	ror, err := RateOfReturn(v, pt("2000-01"), pt("2024-06"))
	if err != nil {
		t.Fatal(err)
	}
	if ror != 0.5 {
		t.Errorf("RateOfReturn = %v, want 0.5", ror)
	}
}

func TestRateOfReturn_SamePoint(t *testing.T) {
	v := newTestVehicle("VOO", "Vanguard", map[string]float64{"2024-06": 150})

	ror, err := RateOfReturn(v, pt("2024-06"), pt("2024-06"))
	if err != nil {
		t.Fatal(err)
	}
	if ror != 0 {
		t.Errorf("RateOfReturn over a zero-length interval = %v, want 0", ror)
	}
}

func TestRateOfReturn_ZeroBasis(t *testing.T) {
	v := newTestVehicle("NIL", "Worthless", map[string]float64{
		"2000-01": 0,
		"2024-06": 150,
	})

	_, err := RateOfReturn(v, pt("2000-01"), pt("2024-06"))
	if !errors.Is(err, ErrZeroBasis) {
		t.Errorf("a zero basis must be ErrZeroBasis, not a non-finite value; got %v", err)
	}
}
