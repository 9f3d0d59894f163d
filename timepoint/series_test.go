package timepoint

import (
	"testing"
	"time"
)

func TestSeries_AppendOverwrites(t *testing.T) {
	var s Series
	on := New(2024, time.June)
	s.Append(on, 100)
	s.Append(on, 150)

	if s.Len() != 1 {
		t.Fatalf("Len() = %d, want 1 after overwriting the same point", s.Len())
	}
	price, ok := s.Get(on)
	if !ok || price != 150 {
		t.Errorf("Get(%s) = %v, %v, want 150, true: last write must win", on, price, ok)
	}
}

func TestSeries_GetMiss(t *testing.T) {
	var s Series
	s.Append(NewDay(2024, time.June, 8), 100)

	// No interpolation and no nearest match: only the exact point hits.
	if _, ok := s.Get(NewDay(2024, time.June, 9)); ok {
		t.Error("Get on an absent day must miss")
	}
	if _, ok := s.Get(New(2024, time.June)); ok {
		t.Error("Get at a coarser granularity must miss")
	}
	if s.Contains(New(2024, time.June)) {
		t.Error("Contains at a coarser granularity must be false")
	}
}

func TestSeries_ValuesChronological(t *testing.T) {
	var s Series
	s.Append(NewDay(2024, time.June, 9), 3)
	s.Append(NewDay(2024, time.June, 7), 1)
	s.Append(New(2024, time.June), 0) // unset day sorts first
	s.Append(NewDay(2024, time.June, 8), 2)

	want := 0.0
	for on, price := range s.Values() {
		if price != want {
			t.Fatalf("at %s got price %v, want %v: series not chronological", on, price, want)
		}
		want++
	}
	if want != 4 {
		t.Errorf("iterated %v observations, want 4", want)
	}
}

func TestSeries_Latest(t *testing.T) {
	var s Series
	if on, price := s.Latest(); on != (Point{}) || price != 0 {
		t.Error("Latest on an empty series must return zero values")
	}
	s.Append(NewDay(2024, time.June, 7), 1)
	s.Append(NewDay(2024, time.June, 9), 3)
	on, price := s.Latest()
	if on != NewDay(2024, time.June, 9) || price != 3 {
		t.Errorf("Latest() = %s, %v, want %s, 3", on, price, NewDay(2024, time.June, 9))
	}
}
