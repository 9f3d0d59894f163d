package timepoint

import (
	"iter"
	"slices"
	"sort"
)

// Series stores a sparse series of prices, each associated with a Point.
// It ensures that points are unique and the series is always sorted by
// Point.Compare. Its zero value is an empty series ready to use.
type Series struct {
	points []Point
	prices []float64
}

// Len returns the number of observations in the series.
func (s *Series) Len() int { return len(s.points) }

// Latest returns the latest point and price in the series.
// If the series is empty, it returns zero values.
func (s *Series) Latest() (on Point, price float64) {
	last := len(s.points) - 1
	if last < 0 {
		return Point{}, 0
	}
	return s.points[last], s.prices[last]
}

// chronological is a private implementation to keep the series sorted.
type chronological struct{ *Series }

func (c chronological) Len() int           { return len(c.points) }
func (c chronological) Less(i, j int) bool { return c.points[i].Compare(c.points[j]) < 0 }

func (c chronological) Swap(i, j int) {
	c.points[i], c.points[j] = c.points[j], c.points[i]
	c.prices[i], c.prices[j] = c.prices[j], c.prices[i]
}

// Append adds an observation to the series.
//
// An existing price at that exact point is overwritten: the last write wins
// and the length of the series is unchanged.
func (s *Series) Append(on Point, price float64) *Series {
	if i := slices.Index(s.points, on); i >= 0 {
		s.prices[i] = price
		return s
	}
	s.points, s.prices = append(s.points, on), append(s.prices, price)
	sort.Sort(chronological{s})
	return s
}

// Get returns the price at exactly 'on' and true, or zero and false.
// There is no interpolation and no nearest match.
func (s *Series) Get(on Point) (float64, bool) {
	if i := slices.Index(s.points, on); i >= 0 {
		return s.prices[i], true
	}
	return 0, false
}

// Contains reports whether the series has an observation at exactly 'on'.
func (s *Series) Contains(on Point) bool {
	return slices.Index(s.points, on) >= 0
}

// Values returns an iterator over all point/price pairs in the series, in
// chronological order.
func (s *Series) Values() iter.Seq2[Point, float64] {
	return func(yield func(Point, float64) bool) {
		for i, on := range s.points {
			if !yield(on, s.prices[i]) {
				return
			}
		}
	}
}
