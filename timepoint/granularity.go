package timepoint

import "fmt"

// Granularity is the finest calendar field to which a period of time is
// measured. Its wire form matches the remote store's filter values.
type Granularity int

const (
	Year Granularity = iota
	Month
	Date
	Hour
	Minute
)

var granularityNames = [...]string{"YEAR", "MONTH", "DATE", "HOUR", "MINUTE"}

// String returns the wire name of the granularity.
func (g Granularity) String() string {
	if g < Year || g > Minute {
		return fmt.Sprintf("Granularity(%d)", int(g))
	}
	return granularityNames[g]
}

// ParseGranularity parses a wire name like "DATE" into a Granularity.
func ParseGranularity(name string) (Granularity, error) {
	for i, n := range granularityNames {
		if n == name {
			return Granularity(i), nil
		}
	}
	return 0, fmt.Errorf("invalid granularity %q: want one of %v", name, granularityNames)
}
