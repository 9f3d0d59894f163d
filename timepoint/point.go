// Package timepoint provides a partially-specified calendar timestamp and a
// sparse price series keyed by it.
package timepoint

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// Point represents a UTC timestamp specified down to a chosen granularity.
// Year and month are always present; day, hour and minute are optional and
// significant only down to the first unset field.
//
// Point is an immutable value and is comparable with ==: two points are equal
// iff they have the same granularity and every present field matches.
type Point struct {
	year   int
	month  time.Month
	day    int
	hour   int
	minute int
	gran   Granularity
}

// New returns a Point with month granularity.
func New(year int, month time.Month) Point {
	return Point{year: year, month: month, gran: Month}
}

// NewDay returns a Point with day granularity.
func NewDay(year int, month time.Month, day int) Point {
	return Point{year: year, month: month, day: day, gran: Date}
}

// NewHour returns a Point with hour granularity.
func NewHour(year int, month time.Month, day, hour int) Point {
	return Point{year: year, month: month, day: day, hour: hour, gran: Hour}
}

// NewMinute returns a Point with minute granularity.
func NewMinute(year int, month time.Month, day, hour, minute int) Point {
	return Point{year: year, month: month, day: day, hour: hour, minute: minute, gran: Minute}
}

// Year returns the year of the point.
func (p Point) Year() int { return p.year }

// Month returns the month of the point.
func (p Point) Month() time.Month { return p.month }

// Day returns the day of the month, and whether it is specified.
func (p Point) Day() (int, bool) { return p.day, p.gran >= Date }

// Hour returns the hour, and whether it is specified.
func (p Point) Hour() (int, bool) { return p.hour, p.gran >= Hour }

// Minute returns the minute, and whether it is specified.
func (p Point) Minute() (int, bool) { return p.minute, p.gran >= Minute }

// Granularity returns the finest field specified on this point.
func (p Point) Granularity() Granularity { return p.gran }

// Before reports whether p is strictly earlier than q.
//
// Fields are compared coarse to fine. As soon as a field is unset on either
// side the comparison stops and Before returns false: a point is never
// earlier than another through a field one of them does not specify. This
// makes Before a partial order only; see Compare for a total order suitable
// for storage.
func (p Point) Before(q Point) bool {
	if p.year != q.year {
		return p.year < q.year
	}
	if p.month != q.month {
		return p.month < q.month
	}
	if p.gran < Date || q.gran < Date {
		return false
	}
	if p.day != q.day {
		return p.day < q.day
	}
	if p.gran < Hour || q.gran < Hour {
		return false
	}
	if p.hour != q.hour {
		return p.hour < q.hour
	}
	if p.gran < Minute || q.gran < Minute {
		return false
	}
	return p.minute < q.minute
}

// Compare orders p and q field by field, an unset field sorting before any
// set one. Unlike Before it is a total order; it exists so that series can
// keep their observations sorted regardless of mixed granularities.
func (p Point) Compare(q Point) int {
	if c := p.year - q.year; c != 0 {
		return c
	}
	if c := int(p.month) - int(q.month); c != 0 {
		return c
	}
	if c := cmpField(p.day, p.gran >= Date, q.day, q.gran >= Date); c != 0 {
		return c
	}
	if c := cmpField(p.hour, p.gran >= Hour, q.hour, q.gran >= Hour); c != 0 {
		return c
	}
	return cmpField(p.minute, p.gran >= Minute, q.minute, q.gran >= Minute)
}

func cmpField(a int, aok bool, b int, bok bool) int {
	if !aok {
		a = -1
	}
	if !bok {
		b = -1
	}
	return a - b
}

// String formats the point in its standard form: "2024-06", "2024-06-08",
// "2024-06-08 09" or "2024-06-08 09:07" depending on granularity.
func (p Point) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%04d-%02d", p.year, int(p.month))
	if p.gran >= Date {
		fmt.Fprintf(&sb, "-%02d", p.day)
	}
	if p.gran >= Hour {
		fmt.Fprintf(&sb, " %02d", p.hour)
	}
	if p.gran >= Minute {
		fmt.Fprintf(&sb, ":%02d", p.minute)
	}
	return sb.String()
}

// read formats are permissive and allow single digit fields like "2025-7-1".
var readFormats = []struct {
	layout string
	gran   Granularity
}{
	{"2006-1-2 15:4", Minute},
	{"2006-1-2 15", Hour},
	{"2006-1-2", Date},
	{"2006-1", Month},
}

// Parse parses a Point from a string, inferring the granularity from the
// fields present. It is lenient and accepts formats like "2025-7-1".
func Parse(str string) (Point, error) {
	for _, f := range readFormats {
		on, err := time.Parse(f.layout, str)
		if err != nil {
			continue
		}
		switch f.gran {
		case Minute:
			return NewMinute(on.Year(), on.Month(), on.Day(), on.Hour(), on.Minute()), nil
		case Hour:
			return NewHour(on.Year(), on.Month(), on.Day(), on.Hour()), nil
		case Date:
			return NewDay(on.Year(), on.Month(), on.Day()), nil
		default:
			return New(on.Year(), on.Month()), nil
		}
	}
	return Point{}, fmt.Errorf("invalid point %q: want one of %q, %q, %q or %q", str, "2006-01", "2006-01-02", "2006-01-02 15", "2006-01-02 15:04")
}

// MustParse is like Parse but panics on error.
func MustParse(str string) Point {
	p, err := Parse(str)
	if err != nil {
		panic(err.Error())
	}
	return p
}

// jpoint is the wire shape of a Point. Unset fields are omitted entirely,
// never emitted as null, and the month travels as its uppercase English name.
type jpoint struct {
	Year   int    `json:"year"`
	Month  string `json:"month"`
	Day    *int   `json:"day,omitempty"`
	Hour   *int   `json:"hour,omitempty"`
	Minute *int   `json:"minute,omitempty"`
}

// MarshalJSON implements json.Marshaler.
func (p Point) MarshalJSON() ([]byte, error) {
	j := jpoint{Year: p.year, Month: strings.ToUpper(p.month.String())}
	if p.gran >= Date {
		j.Day = &p.day
	}
	if p.gran >= Hour {
		j.Hour = &p.hour
	}
	if p.gran >= Minute {
		j.Minute = &p.minute
	}
	return json.Marshal(j)
}

// UnmarshalJSON implements json.Unmarshaler.
func (p *Point) UnmarshalJSON(bytes []byte) error {
	var j jpoint
	if err := json.Unmarshal(bytes, &j); err != nil {
		return err
	}
	month, err := parseMonth(j.Month)
	if err != nil {
		return err
	}
	q := Point{year: j.Year, month: month, gran: Month}
	if j.Day != nil {
		q.day, q.gran = *j.Day, Date
	}
	if j.Hour != nil {
		if j.Day == nil {
			return fmt.Errorf("invalid point: hour specified without a day")
		}
		q.hour, q.gran = *j.Hour, Hour
	}
	if j.Minute != nil {
		if j.Hour == nil {
			return fmt.Errorf("invalid point: minute specified without an hour")
		}
		q.minute, q.gran = *j.Minute, Minute
	}
	*p = q
	return nil
}

// check that a Point is a valid json marshall/unmarshaller type.
var _ json.Marshaler = Point{}
var _ json.Unmarshaler = (*Point)(nil)

func parseMonth(name string) (time.Month, error) {
	for m := time.January; m <= time.December; m++ {
		if strings.ToUpper(m.String()) == name {
			return m, nil
		}
	}
	return 0, fmt.Errorf("invalid month %q: want an uppercase month name like %q", name, "JANUARY")
}
