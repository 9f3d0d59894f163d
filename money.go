package tracker

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Money represents a monetary value in a given currency. It is used to
// present base-currency valuations; the valuation math itself stays in USD
// floats.
type Money struct {
	value decimal.Decimal
	cur   string
}

// M returns a Money of 'value' in the given ISO 4217 currency.
func M(value float64, currency string) Money {
	return Money{value: decimal.NewFromFloat(value), cur: currency}
}

// currency returns the money's currency description.
func (m Money) currency() money.Currency {
	// to get a never nil currency I need to call the Money constructor
	return *money.New(0, m.cur).Currency()
}

// String formats the value with its currency symbol and fraction digits.
func (m Money) String() string {
	cur := m.currency()
	dec := m.value.Shift(int32(cur.Fraction))
	return cur.Formatter().Format(dec.IntPart())
}

// Currency returns the money's currency code.
func (m Money) Currency() string { return m.cur }

// Equal reports whether both value and currency match.
func (m Money) Equal(n Money) bool { return m.value.Equal(n.value) && m.cur == n.cur }

// IsZero reports whether the value is zero.
func (m Money) IsZero() bool { return m.value.IsZero() }

// Add returns the sum of two amounts. A money with the "" currency is weak
// and takes the other's currency; mixing two set currencies panics.
func (m Money) Add(n Money) Money { return Money{value: m.value.Add(n.value), cur: cur(m, n)} }

func cur(a, b Money) string {
	if a.cur == "" {
		return b.cur
	}
	if b.cur == "" {
		return a.cur
	}
	if a.cur != b.cur {
		panic("currency mismatch " + a.cur + "!=" + b.cur)
	}
	return a.cur
}

// AsFloat returns the value as a float64, losing exactness.
func (m Money) AsFloat() float64 { return m.value.InexactFloat64() }
