package banking

import (
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// number lists the Go values a Money can be built from.
type number interface {
	float32 | float64 | int | int32 | int64 | uint | uint32 | uint64 | decimal.Decimal
}

// newDecimal is a convenient factory for decimal.Decimal
func newDecimal[T number](value T) decimal.Decimal {
	switch v := any(value).(type) {
	case decimal.Decimal:
		return v
	case float32:
		return decimal.NewFromFloat32(v)
	case float64:
		return decimal.NewFromFloat(v)
	case int:
		return decimal.NewFromInt(int64(v))
	case int32:
		return decimal.NewFromInt32(v)
	case int64:
		return decimal.NewFromInt(v)
	case uint:
		return decimal.NewFromUint64(uint64(v))
	case uint32:
		return decimal.NewFromUint64(uint64(v))
	case uint64:
		return decimal.NewFromUint64(v)
	default:
		panic("unsupported type")
	}
}

// Money is an immutable monetary amount.
//
// Money carries no currency: a bank operates in a single currency, which is
// only needed to format amounts for display.
// Money exposes no arithmetic, callers work on Amount and build a new Money.
type Money struct {
	value decimal.Decimal
}

// NewMoney returns the Money worth value. Any value is accepted, including
// zero and negative ones.
func NewMoney[T number](value T) Money {
	return Money{value: newDecimal(value)}
}

// M is a short alias for NewMoney.
func M[T number](value T) Money { return NewMoney(value) }

// Amount returns the decimal amount of money.
func (m Money) Amount() decimal.Decimal { return m.value }

func (m Money) Equal(n Money) bool { return m.value.Equal(n.value) }
func (m Money) IsZero() bool       { return m.value.IsZero() }
func (m Money) IsNegative() bool   { return m.value.IsNegative() }

// String returns the plain decimal representation, e.g. "200" or "12.5".
func (m Money) String() string { return m.value.String() }

// currency returns the go-money currency for code.
func currency(code string) money.Currency {
	// to get a never nil currency I need to call the Money constructor
	return *money.New(0, code).Currency()
}

// Format returns the amount formatted in the given currency, e.g. "€200.00"
// for "EUR". Digits beyond the currency fraction are rounded.
func (m Money) Format(code string) string {
	cur := currency(code)
	dec := m.value.Shift(int32(cur.Fraction)).Round(0)
	if !dec.BigInt().IsInt64() {
		return formatLarge(m.value, cur)
	}
	return cur.Formatter().Format(dec.IntPart())
}

// formatLarge formats amounts whose minor units overflow an int64, laid out
// like the go-money formatter does.
func formatLarge(value decimal.Decimal, cur money.Currency) string {
	digits := value.Abs().StringFixed(int32(cur.Fraction))
	intPart, fracPart, _ := strings.Cut(digits, ".")

	var b strings.Builder
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteString(cur.Thousand)
		}
		b.WriteRune(r)
	}
	if fracPart != "" {
		b.WriteString(cur.Decimal)
		b.WriteString(fracPart)
	}

	s := strings.Replace(cur.Template, "1", b.String(), 1)
	s = strings.Replace(s, "$", cur.Grapheme, 1)
	if value.IsNegative() {
		s = "-" + s
	}
	return s
}

// MarshalJSON encodes money as a bare JSON number.
func (m Money) MarshalJSON() ([]byte, error) {
	return m.value.MarshalJSON()
}

// UnmarshalJSON accepts both a JSON number and a quoted decimal.
func (m *Money) UnmarshalJSON(data []byte) error {
	return m.value.UnmarshalJSON(data)
}
