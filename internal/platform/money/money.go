// Package money menyimpan nominal harga dalam satuan terkecil mata uang
// (sen), sehingga penjumlahan total keranjang tidak mengalami drift float.
package money

import (
	"errors"
	"fmt"
	"math"

	"github.com/shopspring/decimal"
)

// Jumlah digit desimal satuan terkecil (EUR: 2).
const minorUnitExp = 2

var (
	ErrNegativeAmount = errors.New("amount must not be negative")
	ErrTooPrecise     = errors.New("amount has more than 2 decimal places")
	ErrOutOfRange     = errors.New("amount out of range")
)

var maxMinor = decimal.NewFromInt(math.MaxInt64)

// Amount is a price in minor units (cents).
type Amount int64

func FromMinor(cents int64) Amount {
	return Amount(cents)
}

// FromDecimal converts a major-unit decimal such as 15 or 12.50 into minor units.
func FromDecimal(d decimal.Decimal) (Amount, error) {
	if d.IsNegative() {
		return 0, fmt.Errorf("%s: %w", d.String(), ErrNegativeAmount)
	}
	shifted := d.Shift(minorUnitExp)
	if !shifted.Equal(shifted.Truncate(0)) {
		return 0, fmt.Errorf("%s: %w", d.String(), ErrTooPrecise)
	}
	if shifted.GreaterThan(maxMinor) {
		return 0, fmt.Errorf("%s: %w", d.String(), ErrOutOfRange)
	}
	return Amount(shifted.IntPart()), nil
}

// Mul tidak memeriksa overflow; pakai MulChecked untuk nilai dari input user.
func (a Amount) Mul(quantity int) Amount {
	return a * Amount(quantity)
}

// MulChecked returns ErrOutOfRange instead of wrapping around.
func (a Amount) MulChecked(quantity int) (Amount, error) {
	if a == 0 || quantity == 0 {
		return 0, nil
	}
	n := int64(quantity)
	if (a == -1 && n == math.MinInt64) || (n == -1 && int64(a) == math.MinInt64) {
		return 0, ErrOutOfRange
	}
	res := int64(a) * n
	if res/n != int64(a) {
		return 0, ErrOutOfRange
	}
	return Amount(res), nil
}

func (a Amount) AddChecked(b Amount) (Amount, error) {
	if (b > 0 && a > math.MaxInt64-b) || (b < 0 && a < math.MinInt64-b) {
		return 0, ErrOutOfRange
	}
	return a + b, nil
}

func (a Amount) Minor() int64 {
	return int64(a)
}

func (a Amount) Decimal() decimal.Decimal {
	return decimal.New(int64(a), -minorUnitExp)
}

// String prints whole amounts without decimals ("70") and others with
// exactly two ("12.50").
func (a Amount) String() string {
	d := a.Decimal()
	if a%100 == 0 {
		return d.StringFixed(0)
	}
	return d.StringFixed(minorUnitExp)
}

// Format appends the currency symbol, e.g. "70€".
func (a Amount) Format(symbol string) string {
	return a.String() + symbol
}
