package money

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/shopspring/decimal"
)

// ErrCurrencyMismatch is returned when arithmetic or comparison is
// attempted between two values of different currencies. Mixed-currency
// operations must go through a Converter.
var ErrCurrencyMismatch = errors.New("money: currency mismatch")

// Currency identifies the asset a monetary value is denominated in.
type Currency string

// Known currencies. The engine is not limited to this set; unknown codes
// are treated as crypto with an 8-decimal minor unit.
const (
	BTC  Currency = "BTC"
	ETH  Currency = "ETH"
	XLM  Currency = "XLM"
	USDT Currency = "USDT"
	USD  Currency = "USD"
	EUR  Currency = "EUR"
	GBP  Currency = "GBP"
)

var fiatCurrencies = map[Currency]bool{
	USD: true,
	EUR: true,
	GBP: true,
}

var currencyScales = map[Currency]int32{
	BTC:  8,
	ETH:  18,
	XLM:  7,
	USDT: 6,
	USD:  2,
	EUR:  2,
	GBP:  2,
}

// IsFiat reports whether the currency settles on bank rails.
func (c Currency) IsFiat() bool {
	return fiatCurrencies[c]
}

// IsCrypto reports whether the currency settles on-chain.
func (c Currency) IsCrypto() bool {
	return !c.IsFiat()
}

// Scale returns the number of decimal places between the currency's
// minor unit and its display (major) unit.
func (c Currency) Scale() int32 {
	if s, ok := currencyScales[c]; ok {
		return s
	}
	return 8
}

// Money is an immutable, currency-tagged monetary value held in minor
// units (satoshi, wei, cents). Every operation returns a new value.
type Money struct {
	amount   *big.Int
	currency Currency
}

// New creates a Money from minor units. The big.Int is copied so the
// caller keeps ownership of its argument. A nil amount means zero.
func New(minor *big.Int, currency Currency) Money {
	amt := new(big.Int)
	if minor != nil {
		amt.Set(minor)
	}
	return Money{amount: amt, currency: currency}
}

// FromMinorUnits creates a Money from an int64 of minor units.
func FromMinorUnits(minor int64, currency Currency) Money {
	return Money{amount: big.NewInt(minor), currency: currency}
}

// Zero returns the zero value of the given currency.
func Zero(currency Currency) Money {
	return Money{amount: new(big.Int), currency: currency}
}

// Currency returns the currency tag.
func (m Money) Currency() Currency {
	return m.currency
}

// MinorUnits returns a copy of the amount in minor units.
func (m Money) MinorUnits() *big.Int {
	return new(big.Int).Set(m.minor())
}

func (m Money) minor() *big.Int {
	if m.amount == nil {
		return new(big.Int)
	}
	return m.amount
}

// Add returns m + other.
func (m Money) Add(other Money) (Money, error) {
	if err := m.sameCurrency(other); err != nil {
		return Money{}, err
	}
	return Money{amount: new(big.Int).Add(m.minor(), other.minor()), currency: m.currency}, nil
}

// Sub returns m - other. The result may be negative; callers dealing
// with balances clamp through Max against Zero.
func (m Money) Sub(other Money) (Money, error) {
	if err := m.sameCurrency(other); err != nil {
		return Money{}, err
	}
	return Money{amount: new(big.Int).Sub(m.minor(), other.minor()), currency: m.currency}, nil
}

// Cmp compares m against other, returning -1, 0 or +1.
func (m Money) Cmp(other Money) (int, error) {
	if err := m.sameCurrency(other); err != nil {
		return 0, err
	}
	return m.minor().Cmp(other.minor()), nil
}

// IsZero reports whether the amount is exactly zero.
func (m Money) IsZero() bool {
	return m.minor().Sign() == 0
}

// IsPositive reports whether the amount is strictly greater than zero.
func (m Money) IsPositive() bool {
	return m.minor().Sign() > 0
}

// IsNegative reports whether the amount is strictly less than zero.
func (m Money) IsNegative() bool {
	return m.minor().Sign() < 0
}

// Max returns the larger of a and b.
func Max(a, b Money) (Money, error) {
	cmp, err := a.Cmp(b)
	if err != nil {
		return Money{}, err
	}
	if cmp >= 0 {
		return a, nil
	}
	return b, nil
}

// Min returns the smaller of a and b.
func Min(a, b Money) (Money, error) {
	cmp, err := a.Cmp(b)
	if err != nil {
		return Money{}, err
	}
	if cmp <= 0 {
		return a, nil
	}
	return b, nil
}

// ToMajorUnits returns the amount as a decimal in display units.
func (m Money) ToMajorUnits() decimal.Decimal {
	return decimal.NewFromBigInt(m.minor(), -m.currency.Scale())
}

// String renders the value in major units with its currency code.
func (m Money) String() string {
	return fmt.Sprintf("%s %s", m.ToMajorUnits().String(), m.currency)
}

func (m Money) sameCurrency(other Money) error {
	if m.currency != other.currency {
		return fmt.Errorf("%w: %s vs %s", ErrCurrencyMismatch, m.currency, other.currency)
	}
	return nil
}
