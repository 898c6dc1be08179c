// Package moneypkg provides parsing and normalization of monetary amounts.
//
// Amounts cross the application as strings and all arithmetic goes through
// shopspring/decimal; binary floating point never touches money.
package moneypkg

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	// ErrInvalid indicates an unparsable amount or more than two decimals.
	ErrInvalid = errors.New("invalid monetary amount")
	// ErrNotPositive indicates a zero or negative amount.
	ErrNotPositive = errors.New("amount must be positive")
	// ErrNegative indicates a negative amount.
	ErrNegative = errors.New("amount must not be negative")
)

func parse(s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return decimal.Decimal{}, ErrInvalid
	}

	if d.Exponent() < -2 {
		return decimal.Decimal{}, ErrInvalid
	}

	return d, nil
}

// NormalizePositive parses s as a strictly positive amount and returns its
// canonical two-decimal form.
func NormalizePositive(s string) (string, error) {
	d, err := parse(s)
	if err != nil {
		return "", err
	}

	if d.LessThanOrEqual(decimal.Zero) {
		return "", ErrNotPositive
	}

	return d.StringFixed(2), nil
}

// NormalizeNonNegative parses s as a zero-or-positive amount and returns its
// canonical two-decimal form. The value is never clamped.
func NormalizeNonNegative(s string) (string, error) {
	d, err := parse(s)
	if err != nil {
		return "", err
	}

	if d.IsNegative() {
		return "", ErrNegative
	}

	return d.StringFixed(2), nil
}
