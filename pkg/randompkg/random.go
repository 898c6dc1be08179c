// Package randompkg provides functionality gor generating random applications common items.
package randompkg

import (
	"crypto/rand"
	"math"
	"math/big"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

const alphabet = "abcdefghijklmnopqrstuvwxyz"

// Intn is a shortcut for generating a random integer between 0 and max using crypto/rand.
func Intn(max int) int64 {
	nBig, err := rand.Int(rand.Reader, big.NewInt(int64(max)))
	if err != nil {
		panic(err)
	}

	return nBig.Int64()
}

// Float64 is a shortcut for generating a random float between 0 and 1 using crypto/rand.
func Float64() float64 {
	return float64(Intn(1<<32)) / (1 << 32)
}

// FloatBetween generates a random decimal number between min and max.
func FloatBetween(min, max float64) float64 {
	numInRange := min + Float64()*(max-min)
	return math.Floor(numInRange*100) / 100
}

// String generates a random string of length n.
func String(n int) string {
	var sb strings.Builder

	k := len(alphabet)

	for i := 0; i < n; i++ {
		c := alphabet[Intn(k)]

		_ = sb.WriteByte(c) // The returned err is always nil.
	}

	return sb.String()
}

// Name generates a random entity name.
func Name() string {
	return String(8)
}

// MoneyAmountBetween generates a random two-decimal amount of money between min and max.
func MoneyAmountBetween(min, max float64) string {
	return decimal.NewFromFloat(FloatBetween(min, max)).StringFixed(2)
}

// Source generates a random income source label.
func Source() string {
	sources := []string{"Diezmo", "Ofrenda", "Donación", "Venta"}
	return sources[Intn(len(sources))]
}

// Category generates a random outcome category label.
func Category() string {
	categories := []string{"Fijos", "Variables", "Misiones", "Mantenimiento"}
	return categories[Intn(len(categories))]
}

// Date generates a random date within the last year, truncated to a day.
func Date() time.Time {
	days := Intn(365)
	return time.Now().UTC().AddDate(0, 0, -int(days)).Truncate(24 * time.Hour)
}
