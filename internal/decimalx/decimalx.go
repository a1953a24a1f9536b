// Package decimalx holds the decimal parsing and fixed-precision formatting
// shared by the index generators.
package decimalx

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Half is exactly 0.5, so halving never goes through division precision.
var Half = decimal.New(5, -1)

// Parse parses a plain or exponent-form decimal string.
func Parse(s string) (decimal.Decimal, error) {
	return decimal.NewFromString(strings.TrimSpace(s))
}

// Interval is an open interval. A nil end is unbounded on that side.
type Interval struct {
	Lo *decimal.Decimal
	Hi *decimal.Decimal
}

// Contains reports whether lo < v < hi.
func (iv Interval) Contains(v decimal.Decimal) bool {
	if iv.Lo != nil && v.LessThanOrEqual(*iv.Lo) {
		return false
	}
	if iv.Hi != nil && v.GreaterThanOrEqual(*iv.Hi) {
		return false
	}
	return true
}

// FixedInside formats v with places decimals. If rounding to places would put
// the result on or outside iv, precision is widened to the point where the
// rounding error is smaller than v's distance to the nearer bound. v itself
// must lie inside iv. It returns the string and the number of decimals used.
func FixedInside(v decimal.Decimal, iv Interval, places int32) (string, int32) {
	if r := v.Round(places); iv.Contains(r) {
		return r.StringFixed(places), places
	}

	p := -v.Exponent()
	var margin *decimal.Decimal
	if iv.Lo != nil {
		d := v.Sub(*iv.Lo)
		margin = &d
	}
	if iv.Hi != nil {
		d := iv.Hi.Sub(v)
		if margin == nil || d.LessThan(*margin) {
			margin = &d
		}
	}
	if margin != nil && margin.IsPositive() {
		// rounding moves v by at most 10^-p / 2, less than margin
		p = min(p, placesBelow(*margin))
	}
	p = max(p, places)
	return v.Round(p).StringFixed(p), p
}

// PlacesFor returns the smallest p >= minPlaces such that step >= 10^-(p-headroom).
// It is used to pick a resolution fine enough that neighbouring positions
// spaced step apart stay distinct after rounding.
func PlacesFor(step decimal.Decimal, minPlaces, headroom int32) int32 {
	if !step.IsPositive() {
		return minPlaces
	}
	return max(minPlaces, headroom-FloorLog10(step))
}

// FloorLog10 returns floor(log10(d)) for d > 0.
func FloorLog10(d decimal.Decimal) int32 {
	c := d.Coefficient()
	digits := int32(len(c.Abs(c).String()))
	return d.Exponent() + digits - 1
}

// placesBelow returns the smallest p with 10^-p < d, for d > 0.
func placesBelow(d decimal.Decimal) int32 {
	x := FloorLog10(d)
	if d.Equal(decimal.New(1, x)) {
		return -x + 1
	}
	return -x
}
