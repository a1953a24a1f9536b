package fracindex

import (
	"fmt"
	"slices"
	"strings"

	"github.com/shopspring/decimal"

	"pkg.jsn.cam/fracindex/internal/decimalx"
)

// Parse parses an index.
func Parse(s string) (decimal.Decimal, error) {
	d, err := decimalx.Parse(s)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("%w: %q: %v", ErrMalformedIndex, s, err)
	}
	return d, nil
}

// Compare returns -1, 0 or +1 as a is numerically below, equal to or above b.
// Numeric comparison is the ordering contract for indexes; string comparison
// does not match it (see the package documentation).
func Compare(a, b string) (int, error) {
	da, err := Parse(a)
	if err != nil {
		return 0, err
	}
	db, err := Parse(b)
	if err != nil {
		return 0, err
	}
	return da.Cmp(db), nil
}

// Less reports whether a sorts before b. Malformed indexes sort after
// well-formed ones and compare as strings among themselves.
func Less(a, b string) bool {
	da, errA := Parse(a)
	db, errB := Parse(b)
	switch {
	case errA != nil && errB != nil:
		return a < b
	case errA != nil:
		return false
	case errB != nil:
		return true
	}
	return da.LessThan(db)
}

// Sort sorts indexes numerically in place. Equal values keep their order.
func Sort(indexes []string) error {
	parsed := make(map[string]decimal.Decimal, len(indexes))
	for _, s := range indexes {
		d, err := Parse(s)
		if err != nil {
			return err
		}
		parsed[s] = d
	}
	slices.SortStableFunc(indexes, func(a, b string) int {
		return parsed[a].Cmp(parsed[b])
	})
	return nil
}

const sortKeyIntDigits = 20

// SortKey encodes a non-negative index so that bytewise key order matches
// numeric order: the integer part zero-padded to 20 digits, then the fraction
// without trailing zeros.
func SortKey(s string) ([]byte, error) {
	d, err := Parse(s)
	if err != nil {
		return nil, err
	}
	if d.IsNegative() {
		return nil, fmt.Errorf("%w: sort key needs a non-negative index, got %q", ErrMalformedIndex, s)
	}

	intPart, frac, _ := strings.Cut(d.String(), ".")
	if len(intPart) > sortKeyIntDigits {
		return nil, fmt.Errorf("%w: %q exceeds %d integer digits", ErrMalformedIndex, s, sortKeyIntDigits)
	}

	var b strings.Builder
	b.Grow(sortKeyIntDigits + 1 + len(frac))
	b.WriteString(strings.Repeat("0", sortKeyIntDigits-len(intPart)))
	b.WriteString(intPart)
	if frac != "" {
		b.WriteByte('.')
		b.WriteString(frac)
	}
	return []byte(b.String()), nil
}
