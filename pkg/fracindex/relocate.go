package fracindex

import (
	"fmt"
	"strconv"

	"github.com/shopspring/decimal"

	"pkg.jsn.cam/fracindex/internal/decimalx"
)

const (
	suffixMin    = 10000
	suffixMax    = 99999 // exclusive
	suffixDigits = 5

	// the step must span at least 10^stepHeadroom units of the last position digit
	stepHeadroom = 1
)

// GenerateRelocation returns count strictly increasing indexes for items being
// moved into the gap between prev and next.
//
// With distributeEvenly the items are spaced evenly across the gap. A missing
// prev counts as 0 and a missing next as prev + count*S. Each position is
// rounded to a resolution fine enough for the step (at least five decimals)
// and followed by five random digits, so two relocation batches aimed at the
// same gap are unlikely to collide. Without distributeEvenly this is
// GenerateMany.
func (g *Generator) GenerateRelocation(prev, next string, count int, distributeEvenly bool) ([]string, error) {
	if count <= 0 {
		return []string{}, nil
	}

	lo, err := parseBound("prev", prev)
	if err != nil {
		return nil, err
	}
	hi, err := parseBound("next", next)
	if err != nil {
		return nil, err
	}

	if count == 1 {
		s, err := g.generate(lo, hi)
		if err != nil {
			return nil, err
		}
		return []string{s}, nil
	}
	if !distributeEvenly {
		return g.generateMany(lo, hi, count)
	}
	return g.distribute(lo, hi, count)
}

func (g *Generator) distribute(lo, hi *decimal.Decimal, count int) ([]string, error) {
	n := decimal.NewFromInt(int64(count))

	start := decimal.Zero
	if lo != nil {
		start = *lo
	}
	end := start.Add(g.p.step.Mul(n))
	if hi != nil {
		end = *hi
	}
	if start.GreaterThanOrEqual(end) {
		return nil, fmt.Errorf("%w: %s >= %s", ErrInvalidRange, start, end)
	}

	// The step is kept exact to a few digits below the finest resolution
	// PlacesFor can pick for this gap, so accumulated rounding over count
	// positions stays under one unit of the last position digit.
	gap := end.Sub(start)
	slots := int32(len(strconv.Itoa(count + 1)))
	divPlaces := max(2*maxPlaces, -decimalx.FloorLog10(gap)+2*slots+suffixDigits)
	step := gap.DivRound(n.Add(decimal.NewFromInt(1)), divPlaces)
	places := decimalx.PlacesFor(step, g.p.relocationPlaces, stepHeadroom)
	suffixUnit := decimal.New(1, -(places + suffixDigits))

	out := make([]string, 0, count)
	for i := 1; i <= count; i++ {
		pos := start.Add(step.Mul(decimal.NewFromInt(int64(i)))).Round(places)
		suffix := decimal.NewFromInt(int64(suffixMin + g.rnd.IntN(suffixMax-suffixMin)))
		out = append(out, pos.Add(suffix.Mul(suffixUnit)).StringFixed(places+suffixDigits))
	}
	return out, nil
}
