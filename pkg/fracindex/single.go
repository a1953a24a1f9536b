package fracindex

import (
	"fmt"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"pkg.jsn.cam/fracindex/internal/decimalx"
)

// Generate returns a new index strictly between prev and next. Either bound
// may be empty, meaning absent:
//
//	prev  next  result
//	 -     -    first index of an empty collection, in (0, S)
//	 -     x    head insertion, in (0, x)
//	 x     -    tail insertion, above x by about S
//	 x     y    between insertion, in (x, y)
//
// The only failure besides malformed input is ErrInvalidRange.
func (g *Generator) Generate(prev, next string) (string, error) {
	lo, err := parseBound("prev", prev)
	if err != nil {
		return "", err
	}
	hi, err := parseBound("next", next)
	if err != nil {
		return "", err
	}
	return g.generate(lo, hi)
}

func (g *Generator) generate(lo, hi *decimal.Decimal) (string, error) {
	switch {
	case lo == nil && hi == nil:
		return g.first(), nil
	case lo == nil:
		return g.head(*hi)
	case hi == nil:
		return g.tail(*lo), nil
	default:
		return g.between(*lo, *hi)
	}
}

// first places the only element of an empty collection at S/2 plus jitter.
func (g *Generator) first() string {
	v := g.p.step.Mul(decimalx.Half).Add(g.uniform(g.p.freeJitter))
	zero := decimal.Zero
	return g.format(v, decimalx.Interval{Lo: &zero, Hi: &g.p.step}, g.p.freePlaces)
}

func (g *Generator) head(hi decimal.Decimal) (string, error) {
	if !hi.IsPositive() {
		return "", fmt.Errorf("%w: head insertion needs next > 0, got %s", ErrInvalidRange, hi)
	}

	base := decimal.Min(g.p.step.Mul(decimalx.Half), hi.Mul(decimalx.Half))
	v := base.Add(g.uniform(base.Mul(g.p.headJitter)))
	zero := decimal.Zero
	return g.format(v, decimalx.Interval{Lo: &zero, Hi: &hi}, g.p.freePlaces), nil
}

func (g *Generator) tail(lo decimal.Decimal) string {
	v := lo.Add(g.p.step).Add(g.uniform(g.p.freeJitter))
	return g.format(v, decimalx.Interval{Lo: &lo}, g.p.freePlaces)
}

func (g *Generator) between(lo, hi decimal.Decimal) (string, error) {
	gap := hi.Sub(lo)
	if !gap.IsPositive() {
		return "", fmt.Errorf("%w: %s >= %s", ErrInvalidRange, lo, hi)
	}

	iv := decimalx.Interval{Lo: &lo, Hi: &hi}
	mid := lo.Add(gap.Mul(decimalx.Half))

	// Any offset this close to the bounds could round onto one of them.
	if gap.LessThanOrEqual(g.p.minSafeGap) {
		g.log.Debug("gap below safe threshold, using exact midpoint",
			zap.Stringer("prev", lo),
			zap.Stringer("next", hi),
			zap.Stringer("gap", gap))
		return g.format(mid, iv, g.p.betweenPlaces), nil
	}

	// jitter in [-bj*gap, +bj*gap)
	width := gap.Mul(g.p.betweenJitter)
	candidate := mid.Sub(width).Add(g.uniform(width.Add(width)))

	if candidate.LessThanOrEqual(lo.Add(g.p.epsilon)) || candidate.GreaterThanOrEqual(hi.Sub(g.p.epsilon)) {
		g.log.Warn("jitter crossed boundary, falling back to midpoint",
			zap.Stringer("prev", lo),
			zap.Stringer("next", hi),
			zap.Stringer("candidate", candidate))
		candidate = mid
	}

	return g.format(candidate, iv, g.p.betweenPlaces), nil
}

// uniform draws a value in [0, ceiling).
func (g *Generator) uniform(ceiling decimal.Decimal) decimal.Decimal {
	if ceiling.IsZero() {
		return decimal.Zero
	}
	return ceiling.Mul(decimal.NewFromFloat(g.rnd.Float64()))
}

func (g *Generator) format(v decimal.Decimal, iv decimalx.Interval, places int32) string {
	s, used := decimalx.FixedInside(v, iv, places)
	if used != places {
		g.log.Debug("widened precision to stay inside bounds",
			zap.Stringer("value", v),
			zap.Int32("places", used))
	}
	return s
}

func parseBound(name, s string) (*decimal.Decimal, error) {
	if s == "" {
		return nil, nil
	}
	d, err := decimalx.Parse(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %s %q: %v", ErrMalformedIndex, name, s, err)
	}
	return &d, nil
}
