package fracindex

import (
	"fmt"

	"github.com/shopspring/decimal"

	"pkg.jsn.cam/fracindex/internal/decimalx"
)

// GenerateMany returns count strictly increasing indexes between prev and next.
// The first is generated between the bounds, and each following one between
// its predecessor and next, so the remaining gap narrows along the batch.
// Long batches eventually reach exact midpoints without jitter.
func (g *Generator) GenerateMany(prev, next string, count int) ([]string, error) {
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
	return g.generateMany(lo, hi, count)
}

func (g *Generator) generateMany(lo, hi *decimal.Decimal, count int) ([]string, error) {
	out := make([]string, 0, count)
	for i := 0; i < count; i++ {
		s, err := g.generate(lo, hi)
		if err != nil {
			return nil, err
		}
		out = append(out, s)

		d, err := decimalx.Parse(s)
		if err != nil {
			return nil, fmt.Errorf("reparse generated index %q: %w", s, err)
		}
		lo = &d
	}
	return out, nil
}
