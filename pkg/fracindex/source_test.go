package fracindex

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
	"golang.org/x/sync/errgroup"
)

func TestSeededGeneratorsReproduce(t *testing.T) {
	t.Parallel()

	run := func() []string {
		g := newTestGenerator(t, WithSource(NewSeededSource(42)))
		var out []string
		for _, call := range []func() ([]string, error){
			func() ([]string, error) { return g.GenerateMany("", "", 3) },
			func() ([]string, error) { return g.GenerateMany("0.001", "0.002", 5) },
			func() ([]string, error) { return g.GenerateRelocation("0.1", "0.2", 4, true) },
		} {
			got, err := call()
			require.NoError(t, err)
			out = append(out, got...)
		}
		return out
	}

	if diff := cmp.Diff(run(), run()); diff != "" {
		t.Errorf("seeded runs differ (-first +second):\n%s", diff)
	}
}

func TestLockedSourceConcurrentUse(t *testing.T) {
	t.Parallel()

	g := newTestGenerator(t, WithSource(NewLockedSource(NewSeededSource(7))))

	var eg errgroup.Group
	results := make([][]string, 8)
	for w := range results {
		eg.Go(func() error {
			for i := 0; i < 200; i++ {
				v, err := g.Generate("0.001", "0.002")
				if err != nil {
					return err
				}
				results[w] = append(results[w], v)
			}
			return nil
		})
	}
	require.NoError(t, eg.Wait())

	for _, vs := range results {
		require.Len(t, vs, 200)
		for _, v := range vs {
			requireBetween(t, v, "0.001", "0.002")
		}
	}
}

func TestBoundaryGuardFallsBackToMidpoint(t *testing.T) {
	t.Parallel()

	// jitter reaching to within (0.5-0.4999999)*gap = 1e-10 of a bound, with a
	// required margin of 1e-9, so the lowest draws land inside the margin
	cfg := DefaultConfig()
	cfg.BetweenJitter = "0.4999999"
	cfg.Epsilon = "1e-9"

	tests := []struct {
		name     string
		draw     float64
		want     string
		warnings int
	}{
		{name: "lowest draw is inside the margin", draw: 0, want: "0.001500000000000", warnings: 1},
		{name: "middle draw keeps its candidate", draw: 0.5, want: "0.001500000000000", warnings: 0},
		{name: "draw clear of the margin", draw: 0.25, want: "0.001250000050000", warnings: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			core, logs := observer.New(zapcore.DebugLevel)
			g := newTestGenerator(t, WithConfig(cfg), WithSource(fixedSource{f: tt.draw}), WithLogger(zap.New(core)))

			v, err := g.Generate("0.001", "0.002")
			require.NoError(t, err)
			require.Equal(t, tt.want, v)

			warnings := logs.FilterMessage("jitter crossed boundary, falling back to midpoint").All()
			require.Len(t, warnings, tt.warnings)
			for _, w := range warnings {
				require.Equal(t, zapcore.WarnLevel, w.Level)
				require.Equal(t, "fracindex", w.LoggerName)
				require.Equal(t, "0.001", w.ContextMap()["prev"])
				require.Equal(t, "0.002", w.ContextMap()["next"])
				require.Equal(t, "0.0010000001", w.ContextMap()["candidate"])
			}
		})
	}
}

func TestTinyGapEmitsDebugEvent(t *testing.T) {
	t.Parallel()

	core, logs := observer.New(zapcore.DebugLevel)
	g := newTestGenerator(t, WithLogger(zap.New(core)))

	_, err := g.Generate("0.5", "0.50000000001")
	require.NoError(t, err)
	require.Equal(t, 1, logs.FilterMessage("gap below safe threshold, using exact midpoint").Len())
	require.Zero(t, logs.FilterLevelExact(zapcore.WarnLevel).Len())
}

func TestNewDefaultsAreSilent(t *testing.T) {
	t.Parallel()

	g, err := New(WithSource(nil), WithLogger(nil))
	require.NoError(t, err)
	_, err = g.Generate("0.001", "0.002")
	require.NoError(t, err)
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	cfg.BetweenJitter = "0.5"
	_, err := New(WithConfig(cfg))
	require.ErrorIs(t, err, ErrInvalidConfig)

	require.Panics(t, func() { MustNew(WithConfig(cfg)) })
}

func TestCustomConfig(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	cfg.StepSize = "1"
	cfg.FreeJitter = "0"
	cfg.BetweenPlaces = 20
	g := newTestGenerator(t, WithConfig(cfg), WithSource(fixedSource{f: 0.5}))

	v, err := g.Generate("", "")
	require.NoError(t, err)
	require.Equal(t, "0.5000000000", v)

	v, err = g.Generate("4", "")
	require.NoError(t, err)
	require.Equal(t, "5.0000000000", v)

	v, err = g.Generate("1", "2")
	require.NoError(t, err)
	require.Equal(t, "1.50000000000000000000", v)
}
