package fracindex

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"pkg.jsn.cam/fracindex/internal/decimalx"
)

// Config holds the generator tuning knobs. Decimal values are kept as strings
// so they round-trip through YAML without passing through float64.
type Config struct {
	// Default spacing for empty-collection and tail insertions (S).
	StepSize string `yaml:"step_size"`
	// Gaps at or below this get an exact midpoint with no jitter.
	MinSafeGap string `yaml:"min_safe_gap"`
	// Margin a jittered candidate must keep from both bounds.
	Epsilon string `yaml:"epsilon"`

	// Absolute jitter ceiling for empty-collection and tail insertions.
	FreeJitter string `yaml:"free_jitter"`
	// Head-insertion jitter ceiling as a fraction of the baseline.
	HeadJitter string `yaml:"head_jitter"`
	// Between-insertion jitter half-width as a fraction of the gap.
	BetweenJitter string `yaml:"between_jitter"`

	FreePlaces       int32 `yaml:"free_places"`
	BetweenPlaces    int32 `yaml:"between_places"`
	RelocationPlaces int32 `yaml:"relocation_places"`
}

// DefaultConfig returns the standard constants.
func DefaultConfig() Config {
	return Config{
		StepSize:         "0.001",
		MinSafeGap:       "1e-10",
		Epsilon:          "1e-15",
		FreeJitter:       "0.0001",
		HeadJitter:       "0.1",
		BetweenJitter:    "0.25",
		FreePlaces:       10,
		BetweenPlaces:    15,
		RelocationPlaces: 5,
	}
}

// ParseConfig decodes YAML on top of DefaultConfig and validates the result.
// Unknown keys are rejected.
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if len(bytes.TrimSpace(data)) == 0 {
		return cfg, nil
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadConfig reads and parses a YAML config file.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config: %w", err)
	}
	return ParseConfig(data)
}

// Validate checks that the values keep every generated index inside its bounds.
func (c Config) Validate() error {
	_, err := c.compile()
	return err
}

// params is the parsed form of Config used by the generators.
type params struct {
	step          decimal.Decimal
	minSafeGap    decimal.Decimal
	epsilon       decimal.Decimal
	freeJitter    decimal.Decimal
	headJitter    decimal.Decimal
	betweenJitter decimal.Decimal

	freePlaces       int32
	betweenPlaces    int32
	relocationPlaces int32
}

func (c Config) compile() (params, error) {
	var p params
	fields := []struct {
		name string
		raw  string
		dst  *decimal.Decimal
	}{
		{"step_size", c.StepSize, &p.step},
		{"min_safe_gap", c.MinSafeGap, &p.minSafeGap},
		{"epsilon", c.Epsilon, &p.epsilon},
		{"free_jitter", c.FreeJitter, &p.freeJitter},
		{"head_jitter", c.HeadJitter, &p.headJitter},
		{"between_jitter", c.BetweenJitter, &p.betweenJitter},
	}
	for _, f := range fields {
		d, err := decimalx.Parse(f.raw)
		if err != nil {
			return params{}, fmt.Errorf("%w: %s %q: %v", ErrInvalidConfig, f.name, f.raw, err)
		}
		if d.IsNegative() {
			return params{}, fmt.Errorf("%w: %s must not be negative", ErrInvalidConfig, f.name)
		}
		*f.dst = d
	}

	switch {
	case !p.step.IsPositive():
		return params{}, fmt.Errorf("%w: step_size must be positive", ErrInvalidConfig)
	case !p.minSafeGap.IsPositive():
		return params{}, fmt.Errorf("%w: min_safe_gap must be positive", ErrInvalidConfig)
	case p.freeJitter.GreaterThan(p.step.Mul(decimalx.Half)):
		// empty-collection values must stay below step_size
		return params{}, fmt.Errorf("%w: free_jitter must not exceed half of step_size", ErrInvalidConfig)
	case p.headJitter.GreaterThanOrEqual(decimal.NewFromInt(1)):
		return params{}, fmt.Errorf("%w: head_jitter must be below 1", ErrInvalidConfig)
	case p.betweenJitter.GreaterThanOrEqual(decimalx.Half):
		return params{}, fmt.Errorf("%w: between_jitter must be below 0.5", ErrInvalidConfig)
	}

	places := []struct {
		name string
		v    int32
	}{
		{"free_places", c.FreePlaces},
		{"between_places", c.BetweenPlaces},
		{"relocation_places", c.RelocationPlaces},
	}
	for _, pl := range places {
		if pl.v < 1 || pl.v > maxPlaces {
			return params{}, fmt.Errorf("%w: %s must be in [1, %d]", ErrInvalidConfig, pl.name, maxPlaces)
		}
	}
	p.freePlaces = c.FreePlaces
	p.betweenPlaces = c.BetweenPlaces
	p.relocationPlaces = c.RelocationPlaces

	return p, nil
}

const maxPlaces = 40
