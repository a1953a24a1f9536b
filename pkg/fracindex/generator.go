package fracindex

import (
	"fmt"

	"go.uber.org/zap"
)

// Generator produces fractional indexes. It holds no state besides its
// configuration, so a Generator is safe for concurrent use whenever its
// Source is.
type Generator struct {
	p   params
	rnd Source
	log *zap.Logger
}

// Option configures a Generator.
type Option func(*options)

type options struct {
	cfg    Config
	src    Source
	logger *zap.Logger
}

// WithConfig replaces DefaultConfig.
func WithConfig(cfg Config) Option {
	return func(o *options) { o.cfg = cfg }
}

// WithSource sets the random source. The default draws from math/rand/v2.
func WithSource(src Source) Option {
	return func(o *options) { o.src = src }
}

// WithLogger sets the logger for diagnostic events. The default is a no-op logger.
func WithLogger(logger *zap.Logger) Option {
	return func(o *options) { o.logger = logger }
}

// New builds a Generator. It fails only if the supplied Config is invalid.
func New(opts ...Option) (*Generator, error) {
	o := options{
		cfg:    DefaultConfig(),
		src:    globalSource{},
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.src == nil {
		o.src = globalSource{}
	}
	if o.logger == nil {
		o.logger = zap.NewNop()
	}

	p, err := o.cfg.compile()
	if err != nil {
		return nil, err
	}

	return &Generator{
		p:   p,
		rnd: o.src,
		log: o.logger.Named("fracindex"),
	}, nil
}

// MustNew is like New but panics on an invalid Config.
func MustNew(opts ...Option) *Generator {
	g, err := New(opts...)
	if err != nil {
		panic(fmt.Sprintf("fracindex: %v", err))
	}
	return g
}
