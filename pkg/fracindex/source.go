package fracindex

import (
	"math/rand/v2"
	"sync"
)

// Source supplies the randomness for jitter and relocation suffixes.
// *rand.Rand from math/rand/v2 satisfies it.
type Source interface {
	// Float64 returns a uniform value in [0, 1).
	Float64() float64
	// IntN returns a uniform value in [0, n).
	IntN(n int) int
}

// globalSource draws from the math/rand/v2 package functions, which are safe
// for concurrent use.
type globalSource struct{}

func (globalSource) Float64() float64 { return rand.Float64() }
func (globalSource) IntN(n int) int   { return rand.IntN(n) }

// NewSeededSource returns a deterministic PCG-backed source. It is not safe for
// concurrent use; wrap it with NewLockedSource when sharing it.
func NewSeededSource(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// LockedSource serializes access to an underlying Source.
type LockedSource struct {
	mu  sync.Mutex
	src Source
}

// NewLockedSource wraps src so that it can be shared between goroutines.
func NewLockedSource(src Source) *LockedSource {
	return &LockedSource{src: src}
}

// Float64 calls the underlying Source under the lock.
func (s *LockedSource) Float64() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.src.Float64()
}

// IntN calls the underlying Source under the lock.
func (s *LockedSource) IntN(n int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.src.IntN(n)
}
