package weight

import (
	"math/rand/v2"
	"sync"
	"time"
)

// RandomSource draws the perturbation applied to typical weights.
type RandomSource interface {
	// NextUniform returns a value in [low, high].
	NextUniform(low, high float64) float64
}

type lockedSource struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewSeededSource returns a goroutine-safe source whose sequence is fully
// determined by seed.
func NewSeededSource(seed uint64) RandomSource {
	return &lockedSource{rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

// NewTimeSource returns a goroutine-safe source seeded from the wall clock.
func NewTimeSource() RandomSource {
	return NewSeededSource(uint64(time.Now().UnixNano()))
}

func (s *lockedSource) NextUniform(low, high float64) float64 {
	s.mu.Lock()
	f := s.rng.Float64()
	s.mu.Unlock()
	return low + (high-low)*f
}
