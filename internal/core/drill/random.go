package drill

import (
	"math/rand/v2"
	"sync"
)

// Source supplies uniform random integers in [0, n).
type Source interface {
	IntN(n int) int
}

// NewSource returns a goroutine-safe source seeded from the runtime.
func NewSource() Source {
	return &lockedSource{rng: rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))}
}

// NewSeededSource returns a deterministic source.
func NewSeededSource(seed1, seed2 uint64) Source {
	return &lockedSource{rng: rand.New(rand.NewPCG(seed1, seed2))}
}

type lockedSource struct {
	mu  sync.Mutex
	rng *rand.Rand
}

func (source *lockedSource) IntN(n int) int {
	source.mu.Lock()
	defer source.mu.Unlock()
	return source.rng.IntN(n)
}
