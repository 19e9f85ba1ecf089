package games

import (
	"math/rand"
	"sync"
	"time"
)

// Rand is the shared uniform randomness source for all variants. This is
// entertainment randomness, not security randomness, so a seeded math/rand
// generator is sufficient; the mutex makes the shared instance safe for
// concurrent play requests.
type Rand struct {
	mu sync.Mutex
	r  *rand.Rand
}

// NewRand creates a randomness source from the given seed.
func NewRand(seed int64) *Rand {
	return &Rand{r: rand.New(rand.NewSource(seed))}
}

// NewTimeSeededRand creates a randomness source seeded from the clock.
func NewTimeSeededRand() *Rand {
	return NewRand(time.Now().UnixNano())
}

// Intn returns a uniform int in [0, n).
func (r *Rand) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.r.Intn(n)
}

// Shuffle pseudo-randomizes the order of n elements.
func (r *Rand) Shuffle(n int, swap func(i, j int)) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.r.Shuffle(n, swap)
}

// Sample draws k distinct ints from [1, n] without replacement.
func (r *Rand) Sample(n, k int) []int {
	r.mu.Lock()
	defer r.mu.Unlock()
	picked := r.r.Perm(n)[:k]
	out := make([]int, k)
	for i, v := range picked {
		out[i] = v + 1
	}
	return out
}
