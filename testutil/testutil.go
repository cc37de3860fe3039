package testutil

import (
	"math/rand"
	"sync"

	"github.com/hupe1980/colgo/runs"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Bool returns a pseudo-random bool.
func (r *RNG) Bool() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(2) == 1
}

// RandomRuns generates a well-formed run list over a source of sourceRows
// rows, with up to maxRuns runs of up to maxCount repeats each. It returns
// the list and the total output row count it describes.
func (r *RNG) RandomRuns(sourceRows, maxRuns, maxCount int) (runs.List, int) {
	r.mu.Lock()
	defer r.mu.Unlock()

	n := 1 + r.rand.Intn(maxRuns)
	list := make(runs.List, n)
	total := 0
	for i := range list {
		cnt := 1 + r.rand.Intn(maxCount)
		list[i] = runs.Run{
			Index: uint32(r.rand.Intn(sourceRows)),
			Count: uint32(cnt),
		}
		total += cnt
	}
	return list, total
}

// RandomInt64s generates n pseudo-random int64 values.
func (r *RNG) RandomInt64s(n int) []int64 {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]int64, n)
	for i := range out {
		out[i] = r.rand.Int63()
	}
	return out
}

// RandomBools generates n pseudo-random bools.
func (r *RNG) RandomBools(n int) []bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]bool, n)
	for i := range out {
		out[i] = r.rand.Intn(2) == 1
	}
	return out
}

// RandomStrings generates n pseudo-random strings of up to maxLen bytes.
func (r *RNG) RandomStrings(n, maxLen int) []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	const alphabet = "abcdefghijklmnopqrstuvwxyz0123456789"
	out := make([]string, n)
	for i := range out {
		b := make([]byte, r.rand.Intn(maxLen+1))
		for j := range b {
			b[j] = alphabet[r.rand.Intn(len(alphabet))]
		}
		out[i] = string(b)
	}
	return out
}
