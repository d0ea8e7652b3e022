package testutil

import (
	"math/rand"
	"sync"
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
		rand: rand.New(rand.NewSource(seed)), //nolint:gosec // deterministic test data
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

// IntRange returns a pseudo-random number in [lo, hi].
func (r *RNG) IntRange(lo, hi int) int {
	return lo + r.Intn(hi-lo+1)
}

// Byte returns a pseudo-random byte.
func (r *RNG) Byte() byte {
	r.mu.Lock()
	defer r.mu.Unlock()
	return byte(r.rand.Intn(256))
}

// Bytes returns n pseudo-random bytes.
func (r *RNG) Bytes(n int) []byte {
	r.mu.Lock()
	defer r.mu.Unlock()

	p := make([]byte, n)
	_, _ = r.rand.Read(p)
	return p
}

// ASCII returns n pseudo-random printable ASCII characters.
func (r *RNG) ASCII(n int) string {
	r.mu.Lock()
	defer r.mu.Unlock()

	p := make([]byte, n)
	for i := range p {
		p[i] = byte(' ' + r.rand.Intn('~'-' '+1))
	}
	return string(p)
}

// Chunks splits p into consecutive pieces of pseudo-random length in
// [1, maxChunk]. Concatenating the pieces yields p.
func (r *RNG) Chunks(p []byte, maxChunk int) [][]byte {
	var chunks [][]byte
	for len(p) > 0 {
		n := min(r.IntRange(1, maxChunk), len(p))
		chunks = append(chunks, p[:n])
		p = p[n:]
	}
	return chunks
}
