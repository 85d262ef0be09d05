// Package testutil provides shared helpers for tests: a seeded,
// thread-safe random number generator and rectangle generation inside a
// bounded world.
package testutil

import (
	"math/rand"
	"sync"

	"github.com/hupe1980/rectgo/geo"
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

// Float32 returns, as a float32, a pseudo-random number in [0.0,1.0).
func (r *RNG) Float32() float32 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Float32()
}

// Float32Range returns a pseudo-random number in [minVal, maxVal).
func (r *RNG) Float32Range(minVal, maxVal float32) float32 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return minVal + r.rand.Float32()*(maxVal-minVal)
}

// Point returns a pseudo-random point inside world.
func (r *RNG) Point(world geo.Rect) (x, y float32) {
	r.mu.Lock()
	defer r.mu.Unlock()
	x = world.X1 + r.rand.Float32()*(world.X2-world.X1)
	y = world.Y1 + r.rand.Float32()*(world.Y2-world.Y1)
	return x, y
}

// Rect returns a pseudo-random rectangle whose lower-left corner lies
// inside world and whose width and height are at most maxExtent. The
// rectangle may extend past the world's upper-right corner.
func (r *RNG) Rect(world geo.Rect, maxExtent float32) geo.Rect {
	r.mu.Lock()
	defer r.mu.Unlock()
	x := world.X1 + r.rand.Float32()*(world.X2-world.X1)
	y := world.Y1 + r.rand.Float32()*(world.Y2-world.Y1)
	w := r.rand.Float32() * maxExtent
	h := r.rand.Float32() * maxExtent
	return geo.NewRect(x, y, x+w, y+h)
}

// Rects returns n pseudo-random rectangles via Rect.
func (r *RNG) Rects(n int, world geo.Rect, maxExtent float32) []geo.Rect {
	out := make([]geo.Rect, n)
	for i := range out {
		out[i] = r.Rect(world, maxExtent)
	}
	return out
}
