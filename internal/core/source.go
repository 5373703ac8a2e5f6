package core

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	"math/rand/v2"
	"time"
)

// Source supplies uniform random values to a session.
// *rand.Rand satisfies it; tests inject fixed sources for exact physics.
type Source interface {
	Float64() float64 // uniform in [0, 1)
	IntN(n int) int   // uniform in [0, n)
}

// NewSource returns a deterministic PCG-backed source for the given seed.
func NewSource(seed int64) Source {
	s := uint64(seed) //nolint:gosec // bit reinterpretation is intended
	return rand.New(rand.NewPCG(s, s^0x9e3779b97f4a7c15))
}

// NewSeed generates a random seed using crypto/rand.
func NewSeed() (int64, error) {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0, fmt.Errorf("read random seed: %w", err)
	}
	return int64(binary.LittleEndian.Uint64(b[:])), nil //nolint:gosec // any bit pattern is a valid seed
}

// Uniform draws a value in [lo, hi] from src.
func Uniform(src Source, lo, hi float64) float64 {
	return lo + src.Float64()*(hi-lo)
}

// Clock is a monotonic time source measured from an arbitrary origin.
type Clock interface {
	Now() time.Duration
}

// StepClock is a simulated clock advanced explicitly by the session step.
type StepClock struct {
	now time.Duration
}

// Now returns the simulated time.
func (c *StepClock) Now() time.Duration {
	return c.now
}

// Advance moves the simulated clock forward.
func (c *StepClock) Advance(d time.Duration) {
	c.now += d
}

// Reset rewinds the clock to zero.
func (c *StepClock) Reset() {
	c.now = 0
}

// WallClock reads real monotonic time since its creation.
type WallClock struct {
	start time.Time
}

// NewWallClock creates a wall clock starting now.
func NewWallClock() *WallClock {
	return &WallClock{start: time.Now()}
}

// Now returns the elapsed wall time.
func (c *WallClock) Now() time.Duration {
	return time.Since(c.start)
}

// Seconds converts a fixed step in seconds to a time.Duration.
func Seconds(s float64) time.Duration {
	return time.Duration(s * float64(time.Second))
}
