package core

import (
	"testing"
	"time"
)

func TestNewSourceDeterministic(t *testing.T) {
	a := NewSource(42)
	b := NewSource(42)

	for i := 0; i < 100; i++ {
		if a.Float64() != b.Float64() {
			t.Fatalf("sources with equal seeds diverged at draw %d", i)
		}
		if a.IntN(16) != b.IntN(16) {
			t.Fatalf("IntN diverged at draw %d", i)
		}
	}
}

func TestUniformRange(t *testing.T) {
	src := NewSource(7)
	for i := 0; i < 1000; i++ {
		v := Uniform(src, -0.5, 0.25)
		if v < -0.5 || v > 0.25 {
			t.Fatalf("Uniform() = %f, outside [-0.5, 0.25]", v)
		}
	}
}

func TestStepClock(t *testing.T) {
	var c StepClock
	c.Advance(16 * time.Millisecond)
	c.Advance(16 * time.Millisecond)

	if c.Now() != 32*time.Millisecond {
		t.Errorf("Now() = %v, expected 32ms", c.Now())
	}

	c.Reset()
	if c.Now() != 0 {
		t.Errorf("Reset should rewind to zero, got %v", c.Now())
	}
}

func TestWallClockAdvances(t *testing.T) {
	c := NewWallClock()
	first := c.Now()
	time.Sleep(2 * time.Millisecond)
	if second := c.Now(); first < 0 || second < first+2*time.Millisecond {
		t.Errorf("Now() went %v -> %v", first, second)
	}
}

func TestSeconds(t *testing.T) {
	if got := Seconds(0.016); got != 16*time.Millisecond {
		t.Errorf("Seconds(0.016) = %v, expected 16ms", got)
	}
}

func TestNewSeed(t *testing.T) {
	if _, err := NewSeed(); err != nil {
		t.Fatalf("NewSeed() failed: %v", err)
	}
}
