package core

import (
	"testing"
	"time"
)

func TestRNGSeedIsReproducible(t *testing.T) {
	a, b := NewRNG(7), NewRNG(7)
	for i := 0; i < 64; i++ {
		if a.Bool() != b.Bool() {
			t.Fatalf("draw %d differs for equal seeds", i)
		}
	}
	if a.Seed() != 7 {
		t.Fatalf("Seed() = %d, want 7", a.Seed())
	}
}

func TestRNGZeroSeedPicksOne(t *testing.T) {
	if NewRNG(0).Seed() == 0 {
		t.Fatal("zero seed should be replaced")
	}
}

func TestByteGridPushScrolls(t *testing.T) {
	g := NewByteGrid(3, 2)
	if g.Push([]uint8{1, 0, 1}) {
		t.Fatal("first push should not scroll")
	}
	g.Push([]uint8{0, 1})
	if g.Filled() != 2 {
		t.Fatalf("Filled() = %d, want 2", g.Filled())
	}
	if !g.Push([]uint8{1, 1, 1, 1}) {
		t.Fatal("push into a full grid should scroll")
	}
	want := []uint8{0, 1, 0, 1, 1, 1}
	for i, c := range g.Cells() {
		if c != want[i] {
			t.Fatalf("cells = %v, want %v", g.Cells(), want)
		}
	}
	g.Clear()
	if g.Filled() != 0 || g.Cells()[4] != 0 {
		t.Fatal("Clear should reset the grid")
	}
}

func TestFixedStepPacing(t *testing.T) {
	clock := time.Unix(0, 0)
	fs := NewFixedStep(100 * time.Millisecond)
	fs.now = func() time.Time { return clock }

	if !fs.ShouldStep() {
		t.Fatal("first call should fire")
	}
	clock = clock.Add(50 * time.Millisecond)
	if fs.ShouldStep() {
		t.Fatal("fired before the step elapsed")
	}
	clock = clock.Add(50 * time.Millisecond)
	if !fs.ShouldStep() {
		t.Fatal("did not fire after the step elapsed")
	}
}

func TestFixedStepZeroAlwaysFires(t *testing.T) {
	fs := NewFixedStep(0)
	for i := 0; i < 3; i++ {
		if !fs.ShouldStep() {
			t.Fatal("zero step should always fire")
		}
	}
}
