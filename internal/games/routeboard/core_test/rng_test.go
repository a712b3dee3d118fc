package core_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/vovakirdan/routeboard/internal/games/routeboard/core"
)

func TestRandKnownSequence(t *testing.T) {
	r := core.NewRand(1)
	if got := r.Next(); got != 270369 {
		t.Errorf("first Next() from seed 1 = %d, want 270369", got)
	}
}

func TestRandZeroSeedBecomesOne(t *testing.T) {
	a := core.NewRand(0)
	b := core.NewRand(1)
	for i := 0; i < 10; i++ {
		if x, y := a.Next(), b.Next(); x != y {
			t.Fatalf("step %d: seed 0 gave %d, seed 1 gave %d", i, x, y)
		}
	}
}

func TestRandNeverZero(t *testing.T) {
	r := core.NewRand(0xA53)
	for i := 0; i < 100000; i++ {
		if r.Next() == 0 {
			t.Fatalf("Next() returned 0 at step %d", i)
		}
	}
}

func TestRandRange(t *testing.T) {
	r := core.NewRand(7)
	for _, n := range []int{1, 2, 4, 10, 100} {
		for i := 0; i < 1000; i++ {
			v := r.Range(n)
			if v < 0 || v >= n {
				t.Fatalf("Range(%d) = %d, out of bounds", n, v)
			}
		}
	}
	if v := r.Range(0); v != 0 {
		t.Errorf("Range(0) = %d, want 0", v)
	}
}

func TestRandDeterministic(t *testing.T) {
	seq := func(seed uint32) []int {
		r := core.NewRand(seed)
		out := make([]int, 50)
		for i := range out {
			out[i] = r.Range(100)
		}
		return out
	}
	if diff := cmp.Diff(seq(12345), seq(12345)); diff != "" {
		t.Errorf("same seed produced different sequences (-first +second):\n%s", diff)
	}
}

func TestShuffleIsPermutation(t *testing.T) {
	r := core.NewRand(99)
	cells := r.Shuffle()
	seen := make(map[int]bool, core.Cells)
	for _, idx := range cells {
		if idx < 0 || idx >= core.Cells {
			t.Fatalf("index %d out of range", idx)
		}
		if seen[idx] {
			t.Fatalf("index %d appears twice", idx)
		}
		seen[idx] = true
	}
}
