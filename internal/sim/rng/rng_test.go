package rng

import "testing"

func TestBetweenInclusive(t *testing.T) {
	src := New(1)
	seen := map[int]bool{}
	for i := 0; i < 1000; i++ {
		v := src.Between(2, 5)
		if v < 2 || v > 5 {
			t.Fatalf("Between(2, 5) = %d, out of range", v)
		}
		seen[v] = true
	}
	for v := 2; v <= 5; v++ {
		if !seen[v] {
			t.Errorf("Between(2, 5) never produced %d in 1000 draws", v)
		}
	}
}

func TestBetweenDegenerateRange(t *testing.T) {
	src := New(1)
	if v := src.Between(7, 7); v != 7 {
		t.Errorf("Between(7, 7) = %d, want 7", v)
	}
	if v := src.Between(9, 3); v < 3 || v > 9 {
		t.Errorf("Between with swapped bounds = %d, want within [3, 9]", v)
	}
}

func TestSameSeedSameSequence(t *testing.T) {
	a, b := New(42), New(42)
	for i := 0; i < 100; i++ {
		if av, bv := a.Intn(1000), b.Intn(1000); av != bv {
			t.Fatalf("Sequences diverged at draw %d: %d vs %d", i, av, bv)
		}
	}
}

func TestChanceExtremes(t *testing.T) {
	src := New(3)
	for i := 0; i < 100; i++ {
		if src.Chance(0) {
			t.Fatal("Chance(0) came up true")
		}
		if !src.Chance(100) {
			t.Fatal("Chance(100) came up false")
		}
	}
}

func TestPick(t *testing.T) {
	src := New(5)
	list := []string{"a", "b", "c"}
	counts := map[string]int{}
	for i := 0; i < 300; i++ {
		counts[Pick(src, list)]++
	}
	for _, v := range list {
		if counts[v] == 0 {
			t.Errorf("Pick never chose %q in 300 draws", v)
		}
	}
}
