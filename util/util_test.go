package util

import (
	"math/rand"
	"testing"
)

func TestGenerateLut_SymmetricPulse(t *testing.T) {
	lut := GenerateLut(10)
	if len(lut) != 10 {
		t.Fatalf("expected 10 entries, got %d", len(lut))
	}
	if lut[0] != 0 || lut[9] != 0 {
		t.Fatalf("expected pulse to start and end at 0, got %v", lut)
	}
	for i, j := 0, len(lut)-1; i < j; i, j = i+1, j-1 {
		if lut[i] != lut[j] {
			t.Fatalf("expected symmetry at %d/%d, got %v", i, j, lut)
		}
	}
	for i := 1; i < 5; i++ {
		if lut[i] < lut[i-1] {
			t.Fatalf("expected rising first half, got %v", lut)
		}
	}
	for _, v := range lut {
		if v < 0 || v > 1 {
			t.Fatalf("value out of range: %v", lut)
		}
	}
}

func TestGenerateLut_Small(t *testing.T) {
	if lut := GenerateLut(0); lut != nil {
		t.Fatalf("expected nil, got %v", lut)
	}
	if lut := GenerateLut(1); len(lut) != 1 {
		t.Fatalf("expected 1 entry, got %v", lut)
	}
	if lut := GenerateLut(3); len(lut) != 3 || lut[1] != 1 {
		t.Fatalf("expected peak in the middle, got %v", lut)
	}
}

func TestGenerateLutMemoized(t *testing.T) {
	m := Memoizer{}
	a := GenerateLutMemoized(8, m)
	b := GenerateLutMemoized(8, m)
	if &a[0] != &b[0] {
		t.Fatalf("expected cached table to be reused")
	}
	if len(m) != 1 {
		t.Fatalf("expected one cached table, got %d", len(m))
	}
}

func TestEase_Clamps(t *testing.T) {
	if Ease(-1) != 0 || Ease(2) != 1 || Ease(0.5) != 0.5 {
		t.Fatalf("unexpected ease values: %v %v %v", Ease(-1), Ease(2), Ease(0.5))
	}
}

func TestRandomiseSaturation(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	for i := 0; i < 100; i++ {
		v := RandomiseSaturation(r, 0.4, 0.8)
		if v < 0.4 || v >= 0.8 {
			t.Fatalf("value out of range: %v", v)
		}
	}
}
