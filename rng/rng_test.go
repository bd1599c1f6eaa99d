package rng

import "testing"

func TestNewIsDeterministic(t *testing.T) {
	a := New(42)
	b := New(42)

	for i := 0; i < 100; i++ {
		fa, fb := a.Float32(), b.Float32()
		if fa != fb {
			t.Fatalf("draw %d: Float32 diverged: %v != %v", i, fa, fb)
		}
		ia, ib := a.Intn(13), b.Intn(13)
		if ia != ib {
			t.Fatalf("draw %d: Intn diverged: %d != %d", i, ia, ib)
		}
	}
}

func TestSourceRanges(t *testing.T) {
	var src Source = New(7)

	for i := 0; i < 1000; i++ {
		if f := src.Float32(); f < 0 || f >= 1 {
			t.Fatalf("Float32 out of range: %v", f)
		}
		if n := src.Intn(8); n < 0 || n >= 8 {
			t.Fatalf("Intn out of range: %d", n)
		}
	}
}

func TestEntropySeed(t *testing.T) {
	seed, err := EntropySeed()
	if err != nil {
		t.Fatalf("EntropySeed: %v", err)
	}
	if seed <= 0 {
		t.Errorf("expected positive seed, got %d", seed)
	}
}
