package traits

import (
	"math"
	"testing"

	"github.com/pthm-cable/biots/rng"
)

// scriptedSource replays fixed Intn results.
type scriptedSource struct {
	ints []int
}

func (s *scriptedSource) Float32() float32 { return 0 }

func (s *scriptedSource) Intn(n int) int {
	v := s.ints[0]
	s.ints = s.ints[1:]
	return v % n
}

func near(a, b float32) bool {
	return math.Abs(float64(a-b)) < 1e-5
}

func TestDerive(t *testing.T) {
	tests := []struct {
		name string
		code string
		want Traits
	}{
		{"all noop", "nnnnnnnnnnnnn", Traits{}},
		{"three attack", "aaannnnnnnnnn", Traits{Attack: 0.3}},
		{"one of each", "adpminnnnnnnn", Traits{Attack: 0.1, Defense: 0.1, Photosynthesis: 0.1, Motion: 0.1, Intelligence: 10}},
		{"two intelligence", "iinnnnnnnnnnp", Traits{Photosynthesis: 0.1, Intelligence: 20}},
		{"all photosynthesis", "ppppppppppppp", Traits{Photosynthesis: 1.3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Derive(MustParse(tt.code))
			if !near(got.Attack, tt.want.Attack) || !near(got.Defense, tt.want.Defense) ||
				!near(got.Photosynthesis, tt.want.Photosynthesis) || !near(got.Motion, tt.want.Motion) ||
				!near(got.Intelligence, tt.want.Intelligence) {
				t.Errorf("Derive(%s) = %+v, want %+v", tt.code, got, tt.want)
			}
		})
	}
}

func TestDeriveIsPureAndNonNegative(t *testing.T) {
	r := rng.New(1)
	for i := 0; i < 500; i++ {
		g := Random(r)
		a, b := Derive(g), Derive(g)
		if a != b {
			t.Fatalf("Derive(%s) not deterministic: %+v vs %+v", g, a, b)
		}
		if a.Attack < 0 || a.Defense < 0 || a.Photosynthesis < 0 || a.Motion < 0 || a.Intelligence < 0 {
			t.Fatalf("negative trait for %s: %+v", g, a)
		}
	}
}

func TestWeightAndBaseLife(t *testing.T) {
	tr := Derive(MustParse("aadpmmiinnnnn"))

	wantWeight := tr.Attack + tr.Defense + tr.Photosynthesis + tr.Motion
	if tr.Weight() != wantWeight {
		t.Errorf("Weight() = %v, want %v", tr.Weight(), wantWeight)
	}
	if !near(tr.Weight(), 0.6) {
		t.Errorf("Weight() = %v, want 0.6 (intelligence excluded)", tr.Weight())
	}
	if tr.BaseLife() != 8*tr.Weight() {
		t.Errorf("BaseLife() = %v, want %v", tr.BaseLife(), 8*tr.Weight())
	}

	var zero Traits
	if zero.Weight() != 0 || zero.BaseLife() != 0 {
		t.Errorf("zero traits: weight %v base life %v", zero.Weight(), zero.BaseLife())
	}
}

func TestMutate(t *testing.T) {
	g := MustParse("nnnnnnnnnnnnn")

	// locus 4, alphabet entry 0 (attack)
	src := &scriptedSource{ints: []int{4, 0}}
	m := Mutate(g, src)

	if m.String() != "nnnnannnnnnnn" {
		t.Errorf("Mutate = %s, want nnnnannnnnnnn", m)
	}
	if g.String() != "nnnnnnnnnnnnn" {
		t.Errorf("Mutate modified its input: %s", g)
	}

	// last alphabet entry is intelligence
	src = &scriptedSource{ints: []int{12, AlphabetSize - 1}}
	if m := Mutate(g, src); m[12] != Intelligence {
		t.Errorf("expected intelligence at locus 12, got %c", m[12].Letter())
	}
}

func TestRandomDrawsWholeAlphabet(t *testing.T) {
	r := rng.New(3)
	seen := map[Symbol]int{}
	for i := 0; i < 200; i++ {
		g := Random(r)
		for _, s := range g {
			seen[s]++
		}
	}
	for _, s := range []Symbol{Attack, Defense, Photosynthesis, Motion, Noop, Intelligence} {
		if seen[s] == 0 {
			t.Errorf("symbol %c never drawn", s.Letter())
		}
	}
	// Noop is three of eight alphabet entries.
	total := 200 * GenomeLength
	frac := float64(seen[Noop]) / float64(total)
	if frac < 0.3 || frac > 0.45 {
		t.Errorf("noop fraction = %.3f, want ~0.375", frac)
	}
}

func TestParse(t *testing.T) {
	if _, err := Parse("abc"); err == nil {
		t.Error("expected length error")
	}
	if _, err := Parse("xxxxxxxxxxxxx"); err == nil {
		t.Error("expected unknown symbol error")
	}
	g, err := Parse("adpmniadpmnia")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if g.String() != "adpmniadpmnia" {
		t.Errorf("String() = %s", g)
	}
}
