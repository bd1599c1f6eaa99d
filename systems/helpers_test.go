package systems

import (
	"math"

	"github.com/pthm-cable/biots/components"
	"github.com/pthm-cable/biots/traits"
)

// scriptedSource replays fixed draws and falls back to fixed values once the
// script runs out.
type scriptedSource struct {
	floats []float32
	ints   []int
}

func (s *scriptedSource) Float32() float32 {
	if len(s.floats) == 0 {
		return 0.99
	}
	v := s.floats[0]
	s.floats = s.floats[1:]
	return v
}

func (s *scriptedSource) Intn(n int) int {
	if len(s.ints) == 0 {
		return 0
	}
	v := s.ints[0]
	s.ints = s.ints[1:]
	return v % n
}

// testBiot describes a biot for building arenas in tests.
type testBiot struct {
	code   string
	x, y   float32
	vx, vy float32
	life   float32
	age    uint32
}

// buildArena allocates components for each test biot and returns the arena plus
// the pre-tick index over it.
func buildArena(biots ...testBiot) ([]Biot, *SpatialIndex) {
	arena := make([]Biot, len(biots))
	positions := make([]components.Position, len(biots))
	for i, s := range biots {
		g := components.NewGenome(traits.MustParse(s.code))
		arena[i] = Biot{
			Pos:    &components.Position{X: s.x, Y: s.y},
			Vel:    &components.Velocity{X: s.vx, Y: s.vy},
			Vitals: &components.Vitals{Life: s.life, Age: s.age},
			Genome: &g,
		}
		positions[i] = *arena[i].Pos
	}
	return arena, NewSpatialIndex(positions)
}

func approx(a, b, tol float32) bool {
	return math.Abs(float64(a-b)) <= float64(tol)
}
