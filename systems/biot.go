package systems

import (
	"github.com/pthm-cable/biots/components"
	"github.com/pthm-cable/biots/rng"
	"github.com/pthm-cable/biots/traits"
)

// Balance constants. These are fixed rules of the ecosystem, not settings.
const (
	MaxAge = 10000 // ticks

	Drag        = 0.9 // velocity kept per tick
	EnergyScale = 0.4 // applied to photosynthesis minus metabolism

	AdultFactor      = 4   // reproduce once life reaches this many base lives
	CrowdingNeighbor = 5   // nth nearest other biot checked before reproducing
	CrowdingDistSq   = 200 // squared distance that counts as uncrowded
	MutationChance   = 0.2 // chance of each further mutation in a newborn
	BirthImpulse     = 1.5

	MoveChance  = 0.2 // per unit of motion, per tick
	MoveImpulse = 7   // scaled by motion / weight
)

// Biot gives the update rules access to one organism's components for the
// duration of a tick.
type Biot struct {
	Pos    *components.Position
	Vel    *components.Velocity
	Vitals *components.Vitals
	Genome *components.Genome
}

// Traits returns the biot's derived traits.
func (b Biot) Traits() traits.Traits {
	return b.Genome.Traits
}

// Offspring is a newborn biot that has not joined the population yet.
type Offspring struct {
	Pos    components.Position
	Vel    components.Velocity
	Vitals components.Vitals
	Genome components.Genome
}

// Direction is a unit vector.
type Direction struct {
	X, Y float32
}

// Metabolism is the energy a body burns per tick before scaling.
func Metabolism(t traits.Traits) float32 {
	return 0.2 * (4.5*t.Attack + 2.3*t.Defense + 2.5*t.Motion + 0.1*t.Intelligence)
}

// IsDead reports whether a biot must be removed at the end of the tick.
func IsDead(v components.Vitals) bool {
	return v.Life <= 0 || v.Age >= MaxAge
}

// StepBiot advances one biot by a tick: reproduction, movement, drag, energy,
// voluntary acceleration and aging, in that order. index must hold the
// positions from before this tick and self is the biot's arena index in it.
// feed is the direction toward prey, or nil.
// It returns the offspring produced this tick, if any.
func StepBiot(b Biot, self int, index *SpatialIndex, feed *Direction, r rng.Source, bounds Bounds) (Offspring, bool) {
	t := b.Traits()

	var child Offspring
	born := false
	baseLife := t.BaseLife()
	// A weightless biot has zero base life and would otherwise always qualify.
	if baseLife > 0 && b.Vitals.Life >= AdultFactor*baseLife && uncrowded(index, b.Pos, self) {
		child = reproduce(b, r)
		born = true
		b.Vitals.Life = (AdultFactor - 1) * baseLife
	}

	b.Pos.X = Wrap(b.Pos.X+b.Vel.X, bounds.Width)
	b.Pos.Y = Wrap(b.Pos.Y+b.Vel.Y, bounds.Height)

	b.Vel.X *= Drag
	b.Vel.Y *= Drag

	b.Vitals.Life += (t.Photosynthesis - Metabolism(t)) * EnergyScale

	if r.Float32() < MoveChance*t.Motion {
		if w := t.Weight(); w > 0 {
			speed := MoveImpulse * t.Motion / w
			if t.Intelligent() && feed != nil {
				accelerate(b.Vel, *feed, speed)
			} else {
				accelerate(b.Vel, randomDirection(r), speed)
			}
		}
	}

	b.Vitals.Age++
	return child, born
}

// uncrowded reports whether few enough biots are near pos to allow a birth.
func uncrowded(index *SpatialIndex, pos *components.Position, self int) bool {
	nb, ok := index.NthNearestExcluding(float64(pos.X), float64(pos.Y), self, CrowdingNeighbor)
	return !ok || nb.DistSq > CrowdingDistSq
}

// reproduce clones b, mutates the clone a geometric number of times and
// pushes it in a random direction.
func reproduce(b Biot, r rng.Source) Offspring {
	genome := *b.Genome
	for r.Float32() < MutationChance {
		genome.SetCode(traits.Mutate(genome.Code, r))
	}

	child := Offspring{
		Pos:    *b.Pos,
		Vel:    *b.Vel,
		Vitals: components.Vitals{Life: genome.Traits.BaseLife()},
		Genome: genome,
	}
	accelerate(&child.Vel, randomDirection(r), BirthImpulse)
	return child
}

// randomDirection draws a uniformly oriented unit vector. Both draws are
// always made so the random stream does not depend on the outcome.
func randomDirection(r rng.Source) Direction {
	x := r.Float32() - 0.5
	y := r.Float32() - 0.5
	nx, ny, ok := normalize(x, y)
	if !ok {
		return Direction{}
	}
	return Direction{X: nx, Y: ny}
}

func accelerate(v *components.Velocity, dir Direction, speed float32) {
	v.X += dir.X * speed
	v.Y += dir.Y * speed
}
