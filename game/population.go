package game

import (
	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/biots/components"
	"github.com/pthm-cable/biots/rng"
	"github.com/pthm-cable/biots/systems"
	"github.com/pthm-cable/biots/telemetry"
	"github.com/pthm-cable/biots/traits"
)

// BiotView is a read-only copy of one biot's observable state.
type BiotView struct {
	X, Y   float32
	Life   float32
	Age    uint32
	Code   traits.Genome
	Traits traits.Traits
}

// TickStats summarizes what happened during the last completed tick.
// Deaths is always Kills + Starved + OldAge.
type TickStats struct {
	Births     int
	Deaths     int
	Kills      int // lost a fight and ended the tick with no life
	Starved    int // ran out of life without losing a fight
	OldAge     int
	Population int
}

// Population owns every biot and advances them one tick at a time.
// Biot components live in an ECS world; order fixes the processing order
// and doubles as the per-tick arena.
type Population struct {
	world  *ecs.World
	mapper *ecs.Map4[
		components.Position,
		components.Velocity,
		components.Vitals,
		components.Genome,
	]
	order  []ecs.Entity
	bounds systems.Bounds

	last   TickStats
	phases telemetry.Phases
}

// NewPopulation creates an empty population on a world of the given size.
func NewPopulation(bounds systems.Bounds) *Population {
	world := ecs.NewWorld()
	return &Population{
		world: world,
		mapper: ecs.NewMap4[
			components.Position,
			components.Velocity,
			components.Vitals,
			components.Genome,
		](world),
		bounds: bounds,
	}
}

// CreatePopulation seeds count random biots placed uniformly on the world.
// Each starts at rest with life equal to its base life.
func CreatePopulation(count int, bounds systems.Bounds, r rng.Source) *Population {
	p := NewPopulation(bounds)
	for i := 0; i < count; i++ {
		genome := components.NewGenome(traits.Random(r))
		pos := components.Position{
			X: r.Float32() * bounds.Width,
			Y: r.Float32() * bounds.Height,
		}
		p.Spawn(systems.Offspring{
			Pos:    pos,
			Vitals: components.Vitals{Life: genome.Traits.BaseLife()},
			Genome: genome,
		})
	}
	return p
}

// Spawn appends a biot to the end of the processing order.
func (p *Population) Spawn(o systems.Offspring) ecs.Entity {
	e := p.mapper.NewEntity(&o.Pos, &o.Vel, &o.Vitals, &o.Genome)
	p.order = append(p.order, e)
	return e
}

// Len returns the number of live biots.
func (p *Population) Len() int {
	return len(p.order)
}

// Bounds returns the world size.
func (p *Population) Bounds() systems.Bounds {
	return p.bounds
}

// Each calls fn for every biot in processing order.
func (p *Population) Each(fn func(BiotView)) {
	for _, e := range p.order {
		pos, _, vit, gen := p.mapper.Get(e)
		fn(BiotView{
			X:      pos.X,
			Y:      pos.Y,
			Life:   vit.Life,
			Age:    vit.Age,
			Code:   gen.Code,
			Traits: gen.Traits,
		})
	}
}

// Nearest returns the biot closest to (x, y) within maxDist, if any.
func (p *Population) Nearest(x, y, maxDist float32) (BiotView, bool) {
	var found BiotView
	ok := false
	best := maxDist * maxDist
	p.Each(func(v BiotView) {
		dx, dy := v.X-x, v.Y-y
		if d := dx*dx + dy*dy; d <= best {
			best = d
			found = v
			ok = true
		}
	})
	return found, ok
}

// LastTick returns the statistics of the most recent Step.
func (p *Population) LastTick() TickStats {
	return p.last
}

// SetPhaseTimer installs a timer notified at each phase of a tick. nil disables timing.
func (p *Population) SetPhaseTimer(t telemetry.Phases) {
	p.phases = t
}

func (p *Population) startPhase(name string) {
	if p.phases != nil {
		p.phases.StartPhase(name)
	}
}

// arena resolves the processing order into component pointers. The pointers
// stay valid until entities are created or removed.
func (p *Population) arena() ([]systems.Biot, []components.Position) {
	biots := make([]systems.Biot, len(p.order))
	positions := make([]components.Position, len(p.order))
	for i, e := range p.order {
		pos, vel, vit, gen := p.mapper.Get(e)
		biots[i] = systems.Biot{Pos: pos, Vel: vel, Vitals: vit, Genome: gen}
		positions[i] = *pos
	}
	return biots, positions
}
