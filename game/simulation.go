package game

import (
	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/biots/rng"
	"github.com/pthm-cable/biots/systems"
	"github.com/pthm-cable/biots/telemetry"
)

// Step advances the whole population by one tick.
//
// Every query during the tick reads the spatial index built from positions
// at the start of the tick. Offspring are buffered and dead biots stay in
// place until the final phase, so the population is only reshaped once
// every rule has run.
func (p *Population) Step(r rng.Source) {
	if len(p.order) == 0 {
		p.last = TickStats{}
		return
	}

	// 1. Snapshot positions into a fresh index
	p.startPhase(telemetry.PhaseSpatialIndex)
	arena, positions := p.arena()
	index := systems.NewSpatialIndex(positions)

	// 2. Feeding direction and entity rules, in processing order
	p.startPhase(telemetry.PhaseUpdate)
	var births []systems.Offspring
	for i := range arena {
		feed := systems.FeedingDirection(arena, i, index)
		if child, ok := systems.StepBiot(arena[i], i, index, feed, r, p.bounds); ok {
			births = append(births, child)
		}
	}

	// 3. Combat between neighbours of the snapshot
	p.startPhase(telemetry.PhaseCombat)
	defeated := systems.ResolveCombat(arena, index)

	// 4. Drop the dead, then append newborns
	p.startPhase(telemetry.PhasePrune)
	stats := p.prune(arena, defeated)
	for _, b := range births {
		p.Spawn(b)
	}

	stats.Births = len(births)
	stats.Population = len(p.order)
	p.last = stats
}

// prune removes dead biots while keeping survivors in their relative order,
// and classifies each death. arena and defeated must be aligned with p.order.
//
// A biot still holding life died of old age. Otherwise it was killed if it
// lost a fight this tick and starved if it did not.
func (p *Population) prune(arena []systems.Biot, defeated []bool) TickStats {
	var stats TickStats
	var dead []ecs.Entity
	kept := p.order[:0]
	for i, e := range p.order {
		v := *arena[i].Vitals
		if !systems.IsDead(v) {
			kept = append(kept, e)
			continue
		}
		stats.Deaths++
		switch {
		case v.Life > 0:
			stats.OldAge++
		case defeated[i]:
			stats.Kills++
		default:
			stats.Starved++
		}
		dead = append(dead, e)
	}
	p.order = kept

	// Component pointers in arena are invalid from here on.
	for _, e := range dead {
		p.world.RemoveEntity(e)
	}
	return stats
}
