// Package components defines ECS components for the simulation.
package components

import "github.com/pthm-cable/biots/traits"

// Position represents an entity's world position.
type Position struct {
	X, Y float32
}

// Velocity represents an entity's velocity in world units per tick.
type Velocity struct {
	X, Y float32
}

// Vitals holds the energy and age of a biot.
type Vitals struct {
	Life float32 // dies at or below zero
	Age  uint32  // ticks since birth
}

// Genome holds a biot's genetic code together with the traits it expresses.
// Code and Traits only change together, through NewGenome or SetCode.
type Genome struct {
	Code   traits.Genome
	Traits traits.Traits
}

// NewGenome wraps a code with its derived traits.
func NewGenome(code traits.Genome) Genome {
	return Genome{Code: code, Traits: traits.Derive(code)}
}

// SetCode replaces the code and re-derives the traits.
func (g *Genome) SetCode(code traits.Genome) {
	g.Code = code
	g.Traits = traits.Derive(code)
}
