// Package rng provides the random source threaded through the simulation.
package rng

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	"math/rand"
)

// Source is the random capability every stochastic operation receives.
// *rand.Rand satisfies it.
type Source interface {
	Float32() float32 // uniform in [0, 1)
	Intn(n int) int   // uniform in [0, n)
}

// New returns a deterministic generator for the given seed.
func New(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// EntropySeed reads a seed from the operating system's entropy source.
func EntropySeed() (int64, error) {
	var buf [8]byte
	if _, err := crand.Read(buf[:]); err != nil {
		return 0, fmt.Errorf("reading entropy: %w", err)
	}
	// Zero is reserved by the CLI for "pick a seed for me".
	seed := int64(binary.LittleEndian.Uint64(buf[:]) >> 1)
	if seed == 0 {
		seed = 1
	}
	return seed, nil
}
