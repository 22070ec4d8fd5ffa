package simulation

import (
	"hash/fnv"
	"math/rand"
)

// Subsystem names for RNG derivation. Each manager draws from its own
// stream so that adding draws in one stage cannot shift the sequence seen
// by another.
const (
	SubsystemWorld         = "world"
	SubsystemLogistics     = "logistics"
	SubsystemOutbound      = "outbound"
	SubsystemReplenishment = "replenishment"
	SubsystemSensors       = "sensors"
)

// RNGSet derives deterministic, isolated RNG instances per subsystem from
// a single root seed. Two runs with the same root seed produce identical
// draw sequences in every subsystem.
//
// Not safe for concurrent use; the simulation is strictly single-threaded.
type RNGSet struct {
	seed       int64
	subsystems map[string]*rand.Rand
}

// NewRNGSet creates an RNGSet from the root seed.
func NewRNGSet(seed int64) *RNGSet {
	return &RNGSet{
		seed:       seed,
		subsystems: make(map[string]*rand.Rand),
	}
}

// ForSubsystem returns the RNG for the named subsystem, creating it on
// first use. The same name always returns the same instance.
func (r *RNGSet) ForSubsystem(name string) *rand.Rand {
	if rng, ok := r.subsystems[name]; ok {
		return rng
	}
	rng := rand.New(rand.NewSource(r.seed ^ fnv1a64(name)))
	r.subsystems[name] = rng
	return rng
}

// Seed returns the root seed this set was built from.
func (r *RNGSet) Seed() int64 {
	return r.seed
}

// fnv1a64 computes a 64-bit FNV-1a hash of the input string.
func fnv1a64(s string) int64 {
	h := fnv.New64a()
	h.Write([]byte(s))
	return int64(h.Sum64())
}
