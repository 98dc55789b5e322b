package workload

import (
	"hash/fnv"
	"math/rand/v2"
)

// Generator RNG subsystems. Each draws from its own stream so that changing how
// one attribute is sampled never shifts the values of another.
const (
	SubsystemArrivals = "arrivals"
	SubsystemOps      = "ops"
	SubsystemLayout   = "layout"
)

// PartitionedRNG provides deterministic, isolated random streams per subsystem.
//
// Derivation: PCG(seed, fnv1a64(subsystemName)).
//
// Thread-safety: NOT thread-safe. Must be called from single goroutine.
type PartitionedRNG struct {
	seed    uint64
	sources map[string]*rand.PCG
	rngs    map[string]*rand.Rand
}

// NewPartitionedRNG creates a PartitionedRNG from a master seed.
func NewPartitionedRNG(seed uint64) *PartitionedRNG {
	return &PartitionedRNG{
		seed:    seed,
		sources: make(map[string]*rand.PCG),
		rngs:    make(map[string]*rand.Rand),
	}
}

// Source returns the cached source for the named subsystem, creating it on first use.
func (p *PartitionedRNG) Source(name string) rand.Source {
	return p.source(name)
}

func (p *PartitionedRNG) source(name string) *rand.PCG {
	if src, ok := p.sources[name]; ok {
		return src
	}
	src := rand.NewPCG(p.seed, fnv1a64(name))
	p.sources[name] = src
	return src
}

// ForSubsystem returns a *rand.Rand over the named subsystem's source.
// The same name always returns the same instance. Never returns nil.
func (p *PartitionedRNG) ForSubsystem(name string) *rand.Rand {
	if rng, ok := p.rngs[name]; ok {
		return rng
	}
	rng := rand.New(p.source(name))
	p.rngs[name] = rng
	return rng
}

// Seed returns the master seed.
func (p *PartitionedRNG) Seed() uint64 {
	return p.seed
}

// fnv1a64 computes a 64-bit FNV-1a hash of the input string.
func fnv1a64(s string) uint64 {
	h := fnv.New64a()
	h.Write([]byte(s))
	return h.Sum64()
}
