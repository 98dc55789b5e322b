package workload

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func draw(p *PartitionedRNG, name string, n int) []uint64 {
	out := make([]uint64, n)
	for i := range out {
		out[i] = p.ForSubsystem(name).Uint64()
	}
	return out
}

func TestPartitionedRNG_DeterministicDerivation(t *testing.T) {
	// GIVEN two partitions with the same seed
	a := NewPartitionedRNG(42)
	b := NewPartitionedRNG(42)

	// THEN the same subsystem yields the same sequence
	assert.Equal(t, draw(a, SubsystemOps, 5), draw(b, SubsystemOps, 5))
	assert.Equal(t, uint64(42), a.Seed())
}

func TestPartitionedRNG_SubsystemIsolation(t *testing.T) {
	// GIVEN one partition that draws from ops first and one that does not
	a := NewPartitionedRNG(42)
	b := NewPartitionedRNG(42)
	draw(a, SubsystemOps, 100)

	// THEN the layout stream is unaffected
	assert.Equal(t, draw(a, SubsystemLayout, 5), draw(b, SubsystemLayout, 5))
}

func TestPartitionedRNG_SubsystemsDiffer(t *testing.T) {
	p := NewPartitionedRNG(7)
	assert.NotEqual(t, draw(p, SubsystemOps, 5), draw(p, SubsystemLayout, 5))
}

func TestPartitionedRNG_CachesInstances(t *testing.T) {
	p := NewPartitionedRNG(1)
	assert.Same(t, p.ForSubsystem(SubsystemArrivals), p.ForSubsystem(SubsystemArrivals))
	assert.Same(t, p.Source(SubsystemArrivals), p.Source(SubsystemArrivals))
}
