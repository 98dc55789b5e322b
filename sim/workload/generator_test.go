package workload

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iosched-sim/iosched-sim/sim"
)

func TestGenerate_Deterministic(t *testing.T) {
	spec := DefaultGeneratorSpec()
	spec.Count = 200

	a, err := Generate(spec)
	require.NoError(t, err)
	b, err := Generate(spec)
	require.NoError(t, err)

	assert.Equal(t, a, b)
}

func TestGenerate_DifferentSeedsDiffer(t *testing.T) {
	spec := DefaultGeneratorSpec()
	spec.Count = 50
	a, err := Generate(spec)
	require.NoError(t, err)

	spec.Seed++
	b, err := Generate(spec)
	require.NoError(t, err)

	assert.NotEqual(t, a, b)
}

func TestGenerate_RespectsBounds(t *testing.T) {
	spec := GeneratorSpec{Seed: 7, Count: 500, Rate: 0.5, WriteFraction: 0.5, AddressSpace: 128, MinSize: 2, MaxSize: 16}

	reqs, err := Generate(spec)
	require.NoError(t, err)
	require.Len(t, reqs, 500)

	var writes int
	prev := int64(0)
	for i, r := range reqs {
		assert.Equal(t, int64(i+1), r.ID)
		assert.GreaterOrEqual(t, r.ArrivalTime, prev, "arrivals must be non-decreasing")
		prev = r.ArrivalTime
		assert.GreaterOrEqual(t, r.Size, spec.MinSize)
		assert.LessOrEqual(t, r.Size, spec.MaxSize)
		assert.GreaterOrEqual(t, r.Address, int64(0))
		assert.LessOrEqual(t, r.Address+r.Size, spec.AddressSpace)
		if r.IsWrite() {
			writes++
		} else {
			assert.Equal(t, sim.OpRead, r.Op)
		}
	}
	assert.InDelta(t, 250, writes, 60)
}

func TestGenerate_ZeroCount(t *testing.T) {
	spec := DefaultGeneratorSpec()
	spec.Count = 0

	reqs, err := Generate(spec)

	require.NoError(t, err)
	assert.Empty(t, reqs)
}

func TestGenerate_ConstantArrivals_EvenlySpaced(t *testing.T) {
	// GIVEN a constant arrival process at one request every 4 ticks
	spec := DefaultGeneratorSpec()
	spec.Count = 5
	spec.Rate = 0.25
	spec.Arrival = ArrivalSpec{Process: ArrivalConstant}

	// WHEN generated
	reqs, err := Generate(spec)
	require.NoError(t, err)

	// THEN timestamps step by exactly 4
	for i, r := range reqs {
		assert.Equal(t, int64(4*i), r.ArrivalTime)
	}
}

func TestGeneratorSpec_Validate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*GeneratorSpec)
	}{
		{"negative count", func(s *GeneratorSpec) { s.Count = -1 }},
		{"zero rate", func(s *GeneratorSpec) { s.Rate = 0 }},
		{"write fraction above one", func(s *GeneratorSpec) { s.WriteFraction = 1.5 }},
		{"zero min size", func(s *GeneratorSpec) { s.MinSize = 0 }},
		{"inverted sizes", func(s *GeneratorSpec) { s.MinSize, s.MaxSize = 10, 5 }},
		{"address space too small", func(s *GeneratorSpec) { s.AddressSpace = 8; s.MaxSize = 16 }},
		{"unknown arrival process", func(s *GeneratorSpec) { s.Arrival.Process = "uniform" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			spec := DefaultGeneratorSpec()
			tt.mutate(&spec)
			assert.Error(t, spec.Validate())
			_, err := Generate(spec)
			assert.Error(t, err)
		})
	}
	def := DefaultGeneratorSpec()
	assert.NoError(t, def.Validate())
}

func TestLoadGeneratorSpec(t *testing.T) {
	dir := t.TempDir()

	t.Run("overrides defaults", func(t *testing.T) {
		path := filepath.Join(dir, "ok.yaml")
		require.NoError(t, os.WriteFile(path, []byte("count: 12\nwrite_fraction: 1\n"), 0o644))

		spec, err := LoadGeneratorSpec(path)

		require.NoError(t, err)
		assert.Equal(t, 12, spec.Count)
		assert.Equal(t, 1.0, spec.WriteFraction)
		assert.Equal(t, DefaultGeneratorSpec().Rate, spec.Rate)
	})

	t.Run("nested arrival process", func(t *testing.T) {
		path := filepath.Join(dir, "bursty.yaml")
		require.NoError(t, os.WriteFile(path, []byte("arrival:\n  process: gamma\n  cv: 3\n"), 0o644))

		spec, err := LoadGeneratorSpec(path)

		require.NoError(t, err)
		assert.Equal(t, ArrivalGamma, spec.Arrival.Process)
		require.NotNil(t, spec.Arrival.CV)
		assert.Equal(t, 3.0, *spec.Arrival.CV)
		assert.NoError(t, spec.Validate())
	})

	t.Run("rejects unknown keys", func(t *testing.T) {
		path := filepath.Join(dir, "typo.yaml")
		require.NoError(t, os.WriteFile(path, []byte("cuont: 12\n"), 0o644))

		_, err := LoadGeneratorSpec(path)

		assert.Error(t, err)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadGeneratorSpec(filepath.Join(dir, "nope.yaml"))
		assert.Error(t, err)
	})
}
