package workload

import (
	"bytes"
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/iosched-sim/iosched-sim/sim"
)

// GeneratorSpec describes a synthetic trace over a flat address space.
type GeneratorSpec struct {
	Seed          uint64      `yaml:"seed"`
	Count         int         `yaml:"count"`
	Rate          float64     `yaml:"rate"` // requests per tick
	Arrival       ArrivalSpec `yaml:"arrival"`
	WriteFraction float64     `yaml:"write_fraction"`
	AddressSpace  int64       `yaml:"address_space"`
	MinSize       int64       `yaml:"min_size"`
	MaxSize       int64       `yaml:"max_size"`
}

// DefaultGeneratorSpec returns a small mixed workload.
func DefaultGeneratorSpec() GeneratorSpec {
	return GeneratorSpec{
		Seed:          42,
		Count:         1000,
		Rate:          0.1,
		Arrival:       ArrivalSpec{Process: ArrivalPoisson},
		WriteFraction: 0.3,
		AddressSpace:  4096,
		MinSize:       1,
		MaxSize:       64,
	}
}

// LoadGeneratorSpec reads a YAML generator spec layered over DefaultGeneratorSpec.
// Uses strict parsing: unrecognized keys (typos) are rejected.
func LoadGeneratorSpec(path string) (*GeneratorSpec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading generator spec: %w", err)
	}
	spec := DefaultGeneratorSpec()
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&spec); err != nil {
		return nil, fmt.Errorf("parsing generator spec: %w", err)
	}
	return &spec, nil
}

// Validate checks that all fields in the spec are usable.
func (s *GeneratorSpec) Validate() error {
	if s.Count < 0 {
		return fmt.Errorf("count must be non-negative, got %d", s.Count)
	}
	if math.IsNaN(s.Rate) || math.IsInf(s.Rate, 0) || s.Rate <= 0 {
		return fmt.Errorf("rate must be a positive finite number, got %f", s.Rate)
	}
	if err := s.Arrival.Validate(); err != nil {
		return err
	}
	if math.IsNaN(s.WriteFraction) || s.WriteFraction < 0 || s.WriteFraction > 1 {
		return fmt.Errorf("write_fraction must be in [0, 1], got %f", s.WriteFraction)
	}
	if s.MinSize < 1 || s.MaxSize < s.MinSize {
		return fmt.Errorf("size range must satisfy 1 <= min_size <= max_size, got [%d, %d]", s.MinSize, s.MaxSize)
	}
	if s.AddressSpace < s.MaxSize {
		return fmt.Errorf("address_space (%d) must hold max_size (%d)", s.AddressSpace, s.MaxSize)
	}
	return nil
}

// Generate builds a trace from spec. Deterministic given the same spec.
// Returns requests in arrival order with sequential IDs starting at 1.
func Generate(spec GeneratorSpec) ([]sim.Request, error) {
	if err := spec.Validate(); err != nil {
		return nil, fmt.Errorf("invalid generator spec: %w", err)
	}

	rngs := NewPartitionedRNG(spec.Seed)
	iat := NewArrivalSampler(spec.Arrival, spec.Rate, rngs.Source(SubsystemArrivals))
	opRNG := rngs.ForSubsystem(SubsystemOps)
	layoutRNG := rngs.ForSubsystem(SubsystemLayout)

	requests := make([]sim.Request, 0, spec.Count)
	var clock float64
	for i := 0; i < spec.Count; i++ {
		op := sim.OpRead
		if opRNG.Float64() < spec.WriteFraction {
			op = sim.OpWrite
		}
		size := spec.MinSize + layoutRNG.Int64N(spec.MaxSize-spec.MinSize+1)
		address := layoutRNG.Int64N(spec.AddressSpace - size + 1)
		requests = append(requests, sim.NewRequest(int64(i+1), int64(clock), op, address, size))
		clock += iat.Rand()
	}
	return requests, nil
}
