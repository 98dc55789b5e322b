package workload

import (
	"fmt"
	"math"
	"math/rand/v2"

	"github.com/sirupsen/logrus"
	"gonum.org/v1/gonum/stat/distuv"
)

// Arrival processes accepted by ArrivalSpec.Process.
const (
	ArrivalPoisson  = "poisson"
	ArrivalGamma    = "gamma"
	ArrivalWeibull  = "weibull"
	ArrivalConstant = "constant"
)

// ArrivalSpec configures the inter-arrival time process.
// An empty Process means poisson. CV applies to gamma and weibull and defaults to 1.
type ArrivalSpec struct {
	Process string   `yaml:"process"`
	CV      *float64 `yaml:"cv,omitempty"`
}

// Validate rejects unknown processes and non-positive CVs.
func (a ArrivalSpec) Validate() error {
	switch a.Process {
	case "", ArrivalPoisson, ArrivalGamma, ArrivalWeibull, ArrivalConstant:
	default:
		return fmt.Errorf("unknown arrival process %q; valid: poisson, gamma, weibull, constant", a.Process)
	}
	if a.CV != nil && (math.IsNaN(*a.CV) || *a.CV <= 0) {
		return fmt.Errorf("arrival cv must be positive, got %f", *a.CV)
	}
	return nil
}

func (a ArrivalSpec) cv() float64 {
	if a.CV == nil {
		return 1.0
	}
	return *a.CV
}

// ArrivalSampler draws inter-arrival gaps in ticks. The gonum distributions satisfy it directly.
type ArrivalSampler interface {
	Rand() float64
}

// constantSampler spaces arrivals exactly 1/rate apart.
type constantSampler struct {
	gap float64
}

func (s constantSampler) Rand() float64 { return s.gap }

// NewArrivalSampler builds a sampler with mean gap 1/rate ticks for the given process.
func NewArrivalSampler(spec ArrivalSpec, rate float64, src rand.Source) ArrivalSampler {
	mean := 1.0 / rate
	switch spec.Process {
	case ArrivalConstant:
		return constantSampler{gap: mean}

	case ArrivalGamma:
		cv := spec.cv()
		// shape = 1/CV², rate parameter = shape/mean
		shape := 1.0 / (cv * cv)
		if shape < 0.01 {
			logrus.Warnf("Gamma shape %.4f (CV=%.1f) is very small; falling back to Poisson", shape, cv)
			return distuv.Exponential{Rate: rate, Src: src}
		}
		return distuv.Gamma{Alpha: shape, Beta: shape / mean, Src: src}

	case ArrivalWeibull:
		k := weibullShapeFromCV(spec.cv())
		// scale = mean / Γ(1 + 1/k)
		return distuv.Weibull{K: k, Lambda: mean / math.Gamma(1.0+1.0/k), Src: src}

	default:
		return distuv.Exponential{Rate: rate, Src: src}
	}
}

// weibullShapeFromCV finds the Weibull shape k with the given coefficient of variation
// by bisection over k ∈ [0.1, 100].
func weibullShapeFromCV(targetCV float64) float64 {
	lo, hi := 0.1, 100.0
	for i := 0; i < 100; i++ {
		mid := (lo + hi) / 2.0
		cv := weibullCV(mid)
		if math.Abs(cv-targetCV) < 0.001 {
			return mid
		}
		// CV decreases as k grows
		if cv > targetCV {
			lo = mid
		} else {
			hi = mid
		}
	}
	logrus.Warnf("weibullShapeFromCV: bisection did not converge for CV=%.3f; using k=%.3f", targetCV, (lo+hi)/2.0)
	return (lo + hi) / 2.0
}

func weibullCV(k float64) float64 {
	g1 := math.Gamma(1.0 + 1.0/k)
	g2 := math.Gamma(1.0 + 2.0/k)
	return math.Sqrt(g2/(g1*g1) - 1.0)
}
