// Package distribution provides the delay models used to shift a record's
// arrival time away from its event time.
package distribution

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
)

var (
	// ErrUnsupportedDistribution is returned for a family name outside the supported set.
	ErrUnsupportedDistribution = errors.New("unsupported distribution")
	// ErrInvalidParameters is returned when the parameter count does not match the family's arity.
	ErrInvalidParameters = errors.New("invalid distribution parameters")
)

// Sampler generates delay samples in seconds.
type Sampler interface {
	// Sample draws one delay. Implementations consume randomness only from rng.
	Sample(rng *rand.Rand) float64
}

// GammaSampler draws Gamma(shape, scale) delays.
type GammaSampler struct {
	shape, scale float64
}

func (s *GammaSampler) Sample(rng *rand.Rand) float64 {
	return gammaRand(rng, s.shape, s.scale)
}

// ExponentialSampler draws exponential delays with mean 1/rate.
type ExponentialSampler struct {
	rate float64
}

func (s *ExponentialSampler) Sample(rng *rand.Rand) float64 {
	return rng.ExpFloat64() / s.rate
}

// UniformSampler draws delays uniformly from [low, high).
type UniformSampler struct {
	low, high float64
}

func (s *UniformSampler) Sample(rng *rand.Rand) float64 {
	return s.low + (s.high-s.low)*rng.Float64()
}

// ConstantSampler always returns the same delay and never touches the RNG.
// A zero-variance model, handy for golden-value tests.
type ConstantSampler struct {
	value float64
}

func (s *ConstantSampler) Sample(_ *rand.Rand) float64 {
	return s.value
}

// GaussianSampler draws Normal(mean, stdDev) delays. Values are not clamped,
// so a wide stdDev can yield negative delays (records arriving "early").
type GaussianSampler struct {
	mean, stdDev float64
}

func (s *GaussianSampler) Sample(rng *rand.Rand) float64 {
	return s.mean + s.stdDev*rng.NormFloat64()
}

// gammaRand samples from Gamma(shape, scale) using Marsaglia-Tsang's method.
// For shape < 1: Gamma(shape) = Gamma(shape+1) * U^(1/shape).
func gammaRand(rng *rand.Rand, shape, scale float64) float64 {
	if shape < 1.0 {
		u := rng.Float64()
		return gammaRand(rng, shape+1.0, scale) * math.Pow(u, 1.0/shape)
	}

	d := shape - 1.0/3.0
	c := 1.0 / math.Sqrt(9.0*d)

	for {
		var x, v float64
		for {
			x = rng.NormFloat64()
			v = 1.0 + c*x
			if v > 0 {
				break
			}
		}
		v = v * v * v
		u := rng.Float64()

		// Squeeze test
		if u < 1.0-0.0331*(x*x)*(x*x) {
			return d * v * scale
		}
		if math.Log(u) < 0.5*x*x+d*(1.0-v+math.Log(v)) {
			return d * v * scale
		}
	}
}

// family describes one supported delay model.
type family struct {
	name   string
	params []string
	build  func(p []float64) Sampler
}

// families is the closed set of supported delay models, in display order.
var families = []family{
	{
		name:   "gamma",
		params: []string{"shape", "scale"},
		build:  func(p []float64) Sampler { return &GammaSampler{shape: p[0], scale: p[1]} },
	},
	{
		name:   "exponential",
		params: []string{"rate"},
		build:  func(p []float64) Sampler { return &ExponentialSampler{rate: p[0]} },
	},
	{
		name:   "uniform",
		params: []string{"low", "high"},
		build:  func(p []float64) Sampler { return &UniformSampler{low: p[0], high: p[1]} },
	},
	{
		name:   "constant",
		params: []string{"value"},
		build:  func(p []float64) Sampler { return &ConstantSampler{value: p[0]} },
	},
	{
		name:   "gaussian",
		params: []string{"mean", "std_dev"},
		build:  func(p []float64) Sampler { return &GaussianSampler{mean: p[0], stdDev: p[1]} },
	},
}

func lookup(name string) (family, bool) {
	for _, f := range families {
		if f.name == name {
			return f, true
		}
	}
	return family{}, false
}

// Families returns the supported family names in display order.
func Families() []string {
	names := make([]string, len(families))
	for i, f := range families {
		names[i] = f.name
	}
	return names
}

// ParamNames returns the ordered parameter names for a family, or nil if the
// family is unknown.
func ParamNames(name string) []string {
	f, ok := lookup(name)
	if !ok {
		return nil
	}
	return append([]string(nil), f.params...)
}

// Arity returns the required parameter count for a family.
func Arity(name string) (int, error) {
	f, ok := lookup(name)
	if !ok {
		return 0, unsupported(name)
	}
	return len(f.params), nil
}

// New creates a Sampler for the named family. The parameter slice must match
// the family's arity exactly; it is copied, so later changes by the caller
// have no effect.
func New(name string, params []float64) (Sampler, error) {
	f, ok := lookup(name)
	if !ok {
		return nil, unsupported(name)
	}
	if len(params) != len(f.params) {
		return nil, fmt.Errorf("%w: %s distribution requires %d %s: %s, got %d",
			ErrInvalidParameters, f.name, len(f.params), plural(len(f.params)), usage(f.params), len(params))
	}
	p := append([]float64(nil), params...)
	switch f.name {
	case "exponential":
		if p[0] <= 0 {
			logrus.Warnf("Exponential rate %v is not positive; samples will be meaningless", p[0])
		}
	case "gaussian":
		if p[0] < 3*p[1] {
			logrus.Warnf("Gaussian mean %v is within 3 std_dev (%v) of zero; expect negative delays", p[0], p[1])
		}
	}
	return f.build(p), nil
}

// Describe renders a family with its named parameters, e.g. "gamma(shape=2, scale=1.5)".
// Parameters beyond the family's arity are ignored; unknown families render as-is.
func Describe(name string, params []float64) string {
	f, ok := lookup(name)
	if !ok {
		return name
	}
	parts := make([]string, 0, len(params))
	for i, v := range params {
		if i >= len(f.params) {
			break
		}
		parts = append(parts, f.params[i]+"="+strconv.FormatFloat(v, 'g', -1, 64))
	}
	return fmt.Sprintf("%s(%s)", f.name, strings.Join(parts, ", "))
}

// Usage returns the parameter placeholder string for a family, e.g. "<low> <high>".
func Usage(name string) string {
	f, ok := lookup(name)
	if !ok {
		return ""
	}
	return usage(f.params)
}

func unsupported(name string) error {
	return fmt.Errorf("%w: %q; valid: %s", ErrUnsupportedDistribution, name, strings.Join(Families(), ", "))
}

func usage(params []string) string {
	parts := make([]string, len(params))
	for i, p := range params {
		parts[i] = "<" + p + ">"
	}
	return strings.Join(parts, " ")
}

func plural(n int) string {
	if n == 1 {
		return "parameter"
	}
	return "parameters"
}
