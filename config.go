package convexhull

import (
	"fmt"
	"math/rand/v2"
)

// DefaultPlaneDistanceTolerance is the distance a point must lie outside a
// face plane to count as beyond it.
const DefaultPlaneDistanceTolerance = 1e-5

// DegenerateInputHandling selects how inputs with exact degeneracies
// (points on a regular grid, cocircular points) are treated.
type DegenerateInputHandling int

const (
	// DegenerateNone uses the positions as given.
	DegenerateNone DegenerateInputHandling = iota

	// DegeneratePerturbInternal adds PerturbationGenerator() to every
	// coordinate before any geometry is computed. The result still refers
	// to the caller's original vertices.
	//
	// Jitter only breaks degeneracies it is large against: offsets must be
	// well above PlaneDistanceTolerance and comparable to the spacing of the
	// degenerate structure. On a unit lattice with the default tolerance an
	// amplitude of 1e-2 is reliable, while 1e-5 to 1e-3 can leave perturbed
	// points outside the result.
	DegeneratePerturbInternal
)

func (h DegenerateInputHandling) String() string {
	switch h {
	case DegenerateNone:
		return "None"
	case DegeneratePerturbInternal:
		return "PerturbInternal"
	}
	return fmt.Sprintf("DegenerateInputHandling(%d)", int(h))
}

// Config tunes a hull computation. The zero value is usable and equivalent
// to DefaultConfig.
type Config struct {
	// PlaneDistanceTolerance controls the beyond and singular thresholds.
	// Zero means DefaultPlaneDistanceTolerance.
	PlaneDistanceTolerance float64

	DegenerateInputHandling DegenerateInputHandling

	// PerturbationGenerator is called once per coordinate when
	// DegenerateInputHandling is DegeneratePerturbInternal.
	PerturbationGenerator func() float64
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		PlaneDistanceTolerance:  DefaultPlaneDistanceTolerance,
		DegenerateInputHandling: DegenerateNone,
	}
}

// validate checks the configuration and returns a copy with defaults
// filled in.
func (c Config) validate() (Config, error) {
	if c.PlaneDistanceTolerance < 0 {
		return c, fmt.Errorf("%w: negative plane distance tolerance %g", ErrConfiguration, c.PlaneDistanceTolerance)
	}
	if c.PlaneDistanceTolerance == 0 {
		c.PlaneDistanceTolerance = DefaultPlaneDistanceTolerance
	}

	switch c.DegenerateInputHandling {
	case DegenerateNone:
	case DegeneratePerturbInternal:
		if c.PerturbationGenerator == nil {
			return c, fmt.Errorf("%w: PerturbationGenerator cannot be nil if %s is enabled", ErrConfiguration, c.DegenerateInputHandling)
		}
	default:
		return c, fmt.Errorf("%w: unknown degenerate input handling %s", ErrConfiguration, c.DegenerateInputHandling)
	}

	return c, nil
}

// RandomPerturbation returns a deterministic generator of offsets uniformly
// distributed in [-amplitude, amplitude], for use as PerturbationGenerator.
// See DegeneratePerturbInternal for choosing amplitude. The generator is not
// safe for concurrent use.
func RandomPerturbation(seed uint64, amplitude float64) func() float64 {
	rng := rand.New(rand.NewPCG(seed, seed))
	return func() float64 {
		return (2*rng.Float64() - 1) * amplitude
	}
}
