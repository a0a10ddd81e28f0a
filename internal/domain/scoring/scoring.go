// Package scoring computes the connection score combining candidate
// performance, tenure with the target, and network distance.
package scoring

import "github.com/gridironlab/coachnet/internal/domain/model"

// DefaultMissingValueFloor is the performance weight assigned to a coach
// with no recorded performance value. A deliberate "unknown coach"
// default, not zero.
const DefaultMissingValueFloor = 0.3

// Tenure step multipliers, keyed by distinct seasons with the target.
const (
	tenureTwoYears      = 1.5
	tenureThreeYears    = 2.0
	tenureFourPlusYears = 2.5
)

// Degree multipliers by network distance from the target.
const (
	degreeOne     = 1.0
	degreeTwo     = 0.5
	degreeFurther = 0.1
)

// Option applies a configuration option to the Scorer.
type Option func(*Scorer)

// WithMissingValueFloor overrides the default performance weight for
// coaches with no recorded value.
func WithMissingValueFloor(floor float64) Option {
	return func(s *Scorer) {
		if floor > 0 {
			s.missingFloor = floor
		}
	}
}

// Scorer is a pure connection scorer. Scores are non-decreasing in value
// and tenure and non-increasing in degree; the multipliers are fixed step
// functions, intentionally simple and auditable rather than learned.
type Scorer struct {
	missingFloor float64
}

// New creates a connection scorer.
func New(opts ...Option) *Scorer {
	s := &Scorer{missingFloor: DefaultMissingValueFloor}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Score computes performance x tenure multiplier x degree multiplier.
func (s *Scorer) Score(value model.PerfValue, yearsTogether, degree int) float64 {
	return s.PerformanceWeight(value) * TenureMultiplier(yearsTogether) * DegreeMultiplier(degree)
}

// PerformanceWeight resolves a possibly-missing performance value,
// substituting the missing-value floor.
func (s *Scorer) PerformanceWeight(value model.PerfValue) float64 {
	if !value.Valid {
		return s.missingFloor
	}
	return value.Value
}

// TenureMultiplier maps distinct seasons together to a step multiplier:
// 1 year x1.0, 2 x1.5, 3 x2.0, 4+ x2.5.
func TenureMultiplier(years int) float64 {
	switch {
	case years >= 4:
		return tenureFourPlusYears
	case years == 3:
		return tenureThreeYears
	case years == 2:
		return tenureTwoYears
	default:
		return 1.0
	}
}

// DegreeMultiplier maps network distance to a step multiplier: direct
// connections x1.0, second degree x0.5, anything further x0.1.
func DegreeMultiplier(degree int) float64 {
	switch degree {
	case 1:
		return degreeOne
	case 2:
		return degreeTwo
	default:
		return degreeFurther
	}
}
