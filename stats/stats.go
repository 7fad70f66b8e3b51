package stats

import "math"

const (
	Epsilon = 1e-6
)

func FuzzyEqual(a, b float64) bool {
	return math.Abs(a-b) < Epsilon
}

// Statistic is a running summary of a series of values, such as the scores
// of the rounds of a game. Mean and variance use Welford's algorithm.
type Statistic struct {
	n    int
	last float64
	min  float64
	max  float64
	mean float64
	m2   float64
}

func (s *Statistic) Push(val float64) {
	s.n++
	s.last = val
	if s.n == 1 {
		s.min, s.max = val, val
	} else {
		s.min = math.Min(s.min, val)
		s.max = math.Max(s.max, val)
	}
	delta := val - s.mean
	s.mean += delta / float64(s.n)
	s.m2 += delta * (val - s.mean)
}

func (s *Statistic) Mean() float64 {
	return s.mean
}

// Variance is the sample variance; it is 0 for fewer than two values.
func (s *Statistic) Variance() float64 {
	if s.n <= 1 {
		return 0.0
	}
	return s.m2 / float64(s.n-1)
}

func (s *Statistic) Stdev() float64 {
	return math.Sqrt(s.Variance())
}

// StandardError returns the standard error of the mean, scaled by a z value.
func (s *Statistic) StandardError(z float64) float64 {
	if s.n == 0 {
		return 0
	}
	return z * math.Sqrt(s.Variance()/float64(s.n))
}

// ConfidenceInterval returns the bounds of the mean at the given
// confidence level, in percent.
func (s *Statistic) ConfidenceInterval(pct float64) (float64, float64) {
	e := s.StandardError(ZVal(pct))
	return s.mean - e, s.mean + e
}

func (s *Statistic) Min() float64 {
	return s.min
}

func (s *Statistic) Max() float64 {
	return s.max
}

func (s *Statistic) Last() float64 {
	return s.last
}

func (s *Statistic) Count() int {
	return s.n
}
