package stats

import "gonum.org/v1/gonum/stat/distuv"

const (
	Confidence95 = 95.0
	Confidence99 = 99.0
)

// ZVal returns the two-sided z score for a confidence level given in percent.
func ZVal(pct float64) float64 {
	return distuv.UnitNormal.Quantile(0.5 + pct/200)
}
