// Package exact computes closed-form expectations for the dice-menu
// collection game. Each purchase attempt gets up to Retries rolls, so the
// chance of landing a new face while holding i of n is 1 - (i/n)^r, and the
// purchases spent at that stage follow a geometric distribution. The total
// is the sum of the per-stage geometric means, a coupon-collector sum with a
// retry-boosted success probability.
package exact

import (
	"math"

	"github.com/dicebar-xyz/go-dicebar/collector"
)

// ProbNew returns the probability that a purchase attempt yields a new face
// when i of p.Faces are already collected. Strictly positive for i < Faces,
// exactly 1 when nothing has been collected yet.
func ProbNew(p collector.Params, i int) float64 {
	miss := float64(i) / float64(p.Faces)
	return 1 - math.Pow(miss, float64(p.Retries))
}

// StageExpectations returns, for each i in [0, Faces), the expected number
// of purchases needed to move from i collected faces to i+1.
func StageExpectations(p collector.Params) []float64 {
	stages := make([]float64, p.Faces)
	for i := 0; i < p.Faces; i++ {
		stages[i] = 1 / ProbNew(p, i)
	}
	return stages
}

// ExpectedPurchases returns the expected total purchases to complete the
// collection. Pure function of the parameters.
func ExpectedPurchases(p collector.Params) (float64, error) {
	if err := p.Validate(); err != nil {
		return 0, err
	}
	total := 0.0
	for _, e := range StageExpectations(p) {
		total += e
	}
	return total, nil
}

// PurchaseVariance returns the variance of the total purchase count. Stages
// are independent geometric waits, so their variances add.
func PurchaseVariance(p collector.Params) (float64, error) {
	if err := p.Validate(); err != nil {
		return 0, err
	}
	total := 0.0
	for i := 0; i < p.Faces; i++ {
		q := ProbNew(p, i)
		total += (1 - q) / (q * q)
	}
	return total, nil
}

// PurchaseStdDev returns the standard deviation of the total purchase count.
func PurchaseStdDev(p collector.Params) (float64, error) {
	v, err := PurchaseVariance(p)
	if err != nil {
		return 0, err
	}
	return math.Sqrt(v), nil
}
