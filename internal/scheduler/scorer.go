package scheduler

import (
	"math"

	"github.com/google/uuid"
)

// epsilon guards the fairness division when the mean load is zero.
const epsilon = 1e-9

// Metrics are the quality numbers computed for one solve result. Clients
// display and compare them across solves, so the formula is fixed for a
// given solver version.
type Metrics struct {
	AssignmentCount int
	HardViolations  int
	HealthScore     float64
}

// Score evaluates a solve result.
//
// hard_violations is the count of unfilled required slots. health_score is
//
//	100 * (1 - violationPenalty) * fairnessFactor
//
// where violationPenalty = min(1, violations/totalSlots) and fairnessFactor
// = clamp01(1 - stddev(loads)/(mean(loads)+epsilon)). More violations can
// only lower the score; more even load can only raise it. A window with no
// demanded slots scores 100, and an empty pool is vacuously balanced.
func Score(result *Result) Metrics {
	m := Metrics{
		AssignmentCount: len(result.Assignments),
		HardViolations:  result.HardViolations(),
	}

	violationPenalty := 0.0
	if result.TotalDemandedSlots > 0 {
		violationPenalty = math.Min(1, float64(m.HardViolations)/float64(result.TotalDemandedSlots))
	}

	m.HealthScore = 100 * (1 - violationPenalty) * fairnessFactor(result.Loads)
	return m
}

// fairnessFactor rewards even distribution of load across the whole pool,
// counting people who received no assignments.
func fairnessFactor(loads map[uuid.UUID]int) float64 {
	if len(loads) == 0 {
		return 1
	}

	var sum float64
	for _, load := range loads {
		sum += float64(load)
	}
	mean := sum / float64(len(loads))

	var varianceSum float64
	for _, load := range loads {
		diff := float64(load) - mean
		varianceSum += diff * diff
	}
	stddev := math.Sqrt(varianceSum / float64(len(loads)))

	factor := 1 - stddev/(mean+epsilon)
	if factor < 0 {
		return 0
	}
	if factor > 1 {
		return 1
	}
	return factor
}
