// CLAUDE:SUMMARY Deterministic repair-cost estimation from (category, severity), rounded to the nearest thousand.
package dtc

import "math"

// defaultFlatCost is charged for categories missing from the table.
const defaultFlatCost = 5000

// severityScalar weights the category base cost by urgency.
var severityScalar = map[Severity]float64{
	SeverityHigh:   1.5,
	SeverityMedium: 1.0,
	SeverityLow:    0.8,
}

// EstimateCost computes the estimated repair cost for an inferred code:
// base(category) * scalar(severity) * multiplier(category), rounded to the
// nearest 1000. Pure and deterministic; the result is always a multiple of
// 1000 so downstream quote builders can treat it as a coarse band, not a
// price. Registry-known codes carry their own cost and never reach here.
func (t *CategoryTable) EstimateCost(category Category, severity Severity) int64 {
	scalar, ok := severityScalar[severity]
	if !ok {
		scalar = 1.0
	}

	spec, ok := t.Spec(category)
	if !ok {
		return roundToThousand(float64(t.defaultCost) * scalar)
	}
	return roundToThousand(float64(spec.BaseCost) * scalar * spec.Multiplier)
}

func roundToThousand(v float64) int64 {
	return int64(math.Round(v/1000.0)) * 1000
}
