package ratings

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// WeightedAverage computes the weighted average of values, skipping NaN
// positions and upscaling the remaining weight by 1/(1-w), where w is the
// total weight at the skipped positions. Weights are expected to sum to 1.
// With every value missing the upscale divides by zero and the result is
// unusable; callers must guarantee at least one non-missing value. Values
// and weights must have equal length.
func WeightedAverage(values, weights []float64) (float64, error) {
	if len(values) != len(weights) {
		return math.NaN(), fmt.Errorf("got %d values and %d weights", len(values), len(weights))
	}

	kept := make([]float64, 0, len(values))
	keptWeights := make([]float64, 0, len(weights))
	missingWeight := 0.0
	for i, v := range values {
		if isMissing(v) {
			missingWeight += weights[i]
			continue
		}
		kept = append(kept, v)
		keptWeights = append(keptWeights, weights[i])
	}

	return floats.Dot(kept, keptWeights) / (1 - missingWeight), nil
}
