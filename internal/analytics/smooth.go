package analytics

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/interp"
)

// DefaultSmoothSamples is the resolution of the resampled display curve.
const DefaultSmoothSamples = 10000

// A cubic spline needs at least four knots.
const minSplinePoints = 4

// ErrTooFewPoints reports a ledger too short to fit the display spline.
// Callers treat it as "smoothed curve unavailable", not as a failure of
// the report as a whole.
var ErrTooFewPoints = errors.New("too few points for cubic spline smoothing")

// SmoothBalances fits a natural cubic spline to the index-vs-balance
// series and resamples it on an even grid of the given size across the
// same index range. The result is cosmetic; every numerical statistic
// is derived from the raw balance sequence.
func SmoothBalances(balances []float64, samples int) ([]CurvePoint, error) {
	if len(balances) < minSplinePoints {
		return nil, fmt.Errorf("%w: have %d, need %d", ErrTooFewPoints, len(balances), minSplinePoints)
	}
	if samples < 2 {
		samples = DefaultSmoothSamples
	}

	xs := make([]float64, len(balances))
	for i := range xs {
		xs[i] = float64(i)
	}

	var spline interp.NaturalCubic
	if err := spline.Fit(xs, balances); err != nil {
		return nil, fmt.Errorf("fit balance spline: %w", err)
	}

	span := xs[len(xs)-1] - xs[0]
	step := span / float64(samples-1)
	curve := make([]CurvePoint, samples)
	for i := 0; i < samples; i++ {
		x := xs[0] + float64(i)*step
		if i == samples-1 {
			x = xs[len(xs)-1] // avoid drifting past the last knot
		}
		curve[i] = CurvePoint{X: x, Balance: spline.Predict(x)}
	}
	return curve, nil
}
