package calculus

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/integrate/quad"

	"scicalc/engine"
)

// quadNodes is the Gauss-Legendre order; the error estimate comes from
// re-evaluating at double the order.
const quadNodes = 120

// IntegralResult is a definite integral with a crude error estimate.
type IntegralResult struct {
	Value         float64
	ErrorEstimate float64
}

// Integrate computes the definite integral of expr with respect to variable
// over [lower, upper]. Reversed bounds negate the result; an expression that
// is unparseable or undefined somewhere on the interval is an error.
func Integrate(expr, variable string, lower, upper float64) (IntegralResult, error) {
	f, err := engine.Compile(expr, variable)
	if err != nil {
		return IntegralResult{}, err
	}
	if lower == upper {
		return IntegralResult{}, nil
	}
	sign := 1.0
	if lower > upper {
		lower, upper = upper, lower
		sign = -1
	}

	var evalErr error
	g := func(x float64) float64 {
		v, err := f.At(x)
		if err != nil {
			if evalErr == nil {
				evalErr = err
			}
			return math.NaN()
		}
		return v
	}

	coarse := quad.Fixed(g, lower, upper, quadNodes, nil, 0)
	fine := quad.Fixed(g, lower, upper, 2*quadNodes, nil, 0)
	if evalErr != nil {
		return IntegralResult{}, fmt.Errorf("integrand is undefined on [%g, %g]: %w", lower, upper, evalErr)
	}
	if math.IsNaN(fine) || math.IsInf(fine, 0) {
		return IntegralResult{}, fmt.Errorf("integral does not converge on [%g, %g]", lower, upper)
	}
	return IntegralResult{
		Value:         sign * fine,
		ErrorEstimate: math.Abs(fine - coarse),
	}, nil
}
