package calculus

import (
	"fmt"
	"io"
	"math"
	"regexp"
	"strings"

	"github.com/Konstantin8105/sm"
	"gonum.org/v1/gonum/diff/fd"

	"scicalc/engine"
)

// DerivativeResult is the derivative of an expression at a point. Symbolic
// holds the simplified derivative expression when one could be derived; it
// may be empty, the numeric value stands on its own.
type DerivativeResult struct {
	Value    float64
	Symbolic string
}

// Differentiate evaluates d(expr)/d(variable) at point using central
// differences, and attaches a symbolic form on a best-effort basis.
func Differentiate(expr, variable string, point float64) (DerivativeResult, error) {
	f, err := engine.Compile(expr, variable)
	if err != nil {
		return DerivativeResult{}, err
	}
	// surface domain errors at the point itself before differencing
	if _, err := f.At(point); err != nil {
		return DerivativeResult{}, err
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

	d := fd.Derivative(g, point, &fd.Settings{Formula: fd.Central})
	if evalErr != nil {
		return DerivativeResult{}, fmt.Errorf("expression is undefined near %g: %w", point, evalErr)
	}
	if math.IsNaN(d) || math.IsInf(d, 0) {
		return DerivativeResult{}, fmt.Errorf("derivative is undefined at %g", point)
	}
	return DerivativeResult{Value: d, Symbolic: symbolic(expr, variable)}, nil
}

// powPattern matches a^b where the base is a bare identifier or number and
// the exponent is a number (optionally negative or parenthesized). Bases
// like sin(x)^2 are left alone and simply yield no symbolic form.
var powPattern = regexp.MustCompile(`([A-Za-z_][A-Za-z_0-9]*|[0-9]+(?:\.[0-9]+)?)\s*\^\s*(\(?-?[0-9]+(?:\.[0-9]+)?\)?)`)

var powGlyphs = strings.NewReplacer("**", "^", "×", "*", "÷", "/")

// rewritePow turns the calculator's power syntax into pow(a, b) calls, the
// form sm understands (it parses Go syntax, where ^ is XOR).
func rewritePow(expr string) string {
	return powPattern.ReplaceAllString(powGlyphs.Replace(expr), "pow(${1}, ${2})")
}

// symbolic asks sm for the simplified derivative expression. Anything it
// cannot parse just comes back empty; the numeric value does not depend on it.
func symbolic(expr, variable string) string {
	in := fmt.Sprintf("d(%s, %s); variable(%s)", rewritePow(expr), variable, variable)
	out, err := sm.Sexpr(io.Discard, in)
	if err != nil {
		return ""
	}
	return out
}
