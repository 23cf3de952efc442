package engine

import (
	"fmt"
	"math"
	"regexp"
	"strings"
	"unicode"

	"github.com/Knetic/govaluate"
)

// functions is the fixed table of callables an expression may use.
// Anything outside it is rejected at parse time.
var functions = map[string]govaluate.ExpressionFunction{
	"sin":  unary("sin", math.Sin),
	"cos":  unary("cos", math.Cos),
	"tan":  unary("tan", math.Tan),
	"asin": domainUnary("asin", math.Asin, inUnitRange, "requires an argument in [-1, 1]"),
	"acos": domainUnary("acos", math.Acos, inUnitRange, "requires an argument in [-1, 1]"),
	"atan": unary("atan", math.Atan),
	"sinh": unary("sinh", math.Sinh),
	"cosh": unary("cosh", math.Cosh),
	"tanh": unary("tanh", math.Tanh),
	"log":  domainUnary("log", math.Log10, positive, "requires a positive argument"),
	"ln":   domainUnary("ln", math.Log, positive, "requires a positive argument"),
	"sqrt": domainUnary("sqrt", math.Sqrt, nonNegative, "requires a non-negative argument"),
	"exp":  unary("exp", math.Exp),
	"abs":  unary("abs", math.Abs),

	"factorial": func(args ...interface{}) (interface{}, error) {
		n, err := oneArg("factorial", args)
		if err != nil {
			return nil, err
		}
		if n < 0 || n != math.Trunc(n) {
			return nil, fmt.Errorf("factorial requires a non-negative integer")
		}
		if n > 170 {
			return nil, fmt.Errorf("factorial(%g) overflows", n)
		}
		f := 1.0
		for i := 2.0; i <= n; i++ {
			f *= i
		}
		return f, nil
	},

	"pow": func(args ...interface{}) (interface{}, error) {
		if len(args) != 2 {
			return nil, fmt.Errorf("pow expects 2 arguments, got %d", len(args))
		}
		x, xok := args[0].(float64)
		y, yok := args[1].(float64)
		if !xok || !yok {
			return nil, fmt.Errorf("pow expects numeric arguments")
		}
		return math.Pow(x, y), nil
	},
}

func inUnitRange(x float64) bool { return x >= -1 && x <= 1 }
func positive(x float64) bool    { return x > 0 }
func nonNegative(x float64) bool { return x >= 0 }

func oneArg(name string, args []interface{}) (float64, error) {
	if len(args) != 1 {
		return 0, fmt.Errorf("%s expects 1 argument, got %d", name, len(args))
	}
	x, ok := args[0].(float64)
	if !ok {
		return 0, fmt.Errorf("%s expects a numeric argument", name)
	}
	return x, nil
}

func unary(name string, f func(float64) float64) govaluate.ExpressionFunction {
	return func(args ...interface{}) (interface{}, error) {
		x, err := oneArg(name, args)
		if err != nil {
			return nil, err
		}
		return f(x), nil
	}
}

func domainUnary(name string, f func(float64) float64, ok func(float64) bool, msg string) govaluate.ExpressionFunction {
	return func(args ...interface{}) (interface{}, error) {
		x, err := oneArg(name, args)
		if err != nil {
			return nil, err
		}
		if !ok(x) {
			return nil, fmt.Errorf("%s %s", name, msg)
		}
		return f(x), nil
	}
}

// normalizer maps calculator glyphs to parseable operators. "^" means
// exponentiation here, not XOR.
var normalizer = strings.NewReplacer(
	"π", "pi",
	"×", "*",
	"÷", "/",
	"√(", "sqrt(",
	"^", "**",
)

// sciNotation matches a number in e-notation (1e+15, 2.5e3, 1.5e-7). The
// leading group keeps it from firing inside an identifier.
var sciNotation = regexp.MustCompile(`(^|[^0-9A-Za-z_.])([0-9]+(?:\.[0-9]+)?)[eE]([+-]?[0-9]+)`)

func Normalize(expr string) string {
	s := strings.TrimSpace(normalizer.Replace(expr))
	// the parser has no e-notation literals; rewrite them as m * 10**p so
	// results fed back into the input (Format output) stay evaluable
	s = sciNotation.ReplaceAllStringFunc(s, func(match string) string {
		parts := sciNotation.FindStringSubmatch(match)
		exp := strings.TrimPrefix(parts[3], "+")
		return fmt.Sprintf("%s(%s * 10**(%s))", parts[1], parts[2], exp)
	})
	return s
}

// Expr is a compiled expression with at most one free variable.
type Expr struct {
	eval     *govaluate.EvaluableExpression
	variable string
}

// Compile parses expr. variable may be "" for a closed-form expression.
func Compile(expr, variable string) (*Expr, error) {
	if variable != "" && !validVariable(variable) {
		return nil, fmt.Errorf("invalid variable name %q", variable)
	}
	ev, err := govaluate.NewEvaluableExpressionWithFunctions(Normalize(expr), functions)
	if err != nil {
		return nil, fmt.Errorf("invalid expression: %w", err)
	}
	return &Expr{eval: ev, variable: variable}, nil
}

// At evaluates the expression with its variable bound to x. For a
// closed-form expression x is ignored.
func (e *Expr) At(x float64) (float64, error) {
	params := map[string]interface{}{"pi": math.Pi, "e": math.E}
	if e.variable != "" {
		params[e.variable] = x
	}
	out, err := e.eval.Evaluate(params)
	if err != nil {
		return 0, fmt.Errorf("cannot evaluate: %w", err)
	}
	v, ok := out.(float64)
	if !ok {
		return 0, fmt.Errorf("expression is not numeric")
	}
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return 0, fmt.Errorf("undefined result (division by zero?)")
	}
	return v, nil
}

// Eval evaluates a closed-form expression.
func Eval(expr string) (float64, error) {
	e, err := Compile(expr, "")
	if err != nil {
		return 0, err
	}
	return e.At(0)
}

// validVariable rejects names that collide with constants or functions.
func validVariable(name string) bool {
	if name == "" || name == "e" || name == "pi" {
		return false
	}
	if _, taken := functions[name]; taken {
		return false
	}
	for i, r := range name {
		if !unicode.IsLetter(r) && !(i > 0 && unicode.IsDigit(r)) {
			return false
		}
	}
	return true
}
