package model

import (
	"fmt"
	"strings"
	"time"
)

type Operation string

const (
	OpEval       Operation = "eval"
	OpIntegral   Operation = "integral"
	OpDerivative Operation = "derivative"
)

// Entry is one recorded calculation. It is never mutated after creation;
// failed attempts are recorded too, with Err set instead of Result.
type Entry struct {
	Op     Operation
	Inputs []string // eval: [expr]; integral: [expr, var, lower, upper]; derivative: [expr, var, point]
	Result string
	Err    string
	Time   time.Time
}

func NewResult(op Operation, inputs []string, result string) Entry {
	return Entry{Op: op, Inputs: inputs, Result: result, Time: time.Now()}
}

func NewFailure(op Operation, inputs []string, err error) Entry {
	return Entry{Op: op, Inputs: inputs, Err: err.Error(), Time: time.Now()}
}

func (e Entry) Failed() bool {
	return e.Err != ""
}

// String renders the entry as a single display line.
func (e Entry) String() string {
	if e.Err != "" {
		return e.label() + " : " + e.Err
	}
	return e.label() + " = " + e.Result
}

func (e Entry) label() string {
	switch e.Op {
	case OpIntegral:
		if len(e.Inputs) == 4 {
			return fmt.Sprintf("∫(%s) d%s from %s to %s", e.Inputs[0], e.Inputs[1], e.Inputs[2], e.Inputs[3])
		}
	case OpDerivative:
		if len(e.Inputs) == 3 {
			return fmt.Sprintf("d/d%s(%s) at %s", e.Inputs[1], e.Inputs[0], e.Inputs[2])
		}
	}
	return strings.Join(e.Inputs, " ")
}
