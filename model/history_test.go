package model

import (
	"errors"
	"testing"
)

func TestHistoryAppendOrder(t *testing.T) {
	var h History
	h.Add(NewResult(OpEval, []string{"1+1"}, "2"))
	h.Add(NewResult(OpEval, []string{"2*3"}, "6"))

	if h.Len() != 2 {
		t.Fatalf("Len = %d, want 2", h.Len())
	}
	if h.At(0).Result != "2" || h.At(1).Result != "6" {
		t.Errorf("entries out of order: %v, %v", h.At(0), h.At(1))
	}
}

func TestHistoryRecordsFailures(t *testing.T) {
	var h History
	h.Add(NewFailure(OpEval, []string{"asin(2)"}, errors.New("asin requires an argument in [-1, 1]")))

	if h.Len() != 1 {
		t.Fatalf("Len = %d, want 1", h.Len())
	}
	e := h.At(0)
	if !e.Failed() {
		t.Errorf("expected failed entry")
	}
	if e.Result != "" {
		t.Errorf("failed entry has result %q", e.Result)
	}
}

func TestHistoryClear(t *testing.T) {
	var h History
	h.Add(NewResult(OpEval, []string{"1"}, "1"))
	h.Add(NewResult(OpEval, []string{"2"}, "2"))
	h.Clear()

	if h.Len() != 0 {
		t.Fatalf("Len after Clear = %d, want 0", h.Len())
	}

	// next computation starts a fresh log at index 0
	h.Add(NewResult(OpEval, []string{"3"}, "3"))
	if h.Len() != 1 || h.At(0).Result != "3" {
		t.Errorf("entry after Clear not at index 0: len=%d", h.Len())
	}
}

func TestHistoryEntriesIsACopy(t *testing.T) {
	var h History
	h.Add(NewResult(OpEval, []string{"1"}, "1"))

	entries := h.Entries()
	entries[0].Result = "mutated"

	if h.At(0).Result != "1" {
		t.Errorf("Entries leaked internal state")
	}
}

func TestEntryString(t *testing.T) {
	cases := []struct {
		entry Entry
		want  string
	}{
		{
			Entry{Op: OpEval, Inputs: []string{"sin(pi/2)"}, Result: "1"},
			"sin(pi/2) = 1",
		},
		{
			Entry{Op: OpIntegral, Inputs: []string{"x^2", "x", "0", "1"}, Result: "0.3333333333"},
			"∫(x^2) dx from 0 to 1 = 0.3333333333",
		},
		{
			Entry{Op: OpDerivative, Inputs: []string{"sin(x)", "x", "0"}, Result: "1"},
			"d/dx(sin(x)) at 0 = 1",
		},
		{
			Entry{Op: OpEval, Inputs: []string{"1/0"}, Err: "undefined result (division by zero?)"},
			"1/0 : undefined result (division by zero?)",
		},
	}
	for _, c := range cases {
		if got := c.entry.String(); got != c.want {
			t.Errorf("String() = %q, want %q", got, c.want)
		}
	}
}
