package engine

import (
	"math"
	"strconv"
	"testing"
)

func TestFormat(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{0, "0"},
		{1, "1"},
		{-2.5, "-2.5"},
		{1024, "1024"},
		{0.125, "0.125"},
		{1.0 / 3.0, "0.3333333333"},
		{math.Copysign(0, -1), "0"},
	}
	for _, c := range cases {
		if got := Format(c.in); got != c.want {
			t.Errorf("Format(%v) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestFormatExtremeMagnitudes(t *testing.T) {
	for _, v := range []float64{1e15, -3.2e18, 5e-11} {
		got := Format(v)
		back, err := strconv.ParseFloat(got, 64)
		if err != nil {
			t.Fatalf("Format(%v) = %q is not parseable: %v", v, got, err)
		}
		if math.Abs(back-v) > math.Abs(v)*1e-9 {
			t.Errorf("Format(%v) = %q round-trips to %v", v, got, back)
		}
	}
}
