package kinetic

import (
	"errors"
	"math"
	"testing"
)

func TestHaldaneExample(t *testing.T) {
	// Ks=2, Ki=50, S=5: denominator = 2 + 5 + 25/50 = 7.5
	h := NewHaldane(2.0, 50.0)

	rate := h.Rate(5.0)
	wantRate := 5.0 / 7.5
	if math.Abs(rate-wantRate) > 1e-12 {
		t.Errorf("rate: got %.10f, expected %.10f", rate, wantRate)
	}

	deriv := h.Derivative(5.0)
	wantDeriv := 1.5 / 56.25
	if math.Abs(deriv-wantDeriv) > 1e-12 {
		t.Errorf("derivative: got %.10f, expected %.10f", deriv, wantDeriv)
	}
}

func TestHaldaneZeroSolute(t *testing.T) {
	h := NewHaldane(2.0, 50.0)
	if got := h.Rate(0); got != 0 {
		t.Errorf("rate(0): got %v, expected 0", got)
	}
}

func TestHaldaneNonNegative(t *testing.T) {
	h := NewHaldane(0.5, 8.0)
	for s := 0.0; s <= 100.0; s += 0.25 {
		if h.Rate(s) < 0 {
			t.Fatalf("rate(%.2f) negative: %v", s, h.Rate(s))
		}
	}
}

func TestHaldaneLowConcentrationLimit(t *testing.T) {
	// As S -> 0+ the factor behaves like S/Ks.
	h := NewHaldane(3.0, 40.0)
	s := 1e-9
	got := h.Rate(s) / s
	want := 1.0 / 3.0
	if math.Abs(got-want)/want > 1e-6 {
		t.Errorf("rate(S)/S near zero: got %.10f, expected %.10f", got, want)
	}
}

func TestHaldaneHighConcentrationInhibits(t *testing.T) {
	h := NewHaldane(2.0, 50.0)
	optimum := math.Sqrt(2.0 * 50.0) // where the derivative changes sign
	if h.Rate(10*optimum) >= h.Rate(optimum) {
		t.Errorf("rate should decay past the optimum: rate(%g)=%g, rate(%g)=%g",
			optimum, h.Rate(optimum), 10*optimum, h.Rate(10*optimum))
	}
	if h.Derivative(10 * optimum) >= 0 {
		t.Errorf("derivative past the optimum should be negative, got %g", h.Derivative(10*optimum))
	}
}

func TestHaldaneStorageModesAgree(t *testing.T) {
	cases := []struct{ ks, ki float64 }{
		{2.0, 50.0},
		{0.1, 1.0},
		{7.5, 300.0},
	}
	for _, c := range cases {
		h := NewHaldane(c.ks, c.ki)
		params := []float64{99, 99, c.ks, c.ki, 99}
		const off = 2
		for s := 0.0; s <= 50.0; s += 0.5 {
			if got, want := h.RateAt(s, params, off), h.Rate(s); got != want {
				t.Fatalf("Ks=%g Ki=%g S=%g: RateAt=%v, Rate=%v", c.ks, c.ki, s, got, want)
			}
			if got, want := h.DerivativeAt(s, params, off), h.Derivative(s); got != want {
				t.Fatalf("Ks=%g Ki=%g S=%g: DerivativeAt=%v, Derivative=%v", c.ks, c.ki, s, got, want)
			}
		}
	}
}

func TestHaldaneInitInto(t *testing.T) {
	src := mapSource{"Ks": 2.0, "Ki": 50.0}
	h := NewHaldane(1.0, 1.0)

	params := []float64{-1, -1, -1, -1, -1}
	if err := h.InitInto(src, params, 2); err != nil {
		t.Fatalf("InitInto failed: %v", err)
	}

	if params[2] != 2.0 || params[3] != 50.0 {
		t.Errorf("expected (Ks, Ki) at (2, 3), got params=%v", params)
	}
	for _, i := range []int{0, 1, 4} {
		if params[i] != -1 {
			t.Errorf("slot %d touched: %v", i, params[i])
		}
	}

	// InitInto must not disturb instance parameters.
	if got := h.Rate(5.0); got != NewHaldane(1.0, 1.0).Rate(5.0) {
		t.Errorf("instance state mutated by InitInto")
	}
}

func TestHaldaneMissingParam(t *testing.T) {
	h := NewHaldane(2.0, 50.0)
	before := h.Rate(5.0)

	err := h.Init(mapSource{"Ks": 3.0})
	if !errors.Is(err, ErrMissingParam) {
		t.Fatalf("expected ErrMissingParam, got %v", err)
	}
	// Neither parameter may be set on failure.
	if h.Rate(5.0) != before {
		t.Errorf("partial initialization observable after failed Init")
	}

	params := []float64{-1, -1}
	err = h.InitInto(mapSource{"Ks": 3.0}, params, 0)
	if !errors.Is(err, ErrMissingParam) {
		t.Fatalf("expected ErrMissingParam, got %v", err)
	}
	if params[0] != -1 || params[1] != -1 {
		t.Errorf("array written despite failed InitInto: %v", params)
	}
}

func TestHaldaneDegenerateKi(t *testing.T) {
	// Ki=0 is a configuration bug; the factor propagates the resulting
	// division by zero instead of masking it.
	h := NewHaldane(2.0, 0.0)
	if got := h.Rate(5.0); got != 0 {
		t.Errorf("rate with Ki=0: got %v, expected 0 (S/Inf)", got)
	}
	if got := h.Derivative(5.0); !math.IsNaN(got) && got != 0 {
		t.Errorf("derivative with Ki=0: got %v, expected NaN or 0", got)
	}
}
