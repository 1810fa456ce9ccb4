package kinetic

import (
	"errors"
	"fmt"
	"math"
	"testing"
)

// mapSource is an in-memory ParamSource for tests.
type mapSource map[string]float64

func (m mapSource) Float(name string) (float64, error) {
	v, ok := m[name]
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrMissingParam, name)
	}
	return v, nil
}

var variants = []struct {
	name   string
	factor Factor
	params mapSource
	count  int
}{
	{"haldane", NewHaldane(2.0, 50.0), mapSource{"Ks": 2.0, "Ki": 50.0}, 2},
	{"monod", NewMonod(2.0), mapSource{"Ks": 2.0}, 1},
	{"simpleinhibition", NewSimpleInhibition(8.0), mapSource{"Ki": 8.0}, 1},
	{"hill", NewHill(2.0, 2.5), mapSource{"Ks": 2.0, "h": 2.5}, 2},
	{"linear", NewLinear(0.4), mapSource{"K": 0.4}, 1},
	{"firstorder", NewFirstOrder(), mapSource{}, 0},
}

func TestParamCounts(t *testing.T) {
	for _, v := range variants {
		if got := v.factor.ParamCount(); got != v.count {
			t.Errorf("%s: ParamCount = %d, expected %d", v.name, got, v.count)
		}
	}
}

func TestStorageModesAgree(t *testing.T) {
	for _, v := range variants {
		t.Run(v.name, func(t *testing.T) {
			const off = 3
			params := make([]float64, off+v.count)
			if err := v.factor.InitInto(v.params, params, off); err != nil {
				t.Fatalf("InitInto failed: %v", err)
			}
			for s := 0.0; s <= 20.0; s += 0.1 {
				if got, want := v.factor.RateAt(s, params, off), v.factor.Rate(s); got != want {
					t.Fatalf("S=%g: RateAt=%v, Rate=%v", s, got, want)
				}
				if got, want := v.factor.DerivativeAt(s, params, off), v.factor.Derivative(s); got != want {
					t.Fatalf("S=%g: DerivativeAt=%v, Derivative=%v", s, got, want)
				}
			}
		})
	}
}

func TestDerivativeMatchesFiniteDifference(t *testing.T) {
	for _, v := range variants {
		t.Run(v.name, func(t *testing.T) {
			for _, s := range []float64{0.5, 1.0, 2.0, 5.0, 12.0} {
				h := 1e-6 * math.Max(1.0, s)
				numeric := (v.factor.Rate(s+h) - v.factor.Rate(s-h)) / (2 * h)
				analytic := v.factor.Derivative(s)
				tol := 1e-6 * math.Max(1.0, math.Abs(analytic))
				if math.Abs(numeric-analytic) > tol {
					t.Errorf("S=%g: closed form %.12f, finite difference %.12f", s, analytic, numeric)
				}
			}
		})
	}
}

func TestInitAfterConstruction(t *testing.T) {
	for _, v := range variants {
		t.Run(v.name, func(t *testing.T) {
			if err := v.factor.Init(v.params); err != nil {
				t.Fatalf("Init failed: %v", err)
			}
		})
	}
}

func TestInitMissingParam(t *testing.T) {
	cases := []struct {
		name   string
		factor Factor
	}{
		{"haldane", NewHaldane(1, 1)},
		{"monod", NewMonod(1)},
		{"simpleinhibition", NewSimpleInhibition(1)},
		{"hill", NewHill(1, 1)},
		{"linear", NewLinear(1)},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if err := c.factor.Init(mapSource{}); !errors.Is(err, ErrMissingParam) {
				t.Errorf("expected ErrMissingParam, got %v", err)
			}
		})
	}
}
