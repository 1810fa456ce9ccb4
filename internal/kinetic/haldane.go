package kinetic

// Haldane models substrate-inhibition kinetics. Same algebraic family as
// Monod, derived from the quasi-steady-state approximation, with an extra
// quadratic term that drives the rate back toward zero at high
// concentration:
//
//	rate(S) = S / (Ks + S + S²/Ki)
//	d/dS    = (Ks - S²/Ki) / (Ks + S + S²/Ki)²
//
// At low S the rate is ~S/Ks, near the optimum it saturates toward 1, and
// beyond it the S²/Ki term dominates. Packed parameter order: Ks, then Ki.
type Haldane struct {
	ks float64 // half-saturation concentration
	ki float64 // inhibition concentration
}

// NewHaldane returns a factor with instance-owned parameters already set.
func NewHaldane(ks, ki float64) *Haldane {
	return &Haldane{ks: ks, ki: ki}
}

func (h *Haldane) ParamCount() int { return 2 }

func (h *Haldane) Init(src ParamSource) error {
	ks, err := src.Float("Ks")
	if err != nil {
		return err
	}
	ki, err := src.Float("Ki")
	if err != nil {
		return err
	}
	h.ks, h.ki = ks, ki
	return nil
}

func (h *Haldane) InitInto(src ParamSource, params []float64, off int) error {
	ks, err := src.Float("Ks")
	if err != nil {
		return err
	}
	ki, err := src.Float("Ki")
	if err != nil {
		return err
	}
	params[off] = ks
	params[off+1] = ki
	return nil
}

func haldaneRate(s, ks, ki float64) float64 {
	return s / (ks + s + s*s/ki)
}

func haldaneDeriv(s, ks, ki float64) float64 {
	d := ks + s + s*s/ki
	return (ks - s*s/ki) / (d * d)
}

func (h *Haldane) Rate(solute float64) float64 {
	return haldaneRate(solute, h.ks, h.ki)
}

func (h *Haldane) RateAt(solute float64, params []float64, off int) float64 {
	return haldaneRate(solute, params[off], params[off+1])
}

func (h *Haldane) Derivative(solute float64) float64 {
	return haldaneDeriv(solute, h.ks, h.ki)
}

func (h *Haldane) DerivativeAt(solute float64, params []float64, off int) float64 {
	return haldaneDeriv(solute, params[off], params[off+1])
}
