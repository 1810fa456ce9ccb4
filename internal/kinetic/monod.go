package kinetic

// Monod models classic saturation kinetics:
//
//	rate(S) = S / (Ks + S)
//	d/dS    = Ks / (Ks + S)²
//
// One packed parameter: Ks.
type Monod struct {
	ks float64
}

func NewMonod(ks float64) *Monod {
	return &Monod{ks: ks}
}

func (m *Monod) ParamCount() int { return 1 }

func (m *Monod) Init(src ParamSource) error {
	ks, err := src.Float("Ks")
	if err != nil {
		return err
	}
	m.ks = ks
	return nil
}

func (m *Monod) InitInto(src ParamSource, params []float64, off int) error {
	ks, err := src.Float("Ks")
	if err != nil {
		return err
	}
	params[off] = ks
	return nil
}

func monodRate(s, ks float64) float64 {
	return s / (ks + s)
}

func monodDeriv(s, ks float64) float64 {
	d := ks + s
	return ks / (d * d)
}

func (m *Monod) Rate(solute float64) float64 {
	return monodRate(solute, m.ks)
}

func (m *Monod) RateAt(solute float64, params []float64, off int) float64 {
	return monodRate(solute, params[off])
}

func (m *Monod) Derivative(solute float64) float64 {
	return monodDeriv(solute, m.ks)
}

func (m *Monod) DerivativeAt(solute float64, params []float64, off int) float64 {
	return monodDeriv(solute, params[off])
}
