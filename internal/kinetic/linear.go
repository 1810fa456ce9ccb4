package kinetic

// Linear models a rate proportional to the solute with a constant gain:
//
//	rate(S) = K·S
//	d/dS    = K
//
// One packed parameter: K.
type Linear struct {
	k float64
}

func NewLinear(k float64) *Linear {
	return &Linear{k: k}
}

func (f *Linear) ParamCount() int { return 1 }

func (f *Linear) Init(src ParamSource) error {
	k, err := src.Float("K")
	if err != nil {
		return err
	}
	f.k = k
	return nil
}

func (f *Linear) InitInto(src ParamSource, params []float64, off int) error {
	k, err := src.Float("K")
	if err != nil {
		return err
	}
	params[off] = k
	return nil
}

func (f *Linear) Rate(solute float64) float64 {
	return f.k * solute
}

func (f *Linear) RateAt(solute float64, params []float64, off int) float64 {
	return params[off] * solute
}

func (f *Linear) Derivative(float64) float64 {
	return f.k
}

func (f *Linear) DerivativeAt(_ float64, params []float64, off int) float64 {
	return params[off]
}
