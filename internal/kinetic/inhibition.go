package kinetic

// SimpleInhibition models non-competitive inhibition by the solute itself:
//
//	rate(S) = Ki / (Ki + S)
//	d/dS    = -Ki / (Ki + S)²
//
// The factor is 1 at S=0 and decays toward zero as the inhibitor
// accumulates. One packed parameter: Ki.
type SimpleInhibition struct {
	ki float64
}

func NewSimpleInhibition(ki float64) *SimpleInhibition {
	return &SimpleInhibition{ki: ki}
}

func (f *SimpleInhibition) ParamCount() int { return 1 }

func (f *SimpleInhibition) Init(src ParamSource) error {
	ki, err := src.Float("Ki")
	if err != nil {
		return err
	}
	f.ki = ki
	return nil
}

func (f *SimpleInhibition) InitInto(src ParamSource, params []float64, off int) error {
	ki, err := src.Float("Ki")
	if err != nil {
		return err
	}
	params[off] = ki
	return nil
}

func inhibitionRate(s, ki float64) float64 {
	return ki / (ki + s)
}

func inhibitionDeriv(s, ki float64) float64 {
	d := ki + s
	return -ki / (d * d)
}

func (f *SimpleInhibition) Rate(solute float64) float64 {
	return inhibitionRate(solute, f.ki)
}

func (f *SimpleInhibition) RateAt(solute float64, params []float64, off int) float64 {
	return inhibitionRate(solute, params[off])
}

func (f *SimpleInhibition) Derivative(solute float64) float64 {
	return inhibitionDeriv(solute, f.ki)
}

func (f *SimpleInhibition) DerivativeAt(solute float64, params []float64, off int) float64 {
	return inhibitionDeriv(solute, params[off])
}
