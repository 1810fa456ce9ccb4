package kinetic

// FirstOrder models a rate equal to the solute concentration. It takes no
// parameters, so it occupies zero slots in a packed array and both
// initializers are no-ops.
type FirstOrder struct{}

func NewFirstOrder() *FirstOrder {
	return &FirstOrder{}
}

func (f *FirstOrder) ParamCount() int { return 0 }

func (f *FirstOrder) Init(ParamSource) error { return nil }

func (f *FirstOrder) InitInto(ParamSource, []float64, int) error { return nil }

func (f *FirstOrder) Rate(solute float64) float64 {
	return solute
}

func (f *FirstOrder) RateAt(solute float64, _ []float64, _ int) float64 {
	return solute
}

func (f *FirstOrder) Derivative(float64) float64 {
	return 1
}

func (f *FirstOrder) DerivativeAt(float64, []float64, int) float64 {
	return 1
}
