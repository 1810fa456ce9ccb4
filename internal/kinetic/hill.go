package kinetic

import "math"

// Hill models cooperative saturation kinetics:
//
//	rate(S) = Sʰ / (Ksʰ + Sʰ)
//	d/dS    = h·Ksʰ·Sʰ⁻¹ / (Ksʰ + Sʰ)²
//
// With h=1 this reduces to Monod. Packed parameter order: Ks, then h.
type Hill struct {
	ks float64
	h  float64 // Hill exponent
}

func NewHill(ks, h float64) *Hill {
	return &Hill{ks: ks, h: h}
}

func (f *Hill) ParamCount() int { return 2 }

func (f *Hill) Init(src ParamSource) error {
	ks, err := src.Float("Ks")
	if err != nil {
		return err
	}
	h, err := src.Float("h")
	if err != nil {
		return err
	}
	f.ks, f.h = ks, h
	return nil
}

func (f *Hill) InitInto(src ParamSource, params []float64, off int) error {
	ks, err := src.Float("Ks")
	if err != nil {
		return err
	}
	h, err := src.Float("h")
	if err != nil {
		return err
	}
	params[off] = ks
	params[off+1] = h
	return nil
}

func hillRate(s, ks, h float64) float64 {
	sh := math.Pow(s, h)
	return sh / (math.Pow(ks, h) + sh)
}

func hillDeriv(s, ks, h float64) float64 {
	ksh := math.Pow(ks, h)
	d := ksh + math.Pow(s, h)
	return h * ksh * math.Pow(s, h-1) / (d * d)
}

func (f *Hill) Rate(solute float64) float64 {
	return hillRate(solute, f.ks, f.h)
}

func (f *Hill) RateAt(solute float64, params []float64, off int) float64 {
	return hillRate(solute, params[off], params[off+1])
}

func (f *Hill) Derivative(solute float64) float64 {
	return hillDeriv(solute, f.ks, f.h)
}

func (f *Hill) DerivativeAt(solute float64, params []float64, off int) float64 {
	return hillDeriv(solute, params[off], params[off+1])
}
