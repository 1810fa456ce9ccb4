package reaction

import (
	"fmt"

	"github.com/jwirth/biokin/internal/kinetic"
)

// Term binds one kinetic factor to an index in the solute concentration
// vector.
type Term struct {
	Factor kinetic.Factor
	Solute int
}

// Reaction is a multiplicative composition of kinetic factors, one per
// limiting or inhibiting solute:
//
//	rate(C) = muMax · Π factorᵢ(C[soluteᵢ])
//
// Like the factors themselves, a reaction evaluates in both parameter-storage
// modes: the plain methods use each factor's instance-owned parameters, the
// *At methods read a packed array in which every term occupies ParamCount()
// slots, in term order, starting at the given offset.
type Reaction struct {
	Name  string
	MuMax float64
	Terms []Term
}

// ParamCount is the number of packed-array slots the whole reaction
// occupies: the sum over its terms. The population model uses this to size
// per-agent parameter arrays.
func (r *Reaction) ParamCount() int {
	n := 0
	for _, t := range r.Terms {
		n += t.Factor.ParamCount()
	}
	return n
}

// InitInto packs every term's parameters contiguously in term order,
// reading term i from srcs[i].
func (r *Reaction) InitInto(srcs []kinetic.ParamSource, params []float64, off int) error {
	if len(srcs) != len(r.Terms) {
		return fmt.Errorf("reaction %s: %d parameter sources for %d terms", r.Name, len(srcs), len(r.Terms))
	}
	for i, t := range r.Terms {
		if err := t.Factor.InitInto(srcs[i], params, off); err != nil {
			return fmt.Errorf("reaction %s, term %d: %w", r.Name, i, err)
		}
		off += t.Factor.ParamCount()
	}
	return nil
}

// Rate evaluates the overall reaction rate for a concentration vector.
func (r *Reaction) Rate(conc []float64) float64 {
	rate := r.MuMax
	for _, t := range r.Terms {
		rate *= t.Factor.Rate(conc[t.Solute])
	}
	return rate
}

// RateAt evaluates the rate with parameters read from a packed array.
func (r *Reaction) RateAt(conc, params []float64, off int) float64 {
	rate := r.MuMax
	for _, t := range r.Terms {
		rate *= t.Factor.RateAt(conc[t.Solute], params, off)
		off += t.Factor.ParamCount()
	}
	return rate
}

// Derivative is the partial derivative of Rate with respect to
// conc[solute], by the product rule: for each term on that solute, its
// factor derivative times the product of every other factor.
func (r *Reaction) Derivative(conc []float64, solute int) float64 {
	total := 0.0
	for i, t := range r.Terms {
		if t.Solute != solute {
			continue
		}
		part := r.MuMax * t.Factor.Derivative(conc[solute])
		for j, o := range r.Terms {
			if j != i {
				part *= o.Factor.Rate(conc[o.Solute])
			}
		}
		total += part
	}
	return total
}

// DerivativeAt is Derivative with packed parameters.
func (r *Reaction) DerivativeAt(conc []float64, solute int, params []float64, off int) float64 {
	total := 0.0
	tOff := off
	for i, t := range r.Terms {
		if t.Solute == solute {
			part := r.MuMax * t.Factor.DerivativeAt(conc[solute], params, tOff)
			oOff := off
			for j, o := range r.Terms {
				if j != i {
					part *= o.Factor.RateAt(conc[o.Solute], params, oOff)
				}
				oOff += o.Factor.ParamCount()
			}
			total += part
		}
		tOff += t.Factor.ParamCount()
	}
	return total
}
