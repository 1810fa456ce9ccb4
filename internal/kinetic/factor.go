package kinetic

// ParamSource supplies named scalar parameters scoped to one factor
// definition. Implementations are expected to be in-memory lookups over
// already-parsed configuration.
type ParamSource interface {
	Float(name string) (float64, error)
}

// Factor is one multiplicative term of a reaction rate expression,
// depending on a single solute concentration.
//
// Every factor supports two parameter-storage modes that must produce
// identical results for the same values:
//
//   - instance-owned: parameters live in private fields, set once by Init.
//     Used when all simulated entities share one global rate law.
//   - externally-owned: parameters live in a caller-owned packed array,
//     addressed by an offset handed in on every call. Used when each agent
//     in a population carries its own parameter values, avoiding one
//     allocation per agent per solute.
//
// The *At methods only read the array; InitInto is the single place this
// package writes to it. The array view is borrowed, never retained, and
// bounds are the caller's contract: off+ParamCount() must not exceed
// len(params).
type Factor interface {
	// ParamCount reports how many contiguous slots the factor occupies in
	// a packed parameter array. Fixed per variant.
	ParamCount() int

	// Init reads the variant's named parameters from src into instance
	// state. On error no parameter is set.
	Init(src ParamSource) error

	// InitInto reads the same named parameters and writes them into
	// params[off : off+ParamCount()] in the variant's declared order.
	// Instance state is untouched; on error nothing is written.
	InitInto(src ParamSource, params []float64, off int) error

	// Rate evaluates the factor for a solute concentration using
	// instance-owned parameters. Solute must be >= 0.
	Rate(solute float64) float64

	// RateAt evaluates the factor using parameters read from params[off:].
	RateAt(solute float64, params []float64, off int) float64

	// Derivative is the closed-form d(Rate)/d(solute), instance-owned
	// parameters.
	Derivative(solute float64) float64

	// DerivativeAt is the same derivative with externally-owned parameters.
	DerivativeAt(solute float64, params []float64, off int) float64
}
