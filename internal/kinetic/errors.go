package kinetic

import "errors"

// Configuration errors surfaced by factor initialization. Both abort
// construction of the enclosing reaction; neither is ever defaulted.
var (
	// ErrMissingParam indicates a required named parameter is absent from
	// the configuration source.
	ErrMissingParam = errors.New("kinetic: missing parameter")

	// ErrBadParam indicates a named parameter exists but is not numeric.
	ErrBadParam = errors.New("kinetic: parameter is not a number")
)
