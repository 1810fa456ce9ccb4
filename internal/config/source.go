package config

import (
	"fmt"
	"strconv"

	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/v2"

	"github.com/jwirth/biokin/internal/kinetic"
)

// Source adapts a flat koanf tree holding one factor definition's parameters
// to the kinetic.ParamSource lookup contract.
type Source struct {
	k *koanf.Koanf
}

// NewSource wraps an in-memory parameter map.
func NewSource(values map[string]any) *Source {
	k := koanf.New(".")
	// confmap never fails on a flat map.
	_ = k.Load(confmap.Provider(values, "."), nil)
	return &Source{k: k}
}

// Source exposes the factor definition's params block as a lookup.
func (f Factor) Source() *Source {
	values := make(map[string]any, len(f.Params))
	for name, v := range f.Params {
		values[name] = v
	}
	return NewSource(values)
}

// Float returns the named parameter, or kinetic.ErrMissingParam /
// kinetic.ErrBadParam wrapped with the parameter name.
func (s *Source) Float(name string) (float64, error) {
	if !s.k.Exists(name) {
		return 0, fmt.Errorf("%w: %q", kinetic.ErrMissingParam, name)
	}
	switch v := s.k.Get(name).(type) {
	case float64:
		return v, nil
	case int:
		return float64(v), nil
	case int64:
		return float64(v), nil
	case string:
		parsed, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return 0, fmt.Errorf("%w: %q = %q", kinetic.ErrBadParam, name, v)
		}
		return parsed, nil
	default:
		return 0, fmt.Errorf("%w: %q", kinetic.ErrBadParam, name)
	}
}
