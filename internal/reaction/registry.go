package reaction

import (
	"fmt"
	"sort"

	"github.com/jwirth/biokin/internal/kinetic"
)

type entry struct {
	build  func() kinetic.Factor
	params []string // named parameters in packed order
}

// Registry maps factor kind names, as they appear in reaction definitions,
// to constructors.
type Registry struct {
	factors map[string]entry
}

func NewRegistry() *Registry {
	r := &Registry{
		factors: make(map[string]entry),
	}

	r.factors["haldane"] = entry{
		build:  func() kinetic.Factor { return kinetic.NewHaldane(0, 0) },
		params: []string{"Ks", "Ki"},
	}
	r.factors["monod"] = entry{
		build:  func() kinetic.Factor { return kinetic.NewMonod(0) },
		params: []string{"Ks"},
	}
	r.factors["simpleinhibition"] = entry{
		build:  func() kinetic.Factor { return kinetic.NewSimpleInhibition(0) },
		params: []string{"Ki"},
	}
	r.factors["hill"] = entry{
		build:  func() kinetic.Factor { return kinetic.NewHill(0, 0) },
		params: []string{"Ks", "h"},
	}
	r.factors["linear"] = entry{
		build:  func() kinetic.Factor { return kinetic.NewLinear(0) },
		params: []string{"K"},
	}
	r.factors["firstorder"] = entry{
		build:  func() kinetic.Factor { return kinetic.NewFirstOrder() },
		params: nil,
	}

	return r
}

// New returns an uninitialized factor of the given kind; parameters are set
// afterwards with Init or InitInto.
func (r *Registry) New(kind string) (kinetic.Factor, error) {
	e, ok := r.factors[kind]
	if !ok {
		return nil, fmt.Errorf("unknown kinetic factor: %s", kind)
	}
	return e.build(), nil
}

// ParamNames lists a kind's named parameters in its packed order, or nil
// for an unknown kind.
func (r *Registry) ParamNames(kind string) []string {
	return r.factors[kind].params
}

func (r *Registry) Kinds() []string {
	names := make([]string, 0, len(r.factors))
	for name := range r.factors {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
