package reaction

import (
	"fmt"

	"github.com/jwirth/biokin/internal/config"
	"github.com/jwirth/biokin/internal/kinetic"
)

// Network is a set of reactions built from one configuration, sharing a
// solute index space. In instance mode Params is nil; in shared mode it
// holds every reaction's packed parameters, reaction i starting at
// Offsets[i].
type Network struct {
	Reactions []*Reaction
	Solutes   []string
	Params    []float64
	Offsets   []int
}

// SoluteIndex resolves a solute name to its index in concentration vectors,
// or -1 when the configuration never mentions it.
func (n *Network) SoluteIndex(name string) int {
	for i, s := range n.Solutes {
		if s == name {
			return i
		}
	}
	return -1
}

// Build constructs a network in instance-owned mode: every factor's
// parameters are read into its own fields. Solute indices are assigned in
// order of first appearance across the configuration.
func Build(cfg *config.Config, reg *Registry) (*Network, error) {
	n := &Network{}
	index := make(map[string]int)
	solute := func(name string) int {
		if i, ok := index[name]; ok {
			return i
		}
		index[name] = len(n.Solutes)
		n.Solutes = append(n.Solutes, name)
		return index[name]
	}

	for _, rc := range cfg.Reactions {
		r := &Reaction{Name: rc.Name, MuMax: rc.MuMax}
		for _, fc := range rc.Factors {
			f, err := reg.New(fc.Kind)
			if err != nil {
				return nil, fmt.Errorf("reaction %s: %w", rc.Name, err)
			}
			if err := f.Init(fc.Source()); err != nil {
				return nil, fmt.Errorf("reaction %s, %s factor on %s: %w", rc.Name, fc.Kind, fc.Solute, err)
			}
			r.Terms = append(r.Terms, Term{Factor: f, Solute: solute(fc.Solute)})
		}
		n.Reactions = append(n.Reactions, r)
	}
	return n, nil
}

// BuildShared constructs a network and additionally packs every reaction's
// parameters into one shared array, the way the population model lays out
// per-agent parameter blocks. Evaluation through Params/Offsets never touches
// the factors' instance state.
func BuildShared(cfg *config.Config, reg *Registry) (*Network, error) {
	n, err := Build(cfg, reg)
	if err != nil {
		return nil, err
	}

	total := 0
	n.Offsets = make([]int, len(n.Reactions))
	for i, r := range n.Reactions {
		n.Offsets[i] = total
		total += r.ParamCount()
	}
	n.Params = make([]float64, total)

	for i, r := range n.Reactions {
		srcs := make([]kinetic.ParamSource, len(cfg.Reactions[i].Factors))
		for j, fc := range cfg.Reactions[i].Factors {
			srcs[j] = fc.Source()
		}
		if err := r.InitInto(srcs, n.Params, n.Offsets[i]); err != nil {
			return nil, err
		}
	}
	return n, nil
}
