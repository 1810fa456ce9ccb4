package config

import (
	"os"

	kyaml "github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"gopkg.in/yaml.v3"
)

// Config is a parsed reaction-definition file: a set of reactions, each
// composed of one kinetic factor per limiting or inhibiting solute.
type Config struct {
	Reactions []Reaction `koanf:"reactions" yaml:"reactions"`
}

type Reaction struct {
	Name    string   `koanf:"name" yaml:"name"`
	MuMax   float64  `koanf:"mu_max" yaml:"mu_max"`
	Factors []Factor `koanf:"factors" yaml:"factors"`
}

type Factor struct {
	Kind   string             `koanf:"kind" yaml:"kind"`
	Solute string             `koanf:"solute" yaml:"solute"`
	Params map[string]float64 `koanf:"params" yaml:"params"`
}

// Default returns a small aerobic-growth example, used by `biokin init`.
func Default() *Config {
	return &Config{
		Reactions: []Reaction{
			{
				Name:  "growth",
				MuMax: 0.7,
				Factors: []Factor{
					{
						Kind:   "haldane",
						Solute: "glucose",
						Params: map[string]float64{"Ks": 2.0, "Ki": 50.0},
					},
					{
						Kind:   "monod",
						Solute: "oxygen",
						Params: map[string]float64{"Ks": 0.2},
					},
				},
			},
		},
	}
}

func Load(path string) (*Config, error) {
	k := koanf.New(".")
	if err := k.Load(file.Provider(path), kyaml.Parser()); err != nil {
		return nil, err
	}
	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
