package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jwirth/biokin/internal/kinetic"
)

const sampleYAML = `
reactions:
  - name: growth
    mu_max: 0.7
    factors:
      - kind: haldane
        solute: glucose
        params:
          Ks: 2.0
          Ki: 50.0
      - kind: monod
        solute: oxygen
        params:
          Ks: 0.2
`

func writeTemp(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "reactions.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad(t *testing.T) {
	cfg, err := Load(writeTemp(t, sampleYAML))
	require.NoError(t, err)
	require.Len(t, cfg.Reactions, 1)

	r := cfg.Reactions[0]
	assert.Equal(t, "growth", r.Name)
	assert.Equal(t, 0.7, r.MuMax)
	require.Len(t, r.Factors, 2)
	assert.Equal(t, "haldane", r.Factors[0].Kind)
	assert.Equal(t, "glucose", r.Factors[0].Solute)
	assert.Equal(t, 50.0, r.Factors[0].Params["Ki"])
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.yaml")
	require.NoError(t, Save(path, Default()))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestSourceFloat(t *testing.T) {
	src := NewSource(map[string]any{"Ks": 2.0, "slots": 3, "label": "5.5", "bad": "soup"})

	v, err := src.Float("Ks")
	require.NoError(t, err)
	assert.Equal(t, 2.0, v)

	v, err = src.Float("slots")
	require.NoError(t, err)
	assert.Equal(t, 3.0, v)

	v, err = src.Float("label")
	require.NoError(t, err)
	assert.Equal(t, 5.5, v)

	_, err = src.Float("bad")
	assert.True(t, errors.Is(err, kinetic.ErrBadParam), "got %v", err)

	_, err = src.Float("absent")
	assert.True(t, errors.Is(err, kinetic.ErrMissingParam), "got %v", err)
}

func TestFactorSource(t *testing.T) {
	f := Factor{
		Kind:   "haldane",
		Solute: "glucose",
		Params: map[string]float64{"Ks": 2.0, "Ki": 50.0},
	}

	h := kinetic.NewHaldane(0, 0)
	require.NoError(t, h.Init(f.Source()))
	assert.InDelta(t, 5.0/7.5, h.Rate(5.0), 1e-12)
}
