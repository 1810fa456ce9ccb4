package store

import (
	"math"
	"strings"
	"testing"
)

func TestSaveAndLoad(t *testing.T) {
	s := New(t.TempDir())
	if err := s.Init(); err != nil {
		t.Fatalf("init failed: %v", err)
	}

	samples := []Sample{
		{S: 0, Rate: 0, Derivative: 0.5},
		{S: 5, Rate: 2.0 / 3.0, Derivative: 1.5 / 56.25},
	}
	id, err := s.Save("haldane", map[string]float64{"Ks": 2, "Ki": 50}, 20, samples)
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}
	if !strings.HasPrefix(id, "haldane_") {
		t.Errorf("unexpected run id: %s", id)
	}

	runs, err := s.List()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(runs) != 1 || runs[0].ID != id || runs[0].Points != 2 {
		t.Errorf("unexpected listing: %+v", runs)
	}

	meta, err := s.Load(id)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if meta.Params["Ki"] != 50 {
		t.Errorf("params not round-tripped: %+v", meta.Params)
	}

	got, err := s.LoadCurve(id)
	if err != nil {
		t.Fatalf("load curve failed: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 samples, got %d", len(got))
	}
	if math.Abs(got[1].Rate-samples[1].Rate) > 1e-9 {
		t.Errorf("rate not round-tripped: got %v, expected %v", got[1].Rate, samples[1].Rate)
	}
}

func TestListEmpty(t *testing.T) {
	s := New(t.TempDir() + "/absent")
	runs, err := s.List()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(runs) != 0 {
		t.Errorf("expected no runs, got %d", len(runs))
	}
}
