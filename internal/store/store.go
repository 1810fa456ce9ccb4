package store

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// Sample is one evaluated point of a kinetic curve.
type Sample struct {
	S          float64
	Rate       float64
	Derivative float64
}

type RunMetadata struct {
	ID        string             `json:"id"`
	Kind      string             `json:"kind"`
	Timestamp time.Time          `json:"timestamp"`
	Params    map[string]float64 `json:"params"`
	MaxS      float64            `json:"max_s"`
	Points    int                `json:"points"`
}

// Store persists evaluated curves under a base directory, one subdirectory
// per run holding metadata.json and curve.csv.
type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

func (s *Store) Save(kind string, params map[string]float64, maxS float64, samples []Sample) (string, error) {
	runID := fmt.Sprintf("%s_%d", kind, time.Now().Unix())
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta := RunMetadata{
		ID:        runID,
		Kind:      kind,
		Timestamp: time.Now(),
		Params:    params,
		MaxS:      maxS,
		Points:    len(samples),
	}

	metaPath := filepath.Join(runDir, "metadata.json")
	metaFile, err := os.Create(metaPath)
	if err != nil {
		return "", err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return "", err
	}

	csvPath := filepath.Join(runDir, "curve.csv")
	csvFile, err := os.Create(csvPath)
	if err != nil {
		return "", err
	}
	defer csvFile.Close()

	w := csv.NewWriter(csvFile)
	defer w.Flush()

	if err := w.Write([]string{"solute", "rate", "derivative"}); err != nil {
		return "", err
	}
	for _, p := range samples {
		row := []string{
			strconv.FormatFloat(p.S, 'f', 6, 64),
			strconv.FormatFloat(p.Rate, 'g', 12, 64),
			strconv.FormatFloat(p.Derivative, 'g', 12, 64),
		}
		if err := w.Write(row); err != nil {
			return "", err
		}
	}

	return runID, nil
}

func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []RunMetadata{}, nil
		}
		return nil, err
	}

	runs := make([]RunMetadata, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		metaPath := filepath.Join(s.baseDir, entry.Name(), "metadata.json")
		data, err := os.ReadFile(metaPath)
		if err != nil {
			continue
		}

		var meta RunMetadata
		if err := json.Unmarshal(data, &meta); err != nil {
			continue
		}

		runs = append(runs, meta)
	}

	return runs, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, "metadata.json"))
	if err != nil {
		return nil, err
	}
	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}
	return &meta, nil
}

// LoadCurve reads back the samples of a saved run.
func (s *Store) LoadCurve(runID string) ([]Sample, error) {
	f, err := os.Open(filepath.Join(s.baseDir, runID, "curve.csv"))
	if err != nil {
		return nil, err
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) < 1 {
		return nil, fmt.Errorf("run %s: empty curve file", runID)
	}

	samples := make([]Sample, 0, len(records)-1)
	for _, rec := range records[1:] {
		if len(rec) != 3 {
			return nil, fmt.Errorf("run %s: malformed curve row %v", runID, rec)
		}
		sv, err1 := strconv.ParseFloat(rec[0], 64)
		rv, err2 := strconv.ParseFloat(rec[1], 64)
		dv, err3 := strconv.ParseFloat(rec[2], 64)
		if err1 != nil || err2 != nil || err3 != nil {
			return nil, fmt.Errorf("run %s: malformed curve row %v", runID, rec)
		}
		samples = append(samples, Sample{S: sv, Rate: rv, Derivative: dv})
	}
	return samples, nil
}
