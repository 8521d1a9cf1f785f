package store

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/lalithu/Classical-TwoBody/internal/config"
	"github.com/lalithu/Classical-TwoBody/internal/diag"
	"github.com/lalithu/Classical-TwoBody/internal/dynamics"
	"github.com/lalithu/Classical-TwoBody/internal/orbit"
)

// Store persists integration runs under a base directory, one directory per
// run holding metadata.json and samples.csv.
type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

// RunMetadata carries everything needed to reload and re-derive a run:
// the full simulation configuration plus summary figures.
type RunMetadata struct {
	ID            string              `json:"id"`
	Scenario      string              `json:"scenario"`
	Timestamp     time.Time           `json:"timestamp"`
	G             float64             `json:"g"`
	TimeSpan      float64             `json:"time_span"`
	Samples       int                 `json:"samples"`
	Tolerance     float64             `json:"tolerance"`
	Softening     float64             `json:"softening,omitempty"`
	Dim           int                 `json:"dim"`
	Truncated     bool                `json:"truncated,omitempty"`
	EnergyDrift   float64             `json:"energy_drift"`
	MomentumDrift float64             `json:"momentum_drift"`
	Bodies        []config.BodyConfig `json:"bodies"`
}

var axisNames = []string{"x", "y", "z"}

// Save writes one run. rep may be nil when diagnostics were not computed.
func (s *Store) Save(cfg *config.Config, tr *orbit.Trajectory, rep *diag.Report) (string, error) {
	scenario := cfg.Scenario
	if scenario == "" {
		scenario = "run"
	}
	runID := fmt.Sprintf("%s_%d", scenario, time.Now().Unix())
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta := RunMetadata{
		ID:        runID,
		Scenario:  scenario,
		Timestamp: time.Now(),
		G:         cfg.G,
		TimeSpan:  cfg.TimeSpan,
		Samples:   cfg.Samples,
		Tolerance: cfg.Tolerance,
		Softening: cfg.Softening,
		Dim:       tr.Dim,
		Truncated: tr.Truncated,
		Bodies:    cfg.Bodies,
	}
	if rep != nil {
		meta.EnergyDrift = rep.EnergyDrift
		meta.MomentumDrift = rep.MomentumDrift
	}

	metaFile, err := os.Create(filepath.Join(runDir, "metadata.json"))
	if err != nil {
		return "", err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return "", err
	}

	csvFile, err := os.Create(filepath.Join(runDir, "samples.csv"))
	if err != nil {
		return "", err
	}
	defer csvFile.Close()

	w := csv.NewWriter(csvFile)
	defer w.Flush()

	header := []string{"time"}
	for _, name := range tr.Names {
		for k := 0; k < tr.Dim; k++ {
			header = append(header, fmt.Sprintf("%s_%s", name, axisNames[k]))
		}
	}
	for _, name := range tr.Names {
		for k := 0; k < tr.Dim; k++ {
			header = append(header, fmt.Sprintf("%s_v%s", name, axisNames[k]))
		}
	}
	if err := w.Write(header); err != nil {
		return "", err
	}

	for i, state := range tr.States {
		row := make([]string, 0, len(state)+1)
		row = append(row, strconv.FormatFloat(tr.Times[i], 'g', -1, 64))
		for _, v := range state {
			row = append(row, strconv.FormatFloat(v, 'g', -1, 64))
		}
		if err := w.Write(row); err != nil {
			return "", err
		}
	}

	return runID, nil
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

// LoadTrajectory reconstructs the run's trajectory from samples.csv.
func (s *Store) LoadTrajectory(runID string) (*RunMetadata, *orbit.Trajectory, error) {
	meta, err := s.Load(runID)
	if err != nil {
		return nil, nil, err
	}

	f, err := os.Open(filepath.Join(s.baseDir, runID, "samples.csv"))
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, nil, err
	}
	if len(rows) < 1 {
		return nil, nil, fmt.Errorf("store: run %s has no samples", runID)
	}

	names := make([]string, len(meta.Bodies))
	for i, b := range meta.Bodies {
		names[i] = b.Name
	}

	tr := &orbit.Trajectory{
		Names:     names,
		Dim:       meta.Dim,
		Truncated: meta.Truncated,
	}

	for _, row := range rows[1:] {
		t, err := strconv.ParseFloat(row[0], 64)
		if err != nil {
			return nil, nil, fmt.Errorf("store: bad time value %q: %w", row[0], err)
		}
		state := make(dynamics.State, len(row)-1)
		for j, cell := range row[1:] {
			v, err := strconv.ParseFloat(cell, 64)
			if err != nil {
				return nil, nil, fmt.Errorf("store: bad state value %q: %w", cell, err)
			}
			state[j] = v
		}
		tr.Times = append(tr.Times, t)
		tr.States = append(tr.States, state)
	}

	return meta, tr, nil
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
		meta, err := s.Load(entry.Name())
		if err != nil {
			continue
		}
		runs = append(runs, *meta)
	}

	return runs, nil
}
