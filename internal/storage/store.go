// Package storage persists completed simulation runs under a data
// directory: metadata as JSON next to a trajectory CSV per run.
package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/san-kum/orbital/internal/gravity"
)

type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

type RunMetadata struct {
	ID         string             `json:"id"`
	Scenario   string             `json:"scenario"`
	Timestamp  time.Time          `json:"timestamp"`
	Seed       int64              `json:"seed"`
	Dt         float64            `json:"dt"`
	TimeUnits  string             `json:"time_units"`
	SpaceUnits string             `json:"space_units"`
	MassUnits  string             `json:"mass_units"`
	Limit      int                `json:"limit"`
	Bodies     []string           `json:"bodies"`
	Metrics    map[string]float64 `json:"metrics"`
}

// Save writes a run directory containing metadata.json and
// trajectory.csv. The CSV has one row per frame: time followed by
// <label>_x, <label>_y column pairs in body order.
func (s *Store) Save(scenario string, seed int64, sys *gravity.System, result *gravity.Result) (string, error) {
	runID := fmt.Sprintf("%s_%d", scenario, time.Now().Unix())
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	cfg := sys.Config()
	meta := RunMetadata{
		ID:         runID,
		Scenario:   scenario,
		Timestamp:  time.Now(),
		Seed:       seed,
		Dt:         sys.Dt(),
		TimeUnits:  cfg.TimeUnits,
		SpaceUnits: cfg.SpaceUnits,
		MassUnits:  cfg.MassUnits,
		Limit:      sys.Limit(),
		Bodies:     sys.Labels(),
		Metrics:    result.Metrics,
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

	csvFile, err := os.Create(filepath.Join(runDir, "trajectory.csv"))
	if err != nil {
		return "", err
	}
	defer csvFile.Close()

	w := csv.NewWriter(csvFile)
	defer w.Flush()

	header := []string{"time"}
	for _, label := range meta.Bodies {
		header = append(header, label+"_x", label+"_y")
	}
	if err := w.Write(header); err != nil {
		return "", err
	}

	for _, f := range result.Frames {
		row := []string{strconv.FormatFloat(f.Time, 'g', -1, 64)}
		for _, p := range f.Positions {
			row = append(row,
				strconv.FormatFloat(p.X, 'g', -1, 64),
				strconv.FormatFloat(p.Y, 'g', -1, 64))
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
		data, err := os.ReadFile(filepath.Join(s.baseDir, entry.Name(), "metadata.json"))
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

// LoadTrajectory reads a stored run back as times plus one position
// track per body, in the stored body order.
func (s *Store) LoadTrajectory(runID string) ([]float64, [][]gravity.Vec2, error) {
	file, err := os.Open(filepath.Join(s.baseDir, runID, "trajectory.csv"))
	if err != nil {
		return nil, nil, err
	}
	defer file.Close()

	records, err := csv.NewReader(file).ReadAll()
	if err != nil {
		return nil, nil, err
	}
	if len(records) < 2 {
		return []float64{}, [][]gravity.Vec2{}, nil
	}

	bodyCount := (len(records[0]) - 1) / 2
	times := make([]float64, 0, len(records)-1)
	tracks := make([][]gravity.Vec2, bodyCount)

	for _, record := range records[1:] {
		if len(record) != 1+bodyCount*2 {
			continue
		}
		t, err := strconv.ParseFloat(record[0], 64)
		if err != nil {
			continue
		}
		times = append(times, t)
		for b := 0; b < bodyCount; b++ {
			x, errX := strconv.ParseFloat(record[1+b*2], 64)
			y, errY := strconv.ParseFloat(record[2+b*2], 64)
			if errX != nil || errY != nil {
				continue
			}
			tracks[b] = append(tracks[b], gravity.Vec2{X: x, Y: y})
		}
	}

	return times, tracks, nil
}
