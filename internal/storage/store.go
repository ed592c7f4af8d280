package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"time"

	"github.com/san-kum/motionlab/internal/motion"
	"github.com/san-kum/motionlab/internal/trajectory"
)

const (
	metadataFile = "metadata.json"
	samplesFile  = "samples.csv"
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

// Run is everything a finished or abandoned session leaves behind.
type Run struct {
	Label          string
	Config         motion.Config
	Bounds         motion.Bounds
	SampleInterval float64
	Final          motion.State
	Phase          string
	Samples        []trajectory.Sample
	Metrics        map[string]float64
}

type RunMetadata struct {
	ID             string             `json:"id"`
	Label          string             `json:"label"`
	Timestamp      time.Time          `json:"timestamp"`
	Config         motion.Config      `json:"config"`
	Bounds         motion.Bounds      `json:"bounds"`
	SampleInterval float64            `json:"sample_interval"`
	Final          motion.State       `json:"final"`
	Phase          string             `json:"phase"`
	NumSamples     int                `json:"num_samples"`
	Metrics        map[string]float64 `json:"metrics,omitempty"`
}

func (s *Store) Save(run Run) (string, error) {
	now := time.Now()
	label := run.Label
	if label == "" {
		label = "run"
	}
	runID := fmt.Sprintf("%s_%d", label, now.UnixNano())
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta := RunMetadata{
		ID:             runID,
		Label:          label,
		Timestamp:      now,
		Config:         run.Config,
		Bounds:         run.Bounds,
		SampleInterval: run.SampleInterval,
		Final:          run.Final,
		Phase:          run.Phase,
		NumSamples:     len(run.Samples),
		Metrics:        run.Metrics,
	}

	err := writeFile(filepath.Join(runDir, metadataFile), func(w io.Writer) error {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(meta)
	})
	if err == nil {
		err = writeFile(filepath.Join(runDir, samplesFile), func(w io.Writer) error {
			return WriteSamplesCSV(w, run.Samples)
		})
	}
	if err != nil {
		os.RemoveAll(runDir)
		return "", err
	}
	return runID, nil
}

// writeFile creates path and fills it with write. A failed close is an error.
func writeFile(path string, write func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := write(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
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

	sort.Slice(runs, func(i, j int) bool {
		return runs[i].Timestamp.Before(runs[j].Timestamp)
	})
	return runs, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, metadataFile))
	if err != nil {
		return nil, err
	}

	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}
	return &meta, nil
}

// SamplesPath is where a run's sample table lives on disk.
func (s *Store) SamplesPath(runID string) string {
	return filepath.Join(s.baseDir, runID, samplesFile)
}

func (s *Store) LoadSamples(runID string) ([]trajectory.Sample, error) {
	file, err := os.Open(s.SamplesPath(runID))
	if err != nil {
		return nil, err
	}
	defer file.Close()

	r := csv.NewReader(file)
	r.FieldsPerRecord = -1

	records, err := r.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) < 2 {
		return []trajectory.Sample{}, nil
	}

	samples := make([]trajectory.Sample, 0, len(records)-1)
	for i, record := range records[1:] {
		if len(record) < 3 {
			return nil, fmt.Errorf("%s line %d: expected 3 fields, got %d", samplesFile, i+2, len(record))
		}
		var vals [3]float64
		for j := range vals {
			v, err := strconv.ParseFloat(record[j], 64)
			if err != nil {
				return nil, fmt.Errorf("%s line %d: %w", samplesFile, i+2, err)
			}
			vals[j] = v
		}
		samples = append(samples, trajectory.Sample{Time: vals[0], Position: vals[1], Velocity: vals[2]})
	}
	return samples, nil
}
