package store

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/CompProgTools/Algoview/internal/metrics"
	"github.com/CompProgTools/Algoview/internal/search"
)

var ErrRunNotFound = errors.New("store: run not found")

const (
	metadataFile = "metadata.json"
	stepsFile    = "steps.csv"
)

var stepsHeader = []string{"step", "left", "right", "mid", "current_index", "found", "comparison"}

type Store struct {
	baseDir string
	now     func() time.Time
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir, now: time.Now}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

type RunMetadata struct {
	ID        string             `json:"id"`
	Algorithm string             `json:"algorithm"`
	Timestamp time.Time          `json:"timestamp"`
	Sequence  []int              `json:"sequence"`
	Target    int                `json:"target"`
	Found     bool               `json:"found"`
	Steps     int                `json:"steps"`
	Metrics   map[string]float64 `json:"metrics"`
}

func newRunID(kind search.Kind) string {
	return fmt.Sprintf("%s_%s", kind, uuid.NewString()[:8])
}

// Save writes tr under a fresh run directory and returns the run id.
func (s *Store) Save(tr search.Trace) (string, error) {
	runID := newRunID(tr.Kind())
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta := RunMetadata{
		ID:        runID,
		Algorithm: tr.Kind().String(),
		Timestamp: s.now(),
		Sequence:  tr.Sequence(),
		Target:    tr.Target(),
		Found:     tr.Found(),
		Steps:     tr.Len(),
		Metrics:   metrics.Collect(tr),
	}

	if err := writeJSON(filepath.Join(runDir, metadataFile), meta); err != nil {
		return "", fmt.Errorf("write metadata: %w", err)
	}
	if err := writeSteps(filepath.Join(runDir, stepsFile), tr); err != nil {
		return "", fmt.Errorf("write steps: %w", err)
	}
	return runID, nil
}

func writeJSON(path string, v any) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func writeSteps(path string, tr search.Trace) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(stepsHeader); err != nil {
		return err
	}
	for i := 0; i < tr.Len(); i++ {
		if err := w.Write(stepRow(i, tr.At(i))); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

// stepRow leaves the columns of the other algorithm empty.
func stepRow(i int, st search.Step) []string {
	row := []string{strconv.Itoa(i), "", "", "", "", strconv.FormatBool(st.IsFound()), st.Describe()}
	switch s := st.(type) {
	case search.BinaryStep:
		row[1] = strconv.Itoa(s.Left)
		row[2] = strconv.Itoa(s.Right)
		row[3] = strconv.Itoa(s.Mid)
	case search.LinearStep:
		row[4] = strconv.Itoa(s.CurrentIndex)
	}
	return row
}

// List returns saved runs, newest first. Unreadable run directories are
// skipped.
func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return []RunMetadata{}, nil
		}
		return nil, err
	}

	runs := make([]RunMetadata, 0, len(entries))
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

	sort.SliceStable(runs, func(i, j int) bool {
		return runs[i].Timestamp.After(runs[j].Timestamp)
	})
	return runs, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, metadataFile))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrRunNotFound, runID)
		}
		return nil, err
	}

	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, fmt.Errorf("decode %s: %w", runID, err)
	}
	return &meta, nil
}

// LoadSteps returns the step rows of a run without the header.
func (s *Store) LoadSteps(runID string) ([][]string, error) {
	f, err := os.Open(filepath.Join(s.baseDir, runID, stepsFile))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrRunNotFound, runID)
		}
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = len(stepsHeader)
	records, err := r.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) < 1 {
		return [][]string{}, nil
	}
	return records[1:], nil
}

// Replay regenerates the trace a run was saved from.
func (s *Store) Replay(runID string) (search.Trace, error) {
	meta, err := s.Load(runID)
	if err != nil {
		return search.Trace{}, err
	}
	kind, err := search.ParseKind(meta.Algorithm)
	if err != nil {
		return search.Trace{}, err
	}
	return kind.Generate(meta.Sequence, meta.Target), nil
}
