package storage

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"time"

	"github.com/san-kum/bouncesim/internal/bounce"
)

const (
	metadataFile = "metadata.json"
	segmentsFile = "segments.csv"
)

var ErrRunNotFound = errors.New("storage: run not found")

var segmentHeader = []string{"bounce", "phase", "height", "duration", "distance", "time"}

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
	ID        string             `json:"id"`
	Timestamp time.Time          `json:"timestamp"`
	Height    float64            `json:"height"`
	Gravity   float64            `json:"gravity"`
	Result    bounce.Result      `json:"result"`
	Metrics   map[string]float64 `json:"metrics,omitempty"`
}

// Save writes the metadata and per-segment breakdown of one computation and
// returns the new run id.
func (s *Store) Save(p bounce.Params, result bounce.Result, metrics map[string]float64) (string, error) {
	now := time.Now()
	runID := fmt.Sprintf("bounce_n%d_%d", result.Count, now.UnixNano())
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta := RunMetadata{
		ID:        runID,
		Timestamp: now,
		Height:    p.Height,
		Gravity:   p.Gravity,
		Result:    result,
		Metrics:   metrics,
	}

	if err := writeJSON(filepath.Join(runDir, metadataFile), meta); err != nil {
		return "", err
	}
	if err := writeSegments(filepath.Join(runDir, segmentsFile), bounce.Segments(result.Count, p)); err != nil {
		return "", err
	}

	return runID, nil
}

func writeJSON(path string, v any) error {
	return writeFile(path, func(f *os.File) error {
		enc := json.NewEncoder(f)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	})
}

func writeSegments(path string, segs []bounce.Segment) error {
	return writeFile(path, func(f *os.File) error {
		w := csv.NewWriter(f)
		if err := WriteSegmentsCSV(w, segs); err != nil {
			return err
		}
		w.Flush()
		return w.Error()
	})
}

// writeFile creates path and fills it with write. On any failure, including
// Close, the partial file is removed.
func writeFile(path string, write func(f *os.File) error) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
		if err != nil {
			os.Remove(path)
		}
	}()
	return write(f)
}

// WriteSegmentsCSV writes a header row followed by one row per segment.
func WriteSegmentsCSV(w *csv.Writer, segs []bounce.Segment) error {
	if err := w.Write(segmentHeader); err != nil {
		return err
	}
	for _, seg := range segs {
		row := []string{
			strconv.Itoa(seg.Bounce),
			seg.Phase.String(),
			strconv.FormatFloat(seg.Height, 'f', -1, 64),
			strconv.FormatFloat(seg.Duration, 'f', -1, 64),
			strconv.FormatFloat(seg.Distance, 'f', -1, 64),
			strconv.FormatFloat(seg.Time, 'f', -1, 64),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	return nil
}

// List returns every readable run, oldest first.
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
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrRunNotFound, runID)
		}
		return nil, err
	}

	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}

	return &meta, nil
}

func (s *Store) LoadSegments(runID string) ([]bounce.Segment, error) {
	file, err := os.Open(filepath.Join(s.baseDir, runID, segmentsFile))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrRunNotFound, runID)
		}
		return nil, err
	}
	defer file.Close()

	r := csv.NewReader(file)
	r.FieldsPerRecord = len(segmentHeader)

	records, err := r.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) < 2 {
		return []bounce.Segment{}, nil
	}

	segs := make([]bounce.Segment, 0, len(records)-1)
	for i, record := range records[1:] {
		seg, err := parseSegment(record)
		if err != nil {
			return nil, fmt.Errorf("%s line %d: %w", segmentsFile, i+2, err)
		}
		segs = append(segs, seg)
	}
	return segs, nil
}

func parseSegment(record []string) (bounce.Segment, error) {
	var seg bounce.Segment
	var err error

	if seg.Bounce, err = strconv.Atoi(record[0]); err != nil {
		return seg, err
	}
	if seg.Phase, err = parsePhase(record[1]); err != nil {
		return seg, err
	}

	fields := []*float64{&seg.Height, &seg.Duration, &seg.Distance, &seg.Time}
	for i, dst := range fields {
		if *dst, err = strconv.ParseFloat(record[i+2], 64); err != nil {
			return seg, err
		}
	}
	return seg, nil
}

func parsePhase(s string) (bounce.Phase, error) {
	for _, ph := range []bounce.Phase{bounce.PhaseDrop, bounce.PhaseRise, bounce.PhaseFall} {
		if ph.String() == s {
			return ph, nil
		}
	}
	return 0, fmt.Errorf("unknown phase %q", s)
}
