package storage

import (
	"encoding/json"
	"io"

	"github.com/san-kum/bouncesim/internal/bounce"
)

type ExportData struct {
	RunMetadata
	Segments []bounce.Segment `json:"segments"`
}

// ExportJSON writes a run's metadata and segments to w as indented JSON.
func (s *Store) ExportJSON(w io.Writer, runID string) error {
	meta, err := s.Load(runID)
	if err != nil {
		return err
	}
	segs, err := s.LoadSegments(runID)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(ExportData{RunMetadata: *meta, Segments: segs})
}
