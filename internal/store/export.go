package store

import (
	"encoding/json"
	"io"
	"os"

	"github.com/CompProgTools/Algoview/internal/metrics"
	"github.com/CompProgTools/Algoview/internal/search"
)

type ExportData struct {
	Algorithm  string             `json:"algorithm"`
	Sequence   []int              `json:"sequence"`
	Target     int                `json:"target"`
	IntervalMs int64              `json:"interval_ms"`
	Found      bool               `json:"found"`
	Steps      []search.Step      `json:"steps"`
	Metrics    map[string]float64 `json:"metrics"`
}

func NewExport(tr search.Trace) ExportData {
	return ExportData{
		Algorithm:  tr.Kind().String(),
		Sequence:   tr.Sequence(),
		Target:     tr.Target(),
		IntervalMs: tr.Kind().Interval().Milliseconds(),
		Found:      tr.Found(),
		Steps:      tr.Steps(),
		Metrics:    metrics.Collect(tr),
	}
}

func ExportJSON(w io.Writer, tr search.Trace) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(NewExport(tr))
}

func ExportJSONFile(path string, tr search.Trace) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := ExportJSON(f, tr); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
