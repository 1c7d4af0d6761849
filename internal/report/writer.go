package report

import (
	"encoding/json"
	"os"
	"time"
)

// New creates an empty report for the given input.
func New(input InputInfo, params ParamsInfo) *Report {
	return &Report{
		Version:     SupportedReportVersion,
		GeneratedAt: time.Now().UTC().Format(time.RFC3339),
		Input:       input,
		Params:      params,
	}
}

// ComputeStats recalculates aggregate statistics from the variants.
func (r *Report) ComputeStats() {
	var s Stats
	s.TotalVariants = len(r.Variants)
	for _, v := range r.Variants {
		s.TotalOutputBytes += v.Size
	}
	r.Stats = s
}

// WriteJSON serializes the report to a JSON file.
func WriteJSON(r *Report, path string) error {
	r.ComputeStats()

	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return err
	}
	data = append(data, '\n')
	return os.WriteFile(path, data, 0o644)
}
