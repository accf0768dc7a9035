package storage

import (
	"encoding/json"
	"io"
	"os"

	"github.com/tmarkov/physviz/internal/run"
)

type ExportData struct {
	Sim      string             `json:"sim"`
	Dt       float64            `json:"dt"`
	Duration float64            `json:"duration"`
	Frames   int                `json:"frames"`
	Labels   []string           `json:"labels"`
	Times    []float64          `json:"times"`
	Rows     [][]float64        `json:"rows"`
	Metrics  map[string]float64 `json:"metrics"`
}

func exportData(sim string, dt, duration float64, result *run.Result) ExportData {
	return ExportData{
		Sim:      sim,
		Dt:       dt,
		Duration: duration,
		Frames:   len(result.Times),
		Labels:   result.Labels,
		Times:    result.Times,
		Rows:     result.Rows,
		Metrics:  result.Metrics,
	}
}

func ExportJSON(path string, sim string, dt, duration float64, result *run.Result) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()
	return writeJSON(file, sim, dt, duration, result)
}

func ExportJSONStdout(sim string, dt, duration float64, result *run.Result) error {
	return writeJSON(os.Stdout, sim, dt, duration, result)
}

func writeJSON(w io.Writer, sim string, dt, duration float64, result *run.Result) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(exportData(sim, dt, duration, result))
}
