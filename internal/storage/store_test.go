package storage

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/tmarkov/physviz/internal/run"
)

func sampleResult() *run.Result {
	return &run.Result{
		Times:  []float64{0.1, 0.2, 0.3},
		Labels: []string{"mean temp", "kinetic"},
		Rows: [][]float64{
			{50, 1.5},
			{49, 1.6},
			{48, 1.7},
		},
		Metrics: map[string]float64{"heat_drift": 0.02},
	}
}

func TestSaveAndLoad(t *testing.T) {
	store := New(t.TempDir())
	if err := store.Init(); err != nil {
		t.Fatalf("init failed: %v", err)
	}

	params := map[string]float64{"count": 80}
	runID, err := store.Save("gas", 0.1, 0.3, params, sampleResult())
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}

	meta, err := store.Load(runID)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if meta.Sim != "gas" {
		t.Errorf("expected sim gas, got %s", meta.Sim)
	}
	if meta.Frames != 3 {
		t.Errorf("expected 3 frames, got %d", meta.Frames)
	}
	if meta.Params["count"] != 80 {
		t.Errorf("expected count param 80, got %f", meta.Params["count"])
	}
	if meta.Metrics["heat_drift"] != 0.02 {
		t.Errorf("expected heat_drift 0.02, got %f", meta.Metrics["heat_drift"])
	}
}

func TestList(t *testing.T) {
	store := New(t.TempDir())
	if err := store.Init(); err != nil {
		t.Fatal(err)
	}

	if _, err := store.Save("gas", 0.1, 0.3, nil, sampleResult()); err != nil {
		t.Fatal(err)
	}

	runs, err := store.List()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(runs) != 1 {
		t.Errorf("expected 1 run, got %d", len(runs))
	}
}

func TestListMissingDir(t *testing.T) {
	store := New(filepath.Join(t.TempDir(), "nonexistent"))
	runs, err := store.List()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(runs) != 0 {
		t.Errorf("expected no runs, got %d", len(runs))
	}
}

func TestLoadSeries(t *testing.T) {
	store := New(t.TempDir())
	if err := store.Init(); err != nil {
		t.Fatal(err)
	}

	runID, err := store.Save("gas", 0.1, 0.3, nil, sampleResult())
	if err != nil {
		t.Fatal(err)
	}

	result, err := store.LoadSeries(runID)
	if err != nil {
		t.Fatalf("load series failed: %v", err)
	}

	if len(result.Times) != 3 {
		t.Fatalf("expected 3 samples, got %d", len(result.Times))
	}
	series := result.Series("kinetic")
	if len(series) != 3 || series[2] != 1.7 {
		t.Errorf("unexpected kinetic series: %v", series)
	}
}

func TestExportJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.json")
	if err := ExportJSON(path, "gas", 0.1, 0.3, sampleResult()); err != nil {
		t.Fatalf("export failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}

	var exported ExportData
	if err := json.Unmarshal(data, &exported); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if exported.Sim != "gas" {
		t.Errorf("expected sim gas, got %s", exported.Sim)
	}
	if exported.Frames != 3 {
		t.Errorf("expected 3 frames, got %d", exported.Frames)
	}
	if exported.Metrics["heat_drift"] != 0.02 {
		t.Errorf("expected heat_drift 0.02, got %f", exported.Metrics["heat_drift"])
	}
}
