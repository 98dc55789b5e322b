// Package testutil provides shared test infrastructure for the scheduler simulator.
// It holds the golden dataset types and assertion helpers used by sim/ tests.
package testutil

import (
	"encoding/json"
	"math"
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

// GoldenDataset represents the structure of testdata/goldendataset.json.
type GoldenDataset struct {
	Tests []GoldenTestCase `json:"tests"`
}

// GoldenTestCase is one trace replayed at one concurrency limit.
type GoldenTestCase struct {
	Name     string          `json:"name"`
	Limit    int             `json:"limit"`
	Requests []GoldenRequest `json:"requests"`
	Expected GoldenExpected  `json:"expected"`
}

// GoldenRequest mirrors one trace record.
type GoldenRequest struct {
	ID      int64  `json:"id"`
	Arrival int64  `json:"arrival"`
	Op      string `json:"op"`
	Address int64  `json:"address"`
	Size    int64  `json:"size"`
}

// GoldenExpected is the deterministic outcome of a golden run.
type GoldenExpected struct {
	// Exact match: request ids in completion order
	CompletionOrder []int64          `json:"completion_order"`
	Schedule        []GoldenSchedule `json:"schedule"`
	Pending         []int64          `json:"pending"`

	// Latency statistics per kind; nil when no request of that kind completed
	Read  *GoldenStats `json:"read"`
	Write *GoldenStats `json:"write"`
}

// GoldenSchedule is the admission and completion time of one request.
type GoldenSchedule struct {
	ID    int64 `json:"id"`
	Start int64 `json:"start"`
	End   int64 `json:"end"`
}

// GoldenStats holds expected latency statistics in usec.
type GoldenStats struct {
	Count  int     `json:"count"`
	Mean   float64 `json:"mean"`
	Median float64 `json:"median"`
	Min    int64   `json:"min"`
	Max    int64   `json:"max"`
}

// LoadGoldenDataset loads the golden dataset from the testdata directory.
// The path is resolved relative to this source file: sim/internal/testutil/ → testdata/.
func LoadGoldenDataset(t *testing.T) *GoldenDataset {
	t.Helper()

	_, thisFile, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatal("Failed to get current file path")
	}
	// Navigate from sim/internal/testutil/ to repo root testdata/
	path := filepath.Join(filepath.Dir(thisFile), "..", "..", "..", "testdata", "goldendataset.json")
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read golden dataset: %v", err)
	}

	var dataset GoldenDataset
	if err := json.Unmarshal(data, &dataset); err != nil {
		t.Fatalf("Failed to parse golden dataset: %v", err)
	}
	if len(dataset.Tests) == 0 {
		t.Fatal("Golden dataset has no test cases")
	}

	return &dataset
}

// AssertFloat64Equal compares two float64 values with relative tolerance.
func AssertFloat64Equal(t *testing.T, name string, want, got, relTol float64) {
	t.Helper()
	if want == 0 && got == 0 {
		return
	}
	diff := math.Abs(want - got)
	maxVal := math.Max(math.Abs(want), math.Abs(got))
	if diff/maxVal > relTol {
		t.Errorf("%s: got %v, want %v (diff=%v, relDiff=%v)", name, got, want, diff, diff/maxVal)
	}
}
