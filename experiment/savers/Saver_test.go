package savers

import (
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/kbandits/kbandits/experiment"
)

func TestSaveLoad(t *testing.T) {
	r := experiment.Result{
		AvgReward:      []float64{0.1, 0.5, 1.25},
		PercentOptimal: []float64{0, 0.5, 1},
	}

	filename := Filename(t.TempDir(), "eps", 3)
	if filepath.Base(filename) != "eps3.bin" {
		t.Errorf("unexpected filename %v", filename)
	}

	if err := Save(filename, r); err != nil {
		t.Fatal(err)
	}
	got, err := LoadData(filename)
	if err != nil {
		t.Fatal(err)
	}

	if diff := cmp.Diff(r, got); diff != "" {
		t.Errorf("result mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadMissing(t *testing.T) {
	if _, err := LoadData(filepath.Join(t.TempDir(), "missing.bin")); err == nil {
		t.Error("expected error loading missing file")
	}
}
