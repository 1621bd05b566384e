package excel

import (
	"bytes"
	"errors"
	"testing"

	"github.com/xuri/excelize/v2"

	"gomonte/domain/core"
	"gomonte/domain/montecarlo"
)

func TestWrite_MissingSimulation(t *testing.T) {
	w := NewWriter()

	var buf bytes.Buffer
	if err := w.Write(nil, &buf); !errors.Is(err, core.ErrMissingSimulation) {
		t.Errorf("Write(nil) = %v, want ErrMissingSimulation", err)
	}
}

func TestWrite_HitOrMissSheets(t *testing.T) {
	engine, err := montecarlo.New(montecarlo.Square, montecarlo.WithSeed(3))
	if err != nil {
		t.Fatalf("engine construction failed: %v", err)
	}
	sim, err := engine.HitOrMiss(0, 2, 50)
	if err != nil {
		t.Fatalf("simulation failed: %v", err)
	}

	var buf bytes.Buffer
	if err := NewWriter().Write(sim, &buf); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	f, err := excelize.OpenReader(&buf)
	if err != nil {
		t.Fatalf("reopening workbook: %v", err)
	}
	defer f.Close()

	for _, sheet := range []string{"Summary", "Samples", "Hits", "Misses"} {
		if idx, _ := f.GetSheetIndex(sheet); idx < 0 {
			t.Errorf("workbook missing sheet %q", sheet)
		}
	}

	rows, err := f.GetRows("Samples")
	if err != nil {
		t.Fatalf("reading Samples: %v", err)
	}
	if len(rows) != 51 { // header + 50 points
		t.Errorf("Samples rows = %d, want 51", len(rows))
	}
}

func TestWrite_AverageOmitsPartitionSheets(t *testing.T) {
	engine, err := montecarlo.New(montecarlo.Gauss, montecarlo.WithSeed(3))
	if err != nil {
		t.Fatalf("engine construction failed: %v", err)
	}
	sim, err := engine.Average(-1, 1, 20)
	if err != nil {
		t.Fatalf("simulation failed: %v", err)
	}

	var buf bytes.Buffer
	if err := NewWriter().Write(sim, &buf); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	f, err := excelize.OpenReader(&buf)
	if err != nil {
		t.Fatalf("reopening workbook: %v", err)
	}
	defer f.Close()

	if idx, _ := f.GetSheetIndex("Hits"); idx >= 0 {
		t.Error("average workbook should not contain a Hits sheet")
	}
}
