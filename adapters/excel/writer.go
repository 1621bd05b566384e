package excel

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"gomonte/domain/core"
	"gomonte/domain/montecarlo"
)

// Writer exports a simulation to an xlsx workbook: a Summary sheet with the
// run parameters and estimate, a Samples sheet with the drawn points, and for
// the hit-or-miss variant the two partition sheets.
type Writer struct{}

// NewWriter creates a workbook writer
func NewWriter() *Writer {
	return &Writer{}
}

// WriteFile exports the simulation to path
func (w *Writer) WriteFile(sim *montecarlo.Simulation, path string) error {
	f, err := w.workbook(sim)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("saving workbook: %w", err)
	}
	return nil
}

// Write streams the workbook, for HTTP downloads
func (w *Writer) Write(sim *montecarlo.Simulation, out io.Writer) error {
	f, err := w.workbook(sim)
	if err != nil {
		return err
	}
	defer f.Close()

	if _, err := f.WriteTo(out); err != nil {
		return fmt.Errorf("writing workbook: %w", err)
	}
	return nil
}

func (w *Writer) workbook(sim *montecarlo.Simulation) (*excelize.File, error) {
	if sim == nil || len(sim.SampleX) == 0 {
		return nil, core.ErrMissingSimulation
	}

	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", "Summary"); err != nil {
		return nil, fmt.Errorf("renaming summary sheet: %w", err)
	}

	if err := writeSummary(f, sim); err != nil {
		return nil, err
	}
	if err := writePoints(f, "Samples", sim.SampleX, sim.SampleY); err != nil {
		return nil, err
	}
	if sim.IsHitOrMiss() {
		if err := writePoints(f, "Hits", sim.HitX, sim.HitY); err != nil {
			return nil, err
		}
		if err := writePoints(f, "Misses", sim.MissX, sim.MissY); err != nil {
			return nil, err
		}
	}
	return f, nil
}

func writeSummary(f *excelize.File, sim *montecarlo.Simulation) error {
	rows := [][]interface{}{
		{"simulation_id", sim.ID.String()},
		{"method", string(sim.Method)},
		{"lowest", sim.Low},
		{"highest", sim.High},
		{"n_samples", sim.Samples},
		{"result", sim.Estimate},
		{"std_error", sim.Summary.StdError},
		{"mean_y", sim.Summary.MeanY},
		{"std_dev_y", sim.Summary.StdDevY},
	}
	if sim.IsHitOrMiss() {
		rows = append(rows,
			[]interface{}{"criteria", sim.Crit.String()},
			[]interface{}{"f_max", sim.FMax},
			[]interface{}{"hit_count", len(sim.HitX)},
			[]interface{}{"miss_count", len(sim.MissX)},
		)
	}

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return fmt.Errorf("addressing summary row %d: %w", i+1, err)
		}
		if err := f.SetSheetRow("Summary", cell, &row); err != nil {
			return fmt.Errorf("writing summary row %d: %w", i+1, err)
		}
	}
	return nil
}

func writePoints(f *excelize.File, sheet string, xs, ys []float64) error {
	if _, err := f.NewSheet(sheet); err != nil {
		return fmt.Errorf("creating sheet %s: %w", sheet, err)
	}

	header := []interface{}{"x", "y"}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return fmt.Errorf("writing %s header: %w", sheet, err)
	}
	for i := range xs {
		row := []interface{}{xs[i], ys[i]}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return fmt.Errorf("addressing %s row %d: %w", sheet, i+2, err)
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("writing %s row %d: %w", sheet, i+2, err)
		}
	}
	return nil
}
