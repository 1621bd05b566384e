package plot

import (
	"fmt"
	"image/color"
	"io"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"gomonte/domain/core"
	"gomonte/domain/montecarlo"
)

// Renderer draws a simulation as a scatter plot: the sampled function points,
// plus the hit and miss candidate layers for the hit-or-miss variant. It reads
// only the documented result fields and lives entirely outside the core.
type Renderer struct {
	OutDir string
}

// Options controls a single render
type Options struct {
	// Filename overrides the generated file name (relative to OutDir).
	Filename string
	// Suppress builds the plot but skips writing it, for headless runs
	// and tests.
	Suppress bool
}

// NewRenderer creates a renderer writing into dir
func NewRenderer(dir string) *Renderer {
	return &Renderer{OutDir: dir}
}

// Render draws the simulation to a PNG file and returns its path. With
// Options.Suppress the plot is still fully built but nothing is written and
// the returned path is empty.
func (r *Renderer) Render(sim *montecarlo.Simulation, opts Options) (string, error) {
	p, err := build(sim)
	if err != nil {
		return "", err
	}
	if opts.Suppress {
		return "", nil
	}

	name := opts.Filename
	if name == "" {
		name = fmt.Sprintf("%s_%s.png", sim.Method, sim.ID)
	}
	if err := os.MkdirAll(r.OutDir, 0o755); err != nil {
		return "", fmt.Errorf("creating plot output dir: %w", err)
	}

	path := filepath.Join(r.OutDir, name)
	if err := p.Save(20*vg.Inch, 5*vg.Inch, path); err != nil {
		return "", fmt.Errorf("saving plot: %w", err)
	}
	return path, nil
}

// WritePNG streams the rendered plot as PNG, for HTTP responses.
func (r *Renderer) WritePNG(w io.Writer, sim *montecarlo.Simulation) error {
	p, err := build(sim)
	if err != nil {
		return err
	}
	wt, err := p.WriterTo(20*vg.Inch, 5*vg.Inch, "png")
	if err != nil {
		return fmt.Errorf("encoding plot: %w", err)
	}
	if _, err := wt.WriteTo(w); err != nil {
		return fmt.Errorf("writing plot: %w", err)
	}
	return nil
}

func build(sim *montecarlo.Simulation) (*plot.Plot, error) {
	if sim == nil || len(sim.SampleX) == 0 {
		return nil, core.ErrMissingSimulation
	}

	p := plot.New()
	p.X.Label.Text = "x"
	p.Y.Label.Text = "y"

	sample, err := scatter(sim.SampleX, sim.SampleY, draw.PlusGlyph{}, color.RGBA{B: 200, A: 255})
	if err != nil {
		return nil, err
	}
	p.Add(sample)
	p.Legend.Add("My function", sample)

	if sim.IsHitOrMiss() {
		p.Title.Text = fmt.Sprintf("Hit or Miss Montecarlo, result: %v", sim.Estimate)

		miss, err := scatter(sim.MissX, sim.MissY, draw.CircleGlyph{}, color.RGBA{R: 200, A: 255})
		if err != nil {
			return nil, err
		}
		p.Add(miss)
		p.Legend.Add("Miss points", miss)

		hit, err := scatter(sim.HitX, sim.HitY, draw.BoxGlyph{}, color.RGBA{G: 160, A: 255})
		if err != nil {
			return nil, err
		}
		p.Add(hit)
		p.Legend.Add("Hit points", hit)
	} else {
		p.Title.Text = fmt.Sprintf("Average Montecarlo, result: %v", sim.Estimate)
	}

	return p, nil
}

func scatter(xs, ys []float64, glyph draw.GlyphDrawer, c color.Color) (*plotter.Scatter, error) {
	pts := make(plotter.XYs, len(xs))
	for i := range xs {
		pts[i].X = xs[i]
		pts[i].Y = ys[i]
	}
	s, err := plotter.NewScatter(pts)
	if err != nil {
		return nil, fmt.Errorf("building scatter: %w", err)
	}
	s.GlyphStyle.Shape = glyph
	s.GlyphStyle.Color = c
	return s, nil
}
