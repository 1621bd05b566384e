package report

import (
	"fmt"
	"strings"

	"github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"

	"gomonte/domain/core"
	"gomonte/domain/montecarlo"
)

// Markdown builds a human-readable summary of a simulation.
func Markdown(sim *montecarlo.Simulation) (string, error) {
	if sim == nil || len(sim.SampleX) == 0 {
		return "", core.ErrMissingSimulation
	}

	var b strings.Builder

	title := "Average Montecarlo"
	if sim.IsHitOrMiss() {
		title = "Hit or Miss Montecarlo"
	}
	fmt.Fprintf(&b, "# %s\n\n", title)
	fmt.Fprintf(&b, "Simulation `%s` over [%g, %g] with %d samples.\n\n", sim.ID, sim.Low, sim.High, sim.Samples)

	fmt.Fprintf(&b, "| | |\n|---|---|\n")
	fmt.Fprintf(&b, "| Result | %g |\n", sim.Estimate)
	fmt.Fprintf(&b, "| Std. error | %g |\n", sim.Summary.StdError)
	fmt.Fprintf(&b, "| Mean Y | %g |\n", sim.Summary.MeanY)
	fmt.Fprintf(&b, "| Std. dev Y | %g |\n", sim.Summary.StdDevY)
	if sim.IsHitOrMiss() {
		fmt.Fprintf(&b, "| Criteria | %s |\n", sim.Crit)
		fmt.Fprintf(&b, "| f_max | %g |\n", sim.FMax)
		fmt.Fprintf(&b, "| Hits | %d |\n", len(sim.HitX))
		fmt.Fprintf(&b, "| Misses | %d |\n", len(sim.MissX))
	}

	return b.String(), nil
}

// HTML renders the markdown summary to an HTML fragment.
func HTML(sim *montecarlo.Simulation) ([]byte, error) {
	md, err := Markdown(sim)
	if err != nil {
		return nil, err
	}

	p := parser.NewWithExtensions(parser.CommonExtensions)
	renderer := html.NewRenderer(html.RendererOptions{Flags: html.CommonFlags})
	return markdown.ToHTML([]byte(md), p, renderer), nil
}
