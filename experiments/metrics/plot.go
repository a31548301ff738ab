package metrics

import (
	"path/filepath"

	"github.com/pkg/errors"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

// PlotOutcomes draws the per-window outcome rates of records as a learning
// curve and saves it under the writer's directory.
func (w *Writer) PlotOutcomes(records []GameRecord, window int) (string, error) {
	path := filepath.Join(w.baseDir, "outcomes.png")
	return path, PlotOutcomes(path, records, window)
}

func PlotOutcomes(path string, records []GameRecord, window int) error {
	if len(records) == 0 {
		return errors.New("no game records to plot")
	}
	xWins, oWins, draws := Outcomes(records, window)

	p := plot.New()
	p.Title.Text = "Self-play outcomes"
	p.X.Label.Text = "Game"
	p.Y.Label.Text = "Rate"
	p.Y.Min, p.Y.Max = 0, 1

	series := []struct {
		name  string
		rates []float64
	}{
		{"X wins", xWins},
		{"O wins", oWins},
		{"Draws", draws},
	}
	for i, s := range series {
		points := make(plotter.XYs, len(s.rates))
		for j, v := range s.rates {
			end := (j + 1) * window
			if window <= 0 || end > len(records) {
				end = len(records)
			}
			points[j] = plotter.XY{
				X: float64(end),
				Y: v,
			}
		}
		line, err := plotter.NewLine(points)
		if err != nil {
			return errors.Wrapf(err, "failed to plot %s", s.name)
		}
		line.Color = plotutil.Color(i)
		p.Add(line)
		p.Legend.Add(s.name, line)
	}

	if err := p.Save(8*vg.Inch, 5*vg.Inch, path); err != nil {
		return errors.Wrap(err, "failed to save plot")
	}
	return nil
}
