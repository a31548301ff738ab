package metrics

import (
	"time"

	"gonum.org/v1/gonum/stat"
)

type Summary struct {
	Games        int           `json:"games"`
	XWins        int           `json:"xWins"`
	OWins        int           `json:"oWins"`
	Draws        int           `json:"draws"`
	MeanMoves    float64       `json:"meanMoves"`
	StdMoves     float64       `json:"stdMoves"`
	MeanDuration time.Duration `json:"meanDuration"`
}

func (s Summary) XWinRate() float64 { return rate(s.XWins, s.Games) }
func (s Summary) OWinRate() float64 { return rate(s.OWins, s.Games) }
func (s Summary) DrawRate() float64 { return rate(s.Draws, s.Games) }

func rate(n, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(n) / float64(total)
}

func Summarize(records []GameRecord) Summary {
	summary := Summary{Games: len(records)}
	if len(records) == 0 {
		return summary
	}

	moves := make([]float64, len(records))
	durations := make([]float64, len(records))
	for i, record := range records {
		switch record.Winner {
		case "X":
			summary.XWins++
		case "O":
			summary.OWins++
		case "draw":
			summary.Draws++
		}
		moves[i] = float64(record.TotalMoves)
		durations[i] = float64(record.Duration)
	}

	if len(records) > 1 {
		summary.MeanMoves, summary.StdMoves = stat.MeanStdDev(moves, nil)
	} else {
		summary.MeanMoves = moves[0]
	}
	summary.MeanDuration = time.Duration(stat.Mean(durations, nil))
	return summary
}

// Outcomes splits records into consecutive windows and returns, per window,
// the fraction of games won by X, won by O and drawn. A trailing partial
// window is included.
func Outcomes(records []GameRecord, window int) (xWins, oWins, draws []float64) {
	if window <= 0 {
		window = len(records)
	}
	for start := 0; start < len(records); start += window {
		end := start + window
		if end > len(records) {
			end = len(records)
		}
		x := make([]float64, 0, end-start)
		o := make([]float64, 0, end-start)
		d := make([]float64, 0, end-start)
		for _, record := range records[start:end] {
			x = append(x, indicator(record.Winner == "X"))
			o = append(o, indicator(record.Winner == "O"))
			d = append(d, indicator(record.Winner == "draw"))
		}
		xWins = append(xWins, stat.Mean(x, nil))
		oWins = append(oWins, stat.Mean(o, nil))
		draws = append(draws, stat.Mean(d, nil))
	}
	return xWins, oWins, draws
}

func indicator(b bool) float64 {
	if b {
		return 1
	}
	return 0
}
