package metrics

import (
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/pkg/errors"
)

type GameRecord struct {
	ID int
	GameMetric
}

// LearnerRecord is a learner's metric over the games (Until-Window, Until].
type LearnerRecord struct {
	Until int // GameRecord.ID of the last game covered
	LearnerMetric
}

type AgentConfig struct {
	Marker  string  `json:"marker"`
	Epsilon float64 `json:"epsilon"`
	Alpha   float64 `json:"alpha"`
	Seed    uint64  `json:"seed"`
}

type Setup struct {
	Agents    []AgentConfig `json:"agents"`
	NumGames  int           `json:"numGames"`
	Alternate bool          `json:"alternate"`
	StartTime time.Time     `json:"startTime"`
	EndTime   time.Time     `json:"endTime"`
	Duration  time.Duration `json:"duration"`
	Summary   Summary       `json:"summary"`
}

type Writer struct {
	baseDir string
}

func NewWriter(root string) (*Writer, error) {
	// Create a subfolder named by current timestamp
	timestamp := time.Now().UTC().Format("20060102T150405Z")
	baseDir := filepath.Join(root, timestamp)
	err := os.MkdirAll(baseDir, 0755)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create directory")
	}

	return &Writer{
		baseDir: baseDir,
	}, nil
}

func (w *Writer) Dir() string {
	return w.baseDir
}

func (w *Writer) WriteSetup(setup Setup) error {
	path := filepath.Join(w.baseDir, "setup.json")
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "failed to create setup file")
	}
	defer f.Close()

	encoder := json.NewEncoder(f)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(setup); err != nil {
		return errors.Wrap(err, "failed to write setup")
	}
	return nil
}

func (w *Writer) WriteGameRecords(records []GameRecord) error {
	return w.writeCSV("game_records.csv",
		[]string{"id", "starting_player", "winner", "moves", "start_time", "end_time", "duration"},
		len(records), func(i int) []string {
			record := records[i]
			return []string{
				strconv.Itoa(record.ID),
				record.Starter,
				record.Winner,
				strconv.Itoa(record.TotalMoves),
				record.StartTime.Format(time.RFC3339Nano),
				record.EndTime.Format(time.RFC3339Nano),
				record.Duration.String(),
			}
		})
}

func (w *Writer) WriteLearnerRecords(records []LearnerRecord) error {
	return w.writeCSV("learner_records.csv",
		[]string{"until", "marker", "explored", "exploited", "backups", "states_backed"},
		len(records), func(i int) []string {
			record := records[i]
			return []string{
				strconv.Itoa(record.Until),
				record.Marker,
				strconv.Itoa(record.Explored),
				strconv.Itoa(record.Exploited),
				strconv.Itoa(record.Backups),
				strconv.Itoa(record.StatesBacked),
			}
		})
}

func (w *Writer) writeCSV(name string, header []string, n int, row func(int) []string) error {
	path := filepath.Join(w.baseDir, name)
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "failed to create %s", name)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	if err := writer.Write(header); err != nil {
		return errors.Wrapf(err, "failed to write %s header", name)
	}
	for i := 0; i < n; i++ {
		if err := writer.Write(row(i)); err != nil {
			return errors.Wrapf(err, "failed to write %s row", name)
		}
	}
	writer.Flush()
	return errors.Wrapf(writer.Error(), "failed to flush %s", name)
}
