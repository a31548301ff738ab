package experiments

import (
	"context"
	"time"

	"tictactoe/engine"
	"tictactoe/experiments/metrics"
	"tictactoe/game"
	"tictactoe/learner"
	"tictactoe/learner/agent"
	"tictactoe/meta"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

// Config holds the parameters of a self-play training run.
type Config struct {
	Games     int
	Epsilon   float64
	Alpha     float64
	Seed      uint64 // 0 seeds from the clock
	Alternate bool   // alternate the first mover between games
	LogEvery  int
	Window    int    // games per learning-curve point
	OutDir    string // reports are written only when set
	Plot      bool
}

func DefaultConfig() Config {
	return Config{
		Games:    meta.GAMES,
		Epsilon:  meta.EPSILON,
		Alpha:    meta.ALPHA,
		LogEvery: meta.LOG_EVERY,
		Window:   meta.WINDOW,
	}
}

// Trained is the outcome of a training run: both learners with their value
// tables and the record of every game played.
type Trained struct {
	X       *learner.TD
	O       *learner.TD
	Records []metrics.GameRecord
	Summary metrics.Summary
}

// Learner returns the learner playing m.
func (t *Trained) Learner(m game.Marker) *learner.TD {
	if m == game.O {
		return t.O
	}
	return t.X
}

func newLearner(cfg Config, m game.Marker, seedOffset uint64) *learner.TD {
	options := []learner.Option{
		learner.WithEpsilon(cfg.Epsilon),
		learner.WithAlpha(cfg.Alpha),
		learner.WithMetrics(metrics.NewCollector()),
	}
	if cfg.Seed != 0 {
		options = append(options, learner.WithSeed(cfg.Seed+seedOffset))
	}
	return learner.New(m, options...)
}

// Train plays cfg.Games self-play games between two learners sharing one
// board. The context is checked between games only.
func Train(ctx context.Context, cfg Config) (*Trained, error) {
	board := game.NewBoard()
	trained := &Trained{
		X: newLearner(cfg, game.X, 0),
		O: newLearner(cfg, game.O, 1),
	}
	for _, td := range []*learner.TD{trained.X, trained.O} {
		if err := td.Initialize(board); err != nil {
			return nil, err
		}
	}

	options := []engine.Option{}
	if cfg.Alternate {
		options = append(options, engine.WithAlternatingStarter())
	}
	e := engine.New(board, []string{"X", "O"}, []agent.Agent{
		agent.NewTrainingAgent(trained.X),
		agent.NewTrainingAgent(trained.O),
	}, options...)

	start := time.Now()
	log.Info().Msgf("starting self-play training for %d games (epsilon=%g, alpha=%g)...", cfg.Games, cfg.Epsilon, cfg.Alpha)

	learnerRecords := []metrics.LearnerRecord{}
	for i := 0; i < cfg.Games; i++ {
		if err := ctx.Err(); err != nil {
			log.Warn().Msgf("training interrupted after %d games", i)
			break
		}

		_, gameMetric, err := e.Run()
		if err != nil {
			return nil, errors.WithMessagef(err, "game %d", i+1)
		}
		trained.Records = append(trained.Records, metrics.GameRecord{ID: i + 1, GameMetric: gameMetric})

		if cfg.LogEvery > 0 && (i+1)%cfg.LogEvery == 0 {
			learnerRecords = append(learnerRecords, logProgress(trained, cfg.LogEvery)...)
		}
	}

	trained.Summary = metrics.Summarize(trained.Records)
	end := time.Now()
	log.Info().Msgf("completed %d games in %s: X won %.1f%%, O won %.1f%%, draws %.1f%%",
		trained.Summary.Games, end.Sub(start).Round(time.Millisecond),
		100*trained.Summary.XWinRate(), 100*trained.Summary.OWinRate(), 100*trained.Summary.DrawRate())

	if cfg.OutDir != "" {
		setup := metrics.Setup{
			Agents: []metrics.AgentConfig{
				{Marker: "X", Epsilon: cfg.Epsilon, Alpha: cfg.Alpha, Seed: cfg.Seed},
				{Marker: "O", Epsilon: cfg.Epsilon, Alpha: cfg.Alpha, Seed: cfg.Seed + 1},
			},
			NumGames:  cfg.Games,
			Alternate: cfg.Alternate,
			StartTime: start,
			EndTime:   end,
			Duration:  end.Sub(start),
			Summary:   trained.Summary,
		}
		if err := writeReports(cfg, setup, trained.Records, learnerRecords); err != nil {
			return trained, err
		}
	}
	return trained, nil
}

// logProgress reports the last window of games and restarts the learners'
// collectors.
func logProgress(trained *Trained, window int) []metrics.LearnerRecord {
	n := len(trained.Records)
	recent := metrics.Summarize(trained.Records[n-window:])
	log.Info().Msgf("game %d: last %d games X %.1f%% O %.1f%% draw %.1f%%, mean length %.2f",
		n, window, 100*recent.XWinRate(), 100*recent.OWinRate(), 100*recent.DrawRate(), recent.MeanMoves)

	records := make([]metrics.LearnerRecord, 0, 2)
	for _, td := range []*learner.TD{trained.X, trained.O} {
		m := td.Metrics().Complete()
		log.Debug().Msgf("learner %s explored %.1f%% of %d moves, backed up %d states",
			m.Marker, 100*m.ExploreRate(), m.Explored+m.Exploited, m.StatesBacked)
		records = append(records, metrics.LearnerRecord{Until: n, LearnerMetric: m})
		td.Metrics().Start(td.Marker().String())
	}
	return records
}

func writeReports(cfg Config, setup metrics.Setup, games []metrics.GameRecord, learners []metrics.LearnerRecord) error {
	writer, err := metrics.NewWriter(cfg.OutDir)
	if err != nil {
		return errors.WithMessage(err, "failed to create experiment writer")
	}

	if err := writer.WriteSetup(setup); err != nil {
		return err
	}
	log.Info().Msg("stored experiment setup")

	if err := writer.WriteGameRecords(games); err != nil {
		return err
	}
	log.Info().Msg("stored game records")

	if err := writer.WriteLearnerRecords(learners); err != nil {
		return err
	}
	log.Info().Msg("stored learner records")

	if cfg.Plot && len(games) > 0 {
		path, err := writer.PlotOutcomes(games, cfg.Window)
		if err != nil {
			return err
		}
		log.Info().Msgf("stored learning curve at %s", path)
	}
	return nil
}
