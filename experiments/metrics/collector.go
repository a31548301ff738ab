package metrics

import (
	"time"
)

// LearnerMetric counts a learner's decisions and value updates since the
// collector was last started.
type LearnerMetric struct {
	Marker       string
	Explored     int // random moves
	Exploited    int // greedy moves
	Backups      int // games backed up into the value table
	StatesBacked int // history entries updated across those games
}

func (m LearnerMetric) ExploreRate() float64 {
	moves := m.Explored + m.Exploited
	if moves == 0 {
		return 0
	}
	return float64(m.Explored) / float64(moves)
}

type GameMetric struct {
	Starter    string // marker of the first mover
	Winner     string // "X", "O" or "draw"
	StartTime  time.Time
	EndTime    time.Time
	Duration   time.Duration
	TotalMoves int
}

type Collector interface {
	Start(marker string)
	AddExplore()
	AddExploit()
	AddBackup(states int)
	Complete() LearnerMetric
}

type collector struct {
	metric LearnerMetric
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start(marker string) {
	m.metric = LearnerMetric{Marker: marker}
}

func (m *collector) AddExplore() {
	m.metric.Explored++
}

func (m *collector) AddExploit() {
	m.metric.Exploited++
}

func (m *collector) AddBackup(states int) {
	m.metric.Backups++
	m.metric.StatesBacked += states
}

func (m *collector) Complete() LearnerMetric {
	return m.metric
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(marker string)     {}
func (m *dummyCollector) AddExplore()             {}
func (m *dummyCollector) AddExploit()             {}
func (m *dummyCollector) AddBackup(states int)    {}
func (m *dummyCollector) Complete() LearnerMetric { return LearnerMetric{} }
