package searcher

import (
	"time"

	"github.com/google/uuid"
	"gonum.org/v1/gonum/stat"
)

type SearchMetric struct {
	ID               uuid.UUID
	StartTime        time.Time
	Duration         time.Duration
	Playouts         int
	TerminalRollouts int // Rollouts that reached a terminal state
	CutoffRollouts   int // Rollouts stopped at the cutoff depth
	MeanDepth        float64
	MeanScore        float64
	ScoreStdDev      float64
}

type Collector interface {
	Start(id uuid.UUID)
	AddPlayout()
	AddRollout(depth int, score float64, terminal bool)
	Complete() SearchMetric
}

type collector struct {
	id        uuid.UUID
	startTime time.Time
	playouts  int
	terminal  int
	cutoff    int
	depths    []float64
	scores    []float64
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start(id uuid.UUID) {
	m.id = id
	m.startTime = time.Now()
}

func (m *collector) AddPlayout() {
	m.playouts++
}

func (m *collector) AddRollout(depth int, score float64, terminal bool) {
	if terminal {
		m.terminal++
	} else {
		m.cutoff++
	}
	m.depths = append(m.depths, float64(depth))
	m.scores = append(m.scores, score)
}

func (m *collector) Complete() SearchMetric {
	metric := SearchMetric{
		ID:               m.id,
		StartTime:        m.startTime,
		Duration:         time.Since(m.startTime),
		Playouts:         m.playouts,
		TerminalRollouts: m.terminal,
		CutoffRollouts:   m.cutoff,
	}
	if len(m.scores) == 0 {
		return metric
	}

	metric.MeanDepth = stat.Mean(m.depths, nil)
	if len(m.scores) == 1 { // Sample stddev is undefined for a single rollout
		metric.MeanScore = m.scores[0]
		return metric
	}
	metric.MeanScore, metric.ScoreStdDev = stat.MeanStdDev(m.scores, nil)
	return metric
}

type dummyCollector struct {
	id uuid.UUID
}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(id uuid.UUID)                                 { m.id = id }
func (m *dummyCollector) AddPlayout()                                        {}
func (m *dummyCollector) AddRollout(depth int, score float64, terminal bool) {}
func (m *dummyCollector) Complete() SearchMetric                             { return SearchMetric{ID: m.id} }
