package driver

import (
	"github.com/charmbracelet/log"

	"github.com/katalvlaran/dijkstraviz/dijkstra"
)

// LogObserver writes each step and the final result as structured log lines.
type LogObserver struct {
	logger *log.Logger
}

// NewLogObserver returns an observer logging through l, tagged with runID.
// A nil l falls back to log.Default().
func NewLogObserver(l *log.Logger, runID string) *LogObserver {
	if l == nil {
		l = log.Default()
	}
	return &LogObserver{logger: l.With("run", runID)}
}

// OnStep logs one expansion.
func (o *LogObserver) OnStep(r dijkstra.StepReport) {
	if r.Exhausted {
		o.logger.Error("safety bound tripped", "step", r.Index)
		return
	}
	o.logger.Info("expanded",
		"step", r.Index,
		"node", r.Expanded,
		"relaxed", len(r.Relaxed),
		"improved", len(r.Improved()),
		"next", r.Next)
	for _, re := range r.Relaxed {
		o.logger.Debug("relaxed edge",
			"edge", re.Edge,
			"from", re.From,
			"to", re.To,
			"candidate", re.Candidate,
			"improved", re.Improved)
	}
}

// OnFinish logs the outcome.
func (o *LogObserver) OnFinish(res dijkstra.FinalResult) {
	if !res.Found {
		o.logger.Warn("end not reachable", "state", res.State.String(), "steps", res.Steps)
		return
	}
	o.logger.Info("path found", "steps", res.Steps, "distance", res.Distance)
}
