package dijkstra

// Observer is the contract through which a renderer learns about a run.
//
// The Engine never calls an Observer itself: it is pull-based and returns a
// StepReport from every Step. Drivers (see package driver) forward those reports
// to any number of Observers and own all pacing.
type Observer interface {
	// OnStep receives the report of one Step, in order.
	OnStep(report StepReport)

	// OnFinish receives the final result once the run is terminal.
	OnFinish(result FinalResult)
}

// NopObserver ignores every notification. Useful for headless drivers.
type NopObserver struct{}

// OnStep implements Observer.
func (NopObserver) OnStep(StepReport) {}

// OnFinish implements Observer.
func (NopObserver) OnFinish(FinalResult) {}

// Recorder is an Observer that keeps every report, mainly for tests and replays.
type Recorder struct {
	Reports []StepReport
	Result  *FinalResult
}

// OnStep implements Observer.
func (r *Recorder) OnStep(report StepReport) {
	r.Reports = append(r.Reports, report)
}

// OnFinish implements Observer.
func (r *Recorder) OnFinish(result FinalResult) {
	res := result
	r.Result = &res
}
