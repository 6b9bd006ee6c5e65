package genetics

import "time"

// EngineState is the read-only snapshot a Terminator inspects each
// epoch: a concrete observation surface a Terminator (and external
// callers via Runner.State) can use without reaching into engine
// internals.
type EngineState struct {
	Epoch                   int
	Elapsed                 time.Duration
	BestFitness             float64
	PopulationFitnessStdDev float64
}

// Terminator decides whether the run should stop before advancing to
// another epoch.
type Terminator interface {
	String() string

	// Done reports whether the run should stop, given the current
	// state. Terminators that need per-epoch memory (e.g.
	// TargetStdDevTerminator's consecutive-epoch counter) keep it in
	// their own fields and must not be shared across concurrent runs.
	Done(state EngineState) bool
}

// MaxEpochsTerminator stops once Epoch reaches Max.
type MaxEpochsTerminator struct {
	Max int
}

func (MaxEpochsTerminator) String() string { return "MaxEpochs" }

func (t MaxEpochsTerminator) Done(state EngineState) bool { return state.Epoch >= t.Max }

// NewMaxEpochsTerminator validates max > 0.
func NewMaxEpochsTerminator(max int) (*MaxEpochsTerminator, error) {
	if max <= 0 {
		return nil, newConfigError("MaxEpochsTerminator", "max must be > 0, got %d", max)
	}
	return &MaxEpochsTerminator{Max: max}, nil
}

// MaxDurationTerminator stops once Elapsed reaches Max.
type MaxDurationTerminator struct {
	Max time.Duration
}

func (MaxDurationTerminator) String() string { return "MaxDuration" }

func (t MaxDurationTerminator) Done(state EngineState) bool { return state.Elapsed >= t.Max }

// NewMaxDurationTerminator validates max > 0.
func NewMaxDurationTerminator(max time.Duration) (*MaxDurationTerminator, error) {
	if max <= 0 {
		return nil, newConfigError("MaxDurationTerminator", "max must be > 0, got %v", max)
	}
	return &MaxDurationTerminator{Max: max}, nil
}

// TargetFitnessTerminator stops once BestFitness reaches or exceeds
// Target.
type TargetFitnessTerminator struct {
	Target float64
}

func (TargetFitnessTerminator) String() string { return "TargetFitness" }

func (t TargetFitnessTerminator) Done(state EngineState) bool { return state.BestFitness >= t.Target }

// TargetStdDevTerminator stops once the population's fitness standard
// deviation has stayed at or below Sigma for Window consecutive
// epochs, signaling the population has converged. Stateful: each
// instance must be used by exactly one Runner.
type TargetStdDevTerminator struct {
	Sigma  float64
	Window int

	consecutive int
}

func (t *TargetStdDevTerminator) String() string { return "TargetStdDev" }

func (t *TargetStdDevTerminator) Done(state EngineState) bool {
	if state.PopulationFitnessStdDev <= t.Sigma {
		t.consecutive++
	} else {
		t.consecutive = 0
	}
	return t.consecutive >= t.Window
}

// NewTargetStdDevTerminator validates sigma >= 0 and window > 0.
func NewTargetStdDevTerminator(sigma float64, window int) (*TargetStdDevTerminator, error) {
	if sigma < 0 {
		return nil, newConfigError("TargetStdDevTerminator", "sigma must be >= 0, got %v", sigma)
	}
	if window <= 0 {
		return nil, newConfigError("TargetStdDevTerminator", "window must be > 0, got %d", window)
	}
	return &TargetStdDevTerminator{Sigma: sigma, Window: window}, nil
}

// AnyTerminator stops once any of its members would stop, short
// circuiting left to right. Lets callers combine e.g. MaxEpochs with
// TargetFitness without a bespoke composite type per combination.
type AnyTerminator struct {
	Terminators []Terminator
}

func (AnyTerminator) String() string { return "Any" }

func (t AnyTerminator) Done(state EngineState) bool {
	for _, term := range t.Terminators {
		if term.Done(state) {
			return true
		}
	}
	return false
}
