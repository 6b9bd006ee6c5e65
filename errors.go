package genetics

import "fmt"

// ConfigError reports an invalid parameter discovered at construction
// or registration time. The engine never starts a run with a
// ConfigError outstanding.
type ConfigError struct {
	Component string // e.g. "Runner", "Wheel", "KPointCrossover"
	Msg       string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("genetics: %s: configuration error: %s", e.Component, e.Msg)
}

// newConfigError is a small constructor to keep call sites terse.
func newConfigError(component, format string, args ...any) *ConfigError {
	return &ConfigError{Component: component, Msg: fmt.Sprintf(format, args...)}
}

// InvariantError reports a violation reachable only through a
// programming bug or an unsound strategy. The engine raises it for a
// required offspring count out of range (Runner) and for spinning an
// empty wheel (Wheel.SpinAndRemove); adaptive-pursuit probability
// bounds, cached-fitness consistency and deep-copy identities are not
// checked. It carries enough context (operator kind, epoch) to
// diagnose.
type InvariantError struct {
	Op    string // operator/component that detected the violation
	Epoch int
	Msg   string
}

func (e *InvariantError) Error() string {
	return fmt.Sprintf("genetics: invariant violated in %s at epoch %d: %s", e.Op, e.Epoch, e.Msg)
}

func newInvariantError(op string, epoch int, format string, args ...any) *InvariantError {
	return &InvariantError{Op: op, Epoch: epoch, Msg: fmt.Sprintf(format, args...)}
}

// MissingComponentError reports that a registration was cleared,
// leaving no operator of a required kind. The engine's defaulting
// rules normally prevent this; it surfaces only under an explicit,
// user-cleared configuration.
type MissingComponentError struct {
	Kind string // "parent selector", "crossover", "survivor selector", ...
}

func (e *MissingComponentError) Error() string {
	return fmt.Sprintf("genetics: no %s registered", e.Kind)
}
