package genetics

import (
	"fmt"
	"regexp"
	"strconv"
)

const (
	errAlreadySet      = "%sFlag.Set(%s): already set to %s"
	errUnexpectedFn    = "%sFlag.Set(%s): unknown function name %s"
	errUnexpectedParam = "%sFlag.Set(%s): function %s does not accept parameters"
	errInvalidParam    = "%sFlag.Set(%s): param %s should %s"
)

var flagFmt = regexp.MustCompile(`^(\w+)(\(([\w.]*)\))?$`)

// ParentSelectorFlag allows developers to pick a ParentSelector
// strategy using flag.Value. Valid values include:
// --flag=Random
// --flag=Roulette
// --flag=Rank
// --flag=Tournament(3)
type ParentSelectorFlag[T any] struct {
	selector ParentSelector[T]
}

func (f ParentSelectorFlag[T]) String() string {
	if f.selector == nil {
		return "Tournament(3)"
	}
	return f.selector.String()
}

// Set implements flag.Value.
func (f *ParentSelectorFlag[T]) Set(s string) error {
	if f.selector != nil {
		return fmt.Errorf(errAlreadySet, "ParentSelector", s, f)
	}

	match := flagFmt.FindStringSubmatch(s)
	if match == nil {
		return fmt.Errorf(errUnexpectedFn, "ParentSelector", s, s)
	}
	fn, arg := match[1], match[3]

	switch fn {
	case "Random":
		f.selector = RandomParentSelector[T]{}
	case "Roulette":
		f.selector = RouletteParentSelector[T]{}
	case "Rank":
		f.selector = RankParentSelector[T]{}
	case "Tournament":
		n, err := strconv.Atoi(arg)
		if err != nil || n < 2 {
			return fmt.Errorf(errInvalidParam, "ParentSelector", s, arg, "a whole number >= 2")
		}
		f.selector = TournamentParentSelector[T]{Size: n}
	default:
		return fmt.Errorf(errUnexpectedFn, "ParentSelector", s, fn)
	}

	if fn != "Tournament" && arg != "" {
		return fmt.Errorf(errUnexpectedParam, "ParentSelector", fn, arg)
	}
	return nil
}

// Get returns the parsed ParentSelector.
func (f *ParentSelectorFlag[T]) Get() ParentSelector[T] {
	if f.selector == nil {
		return TournamentParentSelector[T]{Size: 3}
	}
	return f.selector
}

// CrossoverFlag allows developers to pick a Crossover strategy using
// flag.Value. Valid values include:
// --flag=OnePoint
// --flag=KPoint(2)
// --flag=Uniform
type CrossoverFlag[T any] struct {
	crossover Crossover[T]
}

func (f CrossoverFlag[T]) String() string {
	if f.crossover == nil {
		return "OnePoint"
	}
	return f.crossover.String()
}

// Set implements flag.Value.
func (f *CrossoverFlag[T]) Set(s string) error {
	if f.crossover != nil {
		return fmt.Errorf(errAlreadySet, "Crossover", s, f)
	}

	match := flagFmt.FindStringSubmatch(s)
	if match == nil {
		return fmt.Errorf(errUnexpectedFn, "Crossover", s, s)
	}
	fn, arg := match[1], match[3]

	switch fn {
	case "OnePoint":
		f.crossover = OnePointCrossover[T]{}
	case "Uniform":
		f.crossover = UniformCrossover[T]{Bias: 0.5}
	case "KPoint":
		n, err := strconv.Atoi(arg)
		if err != nil || n < 2 {
			return fmt.Errorf(errInvalidParam, "Crossover", s, arg, "a whole number >= 2")
		}
		f.crossover = KPointCrossover[T]{K: n}
	default:
		return fmt.Errorf(errUnexpectedFn, "Crossover", s, fn)
	}

	if fn != "KPoint" && arg != "" {
		return fmt.Errorf(errUnexpectedParam, "Crossover", fn, arg)
	}
	return nil
}

// Get returns the parsed Crossover.
func (f *CrossoverFlag[T]) Get() Crossover[T] {
	if f.crossover == nil {
		return OnePointCrossover[T]{}
	}
	return f.crossover
}

// SurvivorSelectorFlag allows developers to pick a SurvivorSelector
// strategy using flag.Value. Valid values include:
// --flag=Generational
// --flag=Elitist(0.1)
// --flag=Random
// --flag=AgeBased
type SurvivorSelectorFlag[T any] struct {
	selector SurvivorSelector[T]
}

func (f SurvivorSelectorFlag[T]) String() string {
	if f.selector == nil {
		return "Elitist(0.1)"
	}
	return f.selector.String()
}

// Set implements flag.Value.
func (f *SurvivorSelectorFlag[T]) Set(s string) error {
	if f.selector != nil {
		return fmt.Errorf(errAlreadySet, "SurvivorSelector", s, f)
	}

	match := flagFmt.FindStringSubmatch(s)
	if match == nil {
		return fmt.Errorf(errUnexpectedFn, "SurvivorSelector", s, s)
	}
	fn, arg := match[1], match[3]

	switch fn {
	case "Generational":
		f.selector = GenerationalSurvivorSelector[T]{}
	case "Random":
		f.selector = RandomSurvivorSelector[T]{}
	case "AgeBased":
		f.selector = AgeBasedSurvivorSelector[T]{}
	case "Elitist":
		frac, err := strconv.ParseFloat(arg, 64)
		if err != nil || frac < 0 || frac > 1 {
			return fmt.Errorf(errInvalidParam, "SurvivorSelector", s, arg, "a number in [0, 1]")
		}
		f.selector = ElitistSurvivorSelector[T]{EliteFrac: frac}
	default:
		return fmt.Errorf(errUnexpectedFn, "SurvivorSelector", s, fn)
	}

	if fn != "Elitist" && arg != "" {
		return fmt.Errorf(errUnexpectedParam, "SurvivorSelector", fn, arg)
	}
	return nil
}

// Get returns the parsed SurvivorSelector.
func (f *SurvivorSelectorFlag[T]) Get() SurvivorSelector[T] {
	if f.selector == nil {
		return ElitistSurvivorSelector[T]{EliteFrac: 0.1}
	}
	return f.selector
}

// TerminationFlag allows developers to pick a Terminator using
// flag.Value. Valid values include:
// --flag=MaxEpochs(100)
// --flag=TargetFitness(95)
type TerminationFlag struct {
	terminator Terminator
}

func (f TerminationFlag) String() string {
	if f.terminator == nil {
		return "MaxEpochs(100)"
	}
	return f.terminator.String()
}

// Set implements flag.Value.
func (f *TerminationFlag) Set(s string) error {
	if f.terminator != nil {
		return fmt.Errorf(errAlreadySet, "Termination", s, f)
	}

	match := flagFmt.FindStringSubmatch(s)
	if match == nil {
		return fmt.Errorf(errUnexpectedFn, "Termination", s, s)
	}
	fn, arg := match[1], match[3]

	switch fn {
	case "MaxEpochs":
		n, err := strconv.Atoi(arg)
		if err != nil || n < 1 {
			return fmt.Errorf(errInvalidParam, "Termination", s, arg, "a whole number >= 1")
		}
		f.terminator = &MaxEpochsTerminator{Max: n}
	case "TargetFitness":
		target, err := strconv.ParseFloat(arg, 64)
		if err != nil {
			return fmt.Errorf(errInvalidParam, "Termination", s, arg, "a number")
		}
		f.terminator = &TargetFitnessTerminator{Target: target}
	default:
		return fmt.Errorf(errUnexpectedFn, "Termination", s, fn)
	}
	return nil
}

// Get returns the parsed Terminator.
func (f *TerminationFlag) Get() Terminator {
	if f.terminator == nil {
		return &MaxEpochsTerminator{Max: 100}
	}
	return f.terminator
}
