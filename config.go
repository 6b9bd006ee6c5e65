package genetics

import "math/rand"

// Config collects every knob the Runner needs, assembled via the
// functional-options pattern: a sequence of With... calls builds up a
// Config before resolve fills in defaults and validates it.
type Config[T any] struct {
	parentSelectors    []ParentSelector[T]
	parentPolicy       OperatorPolicy[ParentSelector[T]]
	crossovers         []Crossover[T]
	crossoverPolicy    OperatorPolicy[Crossover[T]]
	crossoverRate      float64
	survivorSelectors  []SurvivorSelector[T]
	survivorPolicy     OperatorPolicy[SurvivorSelector[T]]
	terminator         Terminator
	minPopPct          float64
	maxPopPct          float64
	mutationRate       float64
	rng                *rand.Rand
}

// Option configures a Config.
type Option[T any] func(*Config[T])

// WithParentSelectors registers one or more parent-selection
// strategies. When more than one is registered, the operator-selection
// policy (see WithParentSelectorPolicy) decides which runs each epoch.
func WithParentSelectors[T any](selectors ...ParentSelector[T]) Option[T] {
	return func(c *Config[T]) { c.parentSelectors = append(c.parentSelectors, selectors...) }
}

// WithParentSelectorPolicy overrides the default operator-selection
// policy chosen among registered parent selectors.
func WithParentSelectorPolicy[T any](policy OperatorPolicy[ParentSelector[T]]) Option[T] {
	return func(c *Config[T]) { c.parentPolicy = policy }
}

// WithCrossovers registers one or more crossover strategies.
func WithCrossovers[T any](crossovers ...Crossover[T]) Option[T] {
	return func(c *Config[T]) { c.crossovers = append(c.crossovers, crossovers...) }
}

// WithCrossoverPolicy overrides the default operator-selection policy
// chosen among registered crossover strategies.
func WithCrossoverPolicy[T any](policy OperatorPolicy[Crossover[T]]) Option[T] {
	return func(c *Config[T]) { c.crossoverPolicy = policy }
}

// WithCrossoverRate sets the probability that a given couple produces
// offspring via crossover, versus being carried through as direct
// clones of the parents.
func WithCrossoverRate[T any](rate float64) Option[T] {
	return func(c *Config[T]) { c.crossoverRate = rate }
}

// WithSurvivorSelectors registers one or more survivor-selection
// strategies.
func WithSurvivorSelectors[T any](selectors ...SurvivorSelector[T]) Option[T] {
	return func(c *Config[T]) { c.survivorSelectors = append(c.survivorSelectors, selectors...) }
}

// WithSurvivorSelectorPolicy overrides the default operator-selection
// policy chosen among registered survivor selectors.
func WithSurvivorSelectorPolicy[T any](policy OperatorPolicy[SurvivorSelector[T]]) Option[T] {
	return func(c *Config[T]) { c.survivorPolicy = policy }
}

// WithTerminator sets the stopping condition. Defaults to
// MaxEpochsTerminator{Max: 100} if never set.
func WithTerminator[T any](t Terminator) Option[T] {
	return func(c *Config[T]) { c.terminator = t }
}

// WithPopulationBounds sets the min/max population size as a fraction
// of the initial population.
func WithPopulationBounds[T any](minPct, maxPct float64) Option[T] {
	return func(c *Config[T]) { c.minPopPct, c.maxPopPct = minPct, maxPct }
}

// WithMutationRate sets the probability that a given offspring is
// mutated after crossover, in [0, 1].
func WithMutationRate[T any](rate float64) Option[T] {
	return func(c *Config[T]) { c.mutationRate = rate }
}

// WithRNG overrides the engine's random source. Defaults to a
// rand.New(rand.NewSource(1)) deterministic source if never set, so a
// Runner built with no options is still reproducible.
func WithRNG[T any](rng *rand.Rand) Option[T] {
	return func(c *Config[T]) { c.rng = rng }
}

// resolve applies defaulting rules and validates the assembled
// configuration, returning a ConfigError for anything it cannot
// default its way out of.
func (c Config[T]) resolve() (Config[T], error) {
	if len(c.parentSelectors) == 0 {
		c.parentSelectors = []ParentSelector[T]{TournamentParentSelector[T]{Size: 3}}
	}
	if len(c.crossovers) == 0 {
		c.crossovers = []Crossover[T]{OnePointCrossover[T]{}}
	}
	if len(c.survivorSelectors) == 0 {
		sel, err := NewElitistSurvivorSelector[T](0.1)
		if err != nil {
			return c, err
		}
		c.survivorSelectors = []SurvivorSelector[T]{*sel}
	}
	if c.terminator == nil {
		t, err := NewMaxEpochsTerminator(100)
		if err != nil {
			return c, err
		}
		c.terminator = t
	}
	if c.minPopPct == 0 && c.maxPopPct == 0 {
		c.minPopPct, c.maxPopPct = 0.5, 2.0
	}
	if c.crossoverRate == 0 {
		c.crossoverRate = 0.9
	}
	if c.rng == nil {
		c.rng = rand.New(rand.NewSource(1))
	}

	var err error
	c.parentPolicy, err = resolvePolicy(c.parentPolicy, c.parentSelectors)
	if err != nil {
		return c, err
	}
	c.crossoverPolicy, err = resolvePolicy(c.crossoverPolicy, c.crossovers)
	if err != nil {
		return c, err
	}
	c.survivorPolicy, err = resolvePolicy(c.survivorPolicy, c.survivorSelectors)
	if err != nil {
		return c, err
	}
	if c.crossoverRate < 0 || c.crossoverRate > 1 {
		return c, newConfigError("Config", "crossover rate must be in [0, 1], got %v", c.crossoverRate)
	}
	if c.mutationRate < 0 || c.mutationRate > 1 {
		return c, newConfigError("Config", "mutation rate must be in [0, 1], got %v", c.mutationRate)
	}
	return c, nil
}

// resolvePolicy implements the operator-selection defaulting rule: a
// single registered operator always uses FirstChoicePolicy regardless
// of what the caller set (a policy is meaningless with one candidate);
// multiple operators use whatever the caller explicitly chose, or else
// CustomWeightPolicy if any operator reports a positive Weight(), or
// else AdaptivePursuit.
func resolvePolicy[Op Operator](policy OperatorPolicy[Op], ops []Op) (OperatorPolicy[Op], error) {
	if len(ops) == 0 {
		return nil, &MissingComponentError{Kind: "operator"}
	}
	if len(ops) == 1 {
		return FirstChoicePolicy[Op]{}, nil
	}
	hasPositiveWeight := false
	for _, op := range ops {
		if op.Weight() > 0 {
			hasPositiveWeight = true
			break
		}
	}
	if policy != nil {
		if _, isCustomWeight := policy.(CustomWeightPolicy[Op]); !isCustomWeight && hasPositiveWeight {
			return nil, newConfigError("Config", "a non-CustomWeight policy was set while an operator has a positive custom weight")
		}
		return policy, nil
	}
	if hasPositiveWeight {
		return CustomWeightPolicy[Op]{}, nil
	}
	ap, err := NewAdaptivePursuit[Op](0.1, 1.0/float64(4*len(ops)), 20, 0.1, 2, len(ops))
	if err != nil {
		return nil, err
	}
	return ap, nil
}
