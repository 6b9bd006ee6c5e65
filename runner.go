package genetics

import (
	"math"
	"time"
)

// Runner orchestrates the generation loop: select survivors, breed
// offspring to replace them, mutate and repair the offspring, then
// advance the epoch. Step (one generation) and RunToCompletion (drives
// Step until the Terminator fires) are split apart so callers can
// inspect or checkpoint state between generations.
type Runner[T any] struct {
	cfg       Config[T]
	pop       Population[T]
	bounds    populationBounds
	epoch     int
	startedAt time.Time
	started   bool
	done      bool

	lastParentIdx int
}

// NewRunner builds a Runner from an initial population of chromosomes
// and a set of options. The initial population's size fixes the
// min/max population bounds for the life of the run.
func NewRunner[T any](initial []Chromosome[T], opts ...Option[T]) (*Runner[T], error) {
	if len(initial) == 0 {
		return nil, newConfigError("Runner", "initial population must be non-empty")
	}
	var cfg Config[T]
	for _, opt := range opts {
		opt(&cfg)
	}
	cfg, err := cfg.resolve()
	if err != nil {
		return nil, err
	}
	bounds, err := computeBounds(len(initial), cfg.minPopPct, cfg.maxPopPct)
	if err != nil {
		return nil, err
	}
	pop := make(Population[T], len(initial))
	for i, c := range initial {
		pop[i] = newIndividual(c)
	}
	return &Runner[T]{cfg: cfg, pop: pop, bounds: bounds}, nil
}

// Population returns the current population. Callers must not mutate
// the returned slice or its elements' chromosomes.
func (r *Runner[T]) Population() Population[T] { return r.pop }

// Epoch returns the number of completed generations.
func (r *Runner[T]) Epoch() int { return r.epoch }

// State returns a snapshot suitable for a Terminator or external
// inspection.
func (r *Runner[T]) State() EngineState {
	elapsed := time.Duration(0)
	if r.started {
		elapsed = time.Since(r.startedAt)
	}
	return EngineState{
		Epoch:                   r.epoch,
		Elapsed:                 elapsed,
		BestFitness:             r.pop.Best().Fitness(),
		PopulationFitnessStdDev: stddev(r.pop.Fitnesses()),
	}
}

// Done reports whether the configured Terminator says the run should
// stop without advancing another epoch.
func (r *Runner[T]) Done() bool {
	if !r.started {
		return false
	}
	return r.cfg.terminator.Done(r.State())
}

// Step advances the population by exactly one generation: select
// survivors to eliminate, breed offspring to replace them, mutate and
// repair the offspring, then age the survivors and advance the epoch.
// It returns whether the run is now done. Step does nothing and
// returns true if called again after the Terminator has already fired.
func (r *Runner[T]) Step() (bool, error) {
	// The Terminator is consulted once per population state (here for
	// the initial population, and at the end of each generation), so
	// stateful terminators such as TargetStdDevTerminator count each
	// epoch exactly once.
	if !r.started {
		r.startedAt = time.Now()
		r.started = true
		r.done = r.Done()
	}
	if r.done {
		return true, nil
	}

	survivorSel, survivorIdx := r.cfg.survivorPolicy.Select(r.cfg.survivorSelectors, r.cfg.rng, r.epoch)

	offspringCount, err := r.offspringCount(survivorSel)
	if err != nil {
		return false, err
	}

	offspring := make(Population[T], 0, offspringCount)
	for len(offspring) < offspringCount {
		couples := r.selectCouples(1)
		if len(couples) == 0 {
			break
		}
		couple := couples[0]
		children, err := r.breed(couple)
		if err != nil {
			return false, err
		}
		for _, c := range children {
			if len(offspring) >= offspringCount {
				break
			}
			offspring = append(offspring, wrapOffspring(c))
		}
	}

	newSize := len(r.pop)
	if newSize < r.bounds.min {
		newSize = r.bounds.min
	}
	if newSize > r.bounds.max {
		newSize = r.bounds.max
	}

	eliminateCount := len(r.pop) + len(offspring) - newSize
	if eliminateCount < 0 {
		eliminateCount = 0
	}
	if eliminateCount > len(r.pop) {
		eliminateCount = len(r.pop)
	}

	eliminated := survivorSel.Apply(r.pop, eliminateCount, r.cfg.rng, r.epoch)
	survivors := subtractByIdentity(r.pop, eliminated)
	next := make(Population[T], 0, len(survivors)+len(offspring))
	next = append(next, survivors...)
	next = append(next, offspring...)

	pre, post, normRange, diversity := survivorReward(r.pop, next)
	r.cfg.survivorPolicy.Feedback(survivorIdx, pre, post, normRange, diversity)

	for _, ind := range survivors {
		ind.incrementAge()
	}

	// Mutation and repair apply only to fresh offspring: a survivor an
	// Elitist-style selector protected from elimination stays
	// byte-for-byte untouched, which is what makes best-fitness
	// monotonically non-decreasing under the default configuration (see
	// DESIGN.md). Repair runs unconditionally on every offspring
	// regardless of whether its mutation roll succeeded.
	for _, ind := range offspring {
		if r.cfg.rng.Float64() < r.cfg.mutationRate {
			ind.Mutate(r.cfg.rng)
		}
		ind.Repair()
	}

	r.pop = next
	r.epoch++
	r.done = r.Done()
	return r.done, nil
}

// subtractByIdentity returns population with every individual sharing
// an identity with something in eliminated removed, preserving order.
func subtractByIdentity[T any](population, eliminated Population[T]) Population[T] {
	remove := make(map[Identity]bool, len(eliminated))
	for _, ind := range eliminated {
		remove[ind.ID()] = true
	}
	out := make(Population[T], 0, len(population)-len(eliminated))
	for _, ind := range population {
		if !remove[ind.ID()] {
			out = append(out, ind)
		}
	}
	return out
}

// offspringCount computes how many offspring to breed this generation:
// required = max(1, floor(|P|*rate)), using the survivor selector's
// recommended replacement rate when it has one, then clamped into
// [max(1, min_pop-|P|), max_pop-min_pop]. A clamped value outside
// (0, 2*max_pop] means the bounds and rate are mutually unsatisfiable,
// which is an InvariantError rather than a silent clamp.
func (r *Runner[T]) offspringCount(sel SurvivorSelector[T]) (int, error) {
	rate, ok := sel.RecommendedRate()
	if !ok {
		rate = 0.5
	}
	popSize := len(r.pop)
	required := int(math.Floor(rate * float64(popSize)))
	if required < 1 {
		required = 1
	}

	lowClamp := r.bounds.min - popSize
	if lowClamp < 1 {
		lowClamp = 1
	}
	highClamp := r.bounds.max - r.bounds.min

	clamped := required
	if clamped < lowClamp {
		clamped = lowClamp
	}
	if clamped > highClamp {
		clamped = highClamp
	}

	if clamped <= 0 || clamped > 2*r.bounds.max {
		return 0, newInvariantError("Runner.offspringCount", r.epoch,
			"required offspring count %d out of range for population bounds [%d, %d]", clamped, r.bounds.min, r.bounds.max)
	}
	return clamped, nil
}

// selectCouples picks k mating couples using the current
// parent-selection operator-selection policy. The policy's Feedback is
// invoked later, in breed, once the resulting offspring's fitness is
// known.
func (r *Runner[T]) selectCouples(k int) []Couple[T] {
	sel, idx := r.cfg.parentPolicy.Select(r.cfg.parentSelectors, r.cfg.rng, r.epoch)
	couples := sel.SelectPairs(r.pop, r.cfg.rng, k, r.epoch)
	if len(couples) > 0 {
		r.lastParentIdx = idx
	}
	return couples
}

// breed applies the crossover operator-selection policy to couple,
// returning its offspring and feeding back the resulting mating
// reward to both the crossover and parent-selection policies. Returns
// the *ConfigError raised by the chosen crossover strategy, if any,
// unchanged.
func (r *Runner[T]) breed(couple Couple[T]) ([]Chromosome[T], error) {
	if r.cfg.rng.Float64() >= r.cfg.crossoverRate {
		return []Chromosome[T]{couple.A.Chromosome().DeepCopy(), couple.B.Chromosome().DeepCopy()}, nil
	}
	cx, cxIdx := r.cfg.crossoverPolicy.Select(r.cfg.crossovers, r.cfg.rng, r.epoch)
	children, err := cx.Crossover(couple, r.cfg.rng)
	if err != nil {
		return nil, err
	}
	pre, post, normRange, diversity := matingReward(r.pop, couple, children)
	r.cfg.crossoverPolicy.Feedback(cxIdx, pre, post, normRange, diversity)
	r.cfg.parentPolicy.Feedback(r.lastParentIdx, pre, post, normRange, diversity)
	return children, nil
}

// RunToCompletion drives Step until the Terminator fires, then returns
// the best individual's chromosome.
func (r *Runner[T]) RunToCompletion() (Chromosome[T], error) {
	for {
		done, err := r.Step()
		if err != nil {
			return nil, err
		}
		if done {
			return r.pop.Best().Chromosome(), nil
		}
	}
}
