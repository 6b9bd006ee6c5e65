package genetics

import "math/rand"

// Chromosome is the capability set a domain type must implement to be
// evolved by the engine. T is the gene type; it is a type parameter of
// the engine, not of any one chromosome implementation, so every
// strategy, selector and the Runner itself share the same T.
//
// Implementations must obey:
//   - ID is assigned once, at construction, and never changes.
//   - DeepCopy returns a chromosome with a brand new Identity, whose
//     genes are independent storage from the source (mutating the copy
//     must never affect the source or vice versa).
//   - Repair may be a no-op; embed NoopRepairer to get one for free.
type Chromosome[T any] interface {
	// ID returns this chromosome's stable, process-unique identity.
	ID() Identity

	// Genes returns the ordered gene sequence backed by this
	// chromosome's own storage. Since DeepCopy must allocate independent
	// storage, crossover strategies in this package write offspring
	// genes directly through the slice Genes returns on a freshly
	// DeepCopy'd chromosome.
	Genes() []T

	// ComputeFitness evaluates this chromosome from scratch. Higher is
	// better. The engine caches the result; ComputeFitness itself must
	// not cache — that is the Individual wrapper's job.
	ComputeFitness() float64

	// Mutate introduces domain-specific randomness using rng as the
	// only source of entropy.
	Mutate(rng *rand.Rand)

	// DeepCopy returns an independent chromosome with a fresh Identity.
	DeepCopy() Chromosome[T]

	// Repair restores any domain invariants genes must satisfy (e.g.
	// permutation validity) after crossover or mutation. May be a no-op.
	Repair()
}

// NoopRepairer is embedded by domain chromosomes whose genes need no
// post-mutation repair.
type NoopRepairer struct{}

// Repair does nothing.
func (NoopRepairer) Repair() {}

// Individual is the engine-owned wrapper around a domain Chromosome. It
// adds the two pieces of state the engine manages on the domain's
// behalf: age and a fitness cache. Domain code never constructs an
// Individual directly; the engine does, at initialization and whenever
// crossover produces offspring.
type Individual[T any] struct {
	chromosome Chromosome[T]
	age        int
	fitness    *float64
}

// newIndividual wraps a fresh chromosome at age 0 with an invalidated
// fitness cache: the same state freshly bred offspring start in.
func newIndividual[T any](c Chromosome[T]) *Individual[T] {
	return &Individual[T]{chromosome: c}
}

// Chromosome returns the wrapped domain chromosome.
func (in *Individual[T]) Chromosome() Chromosome[T] { return in.chromosome }

// ID returns the wrapped chromosome's identity.
func (in *Individual[T]) ID() Identity { return in.chromosome.ID() }

// Genes returns the wrapped chromosome's genes.
func (in *Individual[T]) Genes() []T { return in.chromosome.Genes() }

// Age returns the number of generations this individual has survived.
func (in *Individual[T]) Age() int { return in.age }

// Fitness returns the cached fitness value if one is present, else
// computes it via the domain chromosome and caches the result. Between
// two calls with no intervening InvalidateFitness, Mutate or Repair,
// the returned value is guaranteed identical.
func (in *Individual[T]) Fitness() float64 {
	if in.fitness == nil {
		f := in.chromosome.ComputeFitness()
		in.fitness = &f
	}
	return *in.fitness
}

// InvalidateFitness clears the cached fitness. Called by the engine
// whenever genes change: mutation, crossover output, repair.
func (in *Individual[T]) InvalidateFitness() {
	in.fitness = nil
}

// Mutate mutates the wrapped chromosome and invalidates its fitness
// cache, since genes have changed.
func (in *Individual[T]) Mutate(rng *rand.Rand) {
	in.chromosome.Mutate(rng)
	in.InvalidateFitness()
}

// Repair repairs the wrapped chromosome and invalidates its fitness
// cache, since repair may change genes.
func (in *Individual[T]) Repair() {
	in.chromosome.Repair()
	in.InvalidateFitness()
}

// resetAge sets age back to 0. Runner.Step does not call it: offspring
// enter the population as fresh Individuals, already at age 0.
func (in *Individual[T]) resetAge() {
	in.age = 0
}

// incrementAge is called once per generation for every surviving
// individual.
func (in *Individual[T]) incrementAge() {
	in.age++
}

// wrapOffspring wraps a freshly-produced chromosome (crossover output)
// as a fresh-offspring Individual: age 0, fitness cache empty.
func wrapOffspring[T any](c Chromosome[T]) *Individual[T] {
	return newIndividual(c)
}
