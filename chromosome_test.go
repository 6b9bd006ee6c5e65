package genetics

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// intChromosome is a minimal Chromosome[int] used across this
// package's tests: fitness is the sum of its genes, Mutate resets one
// gene to a random value in [0, Max), and DeepCopy produces
// independent gene storage with a fresh Identity.
type intChromosome struct {
	NoopRepairer
	id    Identity
	genes []int
	max   int
}

func newIntChromosome(genes []int, max int) *intChromosome {
	return &intChromosome{id: NewIdentity(), genes: genes, max: max}
}

func (c *intChromosome) ID() Identity { return c.id }
func (c *intChromosome) Genes() []int { return c.genes }

func (c *intChromosome) ComputeFitness() float64 {
	total := 0
	for _, g := range c.genes {
		total += g
	}
	return float64(total)
}

func (c *intChromosome) Mutate(rng *rand.Rand) {
	if len(c.genes) == 0 {
		return
	}
	idx := rng.Intn(len(c.genes))
	c.genes[idx] = rng.Intn(c.max)
}

func (c *intChromosome) DeepCopy() Chromosome[int] {
	genes := make([]int, len(c.genes))
	copy(genes, c.genes)
	return &intChromosome{id: NewIdentity(), genes: genes, max: c.max}
}

func TestIndividualFitnessIsCachedUntilInvalidated(t *testing.T) {
	c := newIntChromosome([]int{1, 2, 3}, 10)
	ind := newIndividual[int](c)

	require.Equal(t, float64(6), ind.Fitness())

	c.genes[0] = 100 // mutate the backing chromosome directly
	assert.Equal(t, float64(6), ind.Fitness(), "fitness must stay cached until invalidated")

	ind.InvalidateFitness()
	assert.Equal(t, float64(105), ind.Fitness())
}

func TestIndividualMutateInvalidatesFitness(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	c := newIntChromosome([]int{1, 2, 3}, 10)
	ind := newIndividual[int](c)
	require.Equal(t, float64(6), ind.Fitness())

	ind.Mutate(rng)
	assert.Equal(t, ind.Fitness(), ind.Chromosome().ComputeFitness())
}

func TestIndividualAgeLifecycle(t *testing.T) {
	ind := newIndividual[int](newIntChromosome([]int{1}, 10))
	assert.Equal(t, 0, ind.Age())
	ind.incrementAge()
	ind.incrementAge()
	assert.Equal(t, 2, ind.Age())
	ind.resetAge()
	assert.Equal(t, 0, ind.Age())
}

func TestDeepCopyProducesIndependentIdentityAndStorage(t *testing.T) {
	c := newIntChromosome([]int{1, 2, 3}, 10)
	cp := c.DeepCopy()
	assert.NotEqual(t, c.ID(), cp.ID())

	cp.Genes()[0] = 999
	assert.Equal(t, 1, c.Genes()[0], "DeepCopy must not alias the source's gene storage")
}

func TestCoupleRejectsIdenticalParents(t *testing.T) {
	ind := newIndividual[int](newIntChromosome([]int{1}, 10))
	assert.Panics(t, func() { newCouple(ind, ind) })
}
