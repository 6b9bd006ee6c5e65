package genetics

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSwapGenesPreservesMultiset(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	genes := []int{1, 2, 3, 4, 5}
	before := append([]int{}, genes...)
	SwapGenes(genes, rng)

	sort.Ints(before)
	after := append([]int{}, genes...)
	sort.Ints(after)
	assert.Equal(t, before, after)
}

func TestScrambleGenesPreservesMultiset(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	genes := []int{1, 2, 3, 4, 5, 6}
	before := append([]int{}, genes...)
	ScrambleGenes(genes, rng)

	sort.Ints(before)
	after := append([]int{}, genes...)
	sort.Ints(after)
	assert.Equal(t, before, after)
}

func TestInvertGenesPreservesMultiset(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	genes := []int{1, 2, 3, 4, 5}
	before := append([]int{}, genes...)
	InvertGenes(genes, rng)

	sort.Ints(before)
	after := append([]int{}, genes...)
	sort.Ints(after)
	assert.Equal(t, before, after, "inversion must preserve the multiset of genes")
}

func TestResetGeneOverwritesExactlyOneIndex(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	genes := []int{1, 1, 1, 1}
	ResetGene(genes, rng, func(r *rand.Rand) int { return 99 })

	count := 0
	for _, g := range genes {
		if g == 99 {
			count++
		}
	}
	assert.Equal(t, 1, count)
}

func TestMutationHelpersOnTinySlices(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	assert.NotPanics(t, func() {
		SwapGenes([]int{}, rng)
		SwapGenes([]int{1}, rng)
		ScrambleGenes([]int{}, rng)
		InvertGenes([]int{1}, rng)
		ResetGene([]int{}, rng, func(*rand.Rand) int { return 0 })
	})
}
