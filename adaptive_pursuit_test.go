package genetics

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdaptivePursuitValidation(t *testing.T) {
	_, err := NewAdaptivePursuit[weightedOp](0, 0.1, 10, 0.1, 1, 2)
	assert.Error(t, err, "eta must be in (0, 1]")

	_, err = NewAdaptivePursuit[weightedOp](0.1, 0, 10, 0.1, 1, 2)
	assert.Error(t, err, "p_min must be in (0, 1)")

	_, err = NewAdaptivePursuit[weightedOp](0.1, 0.1, 0, 0.1, 1, 2)
	assert.Error(t, err, "window must be > 0")

	_, err = NewAdaptivePursuit[weightedOp](0.1, 0.1, 10, 0.1, 1, 2)
	assert.NoError(t, err)
}

func TestAdaptivePursuitRoundRobinsDuringWarmup(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	ops := []weightedOp{{name: "a"}, {name: "b"}, {name: "c"}}
	ap, err := NewAdaptivePursuit[weightedOp](0.2, 0.05, 20, 0.1, 1, 3)
	require.NoError(t, err)

	var seen []string
	for epoch := 0; epoch < 3; epoch++ {
		op, _ := ap.Select(ops, rng, epoch)
		seen = append(seen, op.name)
	}
	assert.Equal(t, []string{"a", "b", "c"}, seen)
}

func TestAdaptivePursuitConvergesTowardTheBestRewardedOperator(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	ops := []weightedOp{{name: "good"}, {name: "bad"}}
	ap, err := NewAdaptivePursuit[weightedOp](0.3, 0.05, 10, 0, 1, 2)
	require.NoError(t, err)

	for epoch := 0; epoch < 200; epoch++ {
		_, idx := ap.Select(ops, rng, epoch)
		if ops[idx].name == "good" {
			ap.Feedback(idx, 0, 1, 1, 0)
		} else {
			ap.Feedback(idx, 0, 0, 1, 0)
		}
	}

	goodIdx := 0
	avg, ok := ap.averageReward(goodIdx)
	require.True(t, ok)
	assert.Greater(t, avg, 0.5)
	assert.Greater(t, ap.probabilities[goodIdx], ap.probabilities[1])
}

func TestAdaptivePursuitProbabilitiesStayNormalizedAndAboveFloor(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	ops := []weightedOp{{name: "a"}, {name: "b"}, {name: "c"}}
	ap, err := NewAdaptivePursuit[weightedOp](0.5, 0.1, 5, 0, 1, 3)
	require.NoError(t, err)

	for epoch := 0; epoch < 50; epoch++ {
		_, idx := ap.Select(ops, rng, epoch)
		ap.Feedback(idx, 0, rng.Float64(), 1, 0)
	}

	total := 0.0
	for _, p := range ap.probabilities {
		assert.GreaterOrEqual(t, p, ap.PMin-1e-9)
		total += p
	}
	assert.InDelta(t, 1.0, total, 1e-9)
}
