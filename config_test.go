package genetics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolvePolicySingleOperatorUsesFirstChoice(t *testing.T) {
	ops := []weightedOp{{name: "only"}}
	policy, err := resolvePolicy[weightedOp](nil, ops)
	require.NoError(t, err)
	assert.Equal(t, "FirstChoice", policy.String())
}

func TestResolvePolicyMultipleOperatorsNoWeightsDefaultToAdaptivePursuit(t *testing.T) {
	ops := []weightedOp{{name: "a"}, {name: "b"}}
	policy, err := resolvePolicy[weightedOp](nil, ops)
	require.NoError(t, err)
	assert.Equal(t, "AdaptivePursuit", policy.String())
}

func TestResolvePolicyPositiveWeightDefaultsToCustomWeight(t *testing.T) {
	ops := []weightedOp{{name: "a", weight: 1}, {name: "b"}}
	policy, err := resolvePolicy[weightedOp](nil, ops)
	require.NoError(t, err)
	assert.Equal(t, "CustomWeight", policy.String())
}

func TestResolvePolicyExplicitChoiceIsHonored(t *testing.T) {
	ops := []weightedOp{{name: "a"}, {name: "b"}}
	policy, err := resolvePolicy[weightedOp](RandomPolicy[weightedOp]{}, ops)
	require.NoError(t, err)
	assert.Equal(t, "Random", policy.String())
}

func TestResolvePolicyRejectsNonCustomWeightPolicyWithPositiveWeights(t *testing.T) {
	ops := []weightedOp{{name: "a", weight: 1}, {name: "b"}}
	_, err := resolvePolicy[weightedOp](RandomPolicy[weightedOp]{}, ops)
	assert.Error(t, err)
}

func TestResolvePolicyAllowsCustomWeightPolicyWithPositiveWeights(t *testing.T) {
	ops := []weightedOp{{name: "a", weight: 1}, {name: "b"}}
	policy, err := resolvePolicy[weightedOp](CustomWeightPolicy[weightedOp]{}, ops)
	require.NoError(t, err)
	assert.Equal(t, "CustomWeight", policy.String())
}
