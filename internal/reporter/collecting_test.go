package reporter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gitrdm/sequoia/pkg/sequoia"
)

func TestCollectingEmitItemset(t *testing.T) {
	c := NewCollecting()
	require.NoError(t, c.EmitItemset([]sequoia.Item{0, 1}, nil, 3))
	require.NoError(t, c.EmitItemset([]sequoia.Item{0}, []float64{1.5}, 2))

	require.Len(t, c.Patterns, 2)
	assert.Equal(t, []sequoia.Item{0, 1}, c.Patterns[0].Items)
	assert.EqualValues(t, 3, c.Patterns[0].Support)
	assert.Nil(t, c.Patterns[0].Weights)

	assert.Equal(t, []float64{1.5}, c.Patterns[1].Weights)
}

func TestCollectingEmitItemsetCopiesSlices(t *testing.T) {
	c := NewCollecting()
	prefix := []sequoia.Item{0, 1}
	weights := []float64{1, 2}
	require.NoError(t, c.EmitItemset(prefix, weights, 1))

	prefix[0] = 99
	weights[0] = 99

	assert.EqualValues(t, 0, c.Patterns[0].Items[0], "EmitItemset must copy prefix, not alias it")
	assert.EqualValues(t, 1, c.Patterns[0].Weights[0], "EmitItemset must copy weights, not alias them")
}

func TestCollectingAddRemove(t *testing.T) {
	c := NewCollecting()
	require.NoError(t, c.Add(0, 1))
	require.NoError(t, c.Add(1, 1))
	require.Len(t, c.Patterns, 2)
	assert.Equal(t, []sequoia.Item{0}, c.Patterns[0].Items)
	assert.Equal(t, []sequoia.Item{0, 1}, c.Patterns[1].Items)

	require.NoError(t, c.Remove(1))
	require.NoError(t, c.Add(2, 1))
	assert.Equal(t, []sequoia.Item{0, 2}, c.Patterns[2].Items)
}
