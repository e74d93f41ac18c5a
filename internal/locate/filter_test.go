package locate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFilterByMass(t *testing.T) {
	t.Parallel()

	feats := []Feature{
		{X: 1, Y: 1, Mass: 100},
		{X: 2, Y: 2, Mass: 500},
		{X: 3, Y: 3, Mass: 499.9},
	}
	kept := filterByMass(feats, 500)
	require.Len(t, kept, 1)
	assert.Equal(t, 2.0, kept[0].X)
}

func TestDedupFeatures(t *testing.T) {
	t.Parallel()

	t.Run("keeps larger mass of a close pair", func(t *testing.T) {
		t.Parallel()
		feats := []Feature{
			{X: 10.0, Y: 10.0, Mass: 800},
			{X: 10.6, Y: 10.3, Mass: 1200},
		}
		kept := dedupFeatures(feats, 2.0)
		require.Len(t, kept, 1)
		assert.Equal(t, 1200.0, kept[0].Mass)
	})

	t.Run("distant features all survive in order", func(t *testing.T) {
		t.Parallel()
		feats := []Feature{
			{X: 5, Y: 5, Mass: 100},
			{X: 20, Y: 5, Mass: 900},
			{X: 5, Y: 20, Mass: 500},
		}
		kept := dedupFeatures(feats, 2.0)
		require.Len(t, kept, 3)
		assert.Equal(t, 100.0, kept[0].Mass)
		assert.Equal(t, 900.0, kept[1].Mass)
		assert.Equal(t, 500.0, kept[2].Mass)
	})

	t.Run("chain collapses to the strongest", func(t *testing.T) {
		t.Parallel()
		// b is close to both a and c; a and c are not close to each other.
		// The strongest (b) wins and removes both neighbors.
		feats := []Feature{
			{X: 10.0, Y: 10.0, Mass: 300},
			{X: 11.5, Y: 10.0, Mass: 1000},
			{X: 13.0, Y: 10.0, Mass: 400},
		}
		kept := dedupFeatures(feats, 2.0)
		require.Len(t, kept, 1)
		assert.Equal(t, 1000.0, kept[0].Mass)
	})

	t.Run("single feature unchanged", func(t *testing.T) {
		t.Parallel()
		feats := []Feature{{X: 1, Y: 1, Mass: 10}}
		assert.Equal(t, feats, dedupFeatures(feats, 5.0))
	})
}
