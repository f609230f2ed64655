package domain

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookupCanteen(t *testing.T) {
	c, err := LookupCanteen("mensa-garching")
	require.NoError(t, err)
	assert.Equal(t, SourceStudentenwerk, c.Source)
	assert.Equal(t, 422, c.StudentenwerkID)

	c, err = LookupCanteen(SourceIPPBistro)
	require.NoError(t, err)
	assert.Equal(t, SourceIPPBistro, c.Source)
	assert.Zero(t, c.StudentenwerkID)
}

func TestLookupCanteen_Unknown(t *testing.T) {
	_, err := LookupCanteen("mensa-atlantis")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCanteens_SortedAndConsistent(t *testing.T) {
	list := Canteens()
	require.NotEmpty(t, list)

	assert.True(t, sort.SliceIsSorted(list, func(i, j int) bool { return list[i].ID < list[j].ID }))
	for _, c := range list {
		assert.Contains(t, Sources(), c.Source, c.ID)
		if c.Source == SourceStudentenwerk {
			assert.NotZero(t, c.StudentenwerkID, c.ID)
		} else {
			assert.Equal(t, c.Source, c.ID)
		}
	}
}
