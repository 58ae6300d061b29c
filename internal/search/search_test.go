package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/apexgrid/gridwear/internal/catalog"
)

func teeProducts() []catalog.Product {
	return catalog.Default().ProductsByCategory("tees")
}

func TestFilterByName(t *testing.T) {
	got := Filter(teeProducts(), "monaco")

	require.Len(t, got, 1)
	assert.Equal(t, "Monaco Grand Prix Tee", got[0].Name)
}

func TestFilterIsCaseInsensitive(t *testing.T) {
	assert.Equal(t, Filter(teeProducts(), "MONACO"), Filter(teeProducts(), "monaco"))
	assert.Equal(t, Filter(teeProducts(), "Silverstone"), Filter(teeProducts(), "silverstone"))
}

func TestFilterMatchesDescription(t *testing.T) {
	// "championship winner design" only appears in a description.
	got := Filter(teeProducts(), "winner")

	require.Len(t, got, 1)
	assert.Equal(t, "F1 Championship Tee", got[0].Name)
}

func TestEmptyQueryReturnsAll(t *testing.T) {
	tees := teeProducts()

	assert.Equal(t, tees, Filter(tees, ""))
	assert.Equal(t, tees, Filter(tees, "   "))
}

func TestNoMatches(t *testing.T) {
	got := Filter(teeProducts(), "submarine")
	assert.Empty(t, got)
}

func TestFilterPreservesOrder(t *testing.T) {
	got := Filter(teeProducts(), "tee")

	for i := 1; i < len(got); i++ {
		assert.Less(t, got[i-1].ID, got[i].ID, "catalog order must be preserved")
	}
}
