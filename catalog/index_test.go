package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/unitwalk/dimension"
)

func TestNewIndex(t *testing.T) {
	cat, err := New(
		Define(1, LHS("volt", 1), dimension.Exponents{"ampère": 1, "ohm": 1}),
		Define(1, LHS("siemen", 1), dimension.Exponents{"ohm": -1}),
	)
	require.NoError(t, err)

	index := NewIndex(cat)

	assert.Equal(t, 4, index.Units())

	// An equation appears under every unit it mentions, LHS or RHS.
	for _, unit := range []string{"volt", "ampère", "ohm"} {
		equations, ok := index.Lookup(unit)
		require.True(t, ok, "unit %q", unit)
		assert.Contains(t, equations, cat[0], "unit %q", unit)
	}

	// ohm is shared by both equations.
	ohmEquations, ok := index.Lookup("ohm")
	require.True(t, ok)
	assert.Len(t, ohmEquations, 2)

	_, ok = index.Lookup("furlong")
	assert.False(t, ok)
}
