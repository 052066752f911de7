package prefix

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLadderValues(t *testing.T) {
	want := []int{
		-30, -27, -24, -21, -18, -15, -12, -9, -6, -3,
		-2, -1, 0, 1, 2,
		3, 6, 9, 12, 15, 18, 21, 24, 27, 30,
	}
	assert.Equal(t, want, Ladder())
}

func TestLadderReturnsCopy(t *testing.T) {
	first := Ladder()
	first[0] = 999
	assert.Equal(t, -30, Ladder()[0])
}

func TestName(t *testing.T) {
	tests := []struct {
		power int
		want  string
	}{
		{power: -30, want: "quecto"},
		{power: -12, want: "pico"},
		{power: -3, want: "milli"},
		{power: -2, want: "centi"},
		{power: -1, want: "deci"},
		{power: 0, want: ""},
		{power: 1, want: "deca"},
		{power: 2, want: "hecto"},
		{power: 3, want: "kilo"},
		{power: 9, want: "giga"},
		{power: 30, want: "quetta"},
	}

	for _, tt := range tests {
		got, ok := Name(tt.power)
		require.True(t, ok, "power %d", tt.power)
		assert.Equal(t, tt.want, got, "power %d", tt.power)
	}

	for _, power := range []int{-31, 4, 5, 31, 100} {
		_, ok := Name(power)
		assert.False(t, ok, "power %d should be off the ladder", power)
	}
}

func TestEveryLadderValueIsNamed(t *testing.T) {
	for _, power := range Ladder() {
		_, ok := Name(power)
		assert.True(t, ok, "power %d", power)
	}
}
