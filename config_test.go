package skipmap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfigDefaults(t *testing.T) {
	c := NewConfig()
	assert.Equal(t, DefaultMaxLevel, c.MaxLevel())
	assert.Equal(t, DefaultProbability, c.Probability())
	assert.Equal(t, DuplicateReject, c.DuplicatePolicy())
	require.NoError(t, c.Validate())
}

func TestNewWithConfig(t *testing.T) {
	c := NewConfig(WithMaxLevel(8), WithProbability(0.25), WithDuplicatePolicy(DuplicateOverwrite), WithSeed(7))
	m, err := NewWithConfig[string, int](c, Ordered[string]())
	require.NoError(t, err)
	assert.Equal(t, 8, m.MaxLevel())
	assert.Equal(t, 0.25, m.Probability())
	assert.Equal(t, DuplicateOverwrite, m.Config().DuplicatePolicy())

	_, err = NewWithConfig[string, int](NewConfig(WithMaxLevel(0)), Ordered[string]())
	require.ErrorIs(t, err, ErrInvalidConfiguration)
}

func TestParseDuplicatePolicy(t *testing.T) {
	cases := map[string]DuplicatePolicy{
		"":          DuplicateReject,
		"reject":    DuplicateReject,
		"IGNORE":    DuplicateIgnore,
		"overwrite": DuplicateOverwrite,
		" upsert ":  DuplicateOverwrite,
	}
	for in, want := range cases {
		got, err := ParseDuplicatePolicy(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
		if in != "" && in != " upsert " && in != "IGNORE" {
			assert.Equal(t, in, got.String())
		}
	}

	_, err := ParseDuplicatePolicy("explode")
	require.ErrorIs(t, err, ErrInvalidConfiguration)
	assert.Equal(t, "DuplicatePolicy(9)", DuplicatePolicy(9).String())
}

func TestNaturalStringsIsTotal(t *testing.T) {
	assert.Negative(t, NaturalStrings("a2", "a10"))
	assert.Positive(t, NaturalStrings("a10", "a2"))
	assert.Zero(t, NaturalStrings("x", "x"))

	// Distinct strings never compare equal, and the order is antisymmetric.
	pairs := [][2]string{{"a01", "a1"}, {"b", "a"}, {"1", "01"}}
	for _, p := range pairs {
		ab, ba := NaturalStrings(p[0], p[1]), NaturalStrings(p[1], p[0])
		assert.NotZero(t, ab, "%q vs %q", p[0], p[1])
		assert.Equal(t, ab < 0, ba > 0, "%q vs %q", p[0], p[1])
	}
}
