package matcher

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompileLiteral(t *testing.T) {
	t.Run("case sensitive", func(t *testing.T) {
		m, err := Compile("duct", false, false)
		require.NoError(t, err)

		assert.True(t, m.Match("duct tape"))
		assert.True(t, m.Match("safe, fast, productive."))
		assert.False(t, m.Match("Duct tape"))
	})

	t.Run("case insensitive", func(t *testing.T) {
		m, err := Compile("rUsT", false, true)
		require.NoError(t, err)

		assert.True(t, m.Match("Rust is great"))
		assert.True(t, m.Match("rust is great"))
		assert.True(t, m.Match("Trust me."))
		assert.False(t, m.Match("safe, fast, productive."))
	})

	t.Run("never fails", func(t *testing.T) {
		m, err := Compile("[invalid", false, false)
		require.NoError(t, err)
		assert.True(t, m.Match("an [invalid bracket"))
	})
}

func TestCompileRegex(t *testing.T) {
	t.Run("case sensitive", func(t *testing.T) {
		m, err := Compile("Rust.*", true, false)
		require.NoError(t, err)

		assert.True(t, m.Match("Rusty nails"))
		assert.False(t, m.Match("rusty nails"))
	})

	t.Run("case insensitivity baked in at compile time", func(t *testing.T) {
		m, err := Compile("rust.*", true, true)
		require.NoError(t, err)

		assert.True(t, m.Match("Rusty nails"))
		assert.True(t, m.Match("rusty nails"))
		assert.True(t, m.Match("nothing about rust"))
		assert.False(t, m.Match("fast, safe, productive."))
	})

	t.Run("anchors", func(t *testing.T) {
		m, err := Compile("^Rust", true, false)
		require.NoError(t, err)

		assert.True(t, m.Match("Rust is great"))
		assert.False(t, m.Match("I like Rust"))
	})
}

func TestCompileInvalidRegex(t *testing.T) {
	m, err := Compile("[invalid", true, false)
	assert.Nil(t, m)
	require.Error(t, err)

	var pe *InvalidPatternError
	require.True(t, errors.As(err, &pe))
	assert.Equal(t, "[invalid", pe.Pattern)
	assert.True(t, IsInvalidPattern(err))
}

func TestCompileDeterministic(t *testing.T) {
	lines := []string{"Rust:", "safe, fast, productive.", "Pick three.", "Rusty nails."}

	m1, err := Compile("R\\w+", true, false)
	require.NoError(t, err)
	m2, err := Compile("R\\w+", true, false)
	require.NoError(t, err)

	for _, line := range lines {
		assert.Equal(t, m1.Match(line), m2.Match(line), "line %q", line)
	}
}

func TestIsInvalidPattern(t *testing.T) {
	assert.False(t, IsInvalidPattern(nil))
	assert.False(t, IsInvalidPattern(errors.New("other")))
}
