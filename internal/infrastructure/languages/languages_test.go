package languages

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	table, err := Load()
	require.NoError(t, err)
	require.NotEmpty(t, table)

	byName := map[string]int{}
	for i, l := range table {
		assert.NotEmpty(t, l.Name)
		assert.NotEmpty(t, l.Key)
		byName[l.Name] = i
	}

	// Spot checks against the shipped table.
	french := table[byName["French"]]
	assert.Equal(t, "FR", french.Key)
	assert.True(t, french.SupportsFormality)

	japanese := table[byName["Japanese"]]
	assert.Equal(t, "JA", japanese.Key)
	assert.False(t, japanese.SupportsFormality)
}

func TestParse(t *testing.T) {
	t.Run("missing_supports_formality_is_fatal", func(t *testing.T) {
		_, err := parse([]byte(`
[[languages]]
name = "French"
key = "FR"
`))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "supports_formality")
	})

	t.Run("missing_key_is_fatal", func(t *testing.T) {
		_, err := parse([]byte(`
[[languages]]
name = "French"
supports_formality = true
`))
		require.Error(t, err)
	})

	t.Run("duplicate_names_are_fatal", func(t *testing.T) {
		_, err := parse([]byte(`
[[languages]]
name = "French"
key = "FR"
supports_formality = true

[[languages]]
name = "FRENCH"
key = "FR"
supports_formality = false
`))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "duplicate")
	})

	t.Run("empty_table_is_fatal", func(t *testing.T) {
		_, err := parse([]byte(""))
		require.Error(t, err)
	})

	t.Run("explicit_false_is_kept", func(t *testing.T) {
		table, err := parse([]byte(`
[[languages]]
name = "Japanese"
key = "JA"
supports_formality = false
`))
		require.NoError(t, err)
		require.Len(t, table, 1)
		assert.False(t, table[0].SupportsFormality)
	})
}
