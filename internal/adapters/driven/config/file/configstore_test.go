package file

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigStore_SetAndGet(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, store.Set("weread.cookie_file", "/tmp/cookies.txt"))
	require.NoError(t, store.Set("notes.min_count", 30))

	assert.Equal(t, "/tmp/cookies.txt", store.GetString("weread.cookie_file"))
	assert.Equal(t, 30, store.GetInt("notes.min_count"))

	_, ok := store.Get("missing.key")
	assert.False(t, ok)
}

func TestConfigStore_PersistsAcrossLoads(t *testing.T) {
	dir := t.TempDir()

	store, err := NewConfigStore(dir)
	require.NoError(t, err)
	require.NoError(t, store.Set("llm.provider", "openai"))

	reopened, err := NewConfigStore(dir)
	require.NoError(t, err)
	assert.Equal(t, "openai", reopened.GetString("llm.provider"))
}

func TestConfigStore_FlattensNestedTables(t *testing.T) {
	dir := t.TempDir()
	content := `
[notes]
min_count = 10

[anki]
tags = ["noteloom", "reading"]
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte(content), 0600))

	store, err := NewConfigStore(dir)
	require.NoError(t, err)

	assert.Equal(t, 10, store.GetInt("notes.min_count"))
	assert.Equal(t, []string{"noteloom", "reading"}, store.GetStringSlice("anki.tags"))
}

func TestConfigStore_TypeMismatchesReturnZeroValues(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, store.Set("key", "not an int"))

	assert.Equal(t, 0, store.GetInt("key"))
	assert.Nil(t, store.GetStringSlice("key"))
}
