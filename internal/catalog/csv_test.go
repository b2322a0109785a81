package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "movies.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadFromCSV(t *testing.T) {
	path := writeTempCSV(t, `id,title,overview,genres,keywords,vote_average,vote_count,popularity
1,World War Z,A zombie pandemic spreads.,"Action, Horror","zombie, pandemic",7.0,5000,80.5
2,No Score,Some overview,Drama,quiet,,100,10
3,,Missing title,Drama,quiet,6.0,100,10
4,Sparse,,,,5.5,,
`)

	store, err := LoadFromCSV(path)
	require.NoError(t, err)

	// Rows 2 and 3 are dropped: missing vote_average and missing title.
	assert.Equal(t, 2, store.Len())

	m, ok := store.FindByID(1)
	require.True(t, ok)
	assert.Equal(t, "World War Z", m.Title)
	assert.Equal(t, []string{"Action", "Horror"}, m.GenresList)
	assert.Equal(t, []string{"zombie", "pandemic"}, m.KeywordList)
	assert.Equal(t, 7.0, m.VoteAverage)
	assert.Equal(t, 5000, m.VoteCount)
	assert.Equal(t, 80.5, m.Popularity)

	sparse, ok := store.FindByID(4)
	require.True(t, ok)
	assert.Empty(t, sparse.GenresList)
	assert.Empty(t, sparse.KeywordList)
	assert.Zero(t, sparse.VoteCount)
}

func TestLoadFromCSVMissingRequiredColumn(t *testing.T) {
	path := writeTempCSV(t, "id,title\n1,Movie\n")

	_, err := LoadFromCSV(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "vote_average")
}

func TestLoadFromCSVMissingFile(t *testing.T) {
	_, err := LoadFromCSV(filepath.Join(t.TempDir(), "nope.csv"))
	assert.Error(t, err)
}
