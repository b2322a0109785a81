package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testMovies() []Movie {
	return []Movie{
		{ID: 1, Title: "World War Z", GenresList: []string{"Action", "Horror"}, VoteAverage: 7.0},
		{ID: 2, Title: "War Horse", GenresList: []string{"Drama", "War"}, VoteAverage: 7.1},
		{ID: 3, Title: "Horror Night", GenresList: []string{"horror"}, VoteAverage: 5.5},
	}
}

func TestSplitAndTrim(t *testing.T) {
	assert.Equal(t, []string{"Action", "Horror"}, SplitAndTrim("Action, Horror"))
	assert.Equal(t, []string{"zombie"}, SplitAndTrim(" zombie ,, "))
	assert.Empty(t, SplitAndTrim(""))
}

func TestStoreFindByExactTitle(t *testing.T) {
	store := NewStore(testMovies())

	matches := store.FindByExactTitle("world war z")
	require.Len(t, matches, 1)
	assert.Equal(t, 1, matches[0].ID)

	assert.Empty(t, store.FindByExactTitle("war"))
}

func TestStoreFindByTitleSubstring(t *testing.T) {
	store := NewStore(testMovies())

	matches := store.FindByTitleSubstring("WAR")
	require.Len(t, matches, 2)
	assert.Equal(t, 1, matches[0].ID)
	assert.Equal(t, 2, matches[1].ID)
}

func TestStoreFindByID(t *testing.T) {
	store := NewStore(testMovies())

	m, ok := store.FindByID(2)
	require.True(t, ok)
	assert.Equal(t, "War Horse", m.Title)

	_, ok = store.FindByID(42)
	assert.False(t, ok)
}

func TestStoreGenresVocabularyIsLowerCasedAndSorted(t *testing.T) {
	store := NewStore(testMovies())

	// "Horror" and "horror" collapse into one entry.
	assert.Equal(t, []string{"action", "drama", "horror", "war"}, store.Genres())
}

func TestStoreLenAndAll(t *testing.T) {
	store := NewStore(testMovies())

	assert.Equal(t, 3, store.Len())
	assert.Len(t, store.All(), 3)
}
