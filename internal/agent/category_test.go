package agent

import (
	"fmt"
	"testing"

	"cine-agent/internal/catalog"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearchByCategoryEmptyCriteria(t *testing.T) {
	assert.Empty(t, SearchByCategory(fixtureStore(), nil, nil))
}

func TestSearchByCategoryGenreMatchIsCaseInsensitive(t *testing.T) {
	candidates := SearchByCategory(fixtureStore(), []string{"ROMANCE"}, nil)

	require.Len(t, candidates, 2)
	// Sorted by vote_average descending: Pride and Prejudice (8.0) first.
	assert.Equal(t, "Pride and Prejudice", candidates[0].Title)
	assert.Equal(t, "The Notebook", candidates[1].Title)
}

func TestSearchByCategoryKeywordIsSubstringOnRawText(t *testing.T) {
	// "road" is not a parsed keyword entry, but it is a substring of the raw
	// "zombie, road trip" keywords text.
	candidates := SearchByCategory(fixtureStore(), nil, []string{"road"})

	require.Len(t, candidates, 1)
	assert.Equal(t, "Zombieland", candidates[0].Title)
}

func TestSearchByCategoryUnionsGenreAndKeywordMatches(t *testing.T) {
	candidates := SearchByCategory(fixtureStore(), []string{"romance"}, []string{"zombie"})

	titles := make([]string, 0, len(candidates))
	for _, c := range candidates {
		titles = append(titles, c.Title)
	}
	assert.ElementsMatch(t, []string{
		"Pride and Prejudice", "The Notebook",
		"World War Z", "Zombieland", "World War Z: Aftermath",
	}, titles)
}

func TestSearchByCategorySortsByVoteAverageThenPopularity(t *testing.T) {
	movies := []catalog.Movie{
		{ID: 1, Title: "A", GenresList: []string{"Action"}, VoteAverage: 7.0, Popularity: 10},
		{ID: 2, Title: "B", GenresList: []string{"Action"}, VoteAverage: 7.0, Popularity: 90},
		{ID: 3, Title: "C", GenresList: []string{"Action"}, VoteAverage: 8.0, Popularity: 1},
	}

	candidates := SearchByCategory(catalog.NewStore(movies), []string{"action"}, nil)

	require.Len(t, candidates, 3)
	assert.Equal(t, "C", candidates[0].Title)
	assert.Equal(t, "B", candidates[1].Title)
	assert.Equal(t, "A", candidates[2].Title)
}

func TestSearchByCategoryCapsAtTwenty(t *testing.T) {
	var movies []catalog.Movie
	for i := 0; i < 40; i++ {
		movies = append(movies, catalog.Movie{
			ID: i + 1, Title: fmt.Sprintf("Movie %d", i),
			GenresList:  []string{"Action"},
			VoteAverage: float64(i % 10),
		})
	}

	candidates := SearchByCategory(catalog.NewStore(movies), []string{"action"}, nil)

	assert.Len(t, candidates, 20)
}
