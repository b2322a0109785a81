package agent

import (
	"testing"

	"cine-agent/internal/catalog"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixtureStore() *catalog.Store {
	movies := []catalog.Movie{
		{
			ID: 1, Title: "World War Z",
			Genres: "Action, Horror", GenresList: []string{"Action", "Horror"},
			Keywords: "zombie, pandemic", KeywordList: []string{"zombie", "pandemic"},
			VoteAverage: 7.0, VoteCount: 5000, Popularity: 80,
		},
		{
			ID: 2, Title: "Zombieland",
			Genres: "Action, Comedy", GenresList: []string{"Action", "Comedy"},
			Keywords: "zombie, road trip", KeywordList: []string{"zombie", "road trip"},
			VoteAverage: 7.2, VoteCount: 9000, Popularity: 60,
		},
		{
			ID: 3, Title: "The Notebook",
			Genres: "Romance", GenresList: []string{"Romance"},
			Keywords: "love letter", KeywordList: []string{"love letter"},
			VoteAverage: 7.8, VoteCount: 11000, Popularity: 45,
		},
		{
			ID: 4, Title: "Pride and Prejudice",
			Genres: "Romance, Drama", GenresList: []string{"Romance", "Drama"},
			Keywords: "period drama, love", KeywordList: []string{"period drama", "love"},
			VoteAverage: 8.0, VoteCount: 7000, Popularity: 50,
		},
		{
			ID: 5, Title: "World War Z: Aftermath",
			Genres: "Action", GenresList: []string{"Action"},
			Keywords: "zombie", KeywordList: []string{"zombie"},
			VoteAverage: 6.0, VoteCount: 300, Popularity: 20,
		},
	}
	return catalog.NewStore(movies)
}

func TestVerifyTitleNoTitleRoutesToCategory(t *testing.T) {
	state := &State{Question: "something romantic"}

	VerifyTitle(fixtureStore(), state)

	assert.Equal(t, RequestTypeCategory, state.RequestType)
	assert.Nil(t, state.ValidatedTitleID)
}

func TestVerifyTitleExactMatchCaseInsensitive(t *testing.T) {
	state := &State{ExtractedTitle: "world war z"}

	VerifyTitle(fixtureStore(), state)

	assert.Equal(t, RequestTypeTitle, state.RequestType)
	require.NotNil(t, state.ValidatedTitleID)
	assert.Equal(t, 1, *state.ValidatedTitleID)
	// Canonical catalog spelling replaces the extracted one.
	assert.Equal(t, "World War Z", state.ExtractedTitle)
}

func TestVerifyTitleSubstringFallbackPicksMostVoted(t *testing.T) {
	// No exact match for "war z"; both World War Z titles contain it and the
	// 5000-vote original must win over the 300-vote sequel.
	state := &State{ExtractedTitle: "war z"}

	VerifyTitle(fixtureStore(), state)

	assert.Equal(t, RequestTypeTitle, state.RequestType)
	require.NotNil(t, state.ValidatedTitleID)
	assert.Equal(t, 1, *state.ValidatedTitleID)
	assert.Equal(t, "World War Z", state.ExtractedTitle)
}

func TestVerifyTitleNotFoundFallsBackToCategory(t *testing.T) {
	state := &State{
		ExtractedTitle:    "A Movie That Does Not Exist",
		ExtractedGenres:   []string{"romance"},
		ExtractedKeywords: []string{"love"},
	}

	VerifyTitle(fixtureStore(), state)

	assert.Equal(t, RequestTypeCategory, state.RequestType)
	assert.Nil(t, state.ValidatedTitleID)
	// Extracted genres/keywords still flow through to the category search.
	assert.Equal(t, []string{"romance"}, state.ExtractedGenres)
	assert.Equal(t, []string{"love"}, state.ExtractedKeywords)
}

func TestVerifyTitleVoteCountTieKeepsCatalogOrder(t *testing.T) {
	movies := []catalog.Movie{
		{ID: 10, Title: "Dune", VoteAverage: 7.0, VoteCount: 100},
		{ID: 11, Title: "Dune", VoteAverage: 8.0, VoteCount: 100},
	}
	state := &State{ExtractedTitle: "Dune"}

	VerifyTitle(catalog.NewStore(movies), state)

	require.NotNil(t, state.ValidatedTitleID)
	assert.Equal(t, 10, *state.ValidatedTitleID)
}
