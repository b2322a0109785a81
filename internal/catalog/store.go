package catalog

import (
	"sort"
	"strings"
)

// Store is the immutable, in-memory movie catalog. It is built once at
// startup and is read-only afterwards, so concurrent requests can query it
// without locking. Every stored movie has a non-empty title and a vote
// average; the loaders enforce that invariant.
type Store struct {
	movies []Movie
	byID   map[int]int // movie id -> index into movies
	genres []string    // sorted lower-cased genre vocabulary
}

func NewStore(movies []Movie) *Store {
	byID := make(map[int]int, len(movies))
	genreSet := make(map[string]struct{})
	for i, m := range movies {
		byID[m.ID] = i
		for _, g := range m.GenresList {
			genreSet[strings.ToLower(g)] = struct{}{}
		}
	}

	genres := make([]string, 0, len(genreSet))
	for g := range genreSet {
		genres = append(genres, g)
	}
	sort.Strings(genres)

	return &Store{
		movies: movies,
		byID:   byID,
		genres: genres,
	}
}

// Len returns the number of movies in the catalog.
func (s *Store) Len() int {
	return len(s.movies)
}

// Genres returns the sorted, lower-cased vocabulary of every genre in the
// catalog. The intent extraction prompt embeds it so the LLM picks from
// genres that actually exist.
func (s *Store) Genres() []string {
	return s.genres
}

// FindByID returns the movie with the given id, or false if absent.
func (s *Store) FindByID(id int) (Movie, bool) {
	i, ok := s.byID[id]
	if !ok {
		return Movie{}, false
	}
	return s.movies[i], true
}

// FindByExactTitle returns all movies whose title matches case-insensitively.
func (s *Store) FindByExactTitle(title string) []Movie {
	lower := strings.ToLower(title)
	var res []Movie
	for _, m := range s.movies {
		if strings.ToLower(m.Title) == lower {
			res = append(res, m)
		}
	}
	return res
}

// FindByTitleSubstring returns all movies whose title contains the given
// text, case-insensitively.
func (s *Store) FindByTitleSubstring(text string) []Movie {
	lower := strings.ToLower(text)
	var res []Movie
	for _, m := range s.movies {
		if strings.Contains(strings.ToLower(m.Title), lower) {
			res = append(res, m)
		}
	}
	return res
}

// All returns the full catalog in load order for filtering and scoring.
// Callers must not mutate the returned slice.
func (s *Store) All() []Movie {
	return s.movies
}
