package agent

import (
	"log"
	"sort"
	"strings"

	"cine-agent/internal/catalog"
)

const (
	genreWeight   = 1.0
	keywordWeight = 1.5

	maxSimilarCandidates = 15
)

// SearchBySimilarTitle ranks the catalog against a verified source movie by
// shared genres and keywords, keyword overlap weighted higher. It never
// fails: an unknown id or a source with no genre/keyword signal yields an
// empty candidate list.
func SearchBySimilarTitle(store *catalog.Store, movieID int) []catalog.Movie {
	source, ok := store.FindByID(movieID)
	if !ok {
		log.Printf("[TitleSearch] Source movie %d not found in catalog", movieID)
		return nil
	}

	sourceGenres := toLowerSet(source.GenresList)
	sourceKeywords := toLowerSet(source.KeywordList)
	if len(sourceGenres) == 0 && len(sourceKeywords) == 0 {
		log.Printf("[TitleSearch] %q has no genres or keywords to rank on", source.Title)
		return nil
	}

	type scored struct {
		movie      catalog.Movie
		similarity float64
	}

	var ranked []scored
	for _, m := range store.All() {
		if m.ID == source.ID {
			continue
		}
		similarity := genreWeight*overlap(sourceGenres, m.GenresList) +
			keywordWeight*overlap(sourceKeywords, m.KeywordList)
		if similarity > 0 {
			ranked = append(ranked, scored{movie: m, similarity: similarity})
		}
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].similarity != ranked[j].similarity {
			return ranked[i].similarity > ranked[j].similarity
		}
		return ranked[i].movie.VoteAverage > ranked[j].movie.VoteAverage
	})

	if len(ranked) > maxSimilarCandidates {
		ranked = ranked[:maxSimilarCandidates]
	}

	candidates := make([]catalog.Movie, 0, len(ranked))
	for _, s := range ranked {
		candidates = append(candidates, s.movie)
	}

	log.Printf("[TitleSearch] Found %d movies similar to %q", len(candidates), source.Title)
	return candidates
}

func toLowerSet(items []string) map[string]struct{} {
	set := make(map[string]struct{}, len(items))
	for _, item := range items {
		set[strings.ToLower(item)] = struct{}{}
	}
	return set
}

// overlap counts how many of the target items appear in the source set,
// case-insensitively.
func overlap(source map[string]struct{}, target []string) float64 {
	seen := make(map[string]struct{}, len(target))
	count := 0
	for _, item := range target {
		lower := strings.ToLower(item)
		if _, dup := seen[lower]; dup {
			continue
		}
		seen[lower] = struct{}{}
		if _, ok := source[lower]; ok {
			count++
		}
	}
	return float64(count)
}
