package agent

import (
	"log"
	"sort"
	"strings"

	"cine-agent/internal/catalog"
)

const maxCategoryCandidates = 20

// SearchByCategory filters the catalog by the extracted genres and keywords.
// A movie matches on any genre-list intersection or any keyword substring
// hit. Genre matching is exact set membership over the parsed list; keyword
// matching is a substring scan over the raw keywords text, because keywords
// are free text and often appear inside multi-word entries.
func SearchByCategory(store *catalog.Store, genres, keywords []string) []catalog.Movie {
	if len(genres) == 0 && len(keywords) == 0 {
		log.Printf("[CategorySearch] No genres or keywords extracted, nothing to search")
		return nil
	}

	genreSet := toLowerSet(genres)

	lowerKeywords := make([]string, 0, len(keywords))
	for _, k := range keywords {
		if k != "" {
			lowerKeywords = append(lowerKeywords, strings.ToLower(k))
		}
	}

	var candidates []catalog.Movie
	for _, m := range store.All() {
		if matchesGenres(genreSet, m.GenresList) || matchesKeywords(lowerKeywords, m.Keywords) {
			candidates = append(candidates, m)
		}
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		if candidates[i].VoteAverage != candidates[j].VoteAverage {
			return candidates[i].VoteAverage > candidates[j].VoteAverage
		}
		return candidates[i].Popularity > candidates[j].Popularity
	})

	if len(candidates) > maxCategoryCandidates {
		candidates = candidates[:maxCategoryCandidates]
	}

	log.Printf("[CategorySearch] Found %d candidates for genres=%v keywords=%v", len(candidates), genres, keywords)
	return candidates
}

func matchesGenres(requested map[string]struct{}, movieGenres []string) bool {
	if len(requested) == 0 {
		return false
	}
	for _, g := range movieGenres {
		if _, ok := requested[strings.ToLower(g)]; ok {
			return true
		}
	}
	return false
}

func matchesKeywords(requested []string, rawKeywords string) bool {
	if len(requested) == 0 || rawKeywords == "" {
		return false
	}
	haystack := strings.ToLower(rawKeywords)
	for _, k := range requested {
		if strings.Contains(haystack, k) {
			return true
		}
	}
	return false
}
