package catalog

import "strings"

// Movie represents one row of the catalog.
// Note: Keep this minimal for retrieval; the analyzer trims it further before prompting.
type Movie struct {
	ID          int      `json:"id"`
	Title       string   `json:"title"`
	Overview    string   `json:"overview"`
	Genres      string   `json:"genres"`   // raw comma-separated string from the dataset
	Keywords    string   `json:"keywords"` // raw comma-separated string from the dataset
	GenresList  []string `json:"genres_list"`
	KeywordList []string `json:"keywords_list"`
	VoteAverage float64  `json:"vote_average"`
	VoteCount   int      `json:"vote_count"`
	Popularity  float64  `json:"popularity"`
}

// SplitAndTrim parses a comma-separated field into trimmed, non-empty items.
func SplitAndTrim(s string) []string {
	if s == "" {
		return []string{}
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		t := strings.TrimSpace(p)
		if t != "" {
			out = append(out, t)
		}
	}
	return out
}
