package catalog

import (
	"encoding/csv"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"
)

// LoadFromCSV reads a TMDB-style movie export and builds the catalog store.
// Rows without a title or a parseable vote_average are skipped, so the store
// invariant holds regardless of how messy the export is. Other numeric
// fields default to zero when malformed.
func LoadFromCSV(path string) (*Store, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open catalog csv: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1 // the TMDB export has ragged rows

	header, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("read catalog header: %w", err)
	}

	col := make(map[string]int, len(header))
	for i, name := range header {
		col[strings.ToLower(strings.TrimSpace(name))] = i
	}
	for _, required := range []string{"id", "title", "vote_average"} {
		if _, ok := col[required]; !ok {
			return nil, fmt.Errorf("catalog csv missing column %q", required)
		}
	}

	field := func(row []string, name string) string {
		i, ok := col[name]
		if !ok || i >= len(row) {
			return ""
		}
		return row[i]
	}

	var movies []Movie
	skipped := 0
	for {
		row, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			// Tolerate individual bad rows, the dataset is third-party.
			skipped++
			continue
		}

		title := strings.TrimSpace(field(row, "title"))
		voteAvg, avgErr := strconv.ParseFloat(strings.TrimSpace(field(row, "vote_average")), 64)
		if title == "" || avgErr != nil {
			skipped++
			continue
		}

		id, _ := strconv.Atoi(strings.TrimSpace(field(row, "id")))
		voteCount, _ := strconv.Atoi(strings.TrimSpace(field(row, "vote_count")))
		popularity, _ := strconv.ParseFloat(strings.TrimSpace(field(row, "popularity")), 64)

		genres := field(row, "genres")
		keywords := field(row, "keywords")

		movies = append(movies, Movie{
			ID:          id,
			Title:       title,
			Overview:    field(row, "overview"),
			Genres:      genres,
			Keywords:    keywords,
			GenresList:  SplitAndTrim(genres),
			KeywordList: SplitAndTrim(keywords),
			VoteAverage: voteAvg,
			VoteCount:   voteCount,
			Popularity:  popularity,
		})
	}

	if skipped > 0 {
		log.Printf("[Catalog] Skipped %d rows missing title or vote_average", skipped)
	}
	log.Printf("[Catalog] Loaded %d movies from %s", len(movies), path)

	return NewStore(movies), nil
}
