package catalog

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"time"

	_ "github.com/lib/pq" // PostgreSQL driver
)

// LoadFromPostgres builds the catalog store from a movies table instead of
// the CSV export. The same required-field filter applies: rows with a NULL
// title or vote_average never reach the store.
func LoadFromPostgres(ctx context.Context, dataSourceName string) (*Store, error) {
	db, err := sql.Open("postgres", dataSourceName)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Println("Error closing the database connection:", err)
		}
	}()

	// Connection pool tuning; the load is a single scan but keep the
	// settings consistent with how we open Postgres elsewhere.
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(10)
	db.SetConnMaxLifetime(5 * time.Minute)

	if err := db.PingContext(ctx); err != nil {
		return nil, err
	}

	query := `SELECT id, title, COALESCE(overview, ''), COALESCE(genres, ''), COALESCE(keywords, ''),
	                 vote_average, COALESCE(vote_count, 0), COALESCE(popularity, 0)
	          FROM movies
	          WHERE title IS NOT NULL AND title <> '' AND vote_average IS NOT NULL
	          ORDER BY id`

	rows, err := db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query movies: %w", err)
	}
	defer rows.Close()

	var movies []Movie
	for rows.Next() {
		var m Movie
		if err := rows.Scan(&m.ID, &m.Title, &m.Overview, &m.Genres, &m.Keywords,
			&m.VoteAverage, &m.VoteCount, &m.Popularity); err != nil {
			return nil, err
		}
		m.GenresList = SplitAndTrim(m.Genres)
		m.KeywordList = SplitAndTrim(m.Keywords)
		movies = append(movies, m)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	log.Printf("[Catalog] Loaded %d movies from Postgres", len(movies))

	return NewStore(movies), nil
}
