package api

import (
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"
)

func NewRouter(a *API) http.Handler {
	mux := http.NewServeMux()

	// Swagger documentation - must be registered first
	mux.Handle("/swagger/", httpSwagger.Handler(
		httpSwagger.URL("http://localhost:8080/swagger/doc.json"),
	))

	// Health check (for Railway, k8s, etc.)
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"healthy"}`))
	})

	// Recommendation pipeline
	mux.HandleFunc("/api/recommend", a.RecommendHandler)

	// Catalog endpoints
	mux.HandleFunc("/api/catalog/stats", a.CatalogStatsHandler)
	mux.HandleFunc("/api/catalog/genres", a.CatalogGenresHandler)

	return mux
}
