package api

import (
	"encoding/json"
	"net/http"

	"cine-agent/internal/agent"
	"cine-agent/internal/catalog"
	"cine-agent/internal/llm"
)

type API struct {
	store        *catalog.Store
	llmService   *llm.Service
	orchestrator *agent.Orchestrator
}

func NewAPI(store *catalog.Store, llmService *llm.Service) *API {
	orchestrator := agent.NewOrchestrator(store, agent.NewLLMAdapter(llmService))

	return &API{
		store:        store,
		llmService:   llmService,
		orchestrator: orchestrator,
	}
}

// CatalogStatsHandler reports catalog size and vocabulary
// @Summary Catalog statistics
// @Description Returns the number of movies loaded and the size of the genre vocabulary
// @Tags catalog
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /catalog/stats [get]
func (a *API) CatalogStatsHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	response := map[string]interface{}{
		"movies": a.store.Len(),
		"genres": len(a.store.Genres()),
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

// CatalogGenresHandler lists the genre vocabulary
// @Summary Genre vocabulary
// @Description Returns the sorted, lower-cased list of every genre in the catalog
// @Tags catalog
// @Produce json
// @Success 200 {array} string
// @Router /catalog/genres [get]
func (a *API) CatalogGenresHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(a.store.Genres())
}
