package api

import (
	"encoding/json"
	"log"
	"net/http"
	"time"
)

// RecommendRequest is a natural language movie recommendation request
type RecommendRequest struct {
	Question string `json:"question"`
}

// RecommendResponse carries the rendered recommendation plus pipeline metadata
type RecommendResponse struct {
	Question             string `json:"question"`
	RequestType          string `json:"request_type"`
	MatchedTitle         string `json:"matched_title,omitempty"`
	CandidatesConsidered int    `json:"candidates_considered"`
	Recommendation       string `json:"recommendation"`
	ProcessingTime       string `json:"processing_time"`
}

// RecommendHandler runs the full recommendation pipeline for one question
// @Summary Recommend movies
// @Description Extracts intent from a free-text question, retrieves catalog candidates by title similarity or category, and returns an LLM-ranked recommendation
// @Tags recommend
// @Accept json
// @Produce json
// @Param request body RecommendRequest true "Natural language question"
// @Success 200 {object} RecommendResponse
// @Failure 400 {object} map[string]string
// @Router /recommend [post]
func (a *API) RecommendHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req RecommendRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if req.Question == "" {
		http.Error(w, "question cannot be empty", http.StatusBadRequest)
		return
	}

	startTime := time.Now()

	state := a.orchestrator.Run(r.Context(), req.Question)

	processingTime := time.Since(startTime)
	log.Printf("[Recommend API] Pipeline finished in %v (type=%s, %d candidates)",
		processingTime, state.RequestType, len(state.Candidates))

	matchedTitle := ""
	if state.RequestType == "TITLE" {
		matchedTitle = state.ExtractedTitle
	}

	response := RecommendResponse{
		Question:             req.Question,
		RequestType:          string(state.RequestType),
		MatchedTitle:         matchedTitle,
		CandidatesConsidered: len(state.Candidates),
		Recommendation:       state.Recommendation,
		ProcessingTime:       processingTime.String(),
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}
