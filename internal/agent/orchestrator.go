package agent

import (
	"context"
	"log"

	"cine-agent/internal/catalog"

	"github.com/google/uuid"
)

// Orchestrator wires the pipeline stages into one sequential flow per
// request: extract intent, verify/route, run exactly one retriever, analyze,
// present. The catalog store and the completion client are the only shared
// resources; both are read-only from the pipeline's point of view.
type Orchestrator struct {
	store  *catalog.Store
	client CompletionClient
}

func NewOrchestrator(store *catalog.Store, client CompletionClient) *Orchestrator {
	return &Orchestrator{
		store:  store,
		client: client,
	}
}

// Run processes one question end to end and returns the final state. It
// never returns an error: every failure mode is absorbed into the
// recommendation text.
func (o *Orchestrator) Run(ctx context.Context, question string) *State {
	state := &State{
		RequestID: uuid.New().String(),
		Question:  question,
	}

	log.Printf("[Agent %s] Question: %s", state.RequestID, question)

	// Step 1: extract intent (one completion call, degrades to empty intent).
	intent := ExtractIntent(o.client, question, o.store.Genres())
	state.ExtractedTitle = intent.Title
	state.ExtractedGenres = intent.Genres
	state.ExtractedKeywords = intent.Keywords

	// Step 2: verify the title and pick the retrieval branch.
	VerifyTitle(o.store, state)

	// Step 3: exactly one retriever runs.
	switch state.RequestType {
	case RequestTypeTitle:
		state.Candidates = SearchBySimilarTitle(o.store, *state.ValidatedTitleID)
	default:
		state.Candidates = SearchByCategory(o.store, state.ExtractedGenres, state.ExtractedKeywords)
	}

	// Step 4: analyze (one completion call, degrades to an error result).
	state.Analysis = AnalyzeCandidates(o.client, state)

	// Step 5: present.
	state.Recommendation = FormatRecommendation(state.Analysis)

	log.Printf("[Agent %s] Pipeline complete: type=%s candidates=%d", state.RequestID, state.RequestType, len(state.Candidates))
	return state
}

// Recommend is the plain-text entry point: one question in, one
// recommendation (or formatted error) out.
func (o *Orchestrator) Recommend(ctx context.Context, question string) string {
	return o.Run(ctx, question).Recommendation
}
