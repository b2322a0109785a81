package agent

import (
	"log"

	"cine-agent/internal/catalog"
)

// VerifyTitle validates the extracted title against the catalog and decides
// the retrieval route. Purely deterministic; no completion-service calls.
//
// With no extracted title, or no catalog match, the request routes to a
// category search. On a match the state gets the canonical catalog spelling
// of the title so downstream stages never see the user's (or the model's)
// variant.
func VerifyTitle(store *catalog.Store, state *State) {
	if state.ExtractedTitle == "" {
		log.Printf("[Verifier] No potential title found, routing to CATEGORY search")
		state.RequestType = RequestTypeCategory
		state.ValidatedTitleID = nil
		return
	}

	log.Printf("[Verifier] Verifying title: %q", state.ExtractedTitle)

	matches := store.FindByExactTitle(state.ExtractedTitle)
	if len(matches) == 0 {
		matches = store.FindByTitleSubstring(state.ExtractedTitle)
	}

	if len(matches) == 0 {
		log.Printf("[Verifier] Title not found, falling back to CATEGORY search")
		state.RequestType = RequestTypeCategory
		state.ValidatedTitleID = nil
		return
	}

	// Pick the most-voted match; on equal vote counts the earliest catalog
	// row wins, keeping the choice deterministic.
	best := matches[0]
	for _, m := range matches[1:] {
		if m.VoteCount > best.VoteCount {
			best = m
		}
	}

	log.Printf("[Verifier] Title verified as %q (id=%d), routing to TITLE search", best.Title, best.ID)
	id := best.ID
	state.RequestType = RequestTypeTitle
	state.ValidatedTitleID = &id
	state.ExtractedTitle = best.Title
}
