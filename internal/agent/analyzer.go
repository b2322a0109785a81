package agent

import (
	"encoding/json"
	"fmt"
	"log"
	"regexp"
	"strings"

	"cine-agent/internal/catalog"
)

const (
	maxRecommendations = 5
	overviewLimit      = 400
	keywordLimit       = 10
)

// fencedJSONRe pulls the body out of a ```json fenced block.
var fencedJSONRe = regexp.MustCompile("(?s)```json\\s*(.*?)\\s*```")

const analyzerFormatError = "The AI analyst returned a response that was not in a valid or expected format."

// candidateView is the trimmed projection of a movie sent to the completion
// service. Overviews and keyword lists are capped so a 20-candidate prompt
// stays well inside the context window.
type candidateView struct {
	Title       string  `json:"title"`
	Overview    string  `json:"overview"`
	Genres      string  `json:"genres"`
	Keywords    string  `json:"keywords"`
	VoteAverage float64 `json:"vote_average"`
}

// AnalyzeCandidates asks the completion service to pick and pitch the top 5
// candidates. The response is repaired defensively: fenced code blocks are
// stripped, a bare JSON array is wrapped as a recommendations object, and
// anything else becomes a generic error result. It never returns an error to
// the pipeline.
func AnalyzeCandidates(client CompletionClient, state *State) *Analysis {
	if len(state.Candidates) == 0 {
		message := "I couldn't find any relevant movies to analyze."
		if state.RequestType == RequestTypeTitle {
			message = fmt.Sprintf("I found the movie '%s', but I couldn't find any similar movies to recommend.", state.ExtractedTitle)
		}
		return &Analysis{Error: message}
	}

	prompt := buildAnalysisPrompt(state.Question, state.Candidates)

	response, err := client.Complete(prompt)
	if err != nil {
		log.Printf("[Analyzer] Completion call failed: %v", err)
		return &Analysis{Error: analyzerFormatError}
	}

	analysis := parseAnalysisResponse(response)
	if analysis.Error == "" && len(analysis.Recommendations) > maxRecommendations {
		analysis.Recommendations = analysis.Recommendations[:maxRecommendations]
	}
	return analysis
}

func buildAnalysisPrompt(question string, candidates []catalog.Movie) string {
	views := make([]candidateView, 0, len(candidates))
	for _, c := range candidates {
		overview := c.Overview
		if len(overview) > overviewLimit {
			overview = overview[:overviewLimit]
		}
		keywords := c.KeywordList
		if len(keywords) > keywordLimit {
			keywords = keywords[:keywordLimit]
		}
		views = append(views, candidateView{
			Title:       c.Title,
			Overview:    overview + "...",
			Genres:      strings.Join(c.GenresList, ", "),
			Keywords:    strings.Join(keywords, ", "),
			VoteAverage: c.VoteAverage,
		})
	}

	candidateJSON, _ := json.MarshalIndent(views, "", "  ")

	return fmt.Sprintf(`You are a charismatic and expert movie recommender. Your goal is to get the user excited about new movies based on their request.

**User's Original Request:** "%s"
**Candidate Movie Data:**
%s

**Instructions:**
1. Analyze the candidates and select the top 5 best matches.
2. For "justification", write a short, exciting pitch. Sell the movie!
3. You MUST respond with ONLY a single, valid JSON object with a key "recommendations".
4. Each item in the array MUST include "title", "justification", AND "vote_average".

**EXAMPLE FORMAT:**
`+"```json"+`
{
  "recommendations": [
    { "title": "Example Movie 1", "vote_average": 8.8, "justification": "If you loved the first movie, get ready for a wild ride!" }
  ]
}
`+"```"+`
Your JSON Output:
`, question, candidateJSON)
}

// parseAnalysisResponse normalizes the completion output. Accepted shapes:
// a fenced or bare JSON object with a "recommendations" key, or a raw JSON
// array of recommendations.
func parseAnalysisResponse(response string) *Analysis {
	payload := strings.TrimSpace(response)
	if m := fencedJSONRe.FindStringSubmatch(response); m != nil {
		payload = strings.TrimSpace(m[1])
	}

	trimmed := strings.TrimSpace(payload)
	if strings.HasPrefix(trimmed, "[") {
		var recs []Recommendation
		if err := json.Unmarshal([]byte(trimmed), &recs); err != nil {
			log.Printf("[Analyzer] Response failed validation: %v", err)
			log.Printf("[Analyzer] Raw response snippet: %.500s", response)
			return &Analysis{Error: analyzerFormatError}
		}
		log.Printf("[Analyzer] Model returned a raw array, wrapping it")
		return &Analysis{Recommendations: recs}
	}

	var obj map[string]json.RawMessage
	if err := json.Unmarshal([]byte(trimmed), &obj); err != nil {
		log.Printf("[Analyzer] Response failed validation: %v", err)
		log.Printf("[Analyzer] Raw response snippet: %.500s", response)
		return &Analysis{Error: analyzerFormatError}
	}

	raw, ok := obj["recommendations"]
	if !ok {
		log.Printf("[Analyzer] Response JSON has no recommendations key")
		log.Printf("[Analyzer] Raw response snippet: %.500s", response)
		return &Analysis{Error: analyzerFormatError}
	}

	var recs []Recommendation
	if err := json.Unmarshal(raw, &recs); err != nil {
		log.Printf("[Analyzer] Recommendations array failed validation: %v", err)
		return &Analysis{Error: analyzerFormatError}
	}

	return &Analysis{Recommendations: recs}
}
