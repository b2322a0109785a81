package agent

import (
	"encoding/json"
	"fmt"
	"log"
	"regexp"
	"strings"
)

// jsonSpanRe grabs the first '{' through the last '}' in a completion
// response, tolerating chatter before and after the JSON object.
var jsonSpanRe = regexp.MustCompile(`(?s)\{.*\}`)

// ExtractIntent asks the completion service to pull a movie title, genres and
// keywords out of the question. It never returns an error: a completion
// failure or unparseable response degrades to an empty intent and the
// pipeline falls through to a category search.
func ExtractIntent(client CompletionClient, question string, genreVocabulary []string) Intent {
	empty := Intent{Genres: []string{}, Keywords: []string{}}

	prompt := buildIntentPrompt(question, genreVocabulary)

	response, err := client.Complete(prompt)
	if err != nil {
		log.Printf("[Extractor] Completion call failed: %v", err)
		return empty
	}

	span := jsonSpanRe.FindString(response)
	if span == "" {
		log.Printf("[Extractor] No JSON object found in response")
		return empty
	}

	var parsed struct {
		Title    *string  `json:"title"`
		Genres   []string `json:"genres"`
		Keywords []string `json:"keywords"`
	}
	if err := json.Unmarshal([]byte(span), &parsed); err != nil {
		log.Printf("[Extractor] Failed to decode JSON from response: %v", err)
		return empty
	}

	intent := Intent{Genres: parsed.Genres, Keywords: parsed.Keywords}
	if intent.Genres == nil {
		intent.Genres = []string{}
	}
	if intent.Keywords == nil {
		intent.Keywords = []string{}
	}

	// Models frequently return the string "null" instead of a JSON null.
	if parsed.Title != nil && !strings.EqualFold(*parsed.Title, "null") {
		intent.Title = *parsed.Title
	}

	log.Printf("[Extractor] title=%q genres=%v keywords=%v", intent.Title, intent.Genres, intent.Keywords)
	return intent
}

func buildIntentPrompt(question string, genreVocabulary []string) string {
	return fmt.Sprintf(`You are an expert at analyzing user requests for movie recommendations.
Your task is to parse the user's query to identify a potential movie title, relevant genres, and specific keywords.

**Available GENRES:**
%s

**User's Query:** "%s"

**Instructions:**
1. Identify a specific movie **title** if mentioned. If none, use null.
2. Identify relevant **genres** from the provided list.
3. Identify specific **keywords** or themes from the query (e.g., "time travel", "zombie").
4. Respond with ONLY a single JSON object.

**JSON Output Format:**
{
  "title": "A Movie Title | null",
  "genres": ["Genre1", "Genre2"],
  "keywords": ["keyword1", "keyword2"]
}

Your JSON Output:
`, strings.Join(genreVocabulary, ", "), question)
}
