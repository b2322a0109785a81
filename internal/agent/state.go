package agent

import "cine-agent/internal/catalog"

// RequestType selects which retrieval branch the pipeline takes.
type RequestType string

const (
	RequestTypeTitle    RequestType = "TITLE"
	RequestTypeCategory RequestType = "CATEGORY"
)

// State carries one user question through the pipeline. Each stage fills in
// its own fields; nothing here is shared between concurrent requests.
type State struct {
	RequestID string `json:"request_id"`
	Question  string `json:"question"`

	RequestType       RequestType `json:"request_type,omitempty"`
	ExtractedTitle    string      `json:"extracted_title,omitempty"` // empty means no title was extracted
	ExtractedGenres   []string    `json:"extracted_genres,omitempty"`
	ExtractedKeywords []string    `json:"extracted_keywords,omitempty"`
	ValidatedTitleID  *int        `json:"validated_title_id,omitempty"`

	Candidates []catalog.Movie `json:"-"`

	Analysis       *Analysis `json:"analysis,omitempty"`
	Recommendation string    `json:"recommendation,omitempty"`
}

// Analysis is the analyzer's structured result: either an error marker or a
// ranked list of recommendations, never both.
type Analysis struct {
	Error           string           `json:"error,omitempty"`
	Recommendations []Recommendation `json:"recommendations,omitempty"`
}

// Recommendation is one LLM-ranked pick with its pitch.
type Recommendation struct {
	Title         string  `json:"title"`
	VoteAverage   float64 `json:"vote_average"`
	Justification string  `json:"justification"`
}

// Intent is the structured guess extracted from the user's free-text question.
type Intent struct {
	Title    string   `json:"title"` // empty when the question names no movie
	Genres   []string `json:"genres"`
	Keywords []string `json:"keywords"`
}
