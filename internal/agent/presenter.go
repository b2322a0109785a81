package agent

import (
	"fmt"
	"strings"
)

// FormatRecommendation renders the analysis into the final user-facing text.
// A nil analysis should not happen, the analyzer always produces one, but the
// guard keeps the pipeline from ever surfacing a panic to the user.
func FormatRecommendation(analysis *Analysis) string {
	if analysis == nil {
		return "I'm sorry, there was an error processing the analysis results."
	}

	if analysis.Error != "" {
		return fmt.Sprintf("I'm sorry, I ran into an issue: %s", analysis.Error)
	}

	if len(analysis.Recommendations) == 0 {
		return "After analysis, I couldn't find a strong match for your specific criteria."
	}

	var b strings.Builder
	b.WriteString("Based on your request, here are a few hand-picked recommendations I think you'll love:\n\n")
	for i, rec := range analysis.Recommendations {
		title := rec.Title
		if title == "" {
			title = "N/A"
		}
		justification := rec.Justification
		if justification == "" {
			justification = "No justification provided."
		}

		score := "N/A"
		if rec.VoteAverage != 0 {
			score = fmt.Sprintf("%.1f", rec.VoteAverage)
		}

		b.WriteString(fmt.Sprintf("### %d. %s (⭐ %s)\n", i+1, title, score))
		b.WriteString(fmt.Sprintf("**Why it's a perfect match:** %s\n\n---\n\n", justification))
	}

	return b.String()
}
