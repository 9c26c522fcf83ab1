package question

import (
	"strings"

	"interviewai/internal/model"
)

// Keyword sets checked in priority order. A question carrying both
// situational and technical cues classifies as situational because that
// branch is tested first.
var (
	situationalKeywords = []string{"how would you", "what would you do", "imagine"}
	behavioralKeywords  = []string{"tell me about a time", "describe a situation", "give an example", "can you provide"}
	backgroundKeywords  = []string{"experience with", "familiar with", "tell me about your experience", "worked on", "built", "developed"}
	motivationKeywords  = []string{"why", "interested in", "passion", "career goals"}
	technicalKeywords   = []string{"how do you", "explain", "describe the process", "methodology", "approach", "implement", "coding", "programming", "database", "algorithm"}
)

// Classify maps question text to its category. Total and deterministic:
// every input maps to exactly one category, defaulting to general.
func Classify(text string) model.Category {
	lower := strings.ToLower(text)

	switch {
	case containsAny(lower, situationalKeywords):
		return model.CategorySituational
	case containsAny(lower, behavioralKeywords):
		return model.CategoryBehavioral
	case containsAny(lower, backgroundKeywords):
		return model.CategoryBackground
	case containsAny(lower, motivationKeywords):
		return model.CategoryMotivation
	case containsAny(lower, technicalKeywords):
		return model.CategoryTechnical
	default:
		return model.CategoryGeneral
	}
}

func containsAny(s string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(s, kw) {
			return true
		}
	}
	return false
}
