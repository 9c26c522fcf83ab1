package question

import (
	"regexp"
	"strings"
)

const (
	// minQuestionLen drops fragments the generator sometimes emits.
	minQuestionLen = 10

	// duplicateThreshold is the Jaccard word-set similarity above which
	// two questions count as near-identical.
	duplicateThreshold = 0.70
)

var (
	questionMarker = regexp.MustCompile(`(?i)Question\s+\d+:`)
	numberMarker   = regexp.MustCompile(`(?m)^\s*\d+\.\s*`)

	interrogativeStarts = []string{
		"what", "how", "why", "describe", "tell me", "can you", "explain",
		"discuss", "imagine", "provide",
	}
)

// Extract parses question strings out of raw generator output. It tries the
// "Question N:" format first, then a plain numbered list, then falls back to
// scanning for question-like lines.
func Extract(raw string) []string {
	if qs := splitAfter(questionMarker, raw); len(qs) > 0 {
		return qs
	}
	if qs := splitAfter(numberMarker, raw); len(qs) > 0 {
		return qs
	}
	return scanLines(raw)
}

// Dedupe suppresses near-identical questions, keeping the first occurrence.
// Two questions sharing more than 70% of their word sets are duplicates.
func Dedupe(questions []string) []string {
	var kept []string
	var keptSets []map[string]struct{}

	for _, q := range questions {
		set := wordSet(q)
		duplicate := false
		for _, seen := range keptSets {
			if jaccard(set, seen) > duplicateThreshold {
				duplicate = true
				break
			}
		}
		if !duplicate {
			kept = append(kept, q)
			keptSets = append(keptSets, set)
		}
	}
	return kept
}

// splitAfter cuts raw into the segments following each marker occurrence.
func splitAfter(marker *regexp.Regexp, raw string) []string {
	locs := marker.FindAllStringIndex(raw, -1)
	if len(locs) == 0 {
		return nil
	}

	var out []string
	for i, loc := range locs {
		end := len(raw)
		if i+1 < len(locs) {
			end = locs[i+1][0]
		}
		q := strings.TrimSpace(raw[loc[1]:end])
		if len(q) >= minQuestionLen {
			out = append(out, q)
		}
	}
	return out
}

// scanLines keeps lines that look like questions: at least 20 characters and
// either ending in a question mark or starting with an interrogative word.
func scanLines(raw string) []string {
	var out []string
	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		if len(line) < 20 {
			continue
		}
		if strings.HasSuffix(line, "?") || startsWithAny(strings.ToLower(line), interrogativeStarts) {
			out = append(out, line)
		}
	}
	return out
}

func startsWithAny(s string, prefixes []string) bool {
	for _, p := range prefixes {
		if strings.HasPrefix(s, p) {
			return true
		}
	}
	return false
}

func wordSet(s string) map[string]struct{} {
	set := make(map[string]struct{})
	for _, w := range strings.Fields(strings.ToLower(s)) {
		set[w] = struct{}{}
	}
	return set
}

func jaccard(a, b map[string]struct{}) float64 {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}
	intersection := 0
	for w := range a {
		if _, ok := b[w]; ok {
			intersection++
		}
	}
	union := len(a) + len(b) - intersection
	return float64(intersection) / float64(union)
}
