package question

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestExtractQuestionMarkers(t *testing.T) {
	raw := "Here are your questions:\n" +
		"Question 1: What draws you to backend engineering?\n" +
		"Question 2: Describe a production incident you resolved.\n" +
		"question 3: How do you review code?"

	got := Extract(raw)
	require.Equal(t, []string{
		"What draws you to backend engineering?",
		"Describe a production incident you resolved.",
		"How do you review code?",
	}, got)
}

func TestExtractNumberedList(t *testing.T) {
	raw := "1. What is your greatest strength as an engineer?\n" +
		"2. How do you prioritize competing deadlines?"

	got := Extract(raw)
	require.Equal(t, []string{
		"What is your greatest strength as an engineer?",
		"How do you prioritize competing deadlines?",
	}, got)
}

func TestExtractLineScanFallback(t *testing.T) {
	raw := "Intro text without structure.\n" +
		"What trade-offs did you weigh in your last design?\n" +
		"Too short?\n" +
		"Describe the hardest bug you have ever chased down.\n" +
		"This declarative sentence is long but not a question."

	got := Extract(raw)
	require.Equal(t, []string{
		"What trade-offs did you weigh in your last design?",
		"Describe the hardest bug you have ever chased down.",
	}, got)
}

func TestExtractDropsShortFragments(t *testing.T) {
	raw := "Question 1: Why us?\nQuestion 2: What interests you about this role?"
	got := Extract(raw)
	require.Equal(t, []string{"What interests you about this role?"}, got)
}

func TestExtractEmpty(t *testing.T) {
	require.Empty(t, Extract(""))
	require.Empty(t, Extract("no questions here at all"))
}

func TestDedupe(t *testing.T) {
	in := []string{
		"How do you design scalable systems for high traffic?",
		"How do you design scalable systems for high traffic today?",
		"Tell me about a mentor who shaped your career.",
	}

	got := Dedupe(in)
	require.Equal(t, []string{
		"How do you design scalable systems for high traffic?",
		"Tell me about a mentor who shaped your career.",
	}, got)
}

func TestDedupeKeepsDistinctQuestions(t *testing.T) {
	in := []string{
		"What databases have you administered?",
		"How do you approach on-call rotations?",
	}
	require.Equal(t, in, Dedupe(in))
}
