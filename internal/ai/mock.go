package ai

import (
	"context"
	"strings"
)

// MockGenerator is a deterministic TextGenerator used when no API key is
// configured and in tests. It keys off prompt markers emitted by the
// services so the full interview flow works offline.
type MockGenerator struct{}

const mockQuestions = `Question 1: Can you walk me through a specific project you worked on in your most recent role?
Question 2: How do you approach debugging a complex production issue?
Question 3: Tell me about a time you had to deliver under a tight deadline.
Question 4: How would you handle a disagreement with a teammate about a technical design?
Question 5: Explain the methodology you follow when designing a database schema.
Question 6: Why are you interested in this role?
Question 7: Describe a situation where you had to learn a new technology quickly.
Question 8: What are your career goals for the next five years?
Question 9: Can you give an example of a feature you built end to end?
Question 10: How do you keep your technical skills current?`

func (MockGenerator) GenerateContent(_ context.Context, prompt string) (string, error) {
	switch {
	case strings.Contains(prompt, "Extract a comprehensive list of skills"):
		return "Python\nSQL\nCommunication", nil
	case strings.Contains(prompt, "Extract professional experience"):
		return "3 years as a software developer at Example Corp", nil
	case strings.Contains(prompt, "Extract education qualifications"):
		return "BSc in Computer Science", nil
	case strings.Contains(prompt, "Extract certifications"):
		return "AWS Certified Developer", nil
	case strings.Contains(prompt, "numerical rating"):
		return "5", nil
	case strings.Contains(prompt, "Format each question"):
		return mockQuestions, nil
	default:
		return "Structured analysis of the provided input.", nil
	}
}
