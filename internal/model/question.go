package model

// Category classifies an interview question and selects the scoring rubric.
type Category string

const (
	CategoryTechnical   Category = "technical"
	CategoryBehavioral  Category = "behavioral"
	CategorySituational Category = "situational"
	CategoryBackground  Category = "background"
	CategoryMotivation  Category = "motivation"
	CategoryGeneral     Category = "general"
)

// QuestionResponse is returned by GET /get-question.
type QuestionResponse struct {
	Question      string   `json:"question"`
	Remaining     int      `json:"remaining"`
	QuestionIndex int      `json:"question_index"`
	QuestionType  Category `json:"question_type,omitempty"`
}

// NoQuestionsSentinel is the question text returned once the interview
// has no further questions to serve.
const NoQuestionsSentinel = "No questions available. Please generate questions first."
