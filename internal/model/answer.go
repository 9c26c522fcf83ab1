package model

import "time"

// UploadResponse is returned by POST /upload-resume.
type UploadResponse struct {
	SessionID     string `json:"session_id"`
	QuestionCount int    `json:"question_count"`
}

// SubmitResponseRequest is the body of POST /submit-response.
type SubmitResponseRequest struct {
	Response string `json:"response"`
}

// SubmitResponseResponse is returned after an answer has been evaluated.
type SubmitResponseResponse struct {
	Evaluation        int      `json:"evaluation"`
	QuestionIndex     int      `json:"question_index"`
	TotalQuestions    int      `json:"total_questions"`
	QuestionType      Category `json:"question_type"`
	InterviewComplete bool     `json:"interview_complete"`
}

// QuestionScore pairs a question with the score its answer received.
type QuestionScore struct {
	Question string `json:"question"`
	Score    int    `json:"score"`
}

// CategoryFeedback aggregates recorded answers of one category.
type CategoryFeedback struct {
	Count        int             `json:"count"`
	AverageScore float64         `json:"average_score"`
	Questions    []QuestionScore `json:"questions"`
}

// ResultsResponse is returned by GET /get-results.
type ResultsResponse struct {
	Responses         []RecordedAnswer              `json:"responses"`
	TotalQuestions    int                           `json:"total_questions"`
	AnsweredQuestions int                           `json:"answered_questions"`
	AverageScore      float64                       `json:"average_score"`
	FeedbackByType    map[Category]CategoryFeedback `json:"feedback_by_type"`
}

// AnswerRecord is the persisted form of an evaluated answer.
type AnswerRecord struct {
	ID            string    `json:"id" bson:"_id,omitempty"`
	SessionID     string    `json:"session_id" bson:"sessionId"`
	Role          string    `json:"role" bson:"role"`
	QuestionIndex int       `json:"question_index" bson:"questionIndex"`
	Question      string    `json:"question" bson:"question"`
	Answer        string    `json:"answer" bson:"answer"`
	Score         int       `json:"score" bson:"score"`
	Category      Category  `json:"question_type" bson:"category"`
	EvaluatedAt   time.Time `json:"evaluated_at" bson:"evaluatedAt"`
}
