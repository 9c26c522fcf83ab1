package model

// EvaluationStats summarizes the evaluator's in-memory history.
type EvaluationStats struct {
	Count        int                  `json:"count"`
	AverageScore float64              `json:"average_score"`
	MinScore     int                  `json:"min_score"`
	MaxScore     int                  `json:"max_score"`
	ByCategory   map[Category]float64 `json:"by_question_type"`
}
