package model

import "time"

type SessionStatus string

const (
	SessionActive   SessionStatus = "active"
	SessionComplete SessionStatus = "complete"
)

// RecordedAnswer is one scored question/answer exchange within a session.
type RecordedAnswer struct {
	Question    string    `json:"question"`
	Answer      string    `json:"answer"`
	Score       int       `json:"evaluation"`
	Category    Category  `json:"question_type"`
	EvaluatedAt time.Time `json:"evaluated_at"`
}

// Session is one candidate's interview run, identified by an opaque token.
// Questions are immutable after creation; Index advances one step per
// accepted submission and len(Answers) always equals Index.
type Session struct {
	ID        string           `json:"id"`
	Role      string           `json:"role"`
	Profile   ResumeProfile    `json:"profile"`
	Questions []string         `json:"questions"`
	Index     int              `json:"index"`
	Answers   []RecordedAnswer `json:"answers"`
	Status    SessionStatus    `json:"status"`
	CreatedAt time.Time        `json:"created_at"`
	UpdatedAt time.Time        `json:"updated_at"`
}

// Complete reports whether every question has been answered.
func (s *Session) Complete() bool {
	return s.Index >= len(s.Questions)
}

// Remaining returns the number of questions left after the current one.
func (s *Session) Remaining() int {
	if s.Complete() {
		return 0
	}
	return len(s.Questions) - s.Index - 1
}

// SessionSummary is the admin view of a session.
type SessionSummary struct {
	ID            string        `json:"id"`
	Role          string        `json:"role"`
	Status        SessionStatus `json:"status"`
	QuestionCount int           `json:"question_count"`
	Answered      int           `json:"answered"`
	CreatedAt     time.Time     `json:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at"`
}
