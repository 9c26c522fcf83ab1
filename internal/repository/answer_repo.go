package repository

import (
	"context"

	"interviewai/internal/model"
)

// AnswerRepo persists evaluated answer records for post-hoc reporting.
// Write failures are tolerated by callers; the interview flow never blocks
// on persistence.
type AnswerRepo interface {
	Save(ctx context.Context, rec *model.AnswerRecord) error
	ListBySession(ctx context.Context, sessionID string) ([]*model.AnswerRecord, error)
}
