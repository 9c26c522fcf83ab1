package repository

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"interviewai/internal/model"
)

type memoryAnswerRepo struct {
	mu      sync.RWMutex
	records map[string][]*model.AnswerRecord
}

// NewMemoryAnswerRepo is the default repository when no MONGO_URI is set.
func NewMemoryAnswerRepo() AnswerRepo {
	return &memoryAnswerRepo{records: make(map[string][]*model.AnswerRecord)}
}

func (r *memoryAnswerRepo) Save(_ context.Context, rec *model.AnswerRecord) error {
	cp := *rec
	if cp.ID == "" {
		cp.ID = uuid.NewString()
	}
	if cp.EvaluatedAt.IsZero() {
		cp.EvaluatedAt = time.Now()
	}

	r.mu.Lock()
	r.records[cp.SessionID] = append(r.records[cp.SessionID], &cp)
	r.mu.Unlock()

	rec.ID = cp.ID
	return nil
}

func (r *memoryAnswerRepo) ListBySession(_ context.Context, sessionID string) ([]*model.AnswerRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*model.AnswerRecord, 0, len(r.records[sessionID]))
	for _, rec := range r.records[sessionID] {
		cp := *rec
		out = append(out, &cp)
	}
	return out, nil
}
