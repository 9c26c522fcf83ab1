package cache

import (
	"context"
	"crypto/md5"
	"encoding/hex"
	"strings"
	"time"

	"interviewai/internal/model"
)

// Entry is a persisted evaluation for one (question, answer) pair. Entries
// are content-addressed and never mutated.
type Entry struct {
	Score        int            `json:"score"`
	Category     model.Category `json:"question_type"`
	CreatedAt    time.Time      `json:"timestamp"`
	ProcessingMS int64          `json:"processing_ms"`
}

// ScoreCache maps normalized (question, answer) pairs to prior evaluations.
// Readers treat absent or malformed entries as misses; writers may race,
// overwrites are idempotent since content is deterministic per key.
type ScoreCache interface {
	Get(ctx context.Context, question, answer string) (*Entry, bool)
	Put(ctx context.Context, question, answer string, entry *Entry) error
}

// Key returns the content-addressed digest for a pair. Identical pairs
// (case/whitespace-insensitive) always resolve to the same key.
func Key(question, answer string) string {
	content := strings.ToLower(strings.TrimSpace(question)) + "|" + strings.ToLower(strings.TrimSpace(answer))
	sum := md5.Sum([]byte(content))
	return hex.EncodeToString(sum[:])
}
