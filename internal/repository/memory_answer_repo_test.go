package repository

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"interviewai/internal/model"
)

func TestMemoryAnswerRepoRoundTrip(t *testing.T) {
	repo := NewMemoryAnswerRepo()
	ctx := context.Background()

	rec := &model.AnswerRecord{
		SessionID:     "s1",
		QuestionIndex: 0,
		Question:      "What is a goroutine?",
		Answer:        "A lightweight thread.",
		Score:         7,
		Category:      model.CategoryTechnical,
	}
	require.NoError(t, repo.Save(ctx, rec))
	require.NotEmpty(t, rec.ID)

	got, err := repo.ListBySession(ctx, "s1")
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.Equal(t, 7, got[0].Score)

	// Mutating a returned copy must not touch stored state.
	got[0].Score = 0
	again, err := repo.ListBySession(ctx, "s1")
	require.NoError(t, err)
	require.Equal(t, 7, again[0].Score)

	empty, err := repo.ListBySession(ctx, "other")
	require.NoError(t, err)
	require.Empty(t, empty)
}

func TestMemoryAnswerRepoConcurrentUse(t *testing.T) {
	repo := NewMemoryAnswerRepo()
	ctx := context.Background()

	const (
		sessions = 4
		writes   = 25
	)

	var wg sync.WaitGroup
	for s := 0; s < sessions; s++ {
		sessionID := fmt.Sprintf("session-%d", s)
		for i := 0; i < writes; i++ {
			wg.Add(2)
			go func(i int) {
				defer wg.Done()
				rec := &model.AnswerRecord{SessionID: sessionID, QuestionIndex: i, Score: 5}
				if err := repo.Save(ctx, rec); err != nil {
					t.Error(err)
				}
			}(i)
			go func() {
				defer wg.Done()
				if _, err := repo.ListBySession(ctx, sessionID); err != nil {
					t.Error(err)
				}
			}()
		}
	}
	wg.Wait()

	for s := 0; s < sessions; s++ {
		got, err := repo.ListBySession(ctx, fmt.Sprintf("session-%d", s))
		require.NoError(t, err)
		require.Len(t, got, writes)

		seen := make(map[string]struct{}, len(got))
		for _, rec := range got {
			require.NotEmpty(t, rec.ID)
			seen[rec.ID] = struct{}{}
		}
		require.Len(t, seen, writes)
	}
}
