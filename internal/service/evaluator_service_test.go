package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"interviewai/internal/ai"
	"interviewai/internal/cache"
	"interviewai/internal/model"
)

// stubGenerator replays canned responses and records every prompt it sees.
type stubGenerator struct {
	responses []string
	errs      []error
	calls     int
	prompts   []string
}

func (g *stubGenerator) GenerateContent(_ context.Context, prompt string) (string, error) {
	i := g.calls
	g.calls++
	g.prompts = append(g.prompts, prompt)

	if i < len(g.errs) && g.errs[i] != nil {
		return "", g.errs[i]
	}
	if i < len(g.responses) {
		return g.responses[i], nil
	}
	return "", errors.New("stub exhausted")
}

func newTestEvaluator(t *testing.T, gen ai.TextGenerator) *EvaluatorService {
	t.Helper()
	disk, err := cache.NewDiskCache(t.TempDir(), 0, zap.NewNop())
	require.NoError(t, err)

	svc := NewEvaluatorService(gen, disk, zap.NewNop())
	svc.policy = ai.Policy{MaxAttempts: 3, Backoff: time.Millisecond}
	return svc
}

func TestExtractScore(t *testing.T) {
	tests := []struct {
		raw  string
		want int
	}{
		{"8", 8},
		{"The rating is 10", 10},
		{"0", 0},
		{"An excellent answer overall", 9},
		{"solid effort", 7},
		{"fair attempt", 5},
		{"weak response", 3},
		{"terrible", 1},
		{"unintelligible gibberish", 5},
		{"", 5},
		{"scored 42 out of 100", 5},
	}

	for _, tt := range tests {
		require.Equal(t, tt.want, ExtractScore(tt.raw), "raw=%q", tt.raw)
	}
}

func TestScoreHappyPath(t *testing.T) {
	gen := &stubGenerator{responses: []string{"8"}}
	svc := newTestEvaluator(t, gen)

	score, category := svc.Score(context.Background(), "Explain how indexes speed up queries.", "They avoid full scans.", "backend engineer", nil)
	require.Equal(t, 8, score)
	require.Equal(t, model.CategoryTechnical, category)
	require.Equal(t, 1, gen.calls)

	stats := svc.Stats()
	require.Equal(t, 1, stats.Count)
	require.Equal(t, 8.0, stats.AverageScore)
	require.Equal(t, 8.0, stats.ByCategory[model.CategoryTechnical])
}

func TestScoreRetriesTransientFailures(t *testing.T) {
	gen := &stubGenerator{
		errs:      []error{errors.New("boom"), errors.New("boom"), nil},
		responses: []string{"", "", "7"},
	}
	svc := newTestEvaluator(t, gen)

	score, _ := svc.Score(context.Background(), "Explain caching.", "It stores results.", "", nil)
	require.Equal(t, 7, score)
	require.Equal(t, 3, gen.calls)
}

func TestScoreFailsSoftAfterExhaustedRetries(t *testing.T) {
	gen := &stubGenerator{
		errs: []error{errors.New("boom"), errors.New("boom"), errors.New("boom")},
	}
	svc := newTestEvaluator(t, gen)

	score, category := svc.Score(context.Background(), "Explain caching.", "It stores results.", "", nil)
	require.Equal(t, 5, score)
	require.Equal(t, model.CategoryTechnical, category)
	require.Equal(t, 3, gen.calls)

	// Failed evaluations are not recorded.
	require.Equal(t, 0, svc.Stats().Count)
}

func TestScoreUsesCache(t *testing.T) {
	gen := &stubGenerator{responses: []string{"9"}}
	svc := newTestEvaluator(t, gen)
	ctx := context.Background()

	score, _ := svc.Score(ctx, "Explain caching.", "It stores results.", "", nil)
	require.Equal(t, 9, score)
	require.Equal(t, 1, gen.calls)

	// Same pair modulo case and whitespace hits the cache.
	score, _ = svc.Score(ctx, "  EXPLAIN CACHING.", "it stores results.  ", "", nil)
	require.Equal(t, 9, score)
	require.Equal(t, 1, gen.calls)
}

func TestScorePromptCarriesProfileContext(t *testing.T) {
	gen := &stubGenerator{responses: []string{"6"}}
	svc := newTestEvaluator(t, gen)

	profile := &model.ResumeProfile{
		Skills:            "Python\nSQL",
		YearsOfExperience: 6,
	}
	svc.Score(context.Background(), "How do you tune SQL queries?", "With explain plans.", "data engineer", profile)

	require.Len(t, gen.prompts, 1)
	prompt := gen.prompts[0]
	require.Contains(t, prompt, "data engineer position")
	require.Contains(t, prompt, "senior level candidate")
	require.Contains(t, prompt, "sql")
	require.NotContains(t, prompt, "python")
}
