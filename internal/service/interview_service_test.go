package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"interviewai/internal/ai"
	"interviewai/internal/cache"
	"interviewai/internal/model"
	"interviewai/internal/repository"
	"interviewai/internal/store"
)

const sampleResume = `Jane Doe
EXPERIENCE 3 years as a software developer at Example Corp
SKILLS Python, SQL
EDUCATION BSc in Computer Science`

// recordingBroadcaster captures emitted monitor events.
type recordingBroadcaster struct {
	mu     sync.Mutex
	events []string
}

func (b *recordingBroadcaster) BroadcastEvent(event string, _ interface{}) {
	b.mu.Lock()
	b.events = append(b.events, event)
	b.mu.Unlock()
}

func newTestInterviewService(t *testing.T) (*InterviewService, *recordingBroadcaster) {
	t.Helper()

	gen := ai.MockGenerator{}
	log := zap.NewNop()

	disk, err := cache.NewDiskCache(t.TempDir(), 0, log)
	require.NoError(t, err)

	sessions := store.New(0)
	t.Cleanup(sessions.Close)

	svc := NewInterviewService(
		NewResumeService(gen, log),
		NewQuestionService(gen, log),
		NewEvaluatorService(gen, disk, log),
		sessions,
		repository.NewMemoryAnswerRepo(),
		log,
	)

	b := &recordingBroadcaster{}
	svc.SetBroadcaster(b)
	return svc, b
}

func TestInterviewFullFlow(t *testing.T) {
	svc, broadcaster := newTestInterviewService(t)
	ctx := context.Background()

	up, err := svc.Start(ctx, sampleResume, "backend engineer")
	require.NoError(t, err)
	require.NotEmpty(t, up.SessionID)
	require.Equal(t, 10, up.QuestionCount)

	for i := 0; i < up.QuestionCount; i++ {
		q, err := svc.CurrentQuestion(up.SessionID)
		require.NoError(t, err)
		require.Equal(t, i, q.QuestionIndex)
		require.Equal(t, up.QuestionCount-i-1, q.Remaining)
		require.NotEqual(t, model.NoQuestionsSentinel, q.Question)

		resp, err := svc.SubmitResponse(ctx, up.SessionID, "I would handle it methodically with examples.")
		require.NoError(t, err)
		require.Equal(t, i, resp.QuestionIndex)
		require.Equal(t, up.QuestionCount, resp.TotalQuestions)
		require.GreaterOrEqual(t, resp.Evaluation, 0)
		require.LessOrEqual(t, resp.Evaluation, 10)
		require.Equal(t, i == up.QuestionCount-1, resp.InterviewComplete)
	}

	// Completed session serves the sentinel and rejects further answers.
	q, err := svc.CurrentQuestion(up.SessionID)
	require.NoError(t, err)
	require.Equal(t, "No questions available. Please generate questions first.", q.Question)
	require.Equal(t, 0, q.Remaining)

	_, err = svc.SubmitResponse(ctx, up.SessionID, "one more")
	require.ErrorIs(t, err, store.ErrInterviewComplete)

	results, err := svc.Results(up.SessionID)
	require.NoError(t, err)
	require.Equal(t, up.QuestionCount, results.TotalQuestions)
	require.Equal(t, up.QuestionCount, results.AnsweredQuestions)
	require.Len(t, results.Responses, up.QuestionCount)
	require.InDelta(t, 5.0, results.AverageScore, 0.001)
	require.NotEmpty(t, results.FeedbackByType)

	answered := 0
	for _, fb := range results.FeedbackByType {
		answered += fb.Count
		require.Len(t, fb.Questions, fb.Count)
	}
	require.Equal(t, up.QuestionCount, answered)

	broadcaster.mu.Lock()
	defer broadcaster.mu.Unlock()
	require.Equal(t, EventSessionCreated, broadcaster.events[0])
	require.Contains(t, broadcaster.events, EventResponseEvaluated)
	require.Equal(t, EventInterviewComplete, broadcaster.events[len(broadcaster.events)-1])
}

func TestInterviewUnknownSession(t *testing.T) {
	svc, _ := newTestInterviewService(t)
	ctx := context.Background()

	_, err := svc.CurrentQuestion("missing")
	require.ErrorIs(t, err, store.ErrSessionNotFound)

	_, err = svc.SubmitResponse(ctx, "missing", "hello")
	require.ErrorIs(t, err, store.ErrSessionNotFound)

	_, err = svc.Results("missing")
	require.ErrorIs(t, err, store.ErrSessionNotFound)
}

func TestInterviewResultsBeforeAnyAnswer(t *testing.T) {
	svc, _ := newTestInterviewService(t)
	ctx := context.Background()

	up, err := svc.Start(ctx, sampleResume, "backend engineer")
	require.NoError(t, err)

	results, err := svc.Results(up.SessionID)
	require.NoError(t, err)
	require.Equal(t, 0, results.AnsweredQuestions)
	require.Equal(t, 0.0, results.AverageScore)
	require.NotNil(t, results.Responses)
	require.Empty(t, results.Responses)
}

func TestInterviewSessionsListing(t *testing.T) {
	svc, _ := newTestInterviewService(t)
	ctx := context.Background()

	_, err := svc.Start(ctx, sampleResume, "backend engineer")
	require.NoError(t, err)
	time.Sleep(2 * time.Millisecond)
	second, err := svc.Start(ctx, sampleResume, "data engineer")
	require.NoError(t, err)

	list := svc.Sessions()
	require.Len(t, list, 2)
	require.Equal(t, second.SessionID, list[0].ID)
	require.Equal(t, "data engineer", list[0].Role)
}

func TestResumeExtractionDerivedFields(t *testing.T) {
	svc := NewResumeService(ai.MockGenerator{}, zap.NewNop())

	profile, err := svc.Extract(context.Background(), sampleResume)
	require.NoError(t, err)
	require.Equal(t, "Python\nSQL\nCommunication", profile.Skills)
	require.Equal(t, 3, profile.YearsOfExperience)
	require.Equal(t, 1, profile.NumCertifications)
	require.Equal(t, model.LevelMid, profile.Level())
}

func TestQuestionGeneration(t *testing.T) {
	svc := NewQuestionService(ai.MockGenerator{}, zap.NewNop())

	questions, err := svc.Generate(context.Background(), "backend engineer", &model.ResumeProfile{Skills: "Go"})
	require.NoError(t, err)
	require.Len(t, questions, 10)
	for _, q := range questions {
		require.GreaterOrEqual(t, len(q), 10)
	}
}
