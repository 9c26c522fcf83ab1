package store

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"interviewai/internal/model"
)

func newSession(t *testing.T, s *Store, questions ...string) *model.Session {
	t.Helper()
	if len(questions) == 0 {
		questions = []string{"q1", "q2", "q3"}
	}
	return s.Create("engineer", model.ResumeProfile{}, questions)
}

func acceptAnswer(score int) func(string, int) (model.RecordedAnswer, error) {
	return func(q string, _ int) (model.RecordedAnswer, error) {
		return model.RecordedAnswer{Question: q, Answer: "a", Score: score, EvaluatedAt: time.Now()}, nil
	}
}

func TestStoreLifecycle(t *testing.T) {
	s := New(0)
	defer s.Close()

	sess := newSession(t, s, "q1", "q2")
	require.Equal(t, model.SessionActive, sess.Status)
	require.Equal(t, 1, sess.Remaining())

	got, err := s.Get(sess.ID)
	require.NoError(t, err)
	require.Equal(t, sess.ID, got.ID)

	after, err := s.Submit(sess.ID, acceptAnswer(7))
	require.NoError(t, err)
	require.Equal(t, 1, after.Index)
	require.Len(t, after.Answers, 1)
	require.Equal(t, "q1", after.Answers[0].Question)
	require.Equal(t, model.SessionActive, after.Status)

	after, err = s.Submit(sess.ID, acceptAnswer(8))
	require.NoError(t, err)
	require.Equal(t, model.SessionComplete, after.Status)
	require.True(t, after.Complete())

	_, err = s.Submit(sess.ID, acceptAnswer(5))
	require.ErrorIs(t, err, ErrInterviewComplete)
}

func TestStoreUnknownSession(t *testing.T) {
	s := New(0)
	defer s.Close()

	_, err := s.Get("nope")
	require.ErrorIs(t, err, ErrSessionNotFound)

	_, err = s.Submit("nope", acceptAnswer(5))
	require.ErrorIs(t, err, ErrSessionNotFound)
}

func TestStoreEvalErrorDoesNotAdvance(t *testing.T) {
	s := New(0)
	defer s.Close()
	sess := newSession(t, s)

	_, err := s.Submit(sess.ID, func(string, int) (model.RecordedAnswer, error) {
		return model.RecordedAnswer{}, errEvalFailed
	})
	require.ErrorIs(t, err, errEvalFailed)

	got, err := s.Get(sess.ID)
	require.NoError(t, err)
	require.Equal(t, 0, got.Index)
	require.Empty(t, got.Answers)
}

var errEvalFailed = errTest("eval failed")

type errTest string

func (e errTest) Error() string { return string(e) }

func TestStoreConcurrentSubmits(t *testing.T) {
	s := New(0)
	defer s.Close()

	questions := make([]string, 5)
	for i := range questions {
		questions[i] = string(rune('a' + i))
	}
	sess := newSession(t, s, questions...)

	const workers = 20
	var wg sync.WaitGroup
	var mu sync.Mutex
	accepted := 0

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := s.Submit(sess.ID, acceptAnswer(5)); err == nil {
				mu.Lock()
				accepted++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	require.Equal(t, len(questions), accepted)

	got, err := s.Get(sess.ID)
	require.NoError(t, err)
	require.True(t, got.Complete())
	require.Len(t, got.Answers, len(questions))
	for i, rec := range got.Answers {
		require.Equal(t, questions[i], rec.Question)
	}
}

func TestStoreSnapshotIsolation(t *testing.T) {
	s := New(0)
	defer s.Close()
	sess := newSession(t, s, "q1", "q2")

	sess.Questions[0] = "tampered"

	got, err := s.Get(sess.ID)
	require.NoError(t, err)
	require.Equal(t, "q1", got.Questions[0])
}

func TestStoreList(t *testing.T) {
	s := New(0)
	defer s.Close()

	first := newSession(t, s)
	time.Sleep(5 * time.Millisecond)
	second := newSession(t, s)

	list := s.List()
	require.Len(t, list, 2)
	require.Equal(t, second.ID, list[0].ID)
	require.Equal(t, first.ID, list[1].ID)
}

func TestStoreTTLSweep(t *testing.T) {
	s := New(10 * time.Millisecond)
	defer s.Close()
	sess := newSession(t, s)

	require.Eventually(t, func() bool {
		_, err := s.Get(sess.ID)
		return err != nil
	}, 2*time.Second, 10*time.Millisecond)
}
