package store

import (
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"interviewai/internal/model"
)

var (
	ErrSessionNotFound   = errors.New("session not found")
	ErrInterviewComplete = errors.New("no active question to respond to")
)

// Store owns every session record and is the only mutator. Submissions for
// one session are serialized through a per-session lock so two concurrent
// submits can never double-advance the index; sessions are otherwise fully
// independent.
type Store struct {
	mu       sync.RWMutex
	sessions map[string]*entry

	ttl       time.Duration // 0 disables expiry
	done      chan struct{}
	closeOnce sync.Once
}

type entry struct {
	mu      sync.Mutex
	session *model.Session
}

// New creates a store. With a positive ttl a janitor goroutine sweeps
// sessions idle for longer than ttl.
func New(ttl time.Duration) *Store {
	s := &Store{
		sessions: make(map[string]*entry),
		ttl:      ttl,
		done:     make(chan struct{}),
	}
	if ttl > 0 {
		go s.janitor()
	}
	return s
}

// Close stops the janitor.
func (s *Store) Close() {
	s.closeOnce.Do(func() { close(s.done) })
}

// Create registers a new active session and returns a snapshot of it.
func (s *Store) Create(role string, profile model.ResumeProfile, questions []string) *model.Session {
	now := time.Now()
	sess := &model.Session{
		ID:        uuid.NewString(),
		Role:      role,
		Profile:   profile,
		Questions: questions,
		Status:    model.SessionActive,
		CreatedAt: now,
		UpdatedAt: now,
	}

	s.mu.Lock()
	s.sessions[sess.ID] = &entry{session: sess}
	s.mu.Unlock()

	return snapshot(sess)
}

// Get returns a snapshot of the session.
func (s *Store) Get(id string) (*model.Session, error) {
	e, err := s.lookup(id)
	if err != nil {
		return nil, err
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	return snapshot(e.session), nil
}

// Submit evaluates the session's current question under the session lock,
// records the result, and advances the index. eval receives the current
// question and its index; its error aborts the submission without advancing.
func (s *Store) Submit(id string, eval func(question string, index int) (model.RecordedAnswer, error)) (*model.Session, error) {
	e, err := s.lookup(id)
	if err != nil {
		return nil, err
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	sess := e.session
	if sess.Complete() {
		return nil, ErrInterviewComplete
	}

	rec, err := eval(sess.Questions[sess.Index], sess.Index)
	if err != nil {
		return nil, err
	}

	sess.Answers = append(sess.Answers, rec)
	sess.Index++
	if sess.Complete() {
		sess.Status = model.SessionComplete
	}
	sess.UpdatedAt = time.Now()

	return snapshot(sess), nil
}

// List returns summaries of all sessions, newest first.
func (s *Store) List() []model.SessionSummary {
	s.mu.RLock()
	entries := make([]*entry, 0, len(s.sessions))
	for _, e := range s.sessions {
		entries = append(entries, e)
	}
	s.mu.RUnlock()

	summaries := make([]model.SessionSummary, 0, len(entries))
	for _, e := range entries {
		e.mu.Lock()
		sess := e.session
		summaries = append(summaries, model.SessionSummary{
			ID:            sess.ID,
			Role:          sess.Role,
			Status:        sess.Status,
			QuestionCount: len(sess.Questions),
			Answered:      len(sess.Answers),
			CreatedAt:     sess.CreatedAt,
			UpdatedAt:     sess.UpdatedAt,
		})
		e.mu.Unlock()
	}

	sort.Slice(summaries, func(i, j int) bool {
		return summaries[i].CreatedAt.After(summaries[j].CreatedAt)
	})
	return summaries
}

func (s *Store) lookup(id string) (*entry, error) {
	s.mu.RLock()
	e, ok := s.sessions[id]
	s.mu.RUnlock()
	if !ok {
		return nil, ErrSessionNotFound
	}
	return e, nil
}

func (s *Store) janitor() {
	interval := s.ttl
	if interval > time.Minute {
		interval = time.Minute
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-s.done:
			return
		case <-ticker.C:
			s.sweep()
		}
	}
}

func (s *Store) sweep() {
	cutoff := time.Now().Add(-s.ttl)

	s.mu.RLock()
	candidates := make(map[string]*entry, len(s.sessions))
	for id, e := range s.sessions {
		candidates[id] = e
	}
	s.mu.RUnlock()

	var expired []string
	for id, e := range candidates {
		e.mu.Lock()
		if e.session.UpdatedAt.Before(cutoff) {
			expired = append(expired, id)
		}
		e.mu.Unlock()
	}
	if len(expired) == 0 {
		return
	}

	// A submission racing the sweep keeps its entry pointer; its write is
	// simply dropped along with the session.
	s.mu.Lock()
	for _, id := range expired {
		delete(s.sessions, id)
	}
	s.mu.Unlock()
}

// snapshot copies a session so callers cannot mutate stored state.
func snapshot(sess *model.Session) *model.Session {
	cp := *sess
	cp.Questions = append([]string(nil), sess.Questions...)
	cp.Answers = append([]model.RecordedAnswer(nil), sess.Answers...)
	return &cp
}
