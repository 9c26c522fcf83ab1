package service

import (
	"context"
	"math"
	"time"

	"go.uber.org/zap"

	"interviewai/internal/model"
	"interviewai/internal/question"
	"interviewai/internal/repository"
	"interviewai/internal/store"
)

// InterviewService orchestrates the interview lifecycle: resume extraction,
// question generation, session creation, answer scoring, and results.
type InterviewService struct {
	resumes     *ResumeService
	questions   *QuestionService
	evaluator   *EvaluatorService
	sessions    *store.Store
	answers     repository.AnswerRepo
	broadcaster Broadcaster
	log         *zap.Logger
}

// NewInterviewService creates a new interview service.
func NewInterviewService(
	resumes *ResumeService,
	questions *QuestionService,
	evaluator *EvaluatorService,
	sessions *store.Store,
	answers repository.AnswerRepo,
	log *zap.Logger,
) *InterviewService {
	return &InterviewService{
		resumes:   resumes,
		questions: questions,
		evaluator: evaluator,
		sessions:  sessions,
		answers:   answers,
		log:       log,
	}
}

// SetBroadcaster sets the monitor broadcaster for interview events.
func (s *InterviewService) SetBroadcaster(b Broadcaster) {
	s.broadcaster = b
}

// Start extracts the resume profile, generates questions, and opens a
// session. Any failure here is user-visible; there is no partial session.
func (s *InterviewService) Start(ctx context.Context, resumeText, role string) (*model.UploadResponse, error) {
	profile, err := s.resumes.Extract(ctx, resumeText)
	if err != nil {
		return nil, err
	}

	questions, err := s.questions.Generate(ctx, role, profile)
	if err != nil {
		return nil, err
	}

	sess := s.sessions.Create(role, *profile, questions)

	s.log.Info("interview session created",
		zap.String("session_id", sess.ID),
		zap.String("role", role),
		zap.Int("question_count", len(questions)))
	s.broadcast(EventSessionCreated, map[string]interface{}{
		"session_id":     sess.ID,
		"role":           role,
		"question_count": len(questions),
	})

	return &model.UploadResponse{SessionID: sess.ID, QuestionCount: len(questions)}, nil
}

// CurrentQuestion returns the question at the session's current position,
// or the no-questions sentinel once the interview is complete.
func (s *InterviewService) CurrentQuestion(id string) (*model.QuestionResponse, error) {
	sess, err := s.sessions.Get(id)
	if err != nil {
		return nil, err
	}

	if sess.Complete() {
		return &model.QuestionResponse{
			Question:      model.NoQuestionsSentinel,
			Remaining:     0,
			QuestionIndex: sess.Index,
		}, nil
	}

	current := sess.Questions[sess.Index]
	return &model.QuestionResponse{
		Question:      current,
		Remaining:     sess.Remaining(),
		QuestionIndex: sess.Index,
		QuestionType:  question.Classify(current),
	}, nil
}

// SubmitResponse scores the answer against the session's current question
// and advances the session. The store serializes submissions per session.
func (s *InterviewService) SubmitResponse(ctx context.Context, id, answerText string) (*model.SubmitResponseResponse, error) {
	// Role and profile are immutable after creation, so reading them
	// outside the submit lock is safe.
	prior, err := s.sessions.Get(id)
	if err != nil {
		return nil, err
	}

	var rec model.RecordedAnswer
	sess, err := s.sessions.Submit(id, func(questionText string, index int) (model.RecordedAnswer, error) {
		score, category := s.evaluator.Score(ctx, questionText, answerText, prior.Role, &prior.Profile)
		rec = model.RecordedAnswer{
			Question:    questionText,
			Answer:      answerText,
			Score:       score,
			Category:    category,
			EvaluatedAt: time.Now(),
		}
		return rec, nil
	})
	if err != nil {
		return nil, err
	}

	answeredIndex := sess.Index - 1

	record := &model.AnswerRecord{
		SessionID:     id,
		Role:          sess.Role,
		QuestionIndex: answeredIndex,
		Question:      rec.Question,
		Answer:        rec.Answer,
		Score:         rec.Score,
		Category:      rec.Category,
		EvaluatedAt:   rec.EvaluatedAt,
	}
	if err := s.answers.Save(ctx, record); err != nil {
		s.log.Warn("answer record write failed",
			zap.String("session_id", id),
			zap.Error(err))
	}

	s.broadcast(EventResponseEvaluated, map[string]interface{}{
		"session_id":     id,
		"question_index": answeredIndex,
		"score":          rec.Score,
		"question_type":  rec.Category,
	})
	if sess.Complete() {
		s.broadcast(EventInterviewComplete, map[string]interface{}{
			"session_id":         id,
			"answered_questions": len(sess.Answers),
		})
	}

	return &model.SubmitResponseResponse{
		Evaluation:        rec.Score,
		QuestionIndex:     answeredIndex,
		TotalQuestions:    len(sess.Questions),
		QuestionType:      rec.Category,
		InterviewComplete: sess.Complete(),
	}, nil
}

// Results aggregates everything recorded for a session.
func (s *InterviewService) Results(id string) (*model.ResultsResponse, error) {
	sess, err := s.sessions.Get(id)
	if err != nil {
		return nil, err
	}

	total := 0
	byType := make(map[model.Category]model.CategoryFeedback)
	for _, rec := range sess.Answers {
		total += rec.Score

		fb := byType[rec.Category]
		fb.Count++
		fb.Questions = append(fb.Questions, model.QuestionScore{Question: rec.Question, Score: rec.Score})
		byType[rec.Category] = fb
	}

	average := 0.0
	if len(sess.Answers) > 0 {
		average = math.Round(float64(total)/float64(len(sess.Answers))*10) / 10
	}
	for cat, fb := range byType {
		sum := 0
		for _, qs := range fb.Questions {
			sum += qs.Score
		}
		fb.AverageScore = math.Round(float64(sum)/float64(fb.Count)*10) / 10
		byType[cat] = fb
	}

	responses := sess.Answers
	if responses == nil {
		responses = []model.RecordedAnswer{}
	}

	return &model.ResultsResponse{
		Responses:         responses,
		TotalQuestions:    len(sess.Questions),
		AnsweredQuestions: len(sess.Answers),
		AverageScore:      average,
		FeedbackByType:    byType,
	}, nil
}

// Sessions lists summaries for the admin surface.
func (s *InterviewService) Sessions() []model.SessionSummary {
	return s.sessions.List()
}

// Answers returns the persisted answer records for a session, oldest first.
func (s *InterviewService) Answers(ctx context.Context, id string) ([]*model.AnswerRecord, error) {
	if _, err := s.sessions.Get(id); err != nil {
		return nil, err
	}
	return s.answers.ListBySession(ctx, id)
}

func (s *InterviewService) broadcast(event string, payload interface{}) {
	if s.broadcaster != nil {
		s.broadcaster.BroadcastEvent(event, payload)
	}
}
