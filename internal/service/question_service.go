package service

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"interviewai/internal/ai"
	"interviewai/internal/model"
	"interviewai/internal/question"
)

// ErrNoQuestions means the generator output yielded nothing usable after
// every extraction fallback.
var ErrNoQuestions = errors.New("no questions could be extracted from generator output")

// QuestionService produces the tailored question list through a three-stage
// pipeline: role analysis, candidate profile analysis, then synthesis.
// Generation is not retried; failures surface to the caller.
type QuestionService struct {
	gen ai.TextGenerator
	log *zap.Logger
}

// NewQuestionService creates a new question service.
func NewQuestionService(gen ai.TextGenerator, log *zap.Logger) *QuestionService {
	return &QuestionService{gen: gen, log: log}
}

// Generate returns the ordered, de-duplicated question list for a candidate.
func (s *QuestionService) Generate(ctx context.Context, role string, profile *model.ResumeProfile) ([]string, error) {
	roleAnalysis, err := s.gen.GenerateContent(ctx, roleAnalysisPrompt(role))
	if err != nil {
		return nil, fmt.Errorf("analyze role: %w", err)
	}

	profileAnalysis, err := s.gen.GenerateContent(ctx, profileAnalysisPrompt(role, profile))
	if err != nil {
		return nil, fmt.Errorf("analyze profile: %w", err)
	}

	raw, err := s.gen.GenerateContent(ctx, synthesisPrompt(role, profile, roleAnalysis, profileAnalysis))
	if err != nil {
		return nil, fmt.Errorf("generate questions: %w", err)
	}

	questions := question.Dedupe(question.Extract(raw))
	if len(questions) == 0 {
		return nil, ErrNoQuestions
	}

	s.log.Info("interview questions generated",
		zap.String("role", role),
		zap.Int("count", len(questions)))

	return questions, nil
}

func roleAnalysisPrompt(role string) string {
	return fmt.Sprintf("You are an expert job analyst with extensive knowledge of different industries and roles.\n"+
		"Analyze the job role '%s' to identify:\n"+
		"1. Key technical skills required\n"+
		"2. Necessary soft skills\n"+
		"3. Common challenges faced in this role\n"+
		"4. Experience level expectations\n"+
		"5. Industry-specific knowledge requirements\n"+
		"Present the analysis as structured bullet points.", role)
}

func profileAnalysisPrompt(role string, profile *model.ResumeProfile) string {
	return fmt.Sprintf("You are an expert resume analyzer with years of experience in talent acquisition.\n"+
		"Analyze the candidate's profile for the %s position:\n"+
		"- Skills: %s\n"+
		"- Experience: %s\n"+
		"- Education: %s\n\n"+
		"Identify:\n"+
		"1. Strengths that align well with the role\n"+
		"2. Potential gaps or missing qualifications\n"+
		"3. Areas where the candidate's claims need verification\n"+
		"4. Experiences that require deeper explanation\n"+
		"5. Unique aspects of the candidate's background worth exploring",
		role, profile.Skills, profile.Experience, profile.Education)
}

func synthesisPrompt(role string, profile *model.ResumeProfile, roleAnalysis, profileAnalysis string) string {
	return fmt.Sprintf("You are an AI-powered interview question generator. Good interview questions are behavioral "+
		"and situational, requiring candidates to provide specific examples, and must challenge the candidate, verify "+
		"their claims, and assess their suitability for the %s role.\n\n"+
		"Job role analysis:\n%s\n\n"+
		"Candidate profile analysis:\n%s\n\n"+
		"Candidate skills: %s\n\n"+
		"Based on both analyses, generate 10-12 high-quality interview questions with this mix:\n"+
		"- 3-4 technical/skills assessment questions based on the role requirements\n"+
		"- 2-3 behavioral questions about past experiences\n"+
		"- 1-2 situational/hypothetical scenario questions\n"+
		"- 1-2 questions about gaps or inconsistencies in the resume\n"+
		"- 1 question about the candidate's interest in the role and company\n"+
		"- 1 question about career goals and growth\n\n"+
		"Format each question as 'Question X: [Your question here]' on a new line.",
		role, roleAnalysis, profileAnalysis, profile.Skills)
}
