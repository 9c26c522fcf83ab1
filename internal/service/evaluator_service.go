package service

import (
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"interviewai/internal/ai"
	"interviewai/internal/cache"
	"interviewai/internal/model"
	"interviewai/internal/question"
)

const neutralScore = 5

// EvaluatorService scores candidate answers 0-10 through the text generator.
// It consults the score cache before calling out, retries transient failures,
// and fails soft: a flaky external call yields the neutral score instead of
// aborting the interview.
type EvaluatorService struct {
	gen    ai.TextGenerator
	cache  cache.ScoreCache
	policy ai.Policy
	log    *zap.Logger

	mu      sync.Mutex
	history []model.RecordedAnswer
}

// NewEvaluatorService creates a new evaluator service.
func NewEvaluatorService(gen ai.TextGenerator, scoreCache cache.ScoreCache, log *zap.Logger) *EvaluatorService {
	return &EvaluatorService{
		gen:    gen,
		cache:  scoreCache,
		policy: ai.DefaultPolicy,
		log:    log,
	}
}

// Score evaluates one question/answer pair. It never fails: exhausted
// retries and unparseable output both resolve to the neutral score.
func (s *EvaluatorService) Score(ctx context.Context, questionText, answerText, role string, profile *model.ResumeProfile) (int, model.Category) {
	if entry, ok := s.cache.Get(ctx, questionText, answerText); ok {
		s.log.Debug("score cache hit",
			zap.String("digest", cache.Key(questionText, answerText)),
			zap.Int("score", entry.Score))
		return entry.Score, entry.Category
	}

	category := question.Classify(questionText)
	prompt := buildScoringPrompt(questionText, answerText, category, role, profile)

	start := time.Now()
	var raw string
	err := ai.Do(ctx, s.policy, func(ctx context.Context) error {
		out, genErr := s.gen.GenerateContent(ctx, prompt)
		if genErr != nil {
			return genErr
		}
		raw = out
		return nil
	})
	if err != nil {
		s.log.Warn("evaluation failed after retries, using neutral score",
			zap.String("category", string(category)),
			zap.Error(err))
		return neutralScore, category
	}

	score := ExtractScore(raw)
	elapsed := time.Since(start)

	entry := &cache.Entry{
		Score:        score,
		Category:     category,
		CreatedAt:    time.Now(),
		ProcessingMS: elapsed.Milliseconds(),
	}
	if err := s.cache.Put(ctx, questionText, answerText, entry); err != nil {
		s.log.Warn("score cache write failed", zap.Error(err))
	}

	s.mu.Lock()
	s.history = append(s.history, model.RecordedAnswer{
		Question:    questionText,
		Answer:      answerText,
		Score:       score,
		Category:    category,
		EvaluatedAt: time.Now(),
	})
	s.mu.Unlock()

	s.log.Info("answer evaluated",
		zap.String("category", string(category)),
		zap.Int("score", score),
		zap.Duration("took", elapsed))

	return score, category
}

// Stats summarizes every evaluation performed by this process.
func (s *EvaluatorService) Stats() model.EvaluationStats {
	s.mu.Lock()
	defer s.mu.Unlock()

	stats := model.EvaluationStats{ByCategory: make(map[model.Category]float64)}
	if len(s.history) == 0 {
		return stats
	}

	sum := 0
	stats.MinScore = s.history[0].Score
	stats.MaxScore = s.history[0].Score
	totals := make(map[model.Category]int)
	counts := make(map[model.Category]int)

	for _, rec := range s.history {
		sum += rec.Score
		if rec.Score < stats.MinScore {
			stats.MinScore = rec.Score
		}
		if rec.Score > stats.MaxScore {
			stats.MaxScore = rec.Score
		}
		totals[rec.Category] += rec.Score
		counts[rec.Category]++
	}

	stats.Count = len(s.history)
	stats.AverageScore = float64(sum) / float64(len(s.history))
	for cat, total := range totals {
		stats.ByCategory[cat] = float64(total) / float64(counts[cat])
	}
	return stats
}

var scorePattern = regexp.MustCompile(`\b([0-9]|10)\b`)

// sentimentBands map descriptive verdicts to scores when the generator
// ignores the numeric-only instruction. Checked in order, first hit wins.
var sentimentBands = []struct {
	terms []string
	score int
}{
	{[]string{"excellent", "exceptional", "outstanding", "perfect"}, 9},
	{[]string{"good", "strong", "solid"}, 7},
	{[]string{"adequate", "acceptable", "fair", "average"}, 5},
	{[]string{"poor", "weak", "inadequate"}, 3},
	{[]string{"terrible"}, 1},
}

// ExtractScore turns free-form generator output into an integer 0-10: first
// a literal number, then sentiment keywords, then the neutral default.
func ExtractScore(raw string) int {
	if m := scorePattern.FindStringSubmatch(raw); m != nil {
		n, err := strconv.Atoi(m[1])
		if err == nil && n >= 0 && n <= 10 {
			return n
		}
	}

	lower := strings.ToLower(raw)
	for _, band := range sentimentBands {
		for _, term := range band.terms {
			if strings.Contains(lower, term) {
				return band.score
			}
		}
	}

	return neutralScore
}

// categoryCriteria describe what the evaluator should reward per category.
var categoryCriteria = map[model.Category]string{
	model.CategoryTechnical: "You have deep technical expertise and can judge the accuracy and depth of technical answers. " +
		"You value correct technical explanations, best practices, and evidence of hands-on experience. " +
		"Look for conceptual understanding rather than just terminology.",
	model.CategoryBehavioral: "You excel at assessing past behavior as an indicator of future performance. " +
		"You value the STAR method (Situation, Task, Action, Result) in responses. " +
		"Look for specific examples rather than hypothetical approaches.",
	model.CategorySituational: "You can evaluate how candidates approach hypothetical scenarios. " +
		"You value thought process, problem-solving methodology, and communication clarity. " +
		"Look for structured approaches to tackling the scenario.",
	model.CategoryBackground: "You can assess if a candidate's background aligns with job requirements. " +
		"You value relevant experience, transferable skills, and learning progression. " +
		"Look for evidence of claimed experience rather than just stating technologies.",
	model.CategoryMotivation: "You can detect genuine interest versus rehearsed answers about motivation. " +
		"You value alignment between candidate goals and company/role opportunities. " +
		"Look for specificity about this role rather than generic statements.",
	model.CategoryGeneral: "You have a balanced approach to evaluating interview responses. " +
		"You value clarity, relevance, and depth in answers. " +
		"Look for both technical accuracy and communication effectiveness.",
}

const ratingRubric = "Rate the response on a scale of 0-10 where:\n" +
	"0-2: Completely inadequate response (irrelevant, incorrect, or missing key elements)\n" +
	"3-4: Below expectations (partial answer, lacks depth or specificity)\n" +
	"5-6: Meets basic expectations (relevant but lacks some depth or examples)\n" +
	"7-8: Strong response (specific, detailed, demonstrates experience)\n" +
	"9-10: Exceptional response (comprehensive, insightful, demonstrates expertise)\n"

func buildScoringPrompt(questionText, answerText string, category model.Category, role string, profile *model.ResumeProfile) string {
	var b strings.Builder

	position := role
	if position == "" {
		position = "technical"
	}

	fmt.Fprintf(&b, "You are an expert interview evaluator with years of experience in technical hiring. ")
	fmt.Fprintf(&b, "You're evaluating a candidate for a %s position. ", position)
	b.WriteString(categoryCriteria[category])
	b.WriteString("\n\n")
	b.WriteString(ratingRubric)
	b.WriteString("\n")

	level := model.LevelEntry
	if profile != nil {
		level = profile.Level()
	}
	fmt.Fprintf(&b, "Evaluate this %s level candidate response to a %s question.\n\n", level, category)
	fmt.Fprintf(&b, "Question: %s\n\n", questionText)
	fmt.Fprintf(&b, "Candidate response: %q\n\n", answerText)

	if profile != nil {
		if skills := relevantSkills(profile.Skills, questionText); len(skills) > 0 {
			fmt.Fprintf(&b, "Relevant skills to assess: %s\n\n", strings.Join(skills, ", "))
		}
	}

	b.WriteString("Consider the following in your evaluation:\n" +
		"1. Relevance: Does the answer address the question directly?\n" +
		"2. Completeness: Does it cover all aspects of the question?\n" +
		"3. Specificity: Does it provide concrete examples or details?\n" +
		"4. Accuracy: Is the technical information correct (if applicable)?\n" +
		"5. Communication: Is the answer well-structured and clear?\n\n" +
		"Provide ONLY a numerical rating from 0-10. No explanation, just the number.")

	return b.String()
}

// relevantSkills returns the candidate's skill lines whose words appear in
// the question text.
func relevantSkills(skillsBlock, questionText string) []string {
	lowerQuestion := strings.ToLower(questionText)

	var relevant []string
	for _, skill := range strings.Split(strings.ToLower(skillsBlock), "\n") {
		skill = strings.TrimSpace(skill)
		if skill == "" {
			continue
		}
		for _, term := range strings.Fields(skill) {
			if strings.Contains(lowerQuestion, term) {
				relevant = append(relevant, skill)
				break
			}
		}
	}
	return relevant
}
