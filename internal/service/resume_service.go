package service

import (
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"interviewai/internal/ai"
	"interviewai/internal/model"
)

// ResumeService turns raw resume text into a structured profile through a
// sequence of extraction prompts. Extraction failures propagate; there is no
// fail-soft path here since nothing useful can be interviewed without a
// profile.
type ResumeService struct {
	gen ai.TextGenerator
	log *zap.Logger
}

// NewResumeService creates a new resume service.
func NewResumeService(gen ai.TextGenerator, log *zap.Logger) *ResumeService {
	return &ResumeService{gen: gen, log: log}
}

// Extract runs the four extraction prompts and derives the numeric fields.
func (s *ResumeService) Extract(ctx context.Context, content string) (*model.ResumeProfile, error) {
	text := preprocessResume(content)

	skills, err := s.gen.GenerateContent(ctx, skillsPrompt(text))
	if err != nil {
		return nil, fmt.Errorf("extract skills: %w", err)
	}
	experience, err := s.gen.GenerateContent(ctx, experiencePrompt(text))
	if err != nil {
		return nil, fmt.Errorf("extract experience: %w", err)
	}
	education, err := s.gen.GenerateContent(ctx, educationPrompt(text))
	if err != nil {
		return nil, fmt.Errorf("extract education: %w", err)
	}
	certifications, err := s.gen.GenerateContent(ctx, certificationsPrompt(text))
	if err != nil {
		return nil, fmt.Errorf("extract certifications: %w", err)
	}

	profile := &model.ResumeProfile{
		Skills:         strings.TrimSpace(skills),
		Experience:     strings.TrimSpace(experience),
		Education:      strings.TrimSpace(education),
		Certifications: strings.TrimSpace(certifications),
	}
	profile.YearsOfExperience = parseYears(profile.Experience)
	profile.NumCertifications = countLines(profile.Certifications)

	s.log.Info("resume profile extracted",
		zap.Int("years_of_experience", profile.YearsOfExperience),
		zap.Int("num_certifications", profile.NumCertifications))

	return profile, nil
}

var (
	whitespaceRun = regexp.MustCompile(`\s+`)
	bulletRun     = regexp.MustCompile(`•\s*`)
	dateRange     = regexp.MustCompile(`(\b(19|20)\d{2}\s*(-|to)\s*((19|20)\d{2}|Present|Current))\b`)
	yearsMention  = regexp.MustCompile(`(?i)(\d+)\s*(?:years?|yrs?)`)
	yearSpan      = regexp.MustCompile(`(\d{4})\s*-\s*(\d{4}|(?i:present|current))`)
)

// sectionHeaders get a newline forced before them so PDF-flattened text
// regains some structure before extraction.
var sectionHeaders = []string{
	"EDUCATION", "Education", "EXPERIENCE", "Experience", "SKILLS", "Skills",
	"CERTIFICATIONS", "Certifications", "PROJECTS", "Projects",
	"WORK EXPERIENCE", "Work Experience", "PROFESSIONAL EXPERIENCE", "Professional Experience",
	"TECHNICAL SKILLS", "Technical Skills",
}

// preprocessResume cleans up common PDF-to-text conversion artifacts.
func preprocessResume(text string) string {
	text = whitespaceRun.ReplaceAllString(text, " ")
	text = bulletRun.ReplaceAllString(text, "\n• ")
	text = strings.ReplaceAll(text, "–", "-")
	text = strings.ReplaceAll(text, "—", "-")

	for _, header := range sectionHeaders {
		text = strings.ReplaceAll(text, " "+header, "\n\n"+header)
	}
	text = dateRange.ReplaceAllString(text, "$1\n")

	return strings.TrimSpace(text)
}

// parseYears sums explicit "N years"/"N yrs" mentions anywhere in the
// experience text, falling back to summing YYYY-YYYY/Present date spans when
// no figure is stated outright.
func parseYears(experience string) int {
	years := 0
	for _, m := range yearsMention.FindAllStringSubmatch(experience, -1) {
		if n, err := strconv.Atoi(m[1]); err == nil {
			years += n
		}
	}
	if years > 0 {
		return years
	}

	currentYear := time.Now().Year()
	for _, m := range yearSpan.FindAllStringSubmatch(experience, -1) {
		start, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}
		end := currentYear
		if n, err := strconv.Atoi(m[2]); err == nil {
			end = n
		}
		years += end - start
	}
	return years
}

func countLines(s string) int {
	count := 0
	for _, line := range strings.Split(s, "\n") {
		if strings.TrimSpace(line) != "" {
			count++
		}
	}
	return count
}

func skillsPrompt(text string) string {
	return "You are an AI agent specialized in identifying technical, soft, and domain-specific skills in resumes. " +
		"You understand industry jargon and can recognize skills even when they are embedded in project descriptions or work experience. " +
		"Extract a comprehensive list of skills from the following resume content, one skill per line:\n\n" + text
}

func experiencePrompt(text string) string {
	return "You are an AI agent trained to understand professional history in resumes. " +
		"Extract professional experience details from the following resume content. " +
		"For each position include the duration in years when stated, one position per line:\n\n" + text
}

func educationPrompt(text string) string {
	return "You are an AI agent trained to understand academic history in resumes. " +
		"Extract education qualifications from the following resume content, one qualification per line:\n\n" + text
}

func certificationsPrompt(text string) string {
	return "You are an AI agent trained to recognize professional credentials in resumes. " +
		"Extract certifications from the following resume content, one certification per line. " +
		"Return an empty response if there are none:\n\n" + text
}
