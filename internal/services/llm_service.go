package services

import (
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/googleai"

	"github.com/jobflix/jobflix-backend/internal/apperr"
	"github.com/jobflix/jobflix-backend/internal/logger"
	"github.com/jobflix/jobflix-backend/internal/models"
)

const assistantPrompt = `You are the JobFlix assistant, a concise career helper embedded in a job board.
Answer questions about job searching, applications, interviews and career growth.
Stay on topic; if asked about something unrelated, say you can only help with career questions.

User message:
%s`

// AssistantService is a pure request/response passthrough to the completion
// model. No application state is read or written here.
type AssistantService struct {
	client llms.Model
	log    *logger.Logger
}

func NewAssistantService(ctx context.Context, apiKey string, log *logger.Logger) (*AssistantService, error) {
	llm, err := googleai.New(ctx,
		googleai.WithAPIKey(apiKey),
		googleai.WithDefaultModel("gemini-2.5-flash"),
	)
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}
	return &AssistantService{client: llm, log: log.With("service", "AssistantService")}, nil
}

func (s *AssistantService) Ask(ctx context.Context, message string) (string, error) {
	resp, err := llms.GenerateFromSinglePrompt(ctx, s.client, fmt.Sprintf(assistantPrompt, message))
	if err != nil {
		return "", apperr.Transport("assistant completion: %v", err)
	}
	return resp, nil
}

const scoringPrompt = `Rate how well this candidate profile matches the job posting.
Reply with a single integer from 0 to 100 and nothing else.

PROFILE:
skills: %s
years of experience: %d
location: %s

JOB:
title: %s
requirements: %s
experience level: %s
location: %s (remote: %t)`

var scoreDigits = regexp.MustCompile(`\d+`)

// LLMScorer is the alternate match strategy behind the Scorer contract. It
// is opt-in; the deterministic weighted scorer stays the default.
type LLMScorer struct {
	client llms.Model
	log    *logger.Logger
}

func NewLLMScorer(assistant *AssistantService, log *logger.Logger) *LLMScorer {
	return &LLMScorer{client: assistant.client, log: log.With("scorer", "llm")}
}

func (s *LLMScorer) ScoreJob(ctx context.Context, profile *models.Profile, job *models.Job) (int, error) {
	if len(profile.Skills) == 0 && profile.ExperienceYears <= 0 {
		return 0, apperr.Validation(apperr.CodeInvalidProfile,
			"profile has no matchable fields: add skills or experience before scoring")
	}
	prompt := fmt.Sprintf(scoringPrompt,
		strings.Join(profile.Skills, ", "), profile.ExperienceYears, profile.Location,
		job.Title, strings.Join(job.Requirements, ", "), job.ExperienceLevel,
		job.Location, job.IsRemote)

	resp, err := llms.GenerateFromSinglePrompt(ctx, s.client, prompt)
	if err != nil {
		return 0, apperr.Transport("scoring completion: %v", err)
	}
	match := scoreDigits.FindString(resp)
	if match == "" {
		return 0, apperr.Transport("scoring completion returned no number: %q", resp)
	}
	score, err := strconv.Atoi(match)
	if err != nil {
		return 0, apperr.Transport("scoring completion: %v", err)
	}
	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}
	return score, nil
}
