package interview

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"interviewpro/api/internal/llm"
	"interviewpro/api/internal/models"
	"interviewpro/api/internal/prompts"
	"interviewpro/api/internal/store"
	"interviewpro/api/internal/utils"
)

// returned when provider output cannot be reduced to a valid evaluation.
// Never retried automatically and never replaced with a default score.
var ErrEvaluationParse = errors.New("evaluation output could not be parsed")

// Evaluation is a validated score/feedback pair on the 0-10 scale.
type Evaluation struct {
	Score    float64 `json:"score"`
	Feedback string  `json:"feedback"`
}

// Evaluator scores a question/answer pair through the provider and treats
// the provider's free text as untrusted input: structural validation happens
// before anything reaches persistence.
type Evaluator struct {
	provider llm.Provider
	prompts  prompts.PromptProvider
	sessions store.SessionStore
	logger   *zap.Logger
}

func NewEvaluator(provider llm.Provider, promptManager prompts.PromptProvider, sessions store.SessionStore, logger *zap.Logger) *Evaluator {
	return &Evaluator{
		provider: provider,
		prompts:  promptManager,
		sessions: sessions,
		logger:   logger,
	}
}

// Evaluate asks the provider to grade an answer and parses the result. It
// has no store side effects; callers decide whether to persist via
// EvaluateAndRecord or SessionStore.AppendAttempt.
func (e *Evaluator) Evaluate(ctx context.Context, question, userAnswer, requestID string) (*Evaluation, error) {
	prompt, err := e.prompts.BuildPrompt("evaluate", "default", map[string]string{
		"Question": question,
		"Answer":   userAnswer,
	})
	if err != nil {
		return nil, err
	}

	generated, err := e.provider.GenerateContent(ctx, prompt, requestID)
	if err != nil {
		return nil, err
	}

	evaluation, err := ParseEvaluation(generated.Content)
	if err != nil {
		e.logger.Warn("evaluation parse failed",
			zap.String("request_id", requestID),
			zap.Error(err))
		return nil, err
	}
	return evaluation, nil
}

// EvaluateAndRecord evaluates and appends the result to the session as an
// attempt. QuestionID may be empty for free-form exchanges.
func (e *Evaluator) EvaluateAndRecord(ctx context.Context, sessionID, questionID, question, userAnswer, requestID string) (*Evaluation, error) {
	evaluation, err := e.Evaluate(ctx, question, userAnswer, requestID)
	if err != nil {
		return nil, err
	}

	attempt := models.Attempt{
		UserAnswer: userAnswer,
		AIFeedback: evaluation.Feedback,
		Score:      evaluation.Score,
	}
	if questionID != "" {
		attempt.QuestionID = &questionID
	}

	if _, err := e.sessions.AppendAttempt(ctx, sessionID, attempt); err != nil {
		return nil, err
	}
	return evaluation, nil
}

// ParseEvaluation reduces raw provider text to a validated evaluation.
// Fence markers are stripped and the remainder parsed as JSON; if that
// fails, the first {...} object embedded in commentary is tried once.
// Out-of-range scores and empty feedback are parse failures, never clamped
// or defaulted.
func ParseEvaluation(text string) (*Evaluation, error) {
	cleaned := utils.StripFences(text)

	var raw struct {
		Score    *float64 `json:"score"`
		Feedback string   `json:"feedback"`
	}
	if err := json.Unmarshal([]byte(cleaned), &raw); err != nil {
		object := utils.ExtractJSONObject(cleaned)
		if object == "" {
			return nil, fmt.Errorf("%w: no JSON object in provider output", ErrEvaluationParse)
		}
		if err := json.Unmarshal([]byte(object), &raw); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrEvaluationParse, err)
		}
	}

	if raw.Score == nil {
		return nil, fmt.Errorf("%w: missing score", ErrEvaluationParse)
	}
	if *raw.Score < models.MinScore || *raw.Score > models.MaxScore {
		return nil, fmt.Errorf("%w: score %v outside [0,10]", ErrEvaluationParse, *raw.Score)
	}
	if strings.TrimSpace(raw.Feedback) == "" {
		return nil, fmt.Errorf("%w: empty feedback", ErrEvaluationParse)
	}

	return &Evaluation{Score: *raw.Score, Feedback: raw.Feedback}, nil
}
