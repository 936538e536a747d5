package interview

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"interviewpro/api/internal/llm"
	"interviewpro/api/internal/models"
	"interviewpro/api/internal/prompts"
	"interviewpro/api/internal/store"
)

var (
	ErrInvalidCategory   = errors.New("unknown interview category")
	ErrInvalidDifficulty = errors.New("unknown interview difficulty")
)

// Orchestrator drives a multi-turn mock interview. Conversation context is
// supplied by the caller on every turn; the store only records that the
// session exists. The transcript trust boundary therefore sits with the
// caller.
type Orchestrator struct {
	provider llm.Provider
	prompts  prompts.PromptProvider
	sessions store.SessionStore
	logger   *zap.Logger
}

func NewOrchestrator(provider llm.Provider, promptManager prompts.PromptProvider, sessions store.SessionStore, logger *zap.Logger) *Orchestrator {
	return &Orchestrator{
		provider: provider,
		prompts:  promptManager,
		sessions: sessions,
		logger:   logger,
	}
}

// OpeningTurn is the result of starting an interview.
type OpeningTurn struct {
	SessionID string
	Message   string
	Metadata  models.GenerationMetadata
}

// StartInterview creates a session and asks the provider for an opening
// question. When the provider call fails the session is deliberately kept:
// the caller can resume it via ContinueTurn with an empty history, or
// discard it.
func (o *Orchestrator) StartInterview(ctx context.Context, userID, category, difficulty, requestID string) (*OpeningTurn, error) {
	if !models.SupportedCategories[category] {
		return nil, ErrInvalidCategory
	}
	if !models.ValidDifficulties[difficulty] {
		return nil, ErrInvalidDifficulty
	}

	session, err := o.sessions.Create(ctx, userID, models.SessionTypeMockInterview)
	if err != nil {
		return nil, err
	}

	prompt, err := o.prompts.BuildPrompt("interview", difficulty, map[string]string{
		"Category":   category,
		"Difficulty": difficulty,
	})
	if err != nil {
		return nil, err
	}

	generated, err := o.provider.GenerateContent(ctx, prompt, requestID)
	if err != nil {
		o.logger.Warn("opening question generation failed, session kept",
			zap.String("session_id", session.ID),
			zap.String("request_id", requestID),
			zap.Error(err))
		return nil, err
	}

	return &OpeningTurn{
		SessionID: session.ID,
		Message:   generated.Content,
		Metadata:  generated.Metadata,
	}, nil
}

// ContinueTurn forwards the caller-supplied history plus the new candidate
// message and returns the interviewer's reply. History order is preserved
// exactly; nothing is persisted and the turn is not scored.
func (o *Orchestrator) ContinueTurn(ctx context.Context, sessionID string, history []models.ChatMessage, message, requestID string) (*models.GenerationResponse, error) {
	if _, err := o.sessions.FindByID(ctx, sessionID); err != nil {
		return nil, err
	}

	turns := make([]models.ChatMessage, 0, len(history)+1)
	turns = append(turns, history...)
	turns = append(turns, models.ChatMessage{
		Role:    models.RoleCandidate,
		Content: message,
	})

	return o.provider.GenerateChat(ctx, turns, requestID)
}
