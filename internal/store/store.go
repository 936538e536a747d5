package store

import (
	"context"
	"errors"
	"time"

	"interviewpro/api/internal/models"
)

var (
	ErrSessionNotFound    = errors.New("session not found")
	ErrQuestionNotFound   = errors.New("question not found")
	ErrInvalidScore       = errors.New("attempt score must be between 0 and 10")
	ErrInvalidSessionType = errors.New("unknown session type")
)

// SessionStore is the durable record of interview sessions. Appends are
// atomic; sessions are never deleted and attempts are never mutated.
type SessionStore interface {
	Create(ctx context.Context, userID, sessionType string) (*models.InterviewSession, error)
	FindByID(ctx context.Context, id string) (*models.InterviewSession, error)
	AppendAttempt(ctx context.Context, id string, attempt models.Attempt) (*models.InterviewSession, error)
	ListByUser(ctx context.Context, userID string) ([]models.InterviewSession, error)
	ListCreatedSince(ctx context.Context, since time.Time) ([]models.InterviewSession, error)
}

// QuestionStore holds the question catalog.
type QuestionStore interface {
	Create(ctx context.Context, question *models.Question) error
	FindByID(ctx context.Context, id string) (*models.Question, error)
	List(ctx context.Context, category, difficulty string) ([]models.Question, error)
}
