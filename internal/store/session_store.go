package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"interviewpro/api/internal/models"
)

// GormSessionStore persists sessions and attempts in a relational database.
type GormSessionStore struct {
	DB *gorm.DB
}

func NewGormSessionStore(db *gorm.DB) *GormSessionStore {
	return &GormSessionStore{DB: db}
}

func (s *GormSessionStore) Create(ctx context.Context, userID, sessionType string) (*models.InterviewSession, error) {
	if !models.ValidSessionTypes[sessionType] {
		return nil, ErrInvalidSessionType
	}
	session := &models.InterviewSession{
		ID:          uuid.New().String(),
		UserID:      userID,
		SessionType: sessionType,
		TotalScore:  0,
	}
	if err := s.DB.WithContext(ctx).Create(session).Error; err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}
	session.Attempts = []models.Attempt{}
	return session, nil
}

func (s *GormSessionStore) FindByID(ctx context.Context, id string) (*models.InterviewSession, error) {
	var session models.InterviewSession
	err := s.DB.WithContext(ctx).
		Preload("Attempts", func(db *gorm.DB) *gorm.DB { return db.Order("attempts.id ASC") }).
		First(&session, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load session: %w", err)
	}
	return &session, nil
}

// AppendAttempt appends one attempt and bumps the session total in a single
// transaction. The total is updated with an in-database increment so two
// concurrent appends cannot lose each other's score.
func (s *GormSessionStore) AppendAttempt(ctx context.Context, id string, attempt models.Attempt) (*models.InterviewSession, error) {
	if !attempt.ValidScore() {
		return nil, ErrInvalidScore
	}

	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var session models.InterviewSession
		if err := tx.First(&session, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrSessionNotFound
			}
			return err
		}

		attempt.ID = 0
		attempt.SessionID = id
		if err := tx.Create(&attempt).Error; err != nil {
			return err
		}

		return tx.Model(&models.InterviewSession{}).
			Where("id = ?", id).
			Update("total_score", gorm.Expr("total_score + ?", attempt.Score)).Error
	})
	if err != nil {
		if errors.Is(err, ErrSessionNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to append attempt: %w", err)
	}

	return s.FindByID(ctx, id)
}

func (s *GormSessionStore) ListByUser(ctx context.Context, userID string) ([]models.InterviewSession, error) {
	var sessions []models.InterviewSession
	err := s.DB.WithContext(ctx).
		Preload("Attempts", func(db *gorm.DB) *gorm.DB { return db.Order("attempts.id ASC") }).
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&sessions).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list sessions: %w", err)
	}
	return sessions, nil
}

func (s *GormSessionStore) ListCreatedSince(ctx context.Context, since time.Time) ([]models.InterviewSession, error) {
	var sessions []models.InterviewSession
	err := s.DB.WithContext(ctx).
		Preload("Attempts", func(db *gorm.DB) *gorm.DB { return db.Order("attempts.id ASC") }).
		Where("created_at >= ?", since).
		Order("created_at ASC").
		Find(&sessions).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list sessions since %v: %w", since, err)
	}
	return sessions, nil
}
