package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"interviewpro/api/internal/models"
)

type GormQuestionStore struct {
	DB *gorm.DB
}

func NewGormQuestionStore(db *gorm.DB) *GormQuestionStore {
	return &GormQuestionStore{DB: db}
}

func (s *GormQuestionStore) Create(ctx context.Context, question *models.Question) error {
	if question.ID == "" {
		question.ID = uuid.New().String()
	}
	if err := s.DB.WithContext(ctx).Create(question).Error; err != nil {
		return fmt.Errorf("failed to create question: %w", err)
	}
	return nil
}

func (s *GormQuestionStore) FindByID(ctx context.Context, id string) (*models.Question, error) {
	var question models.Question
	err := s.DB.WithContext(ctx).First(&question, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrQuestionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load question: %w", err)
	}
	return &question, nil
}

func (s *GormQuestionStore) List(ctx context.Context, category, difficulty string) ([]models.Question, error) {
	query := s.DB.WithContext(ctx).Model(&models.Question{})
	if category != "" {
		query = query.Where("category = ?", category)
	}
	if difficulty != "" {
		query = query.Where("difficulty = ?", difficulty)
	}

	var questions []models.Question
	if err := query.Order("created_at ASC").Find(&questions).Error; err != nil {
		return nil, fmt.Errorf("failed to list questions: %w", err)
	}
	return questions, nil
}
