package store

import (
	"context"
	"errors"
	"testing"

	"interviewpro/api/internal/models"
	"interviewpro/api/internal/testhelpers"
)

func newQuestionStore(t *testing.T) *GormQuestionStore {
	t.Helper()
	return NewGormQuestionStore(testhelpers.SetupTestDB(t))
}

func TestQuestionCreateAndFind(t *testing.T) {
	s := newQuestionStore(t)
	ctx := context.Background()

	question := &models.Question{
		Category:     "dsa",
		Difficulty:   "easy",
		QuestionText: "reverse a string",
		Hints:        []string{"think about two pointers"},
	}
	if err := s.Create(ctx, question); err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if question.ID == "" {
		t.Fatalf("expected assigned question id")
	}

	found, err := s.FindByID(ctx, question.ID)
	if err != nil {
		t.Fatalf("FindByID failed: %v", err)
	}
	if found.QuestionText != "reverse a string" {
		t.Fatalf("unexpected question: %+v", found)
	}
	if len(found.Hints) != 1 || found.Hints[0] != "think about two pointers" {
		t.Fatalf("expected hints round-tripped, got %+v", found.Hints)
	}

	if _, err := s.FindByID(ctx, "missing"); !errors.Is(err, ErrQuestionNotFound) {
		t.Fatalf("expected ErrQuestionNotFound, got %v", err)
	}
}

func TestQuestionListFilters(t *testing.T) {
	s := newQuestionStore(t)
	ctx := context.Background()

	seed := []models.Question{
		{Category: "dsa", Difficulty: "easy", QuestionText: "q1"},
		{Category: "dsa", Difficulty: "hard", QuestionText: "q2"},
		{Category: "javascript", Difficulty: "easy", QuestionText: "q3"},
	}
	for i := range seed {
		if err := s.Create(ctx, &seed[i]); err != nil {
			t.Fatalf("Create failed: %v", err)
		}
	}

	all, err := s.List(ctx, "", "")
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("expected 3 questions, got %d", len(all))
	}

	dsa, err := s.List(ctx, "dsa", "")
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(dsa) != 2 {
		t.Fatalf("expected 2 dsa questions, got %d", len(dsa))
	}

	easyDsa, err := s.List(ctx, "dsa", "easy")
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(easyDsa) != 1 || easyDsa[0].QuestionText != "q1" {
		t.Fatalf("expected only q1, got %+v", easyDsa)
	}
}
