package handlers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"interviewpro/api/internal/middleware"
	"interviewpro/api/internal/models"
	"interviewpro/api/internal/store"
	"interviewpro/api/internal/utils"
)

type QuestionHandler struct {
	questions store.QuestionStore
	logger    *zap.Logger
}

func NewQuestionHandler(questions store.QuestionStore, logger *zap.Logger) *QuestionHandler {
	return &QuestionHandler{
		questions: questions,
		logger:    logger,
	}
}

func (h *QuestionHandler) ListHandler(w http.ResponseWriter, r *http.Request) {
	category := utils.NormalizeCategory(r.URL.Query().Get("category"))
	difficulty := utils.NormalizeDifficulty(r.URL.Query().Get("difficulty"))

	questions, err := h.questions.List(r.Context(), category, difficulty)
	if err != nil {
		h.logger.Error("failed to list questions", zap.Error(err))
		utils.JSON(w, http.StatusInternalServerError, models.ErrorResponse{
			Code:    "internal_error",
			Message: "Internal server error",
		})
		return
	}

	utils.JSON(w, http.StatusOK, questions)
}

func (h *QuestionHandler) GetHandler(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	question, err := h.questions.FindByID(r.Context(), id)
	if errors.Is(err, store.ErrQuestionNotFound) {
		utils.JSON(w, http.StatusNotFound, models.ErrorResponse{
			Code:    "question_not_found",
			Message: "Question not found",
		})
		return
	}
	if err != nil {
		h.logger.Error("failed to load question", zap.String("question_id", id), zap.Error(err))
		utils.JSON(w, http.StatusInternalServerError, models.ErrorResponse{
			Code:    "internal_error",
			Message: "Internal server error",
		})
		return
	}

	utils.JSON(w, http.StatusOK, question)
}

func (h *QuestionHandler) CreateHandler(w http.ResponseWriter, r *http.Request) {
	req := middleware.GetValidatedRequest[*models.CreateQuestionRequest](r)

	question := &models.Question{
		Category:      req.Category,
		Difficulty:    req.Difficulty,
		QuestionText:  req.QuestionText,
		ExampleInput:  req.ExampleInput,
		ExampleOutput: req.ExampleOutput,
		SolutionCode:  req.SolutionCode,
		Hints:         req.Hints,
	}
	if err := h.questions.Create(r.Context(), question); err != nil {
		h.logger.Error("failed to create question", zap.Error(err))
		utils.JSON(w, http.StatusInternalServerError, models.ErrorResponse{
			Code:    "internal_error",
			Message: "Internal server error",
		})
		return
	}

	utils.JSON(w, http.StatusCreated, question)
}
