package handlers

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"interviewpro/api/internal/analytics"
	"interviewpro/api/internal/interview"
	"interviewpro/api/internal/llm"
	"interviewpro/api/internal/middleware"
	"interviewpro/api/internal/models"
	"interviewpro/api/internal/store"
	"interviewpro/api/internal/utils"
)

type InterviewHandler struct {
	orchestrator *interview.Orchestrator
	evaluator    *interview.Evaluator
	aggregator   *analytics.Aggregator
	logger       *zap.Logger
}

func NewInterviewHandler(orchestrator *interview.Orchestrator, evaluator *interview.Evaluator, aggregator *analytics.Aggregator, logger *zap.Logger) *InterviewHandler {
	return &InterviewHandler{
		orchestrator: orchestrator,
		evaluator:    evaluator,
		aggregator:   aggregator,
		logger:       logger,
	}
}

func (h *InterviewHandler) StartHandler(w http.ResponseWriter, r *http.Request) {
	req := middleware.GetValidatedRequest[*models.StartInterviewRequest](r)
	req.RequestID = ensureRequestID(req.RequestID)
	userID := middleware.GetUserID(r)

	opening, err := h.orchestrator.StartInterview(r.Context(), userID, req.Category, req.Difficulty, req.RequestID)
	if err != nil {
		h.writeError(w, req.RequestID, err)
		return
	}

	h.logger.Info("interview started",
		zap.String("request_id", req.RequestID),
		zap.String("session_id", opening.SessionID),
		zap.String("category", req.Category),
		zap.String("difficulty", req.Difficulty))

	utils.JSON(w, http.StatusCreated, models.StartInterviewResponse{
		SessionID: opening.SessionID,
		Message:   opening.Message,
		RequestID: req.RequestID,
		Metadata:  opening.Metadata,
	})
}

func (h *InterviewHandler) ChatHandler(w http.ResponseWriter, r *http.Request) {
	req := middleware.GetValidatedRequest[*models.ChatRequest](r)
	req.RequestID = ensureRequestID(req.RequestID)

	reply, err := h.orchestrator.ContinueTurn(r.Context(), req.SessionID, req.History, req.Message, req.RequestID)
	if err != nil {
		h.writeError(w, req.RequestID, err)
		return
	}

	utils.JSON(w, http.StatusOK, models.ChatResponse{
		Message:   reply.Content,
		RequestID: req.RequestID,
		Metadata:  reply.Metadata,
	})
}

func (h *InterviewHandler) EvaluateHandler(w http.ResponseWriter, r *http.Request) {
	req := middleware.GetValidatedRequest[*models.EvaluateRequest](r)
	req.RequestID = ensureRequestID(req.RequestID)

	var evaluation *interview.Evaluation
	var err error
	if req.SessionID != "" {
		evaluation, err = h.evaluator.EvaluateAndRecord(r.Context(), req.SessionID, req.QuestionID, req.Question, req.UserAnswer, req.RequestID)
	} else {
		evaluation, err = h.evaluator.Evaluate(r.Context(), req.Question, req.UserAnswer, req.RequestID)
	}
	if err != nil {
		h.writeError(w, req.RequestID, err)
		return
	}

	if req.SessionID != "" {
		// a new attempt changes the user's aggregates
		h.aggregator.Invalidate(middleware.GetUserID(r))
	}

	h.logger.Info("answer evaluated",
		zap.String("request_id", req.RequestID),
		zap.Float64("score", evaluation.Score))

	utils.JSON(w, http.StatusOK, models.EvaluationResponse{
		Score:     evaluation.Score,
		Feedback:  evaluation.Feedback,
		RequestID: req.RequestID,
	})
}

func (h *InterviewHandler) AnalyticsHandler(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r)

	summary, err := h.aggregator.Summarize(r.Context(), userID)
	if err != nil {
		h.writeError(w, "", err)
		return
	}

	utils.JSON(w, http.StatusOK, summary)
}

// maps internal errors to status codes; the detailed cause is only logged
func (h *InterviewHandler) writeError(w http.ResponseWriter, requestID string, err error) {
	var providerErr *llm.ProviderError

	switch {
	case errors.Is(err, store.ErrSessionNotFound):
		utils.JSON(w, http.StatusNotFound, models.ErrorResponse{
			Code:    "session_not_found",
			Message: "Session not found",
		})
	case errors.Is(err, interview.ErrEvaluationParse):
		h.logger.Error("evaluation parse error", zap.String("request_id", requestID), zap.Error(err))
		utils.JSON(w, http.StatusInternalServerError, models.ErrorResponse{
			Code:    "evaluation_parse_error",
			Message: "Could not extract a valid evaluation from the AI response",
		})
	case errors.Is(err, store.ErrInvalidScore),
		errors.Is(err, interview.ErrInvalidCategory),
		errors.Is(err, interview.ErrInvalidDifficulty):
		utils.JSON(w, http.StatusBadRequest, models.ErrorResponse{
			Code:    "validation_error",
			Message: err.Error(),
		})
	case errors.As(err, &providerErr):
		h.logger.Error("AI provider error", zap.String("request_id", requestID), zap.Error(err))
		utils.JSON(w, http.StatusInternalServerError, models.ErrorResponse{
			Code:    "ai_error",
			Message: "AI provider request failed",
		})
	default:
		h.logger.Error("internal error", zap.String("request_id", requestID), zap.Error(err))
		utils.JSON(w, http.StatusInternalServerError, models.ErrorResponse{
			Code:    "internal_error",
			Message: "Internal server error",
		})
	}
}

func generateRequestID() string {
	return uuid.New().String()
}

// ensureRequestID generates a request ID if one is not provided
func ensureRequestID(requestID string) string {
	if requestID == "" {
		return generateRequestID()
	}
	return requestID
}
