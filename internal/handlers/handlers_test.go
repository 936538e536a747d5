package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"

	"interviewpro/api/internal/analytics"
	"interviewpro/api/internal/interview"
	"interviewpro/api/internal/llm"
	"interviewpro/api/internal/middleware"
	"interviewpro/api/internal/models"
	"interviewpro/api/internal/prompts"
	"interviewpro/api/internal/store"
	"interviewpro/api/internal/testhelpers"
)

const testJWTSecret = "test-secret"

type mockProvider struct {
	generateContentFn func(ctx context.Context, prompt string, requestID string) (*models.GenerationResponse, error)
	generateChatFn    func(ctx context.Context, history []models.ChatMessage, requestID string) (*models.GenerationResponse, error)
}

func (m *mockProvider) GenerateContent(ctx context.Context, prompt string, requestID string) (*models.GenerationResponse, error) {
	if m.generateContentFn == nil {
		return &models.GenerationResponse{Content: "mock content"}, nil
	}
	return m.generateContentFn(ctx, prompt, requestID)
}

func (m *mockProvider) GenerateChat(ctx context.Context, history []models.ChatMessage, requestID string) (*models.GenerationResponse, error) {
	if m.generateChatFn == nil {
		return &models.GenerationResponse{Content: "mock reply"}, nil
	}
	return m.generateChatFn(ctx, history, requestID)
}

func (m *mockProvider) GetProviderName() string {
	return "mock"
}

// newInterviewRouter wires the interview routes the same way the server does,
// backed by an in-memory database and the given provider.
func newInterviewRouter(t *testing.T, provider llm.Provider) (*chi.Mux, *store.GormSessionStore) {
	t.Helper()

	sessions := store.NewGormSessionStore(testhelpers.SetupTestDB(t))
	promptManager, err := prompts.NewPromptManager()
	if err != nil {
		t.Fatalf("NewPromptManager failed: %v", err)
	}

	logger := zap.NewNop()
	orchestrator := interview.NewOrchestrator(provider, promptManager, sessions, logger)
	evaluator := interview.NewEvaluator(provider, promptManager, sessions, logger)
	aggregator := analytics.NewAggregator(sessions, time.Minute)
	handler := NewInterviewHandler(orchestrator, evaluator, aggregator, logger)

	router := chi.NewRouter()
	router.Route("/api/v1/interview", func(r chi.Router) {
		r.Use(middleware.Authenticate(testJWTSecret))
		r.With(middleware.ValidateRequest[*models.StartInterviewRequest]()).Post("/start", handler.StartHandler)
		r.With(middleware.ValidateRequest[*models.ChatRequest]()).Post("/chat", handler.ChatHandler)
		r.With(middleware.ValidateRequest[*models.EvaluateRequest]()).Post("/evaluate", handler.EvaluateHandler)
		r.Get("/analytics", handler.AnalyticsHandler)
	})
	return router, sessions
}

func signTestToken(t *testing.T, userID string) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"sub": userID}).SignedString([]byte(testJWTSecret))
	if err != nil {
		t.Fatalf("failed to sign token: %v", err)
	}
	return token
}

// authedJSON posts the body as user-1 and returns the recorded response.
func authedJSON(t *testing.T, router http.Handler, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("failed to encode body: %v", err)
		}
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+signTestToken(t, "user-1"))

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	return recorder
}

func decodeBody[T any](t *testing.T, recorder *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	if err := json.NewDecoder(recorder.Body).Decode(&out); err != nil {
		t.Fatalf("failed to decode response body %q: %v", recorder.Body.String(), err)
	}
	return out
}
