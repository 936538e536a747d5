package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"interviewpro/api/internal/models"
)

func validationProbe() (http.Handler, **models.StartInterviewRequest) {
	var seen *models.StartInterviewRequest
	handler := ValidateRequest[*models.StartInterviewRequest]()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = GetValidatedRequest[*models.StartInterviewRequest](r)
		w.WriteHeader(http.StatusOK)
	}))
	return handler, &seen
}

func TestValidateRequest(t *testing.T) {
	handler, seen := validationProbe()

	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"category": "  DSA  ", "difficulty": ""}`))
	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, req)

	if recorder.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", recorder.Code, recorder.Body.String())
	}
	if *seen == nil {
		t.Fatalf("expected validated request in context")
	}
	if (*seen).Category != "dsa" {
		t.Fatalf("expected normalized category, got %q", (*seen).Category)
	}
	if (*seen).Difficulty != "medium" {
		t.Fatalf("expected default difficulty, got %q", (*seen).Difficulty)
	}
}

func TestValidateRequestInvalidJSON(t *testing.T) {
	handler, seen := validationProbe()

	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{not json`))
	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, req)

	if recorder.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", recorder.Code)
	}
	if *seen != nil {
		t.Fatalf("handler should not run on invalid JSON")
	}

	var resp models.ErrorResponse
	if err := json.NewDecoder(recorder.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode error body: %v", err)
	}
	if resp.Code != "invalid_json" {
		t.Fatalf("unexpected error code: %+v", resp)
	}
}

func TestValidateRequestValidationFailure(t *testing.T) {
	handler, seen := validationProbe()

	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"category": "cobol"}`))
	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, req)

	if recorder.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", recorder.Code)
	}
	if *seen != nil {
		t.Fatalf("handler should not run on validation failure")
	}

	var resp models.ErrorResponse
	if err := json.NewDecoder(recorder.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode error body: %v", err)
	}
	if resp.Code != "unsupported_category" {
		t.Fatalf("unexpected error code: %+v", resp)
	}
}
