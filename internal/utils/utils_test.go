package utils

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestNormalizeHelpers(t *testing.T) {
	t.Helper()

	if got := NormalizeCategory("  DSA "); got != "dsa" {
		t.Fatalf("NormalizeCategory: expected dsa, got %s", got)
	}

	if got := NormalizeDifficulty("  Medium "); got != "medium" {
		t.Fatalf("NormalizeDifficulty: expected medium, got %s", got)
	}

	if got := NormalizeRole(" Candidate"); got != "candidate" {
		t.Fatalf("NormalizeRole: expected candidate, got %s", got)
	}
}

func TestStripFences(t *testing.T) {
	input := "```json\n{\"score\":7,\"feedback\":\"ok\"}\n```\n"
	want := `{"score":7,"feedback":"ok"}`

	if got := StripFences(input); got != want {
		t.Fatalf("StripFences: expected %q, got %q", want, got)
	}

	bare := "```\n{\"score\":7}\n```"
	if got := StripFences(bare); got != `{"score":7}` {
		t.Fatalf("StripFences (bare fence): got %q", got)
	}

	raw := "  print('hi')  "
	if got := StripFences(raw); got != "print('hi')" {
		t.Fatalf("StripFences (no fences): expected trimmed string, got %q", got)
	}
}

func TestExtractJSONObject(t *testing.T) {
	text := `Sure, here is the grade: {"score": 7, "feedback": "solid"} hope that helps`
	want := `{"score": 7, "feedback": "solid"}`

	if got := ExtractJSONObject(text); got != want {
		t.Fatalf("ExtractJSONObject: expected %q, got %q", want, got)
	}

	nested := `note {"a": {"b": 1}, "c": "}"} trailing`
	if got := ExtractJSONObject(nested); got != `{"a": {"b": 1}, "c": "}"}` {
		t.Fatalf("ExtractJSONObject (nested): got %q", got)
	}

	if got := ExtractJSONObject("I think this is good"); got != "" {
		t.Fatalf("ExtractJSONObject (no object): expected empty string, got %q", got)
	}

	if got := ExtractJSONObject("unbalanced {\"a\": 1"); got != "" {
		t.Fatalf("ExtractJSONObject (unbalanced): expected empty string, got %q", got)
	}
}

func TestJSONHelpers(t *testing.T) {
	rec := httptest.NewRecorder()
	payload := map[string]string{"hello": "world"}

	JSON(rec, http.StatusCreated, payload)

	if rec.Code != http.StatusCreated {
		t.Fatalf("JSON: expected status %d, got %d", http.StatusCreated, rec.Code)
	}
	if contentType := rec.Header().Get("Content-Type"); contentType != "application/json" {
		t.Fatalf("JSON: expected content-type application/json, got %s", contentType)
	}

	var got map[string]string
	if err := json.NewDecoder(rec.Body).Decode(&got); err != nil {
		t.Fatalf("JSON decode failed: %v", err)
	}
	if got["hello"] != "world" {
		t.Fatalf("JSON body mismatch: %+v", got)
	}

	rec2 := httptest.NewRecorder()
	WriteJSON(rec2, http.StatusAccepted, payload)

	if rec2.Code != http.StatusAccepted {
		t.Fatalf("WriteJSON: expected status %d, got %d", http.StatusAccepted, rec2.Code)
	}

	if !strings.Contains(rec2.Body.String(), `"hello":"world"`) {
		t.Fatalf("WriteJSON: expected body to contain payload, got %s", rec2.Body.String())
	}
}
