package models

import (
	"strings"

	"interviewpro/api/internal/utils"
)

type StartInterviewRequest struct {
	Category   string `json:"category"`
	Difficulty string `json:"difficulty"`
	RequestID  string `json:"request_id"`
}

// implements the Validator interface
func (r *StartInterviewRequest) Validate() error {
	r.Category = utils.NormalizeCategory(r.Category)
	r.Difficulty = utils.NormalizeDifficulty(r.Difficulty)

	if r.Category == "" {
		return &ErrorResponse{
			Code:    "missing_category",
			Message: "Category field is required",
		}
	}
	if !SupportedCategories[r.Category] {
		return &ErrorResponse{
			Code:    "unsupported_category",
			Message: "Category not supported. Supported categories: " + strings.Join(SupportedCategoriesList(), ", "),
		}
	}

	if r.Difficulty == "" {
		r.Difficulty = "medium"
	}
	if !ValidDifficulties[r.Difficulty] {
		return &ErrorResponse{
			Code:    "invalid_difficulty",
			Message: "Difficulty must be one of: " + strings.Join(ValidDifficultiesList(), ", "),
		}
	}

	return nil
}

type ChatRequest struct {
	SessionID string        `json:"sessionId"`
	Message   string        `json:"message"`
	History   []ChatMessage `json:"history"`
	RequestID string        `json:"request_id"`
}

func (r *ChatRequest) Validate() error {
	if strings.TrimSpace(r.SessionID) == "" {
		return &ErrorResponse{Code: "missing_session_id", Message: "sessionId is required"}
	}
	if strings.TrimSpace(r.Message) == "" {
		return &ErrorResponse{Code: "missing_message", Message: "message is required"}
	}
	for i := range r.History {
		role := utils.NormalizeRole(r.History[i].Role)
		if role != RoleCandidate && role != RoleInterviewer {
			return &ErrorResponse{
				Code:    "invalid_history_role",
				Message: "history roles must be candidate or interviewer",
			}
		}
		r.History[i].Role = role
	}
	return nil
}

type EvaluateRequest struct {
	Question   string `json:"question"`
	UserAnswer string `json:"userAnswer"`
	// optional: when set, the result is appended to the session as an attempt
	SessionID  string `json:"sessionId,omitempty"`
	QuestionID string `json:"questionId,omitempty"`
	RequestID  string `json:"request_id"`
}

func (r *EvaluateRequest) Validate() error {
	if strings.TrimSpace(r.Question) == "" {
		return &ErrorResponse{Code: "missing_question", Message: "question is required"}
	}
	if strings.TrimSpace(r.UserAnswer) == "" {
		return &ErrorResponse{Code: "missing_user_answer", Message: "userAnswer is required"}
	}
	return nil
}

type CreateQuestionRequest struct {
	Category      string   `json:"category"`
	Difficulty    string   `json:"difficulty"`
	QuestionText  string   `json:"questionText"`
	ExampleInput  string   `json:"exampleInput"`
	ExampleOutput string   `json:"exampleOutput"`
	SolutionCode  string   `json:"solutionCode"`
	Hints         []string `json:"hints"`
}

func (r *CreateQuestionRequest) Validate() error {
	r.Category = utils.NormalizeCategory(r.Category)
	r.Difficulty = utils.NormalizeDifficulty(r.Difficulty)

	if !SupportedCategories[r.Category] {
		return &ErrorResponse{Code: "unsupported_category", Message: "Category not supported"}
	}
	if r.Difficulty == "" {
		r.Difficulty = "medium"
	}
	if !ValidDifficulties[r.Difficulty] {
		return &ErrorResponse{Code: "invalid_difficulty", Message: "Difficulty must be one of: easy, medium, hard"}
	}
	if strings.TrimSpace(r.QuestionText) == "" {
		return &ErrorResponse{Code: "missing_question_text", Message: "questionText is required"}
	}
	return nil
}
