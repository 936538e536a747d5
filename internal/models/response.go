package models

// returned by /interview/start
type StartInterviewResponse struct {
	SessionID string             `json:"sessionId"`
	Message   string             `json:"message"`
	RequestID string             `json:"request_id"`
	Metadata  GenerationMetadata `json:"metadata"`
}

// returned by /interview/chat
type ChatResponse struct {
	Message   string             `json:"message"`
	RequestID string             `json:"request_id"`
	Metadata  GenerationMetadata `json:"metadata"`
}

// returned by /interview/evaluate
type EvaluationResponse struct {
	Score     float64 `json:"score"`
	Feedback  string  `json:"feedback"`
	RequestID string  `json:"request_id"`
}

// raw provider output plus call metadata
type GenerationResponse struct {
	Content   string             `json:"content"`
	RequestID string             `json:"request_id"`
	Metadata  GenerationMetadata `json:"metadata"`
}

// additional information about a provider call
type GenerationMetadata struct {
	ProcessingTime int    `json:"processing_time_ms"`
	Provider       string `json:"provider"`
	Model          string `json:"model"`
}

// returned by /interview/analytics
type AnalyticsResponse struct {
	TotalSessions int          `json:"totalSessions"`
	AverageScore  float64      `json:"averageScore"`
	Sessions      []TrendPoint `json:"sessions"`
}

// one charted session in the recent trend
type TrendPoint struct {
	Label string  `json:"label"`
	Score float64 `json:"score"`
	Type  string  `json:"type"`
}

// uniform error responses
type ErrorResponse struct {
	Code    string                  `json:"code"`
	Message string                  `json:"message"`
	Details []ValidationErrorDetail `json:"details,omitempty"`
}

// single field validation error
type ValidationErrorDetail struct {
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

// ErrorResponse doubles as the error type returned by request validation
func (e *ErrorResponse) Error() string {
	return e.Message
}
