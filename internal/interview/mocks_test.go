package interview

import (
	"context"

	"interviewpro/api/internal/models"
)

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

type mockPromptManager struct {
	buildPromptFn func(mode, variant string, data map[string]string) (string, error)
}

func (m *mockPromptManager) BuildPrompt(mode, variant string, data map[string]string) (string, error) {
	if m.buildPromptFn == nil {
		return "mock prompt", nil
	}
	return m.buildPromptFn(mode, variant, data)
}

func (m *mockPromptManager) Modes() []string {
	return []string{"evaluate", "interview"}
}
