package core

import (
	"context"
	"sync"

	"caretranslate/internal/llm"
)

// llmClientMock is a hand-written mock of llm.Client in the moq style.
type llmClientMock struct {
	GenerateFunc func(ctx context.Context, req llm.GenerateRequest) (string, error)

	mu    sync.RWMutex
	calls []llm.GenerateRequest
}

func (m *llmClientMock) Generate(ctx context.Context, req llm.GenerateRequest) (string, error) {
	if m.GenerateFunc == nil {
		panic("llmClientMock.GenerateFunc: method is nil but Generate was just called")
	}
	m.mu.Lock()
	m.calls = append(m.calls, req)
	m.mu.Unlock()
	return m.GenerateFunc(ctx, req)
}

func (m *llmClientMock) GenerateCalls() []llm.GenerateRequest {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]llm.GenerateRequest(nil), m.calls...)
}
