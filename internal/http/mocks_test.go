package http

import (
	"context"
	"strconv"
	"sync"

	"caretranslate/internal/translate"
)

type explainCall struct {
	Mode   string
	Prompt string
	Option string
}

// explainerMock is a moq-style mock of Explainer.
type explainerMock struct {
	GenerateFunc func(mode, prompt, option string) (string, error)

	mu    sync.RWMutex
	calls []explainCall
}

func (m *explainerMock) record(mode, prompt, option string) (string, error) {
	m.mu.Lock()
	m.calls = append(m.calls, explainCall{Mode: mode, Prompt: prompt, Option: option})
	m.mu.Unlock()
	if m.GenerateFunc == nil {
		panic("explainerMock.GenerateFunc: method is nil but was just called")
	}
	return m.GenerateFunc(mode, prompt, option)
}

func (m *explainerMock) Medical(_ context.Context, prompt string, complexity int) (string, error) {
	return m.record("medical", prompt, strconv.Itoa(complexity))
}

func (m *explainerMock) Cultural(_ context.Context, prompt, background string) (string, error) {
	return m.record("cultural", prompt, background)
}

func (m *explainerMock) Kids(_ context.Context, prompt, childAge string) (string, error) {
	return m.record("kids", prompt, childAge)
}

func (m *explainerMock) Calls() []explainCall {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]explainCall(nil), m.calls...)
}

// translatorMock is a moq-style mock of Translator.
type translatorMock struct {
	TranslateFunc          func(ctx context.Context, text, target, source string) (translate.Result, error)
	SupportedLanguagesFunc func(ctx context.Context) ([]translate.Language, error)
}

func (m *translatorMock) Translate(ctx context.Context, text, target, source string) (translate.Result, error) {
	if m.TranslateFunc == nil {
		panic("translatorMock.TranslateFunc: method is nil but Translate was just called")
	}
	return m.TranslateFunc(ctx, text, target, source)
}

func (m *translatorMock) SupportedLanguages(ctx context.Context) ([]translate.Language, error) {
	if m.SupportedLanguagesFunc == nil {
		panic("translatorMock.SupportedLanguagesFunc: method is nil but SupportedLanguages was just called")
	}
	return m.SupportedLanguagesFunc(ctx)
}

type pingerFunc func(ctx context.Context) error

func (f pingerFunc) Ping(ctx context.Context) error { return f(ctx) }
