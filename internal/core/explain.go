package core

import (
	"context"
	"log/slog"
	"slices"
	"strings"

	"caretranslate/internal/llm"
)

// Mode tags select the prompt template and formatting rules.
const (
	ModeMedical  = "medical"
	ModeCultural = "cultural"
	ModeKids     = "kids"
)

// DefaultComplexity is used when a medical request leaves complexity unset.
const DefaultComplexity = 3

// TokenLimits caps the generated output per mode.
type TokenLimits struct {
	Medical  int
	Cultural int
	Kids     int
}

// DefaultTokenLimits mirrors the limits the prompts were tuned with.
var DefaultTokenLimits = TokenLimits{Medical: 600, Cultural: 650, Kids: 600}

// Explainer builds mode-specific prompts and sends them to the LLM. Failed
// calls are not retried.
type Explainer struct {
	LLM    llm.Client
	Limits TokenLimits
	log    *slog.Logger
}

// NewExplainer constructs an Explainer with the given LLM client.
func NewExplainer(client llm.Client, limits TokenLimits, logger *slog.Logger) *Explainer {
	return &Explainer{LLM: client, Limits: limits, log: logger.With("component", "explainer")}
}

// Medical explains prompt in plain language. A zero complexity means
// DefaultComplexity; otherwise it must be between 1 and 5.
func (e *Explainer) Medical(ctx context.Context, prompt string, complexity int) (string, error) {
	if strings.TrimSpace(prompt) == "" {
		return "", NewValidationError("prompt", "prompt is required")
	}
	if complexity == 0 {
		complexity = DefaultComplexity
	}
	if complexity < 1 || complexity > 5 {
		return "", NewValidationError("complexityLevel", "complexity level must be between 1 and 5")
	}
	return e.generate(ctx, ModeMedical, llm.GenerateRequest{
		System:    MedicalPrompt(complexity),
		Prompt:    prompt,
		MaxTokens: e.Limits.Medical,
	}, "failed to generate medical translation")
}

// Cultural explains prompt for a patient from background.
func (e *Explainer) Cultural(ctx context.Context, prompt, background string) (string, error) {
	if strings.TrimSpace(prompt) == "" || background == "" {
		return "", NewValidationError("culturalBackground", "prompt and cultural background are required")
	}
	c, ok := CulturalContexts[background]
	if !ok {
		return "", ErrUnsupportedBackground
	}
	return e.generate(ctx, ModeCultural, llm.GenerateRequest{
		System:    CulturalPrompt(background, c),
		Prompt:    prompt,
		MaxTokens: e.Limits.Cultural,
	}, "failed to generate culturally-aware response")
}

// Kids explains prompt for a child in the childAge bracket.
func (e *Explainer) Kids(ctx context.Context, prompt, childAge string) (string, error) {
	if strings.TrimSpace(prompt) == "" || childAge == "" {
		return "", NewValidationError("childAge", "prompt and child age are required")
	}
	if !slices.Contains(ChildAges, childAge) {
		return "", ErrUnsupportedAge
	}
	return e.generate(ctx, ModeKids, llm.GenerateRequest{
		System:    KidsPrompt(childAge),
		Prompt:    prompt,
		MaxTokens: e.Limits.Kids,
	}, "failed to generate kid-friendly explanation")
}

func (e *Explainer) generate(ctx context.Context, mode string, req llm.GenerateRequest, failure string) (string, error) {
	out, err := e.LLM.Generate(ctx, req)
	if err != nil {
		e.log.ErrorContext(ctx, "generation failed", slog.String("mode", mode), slog.String("error", err.Error()))
		return "", &GenerationError{Mode: mode, Message: failure, Err: err}
	}
	return out, nil
}
