package pkg

import (
	"time"

	"caretranslate/internal/dictionary"
	"caretranslate/internal/format"
)

// MedicalRequest asks for a plain-language explanation of medical text.
// A zero ComplexityLevel means the default level.
type MedicalRequest struct {
	Prompt          string `json:"prompt"          validate:"required"`
	ComplexityLevel int    `json:"complexityLevel" validate:"omitempty,min=1,max=5"`
}

// CulturalRequest asks for an explanation tailored to a cultural background.
type CulturalRequest struct {
	Prompt             string `json:"prompt"             validate:"required"`
	CulturalBackground string `json:"culturalBackground" validate:"required"`
}

// KidsRequest asks for an explanation a child in ChildAge can follow.
type KidsRequest struct {
	Prompt   string `json:"prompt"   validate:"required"`
	ChildAge string `json:"childAge" validate:"required"`
}

// ExplainResponse carries generated text back to the caller.
type ExplainResponse struct {
	Success            bool      `json:"success"`
	Result             string    `json:"result"`
	CulturalBackground string    `json:"culturalBackground,omitempty"`
	ChildAge           string    `json:"childAge,omitempty"`
	Timestamp          time.Time `json:"timestamp"`
}

// LanguageTranslateRequest asks for a machine translation. An empty or
// "auto" SourceLanguage lets the service detect it.
type LanguageTranslateRequest struct {
	Text           string `json:"text"           validate:"required"`
	TargetLanguage string `json:"targetLanguage" validate:"required"`
	SourceLanguage string `json:"sourceLanguage"`
}

// LanguageTranslateResponse is the result of a machine translation.
type LanguageTranslateResponse struct {
	Success                bool      `json:"success"`
	TranslatedText         string    `json:"translatedText"`
	DetectedSourceLanguage string    `json:"detectedSourceLanguage,omitempty"`
	Confidence             float64   `json:"confidence,omitempty"`
	OriginalText           string    `json:"originalText"`
	TargetLanguage         string    `json:"targetLanguage"`
	Timestamp              time.Time `json:"timestamp"`
}

// ErrorResponse is the body of every failed API call.
type ErrorResponse struct {
	Error string `json:"error"`
}

// SaveEntryRequest adds a term to the dictionary. Explanation travels under
// the "translation" key like the stored records.
type SaveEntryRequest struct {
	Term        string `json:"term"        validate:"required"`
	Explanation string `json:"translation" validate:"required"`
	Category    string `json:"category"`
	Complexity  *int   `json:"complexity"  validate:"omitempty,min=1,max=5"`
}

// EntriesResponse lists dictionary entries, newest first.
type EntriesResponse struct {
	Entries []dictionary.Entry `json:"entries"`
	Count   int                `json:"count"`
}

// ImportResponse reports whether an import replaced the collection.
type ImportResponse struct {
	Success bool `json:"success"`
	Count   int  `json:"count"`
}

// FormatRequest renders generated text into display blocks.
type FormatRequest struct {
	Text string `json:"text"`
	Mode string `json:"mode" validate:"required"`
}

// FormatResponse holds the rendered blocks.
type FormatResponse struct {
	Blocks []format.Block `json:"blocks"`
}

// HealthResponse is the body of GET /healthz.
type HealthResponse struct {
	Status     string            `json:"status"`
	Components map[string]string `json:"components,omitempty"`
	Timestamp  time.Time         `json:"timestamp"`
}
