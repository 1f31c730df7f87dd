package translate

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
)

// DefaultBaseURL is the Google Cloud Translation v2 endpoint.
const DefaultBaseURL = "https://translation.googleapis.com/language/translate/v2"

var (
	// ErrNotConfigured is returned when no API key was provided.
	ErrNotConfigured = errors.New("google translate API key not configured")
	// ErrNoTranslation is returned when the API answers without a translation.
	ErrNoTranslation = errors.New("no translation returned from Google Translate API")
)

// Result is a single translation.
type Result struct {
	TranslatedText         string  `json:"translatedText"`
	DetectedSourceLanguage string  `json:"detectedSourceLanguage,omitempty"`
	Confidence             float64 `json:"confidence,omitempty"`
}

// Language is an entry of the supported languages list.
type Language struct {
	Code string `json:"language"`
	Name string `json:"name"`
}

type Config struct {
	APIKey  string
	BaseURL string
	Timeout time.Duration
}

// GoogleClient talks to the Translation v2 REST API.
type GoogleClient struct {
	config Config
	client *resty.Client
}

func NewGoogleClient(config Config) *GoogleClient {
	if config.BaseURL == "" {
		config.BaseURL = DefaultBaseURL
	}
	client := resty.New()
	if config.Timeout > 0 {
		client.SetTimeout(config.Timeout)
	}
	return &GoogleClient{config: config, client: client}
}

type translateRequest struct {
	Q      string `json:"q"`
	Target string `json:"target"`
	Source string `json:"source,omitempty"`
	Format string `json:"format"`
}

type translateResponse struct {
	Data struct {
		Translations []Result `json:"translations"`
	} `json:"data"`
}

type apiError struct {
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
}

// Translate translates text into target. An empty or "auto" source lets the
// API detect the source language.
func (c *GoogleClient) Translate(ctx context.Context, text, target, source string) (Result, error) {
	result, err := c.translate(ctx, text, target, source)
	if err != nil {
		return Result{}, fmt.Errorf("translation failed: %w", err)
	}
	return result, nil
}

func (c *GoogleClient) translate(ctx context.Context, text, target, source string) (Result, error) {
	if c.config.APIKey == "" {
		return Result{}, ErrNotConfigured
	}
	if source == "auto" {
		source = ""
	}

	var body translateResponse
	var failure apiError
	res, err := c.client.R().
		SetContext(ctx).
		SetQueryParam("key", c.config.APIKey).
		SetBody(translateRequest{Q: text, Target: target, Source: source, Format: "text"}).
		SetResult(&body).
		SetError(&failure).
		Post(c.config.BaseURL)
	if err != nil {
		return Result{}, fmt.Errorf("client.R.Post > %w", err)
	}
	if res.StatusCode() != http.StatusOK {
		msg := failure.Error.Message
		if msg == "" {
			msg = http.StatusText(res.StatusCode())
		}
		return Result{}, fmt.Errorf("google translate API error: %s", msg)
	}
	if len(body.Data.Translations) == 0 {
		return Result{}, ErrNoTranslation
	}
	return body.Data.Translations[0], nil
}

type languagesResponse struct {
	Data struct {
		Languages []Language `json:"languages"`
	} `json:"data"`
}

// SupportedLanguages lists the languages the API can translate into, with
// English display names.
func (c *GoogleClient) SupportedLanguages(ctx context.Context) ([]Language, error) {
	if c.config.APIKey == "" {
		return nil, ErrNotConfigured
	}
	var body languagesResponse
	res, err := c.client.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{"key": c.config.APIKey, "target": "en"}).
		SetResult(&body).
		Get(c.config.BaseURL + "/languages")
	if err != nil {
		return nil, fmt.Errorf("client.R.Get > %w", err)
	}
	if res.StatusCode() != http.StatusOK {
		return nil, fmt.Errorf("failed to fetch supported languages: %s", http.StatusText(res.StatusCode()))
	}
	return body.Data.Languages, nil
}
