package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"caretranslate/internal/app"
	"caretranslate/internal/config"
	"caretranslate/internal/core"
	"caretranslate/internal/dictionary"
	"caretranslate/internal/format"
	httpserver "caretranslate/internal/http"
	"caretranslate/internal/llm"
	"caretranslate/internal/translate"
)

func main() {
	if err := run(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	logger := config.NewLogger(cfg.Log, os.Stderr)
	slog.SetDefault(logger)

	lc := app.NewLifecycle(cfg.Server.ShutdownTimeout)

	slot, closeSlot, err := app.OpenSlot(ctx, cfg.Storage)
	if err != nil {
		return fmt.Errorf("open storage: %w", err)
	}
	lc.AddShutdownHook(func(context.Context) error { return closeSlot() })

	dict := dictionary.New(ctx, slot,
		dictionary.WithKey(cfg.Storage.Key),
		dictionary.WithLogger(logger),
	)

	llmClient := llm.NewOpenAIClient(llm.Config{
		APIKey:      cfg.LLM.APIKey,
		BaseURL:     cfg.LLM.BaseURL,
		Model:       cfg.LLM.Model,
		Temperature: cfg.LLM.Temperature,
	})
	explainer := core.NewExplainer(llmClient, core.TokenLimits{
		Medical:  cfg.LLM.MedicalMaxTokens,
		Cultural: cfg.LLM.CulturalMaxTokens,
		Kids:     cfg.LLM.KidsMaxTokens,
	}, logger)
	translator := translate.NewGoogleClient(translate.Config{
		APIKey:  cfg.Translate.APIKey,
		BaseURL: cfg.Translate.BaseURL,
		Timeout: cfg.Translate.Timeout,
	})

	srv, err := httpserver.NewServer(dict, explainer, translator, format.New(), logger)
	if err != nil {
		return fmt.Errorf("construct server: %w", err)
	}
	if p, ok := slot.(httpserver.Pinger); ok {
		srv.AddHealthCheck("storage", p)
	}

	handler := httpserver.Chain(
		httpserver.Recovery(logger),
		httpserver.RequestID,
		httpserver.Logger(logger),
		httpserver.CORS(cfg.CORS),
	)(srv)

	httpSrv := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}
	lc.AddShutdownHook(httpSrv.Shutdown)

	return lc.Run(ctx, func(context.Context) error {
		logger.Info("listening",
			slog.String("addr", httpSrv.Addr),
			slog.String("storage", cfg.Storage.Driver),
			slog.Int("entries", len(dict.All())),
		)
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
}
