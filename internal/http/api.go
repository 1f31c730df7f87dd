package http

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"

	"caretranslate/internal/core"
	"caretranslate/internal/translate"
	"caretranslate/pkg"
)

const (
	maxBodyBytes   = 1 << 20
	maxImportBytes = 10 << 20
)

// fieldMessages replaces the generic message for fields with range rules.
var fieldMessages = map[string]string{
	"ComplexityLevel": "complexity level must be between 1 and 5",
	"Complexity":      "complexity level must be between 1 and 5",
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, pkg.ErrorResponse{Error: msg})
}

// bind decodes and validates a JSON body. On failure it writes a 400 with
// required as the message, unless a more specific one applies.
func (s *Server) bind(w http.ResponseWriter, r *http.Request, dst any, required string) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return false
	}
	if err := s.validate.Struct(dst); err != nil {
		msg := required
		var ve validator.ValidationErrors
		if errors.As(err, &ve) {
			for _, fe := range ve {
				if m, ok := fieldMessages[fe.StructField()]; ok && fe.Tag() != "required" {
					msg = m
				}
			}
		}
		writeError(w, http.StatusBadRequest, msg)
		return false
	}
	return true
}

// writeServiceError maps validation failures to 400 and everything else to 500.
func (s *Server) writeServiceError(ctx context.Context, w http.ResponseWriter, op string, err error) {
	status := http.StatusInternalServerError
	if errors.Is(err, core.ErrValidation) {
		status = http.StatusBadRequest
	} else {
		s.log.ErrorContext(ctx, op+" failed", slog.String("error", err.Error()))
	}
	writeError(w, status, err.Error())
}

func (s *Server) handleMedical(w http.ResponseWriter, r *http.Request) {
	var req pkg.MedicalRequest
	if !s.bind(w, r, &req, "Prompt is required") {
		return
	}
	result, err := s.Explainer.Medical(r.Context(), req.Prompt, req.ComplexityLevel)
	if err != nil {
		s.writeServiceError(r.Context(), w, "medical translation", err)
		return
	}
	writeJSON(w, http.StatusOK, pkg.ExplainResponse{Success: true, Result: result, Timestamp: s.now().UTC()})
}

func (s *Server) handleCultural(w http.ResponseWriter, r *http.Request) {
	var req pkg.CulturalRequest
	if !s.bind(w, r, &req, "Prompt and cultural background are required") {
		return
	}
	result, err := s.Explainer.Cultural(r.Context(), req.Prompt, req.CulturalBackground)
	if err != nil {
		s.writeServiceError(r.Context(), w, "cultural translation", err)
		return
	}
	writeJSON(w, http.StatusOK, pkg.ExplainResponse{
		Success:            true,
		Result:             result,
		CulturalBackground: req.CulturalBackground,
		Timestamp:          s.now().UTC(),
	})
}

func (s *Server) handleKids(w http.ResponseWriter, r *http.Request) {
	var req pkg.KidsRequest
	if !s.bind(w, r, &req, "Prompt and child age are required") {
		return
	}
	result, err := s.Explainer.Kids(r.Context(), req.Prompt, req.ChildAge)
	if err != nil {
		s.writeServiceError(r.Context(), w, "kids translation", err)
		return
	}
	writeJSON(w, http.StatusOK, pkg.ExplainResponse{
		Success:   true,
		Result:    result,
		ChildAge:  req.ChildAge,
		Timestamp: s.now().UTC(),
	})
}

func (s *Server) handleLanguageTranslate(w http.ResponseWriter, r *http.Request) {
	var req pkg.LanguageTranslateRequest
	if !s.bind(w, r, &req, "Text and target language are required") {
		return
	}
	res, err := s.Translator.Translate(r.Context(), req.Text, req.TargetLanguage, req.SourceLanguage)
	if err != nil {
		s.writeServiceError(r.Context(), w, "language translation", err)
		return
	}
	writeJSON(w, http.StatusOK, pkg.LanguageTranslateResponse{
		Success:                true,
		TranslatedText:         res.TranslatedText,
		DetectedSourceLanguage: res.DetectedSourceLanguage,
		Confidence:             res.Confidence,
		OriginalText:           req.Text,
		TargetLanguage:         req.TargetLanguage,
		Timestamp:              s.now().UTC(),
	})
}

func (s *Server) handleFormat(w http.ResponseWriter, r *http.Request) {
	var req pkg.FormatRequest
	if !s.bind(w, r, &req, "Mode is required") {
		return
	}
	writeJSON(w, http.StatusOK, pkg.FormatResponse{Blocks: s.Formatter.Format(req.Text, req.Mode)})
}

// handleLanguages returns the common medical languages, or the full list from
// the translation API when ?supported=true.
func (s *Server) handleLanguages(w http.ResponseWriter, r *http.Request) {
	if r.URL.Query().Get("supported") != "true" {
		writeJSON(w, http.StatusOK, map[string]any{"languages": translate.CommonMedicalLanguages})
		return
	}
	langs, err := s.Translator.SupportedLanguages(r.Context())
	if err != nil {
		s.writeServiceError(r.Context(), w, "supported languages", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"languages": langs})
}

func (s *Server) handleListEntries(w http.ResponseWriter, r *http.Request) {
	entries := s.Dict.Search(r.URL.Query().Get("q"))
	writeJSON(w, http.StatusOK, pkg.EntriesResponse{Entries: entries, Count: len(entries)})
}

func (s *Server) handleSaveEntry(w http.ResponseWriter, r *http.Request) {
	var req pkg.SaveEntryRequest
	if !s.bind(w, r, &req, "Term and translation are required") {
		return
	}
	entry := s.Dict.Save(r.Context(), req.Term, req.Explanation, req.Category, req.Complexity)
	writeJSON(w, http.StatusCreated, entry)
}

func (s *Server) handleGetEntry(w http.ResponseWriter, r *http.Request, id string) {
	entry, ok := s.Dict.Get(id)
	if !ok {
		writeError(w, http.StatusNotFound, "entry not found")
		return
	}
	writeJSON(w, http.StatusOK, entry)
}

func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Disposition", `attachment; filename="medical-dictionary.json"`)
	_, _ = io.WriteString(w, s.Dict.Export())
}

func (s *Server) handleImport(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxImportBytes))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	ok := s.Dict.Import(r.Context(), string(body))
	status := http.StatusOK
	if !ok {
		status = http.StatusBadRequest
	}
	writeJSON(w, status, pkg.ImportResponse{Success: ok, Count: len(s.Dict.All())})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
	defer cancel()

	resp := pkg.HealthResponse{Status: "ok", Timestamp: s.now().UTC()}
	status := http.StatusOK
	if len(s.checks) > 0 {
		resp.Components = make(map[string]string, len(s.checks))
	}
	for name, p := range s.checks {
		if err := p.Ping(ctx); err != nil {
			s.log.WarnContext(ctx, "health check failed", slog.String("component", name), slog.String("error", err.Error()))
			resp.Components[name] = "down"
			resp.Status = "degraded"
			status = http.StatusServiceUnavailable
			continue
		}
		resp.Components[name] = "ok"
	}
	writeJSON(w, status, resp)
}
