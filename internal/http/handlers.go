package http

import (
	"context"
	"embed"
	"html/template"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"caretranslate/internal/dictionary"
	"caretranslate/internal/format"
	"caretranslate/internal/translate"
)

//go:embed templates/*.html
var templateFS embed.FS

// Explainer generates explanations in the three modes.
type Explainer interface {
	Medical(ctx context.Context, prompt string, complexity int) (string, error)
	Cultural(ctx context.Context, prompt, background string) (string, error)
	Kids(ctx context.Context, prompt, childAge string) (string, error)
}

// Translator performs machine translation.
type Translator interface {
	Translate(ctx context.Context, text, target, source string) (translate.Result, error)
	SupportedLanguages(ctx context.Context) ([]translate.Language, error)
}

// Pinger is a dependency that can report its health.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Server bundles together the dependencies required by HTTP handlers. It
// implements http.Handler so it can be wrapped in middleware and passed to
// an http.Server.
type Server struct {
	Dict       *dictionary.Store
	Explainer  Explainer
	Translator Translator
	Formatter  *format.Formatter
	Templates  *template.Template

	validate *validator.Validate
	checks   map[string]Pinger
	log      *slog.Logger
	now      func() time.Time
}

// NewServer constructs a Server and parses the embedded HTML templates.
func NewServer(dict *dictionary.Store, explainer Explainer, translator Translator, formatter *format.Formatter, logger *slog.Logger) (*Server, error) {
	tmpl, err := template.New("").Funcs(template.FuncMap{
		"glyph": format.Glyph,
	}).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, err
	}
	return &Server{
		Dict:       dict,
		Explainer:  explainer,
		Translator: translator,
		Formatter:  formatter,
		Templates:  tmpl,
		validate:   validator.New(validator.WithRequiredStructEnabled()),
		checks:     map[string]Pinger{},
		log:        logger.With("component", "http"),
		now:        time.Now,
	}, nil
}

// AddHealthCheck registers a dependency reported by GET /healthz.
func (s *Server) AddHealthCheck(name string, p Pinger) {
	s.checks[name] = p
}

// ServeHTTP dispatches incoming requests based on the URL path.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	path := r.URL.Path
	switch {
	// HTML page and fragments
	case path == "/" && r.Method == http.MethodGet:
		s.handleIndex(w, r)
	case path == "/explain" && r.Method == http.MethodPost:
		s.handleExplainFragment(w, r)
	case path == "/translate" && r.Method == http.MethodPost:
		s.handleTranslateFragment(w, r)
	case path == "/dictionary":
		switch r.Method {
		case http.MethodGet:
			s.handleDictionaryFragment(w, r)
		case http.MethodPost:
			s.handleSaveFragment(w, r)
		case http.MethodDelete:
			s.Dict.Clear(r.Context())
			s.handleDictionaryFragment(w, r)
		default:
			http.NotFound(w, r)
		}
	case strings.HasPrefix(path, "/dictionary/"):
		id := strings.TrimPrefix(path, "/dictionary/")
		switch {
		case id == "" || strings.Contains(id, "/"):
			http.NotFound(w, r)
		case r.Method == http.MethodGet:
			s.handleEntryFragment(w, r, id)
		case r.Method == http.MethodDelete:
			s.Dict.Remove(r.Context(), id)
			s.handleDictionaryFragment(w, r)
		default:
			http.NotFound(w, r)
		}

	// JSON API
	case path == "/healthz" && r.Method == http.MethodGet:
		s.handleHealth(w, r)
	case path == "/api/medical" && r.Method == http.MethodPost:
		s.handleMedical(w, r)
	case path == "/api/cultural" && r.Method == http.MethodPost:
		s.handleCultural(w, r)
	case path == "/api/kids" && r.Method == http.MethodPost:
		s.handleKids(w, r)
	case path == "/api/language-translate" && r.Method == http.MethodPost:
		s.handleLanguageTranslate(w, r)
	case path == "/api/format" && r.Method == http.MethodPost:
		s.handleFormat(w, r)
	case path == "/api/languages" && r.Method == http.MethodGet:
		s.handleLanguages(w, r)
	case path == "/api/dictionary":
		switch r.Method {
		case http.MethodGet:
			s.handleListEntries(w, r)
		case http.MethodPost:
			s.handleSaveEntry(w, r)
		case http.MethodDelete:
			s.Dict.Clear(r.Context())
			w.WriteHeader(http.StatusNoContent)
		default:
			http.NotFound(w, r)
		}
	case strings.HasPrefix(path, "/api/dictionary/"):
		s.routeDictionaryAPI(w, r, strings.TrimPrefix(path, "/api/dictionary/"))
	default:
		http.NotFound(w, r)
	}
}

func (s *Server) routeDictionaryAPI(w http.ResponseWriter, r *http.Request, rest string) {
	switch {
	case rest == "export" && r.Method == http.MethodGet:
		s.handleExport(w, r)
	case rest == "import" && r.Method == http.MethodPost:
		s.handleImport(w, r)
	case rest == "stats" && r.Method == http.MethodGet:
		writeJSON(w, http.StatusOK, s.Dict.Stats())
	case rest == "" || strings.Contains(rest, "/"):
		http.NotFound(w, r)
	case r.Method == http.MethodGet:
		s.handleGetEntry(w, r, rest)
	case r.Method == http.MethodDelete:
		s.Dict.Remove(r.Context(), rest)
		w.WriteHeader(http.StatusNoContent)
	default:
		http.NotFound(w, r)
	}
}

func (s *Server) render(w http.ResponseWriter, r *http.Request, name string, data any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := s.Templates.ExecuteTemplate(w, name, data); err != nil {
		s.log.ErrorContext(r.Context(), "render template",
			slog.String("template", name),
			slog.String("error", err.Error()),
		)
	}
}
