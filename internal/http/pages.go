package http

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"caretranslate/internal/core"
	"caretranslate/internal/dictionary"
	"caretranslate/internal/format"
	"caretranslate/internal/translate"
)

type option struct {
	Value string
	Label string
}

var backgroundOptions = []option{
	{"East Asian", "East Asian (Chinese, Japanese, Korean)"},
	{"South Asian", "South Asian (Indian, Pakistani, Bangladeshi)"},
	{"Middle Eastern", "Middle Eastern (Arab, Persian, Turkish)"},
	{"African", "African (Various traditions)"},
	{"Latin American", "Latin American (Hispanic/Latino)"},
	{"Indigenous", "Indigenous (Native American, Aboriginal)"},
}

type indexPage struct {
	Backgrounds []option
	ChildAges   []string
	Languages   []translate.MedicalLanguage
	Dictionary  dictionaryView
}

type dictionaryView struct {
	Query   string
	Entries []dictionary.Entry
	Stats   dictionary.Stats
}

type resultView struct {
	Mode       string
	Prompt     string
	Text       string
	Complexity int
	Blocks     []format.Block
	Message    string
}

type entryView struct {
	Entry  dictionary.Entry
	Blocks []format.Block
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	s.render(w, r, "index.html", indexPage{
		Backgrounds: backgroundOptions,
		ChildAges:   core.ChildAges,
		Languages:   translate.CommonMedicalLanguages,
		Dictionary:  s.dictionaryView(""),
	})
}

func (s *Server) dictionaryView(query string) dictionaryView {
	return dictionaryView{Query: query, Entries: s.Dict.Search(query), Stats: s.Dict.Stats()}
}

// handleExplainFragment runs one explanation and returns the result panel.
// Any failure is shown as a generic message in place of the result.
func (s *Server) handleExplainFragment(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}
	mode := r.FormValue("mode")
	prompt := strings.TrimSpace(r.FormValue("prompt"))
	if prompt == "" {
		http.Error(w, "prompt is required", http.StatusBadRequest)
		return
	}
	view := resultView{Mode: mode, Prompt: prompt}

	var (
		text string
		err  error
	)
	switch mode {
	case core.ModeMedical:
		view.Complexity, _ = strconv.Atoi(r.FormValue("complexity"))
		if view.Complexity == 0 {
			view.Complexity = core.DefaultComplexity
		}
		text, err = s.Explainer.Medical(r.Context(), prompt, view.Complexity)
	case core.ModeCultural:
		background := r.FormValue("background")
		if background == "" {
			view.Message = core.MissingBackgroundMessage
			s.render(w, r, "result.html", view)
			return
		}
		text, err = s.Explainer.Cultural(r.Context(), prompt, background)
	case core.ModeKids:
		age := r.FormValue("childAge")
		if age == "" {
			view.Message = core.MissingAgeMessage
			s.render(w, r, "result.html", view)
			return
		}
		text, err = s.Explainer.Kids(r.Context(), prompt, age)
	default:
		http.Error(w, "unknown mode", http.StatusBadRequest)
		return
	}

	if err != nil {
		s.log.WarnContext(r.Context(), "explanation failed",
			slog.String("mode", mode),
			slog.String("error", err.Error()),
		)
		view.Message = core.FailureMessage
	} else {
		view.Text = text
		view.Blocks = s.Formatter.Format(text, mode)
	}
	s.render(w, r, "result.html", view)
}

func (s *Server) handleTranslateFragment(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}
	text := strings.TrimSpace(r.FormValue("text"))
	target := r.FormValue("target")
	if text == "" || target == "" {
		http.Error(w, "text and target language are required", http.StatusBadRequest)
		return
	}

	view := resultView{Mode: "translate", Prompt: text}
	res, err := s.Translator.Translate(r.Context(), text, target, r.FormValue("source"))
	if err != nil {
		s.log.WarnContext(r.Context(), "translation failed", slog.String("error", err.Error()))
		view.Message = core.FailureMessage
	} else {
		view.Text = translationSummary(text, res)
		view.Blocks = s.Formatter.Format(view.Text, view.Mode)
	}
	s.render(w, r, "result.html", view)
}

func translationSummary(original string, res translate.Result) string {
	detected := res.DetectedSourceLanguage
	if detected == "" {
		detected = "Unknown"
	}
	return fmt.Sprintf("Original: %s\n\nTranslated: %s\n\nDetected source language: %s", original, res.TranslatedText, detected)
}

func (s *Server) handleDictionaryFragment(w http.ResponseWriter, r *http.Request) {
	s.render(w, r, "dictionary.html", s.dictionaryView(r.URL.Query().Get("q")))
}

func (s *Server) handleSaveFragment(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}
	term := strings.TrimSpace(r.FormValue("term"))
	explanation := r.FormValue("translation")
	if term == "" || strings.TrimSpace(explanation) == "" {
		http.Error(w, "term and explanation are required", http.StatusBadRequest)
		return
	}
	var complexity *int
	if c, err := strconv.Atoi(r.FormValue("complexity")); err == nil && c > 0 {
		complexity = &c
	}
	s.Dict.Save(r.Context(), term, explanation, r.FormValue("category"), complexity)
	s.render(w, r, "dictionary.html", s.dictionaryView(""))
}

// handleEntryFragment renders a saved explanation with the formatting rules
// of the mode it was generated in.
func (s *Server) handleEntryFragment(w http.ResponseWriter, r *http.Request, id string) {
	entry, ok := s.Dict.Get(id)
	if !ok {
		http.NotFound(w, r)
		return
	}
	s.render(w, r, "entry.html", entryView{
		Entry:  entry,
		Blocks: s.Formatter.Format(entry.Explanation, entry.Category),
	})
}
