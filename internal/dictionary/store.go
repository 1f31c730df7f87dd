package dictionary

import (
	"context"
	"log/slog"
	"strings"
	"sync"
	"time"

	"caretranslate/internal/storage"

	"github.com/google/uuid"
)

// Store owns the ordered collection of saved entries, newest first, and
// mirrors it into a storage.Slot after every mutation. Slot failures are
// logged and never returned: the in-memory collection stays authoritative.
type Store struct {
	mu      sync.RWMutex
	entries []Entry

	slot  storage.Slot
	key   string
	now   func() time.Time
	newID func() string
	log   *slog.Logger
}

// Option configures a Store.
type Option func(*Store)

// WithKey overrides the slot key. Defaults to DefaultKey.
func WithKey(key string) Option { return func(s *Store) { s.key = key } }

// WithClock overrides the time source used for saved dates and stats.
func WithClock(now func() time.Time) Option { return func(s *Store) { s.now = now } }

// WithIDGenerator overrides how entry ids are produced.
func WithIDGenerator(newID func() string) Option { return func(s *Store) { s.newID = newID } }

// WithLogger sets the logger used for swallowed storage failures.
func WithLogger(logger *slog.Logger) Option { return func(s *Store) { s.log = logger } }

// New constructs a Store and loads the persisted snapshot from slot.
func New(ctx context.Context, slot storage.Slot, opts ...Option) *Store {
	s := &Store{
		slot:  slot,
		key:   DefaultKey,
		now:   time.Now,
		newID: uuid.NewString,
		log:   slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.log = s.log.With("component", "dictionary")
	s.load(ctx)
	return s
}

func (s *Store) load(ctx context.Context) {
	stored, ok, err := s.slot.Get(ctx, s.key)
	if err != nil {
		s.log.ErrorContext(ctx, "error loading dictionary", slog.String("error", err.Error()))
		return
	}
	if !ok {
		return
	}
	entries, dropped, err := decodeSnapshot(stored)
	if err != nil {
		s.log.ErrorContext(ctx, "error loading dictionary", slog.String("error", err.Error()))
		return
	}
	if dropped > 0 {
		s.log.ErrorContext(ctx, "error loading dictionary: malformed entries", slog.Int("dropped", dropped))
		return
	}
	s.entries = entries
}

// persist writes the current collection. Callers hold s.mu.
func (s *Store) persist(ctx context.Context) {
	entries := s.entries
	if entries == nil {
		entries = []Entry{}
	}
	data, err := encodeEntries(entries, "")
	if err != nil {
		s.log.ErrorContext(ctx, "error serializing dictionary", slog.String("error", err.Error()))
		return
	}
	if err := s.slot.Set(ctx, s.key, data); err != nil {
		s.log.WarnContext(ctx, "error saving to storage", slog.String("error", err.Error()))
	}
}

// Save prepends a new entry and persists the collection. Term and
// explanation are trimmed and a blank category becomes DefaultCategory;
// entries are never deduplicated.
func (s *Store) Save(ctx context.Context, term, explanation, category string, complexity *int) Entry {
	s.mu.Lock()
	defer s.mu.Unlock()

	if strings.TrimSpace(category) == "" {
		category = DefaultCategory
	}
	e := Entry{
		ID:          s.newID(),
		Term:        strings.TrimSpace(term),
		Explanation: strings.TrimSpace(explanation),
		Category:    category,
		Saved:       s.now().Format(SavedLayout),
	}
	if complexity != nil {
		c := *complexity
		e.Complexity = &c
	}
	s.entries = append([]Entry{e}, s.entries...)
	s.persist(ctx)
	return e
}

// Remove drops the entry with id. Unknown ids are a no-op.
func (s *Store) Remove(ctx context.Context, id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	kept := make([]Entry, 0, len(s.entries))
	for _, e := range s.entries {
		if e.ID != id {
			kept = append(kept, e)
		}
	}
	s.entries = kept
	s.persist(ctx)
}

// Get returns the entry with id.
func (s *Store) Get(id string) (Entry, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, e := range s.entries {
		if e.ID == id {
			return e, true
		}
	}
	return Entry{}, false
}

// All returns a copy of the collection, newest first.
func (s *Store) All() []Entry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]Entry{}, s.entries...)
}

// Search matches query case-insensitively as a substring of term,
// explanation or category. A blank query returns everything.
func (s *Store) Search(query string) []Entry {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return s.All()
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	out := []Entry{}
	for _, e := range s.entries {
		if strings.Contains(strings.ToLower(e.Term), q) ||
			strings.Contains(strings.ToLower(e.Explanation), q) ||
			strings.Contains(strings.ToLower(e.Category), q) {
			out = append(out, e)
		}
	}
	return out
}

// Clear empties the collection and removes the slot key.
func (s *Store) Clear(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = nil
	if err := s.slot.Remove(ctx, s.key); err != nil {
		s.log.WarnContext(ctx, "error clearing storage", slog.String("error", err.Error()))
	}
}

// Export serializes the collection as indented JSON. It returns "" if
// serialization fails.
func (s *Store) Export() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	entries := s.entries
	if entries == nil {
		entries = []Entry{}
	}
	data, err := encodeEntries(entries, "  ")
	if err != nil {
		s.log.Error("error exporting dictionary", slog.String("error", err.Error()))
		return ""
	}
	return data
}

// Import replaces the collection with the entries in data. Elements without
// a string id, term and explanation are dropped silently, as are repeated
// ids after their first occurrence. It returns false, leaving the
// collection untouched, when data is not a JSON array.
func (s *Store) Import(ctx context.Context, data string) bool {
	entries, dropped, err := decodeSnapshot(data)
	if err != nil {
		s.log.ErrorContext(ctx, "error importing dictionary", slog.String("error", err.Error()))
		return false
	}
	entries, dupes := uniqueByID(entries)
	if dropped+dupes > 0 {
		s.log.DebugContext(ctx, "import dropped entries",
			slog.Int("malformed", dropped), slog.Int("duplicate_ids", dupes))
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = entries
	s.persist(ctx)
	return true
}

func uniqueByID(entries []Entry) ([]Entry, int) {
	seen := make(map[string]struct{}, len(entries))
	out := entries[:0]
	for _, e := range entries {
		if _, ok := seen[e.ID]; ok {
			continue
		}
		seen[e.ID] = struct{}{}
		out = append(out, e)
	}
	return out, len(entries) - len(out)
}
