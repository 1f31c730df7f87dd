package dictionary

import (
	"bytes"
	"encoding/json"
	"errors"
	"math"
	"strings"
	"time"
)

// DefaultKey is the slot key the dictionary snapshot lives under.
const DefaultKey = "caretranslate_dictionary"

// DefaultCategory is used when an entry is saved without a category.
const DefaultCategory = "medical"

// SavedLayout formats the day an entry was saved. It matches the month/day/year
// form existing snapshots were written with.
const SavedLayout = "1/2/2006"

var errNotArray = errors.New("snapshot is not an array")

// savedLayouts are tried in order when reading a saved date back.
var savedLayouts = []string{SavedLayout, "2006-01-02", time.RFC3339}

// Entry is one saved term with its explanation.
type Entry struct {
	ID          string `json:"id"`
	Term        string `json:"term"`
	Explanation string `json:"translation"`
	Category    string `json:"category"`
	Saved       string `json:"saved"`
	Complexity  *int   `json:"complexity,omitempty"`
}

// SavedOn parses the saved date at day granularity.
func (e Entry) SavedOn(loc *time.Location) (time.Time, bool) {
	for _, layout := range savedLayouts {
		if t, err := time.ParseInLocation(layout, e.Saved, loc); err == nil {
			y, m, d := t.Date()
			return time.Date(y, m, d, 0, 0, 0, 0, loc), true
		}
	}
	return time.Time{}, false
}

// encodeEntries serializes entries the way browsers do, leaving <, > and &
// unescaped. A non-empty indent produces indented output.
func encodeEntries(entries []Entry, indent string) (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if indent != "" {
		enc.SetIndent("", indent)
	}
	if err := enc.Encode(entries); err != nil {
		return "", err
	}
	return strings.TrimSuffix(buf.String(), "\n"), nil
}

// decodeSnapshot parses a serialized collection. dropped counts elements
// that did not carry the required fields.
func decodeSnapshot(data string) (entries []Entry, dropped int, err error) {
	var raw []json.RawMessage
	if err := json.Unmarshal([]byte(data), &raw); err != nil {
		return nil, 0, err
	}
	if raw == nil {
		return nil, 0, errNotArray
	}
	entries = make([]Entry, 0, len(raw))
	for _, r := range raw {
		e, ok := decodeImported(r)
		if !ok {
			dropped++
			continue
		}
		entries = append(entries, e)
	}
	return entries, dropped, nil
}

// decodeImported keeps only objects carrying a string id, term and
// explanation. Other fields are taken when they have the expected type and
// zeroed otherwise.
func decodeImported(raw json.RawMessage) (Entry, bool) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil || fields == nil {
		return Entry{}, false
	}

	var e Entry
	if !stringField(fields, "id", &e.ID) || !stringField(fields, "term", &e.Term) {
		return Entry{}, false
	}
	if !stringField(fields, "translation", &e.Explanation) && !stringField(fields, "explanation", &e.Explanation) {
		return Entry{}, false
	}
	stringField(fields, "category", &e.Category)
	stringField(fields, "saved", &e.Saved)

	if v, ok := fields["complexity"]; ok && !isJSONNull(v) {
		var n float64
		if err := json.Unmarshal(v, &n); err == nil && validComplexity(n) {
			c := int(n)
			e.Complexity = &c
		}
	}
	return e, true
}

// validComplexity reports whether n is a whole complexity level from 1 to 5.
func validComplexity(n float64) bool {
	return n == math.Trunc(n) && n >= 1 && n <= 5
}

func stringField(fields map[string]json.RawMessage, name string, dst *string) bool {
	v, ok := fields[name]
	if !ok || !isJSONString(v) {
		return false
	}
	var s string
	if err := json.Unmarshal(v, &s); err != nil {
		return false
	}
	*dst = s
	return true
}

func isJSONString(v json.RawMessage) bool {
	v = bytes.TrimSpace(v)
	return len(v) > 0 && v[0] == '"'
}

func isJSONNull(v json.RawMessage) bool {
	return string(bytes.TrimSpace(v)) == "null"
}
