// Package format turns generated explanation text into display blocks.
package format

import (
	"html"
	"html/template"
	"regexp"
	"strings"
)

// Kind is the type of a display block.
type Kind string

const (
	KindHeading   Kind = "heading"
	KindBullet    Kind = "bullet"
	KindParagraph Kind = "paragraph"
)

// Block is one unit of formatted output. Headings carry Label and Icon;
// bullets and paragraphs carry HTML with emphasis already resolved.
type Block struct {
	Kind  Kind          `json:"kind"`
	Label string        `json:"label,omitempty"`
	Icon  string        `json:"icon,omitempty"`
	HTML  template.HTML `json:"html,omitempty"`
}

var (
	leadingMarker  = regexp.MustCompile(`^(##\s*|\*\*\s*)`)
	trailingMarker = regexp.MustCompile(`\s*\*\*$`)
	strongPattern  = regexp.MustCompile(`\*\*(.*?)\*\*`)
	emPattern      = regexp.MustCompile(`_(.*?)_`)
)

// Formatter parses result text using a fixed heading table.
type Formatter struct {
	icons map[string]string
}

// Option configures a Formatter.
type Option func(*Formatter)

// WithIcons adds or overrides heading labels. Keys are normalized the same
// way lines are, so "What You Should Know:" and "what you should know" are
// the same label.
func WithIcons(icons map[string]string) Option {
	return func(f *Formatter) {
		for label, icon := range icons {
			f.icons[normalize(label)] = icon
		}
	}
}

// New returns a Formatter seeded with the default heading table.
func New(opts ...Option) *Formatter {
	f := &Formatter{icons: make(map[string]string, len(defaultIcons))}
	for label, icon := range defaultIcons {
		f.icons[label] = icon
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Icon returns the icon for a heading label, if the label is known.
func (f *Formatter) Icon(label string) (string, bool) {
	icon, ok := f.icons[normalize(label)]
	return icon, ok
}

// Format splits text into blocks. Only the medical and cultural modes are
// parsed line by line; any other mode yields the text as one paragraph.
func (f *Formatter) Format(text, mode string) []Block {
	if mode != "medical" && mode != "cultural" {
		return []Block{{Kind: KindParagraph, HTML: template.HTML(html.EscapeString(text))}}
	}

	lines := strings.Split(text, "\n")
	blocks := make([]Block, 0, len(lines))
	for _, line := range lines {
		cleaned := stripMarkers(line)
		if icon, ok := f.icons[normalize(cleaned)]; ok {
			blocks = append(blocks, Block{Kind: KindHeading, Label: cleaned, Icon: icon})
			continue
		}

		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}

		if strings.HasPrefix(trimmed, "* ") {
			body := strings.TrimSpace(trimmed[2:])
			blocks = append(blocks, Block{Kind: KindBullet, HTML: emphasize(body)})
			continue
		}

		blocks = append(blocks, Block{Kind: KindParagraph, HTML: emphasize(cleaned)})
	}
	return blocks
}

func stripMarkers(line string) string {
	line = leadingMarker.ReplaceAllString(line, "")
	line = trailingMarker.ReplaceAllString(line, "")
	return strings.TrimSpace(line)
}

func normalize(label string) string {
	label = strings.ToLower(strings.TrimSpace(label))
	label = strings.TrimSuffix(label, ":")
	return strings.TrimSpace(label)
}

// emphasize escapes s and then turns **x** into <strong> and _x_ into <em>.
// Input is a single line, so no match spans a newline.
func emphasize(s string) template.HTML {
	s = html.EscapeString(s)
	s = strongPattern.ReplaceAllString(s, "<strong>$1</strong>")
	s = emPattern.ReplaceAllString(s, "<em>$1</em>")
	return template.HTML(s)
}
