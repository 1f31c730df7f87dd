package format

import (
	"html/template"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatter_Format(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		mode     string
		expected []Block
	}{
		{
			name: "medical headings paragraphs and bullets",
			text: "## What You Should Know\nTake it easy.\n* Rest\n* Hydrate",
			mode: "medical",
			expected: []Block{
				{Kind: KindHeading, Label: "What You Should Know", Icon: "check-circle"},
				{Kind: KindParagraph, HTML: "Take it easy."},
				{Kind: KindBullet, HTML: "Rest"},
				{Kind: KindBullet, HTML: "Hydrate"},
			},
		},
		{
			name: "bold heading with colon keeps the cleaned label",
			text: "**Analogy:**\nYour heart is like a pump.",
			mode: "medical",
			expected: []Block{
				{Kind: KindHeading, Label: "Analogy:", Icon: "lightbulb"},
				{Kind: KindParagraph, HTML: "Your heart is like a pump."},
			},
		},
		{
			name: "cultural headings",
			text: "**Cultural Understanding**\n\n\n## Traditional + Modern Integration\n**Common Misunderstandings:**",
			mode: "cultural",
			expected: []Block{
				{Kind: KindHeading, Label: "Cultural Understanding", Icon: "globe-2"},
				{Kind: KindHeading, Label: "Traditional + Modern Integration", Icon: "heart-pulse"},
				{Kind: KindHeading, Label: "Common Misunderstandings:", Icon: "lightbulb"},
			},
		},
		{
			name: "partial label match is a paragraph",
			text: "## What You Should Know About Asthma",
			mode: "medical",
			expected: []Block{
				{Kind: KindParagraph, HTML: "What You Should Know About Asthma"},
			},
		},
		{
			name: "blank lines are dropped",
			text: "\n   \nFirst\n\t\nSecond\n",
			mode: "medical",
			expected: []Block{
				{Kind: KindParagraph, HTML: "First"},
				{Kind: KindParagraph, HTML: "Second"},
			},
		},
		{
			name: "indented bullet with emphasis",
			text: "   *   **Fever** above _38C_  ",
			mode: "medical",
			expected: []Block{
				{Kind: KindBullet, HTML: "<strong>Fever</strong> above <em>38C</em>"},
			},
		},
		{
			name: "list-like markers stripped from plain lines",
			text: "## 1. Simplified Term: Heart attack\n**Bold start** and trailing**",
			mode: "medical",
			expected: []Block{
				{Kind: KindParagraph, HTML: "1. Simplified Term: Heart attack"},
				{Kind: KindParagraph, HTML: "Bold start** and trailing"},
			},
		},
		{
			name: "markup in generated text is escaped",
			text: "Avoid <script>alert(1)</script> & **rest**",
			mode: "medical",
			expected: []Block{
				{Kind: KindParagraph, HTML: "Avoid &lt;script&gt;alert(1)&lt;/script&gt; &amp; <strong>rest</strong>"},
			},
		},
		{
			name: "star without space is not a bullet",
			text: "*note*",
			mode: "cultural",
			expected: []Block{
				{Kind: KindParagraph, HTML: "*note*"},
			},
		},
		{
			name: "kids mode is one verbatim paragraph",
			text: "**What it is**: a shot\n\n* Quick pinch\n## Done",
			mode: "kids",
			expected: []Block{
				{Kind: KindParagraph, HTML: "**What it is**: a shot\n\n* Quick pinch\n## Done"},
			},
		},
		{
			name: "unknown mode is one paragraph",
			text: "Original: hello\n\nTranslated: hola",
			mode: "translate",
			expected: []Block{
				{Kind: KindParagraph, HTML: "Original: hello\n\nTranslated: hola"},
			},
		},
		{
			name:     "empty medical text yields no blocks",
			text:     "",
			mode:     "medical",
			expected: []Block{},
		},
	}

	f := New()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, f.Format(tt.text, tt.mode))
		})
	}
}

func TestFormatter_FormatIsDeterministic(t *testing.T) {
	f := New()
	text := "## Analogy\n* one\n_two_\n**three**"
	assert.Equal(t, f.Format(text, "medical"), f.Format(text, "medical"))
}

func TestEmphasize(t *testing.T) {
	tests := []struct {
		name     string
		in       string
		expected template.HTML
	}{
		{name: "strong and italic", in: "This is **important** and _urgent_", expected: "This is <strong>important</strong> and <em>urgent</em>"},
		{name: "non-greedy pairs", in: "**a** b **c**", expected: "<strong>a</strong> b <strong>c</strong>"},
		{name: "unpaired markers stay", in: "**open and _half", expected: "**open and _half"},
		{name: "snake case words pair up", in: "my_var_name", expected: "my<em>var</em>name"},
		{name: "empty strong", in: "****", expected: "<strong></strong>"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, emphasize(tt.in))
		})
	}
}

func TestWithIcons(t *testing.T) {
	f := New(WithIcons(map[string]string{
		"Warning Signs:": "alert-triangle",
		"analogy":        "sparkles",
	}))

	icon, ok := f.Icon("warning signs")
	assert.True(t, ok)
	assert.Equal(t, "alert-triangle", icon)

	icon, ok = f.Icon("ANALOGY:")
	assert.True(t, ok)
	assert.Equal(t, "sparkles", icon)

	assert.Equal(t, []Block{{Kind: KindHeading, Label: "Warning Signs", Icon: "alert-triangle"}},
		f.Format("## Warning Signs", "medical"))

	// the default table is not modified by other formatters
	icon, _ = New().Icon("analogy")
	assert.Equal(t, "lightbulb", icon)
}

func TestGlyph(t *testing.T) {
	assert.Equal(t, "💡", Glyph("lightbulb"))
	assert.Equal(t, "", Glyph("unknown"))
}
