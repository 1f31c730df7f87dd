package format

// defaultIcons maps normalized section labels produced by the medical and
// cultural prompts to icon identifiers used by the page.
var defaultIcons = map[string]string{
	"simplified term":                  "book-open",
	"everyday language explanation":    "message-square",
	"analogy":                          "lightbulb",
	"what you should know":             "check-circle",
	"when to seek medical attention":   "alert-triangle",
	"cultural understanding":           "globe-2",
	"communication bridge":             "message-square",
	"family integration":               "users",
	"traditional + modern integration": "heart-pulse",
	"cultural advocacy":                "users",
	"common misunderstandings":         "lightbulb",
}

// iconGlyphs is the symbol shown for each icon identifier when rendering
// server-side or in a terminal.
var iconGlyphs = map[string]string{
	"book-open":      "📖",
	"message-square": "💬",
	"lightbulb":      "💡",
	"check-circle":   "✅",
	"alert-triangle": "⚠️",
	"globe-2":        "🌐",
	"users":          "👥",
	"heart-pulse":    "🫀",
}

// Glyph returns a printable symbol for an icon identifier, or "" if unknown.
func Glyph(icon string) string {
	return iconGlyphs[icon]
}
