package itinerary

import (
	"regexp"
	"strings"
)

var (
	blockComment      = regexp.MustCompile(`(?s)/\*.*?\*/`)
	lineComment       = regexp.MustCompile(`(?m)(^|[^:])//.*$`)
	trailingComma     = regexp.MustCompile(`,\s*([}\]])`)
	bareKey           = regexp.MustCompile(`([,{\s])([A-Za-z_][A-Za-z0-9_\-]*)\s*:`)
	singleQuotedValue = regexp.MustCompile(`([:\[,]\s*)'([^'\\]*(?:\\.[^'\\]*)*)'`)

	smartQuotes = strings.NewReplacer(
		"“", `"`, "”", `"`, "„", `"`,
		"‘", "'", "’", "'",
	)
)

// RepairJSON fixes the syntax defects language models commonly produce:
// comments, trailing commas, smart quotes, bare keys, single-quoted and
// backtick-quoted strings. It is not a general JSON5 parser.
func RepairJSON(s string) string {
	out := blockComment.ReplaceAllString(s, "")
	out = lineComment.ReplaceAllString(out, "$1")
	out = trailingComma.ReplaceAllString(out, "$1")
	out = smartQuotes.Replace(out)
	out = bareKey.ReplaceAllString(out, `$1"$2":`)
	out = singleQuotedValue.ReplaceAllStringFunc(out, func(m string) string {
		parts := singleQuotedValue.FindStringSubmatch(m)
		body := strings.ReplaceAll(parts[2], `\'`, `'`)
		body = strings.ReplaceAll(body, `"`, `\"`)
		return parts[1] + `"` + body + `"`
	})
	return strings.ReplaceAll(out, "`", `"`)
}
