// Package languages resolves editor language ids from explicit names and
// filenames using chroma's lexer registry.
package languages

import (
	"path/filepath"
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
)

// PlainText is used when nothing else matches.
const PlainText = "plaintext"

// aliases maps editor-style ids onto chroma lexer names.
var aliases = map[string]string{
	"typescriptreact": "tsx",
	"javascriptreact": "react",
	"jsx":             "react",
	"golang":          "go",
	"shell":           "bash",
	"sh":              "bash",
	"yml":             "yaml",
	"md":              "markdown",
	"plaintext":       "plaintext",
	"text":            "plaintext",
	"txt":             "plaintext",
}

// Cycle is the order language switching walks through.
var Cycle = []string{"go", "tsx", "typescript", "javascript", "python", "markdown", "json", "yaml", "bash", PlainText}

// Resolve picks the language id for a document. An explicit language wins;
// otherwise the filename is matched against chroma's lexers.
func Resolve(language, filename string) string {
	if language = Normalize(language); language != "" {
		return language
	}
	if filename == "" {
		return PlainText
	}
	if l := lexers.Match(filepath.Base(filename)); l != nil {
		return Normalize(l.Config().Name)
	}
	return PlainText
}

// Normalize lowercases id and maps known aliases.
func Normalize(id string) string {
	id = strings.ToLower(strings.TrimSpace(id))
	if mapped, ok := aliases[id]; ok {
		return mapped
	}
	return id
}

// Lexer returns the chroma lexer for id, falling back to plain text.
func Lexer(id string) chroma.Lexer {
	if id == PlainText {
		return lexers.Fallback
	}
	if l := lexers.Get(id); l != nil {
		return l
	}
	return lexers.Fallback
}

// IsMarkdown reports whether id names markdown.
func IsMarkdown(id string) bool {
	return Normalize(id) == "markdown"
}

// Next returns the language after current in Cycle.
func Next(current string) string {
	current = Normalize(current)
	for i, id := range Cycle {
		if id == current {
			return Cycle[(i+1)%len(Cycle)]
		}
	}
	return Cycle[0]
}
