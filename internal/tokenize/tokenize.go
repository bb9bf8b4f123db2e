// Package tokenize splits a phrase into whitespace-separated tokens and
// renders the result for the tokenize command.
package tokenize

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"gopkg.in/yaml.v3"
)

// Output formats accepted by Render.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// ValidFormats lists all supported output formats.
var ValidFormats = []string{FormatText, FormatJSON, FormatYAML}

// Result is the structured form of a tokenized phrase.
type Result struct {
	Phrase string   `json:"phrase" yaml:"phrase"`
	Tokens []string `json:"tokens" yaml:"tokens"`
}

// isSpace reports whether r separates tokens.
// U+001C..U+001F (file/group/record/unit separators) count as white space
// alongside everything unicode.IsSpace accepts.
func isSpace(r rune) bool {
	if r >= 0x1c && r <= 0x1f {
		return true
	}
	return unicode.IsSpace(r)
}

// Split breaks phrase on runs of white space. The result is never nil;
// a blank phrase yields an empty slice.
func Split(phrase string) []string {
	tokens := strings.FieldsFunc(phrase, isSpace)
	if tokens == nil {
		return []string{}
	}
	return tokens
}

// Format renders tokens as a bracketed list of quoted strings,
// e.g. ["hello", "world"].
func Format(tokens []string) string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, tok := range tokens {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(strconv.Quote(tok))
	}
	sb.WriteByte(']')
	return sb.String()
}

// Tokenize splits phrase and returns it alongside its tokens.
func Tokenize(phrase string) Result {
	return Result{Phrase: phrase, Tokens: Split(phrase)}
}

// Render formats res in the requested output format. The returned string
// has no trailing newline.
func Render(res Result, format string) (string, error) {
	switch format {
	case FormatText, "":
		return "tokenized phrase: " + Format(res.Tokens), nil
	case FormatJSON:
		data, err := json.Marshal(res)
		if err != nil {
			return "", fmt.Errorf("failed to marshal json: %w", err)
		}
		return string(data), nil
	case FormatYAML:
		data, err := yaml.Marshal(res)
		if err != nil {
			return "", fmt.Errorf("failed to marshal yaml: %w", err)
		}
		return strings.TrimRight(string(data), "\n"), nil
	default:
		return "", fmt.Errorf("invalid output format: %s (valid: %v)", format, ValidFormats)
	}
}
