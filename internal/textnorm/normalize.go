// Package textnorm provides the shared text normalization used by every
// scanner in the engine: lowercase, unified quotes/dashes, collapsed
// whitespace. Scanning the same normalized form everywhere keeps keyword
// offsets comparable across components.
package textnorm

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

var (
	whitespaceRe = regexp.MustCompile(`[ \t]+`)

	// Typographic characters that commonly appear in pasted job postings
	quoteReplacer = strings.NewReplacer(
		"‘", "'", // left single quote
		"’", "'", // right single quote
		"“", `"`, // left double quote
		"”", `"`, // right double quote
		"–", "-", // en dash
		"—", "-", // em dash
		" ", " ", // non-breaking space
	)
)

// Normalize lowercases text and unifies quotes, dashes and whitespace.
// Line breaks are preserved so downstream section splitting still works.
func Normalize(text string) string {
	if text == "" {
		return ""
	}

	text = strings.ToLower(text)
	text = quoteReplacer.Replace(text)
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	text = whitespaceRe.ReplaceAllString(text, " ")

	return strings.TrimSpace(text)
}

// wordChar reports whether r belongs to a token. Besides letters, digits
// and underscore, + # . count as word characters so terms like c++, c#
// and node.js keep their suffixes intact.
func wordChar(r rune) bool {
	return r == '_' || r == '+' || r == '#' || r == '.' ||
		unicode.IsLetter(r) || unicode.IsDigit(r)
}

// boundaryAt reports whether text[start:end] sits on token boundaries.
// Trailing dots count as sentence punctuation rather than part of the
// token, unless a word character continues past them ("strong c++." ends a
// c++ token, but "node" never matches inside "node.js").
func boundaryAt(text string, start, end int) bool {
	if start > 0 {
		if r, _ := utf8.DecodeLastRuneInString(text[:start]); wordChar(r) {
			return false
		}
	}
	rest := strings.TrimLeft(text[end:], ".")
	if rest == "" {
		return true
	}
	r, _ := utf8.DecodeRuneInString(rest)
	return !wordChar(r)
}

// boundaryIndices returns the byte offsets of boundary occurrences of term
// in text, at most one unless all is set. Matching is case-insensitive;
// offsets are relative to the lowercased text, which is identical to the
// input whenever the caller passes Normalize output.
func boundaryIndices(text, term string, all bool) []int {
	if term == "" || text == "" {
		return nil
	}
	text = strings.ToLower(text)
	term = strings.ToLower(term)

	var idxs []int
	for from := 0; from+len(term) <= len(text); {
		i := strings.Index(text[from:], term)
		if i < 0 {
			break
		}
		i += from
		if boundaryAt(text, i, i+len(term)) {
			idxs = append(idxs, i)
			if !all {
				break
			}
		}
		from = i + 1
	}
	return idxs
}

// ContainsWord reports whether term occurs in text on word boundaries.
func ContainsWord(text, term string) bool {
	return len(boundaryIndices(text, term, false)) > 0
}

// FirstIndex returns the byte offset of the first word-boundary occurrence
// of term in text, or -1 when absent.
func FirstIndex(text, term string) int {
	idxs := boundaryIndices(text, term, false)
	if len(idxs) == 0 {
		return -1
	}
	return idxs[0]
}

// CountOccurrences counts word-boundary occurrences of term in text.
func CountOccurrences(text, term string) int {
	return len(boundaryIndices(text, term, true))
}

// TitleCase uppercases the first letter of each space-separated word.
// Used as the display fallback when a term has no canonical form.
func TitleCase(term string) string {
	words := strings.Fields(term)
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
