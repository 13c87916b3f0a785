package util

import (
	"strings"
)

const rawIdentifierPrefix = "r#"

var rustKeywords = map[string]struct{}{
	"Self": {}, "as": {}, "async": {}, "await": {}, "break": {}, "const": {}, "continue": {}, "crate": {}, "dyn": {},
	"else": {}, "enum": {}, "extern": {}, "false": {}, "fn": {}, "for": {}, "if": {}, "impl": {}, "in": {}, "let": {}, "loop": {},
	"match": {}, "mod": {}, "move": {}, "mut": {}, "pub": {}, "ref": {}, "return": {}, "self": {}, "static": {}, "struct": {},
	"super": {}, "trait": {}, "true": {}, "type": {}, "union": {}, "unsafe": {}, "use": {}, "where": {}, "while": {},
}

func isUpper(c byte) bool {
	return c >= 'A' && c <= 'Z'
}

func isLower(c byte) bool {
	return c >= 'a' && c <= 'z'
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func toUpper(c byte) byte {
	if isLower(c) {
		return c - 'a' + 'A'
	}
	return c
}

func toLower(c byte) byte {
	if isUpper(c) {
		return c - 'A' + 'a'
	}
	return c
}

// SplitWords splits an identifier into words regardless of its casing style.
// Underscores separate words and are dropped, digits always continue the
// current word, and an upper-case letter followed by a lower-case letter
// starts a new word.
func SplitWords(s string) []string {
	var words []string
	start, end := 0, 0

	for end < len(s) {
		if s[end] == '_' {
			end++
			start = end
			continue
		}

		upperRun := isUpper(s[end])
		end++

		for end < len(s) {
			c := s[end]
			if c == '_' {
				break
			}
			if isUpper(c) && end+1 < len(s) && isLower(s[end+1]) {
				break
			}
			digit := isDigit(c)
			if !digit && !(upperRun && isUpper(c)) && isUpper(c) {
				break
			}
			end++
			if !digit {
				upperRun = isUpper(c)
			}
		}

		words = append(words, s[start:end])
		start = end
	}

	return words
}

func isRustKeyword(words []string) bool {
	if len(words) != 1 {
		return false
	}
	_, ok := rustKeywords[words[0]]
	return ok
}

// EnsurePascalCase renders each word capitalized, concatenated without
// separator.
func EnsurePascalCase(s string) string {
	words := SplitWords(s)

	var b strings.Builder
	if isRustKeyword(words) {
		b.WriteString(rawIdentifierPrefix)
	}
	for _, word := range words {
		b.WriteByte(toUpper(word[0]))
		for i := 1; i < len(word); i++ {
			b.WriteByte(toLower(word[i]))
		}
	}
	return b.String()
}

// EnsureSnakeCase renders each word lower-cased, joined by underscores.
func EnsureSnakeCase(s string) string {
	words := SplitWords(s)

	var b strings.Builder
	if isRustKeyword(words) {
		b.WriteString(rawIdentifierPrefix)
	}
	for i, word := range words {
		if i > 0 {
			b.WriteByte('_')
		}
		for j := 0; j < len(word); j++ {
			b.WriteByte(toLower(word[j]))
		}
	}
	return b.String()
}
