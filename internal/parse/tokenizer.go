package parse

import (
	"fmt"
	"strings"
)

func isWhitespace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\f' || c == '\r'
}

func isSymbol(c byte) bool {
	return c == '{' || c == '}' || c == '=' || c == ';' || c == '"'
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// skipComment returns the offset just past the comment starting at pos.
func skipComment(content string, pos int) (int, *ParsingError) {
	if pos+1 >= len(content) {
		return 0, &ParsingError{
			Message: "unexpected end of file after `/`",
			Token:   &Token{Type: SymbolTokenType, Content: content[pos:], Offset: pos},
		}
	}

	switch content[pos+1] {
	case '/':
		end := strings.IndexByte(content[pos+2:], '\n')
		if end == -1 {
			return len(content), nil
		}
		return pos + 2 + end + 1, nil

	case '*':
		end := strings.Index(content[pos+2:], "*/")
		if end == -1 {
			return 0, &ParsingError{
				Message: "unterminated block comment",
				Token:   &Token{Type: SymbolTokenType, Content: content[pos : pos+2], Offset: pos},
			}
		}
		return pos + 2 + end + 2, nil
	}

	return 0, &ParsingError{
		Message: fmt.Sprintf("unexpected character `%c` after `/`", content[pos+1]),
		Token:   &Token{Type: SymbolTokenType, Content: content[pos : pos+2], Offset: pos},
	}
}

func nextToken(content string, pos int) (*Token, int, *ParsingError) {
	for pos < len(content) {
		c := content[pos]

		if isWhitespace(c) {
			pos++
			continue
		}

		if c == '/' {
			next, perr := skipComment(content, pos)
			if perr != nil {
				return nil, 0, perr
			}
			pos = next
			continue
		}

		start := pos
		pos++

		var typ TokenType
		switch {
		case isSymbol(c):
			typ = SymbolTokenType
		case isDigit(c):
			typ = NumberTokenType
			for pos < len(content) && isDigit(content[pos]) {
				pos++
			}
		default:
			typ = WordTokenType
			for pos < len(content) && !isSymbol(content[pos]) && !isWhitespace(content[pos]) {
				pos++
			}
		}

		return &Token{
			Content: content[start:pos],
			Type:    typ,
			Offset:  start,
		}, pos, nil
	}

	return &Token{
		Type:   EndTokenType,
		Offset: len(content),
	}, pos, nil
}

// Tokenize splits schema content into tokens. The returned slice always ends
// with a single end token.
func Tokenize(content string) ([]*Token, *ParsingError) {
	tokens := make([]*Token, 0)
	pos := 0
	for {
		token, next, perr := nextToken(content, pos)
		if perr != nil {
			return nil, perr
		}
		tokens = append(tokens, token)
		if token.Type == EndTokenType {
			return tokens, nil
		}
		pos = next
	}
}
