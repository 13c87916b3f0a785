package parse

// Entry is a declaration inside a package or message body: a
// *MessageDefinition, *EnumDefinition, *OneofDefinition or
// *MessageFieldDefinition.
type Entry interface {
	EntryName() string
}

func expectKeyword(s *TokenStream, keyword string) (*Token, *ParsingError) {
	token := s.Next()
	if !token.Is(WordTokenType, keyword) {
		return nil, unexpectedToken("`"+keyword+"`", token)
	}
	return token, nil
}

func expectSymbol(s *TokenStream, symbol string) (*Token, *ParsingError) {
	token := s.Next()
	if !token.Is(SymbolTokenType, symbol) {
		return nil, unexpectedToken("`"+symbol+"`", token)
	}
	return token, nil
}

func expectTokenType(s *TokenStream, typ TokenType, what string) (*Token, *ParsingError) {
	token := s.Next()
	if token.Type != typ {
		return nil, unexpectedToken(what, token)
	}
	return token, nil
}

// parseQuotedString consumes `"` WORD `"` and returns the word.
func parseQuotedString(s *TokenStream, what string) (*Token, *ParsingError) {
	if _, perr := expectSymbol(s, `"`); perr != nil {
		return nil, perr
	}
	token, perr := expectTokenType(s, WordTokenType, what)
	if perr != nil {
		return nil, perr
	}
	if _, perr := expectSymbol(s, `"`); perr != nil {
		return nil, perr
	}
	return token, nil
}

// parseBlockEnd consumes a closing bracket and an optional trailing semi-colon.
func parseBlockEnd(s *TokenStream) {
	s.Next()
	if s.Peek().Is(SymbolTokenType, ";") {
		s.Next()
	}
}

// parseTag consumes `=` NUMBER `;` and returns the number.
func parseTag(s *TokenStream) (*Token, *ParsingError) {
	if _, perr := expectSymbol(s, "="); perr != nil {
		return nil, perr
	}
	tag, perr := expectTokenType(s, NumberTokenType, "tag number")
	if perr != nil {
		return nil, perr
	}
	if _, perr := expectSymbol(s, ";"); perr != nil {
		return nil, perr
	}
	return tag, nil
}
