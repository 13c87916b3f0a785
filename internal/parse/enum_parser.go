package parse

type EnumValueDefinition struct {
	Name  string
	Tag   string
	Token *Token
}

type EnumDefinition struct {
	Name   string
	Values []*EnumValueDefinition
	Token  *Token
}

func (e *EnumDefinition) EntryName() string {
	return e.Name
}

func parseEnumDefinition(s *TokenStream) (*EnumDefinition, *ParsingError) {

	if _, perr := expectKeyword(s, "enum"); perr != nil {
		return nil, perr
	}
	name, perr := expectTokenType(s, WordTokenType, "enum name")
	if perr != nil {
		return nil, perr
	}
	if _, perr := expectSymbol(s, "{"); perr != nil {
		return nil, perr
	}

	enum := &EnumDefinition{
		Name:   name.Content,
		Values: []*EnumValueDefinition{},
		Token:  name,
	}

	for {
		token := s.Peek()
		switch {
		case token.Is(SymbolTokenType, "}"):
			parseBlockEnd(s)
			return enum, nil

		case token.Type == WordTokenType:
			s.Next()
			tag, perr := parseTag(s)
			if perr != nil {
				return nil, perr
			}
			enum.Values = append(enum.Values, &EnumValueDefinition{
				Name:  token.Content,
				Tag:   tag.Content,
				Token: token,
			})

		default:
			return nil, unexpectedToken("enum value name or `}`", token)
		}
	}
}
