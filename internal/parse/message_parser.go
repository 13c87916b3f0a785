package parse

type MessageFieldDefinition struct {
	Name      string
	Type      string
	Tag       string
	Optional  bool
	Repeated  bool
	Token     *Token
	TypeToken *Token
}

func (f *MessageFieldDefinition) EntryName() string {
	return f.Name
}

type MessageDefinition struct {
	Name    string
	Entries []Entry
	Token   *Token
}

func (m *MessageDefinition) EntryName() string {
	return m.Name
}

// HasNested reports whether the message declares nested messages, enums or
// oneofs.
func (m *MessageDefinition) HasNested() bool {
	for _, entry := range m.Entries {
		if _, ok := entry.(*MessageFieldDefinition); !ok {
			return true
		}
	}
	return false
}

func parseMessageFieldDefinition(s *TokenStream) (*MessageFieldDefinition, *ParsingError) {

	field := &MessageFieldDefinition{}

modifiers:
	for {
		token := s.Peek()
		switch {
		case token.Is(WordTokenType, "optional"):
			s.Next()
			field.Optional = true
		case token.Is(WordTokenType, "repeated"):
			s.Next()
			field.Repeated = true
		default:
			break modifiers
		}
	}

	typ, perr := expectTokenType(s, WordTokenType, "field type")
	if perr != nil {
		return nil, perr
	}
	name, perr := expectTokenType(s, WordTokenType, "field name")
	if perr != nil {
		return nil, perr
	}
	tag, perr := parseTag(s)
	if perr != nil {
		return nil, perr
	}

	field.Name = name.Content
	field.Type = typ.Content
	field.Tag = tag.Content
	field.Token = name
	field.TypeToken = typ
	return field, nil
}

func parseMessageDefinition(s *TokenStream) (*MessageDefinition, *ParsingError) {

	if _, perr := expectKeyword(s, "message"); perr != nil {
		return nil, perr
	}
	name, perr := expectTokenType(s, WordTokenType, "message name")
	if perr != nil {
		return nil, perr
	}
	if _, perr := expectSymbol(s, "{"); perr != nil {
		return nil, perr
	}

	msg := &MessageDefinition{
		Name:    name.Content,
		Entries: []Entry{},
		Token:   name,
	}

	for {
		token := s.Peek()
		switch {
		case token.Is(SymbolTokenType, "}"):
			parseBlockEnd(s)
			return msg, nil

		case token.Type == EndTokenType:
			return nil, unexpectedToken("`}`", token)

		case token.Is(WordTokenType, "message"):
			nested, perr := parseMessageDefinition(s)
			if perr != nil {
				return nil, perr
			}
			msg.Entries = append(msg.Entries, nested)

		case token.Is(WordTokenType, "oneof"):
			oneof, perr := parseOneofDefinition(s)
			if perr != nil {
				return nil, perr
			}
			msg.Entries = append(msg.Entries, oneof)

		case token.Is(WordTokenType, "enum"):
			enum, perr := parseEnumDefinition(s)
			if perr != nil {
				return nil, perr
			}
			msg.Entries = append(msg.Entries, enum)

		default:
			field, perr := parseMessageFieldDefinition(s)
			if perr != nil {
				return nil, perr
			}
			msg.Entries = append(msg.Entries, field)
		}
	}
}
