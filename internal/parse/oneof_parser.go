package parse

type OneofFieldDefinition struct {
	Name      string
	Type      string
	Tag       string
	Token     *Token
	TypeToken *Token
}

type OneofDefinition struct {
	Name   string
	Fields []*OneofFieldDefinition
	Token  *Token
}

func (o *OneofDefinition) EntryName() string {
	return o.Name
}

// Tags returns the wire tags of all alternatives in declaration order.
func (o *OneofDefinition) Tags() []string {
	tags := make([]string, len(o.Fields))
	for i, field := range o.Fields {
		tags[i] = field.Tag
	}
	return tags
}

func parseOneofDefinition(s *TokenStream) (*OneofDefinition, *ParsingError) {

	if _, perr := expectKeyword(s, "oneof"); perr != nil {
		return nil, perr
	}
	name, perr := expectTokenType(s, WordTokenType, "oneof name")
	if perr != nil {
		return nil, perr
	}
	if _, perr := expectSymbol(s, "{"); perr != nil {
		return nil, perr
	}

	oneof := &OneofDefinition{
		Name:   name.Content,
		Fields: []*OneofFieldDefinition{},
		Token:  name,
	}

	for {
		token := s.Peek()
		if token.Is(SymbolTokenType, "}") {
			parseBlockEnd(s)
			return oneof, nil
		}

		typ, perr := expectTokenType(s, WordTokenType, "oneof field type or `}`")
		if perr != nil {
			return nil, perr
		}
		fieldName, perr := expectTokenType(s, WordTokenType, "oneof field name")
		if perr != nil {
			return nil, perr
		}
		tag, perr := parseTag(s)
		if perr != nil {
			return nil, perr
		}

		oneof.Fields = append(oneof.Fields, &OneofFieldDefinition{
			Name:      fieldName.Content,
			Type:      typ.Content,
			Tag:       tag.Content,
			Token:     fieldName,
			TypeToken: typ,
		})
	}
}
