package parse

type PackageDeclaration struct {
	Name    string
	Syntax  string
	Imports []string
	Entries []Entry
	Token   *Token
}

func (p *PackageDeclaration) Messages() []*MessageDefinition {
	var res []*MessageDefinition
	for _, entry := range p.Entries {
		if msg, ok := entry.(*MessageDefinition); ok {
			res = append(res, msg)
		}
	}
	return res
}

func (p *PackageDeclaration) Enums() []*EnumDefinition {
	var res []*EnumDefinition
	for _, entry := range p.Entries {
		if enum, ok := entry.(*EnumDefinition); ok {
			res = append(res, enum)
		}
	}
	return res
}

func parsePackageDeclaration(s *TokenStream) (*PackageDeclaration, *ParsingError) {

	if _, perr := expectKeyword(s, "syntax"); perr != nil {
		return nil, perr
	}
	if _, perr := expectSymbol(s, "="); perr != nil {
		return nil, perr
	}
	syntax, perr := parseQuotedString(s, "syntax version")
	if perr != nil {
		return nil, perr
	}
	if _, perr := expectSymbol(s, ";"); perr != nil {
		return nil, perr
	}

	if _, perr := expectKeyword(s, "package"); perr != nil {
		return nil, perr
	}
	name, perr := expectTokenType(s, WordTokenType, "package name")
	if perr != nil {
		return nil, perr
	}
	if _, perr := expectSymbol(s, ";"); perr != nil {
		return nil, perr
	}

	pkg := &PackageDeclaration{
		Name:    name.Content,
		Syntax:  syntax.Content,
		Imports: []string{},
		Entries: []Entry{},
		Token:   name,
	}

	for {
		token := s.Peek()
		switch {
		case token.Type == EndTokenType:
			return pkg, nil

		case token.Is(WordTokenType, "import"):
			s.Next()
			path, perr := parseQuotedString(s, "import path")
			if perr != nil {
				return nil, perr
			}
			if _, perr := expectSymbol(s, ";"); perr != nil {
				return nil, perr
			}
			pkg.Imports = append(pkg.Imports, path.Content)

		case token.Is(WordTokenType, "enum"):
			enum, perr := parseEnumDefinition(s)
			if perr != nil {
				return nil, perr
			}
			pkg.Entries = append(pkg.Entries, enum)

		case token.Is(WordTokenType, "message"):
			msg, perr := parseMessageDefinition(s)
			if perr != nil {
				return nil, perr
			}
			pkg.Entries = append(pkg.Entries, msg)

		default:
			return nil, unexpectedToken("`import`, `enum` or `message`", token)
		}
	}
}
