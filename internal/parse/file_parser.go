package parse

// ParseFile tokenizes and parses the content of a single schema file. Any
// error carries the file name and content for rendering.
func ParseFile(filename string, content string) (*PackageDeclaration, *ParsingError) {

	tokens, perr := Tokenize(content)
	if perr != nil {
		perr.Filename = filename
		perr.Content = content
		return nil, perr
	}

	pkg, perr := parsePackageDeclaration(NewTokenStream(tokens))
	if perr != nil {
		perr.Filename = filename
		perr.Content = content
		return nil, perr
	}

	return pkg, nil
}
