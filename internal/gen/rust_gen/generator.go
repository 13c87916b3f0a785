package rust_gen

import (
	"fmt"
	"strings"
	"text/template"

	"github.com/kbirk/prostgen/internal/parse"
)

const indentUnit = "    "

var (
	templateFuncs = template.FuncMap{
		"indent": func(depth int) string {
			return strings.Repeat(indentUnit, depth)
		},
	}
)

// GeneratePackageRustCode translates a parsed package into prost annotated
// Rust declarations, in declaration order.
func GeneratePackageRustCode(pkg *parse.PackageDeclaration) (string, error) {

	root := rootScope(pkg)

	var b strings.Builder
	for _, entry := range pkg.Entries {
		switch entry := entry.(type) {
		case *parse.EnumDefinition:
			code, err := generateEnumRustCode(entry, 0)
			if err != nil {
				return "", err
			}
			b.WriteString(code)
		case *parse.MessageDefinition:
			code, err := generateMessageRustCode(entry, pkg.Syntax, root, 0)
			if err != nil {
				return "", err
			}
			b.WriteString(code)
		default:
			return "", fmt.Errorf("unexpected top level declaration `%s`", entry.EntryName())
		}
	}

	return b.String(), nil
}
