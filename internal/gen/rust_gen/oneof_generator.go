package rust_gen

import (
	"bytes"
	"fmt"
	"text/template"

	"github.com/kbirk/prostgen/internal/parse"
	"github.com/kbirk/prostgen/internal/util"
)

type OneofVariantArgs struct {
	Attributes            string
	VariantNamePascalCase string
	VariantType           string
}

type OneofArgs struct {
	OneofNamePascalCase string
	Depth               int
	VariantDepth        int
	Variants            []OneofVariantArgs
}

const oneofTemplateStr = `{{indent .Depth}}#[derive(Clone, PartialEq, ::prost::Oneof)]
{{indent .Depth}}pub enum {{.OneofNamePascalCase}} {
{{- range .Variants}}
{{indent $.VariantDepth}}#[prost({{.Attributes}})]
{{indent $.VariantDepth}}{{.VariantNamePascalCase}}({{.VariantType}}),
{{- end}}
{{indent .Depth}}}
`

var (
	oneofTemplate = template.Must(template.New("oneofTemplateRust").Funcs(templateFuncs).Parse(oneofTemplateStr))
)

// generateOneofRustCode emits the union type for a oneof. The union lives in
// the enclosing message's module, so depth is one more than the message's.
func generateOneofRustCode(oneof *parse.OneofDefinition, s scope, depth int) (string, error) {

	var variants []OneofVariantArgs
	for _, field := range oneof.Fields {
		typ := resolveType(field.Type, s)

		var variantType string
		switch {
		case typ.Kind == messageDataKind && typ.InScope:
			variantType = typ.path(depth, oneof.Name)
		case typ.Kind == messageDataKind:
			variantType = "super::" + util.EnsurePascalCase(typ.Name)
		default:
			variantType = typ.RustType
		}

		variants = append(variants, OneofVariantArgs{
			Attributes:            fmt.Sprintf(`%s, tag="%s"`, typ.kindAttribute(depth, oneof.Name), field.Tag),
			VariantNamePascalCase: util.EnsurePascalCase(field.Name),
			VariantType:           variantType,
		})
	}

	args := OneofArgs{
		OneofNamePascalCase: util.EnsurePascalCase(oneof.Name),
		Depth:               depth,
		VariantDepth:        depth + 1,
		Variants:            variants,
	}

	buf := &bytes.Buffer{}
	err := oneofTemplate.Execute(buf, args)
	if err != nil {
		return "", err
	}
	return buf.String(), nil
}
