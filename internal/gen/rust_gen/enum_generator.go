package rust_gen

import (
	"bytes"
	"text/template"

	"github.com/kbirk/prostgen/internal/parse"
	"github.com/kbirk/prostgen/internal/util"
)

type EnumValueArgs struct {
	ValueNamePascalCase string
	Tag                 string
}

type EnumArgs struct {
	EnumNamePascalCase string
	Depth              int
	ValueDepth         int
	EnumValueArgs      []EnumValueArgs
}

const enumTemplateStr = `{{indent .Depth}}#[derive(Clone, Copy, Debug, PartialEq, Eq, Hash, PartialOrd, Ord, ::prost::Enumeration)]
{{indent .Depth}}#[repr(i32)]
{{indent .Depth}}pub enum {{.EnumNamePascalCase}} {
{{- range .EnumValueArgs}}
{{indent $.ValueDepth}}{{.ValueNamePascalCase}} = {{.Tag}},
{{- end}}
{{indent .Depth}}}
`

var (
	enumTemplate = template.Must(template.New("enumTemplateRust").Funcs(templateFuncs).Parse(enumTemplateStr))
)

// generateEnumRustCode emits the enum with each value set to its declared tag.
// Tags are neither reordered nor checked for gaps or duplicates.
func generateEnumRustCode(enum *parse.EnumDefinition, depth int) (string, error) {

	var enumValueArgs []EnumValueArgs
	for _, v := range enum.Values {
		enumValueArgs = append(enumValueArgs, EnumValueArgs{
			ValueNamePascalCase: util.EnsurePascalCase(v.Name),
			Tag:                 v.Tag,
		})
	}

	args := EnumArgs{
		EnumNamePascalCase: util.EnsurePascalCase(enum.Name),
		Depth:              depth,
		ValueDepth:         depth + 1,
		EnumValueArgs:      enumValueArgs,
	}

	buf := &bytes.Buffer{}
	err := enumTemplate.Execute(buf, args)
	if err != nil {
		return "", err
	}
	return buf.String(), nil
}
