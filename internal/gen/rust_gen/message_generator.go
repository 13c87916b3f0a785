package rust_gen

import (
	"bytes"
	"fmt"
	"strings"
	"text/template"

	"github.com/kbirk/prostgen/internal/parse"
	"github.com/kbirk/prostgen/internal/util"
)

const proto2Syntax = "proto2"

type MessageFieldArgs struct {
	Attributes         string
	FieldNameSnakeCase string
	FieldType          string
}

type MessageArgs struct {
	MessageName           string
	MessageNamePascalCase string
	MessageNameSnakeCase  string
	Depth                 int
	FieldDepth            int
	MessageFields         []MessageFieldArgs
	HasNested             bool
	NestedCode            string
}

const messageTemplateStr = `{{indent .Depth}}#[derive(Clone, PartialEq, ::prost::Message)]
{{indent .Depth}}pub struct {{.MessageNamePascalCase}} {
{{- range .MessageFields}}
{{indent $.FieldDepth}}#[prost({{.Attributes}})]
{{indent $.FieldDepth}}pub {{.FieldNameSnakeCase}}: {{.FieldType}},
{{- end}}
{{indent .Depth}}}
{{- if .HasNested}}
{{indent .Depth}}/// Nested message and enum types in ` + "`{{.MessageName}}`" + `.
{{indent .Depth}}pub mod {{.MessageNameSnakeCase}} {
{{.NestedCode}}{{indent .Depth}}}
{{- end}}
`

var (
	messageTemplate = template.Must(template.New("messageTemplateRust").Funcs(templateFuncs).Parse(messageTemplateStr))
)

func generateMessageFieldArgs(msg *parse.MessageDefinition, field *parse.MessageFieldDefinition, syntax string, s scope, depth int) (MessageFieldArgs, error) {

	typ := resolveType(field.Type, s)

	if field.Optional && field.Repeated && !typ.isLengthDelimited() {
		return MessageFieldArgs{}, &parse.ParsingError{
			Message: fmt.Sprintf("field `%s` of type `%s` cannot be both optional and repeated", field.Name, field.Type),
			Token:   field.Token,
		}
	}

	// singular messages always track presence
	optional := field.Optional || (typ.Kind == messageDataKind && !field.Repeated)

	attributes := []string{
		typ.kindAttribute(depth, msg.Name),
	}
	if optional {
		attributes = append(attributes, "optional")
	}
	if field.Repeated {
		attributes = append(attributes, "repeated")
	}
	// proto3 packs repeated scalars by default, proto2 does not
	if syntax == proto2Syntax && field.Repeated && typ.isPacked() {
		attributes = append(attributes, `packed="false"`)
	}
	attributes = append(attributes, fmt.Sprintf(`tag="%s"`, field.Tag))

	var valueType string
	switch {
	case typ.Kind == messageDataKind && typ.InScope:
		valueType = typ.path(depth, msg.Name)
	case typ.Kind == messageDataKind:
		valueType = util.EnsurePascalCase(typ.Name)
	default:
		valueType = typ.RustType
	}
	if field.Repeated {
		valueType = vecType + "<" + valueType + ">"
	}
	if optional {
		valueType = optionType + "<" + valueType + ">"
	}

	return MessageFieldArgs{
		Attributes:         strings.Join(attributes, ", "),
		FieldNameSnakeCase: util.EnsureSnakeCase(field.Name),
		FieldType:          valueType,
	}, nil
}

func generateOneofFieldArgs(msg *parse.MessageDefinition, oneof *parse.OneofDefinition) MessageFieldArgs {
	oneofPath := util.EnsureSnakeCase(msg.Name) + "::" + util.EnsurePascalCase(oneof.Name)
	return MessageFieldArgs{
		Attributes:         fmt.Sprintf(`oneof="%s", tags="%s"`, oneofPath, strings.Join(oneof.Tags(), ", ")),
		FieldNameSnakeCase: util.EnsureSnakeCase(oneof.Name),
		FieldType:          optionType + "<" + oneofPath + ">",
	}
}

func generateMessageRustCode(msg *parse.MessageDefinition, syntax string, parent scope, depth int) (string, error) {

	s := parent.withNested(msg, depth)

	var fields []MessageFieldArgs
	for _, entry := range msg.Entries {
		switch entry := entry.(type) {
		case *parse.MessageFieldDefinition:
			field, err := generateMessageFieldArgs(msg, entry, syntax, s, depth)
			if err != nil {
				return "", err
			}
			fields = append(fields, field)
		case *parse.OneofDefinition:
			fields = append(fields, generateOneofFieldArgs(msg, entry))
		}
	}

	var nested strings.Builder
	for _, entry := range msg.Entries {
		switch entry := entry.(type) {
		case *parse.EnumDefinition:
			code, err := generateEnumRustCode(entry, depth+1)
			if err != nil {
				return "", err
			}
			nested.WriteString(code)
		case *parse.MessageDefinition:
			code, err := generateMessageRustCode(entry, syntax, s, depth+1)
			if err != nil {
				return "", err
			}
			nested.WriteString(code)
		case *parse.OneofDefinition:
			code, err := generateOneofRustCode(entry, s, depth+1)
			if err != nil {
				return "", err
			}
			nested.WriteString(code)
		}
	}

	args := MessageArgs{
		MessageName:           msg.Name,
		MessageNamePascalCase: util.EnsurePascalCase(msg.Name),
		MessageNameSnakeCase:  util.EnsureSnakeCase(msg.Name),
		Depth:                 depth,
		FieldDepth:            depth + 1,
		MessageFields:         fields,
		HasNested:             msg.HasNested(),
		NestedCode:            nested.String(),
	}

	buf := &bytes.Buffer{}
	err := messageTemplate.Execute(buf, args)
	if err != nil {
		return "", err
	}
	return buf.String(), nil
}
