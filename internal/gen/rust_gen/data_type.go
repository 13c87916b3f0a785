package rust_gen

import (
	"fmt"
	"strings"

	"github.com/kbirk/prostgen/internal/util"
)

const (
	optionType = "::core::option::Option"
	vecType    = "::prost::alloc::vec::Vec"
)

var primitiveRustTypes = map[string]string{
	"bool":     "bool",
	"float":    "f32",
	"double":   "f64",
	"int32":    "i32",
	"sint32":   "i32",
	"sfixed32": "i32",
	"int64":    "i64",
	"sint64":   "i64",
	"sfixed64": "i64",
	"uint32":   "u32",
	"fixed32":  "u32",
	"uint64":   "u64",
	"fixed64":  "u64",
	"string":   "::prost::alloc::string::String",
	"bytes":    "::prost::alloc::vec::Vec<u8>",
}

type dataKind int

const (
	primitiveDataKind dataKind = iota
	enumDataKind
	messageDataKind
)

type resolvedType struct {
	Name     string
	Kind     dataKind
	RustType string
	InScope  bool
	Depth    int
}

// resolveType decides the kind of a declared type name. Names that are neither
// a scoped enum nor a primitive are assumed to be messages.
func resolveType(name string, s scope) resolvedType {
	entry, inScope := s[name]
	if inScope && entry.Kind == enumScopeKind {
		return resolvedType{
			Name:     name,
			Kind:     enumDataKind,
			RustType: "i32",
			InScope:  true,
			Depth:    entry.Depth,
		}
	}
	if rustType, ok := primitiveRustTypes[name]; ok {
		return resolvedType{
			Name:     name,
			Kind:     primitiveDataKind,
			RustType: rustType,
		}
	}
	return resolvedType{
		Name:    name,
		Kind:    messageDataKind,
		InScope: inScope,
		Depth:   entry.Depth,
	}
}

// isPacked reports whether repeated values of the type use packed encoding.
func (t resolvedType) isPacked() bool {
	return t.Kind == primitiveDataKind && t.Name != "string" && t.Name != "bytes"
}

// isLengthDelimited reports whether the type may be both optional and repeated.
func (t resolvedType) isLengthDelimited() bool {
	return t.Kind == messageDataKind || t.Name == "string" || t.Name == "bytes"
}

// kindAttribute returns the leading prost attribute describing the type.
func (t resolvedType) kindAttribute(depth int, currentMessage string) string {
	switch t.Kind {
	case enumDataKind:
		return fmt.Sprintf(`enumeration="%s"`, t.path(depth, currentMessage))
	case messageDataKind:
		return "message"
	}
	if t.Name == "bytes" {
		return `bytes="vec"`
	}
	return t.Name
}

// path renders a reference to the named type from a declaration at depth
// nested in currentMessage.
func (t resolvedType) path(depth int, currentMessage string) string {
	return modulePath(depth-t.Depth, currentMessage) + util.EnsurePascalCase(t.Name)
}

// modulePath renders the module prefix that reaches a scope depthDiff levels
// out from the current declaration.
func modulePath(depthDiff int, currentMessage string) string {
	switch {
	case depthDiff == 0:
		return util.EnsureSnakeCase(currentMessage) + "::"
	case depthDiff == 1:
		return ""
	case depthDiff >= 2:
		return strings.Repeat("super::", depthDiff-1)
	}
	panic(fmt.Sprintf("invalid scope depth difference %d", depthDiff))
}
