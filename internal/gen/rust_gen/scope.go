package rust_gen

import (
	"github.com/kbirk/prostgen/internal/parse"
	"github.com/kbirk/prostgen/internal/util"
)

type scopeKind int

const (
	messageScopeKind scopeKind = iota
	enumScopeKind
)

type scopeEntry struct {
	Kind  scopeKind
	Depth int
}

// scope maps a declared type name to its kind and the depth it was declared
// at. A scope is never mutated once handed to a nested message.
type scope map[string]scopeEntry

// rootScope registers the top-level enums of a package. Top-level messages are
// left unregistered and resolve through the message fallback.
func rootScope(pkg *parse.PackageDeclaration) scope {
	root := scope{}
	for _, enum := range pkg.Enums() {
		root[enum.Name] = scopeEntry{
			Kind:  enumScopeKind,
			Depth: -1,
		}
	}
	return root
}

// withNested returns a copy of the scope extended with the messages and enums
// declared directly inside msg.
func (s scope) withNested(msg *parse.MessageDefinition, depth int) scope {
	next := scope(util.MergeMap(make(map[string]scopeEntry, len(s)+len(msg.Entries)), s))
	for _, entry := range msg.Entries {
		switch entry := entry.(type) {
		case *parse.EnumDefinition:
			next[entry.Name] = scopeEntry{
				Kind:  enumScopeKind,
				Depth: depth,
			}
		case *parse.MessageDefinition:
			next[entry.Name] = scopeEntry{
				Kind:  messageScopeKind,
				Depth: depth,
			}
		}
	}
	return next
}
