package schema

import (
	"context"
	"fmt"
	"reflect"
	"strings"

	"github.com/nxconf/nxconf/internal/ctxlog"
	"github.com/zclconf/go-cty/cty"
)

// Compile classifies every recorded declaration and produces the immutable
// section type, or fails with a StructuralError identifying the first
// offending declaration. It runs exactly once per builder; a failed compile
// leaves no usable type behind.
func (b *Builder) Compile(ctx context.Context) (*Type, error) {
	if b.compiled {
		return nil, fmt.Errorf("section %q has already been compiled", b.name)
	}

	t := &Type{
		name:       b.name,
		doc:        b.doc,
		index:      make(map[string]int),
		validators: make(map[string]Validator),
		methods:    make(map[string]MethodFunc),
		nested:     make(map[string]reflect.Type),
		aliases:    make(map[string]cty.Type),
	}

	// Exact-case names already taken by any declaration kind, and folded
	// entry names for the case-insensitive uniqueness rule.
	seen := make(map[string]struct{})
	foldedEntries := make(map[string]string)

	for _, d := range b.decls {
		switch d.kind {
		case declInit:
			return nil, structural(b.name, d.name,
				"overriding the zero-argument initializer is not allowed; the compiled section supplies the only constructor")
		case declStorage:
			return nil, structural(b.name, d.name,
				"explicit attribute-storage declarations are not allowed; the compiler determines the slot layout")
		case declConstant:
			return nil, structural(b.name, d.name,
				"a value was assigned without a declared type, which is ambiguous between an entry and a constant; declare it as a typed entry")
		}

		if _, taken := seen[d.name]; taken {
			return nil, structural(b.name, d.name, "the name is declared more than once")
		}

		switch d.kind {
		case declEntry:
			if err := b.checkEntry(d, foldedEntries); err != nil {
				return nil, err
			}
			foldedEntries[strings.ToLower(d.name)] = d.name
			t.index[d.name] = len(t.entries)
			t.entries = append(t.entries, EntryDescriptor{
				Name:       d.name,
				Type:       d.ty,
				HasDefault: d.hasDefault,
				Default:    d.def,
			})
		case declMethod:
			if d.method == nil {
				return nil, structural(b.name, d.name, "the method '%s' has a nil implementation", d.name)
			}
			t.methods[d.name] = d.method
		case declNestedType:
			t.nested[d.name] = d.nested
		case declTypeAlias:
			t.aliases[d.name] = d.alias
		}
		seen[d.name] = struct{}{}
	}

	for _, v := range b.validators {
		if err := b.checkValidator(t, v); err != nil {
			return nil, err
		}
		t.validators[v.target] = v.fn
	}

	b.compiled = true

	ctxlog.FromContext(ctx).Debug("compiled section schema.",
		"section", t.name,
		"entries", len(t.entries),
		"validators", len(t.validators),
	)
	return t, nil
}

// checkEntry enforces the per-entry shape rules: no reserved underscore
// prefix, a present type annotation, a type-conforming default, and
// case-insensitive uniqueness against previously declared entries.
func (b *Builder) checkEntry(d decl, foldedEntries map[string]string) error {
	if strings.HasPrefix(d.name, "_") {
		return structural(b.name, d.name,
			"entry names may not begin with an underscore; that namespace is reserved for internal use")
	}
	if d.ty.Equals(cty.NilType) {
		return structural(b.name, d.name, "the entry has no declared type")
	}
	if prior, clash := foldedEntries[strings.ToLower(d.name)]; clash {
		return structural(b.name, d.name,
			"the entry name collides with '%s'; entry names must be case-insensitively unique within a section", prior)
	}
	if d.hasDefault && !d.def.Type().Equals(d.ty) {
		return structural(b.name, d.name,
			"the default value has type %s, which does not conform to the declared type %s",
			d.def.Type().FriendlyName(), d.ty.FriendlyName())
	}
	return nil
}

// checkValidator enforces referential correctness of a validator
// registration against the already classified declarations.
func (b *Builder) checkValidator(t *Type, v validatorDecl) error {
	if v.fn == nil {
		return structural(b.name, v.target, "validate was given a nil handler for name '%s'", v.target)
	}
	if _, dup := t.validators[v.target]; dup {
		return structural(b.name, v.target,
			"validate was given name '%s', which already has a validator; only one validator per entry is supported", v.target)
	}
	if _, ok := t.index[v.target]; ok {
		return nil
	}

	// Not an entry; say precisely what the name actually refers to.
	switch {
	case b.hasMethod(v.target):
		return structural(b.name, v.target,
			"validate was given name '%s', which refers to a method, not an entry", v.target)
	case b.hasNestedType(v.target):
		return structural(b.name, v.target,
			"validate was given name '%s', which refers to a nested type, not an entry", v.target)
	case b.hasTypeAlias(v.target):
		return structural(b.name, v.target,
			"validate was given name '%s', which refers to a type alias, not an entry", v.target)
	default:
		return structural(b.name, v.target,
			"validate was given name '%s', which is not declared in this section", v.target)
	}
}

func (b *Builder) hasMethod(name string) bool     { return b.hasDecl(declMethod, name) }
func (b *Builder) hasNestedType(name string) bool { return b.hasDecl(declNestedType, name) }
func (b *Builder) hasTypeAlias(name string) bool  { return b.hasDecl(declTypeAlias, name) }

func (b *Builder) hasDecl(kind declKind, name string) bool {
	for _, d := range b.decls {
		if d.kind == kind && d.name == name {
			return true
		}
	}
	return false
}
