package schema

import (
	"reflect"

	"github.com/zclconf/go-cty/cty"
)

// EntryDescriptor describes one declared configuration entry. Descriptors
// are handed out by value, so a compiled type's table cannot be modified
// through them.
type EntryDescriptor struct {
	// Name is the canonical entry name, in the exact case it was declared.
	Name string

	// Type is the declared value type. The compiler stores it opaquely and
	// only ever consults it for equality.
	Type cty.Type

	// HasDefault reports whether Default is meaningful.
	HasDefault bool

	// Default is the declared default value. Only meaningful when HasDefault
	// is true.
	Default cty.Value
}

// Type is a compiled section schema. It is produced once, by
// Builder.Compile, and never modified afterwards; all accessors return
// copies or read-only values, so a Type can be shared freely across
// goroutines.
type Type struct {
	name       string
	doc        string
	entries    []EntryDescriptor
	index      map[string]int
	validators map[string]Validator
	methods    map[string]MethodFunc
	nested     map[string]reflect.Type
	aliases    map[string]cty.Type
}

// Name reports the section name.
func (t *Type) Name() string { return t.name }

// Doc reports the documentation text attached to the section, if any.
func (t *Type) Doc() string { return t.doc }

// NumEntries reports how many entries the section declares.
func (t *Type) NumEntries() int { return len(t.entries) }

// Entries returns the entry descriptor table in declaration order. The
// returned slice is a copy.
func (t *Type) Entries() []EntryDescriptor {
	out := make([]EntryDescriptor, len(t.entries))
	copy(out, t.entries)
	return out
}

// Entry looks up the descriptor for an exact-case entry name.
func (t *Type) Entry(name string) (EntryDescriptor, bool) {
	i, ok := t.index[name]
	if !ok {
		return EntryDescriptor{}, false
	}
	return t.entries[i], true
}

// EntryIndex reports the slot position of an entry. Positions follow
// declaration order; the section runtime uses them as its storage layout.
func (t *Type) EntryIndex(name string) (int, bool) {
	i, ok := t.index[name]
	return i, ok
}

// Validator returns the validator registered for an entry, if any.
func (t *Type) Validator(entryName string) (Validator, bool) {
	v, ok := t.validators[entryName]
	return v, ok
}

// Method returns a declared method by name.
func (t *Type) Method(name string) (MethodFunc, bool) {
	m, ok := t.methods[name]
	return m, ok
}

// NestedType returns a declared nested type by name.
func (t *Type) NestedType(name string) (reflect.Type, bool) {
	rt, ok := t.nested[name]
	return rt, ok
}

// TypeAlias returns a declared type alias by name.
func (t *Type) TypeAlias(name string) (cty.Type, bool) {
	ty, ok := t.aliases[name]
	return ty, ok
}
