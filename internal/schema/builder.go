package schema

import (
	"reflect"

	"github.com/zclconf/go-cty/cty"
)

// Entries is the minimal read surface a validator or method sees of the
// section instance it belongs to. The section runtime's instance type
// implements it.
type Entries interface {
	// Get returns the current value of a declared entry: its default, the
	// shared Unset marker, or a previously assigned value.
	Get(name string) (any, error)
}

// Validator checks a candidate value for one entry before an external loader
// is allowed to store it. A nil return accepts the value; any error rejects
// it and propagates to the loader unchanged.
type Validator func(sec Entries, value cty.Value) error

// MethodFunc is a method declared on a section definition. It computes a
// value from the instance it is invoked on.
type MethodFunc func(sec Entries) (cty.Value, error)

type declKind int

const (
	declEntry declKind = iota
	declConstant
	declMethod
	declNestedType
	declTypeAlias
	declInit
	declStorage
)

// decl is one recorded declaration from a section definition body. Which of
// the payload fields is meaningful depends on kind.
type decl struct {
	kind       declKind
	name       string
	ty         cty.Type
	def        cty.Value
	hasDefault bool
	method     MethodFunc
	nested     reflect.Type
	alias      cty.Type
}

type validatorDecl struct {
	target string
	fn     Validator
}

// Builder records a section definition for compilation. Declarations are
// kept in the order they are made; all structural checking is deferred to
// Compile so that the recorded body is classified exactly once, in one
// place.
//
// All declaration methods return the builder for chaining.
type Builder struct {
	name       string
	doc        string
	decls      []decl
	validators []validatorDecl
	compiled   bool
}

// NewBuilder starts recording a section definition with the given name.
func NewBuilder(name string) *Builder {
	return &Builder{name: name}
}

// Name reports the section name this builder was started with.
func (b *Builder) Name() string { return b.name }

// Doc attaches opaque documentation text to the section. It is passed
// through to the compiled type unchanged.
func (b *Builder) Doc(text string) *Builder {
	b.doc = text
	return b
}

// Entry declares a typed entry with no default value. Instances fill it with
// the shared Unset marker for ty.
func (b *Builder) Entry(name string, ty cty.Type) *Builder {
	b.decls = append(b.decls, decl{kind: declEntry, name: name, ty: ty})
	return b
}

// EntryDefault declares a typed entry with a default value.
func (b *Builder) EntryDefault(name string, ty cty.Type, def cty.Value) *Builder {
	b.decls = append(b.decls, decl{kind: declEntry, name: name, ty: ty, def: def, hasDefault: true})
	return b
}

// Constant records a bare assigned value with no declared type. The compiler
// rejects this shape: without a type annotation the name is ambiguous
// between an entry and a constant.
func (b *Builder) Constant(name string, value cty.Value) *Builder {
	b.decls = append(b.decls, decl{kind: declConstant, name: name, def: value})
	return b
}

// Method declares an ordinary method on the section. Methods are passed
// through to the compiled type; they are not entries.
func (b *Builder) Method(name string, fn MethodFunc) *Builder {
	b.decls = append(b.decls, decl{kind: declMethod, name: name, method: fn})
	return b
}

// NestedType declares a named nested type on the section. Nested types are
// passed through; they are not entries.
func (b *Builder) NestedType(name string, rt reflect.Type) *Builder {
	b.decls = append(b.decls, decl{kind: declNestedType, name: name, nested: rt})
	return b
}

// TypeAlias declares a named alias for a value type. Aliases are passed
// through; they are not entries.
func (b *Builder) TypeAlias(name string, ty cty.Type) *Builder {
	b.decls = append(b.decls, decl{kind: declTypeAlias, name: name, alias: ty})
	return b
}

// Init records an attempt to override the zero-argument initializer. The
// compiler rejects it: the compiled section supplies the only constructor.
func (b *Builder) Init(fn func()) *Builder {
	_ = fn
	b.decls = append(b.decls, decl{kind: declInit, name: "Init"})
	return b
}

// Storage records an explicit attribute-storage declaration (a fixed slot
// list). The compiler rejects it: slot layout is determined by the compiler.
func (b *Builder) Storage(names ...string) *Builder {
	_ = names
	b.decls = append(b.decls, decl{kind: declStorage, name: "Storage"})
	return b
}

// Validate registers a validator for the named entry. The reference is
// checked at compile time: the target must be a declared entry of this same
// section, not a method, nested type, type alias, or undeclared name.
func (b *Builder) Validate(entryName string, fn Validator) *Builder {
	b.validators = append(b.validators, validatorDecl{target: entryName, fn: fn})
	return b
}
