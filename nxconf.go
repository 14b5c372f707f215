package nxconf

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/nxconf/nxconf/internal/ctxlog"
	"github.com/nxconf/nxconf/internal/schema"
	"github.com/nxconf/nxconf/internal/section"
	"github.com/nxconf/nxconf/internal/unset"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/gocty"
)

// Aliases for the schema-side API: recording a definition, compiling it, and
// introspecting the result.
type (
	// Builder records a section definition; see NewSection.
	Builder = schema.Builder

	// Type is a compiled, immutable section schema.
	Type = schema.Type

	// EntryDescriptor describes one declared entry of a compiled type.
	EntryDescriptor = schema.EntryDescriptor

	// Entries is the read surface validators and methods receive.
	Entries = schema.Entries

	// Validator checks an externally supplied value for one entry.
	Validator = schema.Validator

	// MethodFunc is a method declared on a section definition.
	MethodFunc = schema.MethodFunc

	// StructuralError is the definition-time failure reported by Compile.
	StructuralError = schema.StructuralError
)

// Aliases for the instance-side API.
type (
	// Section is an immutable instance of a compiled section type.
	Section = section.Instance

	// LookupError reports a read of an undeclared entry.
	LookupError = section.LookupError

	// ImmutabilityError reports a write attempt on an instance.
	ImmutabilityError = section.ImmutabilityError
)

// NewSection starts recording a section definition with the given name.
func NewSection(name string) *Builder {
	return schema.NewBuilder(name)
}

// New constructs an instance of a compiled section type. It takes no entry
// values: defaults and Unset markers are the only initial state. The context
// carries the logger construction reports through, nothing more.
func New(ctx context.Context, t *Type) *Section {
	return section.New(ctx, t)
}

// IsUnset reports whether v is the Unset marker of some entry type. It works
// on any value without knowing which entry it came from.
func IsUnset(v any) bool {
	return unset.Is(v)
}

// WithLogger embeds a logger in ctx so that Compile emits its records
// through it instead of the process default.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return ctxlog.WithLogger(ctx, logger)
}

// Val converts a native Go value to the cty.Value used for defaults and
// loader-supplied values, implying the cty type from the Go type.
func Val(v any) (cty.Value, error) {
	ty, err := gocty.ImpliedType(v)
	if err != nil {
		return cty.NilVal, fmt.Errorf("cannot imply a value type from %T: %w", v, err)
	}
	out, err := gocty.ToCtyValue(v, ty)
	if err != nil {
		return cty.NilVal, fmt.Errorf("cannot convert %T to %s: %w", v, ty.FriendlyName(), err)
	}
	return out, nil
}

// MustVal is Val for values known good at compile time; it panics on
// conversion failure.
func MustVal(v any) cty.Value {
	out, err := Val(v)
	if err != nil {
		panic(err)
	}
	return out
}
