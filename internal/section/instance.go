package section

import (
	"context"

	"github.com/nxconf/nxconf/internal/ctxlog"
	"github.com/nxconf/nxconf/internal/schema"
	"github.com/nxconf/nxconf/internal/unset"
	"github.com/zclconf/go-cty/cty"
)

// Instance is a constructed value of a compiled section type. Entry values
// live in positional slots keyed by declaration order; the name-to-slot
// mapping belongs to the type, not the instance.
type Instance struct {
	typ      *schema.Type
	slots    []any
	assigned []bool
}

// New constructs an instance of the given compiled type. Every declared
// entry is populated: defaulted entries with their default, the rest with
// the shared Unset marker for their declared type. No validator runs here.
func New(ctx context.Context, t *schema.Type) *Instance {
	slots := make([]any, t.NumEntries())
	defaulted := 0
	for i, d := range t.Entries() {
		if d.HasDefault {
			slots[i] = d.Default
			defaulted++
		} else {
			slots[i] = unset.ForType(d.Type)
		}
	}

	ctxlog.FromContext(ctx).Debug("constructed section instance.",
		"section", t.Name(),
		"entries", len(slots),
		"defaulted", defaulted,
		"unset", len(slots)-defaulted,
	)
	return &Instance{
		typ:      t,
		slots:    slots,
		assigned: make([]bool, len(slots)),
	}
}

// Type reports the compiled type this instance was constructed from.
func (s *Instance) Type() *schema.Type { return s.typ }

// Get returns the current value of a declared entry: a cty.Value (default or
// assigned) or the shared Unset marker. Reading an undeclared name fails
// with a LookupError.
func (s *Instance) Get(name string) (any, error) {
	i, ok := s.typ.EntryIndex(name)
	if !ok {
		return nil, &LookupError{Section: s.typ.Name(), Name: name}
	}
	return s.slots[i], nil
}

// Set always fails with an ImmutabilityError, regardless of whether name is
// a declared entry. There is no public write path on an instance.
func (s *Instance) Set(name string, value cty.Value) error {
	_ = value
	return &ImmutabilityError{Section: s.typ.Name(), Name: name}
}

// Call invokes a method declared on the section definition, passing it this
// instance. Calling an undeclared method fails with a LookupError.
func (s *Instance) Call(name string) (cty.Value, error) {
	m, ok := s.typ.Method(name)
	if !ok {
		return cty.NilVal, &LookupError{Section: s.typ.Name(), Name: name}
	}
	return m(s)
}
