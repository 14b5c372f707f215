package unset

import (
	"sync"

	"github.com/zclconf/go-cty/cty"
)

// Value is the read-only handle to an "Unset" marker. The concrete type
// behind it cannot be constructed outside this package.
type Value interface {
	// String renders the marker as "Unset".
	String() string
	// GoString renders the diagnostic form, also "Unset".
	GoString() string
	// SentinelType reports the declared entry type this marker stands in for.
	SentinelType() cty.Type

	sealed()
}

// typedUnset is the one concrete marker implementation. It holds nothing but
// the declared type it belongs to, keeping the per-sentinel footprint to a
// single cty.Type header.
type typedUnset struct {
	ty cty.Type
}

func (u *typedUnset) String() string         { return "Unset" }
func (u *typedUnset) GoString() string       { return "Unset" }
func (u *typedUnset) SentinelType() cty.Type { return u.ty }
func (u *typedUnset) sealed()                {}

// sentinels maps a type's canonical representation to its singleton marker.
// Keyed on cty.Type.GoString rather than cty.Type itself because collection
// and object types are not comparable.
var sentinels sync.Map // Key: canonical type string, Value: *typedUnset

// ForType returns the singleton marker for the given declared entry type,
// creating it on first request. Repeated calls for the same type return the
// identical object, including under concurrent first access: LoadOrStore
// guarantees a single winner per key.
func ForType(ty cty.Type) Value {
	key := ty.GoString()
	if v, ok := sentinels.Load(key); ok {
		return v.(*typedUnset)
	}
	v, _ := sentinels.LoadOrStore(key, &typedUnset{ty: ty})
	return v.(*typedUnset)
}

// Is reports whether v is an Unset marker. Only the canonical object
// registered by ForType qualifies; a value of the same shape produced by
// other means (e.g. via reflection) is rejected.
func Is(v any) bool {
	u, ok := v.(*typedUnset)
	if !ok {
		return false
	}
	canonical, ok := sentinels.Load(u.ty.GoString())
	return ok && canonical.(*typedUnset) == u
}
