// Package unset provides the singleton "Unset" marker values that fill the
// slots of section entries which have no default and have not been assigned.
//
// Each distinct declared entry type gets exactly one marker object, created
// lazily on first request and shared by every instance of every section that
// needs it. Because the sentinel for a given type is a singleton, "is this
// entry unset" reduces to pointer identity.
//
// The concrete marker type is unexported, so no code outside this package can
// construct one; ForType is the sole producer. Both the human-readable and
// the diagnostic rendering of a marker are the literal string "Unset", and
// the concrete type name carries the "Unset" substring so that generic
// introspection (reflect.TypeOf(v).Name()) can recognize markers without
// importing this package.
package unset
