// Package section is the runtime for compiled section types: it constructs
// instances and governs every access to their entry slots.
//
// An Instance is built from a schema.Type with no arguments. Construction
// populates every declared entry: entries with a default get the default
// value, all others get the shared Unset marker for their declared type.
// Validators never run during construction; defaults and unset slots are
// trusted state.
//
// After construction an instance is immutable through its public surface.
// Get is the only read path and Set rejects every write, declared entry or
// not. The storage layout is positional (slot index per declaration order),
// so user entry names can never collide with the runtime's own bookkeeping.
//
// Fill is the privileged assignment path reserved for value loaders inside
// this module; being in an internal package, it is unreachable from outside.
package section
