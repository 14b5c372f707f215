// Package schema turns a recorded section definition into a compiled,
// immutable section type.
//
// A Builder is a faithful recorder: every declaration that appears in a
// section definition is appended in order, including shapes the compiler will
// reject. Compile then classifies each recorded name exactly once, at
// definition time, and either produces a *Type or fails with a
// StructuralError naming the offending declaration. A failed compile yields
// no usable type.
//
// The compiled Type is the single source of truth consumed by the section
// runtime: the declaration-ordered entry descriptor table, the entry-name to
// validator mapping, and the pass-through members (methods, nested types,
// type aliases, doc text).
package schema
