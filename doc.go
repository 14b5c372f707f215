// Package nxconf lets an application declare typed, validated configuration
// sections as schemas and consume them as immutable instances.
//
// A section is described once, declaratively, through a Builder. Compiling
// the builder runs every structural check at definition time: entry names
// must be case-insensitively unique and may not use the reserved underscore
// prefix, every entry needs a declared type, defaults must conform to that
// type, the reserved Init and Storage constructs are rejected, and each
// validator must reference a declared entry. A definition that breaks any of
// these rules fails compilation with a StructuralError naming the offender;
// no partial section type is ever produced.
//
// Instances are constructed from the compiled type with no arguments.
// Entries with a default carry it from construction; all other entries share
// a per-type singleton "Unset" marker, so unset-ness is pointer identity and
// costs a single shared allocation per declared type. Instances are
// immutable through the public surface: Get is the only read path, every
// Set attempt fails with an ImmutabilityError, and reading an undeclared
// name fails with a LookupError.
//
//	b := nxconf.NewSection("database").
//		Entry("host", cty.String).
//		EntryDefault("port", cty.Number, nxconf.MustVal(5432)).
//		Validate("port", func(sec nxconf.Entries, v cty.Value) error {
//			if v.LessThan(cty.NumberIntVal(1)).True() {
//				return errors.New("port must be positive")
//			}
//			return nil
//		})
//
//	ty, err := b.Compile(ctx)
//	if err != nil {
//		// definition-time StructuralError
//	}
//
//	sec := nxconf.New(ctx, ty)
//	host, _ := sec.Get("host") // the shared Unset marker
//	port, _ := sec.Get("port") // cty.NumberIntVal(5432)
//
// Validators run only when an external loader assigns an explicit value
// through the module's privileged assignment path; defaults and unset
// entries are trusted and never validated. Loading values from files or the
// environment, secret masking, and pretty-printing are the business of
// consumers of this contract, not of this package.
package nxconf
