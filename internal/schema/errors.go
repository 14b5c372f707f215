package schema

import "fmt"

// StructuralError reports a section definition that violates the shape rules.
// It is always fatal to compilation and always carries the offending name.
type StructuralError struct {
	// Section is the name of the section being compiled.
	Section string

	// Name is the declared name the diagnostic is about.
	Name string

	// Detail explains which rule the declaration broke.
	Detail string
}

func (e *StructuralError) Error() string {
	return fmt.Sprintf("section %q: invalid declaration '%s': %s", e.Section, e.Name, e.Detail)
}

// structural is a small constructor shorthand used throughout compile.
func structural(section, name, format string, args ...any) *StructuralError {
	return &StructuralError{
		Section: section,
		Name:    name,
		Detail:  fmt.Sprintf(format, args...),
	}
}
