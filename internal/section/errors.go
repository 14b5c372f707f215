package section

import "fmt"

// LookupError reports a read of a name the section does not declare.
type LookupError struct {
	Section string
	Name    string
}

func (e *LookupError) Error() string {
	return fmt.Sprintf("section %q has no entry named '%s'", e.Section, e.Name)
}

// ImmutabilityError reports a write attempt through the public surface.
// Every such attempt fails, whether or not the target is a declared entry.
type ImmutabilityError struct {
	Section string
	Name    string
}

func (e *ImmutabilityError) Error() string {
	return fmt.Sprintf("'%s' cannot be set: instances of section %q are immutable", e.Name, e.Section)
}

// AlreadyAssignedError reports a second privileged assignment to the same
// entry of the same instance.
type AlreadyAssignedError struct {
	Section string
	Name    string
}

func (e *AlreadyAssignedError) Error() string {
	return fmt.Sprintf("entry '%s' of section %q has already been assigned a value", e.Name, e.Section)
}
