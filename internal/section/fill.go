package section

import (
	"github.com/zclconf/go-cty/cty"
)

// Fill is the privileged assignment path used by value loaders. It stores an
// externally supplied value into an entry slot, at most once per entry per
// instance lifetime, running the entry's registered validator first. A
// validator error propagates unchanged and leaves the slot untouched.
//
// Fill must only be called before the instance is shared across goroutines;
// once published, instances are read-only.
func Fill(s *Instance, name string, value cty.Value) error {
	i, ok := s.typ.EntryIndex(name)
	if !ok {
		return &LookupError{Section: s.typ.Name(), Name: name}
	}
	if s.assigned[i] {
		return &AlreadyAssignedError{Section: s.typ.Name(), Name: name}
	}
	if v, ok := s.typ.Validator(name); ok {
		if err := v(s, value); err != nil {
			return err
		}
	}
	s.slots[i] = value
	s.assigned[i] = true
	return nil
}
