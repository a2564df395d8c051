package texttype

import (
	"errors"
	"fmt"
)

// ErrUnknownType is matched by every error about a type name missing from a
// registry.
var ErrUnknownType = errors.New("unknown text type")

// UnknownTypeError reports the type name that could not be resolved.
type UnknownTypeError struct {
	Name string
}

func (e *UnknownTypeError) Error() string {
	return fmt.Sprintf("unknown text type %q", e.Name)
}

// Is makes errors.Is(err, ErrUnknownType) hold.
func (e *UnknownTypeError) Is(target error) bool {
	return target == ErrUnknownType
}
