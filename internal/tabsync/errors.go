package tabsync

import (
	"errors"
	"fmt"
)

// ErrConfiguration reports that the list was wired with a collaborator
// the coordinator cannot work with
var ErrConfiguration = errors.New("tabsync: incompatible collaborator")

var errListenerTaken = fmt.Errorf("%w: a tab sync scroll listener is already registered", ErrConfiguration)

// UnsupportedLayoutError is the panic value raised when a scroll event
// arrives from a layout manager that cannot report its leading position
type UnsupportedLayoutError struct {
	Layout any
}

func (e *UnsupportedLayoutError) Error() string {
	return fmt.Sprintf("tabsync: layout manager %T is unsupported", e.Layout)
}
