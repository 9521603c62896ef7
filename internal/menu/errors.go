package menu

import (
	"errors"
	"fmt"
)

// ActionError wraps a fault raised while running a menu entry.
type ActionError struct {
	ID    int
	Label string
	Err   error
	Panic bool
}

func (e *ActionError) Error() string {
	if e.Panic {
		return fmt.Sprintf("menu: entry %d %q panicked: %v", e.ID, e.Label, e.Err)
	}
	return fmt.Sprintf("menu: entry %d %q: %v", e.ID, e.Label, e.Err)
}

func (e *ActionError) Unwrap() error {
	return e.Err
}

func cause(err error) string {
	var ae *ActionError
	if errors.As(err, &ae) {
		return ae.Err.Error()
	}
	return err.Error()
}
