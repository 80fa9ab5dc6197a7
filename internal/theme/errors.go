package theme

import (
	"errors"
	"fmt"
)

// ErrStorageUnavailable is reported when no PreferenceStore is configured.
var ErrStorageUnavailable = errors.New("preference storage unavailable")

// PersistenceError wraps a failed read or write of the stored preference.
// The Manager logs these and carries on with its in-memory state.
type PersistenceError struct {
	Op  string // "load" or "save"
	Key string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("theme: %s %q: %v", e.Op, e.Key, e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }
