package source

import (
	"errors"
	"fmt"
)

// ErrNotFound reports that no source exists at the requested path, in either
// the embedded resource space or the filesystem.
var ErrNotFound = errors.New("configuration source not found")

// MalformedSourceError reports a source that was found but could not be
// parsed as EDN. Path identifies the offending source for diagnosis.
type MalformedSourceError struct {
	Path string
	Err  error
}

func (e *MalformedSourceError) Error() string {
	return fmt.Sprintf("malformed configuration source %q: %v", e.Path, e.Err)
}

func (e *MalformedSourceError) Unwrap() error { return e.Err }
