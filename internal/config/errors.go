package config

import (
	"errors"
	"fmt"
)

// ErrMissingDefaults reports that the built-in defaults document is absent.
// The process cannot proceed without a baseline configuration.
var ErrMissingDefaults = errors.New("default configuration source " + DefaultsPath + " not found")

// InvalidConfigPathError reports that the environment-specific configuration
// path is unspecified or does not resolve to any resource or file. Path is
// the literal offending path, empty when no path was supplied at all.
type InvalidConfigPathError struct {
	Path string
}

func (e *InvalidConfigPathError) Error() string {
	if e.Path == "" {
		return "no configuration path specified: set Options.Path or the CONFIG environment variable"
	}

	return fmt.Sprintf("invalid configuration path %q: no such resource or file", e.Path)
}

// MissingConfigError reports that the environment-specific path resolved but
// no source exists there.
type MissingConfigError struct {
	Path string
}

func (e *MissingConfigError) Error() string {
	return fmt.Sprintf("configuration source %q not found", e.Path)
}
