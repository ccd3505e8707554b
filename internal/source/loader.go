// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Untangled Web Authors

package source

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/untangled-web/server/internal/document"
	"github.com/untangled-web/server/internal/logger"
	"olympos.io/encoding/edn"
)

// Loader reads EDN configuration documents. The resource space is typically
// the host binary's go:embed tree; a nil resource space disables embedded
// lookup.
type Loader struct {
	resources fs.FS
	log       *logger.Logger
}

// NewLoader constructs a Loader over the given embedded resource space.
func NewLoader(resources fs.FS, log *logger.Logger) *Loader {
	if log == nil {
		log = logger.Nop()
	}

	return &Loader{resources: resources, log: log}
}

// Load reads and parses the document at path.
//
// An absolute path is read from the filesystem only. A relative path is
// first looked up in the embedded resource space and then relative to the
// working directory. A path that resolves to nothing yields ErrNotFound; a
// source that exists but is not valid EDN yields *MalformedSourceError.
func (l *Loader) Load(path string) (document.Document, error) {
	if path == "" {
		return nil, ErrNotFound
	}

	if filepath.IsAbs(path) {
		data, err := os.ReadFile(path)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return nil, ErrNotFound
			}
			return nil, fmt.Errorf("error reading configuration source %q: %w", path, err)
		}
		return l.parse(path, data)
	}

	if l.resources != nil && fs.ValidPath(filepath.ToSlash(path)) {
		data, err := fs.ReadFile(l.resources, filepath.ToSlash(path))
		if err == nil {
			l.log.Debug().Str("path", path).Msg("loaded configuration source from embedded resources")
			return l.parse(path, data)
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("error reading embedded configuration source %q: %w", path, err)
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("error reading configuration source %q: %w", path, err)
	}

	return l.parse(path, data)
}

func (l *Loader) parse(path string, data []byte) (document.Document, error) {
	var doc document.Document
	if err := edn.Unmarshal(data, &doc); err != nil {
		return nil, &MalformedSourceError{Path: path, Err: err}
	}

	return doc, nil
}
