// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Untangled Web Authors

package config

import (
	"errors"
	"fmt"
	"path/filepath"

	"dario.cat/mergo"
	"github.com/caarlos0/env/v11"
	"github.com/untangled-web/server/internal/document"
	"github.com/untangled-web/server/internal/source"
	"olympos.io/encoding/edn"
)

// resolutionBuilder sequences the resolution pipeline. Each stage is a no-op
// once an earlier stage has recorded an error, so the pipeline reads as a
// straight chain and fails on the first problem.
type resolutionBuilder struct {
	resolver *Resolver
	opts     Options

	defaults document.Document
	environ  document.Document
	merged   any
	err      error
}

func newResolutionBuilder(r *Resolver, opts Options) *resolutionBuilder {
	return &resolutionBuilder{resolver: r, opts: opts}
}

func (b *resolutionBuilder) withDefaults() *resolutionBuilder {
	if b.err != nil {
		return b
	}

	doc, err := b.resolver.loader.Load(DefaultsPath)
	switch {
	case errors.Is(err, source.ErrNotFound):
		b.err = ErrMissingDefaults
	case err != nil:
		b.err = err
	default:
		b.resolver.log.Debug().Str("path", DefaultsPath).Msg("loaded defaults document")
		b.defaults = doc
	}

	return b
}

func (b *resolutionBuilder) withEnvironmentConfig() *resolutionBuilder {
	if b.err != nil {
		return b
	}

	path, err := b.configPath()
	if err != nil {
		b.err = err
		return b
	}

	doc, err := b.resolver.loader.Load(path)
	switch {
	case errors.Is(err, source.ErrNotFound) && !filepath.IsAbs(path):
		// A relative path that is neither a bundled resource nor a file is
		// a misconfigured path, not a missing document.
		b.err = &InvalidConfigPathError{Path: path}
	case errors.Is(err, source.ErrNotFound):
		b.err = &MissingConfigError{Path: path}
	case err != nil:
		b.err = err
	default:
		b.resolver.log.Debug().Str("path", path).Msg("loaded environment-specific document")
		b.environ = doc
	}

	return b
}

// configPath determines the environment-specific source path by layering its
// two sources: the explicit Options.Path wins, the CONFIG process environment
// variable fills the gap. An unspecified path is itself an error, never
// silently tolerated.
func (b *resolutionBuilder) configPath() (string, error) {
	var pe processEnv
	if err := env.Parse(&pe); err != nil {
		return "", fmt.Errorf("error reading process environment: %w", err)
	}

	located := b.opts
	if err := mergo.Merge(&located, Options{Path: pe.Path}); err != nil {
		return "", fmt.Errorf("error layering configuration path sources: %w", err)
	}

	if located.Path == "" {
		return "", &InvalidConfigPathError{}
	}
	if b.opts.Path == "" {
		b.resolver.log.Debug().Str("path", located.Path).Msg("configuration path taken from CONFIG environment variable")
	}

	return located.Path, nil
}

func (b *resolutionBuilder) merge() *resolutionBuilder {
	if b.err != nil {
		return b
	}

	merged, err := document.Merge(b.defaults, b.environ)
	if err != nil {
		b.err = err
		return b
	}

	b.merged = merged
	return b
}

func (b *resolutionBuilder) substitute() *resolutionBuilder {
	if b.err != nil {
		return b
	}

	substituted, err := b.resolver.subst.Substitute(b.merged)
	if err != nil {
		b.err = err
		return b
	}

	b.merged = substituted
	return b
}

func (b *resolutionBuilder) resolveSymbols() *resolutionBuilder {
	if b.err != nil {
		return b
	}

	resolved, err := document.Transform(b.merged, func(v any) (any, error) {
		sym, ok := v.(edn.Symbol)
		if !ok {
			return v, nil
		}
		return b.resolver.symbols.Resolve(sym)
	})
	if err != nil {
		b.err = err
		return b
	}

	b.merged = resolved
	return b
}

func (b *resolutionBuilder) build() (document.Document, error) {
	if b.err != nil {
		return nil, fmt.Errorf("error resolving configuration: %w", b.err)
	}

	doc, ok := b.merged.(document.Document)
	if !ok {
		return nil, fmt.Errorf("error resolving configuration: resolved value is not a mapping (%T)", b.merged)
	}

	return doc, nil
}
