// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Untangled Web Authors

package config

import (
	"io/fs"

	"github.com/untangled-web/server/internal/document"
	"github.com/untangled-web/server/internal/logger"
	"github.com/untangled-web/server/internal/registry"
	"github.com/untangled-web/server/internal/source"
	"github.com/untangled-web/server/internal/subst"
)

// DefaultsPath is the fixed, well-known path of the built-in defaults
// document, resolved against the embedded resource space first.
const DefaultsPath = "config/defaults.edn"

// Options carries the caller-supplied inputs of a resolution run.
type Options struct {
	// Path is the explicit path to the environment-specific document.
	// When empty, the CONFIG environment variable is consulted instead;
	// if that is unset too, resolution fails.
	Path string

	// Resources is the embedded resource space (typically the host's
	// go:embed tree) searched for relative source paths. Nil disables
	// embedded lookup.
	Resources fs.FS

	// Loader supplies module bindings for symbolic references found in the
	// merged document. Nil restricts symbolic resolution to Modules.
	Loader registry.ModuleLoader

	// Modules statically registers module bindings, for hosts without any
	// on-demand loading capability.
	Modules map[string]map[string]any
}

// processEnv is the process-level override for the environment-specific
// configuration path, the non-JVM equivalent of a -Dconfig system property.
type processEnv struct {
	Path string `env:"CONFIG"`
}

// Resolver runs the resolution pipeline over injected collaborators. Use
// NewResolver with real collaborators or construct with fakes in tests.
type Resolver struct {
	loader  SourceLoader
	subst   Substituter
	symbols SymbolResolver
	log     *logger.Logger
}

// NewResolver constructs a Resolver from its collaborators.
func NewResolver(loader SourceLoader, substituter Substituter, symbols SymbolResolver, log *logger.Logger) *Resolver {
	if log == nil {
		log = logger.Nop()
	}

	return &Resolver{loader: loader, subst: substituter, symbols: symbols, log: log}
}

// Resolve produces the fully resolved configuration:
//
//  1. load defaults from DefaultsPath (absence is fatal);
//  2. locate and load the environment-specific document (an unspecified or
//     unresolvable path is fatal, as is a missing document);
//  3. deep-merge the two, environment-specific values winning;
//  4. substitute environment-reference markers;
//  5. resolve symbolic references to runtime-bound values.
//
// Every failure aborts resolution immediately; no partial configuration is
// ever returned. The returned document is owned by the caller and safe for
// unsynchronized concurrent reads.
func (r *Resolver) Resolve(opts Options) (document.Document, error) {
	return newResolutionBuilder(r, opts).
		withDefaults().
		withEnvironmentConfig().
		merge().
		substitute().
		resolveSymbols().
		build()
}

// ResolveConfiguration resolves the configuration with production wiring:
// sources read through opts.Resources and the filesystem, environment
// variables read from the process environment, and symbolic references
// resolved against opts.Loader and opts.Modules.
func ResolveConfiguration(opts Options, log *logger.Logger) (document.Document, error) {
	if log == nil {
		log = logger.Nop()
	}

	symbols := registry.New(opts.Loader, log)
	for module, bindings := range opts.Modules {
		symbols.Register(module, bindings)
	}

	resolver := NewResolver(
		source.NewLoader(opts.Resources, log),
		subst.New(subst.OS(), log),
		symbols,
		log,
	)

	return resolver.Resolve(opts)
}
