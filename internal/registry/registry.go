// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Untangled Web Authors

package registry

import (
	"errors"
	"strings"
	"sync"

	"github.com/untangled-web/server/internal/logger"
	"olympos.io/encoding/edn"
)

// ModuleLoader loads the bindings of a named module on demand. LoadModule
// must be safe to call repeatedly for the same module; the registry records
// loaded modules and will not ask twice, but loaders backing several
// registries should tolerate duplicate loads.
type ModuleLoader interface {
	LoadModule(module string) (map[string]any, error)
}

// Registry holds named bindings grouped by owning module and resolves
// symbolic references against them, loading missing modules through its
// ModuleLoader.
//
// All methods are safe for concurrent use.
type Registry struct {
	mu       sync.Mutex
	bindings map[string]map[string]any
	loaded   map[string]bool
	loader   ModuleLoader
	log      *logger.Logger
}

// New constructs a Registry with the given ModuleLoader. A nil loader is
// allowed; resolution is then limited to statically registered modules.
func New(loader ModuleLoader, log *logger.Logger) *Registry {
	if log == nil {
		log = logger.Nop()
	}

	return &Registry{
		bindings: make(map[string]map[string]any),
		loaded:   make(map[string]bool),
		loader:   loader,
		log:      log,
	}
}

// Register records the bindings of a module statically. The module is marked
// loaded, so an unknown name in it resolves to an unbound-reference failure
// instead of a load attempt.
func (r *Registry) Register(module string, bindings map[string]any) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.bindings[module] == nil {
		r.bindings[module] = make(map[string]any, len(bindings))
	}
	for name, value := range bindings {
		r.bindings[module][name] = value
	}
	r.loaded[module] = true
}

// Resolve returns the value bound to the namespaced symbol name.
//
// The name must be qualified as module/name; an unqualified name fails with
// *InvalidReferenceError. When the binding is unknown the owning module is
// loaded through the ModuleLoader and the lookup retried; a load failure
// surfaces as *ModuleLoadError and a name still missing after a successful
// load as *UnboundReferenceError.
func (r *Registry) Resolve(name edn.Symbol) (any, error) {
	module, bare, ok := splitQualified(string(name))
	if !ok {
		return nil, &InvalidReferenceError{Name: string(name)}
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if value, ok := r.bindings[module][bare]; ok {
		return value, nil
	}

	if err := r.loadLocked(module); err != nil {
		return nil, err
	}

	if value, ok := r.bindings[module][bare]; ok {
		return value, nil
	}

	return nil, &UnboundReferenceError{Name: string(name)}
}

// loadLocked loads module through the ModuleLoader exactly once. The caller
// must hold r.mu.
func (r *Registry) loadLocked(module string) error {
	if r.loaded[module] {
		return nil
	}
	if r.loader == nil {
		return &ModuleLoadError{Module: module, Err: errors.New("no module loader configured")}
	}

	r.log.Debug().Str("module", module).Msg("loading module for symbolic reference")

	bindings, err := r.loader.LoadModule(module)
	if err != nil {
		return &ModuleLoadError{Module: module, Err: err}
	}

	if r.bindings[module] == nil {
		r.bindings[module] = make(map[string]any, len(bindings))
	}
	for name, value := range bindings {
		r.bindings[module][name] = value
	}
	r.loaded[module] = true

	return nil
}

// splitQualified splits a module/name symbol into its two parts. Both parts
// must be non-empty for the reference to be qualified.
func splitQualified(name string) (module, bare string, ok bool) {
	module, bare, found := strings.Cut(name, "/")
	if !found || module == "" || bare == "" {
		return "", "", false
	}

	return module, bare, true
}
