package config

import (
	"github.com/untangled-web/server/internal/document"
	"olympos.io/encoding/edn"
)

// SourceLoader reads a configuration document from a path. A missing source
// is reported with source.ErrNotFound; deciding whether absence is fatal is
// the resolver's job.
type SourceLoader interface {
	Load(path string) (document.Document, error)
}

// Substituter replaces environment-reference markers in a document tree.
type Substituter interface {
	Substitute(v any) (any, error)
}

// SymbolResolver resolves a namespaced symbol to its runtime-bound value,
// loading the owning module on demand.
type SymbolResolver interface {
	Resolve(name edn.Symbol) (any, error)
}
