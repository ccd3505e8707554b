// Package registry resolves symbolic references found in configuration
// documents to runtime-bound values.
//
// A reference is a namespaced EDN symbol, owning-module/bare-name. Lookup is
// two-phase: the registry first consults its known bindings and, on a miss,
// asks its ModuleLoader to load the owning module before retrying. Hosts
// without any notion of dynamic loading register bindings statically and
// omit the loader.
package registry
