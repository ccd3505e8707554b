package registry

import "fmt"

// InvalidReferenceError reports a symbolic reference without an owning
// module, e.g. a bare name instead of module/name.
type InvalidReferenceError struct {
	Name string
}

func (e *InvalidReferenceError) Error() string {
	return fmt.Sprintf("invalid symbolic reference %q: expected a namespaced module/name symbol", e.Name)
}

// ModuleLoadError reports that the module owning a symbolic reference could
// not be loaded.
type ModuleLoadError struct {
	Module string
	Err    error
}

func (e *ModuleLoadError) Error() string {
	return fmt.Sprintf("error loading module %q: %v", e.Module, e.Err)
}

func (e *ModuleLoadError) Unwrap() error { return e.Err }

// UnboundReferenceError reports a symbolic reference whose owning module
// loaded successfully but does not bind the referenced name.
type UnboundReferenceError struct {
	Name string
}

func (e *UnboundReferenceError) Error() string {
	return fmt.Sprintf("symbolic reference %q is unbound after loading its module", e.Name)
}
