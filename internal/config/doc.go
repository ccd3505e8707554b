// Package config resolves the application configuration at startup.
//
// Resolution merges the built-in defaults document with an
// environment-specific document and post-processes the result in two
// passes: environment-reference markers are substituted from the process
// environment, then symbolic references are resolved to runtime-bound
// values.
//
// Sources are assembled in the following order (the later source overrides
// the earlier one at every matching key path):
//  1. Built-in defaults at config/defaults.edn
//  2. Environment-specific document, located via Options.Path or the CONFIG
//     environment variable
//
// The main entry points are [ResolveConfiguration] for one-shot resolution
// and [NewComponent] for the start/stop lifecycle resource handed to the
// host.
package config
