// Package source loads EDN configuration documents from the embedded
// resource space and the filesystem.
//
// Lookup order depends on the shape of the requested path: absolute paths
// are read from the filesystem only, while relative paths are first resolved
// against the embedded resource space and then against the working
// directory. A missing source is reported with the ErrNotFound sentinel and
// is never fatal at this layer; deciding whether absence is an error belongs
// to the caller.
package source
