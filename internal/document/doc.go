// Package document defines the configuration document tree and the generic
// operations over it: recursive transformation, deep copying, and deep
// merging.
//
// A document is the result of decoding an EDN source into untyped Go values.
// The tree is heterogeneous: mappings, ordered sequences, sets, and scalars
// (strings, numbers, booleans, nil, keywords, symbols). Keywords and symbols
// keep their go-edn types so that marker scalars survive decoding intact.
package document
