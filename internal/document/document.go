// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Untangled Web Authors

package document

import (
	"fmt"
	"reflect"
)

// Document is a parsed configuration tree. Top-level configuration sources
// are always mappings; nested values follow go-edn's decoding conventions:
//
//	mapping   -> map[any]any
//	sequence  -> []any
//	set       -> map[any]bool
//	scalar    -> string, int64, float64, bool, nil, edn.Keyword, edn.Symbol
//
// Documents are treated as immutable once produced; every operation in this
// package returns a fresh tree and leaves its inputs untouched.
type Document = map[any]any

// Transform walks v recursively and applies f to every scalar, rebuilding
// containers around the transformed values. Container kind and sequence
// order are preserved. Mapping keys are never transformed; set elements are.
//
// Transform never mutates v. The first error returned by f aborts the walk.
func Transform(v any, f func(any) (any, error)) (any, error) {
	switch val := v.(type) {
	case map[any]any:
		out := make(map[any]any, len(val))
		for k, elem := range val {
			t, err := Transform(elem, f)
			if err != nil {
				return nil, err
			}
			out[k] = t
		}
		return out, nil
	case []any:
		out := make([]any, len(val))
		for i, elem := range val {
			t, err := Transform(elem, f)
			if err != nil {
				return nil, err
			}
			out[i] = t
		}
		return out, nil
	case map[any]bool: // go-edn's decoding of an EDN set
		out := make(map[any]bool, len(val))
		for elem := range val {
			t, err := Transform(elem, f)
			if err != nil {
				return nil, err
			}
			if !hashable(t) {
				return nil, fmt.Errorf("cannot keep value of unhashable type %T as a set element", t)
			}
			out[t] = true
		}
		return out, nil
	default:
		return f(v)
	}
}

// hashable reports whether v can be used as a set element. A transformation
// may turn a scalar element into a collection, which Go cannot hash.
func hashable(v any) bool {
	if v == nil {
		return true
	}

	return reflect.TypeOf(v).Comparable()
}

// DeepCopy returns a structurally identical copy of v sharing no containers
// with the original. Scalars are returned as-is.
func DeepCopy(v any) any {
	copied, _ := Transform(v, func(scalar any) (any, error) {
		return scalar, nil
	})
	return copied
}
