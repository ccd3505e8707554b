// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Untangled Web Authors

// Package query models client read/mutation query expressions and provides
// the parameter-stripping transform used before query comparison and
// indexing.
//
// A query is an ordered sequence of nodes. The node variants form a closed
// set: bare properties, parameterized nodes, joins onto subqueries, and
// mutation calls.
package query

import "olympos.io/encoding/edn"

// Node is one element of a query expression. The implementations in this
// package are the only ones; the unexported marker method keeps the variant
// set closed.
type Node interface {
	queryNode()
}

// Prop is a bare property read, e.g. :person/name.
type Prop struct {
	Key edn.Keyword
}

// Param attaches invocation parameters to another node, e.g.
// (:person/name {:upcase true}).
type Param struct {
	Node   Node
	Params map[any]any
}

// Join reads a property through a subquery, e.g. {:person/friends [...]}.
type Join struct {
	Key   edn.Keyword
	Query []Node
}

// Call is a mutation invocation, e.g. (person/add! {:name "a"}).
type Call struct {
	Name   edn.Symbol
	Params map[any]any
}

func (Prop) queryNode()  {}
func (Param) queryNode() {}
func (Join) queryNode()  {}
func (Call) queryNode()  {}
