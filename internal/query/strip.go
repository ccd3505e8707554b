// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Untangled Web Authors

package query

// StripParameters returns q with every parameter map removed at every
// nesting level. Parameterized nodes collapse to the node they wrap, join
// subqueries are stripped recursively, and mutation calls keep their name
// with no parameters. Node order is preserved and q is not mutated.
func StripParameters(q []Node) []Node {
	if q == nil {
		return nil
	}

	stripped := make([]Node, len(q))
	for i, node := range q {
		stripped[i] = stripNode(node)
	}

	return stripped
}

func stripNode(n Node) Node {
	switch node := n.(type) {
	case Param:
		return stripNode(node.Node)
	case Join:
		return Join{Key: node.Key, Query: StripParameters(node.Query)}
	case Call:
		return Call{Name: node.Name}
	default:
		return n
	}
}
