package ast

import "fmt"

// Func handles one node during a post-order traversal. The results slice
// holds the already-computed results of the node's children: empty for leaf
// nodes, one element for unary wrappers, two elements (left, right) for
// binary nodes.
type Func func(n Node, results []any) (any, error)

// Walk traverses n in post-order, calling f on every node with its
// children's results. The first error aborts the traversal and is returned
// unchanged.
func Walk(n Node, f Func) (any, error) {
	switch n.Kind().Category() {
	case CategoryLeaf:
		return f(n, nil)
	case CategoryUnary:
		child, err := Walk(unaryChild(n), f)
		if err != nil {
			return nil, err
		}
		return f(n, []any{child})
	case CategoryBinary:
		left, right := binaryChildren(n)
		leftResult, err := Walk(left, f)
		if err != nil {
			return nil, err
		}
		rightResult, err := Walk(right, f)
		if err != nil {
			return nil, err
		}
		return f(n, []any{leftResult, rightResult})
	default:
		return nil, fmt.Errorf("unknown node category for kind %s", n.Kind())
	}
}

// unaryChild returns the single child of a unary wrapper node.
func unaryChild(n Node) Node {
	switch w := n.(type) {
	case *Grouping:
		return w.Child
	case *Negation:
		return w.Child
	case *Term:
		return w.Child
	case *Expression:
		return w.Child
	default:
		panic(fmt.Sprintf("ast: unaryChild on %s node", n.Kind()))
	}
}

// binaryChildren returns the left and right children of a binary node.
func binaryChildren(n Node) (Node, Node) {
	switch b := n.(type) {
	case *Conjunction:
		return b.Left, b.Right
	case *Disjunction:
		return b.Left, b.Right
	default:
		panic(fmt.Sprintf("ast: binaryChildren on %s node", n.Kind()))
	}
}
