package ast

// A Visitor's Visit method is invoked for each node encountered by Walk.
// If the result visitor w is not nil, Walk visits each of the children
// of node with the visitor w, followed by a call of w.Visit(nil).
type Visitor interface {
	Visit(node Node) (w Visitor)
}

// Walk traverses a tree in depth-first order.
func Walk(v Visitor, node Node) {
	if v = v.Visit(node); v == nil {
		return
	}
	for _, c := range Children(node) {
		Walk(v, c)
	}
	v.Visit(nil)
}

type inspector func(Node) bool

func (f inspector) Visit(node Node) Visitor {
	if f(node) {
		return f
	}
	return nil
}

// Inspect traverses a tree in depth-first order, calling f for each node.
// If f returns true, Inspect descends into the node's children.
func Inspect(node Node, f func(Node) bool) {
	Walk(inspector(f), node)
}

// IsSynthetic reports whether no node or token in the tree carries a
// source location.
func IsSynthetic(node Node) bool {
	synthetic := true
	Inspect(node, func(n Node) bool {
		if n == nil || !synthetic {
			return false
		}
		if n.Range() != nil {
			synthetic = false
			return false
		}
		for _, t := range Tokens(n) {
			if !t.IsSynthetic() {
				synthetic = false
				return false
			}
		}
		return true
	})
	return synthetic
}

// Count returns the number of nodes in the tree rooted at node.
func Count(node Node) int {
	count := 0
	Inspect(node, func(n Node) bool {
		if n != nil {
			count++
		}
		return true
	})
	return count
}
