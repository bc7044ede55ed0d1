package ast

import (
	"errors"
	"fmt"

	"github.com/t14raptor/go-lower/internal/graph"
)

// ErrCycle is returned by Check for a node that is its own descendant.
var ErrCycle = errors.New("ast: node is its own descendant")

// references builds the parent to child graph of the tree rooted at root
// and counts how many child slots refer to each node.
func references(root Node) (*graph.Directed[Node], map[Node]int) {
	g := graph.New[Node]()
	refs := map[Node]int{}
	if root == nil {
		return g, refs
	}
	g.AddNode(root)
	seen := map[Node]bool{root: true}
	queue := []Node{root}
	for len(queue) > 0 {
		n := queue[0]
		queue = queue[1:]
		for _, c := range Children(n) {
			g.AddEdge(n, c)
			refs[c]++
			if !seen[c] {
				seen[c] = true
				queue = append(queue, c)
			}
		}
	}
	return g, refs
}

// Check reports whether the tree rooted at root can be walked and printed.
// Trees built by the factory always pass; a tree whose fields were set to
// one of its own ancestors fails with ErrCycle.
func Check(root Node) error {
	g, _ := references(root)
	cycles := graph.Cycles(g)
	if len(cycles) == 0 {
		return nil
	}
	var err error
	for _, c := range cycles {
		err = errors.Join(err, fmt.Errorf("%w: %s (%d nodes)", ErrCycle, c[0].Kind(), len(c)))
	}
	return err
}

// Shared returns the nodes that are referenced from more than one place in
// the tree rooted at root, in breadth-first order. Sharing is allowed since
// nodes are never modified after construction; Clone removes it.
func Shared(root Node) []Node {
	g, refs := references(root)
	var shared []Node
	for n := range g.Nodes() {
		if refs[n] > 1 {
			shared = append(shared, n)
		}
	}
	return shared
}
