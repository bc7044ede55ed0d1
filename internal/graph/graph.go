// Package graph holds the directed graph used to check node references in
// a tree for cycles and sharing.
package graph

import (
	"iter"
	"slices"
)

type Direction int

const (
	Incoming Direction = iota
	Outgoing
)

type edge[N comparable] struct {
	to        N
	direction Direction
}

// Directed is a directed graph that remembers insertion order, so its
// iterators are deterministic.
type Directed[N comparable] struct {
	order []N
	nodes map[N][]edge[N]
}

func New[N comparable]() *Directed[N] {
	return &Directed[N]{nodes: make(map[N][]edge[N])}
}

func (g *Directed[N]) AddNode(node N) {
	if _, exists := g.nodes[node]; !exists {
		g.nodes[node] = []edge[N]{}
		g.order = append(g.order, node)
	}
}

// AddEdge adds an edge from one node to another, adding missing nodes.
// Adding an edge that already exists does nothing.
func (g *Directed[N]) AddEdge(from, to N) {
	g.AddNode(from)
	g.AddNode(to)
	if g.HasEdge(from, to) {
		return
	}
	g.nodes[from] = append(g.nodes[from], edge[N]{to: to, direction: Outgoing})
	if from != to {
		g.nodes[to] = append(g.nodes[to], edge[N]{to: from, direction: Incoming})
	}
}

func (g *Directed[N]) HasEdge(from, to N) bool {
	return slices.ContainsFunc(g.nodes[from], func(e edge[N]) bool {
		return e.to == to && (e.direction == Outgoing || from == to)
	})
}

func (g *Directed[N]) Len() int { return len(g.order) }

// Nodes iterates over the nodes in insertion order.
func (g *Directed[N]) Nodes() iter.Seq[N] {
	return slices.Values(g.order)
}

// Neighbors iterates over the nodes linked to node in the given direction.
// A self edge is reported in both directions.
func (g *Directed[N]) Neighbors(node N, direction Direction) iter.Seq[N] {
	return func(yield func(N) bool) {
		for _, e := range g.nodes[node] {
			if e.direction == direction || e.to == node {
				if !yield(e.to) {
					return
				}
			}
		}
	}
}

// Degree counts the edges of node in the given direction.
func (g *Directed[N]) Degree(node N, direction Direction) int {
	n := 0
	for range g.Neighbors(node, direction) {
		n++
	}
	return n
}
