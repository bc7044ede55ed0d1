package graph

// tarjan holds the state of Tarjan's strongly connected components
// algorithm.
type tarjan[N comparable] struct {
	graph    *Directed[N]
	index    int
	stack    []N
	onStack  map[N]bool
	indexMap map[N]int
	lowLink  map[N]int
	sccs     [][]N
}

// StronglyConnected returns the strongly connected components of g. A
// component is listed after every component reachable from it.
func StronglyConnected[N comparable](g *Directed[N]) [][]N {
	t := &tarjan[N]{
		graph:    g,
		onStack:  make(map[N]bool),
		indexMap: make(map[N]int),
		lowLink:  make(map[N]int),
	}
	for node := range g.Nodes() {
		if _, exists := t.indexMap[node]; !exists {
			t.strongConnect(node)
		}
	}
	return t.sccs
}

func (t *tarjan[N]) strongConnect(node N) {
	t.indexMap[node] = t.index
	t.lowLink[node] = t.index
	t.index++
	t.stack = append(t.stack, node)
	t.onStack[node] = true

	for next := range t.graph.Neighbors(node, Outgoing) {
		if _, exists := t.indexMap[next]; !exists {
			t.strongConnect(next)
			t.lowLink[node] = min(t.lowLink[node], t.lowLink[next])
		} else if t.onStack[next] {
			t.lowLink[node] = min(t.lowLink[node], t.indexMap[next])
		}
	}

	// node is the root of a component
	if t.lowLink[node] == t.indexMap[node] {
		var scc []N
		for {
			top := t.stack[len(t.stack)-1]
			t.stack = t.stack[:len(t.stack)-1]
			t.onStack[top] = false
			scc = append(scc, top)
			if top == node {
				break
			}
		}
		t.sccs = append(t.sccs, scc)
	}
}

// Cycles returns the components of g that contain a cycle: those with
// more than one node, and single nodes with a self edge.
func Cycles[N comparable](g *Directed[N]) [][]N {
	var cycles [][]N
	for _, scc := range StronglyConnected(g) {
		if len(scc) > 1 || g.HasEdge(scc[0], scc[0]) {
			cycles = append(cycles, scc)
		}
	}
	return cycles
}
