package domain

import (
	"iter"
	"sort"
)

// node holds the forward (dependencies) and reverse (dependents) edge sets
// for a single graph vertex.
type node struct {
	dependencies map[string]struct{}
	dependents   map[string]struct{}
}

// Graph is the workspace's dependency graph: one node per package name, with
// forward edges (dependencies) and reverse edges (dependents). Edges are
// only ever added between names both present as nodes — external
// dependency names are never represented.
type Graph struct {
	nodes map[string]*node
	// order preserves node insertion order so iteration over disconnected
	// components stays deterministic.
	order []string

	executionOrder []string
	sorted         bool
}

// BuildGraph constructs a Graph from a workspace's packages: one node per
// package, with an edge P→N for every name N in P's dependencies or
// devDependencies that is itself a workspace package (spec.md §4.C
// Construction). External dependency names are ignored.
func BuildGraph(packages []*PackageInfo) *Graph {
	g := NewGraph()
	for _, p := range packages {
		g.AddNode(p.Name.String())
	}
	for _, p := range packages {
		for _, dep := range p.AllDependencyNames() {
			if g.HasNode(dep) {
				g.AddEdge(p.Name.String(), dep)
			}
		}
	}
	return g
}

// NewGraph creates an empty Graph.
func NewGraph() *Graph {
	return &Graph{nodes: make(map[string]*node)}
}

// AddNode registers a package name as a graph vertex, idempotently.
func (g *Graph) AddNode(name string) {
	if _, exists := g.nodes[name]; exists {
		return
	}
	g.nodes[name] = &node{
		dependencies: make(map[string]struct{}),
		dependents:   make(map[string]struct{}),
	}
	g.order = append(g.order, name)
	g.sorted = false
}

// AddEdge adds a dependency edge from -> to (from depends on to). Both names
// must already be nodes; call sites are expected to only call AddEdge for
// workspace-internal dependency names (spec.md §4.C: external dependencies
// are ignored entirely, never reaching the graph).
func (g *Graph) AddEdge(from, to string) {
	fn, ok := g.nodes[from]
	if !ok {
		return
	}
	tn, ok := g.nodes[to]
	if !ok {
		return
	}
	fn.dependencies[to] = struct{}{}
	tn.dependents[from] = struct{}{}
	g.sorted = false
}

// HasNode reports whether name is a node in the graph.
func (g *Graph) HasNode(name string) bool {
	_, ok := g.nodes[name]
	return ok
}

// Dependencies returns the sorted outgoing edges of name.
func (g *Graph) Dependencies(name string) []string {
	return sortedKeys(g.nodes[name].depsOrEmpty())
}

// Dependents returns the sorted incoming edges of name.
func (g *Graph) Dependents(name string) []string {
	return sortedKeys(g.nodes[name].dependentsOrEmpty())
}

func (n *node) depsOrEmpty() map[string]struct{} {
	if n == nil {
		return nil
	}
	return n.dependencies
}

func (n *node) dependentsOrEmpty() map[string]struct{} {
	if n == nil {
		return nil
	}
	return n.dependents
}

func sortedKeys(m map[string]struct{}) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// Names returns every node name in insertion order.
func (g *Graph) Names() []string {
	out := make([]string, len(g.order))
	copy(out, g.order)
	return out
}

// Roots returns nodes with no outgoing edges (no workspace dependencies).
func (g *Graph) Roots() []string {
	var roots []string
	for _, name := range g.order {
		if len(g.nodes[name].dependencies) == 0 {
			roots = append(roots, name)
		}
	}
	return roots
}

// Leaves returns nodes with no incoming edges (no workspace dependents).
func (g *Graph) Leaves() []string {
	var leaves []string
	for _, name := range g.order {
		if len(g.nodes[name].dependents) == 0 {
			leaves = append(leaves, name)
		}
	}
	return leaves
}

// Validate computes a topological order using a Kahn-style algorithm:
// repeatedly emit nodes with no remaining unsatisfied dependencies. If a
// cycle prevents full emission, it runs a DFS over the remaining nodes to
// report every cycle found as ErrDependencyCycle with a "cycles" metadata
// entry (slice of "a -> b -> a" strings).
//
// On success, the execution order satisfies: every package appears after
// all of its workspace dependencies. Walk() is only meaningful after a nil
// return from Validate.
func (g *Graph) Validate() error {
	inDegree := make(map[string]int, len(g.nodes))
	for name, n := range g.nodes {
		inDegree[name] = len(n.dependencies)
	}

	var ready []string
	for _, name := range g.order {
		if inDegree[name] == 0 {
			ready = append(ready, name)
		}
	}

	order := make([]string, 0, len(g.nodes))
	for len(ready) > 0 {
		sort.Strings(ready)
		name := ready[0]
		ready = ready[1:]
		order = append(order, name)

		for _, dependent := range sortedKeys(g.nodes[name].dependents) {
			inDegree[dependent]--
			if inDegree[dependent] == 0 {
				ready = append(ready, dependent)
			}
		}
	}

	if len(order) != len(g.nodes) {
		remaining := make(map[string]struct{})
		for name := range g.nodes {
			if inDegree[name] != 0 {
				remaining[name] = struct{}{}
			}
		}
		return g.reportCycles(remaining)
	}

	g.executionOrder = order
	g.sorted = true
	return nil
}

// reportCycles runs a DFS over the nodes still present in remaining (those
// that could not be emitted by Validate) and returns ErrDependencyCycle
// annotated with every concrete cycle found, each as a first-encountered
// traversal list of names.
func (g *Graph) reportCycles(remaining map[string]struct{}) error {
	const (
		unvisited = 0
		visiting  = 1
		visited   = 2
	)
	state := make(map[string]int, len(remaining))
	var cycles []string

	names := sortedKeys(remaining)

	var visit func(name string, path []string)
	visit = func(name string, path []string) {
		state[name] = visiting
		path = append(path, name)

		for _, dep := range sortedKeys(g.nodes[name].dependencies) {
			if _, ok := remaining[dep]; !ok {
				continue
			}
			switch state[dep] {
			case visiting:
				cycles = append(cycles, formatCycle(path, dep))
			case unvisited:
				visit(dep, path)
			}
		}

		state[name] = visited
	}

	for _, name := range names {
		if state[name] == unvisited {
			visit(name, nil)
		}
	}

	if len(cycles) == 0 {
		// Defensive: remaining is non-empty only when a cycle exists, but
		// guarantee a non-nil error regardless.
		cycles = append(cycles, formatCycle(names, names[0]))
	}

	err := error(ErrDependencyCycle)
	return withMeta(err, map[string]any{"cycles": cycles})
}

func formatCycle(path []string, closingNode string) string {
	start := 0
	for i, n := range path {
		if n == closingNode {
			start = i
			break
		}
	}
	out := ""
	for i := start; i < len(path); i++ {
		out += path[i] + " -> "
	}
	out += closingNode
	return out
}

// Walk returns an iterator over node names in topological order. Requires a
// prior successful call to Validate.
func (g *Graph) Walk() iter.Seq[string] {
	return func(yield func(string) bool) {
		for _, name := range g.executionOrder {
			if !yield(name) {
				return
			}
		}
	}
}

// Batches partitions a validated graph's execution order into batches such
// that every package in batch k has all of its workspace dependencies in
// batches 0..k-1, and enters the lowest such batch. Within a batch, relative
// topological order is preserved. Requires a prior successful Validate.
func (g *Graph) Batches() [][]string {
	batchOf := make(map[string]int, len(g.executionOrder))
	var batches [][]string

	for _, name := range g.executionOrder {
		b := 0
		for dep := range g.nodes[name].dependencies {
			if batchOf[dep]+1 > b {
				b = batchOf[dep] + 1
			}
		}
		batchOf[name] = b
		for len(batches) <= b {
			batches = append(batches, nil)
		}
		batches[b] = append(batches[b], name)
	}

	return batches
}

// FilterClosure returns the closure of targets under the dependencies
// relation: targets plus, recursively, every workspace dependency reached.
// Idempotent: closing the result again returns the same set.
func (g *Graph) FilterClosure(targets []string) []string {
	seen := make(map[string]struct{}, len(targets))
	var stack []string
	for _, t := range targets {
		if _, ok := seen[t]; !ok && g.HasNode(t) {
			seen[t] = struct{}{}
			stack = append(stack, t)
		}
	}

	for len(stack) > 0 {
		name := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for dep := range g.nodes[name].dependencies {
			if _, ok := seen[dep]; !ok {
				seen[dep] = struct{}{}
				stack = append(stack, dep)
			}
		}
	}

	out := sortedKeys(seen)
	return out
}

// Subgraph returns a new Graph containing only the given names and the
// edges between them.
func (g *Graph) Subgraph(names []string) *Graph {
	sub := NewGraph()
	nameSet := make(map[string]struct{}, len(names))
	for _, n := range names {
		nameSet[n] = struct{}{}
		sub.AddNode(n)
	}
	for _, n := range names {
		for dep := range g.nodes[n].dependencies {
			if _, ok := nameSet[dep]; ok {
				sub.AddEdge(n, dep)
			}
		}
	}
	return sub
}
