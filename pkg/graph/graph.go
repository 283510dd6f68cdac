package graph

import (
	"errors"
	"fmt"
	"slices"
)

var (
	// ErrInvalidNodeID is returned by [Graph.AddNode] when the node ID is
	// empty. All nodes must have non-empty identifiers.
	ErrInvalidNodeID = errors.New("node ID must not be empty")

	// ErrDuplicateNodeID is returned by [Graph.AddNode] when a node with the
	// same ID already exists. Use [Graph.EnsureNode] for idempotent inserts.
	ErrDuplicateNodeID = errors.New("duplicate node ID")

	// ErrUnknownSourceNode is returned by [Graph.AddEdge] when the From node
	// does not exist.
	ErrUnknownSourceNode = errors.New("unknown source node")

	// ErrUnknownTargetNode is returned by [Graph.AddEdge] when the To node
	// does not exist.
	ErrUnknownTargetNode = errors.New("unknown target node")

	// ErrInvalidEdgeEndpoint is returned by [Graph.Validate] when an edge
	// references a node that doesn't exist. This indicates graph corruption.
	ErrInvalidEdgeEndpoint = errors.New("invalid edge endpoint")
)

// Edge is a directed, unweighted link between two nodes.
type Edge struct {
	From string `json:"from" yaml:"from" toml:"from"`
	To   string `json:"to" yaml:"to" toml:"to"`
}

// String renders the edge as "from -> to".
func (e Edge) String() string { return e.From + " -> " + e.To }

// Graph is a directed graph with set semantics: a node appears once and a
// given (from, to) pair is stored at most once. Node order is insertion
// order, so every enumeration is stable for the lifetime of the graph.
//
// The zero value is not usable - use New to create a valid Graph.
// Graph is not safe for concurrent mutation; concurrent readers are fine
// as long as no writer runs at the same time.
type Graph struct {
	order    []string
	nodes    map[string]int
	edges    []Edge
	edgeSet  map[Edge]struct{}
	outgoing map[string][]string
	incoming map[string][]string
}

// New creates an empty graph.
func New() *Graph {
	return &Graph{
		nodes:    make(map[string]int),
		edgeSet:  make(map[Edge]struct{}),
		outgoing: make(map[string][]string),
		incoming: make(map[string][]string),
	}
}

// AddNode adds a node to the graph.
// Returns ErrInvalidNodeID if the ID is empty, or ErrDuplicateNodeID if a
// node with the same ID already exists.
func (g *Graph) AddNode(id string) error {
	if id == "" {
		return ErrInvalidNodeID
	}
	if _, exists := g.nodes[id]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicateNodeID, id)
	}
	g.nodes[id] = len(g.order)
	g.order = append(g.order, id)
	return nil
}

// EnsureNode adds the node if it is not present yet. Only an empty ID is
// an error.
func (g *Graph) EnsureNode(id string) error {
	if _, exists := g.nodes[id]; exists {
		return nil
	}
	return g.AddNode(id)
}

// AddEdge adds a directed edge between two existing nodes.
// Returns ErrUnknownSourceNode if the From node doesn't exist, or
// ErrUnknownTargetNode if the To node doesn't exist.
//
// Adding an edge that is already present is a no-op, so out-degrees always
// count distinct successors. Self loops are accepted.
func (g *Graph) AddEdge(from, to string) error {
	if _, ok := g.nodes[from]; !ok {
		return fmt.Errorf("%w: %s", ErrUnknownSourceNode, from)
	}
	if _, ok := g.nodes[to]; !ok {
		return fmt.Errorf("%w: %s", ErrUnknownTargetNode, to)
	}
	e := Edge{From: from, To: to}
	if _, dup := g.edgeSet[e]; dup {
		return nil
	}
	g.edgeSet[e] = struct{}{}
	g.edges = append(g.edges, e)
	g.outgoing[from] = append(g.outgoing[from], to)
	g.incoming[to] = append(g.incoming[to], from)
	return nil
}

// Link ensures both endpoints exist and then adds the edge from→to.
// It is the one-call way to grow a graph from an edge list.
func (g *Graph) Link(from, to string) error {
	if err := g.EnsureNode(from); err != nil {
		return err
	}
	if err := g.EnsureNode(to); err != nil {
		return err
	}
	return g.AddEdge(from, to)
}

// RemoveEdge removes the edge from→to if it exists.
// No error is returned if the edge does not exist.
func (g *Graph) RemoveEdge(from, to string) {
	e := Edge{From: from, To: to}
	if _, ok := g.edgeSet[e]; !ok {
		return
	}
	delete(g.edgeSet, e)
	g.edges = slices.DeleteFunc(g.edges, func(x Edge) bool { return x == e })
	g.outgoing[from] = slices.DeleteFunc(g.outgoing[from], func(s string) bool { return s == to })
	g.incoming[to] = slices.DeleteFunc(g.incoming[to], func(s string) bool { return s == from })
}

// Nodes returns all node IDs in insertion order.
// The returned slice is a copy and can be modified freely.
func (g *Graph) Nodes() []string { return slices.Clone(g.order) }

// Edges returns a copy of all edges in insertion order.
func (g *Graph) Edges() []Edge { return slices.Clone(g.edges) }

// NodeCount returns the number of nodes in the graph.
func (g *Graph) NodeCount() int { return len(g.order) }

// EdgeCount returns the number of distinct edges in the graph.
func (g *Graph) EdgeCount() int { return len(g.edges) }

// HasNode reports whether the node exists.
func (g *Graph) HasNode(id string) bool {
	_, ok := g.nodes[id]
	return ok
}

// HasEdge reports whether the edge from→to exists.
func (g *Graph) HasEdge(from, to string) bool {
	_, ok := g.edgeSet[Edge{From: from, To: to}]
	return ok
}

// Successors returns the IDs this node links to, in insertion order.
// Returns nil if the node has no outgoing edges or doesn't exist. The
// returned slice should not be modified - use it as a read-only view.
func (g *Graph) Successors(id string) []string { return g.outgoing[id] }

// Predecessors returns the IDs linking to this node, in insertion order.
// Returns nil if the node has no incoming edges or doesn't exist. The
// returned slice should not be modified - use it as a read-only view.
func (g *Graph) Predecessors(id string) []string { return g.incoming[id] }

// OutDegree returns the number of distinct outgoing edges from the node.
// Returns 0 if the node doesn't exist.
func (g *Graph) OutDegree(id string) int { return len(g.outgoing[id]) }

// InDegree returns the number of distinct incoming edges to the node.
// Returns 0 if the node doesn't exist.
func (g *Graph) InDegree(id string) int { return len(g.incoming[id]) }

// Sources returns nodes with no incoming edges, in insertion order.
func (g *Graph) Sources() []string {
	var sources []string
	for _, id := range g.order {
		if len(g.incoming[id]) == 0 {
			sources = append(sources, id)
		}
	}
	return sources
}

// Sinks returns nodes with no outgoing edges, in insertion order.
// For PageRank these are the dangling nodes whose mass is redistributed.
func (g *Graph) Sinks() []string {
	var sinks []string
	for _, id := range g.order {
		if len(g.outgoing[id]) == 0 {
			sinks = append(sinks, id)
		}
	}
	return sinks
}

// Clone returns a deep copy of the graph.
func (g *Graph) Clone() *Graph {
	c := New()
	for _, id := range g.order {
		_ = c.AddNode(id)
	}
	for _, e := range g.edges {
		_ = c.AddEdge(e.From, e.To)
	}
	return c
}

// Validate checks that every edge endpoint is a member of the node set.
// Graphs built through the public API always pass; Validate exists for
// graphs assembled by hand in tests and for decoded documents.
func (g *Graph) Validate() error {
	for _, e := range g.edges {
		_, okS := g.nodes[e.From]
		_, okD := g.nodes[e.To]
		if !okS || !okD {
			return fmt.Errorf("%w: %s", ErrInvalidEdgeEndpoint, e)
		}
	}
	return nil
}
