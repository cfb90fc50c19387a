// Package rbdgraph composes the four standard block topologies (Series,
// Parallel, Bridge, KooN) into a directed acyclic graph: each node's
// output reliability curve becomes one component row feeding its
// successor nodes, and the whole graph evaluates, in topological order,
// into a single system reliability curve.
package rbdgraph

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/rbd"
	"github.com/katalvlaran/rbd/matrix"
)

// Kind names which of the four standard blocks a node evaluates.
type Kind int

const (
	KindSeries Kind = iota
	KindParallel
	KindBridge
	KindKooN
)

var (
	// ErrUnknownNode is returned when an edge or evaluation target
	// references a node name that was never added.
	ErrUnknownNode = errors.New("rbdgraph: unknown node")
	// ErrDuplicateNode is returned when AddLeaf/AddBlock reuses a name.
	ErrDuplicateNode = errors.New("rbdgraph: duplicate node name")
	// ErrEmptyInputs is returned when a non-leaf block is added with no
	// input nodes.
	ErrEmptyInputs = errors.New("rbdgraph: block has no inputs")
	// ErrCycle is returned when the graph's edges form a cycle.
	ErrCycle = errors.New("rbdgraph: cycle detected")
	// ErrCurveLength is returned when a leaf curve's length does not
	// match the graph's configured time-grid length.
	ErrCurveLength = errors.New("rbdgraph: leaf curve length mismatch")
)

type node struct {
	name    string
	kind    Kind
	k       uint8
	inputs  []string
	isLeaf  bool
	curve   []float64 // leaf: supplied input; block: populated by Evaluate
	visited int8       // 0=unvisited, 1=in-progress, 2=done (DFS coloring)
}

// Graph is a DAG of named blocks sharing one time-grid length.
type Graph struct {
	t     uint32
	nodes map[string]*node
	order []string // insertion order, used for deterministic traversal
}

// New creates an empty graph over a T-length time grid.
func New(t uint32) *Graph {
	return &Graph{t: t, nodes: make(map[string]*node)}
}

// AddLeaf registers a fixed input curve (e.g. from curvegen) as a source
// node with no predecessors. curve must have length T.
func (g *Graph) AddLeaf(name string, curve []float64) error {
	if _, exists := g.nodes[name]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicateNode, name)
	}
	if len(curve) != int(g.t) {
		return fmt.Errorf("%w: %s has %d, want %d", ErrCurveLength, name, len(curve), g.t)
	}
	g.nodes[name] = &node{name: name, isLeaf: true, curve: curve}
	g.order = append(g.order, name)

	return nil
}

// AddBlock registers a node that evaluates kind over the output curves of
// its inputs (each input's curve becomes one component row). k is only
// meaningful for KindKooN.
func (g *Graph) AddBlock(name string, kind Kind, k uint8, inputs ...string) error {
	if _, exists := g.nodes[name]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicateNode, name)
	}
	if len(inputs) == 0 {
		return fmt.Errorf("%w: %s", ErrEmptyInputs, name)
	}
	g.nodes[name] = &node{name: name, kind: kind, k: k, inputs: inputs}
	g.order = append(g.order, name)

	return nil
}

// Evaluate computes every ancestor of output in topological order and
// returns output's resulting curve. Each call re-runs evaluation from
// scratch (no caching across calls), since a caller may mutate leaf
// curves between calls.
func (g *Graph) Evaluate(output string) ([]float64, error) {
	if _, ok := g.nodes[output]; !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownNode, output)
	}

	for _, n := range g.nodes {
		n.visited = 0
		if !n.isLeaf {
			n.curve = nil
		}
	}

	var order []string
	for _, name := range g.order {
		if err := g.visit(name, &order); err != nil {
			return nil, err
		}
	}

	for _, name := range order {
		n := g.nodes[name]
		if n.isLeaf {
			continue
		}
		if err := g.evalNode(n); err != nil {
			return nil, fmt.Errorf("rbdgraph: evaluating %s: %w", name, err)
		}
	}

	return g.nodes[output].curve, nil
}

// visit performs a DFS post-order traversal, appending each node to order
// after all of its inputs have been appended, detecting cycles via the
// standard white/gray/black three-color scheme.
func (g *Graph) visit(name string, order *[]string) error {
	n, ok := g.nodes[name]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownNode, name)
	}
	switch n.visited {
	case 2:
		return nil
	case 1:
		return fmt.Errorf("%w: at %s", ErrCycle, name)
	}

	n.visited = 1
	for _, in := range n.inputs {
		if err := g.visit(in, order); err != nil {
			return err
		}
	}
	n.visited = 2
	*order = append(*order, name)

	return nil
}

func (g *Graph) evalNode(n *node) error {
	rows := make([][]float64, len(n.inputs))
	for i, in := range n.inputs {
		rows[i] = g.nodes[in].curve
	}
	// Upstream node curves are already reliabilities in [0,1]; enforcing the
	// range here turns a malformed leaf curve into an error at the first
	// block that consumes it, instead of a silently-wrong composed result.
	m, err := matrix.NewDenseFromRows(rows, matrix.WithValidateRange(true))
	if err != nil {
		return err
	}

	var curve []float64
	switch n.kind {
	case KindSeries:
		curve, err = rbd.Series(m, uint8(len(rows)), g.t)
	case KindParallel:
		curve, err = rbd.Parallel(m, uint8(len(rows)), g.t)
	case KindBridge:
		curve, err = rbd.Bridge(m, g.t)
	case KindKooN:
		curve, err = rbd.KooN(m, rbd.Config{N: uint8(len(rows)), K: n.k, T: g.t})
	default:
		return fmt.Errorf("rbdgraph: unknown kind %d", n.kind)
	}
	if err != nil {
		return err
	}
	n.curve = curve

	return nil
}
