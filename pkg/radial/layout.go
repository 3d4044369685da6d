package radial

import (
	"math"

	"github.com/matzehuels/windrose/pkg/argmap"
)

// EdgeTypePolarity is the type of every edge the engine emits.
const EdgeTypePolarity = "polarity"

// PositionedNode is a node placed on the canvas. Position is the top-left
// corner of a NodeWidth x NodeHeight rectangle centered on the computed point.
type PositionedNode struct {
	ID       string      `json:"id"`
	Position Point       `json:"position"`
	Label    string      `json:"label"`
	Data     argmap.Node `json:"data"`

	Depth int `json:"-"`
	Arc   Arc `json:"-"`
}

// EdgeData is the payload consumers use to color an edge.
type EdgeData struct {
	ChildPolarity *argmap.Polarity `json:"childPolarity"`
}

// Edge connects a parent to one of its children.
type Edge struct {
	ID     string   `json:"id"`
	Source string   `json:"source"`
	Target string   `json:"target"`
	Type   string   `json:"type"`
	Data   EdgeData `json:"data"`
}

// EdgeID returns the deterministic edge identifier for parent -> child.
func EdgeID(parent, child string) string {
	return "edge-" + parent + "-" + child
}

// Result is the output of a layout call.
type Result struct {
	PositionedNodes []PositionedNode `json:"positionedNodes"`
	Edges           []Edge           `json:"edges"`
}

// Empty reports whether nothing was laid out.
func (r Result) Empty() bool { return len(r.PositionedNodes) == 0 }

// Node returns the positioned node with the given ID.
func (r Result) Node(id string) (PositionedNode, bool) {
	for _, n := range r.PositionedNodes {
		if n.ID == id {
			return n, true
		}
	}
	return PositionedNode{}, false
}

// MaxDepth returns the deepest ring that holds a node.
func (r Result) MaxDepth() int {
	d := 0
	for _, n := range r.PositionedNodes {
		d = max(d, n.Depth)
	}
	return d
}

// Engine computes radial layouts. The zero value is not usable; build one
// with [NewEngine]. Engines hold no mutable state.
type Engine struct {
	cfg Config
}

// NewEngine creates an engine with default tunables modified by opts.
func NewEngine(opts ...Option) *Engine {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Engine{cfg: cfg.withDefaults()}
}

// Config returns the engine's tunables.
func (e *Engine) Config() Config { return e.cfg }

// Compute lays out nodes using the default engine.
func Compute(nodes []argmap.Node) (Result, error) {
	return NewEngine().Compute(nodes)
}

// work is one pending child placement: the node, its arc and its ring.
type work struct {
	idx        int
	start, end float64
	depth      int
}

// Compute lays out nodes. Nodes unreachable from the root are omitted.
// Output order is a depth-first pre-order walk with children in input order.
func (e *Engine) Compute(nodes []argmap.Node) (Result, error) {
	res := Result{PositionedNodes: []PositionedNode{}, Edges: []Edge{}}

	t, ok, err := buildTree(nodes)
	if err != nil {
		return Result{}, err
	}
	if !ok {
		return res, nil
	}

	root := t.nodes[t.root]
	res.PositionedNodes = append(res.PositionedNodes, PositionedNode{
		ID:       root.ID,
		Position: e.cfg.TopLeft(Point{}),
		Label:    e.label(root),
		Data:     root,
		Arc:      Arc{Start: 0, End: 2 * math.Pi, Angle: 0},
	})

	var stack []work
	stack = e.pushChildren(stack, t, t.root, 0, 2*math.Pi, 1)
	for len(stack) > 0 {
		w := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		n := t.nodes[w.idx]
		parent := t.nodes[t.parent[w.idx]]
		arc := Arc{Start: w.start, End: w.end, Angle: (w.start + w.end) / 2}

		res.PositionedNodes = append(res.PositionedNodes, PositionedNode{
			ID:       n.ID,
			Position: e.cfg.TopLeft(e.cfg.Center(w.depth, arc.Angle)),
			Label:    e.label(n),
			Data:     n,
			Depth:    w.depth,
			Arc:      arc,
		})
		res.Edges = append(res.Edges, Edge{
			ID:     EdgeID(parent.ID, n.ID),
			Source: parent.ID,
			Target: n.ID,
			Type:   EdgeTypePolarity,
			Data:   EdgeData{ChildPolarity: polarityOf(n)},
		})

		if len(t.children[w.idx]) > 0 {
			stack = e.pushChildren(stack, t, w.idx, w.start, w.end, w.depth+1)
		}
	}
	return res, nil
}

// pushChildren allocates arcs for idx's children at depth and pushes them in
// reverse so they pop in input order.
func (e *Engine) pushChildren(stack []work, t *tree, idx int, start, end float64, depth int) []work {
	kids := t.children[idx]
	arcs := AllocateArcs(t.weights(idx), start, end, depth, e.cfg)
	for i := len(kids) - 1; i >= 0; i-- {
		stack = append(stack, work{idx: kids[i], start: arcs[i].Start, end: arcs[i].End, depth: depth})
	}
	return stack
}

func (e *Engine) label(n argmap.Node) string {
	if n.Statement == "" {
		return e.cfg.EmptyLabel
	}
	return n.Statement
}

func polarityOf(n argmap.Node) *argmap.Polarity {
	if n.Polarity == "" {
		return nil
	}
	p := n.Polarity
	return &p
}
