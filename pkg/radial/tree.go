package radial

import (
	"errors"
	"fmt"

	"github.com/matzehuels/windrose/pkg/argmap"
)

var (
	// ErrMultipleRoots is returned when more than one node has no parent.
	ErrMultipleRoots = errors.New("multiple root nodes")
	// ErrDuplicateID is returned when two nodes share an ID.
	ErrDuplicateID = errors.New("duplicate node id")
)

const noParent = -1

// tree is an index-addressed arena over the input slice. Entry i describes
// nodes[i]; children keep input order.
type tree struct {
	nodes    []argmap.Node
	parent   []int
	children [][]int
	leaves   []int
	root     int
}

// buildTree links nodes into an arena. It reports false when the input is
// empty or has no root. Nodes whose parent is missing stay unattached.
func buildTree(nodes []argmap.Node) (*tree, bool, error) {
	if len(nodes) == 0 {
		return nil, false, nil
	}

	index := make(map[string]int, len(nodes))
	root := noParent
	for i, n := range nodes {
		if _, dup := index[n.ID]; dup {
			return nil, false, fmt.Errorf("%w: %q", ErrDuplicateID, n.ID)
		}
		index[n.ID] = i
		if n.ParentID == nil {
			if root != noParent {
				return nil, false, fmt.Errorf("%w: %q and %q", ErrMultipleRoots, nodes[root].ID, n.ID)
			}
			root = i
		}
	}
	if root == noParent {
		return nil, false, nil
	}

	t := &tree{
		nodes:    nodes,
		parent:   make([]int, len(nodes)),
		children: make([][]int, len(nodes)),
		leaves:   make([]int, len(nodes)),
		root:     root,
	}
	for i, n := range nodes {
		t.parent[i] = noParent
		if n.ParentID == nil {
			continue
		}
		p, ok := index[*n.ParentID]
		if !ok {
			continue
		}
		t.parent[i] = p
		t.children[p] = append(t.children[p], i)
	}
	t.countLeaves()
	return t, true, nil
}

// countLeaves fills leaves for every node reachable from the root using an
// explicit post-order traversal.
func (t *tree) countLeaves() {
	type frame struct {
		idx      int
		expanded bool
	}
	stack := []frame{{idx: t.root}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		kids := t.children[f.idx]
		if len(kids) == 0 {
			t.leaves[f.idx] = 1
			continue
		}
		if f.expanded {
			sum := 0
			for _, k := range kids {
				sum += t.leaves[k]
			}
			t.leaves[f.idx] = sum
			continue
		}
		stack = append(stack, frame{idx: f.idx, expanded: true})
		for _, k := range kids {
			stack = append(stack, frame{idx: k})
		}
	}
}

// weights returns the leaf counts of idx's children, in order.
func (t *tree) weights(idx int) []int {
	kids := t.children[idx]
	w := make([]int, len(kids))
	for i, k := range kids {
		w[i] = t.leaves[k]
	}
	return w
}
