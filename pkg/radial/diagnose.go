package radial

import (
	"slices"

	"github.com/matzehuels/windrose/pkg/argmap"
)

// Report describes how a node list maps onto a tree. It never fails; use
// [Report.OK] to decide whether a layout would include every node.
type Report struct {
	Roots      []string   `json:"roots"`                // nodes without a parent
	Duplicates []string   `json:"duplicates,omitempty"` // IDs seen more than once
	Orphans    []string   `json:"orphans,omitempty"`    // parent ID not present
	Cycles     [][]string `json:"cycles,omitempty"`     // parent cycles, each listed once
	Detached   []string   `json:"detached,omitempty"`   // below an orphan or a cycle
	Reachable  int        `json:"reachable"`            // nodes connected to a root
	MaxDepth   int        `json:"max_depth"`
	Total      int        `json:"total"`
}

// OK reports whether the input has exactly one root and every node is reachable.
func (r Report) OK() bool {
	return len(r.Roots) == 1 && len(r.Duplicates) == 0 && len(r.Orphans) == 0 &&
		len(r.Cycles) == 0 && len(r.Detached) == 0
}

// Excluded returns the number of nodes a layout would leave out.
func (r Report) Excluded() int { return r.Total - r.Reachable }

// reach states for Diagnose
const (
	stateUnknown = iota
	stateOnPath
	stateRooted
	stateLost
)

// Diagnose inspects nodes without laying them out. Duplicate IDs resolve to
// their first occurrence.
func Diagnose(nodes []argmap.Node) Report {
	rep := Report{Total: len(nodes)}

	index := make(map[string]int, len(nodes))
	dupSeen := map[string]bool{}
	for i, n := range nodes {
		if _, ok := index[n.ID]; ok {
			if !dupSeen[n.ID] {
				rep.Duplicates = append(rep.Duplicates, n.ID)
				dupSeen[n.ID] = true
			}
			continue
		}
		index[n.ID] = i
		if n.ParentID == nil {
			rep.Roots = append(rep.Roots, n.ID)
		}
	}

	state := make([]int, len(nodes))
	depth := make([]int, len(nodes))
	for i, n := range nodes {
		if index[n.ID] != i {
			state[i] = stateLost
		}
	}

	for start := range nodes {
		if state[start] != stateUnknown {
			continue
		}

		// Follow parent links until the chain resolves.
		var path []int
		cur := start
		outcome := stateLost
		base := 0
		for {
			if state[cur] == stateRooted {
				outcome, base = stateRooted, depth[cur]
				break
			}
			if state[cur] == stateLost {
				break
			}
			if state[cur] == stateOnPath {
				at := slices.Index(path, cur)
				cycle := make([]string, 0, len(path)-at)
				for _, idx := range path[at:] {
					cycle = append(cycle, nodes[idx].ID)
				}
				rep.Cycles = append(rep.Cycles, cycle)
				for _, idx := range path[at:] {
					state[idx] = stateLost
				}
				path = path[:at]
				break
			}

			state[cur] = stateOnPath
			path = append(path, cur)
			n := nodes[cur]
			if n.ParentID == nil {
				outcome, base = stateRooted, -1
				break
			}
			p, ok := index[*n.ParentID]
			if !ok {
				rep.Orphans = append(rep.Orphans, n.ID)
				path = path[:len(path)-1]
				state[cur] = stateLost
				break
			}
			cur = p
		}

		// Unwind from the resolved end back to the start.
		for i := len(path) - 1; i >= 0; i-- {
			idx := path[i]
			state[idx] = outcome
			if outcome == stateRooted {
				base++
				depth[idx] = base
				rep.Reachable++
				rep.MaxDepth = max(rep.MaxDepth, base)
			} else {
				rep.Detached = append(rep.Detached, nodes[idx].ID)
			}
		}
	}

	slices.Sort(rep.Detached)
	return rep
}
