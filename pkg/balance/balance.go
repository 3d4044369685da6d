// Package balance summarizes a claim's direct children into supporting and
// opposing totals.
//
// Each child contributes its strength (nil counts as 0) to the tailwind or
// headwind total according to its polarity; neutral and unset children are
// ignored. When nothing contributes there is no balance:
//
//	b, ok := balance.Aggregate(children)
//	if !ok {
//	    // nothing to display
//	}
//	fmt.Printf("%.0f%% supporting\n", b.Ratio*100)
//
// Balances are derived data and are recomputed on every call.
package balance

import "github.com/matzehuels/windrose/pkg/argmap"

// Balance is the tailwind/headwind summary of one node's children.
type Balance struct {
	TailwindTotal int     `json:"tailwindTotal"`
	HeadwindTotal int     `json:"headwindTotal"`
	Ratio         float64 `json:"balanceRatio"`
}

// Total returns the combined tailwind and headwind strength.
func (b Balance) Total() int { return b.TailwindTotal + b.HeadwindTotal }

// Aggregate sums children's strengths by polarity. It reports false when the
// combined tailwind and headwind strength is zero.
func Aggregate(children []argmap.Node) (Balance, bool) {
	var b Balance
	for _, c := range children {
		s := c.StrengthValue()
		if s == 0 {
			continue
		}
		switch c.Polarity {
		case argmap.Tailwind:
			b.TailwindTotal += s
		case argmap.Headwind:
			b.HeadwindTotal += s
		}
	}
	total := b.Total()
	if total == 0 {
		return Balance{}, false
	}
	b.Ratio = float64(b.TailwindTotal) / float64(total)
	return b, true
}

// ForNode aggregates the children of the node with the given ID.
func ForNode(nodes []argmap.Node, id string) (Balance, bool) {
	var children []argmap.Node
	for _, n := range nodes {
		if n.ParentID != nil && *n.ParentID == id {
			children = append(children, n)
		}
	}
	return Aggregate(children)
}

// ForMap aggregates every node that has a balance, keyed by node ID.
func ForMap(nodes []argmap.Node) map[string]Balance {
	out := make(map[string]Balance)
	for parent, children := range argmap.Children(nodes) {
		if b, ok := Aggregate(children); ok {
			out[parent] = b
		}
	}
	return out
}
