// Package radial computes radial tree layouts for argument maps.
//
// The thesis sits at the origin and every other claim is placed on a ring
// whose radius grows with its depth. Each subtree receives an angular
// interval (an "arc") proportional to the number of leaves beneath it, so
// large and small branches never overlap.
//
// # Pipeline
//
// A layout call runs four steps over a flat node list:
//
//  1. Tree building: nodes are indexed into an arena, children are linked in
//     input order and leaf counts are computed in one post-order pass.
//  2. Arc allocation: [AllocateArcs] splits a parent's arc among its children,
//     enforcing a minimum arc per child and redistributing the deficit
//     from larger siblings.
//  3. Positioning: [Config.Center] maps (depth, angle) to a point;
//     [Config.TopLeft] turns that into the rectangle corner stored on the node.
//  4. Orchestration: [Engine.Compute] walks the tree with an explicit stack
//     and emits [PositionedNode] and [Edge] values.
//
// # Usage
//
//	res, err := radial.Compute(nodes)
//	if err != nil {
//	    return err // multiple roots or duplicate IDs
//	}
//	for _, n := range res.PositionedNodes {
//	    fmt.Println(n.ID, n.Position.X, n.Position.Y)
//	}
//
// Engines are immutable and safe for concurrent use:
//
//	e := radial.NewEngine(radial.WithRingRadius(300), radial.WithNodeSize(240, 80))
//	res, err := e.Compute(nodes)
//
// # Malformed Input
//
// Empty input and input without a root produce an empty result. Nodes whose
// parent is missing, and nodes caught in a parent cycle, are never reachable
// from the root and are left out silently. Use [Diagnose] to list them.
// More than one root ([ErrMultipleRoots]) and repeated IDs ([ErrDuplicateID])
// are errors.
package radial
