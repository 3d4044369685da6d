package radial

// Arc is an angular interval [Start, End) in radians. Angle is its midpoint,
// the direction a node is placed in.
type Arc struct {
	Start float64 `json:"start"`
	End   float64 `json:"end"`
	Angle float64 `json:"angle"`
}

// Width returns End - Start.
func (a Arc) Width() float64 { return a.End - a.Start }

// AllocateArcs splits [start, end) among siblings weighted by their leaf
// counts, in order. The returned arcs are contiguous and cover the effective
// total arc exactly.
//
// Siblings whose proportional arc falls below cfg.MinSiblingGap are raised to
// it, and the shortfall is taken from siblings above the minimum in proportion
// to their excess. At depth 1 the total is widened to the leaf total times
// cfg.MinArcPerLeaf when that exceeds the parent arc; deeper levels never
// exceed the parent arc.
func AllocateArcs(weights []int, start, end float64, depth int, cfg Config) []Arc {
	if len(weights) == 0 {
		return nil
	}
	cfg = cfg.withDefaults()

	totalArc := end - start
	leafSum := 0
	for _, w := range weights {
		leafSum += w
	}
	if leafSum <= 0 {
		return nil
	}

	minArc := cfg.MinSiblingGap
	raw := make([]float64, len(weights))
	arcs := make([]float64, len(weights))
	var deficit, surplusTotal float64
	for i, w := range weights {
		raw[i] = float64(w) / float64(leafSum) * totalArc
		arcs[i] = raw[i]
		if raw[i] < minArc {
			deficit += minArc - raw[i]
			arcs[i] = minArc
		} else {
			surplusTotal += raw[i] - minArc
		}
	}

	if deficit > 0 && surplusTotal > 0 {
		scale := min(1, deficit/surplusTotal)
		for i := range arcs {
			if raw[i] > minArc {
				arcs[i] -= (raw[i] - minArc) * scale
			}
		}
	}

	effective := totalArc
	if minTotalArc := float64(leafSum) * cfg.MinArcPerLeaf; depth == 1 && minTotalArc > totalArc {
		effective = minTotalArc
	}

	sum := 0.0
	for _, a := range arcs {
		sum += a
	}
	norm := 1.0
	if sum > 0 {
		norm = effective / sum
	}

	out := make([]Arc, len(arcs))
	cursor := start
	for i, a := range arcs {
		width := a * norm
		out[i] = Arc{Start: cursor, End: cursor + width, Angle: cursor + width/2}
		cursor += width
	}
	return out
}
