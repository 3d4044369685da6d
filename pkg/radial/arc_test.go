package radial

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

const eps = 1e-9

var approx = cmpopts.EquateApprox(0, eps)

func arcWidths(arcs []Arc) []float64 {
	w := make([]float64, len(arcs))
	for i, a := range arcs {
		w[i] = a.Width()
	}
	return w
}

func checkContiguous(t *testing.T, arcs []Arc, start float64) {
	t.Helper()
	cursor := start
	for i, a := range arcs {
		if math.Abs(a.Start-cursor) > eps {
			t.Errorf("arc %d starts at %v, want %v", i, a.Start, cursor)
		}
		if math.Abs(a.Angle-(a.Start+a.End)/2) > eps {
			t.Errorf("arc %d angle %v is not its midpoint", i, a.Angle)
		}
		cursor = a.End
	}
}

func TestAllocateArcsProportional(t *testing.T) {
	arcs := AllocateArcs([]int{1, 2, 1}, 0, 2*math.Pi, 1, DefaultConfig())
	want := []float64{math.Pi / 2, math.Pi, math.Pi / 2}
	if diff := cmp.Diff(want, arcWidths(arcs), approx); diff != "" {
		t.Errorf("widths mismatch (-want +got):\n%s", diff)
	}
	checkContiguous(t, arcs, 0)
}

func TestAllocateArcsSingleChild(t *testing.T) {
	arcs := AllocateArcs([]int{5}, 1, 2, 3, DefaultConfig())
	want := []Arc{{Start: 1, End: 2, Angle: 1.5}}
	if diff := cmp.Diff(want, arcs, approx); diff != "" {
		t.Errorf("single child mismatch (-want +got):\n%s", diff)
	}
}

func TestAllocateArcsEmpty(t *testing.T) {
	if got := AllocateArcs(nil, 0, 1, 1, DefaultConfig()); got != nil {
		t.Errorf("AllocateArcs(nil) = %v, want nil", got)
	}
}

func TestAllocateArcsDeficitRedistribution(t *testing.T) {
	// Two single leaves beside a 30-leaf subtree on a half circle: the small
	// ones are raised to the minimum and the big one pays for it.
	arcs := AllocateArcs([]int{1, 1, 30}, 0, math.Pi, 2, DefaultConfig())
	widths := arcWidths(arcs)

	if math.Abs(widths[0]-DefaultMinSiblingGap) > eps || math.Abs(widths[1]-DefaultMinSiblingGap) > eps {
		t.Errorf("small widths = %v, %v, want %v", widths[0], widths[1], DefaultMinSiblingGap)
	}
	if want := math.Pi - 2*DefaultMinSiblingGap; math.Abs(widths[2]-want) > eps {
		t.Errorf("large width = %v, want %v", widths[2], want)
	}
	checkContiguous(t, arcs, 0)
	if end := arcs[len(arcs)-1].End; math.Abs(end-math.Pi) > eps {
		t.Errorf("arcs end at %v, want %v", end, math.Pi)
	}
}

func TestAllocateArcsScaleCapped(t *testing.T) {
	// Deficit exceeds the surplus pool: every sibling ends at the minimum
	// before normalization, so all widths come out equal.
	arcs := AllocateArcs([]int{1, 1, 1, 3}, 0, 0.5, 2, DefaultConfig())
	want := []float64{0.125, 0.125, 0.125, 0.125}
	if diff := cmp.Diff(want, arcWidths(arcs), approx); diff != "" {
		t.Errorf("widths mismatch (-want +got):\n%s", diff)
	}
}

func TestAllocateArcsWidenFirstRing(t *testing.T) {
	weights := make([]int, 30)
	for i := range weights {
		weights[i] = 1
	}
	arcs := AllocateArcs(weights, 0, 2*math.Pi, 1, DefaultConfig())
	total := arcs[len(arcs)-1].End - arcs[0].Start
	if want := 30 * DefaultMinArcPerLeaf; math.Abs(total-want) > eps {
		t.Errorf("first ring total = %v, want widened %v", total, want)
	}
	checkContiguous(t, arcs, 0)
}

func TestAllocateArcsDeepLevelsRespectParent(t *testing.T) {
	weights := make([]int, 40)
	for i := range weights {
		weights[i] = 1
	}
	for _, depth := range []int{2, 3, 7} {
		arcs := AllocateArcs(weights, 2, 3, depth, DefaultConfig())
		if end := arcs[len(arcs)-1].End; math.Abs(end-3) > eps {
			t.Errorf("depth %d: arcs end at %v, want parent end 3", depth, end)
		}
		for i, w := range arcWidths(arcs) {
			if math.Abs(w-1.0/40) > eps {
				t.Errorf("depth %d: width[%d] = %v, want %v", depth, i, w, 1.0/40)
			}
		}
	}
}

func TestAllocateArcsNoWidenWhenRoomy(t *testing.T) {
	arcs := AllocateArcs([]int{2, 3}, 0, 2*math.Pi, 1, DefaultConfig())
	if end := arcs[1].End; math.Abs(end-2*math.Pi) > eps {
		t.Errorf("arcs end at %v, want %v", end, 2*math.Pi)
	}
}

func TestAllocateArcsCustomConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MinSiblingGap = 0.5
	arcs := AllocateArcs([]int{1, 9}, 0, 2, 2, cfg)
	if w := arcs[0].Width(); math.Abs(w-0.5) > eps {
		t.Errorf("width = %v, want 0.5", w)
	}
}
