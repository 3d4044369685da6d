package graph

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/matzehuels/windrose/pkg/argmap"
	"github.com/matzehuels/windrose/pkg/radial"
)

func sampleNodes() []argmap.Node {
	return []argmap.Node{
		argmap.Root("t", "Thesis"),
		argmap.Child("a", "t", "Pro", argmap.Tailwind, 70),
		argmap.Child("b", "t", "Con", argmap.Headwind, 30),
		argmap.Child("c", "a", "", argmap.Neutral, 10),
		argmap.Child("lost", "nowhere", "Orphan", argmap.Tailwind, 50),
	}
}

func sampleLayout(t *testing.T) Layout {
	t.Helper()
	e := radial.NewEngine()
	res, err := e.Compute(sampleNodes())
	if err != nil {
		t.Fatalf("Compute: %v", err)
	}
	return FromResult(res, e.Config(), sampleNodes())
}

func TestFromResult(t *testing.T) {
	l := sampleLayout(t)

	if l.VizType != VizTypeRadial {
		t.Errorf("VizType = %q, want %q", l.VizType, VizTypeRadial)
	}
	if len(l.Nodes) != 4 || len(l.Edges) != 3 {
		t.Fatalf("got %d nodes, %d edges, want 4, 3", len(l.Nodes), len(l.Edges))
	}
	if l.Excluded != 1 {
		t.Errorf("Excluded = %d, want 1", l.Excluded)
	}
	if diff := cmp.Diff([]float64{220, 440}, l.Rings); diff != "" {
		t.Errorf("Rings mismatch (-want +got):\n%s", diff)
	}

	// Only t has tailwind/headwind children; a's only child is neutral.
	if len(l.Balances) != 1 {
		t.Fatalf("Balances = %v, want only t", l.Balances)
	}
	if b := l.Balances["t"]; b.TailwindTotal != 70 || b.HeadwindTotal != 30 {
		t.Errorf("balance t = %+v", b)
	}

	root, ok := l.Node("t")
	if !ok || !root.IsRoot() {
		t.Fatalf("root missing or not at depth 0: %+v", root)
	}
	if x, y := l.Center(root); x != 0 || y != 0 {
		t.Errorf("root center = (%v, %v), want origin", x, y)
	}
}

func TestBounds(t *testing.T) {
	l := sampleLayout(t)
	for _, n := range l.Nodes {
		if n.X < l.Bounds.MinX || n.Y < l.Bounds.MinY ||
			n.X+l.NodeWidth > l.Bounds.MaxX || n.Y+l.NodeHeight > l.Bounds.MaxY {
			t.Errorf("node %s at (%v, %v) outside bounds %+v", n.ID, n.X, n.Y, l.Bounds)
		}
	}
	if l.Bounds.Width() <= 0 || l.Bounds.Height() <= 0 {
		t.Errorf("degenerate bounds %+v", l.Bounds)
	}

	empty := FromResult(radial.Result{}, radial.DefaultConfig(), nil)
	if empty.Bounds != (Rect{}) {
		t.Errorf("empty bounds = %+v, want zero", empty.Bounds)
	}
}

func TestLayoutResultRoundTrip(t *testing.T) {
	e := radial.NewEngine()
	want, err := e.Compute(sampleNodes())
	if err != nil {
		t.Fatal(err)
	}
	l := FromResult(want, e.Config(), sampleNodes())

	data, err := MarshalLayout(l)
	if err != nil {
		t.Fatalf("MarshalLayout: %v", err)
	}
	parsed, err := UnmarshalLayout(data)
	if err != nil {
		t.Fatalf("UnmarshalLayout: %v", err)
	}
	if diff := cmp.Diff(want, parsed.Result()); diff != "" {
		t.Errorf("result mismatch after round trip (-want +got):\n%s", diff)
	}
}

func TestUnmarshalLayoutValidation(t *testing.T) {
	tests := []struct {
		name    string
		json    string
		wantErr string
	}{
		{"bad json", `{`, "unmarshal layout"},
		{"unknown viz", `{"viz_type":"tower","node_width":1,"node_height":1}`, "unknown viz type"},
		{"no node size", `{"viz_type":"radial"}`, "positive node size"},
		{"nodelink without dot", `{"viz_type":"nodelink","node_width":1,"node_height":1}`, "DOT"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := UnmarshalLayout([]byte(tt.json))
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("UnmarshalLayout() error = %v, want containing %q", err, tt.wantErr)
			}
		})
	}

	l, err := UnmarshalLayout([]byte(`{"node_width":200,"node_height":60,"nodes":[]}`))
	if err != nil {
		t.Fatalf("UnmarshalLayout: %v", err)
	}
	if !l.IsRadial() {
		t.Errorf("missing viz type should default to radial, got %q", l.VizType)
	}
}

func TestLayoutFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "map.layout.json")
	want := sampleLayout(t)
	if err := WriteLayoutFile(want, path); err != nil {
		t.Fatalf("WriteLayoutFile: %v", err)
	}
	got, err := ReadLayoutFile(path)
	if err != nil {
		t.Fatalf("ReadLayoutFile: %v", err)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
	if _, err := ReadLayoutFile(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Error("ReadLayoutFile(missing) = nil error")
	}
}

func TestNodeAccessors(t *testing.T) {
	n := Node{Data: argmap.Node{Polarity: argmap.Headwind, Meta: map[string]any{argmap.MetaURL: "https://x.org"}}, Depth: 2}
	if n.IsRoot() || n.Polarity() != argmap.Headwind || n.URL() != "https://x.org" {
		t.Errorf("accessors: root=%v polarity=%q url=%q", n.IsRoot(), n.Polarity(), n.URL())
	}
}
