package sink

import (
	"bytes"
	"encoding/json"
	"image/png"
	"math"
	"strings"
	"testing"

	"github.com/matzehuels/windrose/pkg/argmap"
	"github.com/matzehuels/windrose/pkg/graph"
	"github.com/matzehuels/windrose/pkg/radial"
	"github.com/matzehuels/windrose/pkg/render/rose/styles"
)

func sampleLayout(t *testing.T) graph.Layout {
	t.Helper()
	nodes := []argmap.Node{
		argmap.Root("T", "Cities should ban cars from downtown"),
		argmap.Child("a", "T", "Cleaner air", argmap.Tailwind, 80),
		argmap.Child("b", "T", "Deliveries get harder", argmap.Headwind, 40),
		argmap.Child("c", "a", "Studies show <50% drop>", argmap.Tailwind, 60),
		{ID: "d", ParentID: argmap.Ref("b"), Statement: "Depends on the city"},
	}
	nodes[1].Meta = map[string]any{argmap.MetaURL: "https://example.com/air"}

	cfg := radial.DefaultConfig()
	res, err := radial.NewEngine(radial.WithConfig(cfg)).Compute(nodes)
	if err != nil {
		t.Fatalf("Compute: %v", err)
	}
	l := graph.FromResult(res, cfg, nodes)
	l.Title = "Car-free downtown"
	return l
}

func TestRenderSVG(t *testing.T) {
	l := sampleLayout(t)
	svg := string(RenderSVG(l))

	for _, want := range []string{
		`<svg xmlns="http://www.w3.org/2000/svg"`,
		`class="ring" data-depth="1"`,
		`class="ring" data-depth="2"`,
		`id="edge-T-a"`,
		styles.ColorTailwind,
		styles.ColorHeadwind,
		`id="node-T"`,
		`<a href="https://example.com/air"`,
		"Car-free downtown",
		"&lt;50% drop&gt;",
	} {
		if !strings.Contains(svg, want) {
			t.Errorf("svg missing %q", want)
		}
	}
	if strings.Contains(svg, `class="balance"`) {
		t.Error("balance bars rendered without WithBalance")
	}
	if strings.Contains(svg, "<script") {
		t.Error("script rendered without WithInteraction")
	}
}

func TestRenderSVGNeutralEdgeIsGray(t *testing.T) {
	l := sampleLayout(t)
	svg := string(RenderSVG(l))
	idx := strings.Index(svg, `id="edge-b-d"`)
	if idx < 0 {
		t.Fatal("edge b-d missing")
	}
	line := svg[idx:]
	line = line[:strings.Index(line, "\n")]
	if !strings.Contains(line, styles.ColorNeutral) {
		t.Errorf("edge b-d = %s, want neutral color", line)
	}
}

func TestRenderSVGBalance(t *testing.T) {
	l := sampleLayout(t)
	svg := string(RenderSVG(l, WithBalance()))

	// T has tailwind 80 and headwind 40; a has tailwind 60; b has only a
	// neutral child and therefore no bar.
	if got := strings.Count(svg, `class="balance"`); got != 2 {
		t.Errorf("balance bars = %d, want 2", got)
	}
	if !strings.Contains(svg, "tailwind 80 / headwind 40") {
		t.Error("missing root balance title")
	}
	if strings.Contains(svg, `class="balance" data-node="b"`) {
		t.Error("node b should have no balance bar")
	}
}

func TestRenderSVGCompass(t *testing.T) {
	l := sampleLayout(t)
	svg := string(RenderSVG(l, WithStyle(styles.Compass{}), WithInteraction()))

	for _, want := range []string{`class="rose"`, "ring 1", "ring 2", `url(#parchment)`, "<script"} {
		if !strings.Contains(svg, want) {
			t.Errorf("compass svg missing %q", want)
		}
	}
}

func TestRenderSVGEmptyLayout(t *testing.T) {
	res, err := radial.Compute(nil)
	if err != nil {
		t.Fatal(err)
	}
	l := graph.FromResult(res, radial.DefaultConfig(), nil)
	svg := string(RenderSVG(l))
	if !strings.HasPrefix(svg, "<svg") || !strings.HasSuffix(svg, "</svg>\n") {
		t.Errorf("empty layout svg malformed: %q", svg)
	}
}

func TestViewportContainsEverything(t *testing.T) {
	l := sampleLayout(t)
	s := buildScene(l, true)
	v := s.view

	maxRing := l.Rings[len(l.Rings)-1]
	if v.MinX > -maxRing || v.MinX+v.Width < maxRing {
		t.Errorf("viewport x [%v, %v] does not contain ring %v", v.MinX, v.MinX+v.Width, maxRing)
	}
	for _, b := range s.blocks {
		if b.X < v.MinX || b.Y < v.MinY || b.X+b.W > v.MinX+v.Width || b.Y+b.H > v.MinY+v.Height {
			t.Errorf("block %s outside viewport", b.ID)
		}
	}
}

func TestEdgeEndpointsAreCenters(t *testing.T) {
	l := sampleLayout(t)
	s := buildScene(l, false)
	for _, e := range s.edges {
		from, _ := l.Node(e.FromID)
		to, _ := l.Node(e.ToID)
		x1, y1 := l.Center(from)
		x2, y2 := l.Center(to)
		if e.X1 != x1 || e.Y1 != y1 || e.X2 != x2 || e.Y2 != y2 {
			t.Errorf("edge %s endpoints = (%v,%v)-(%v,%v)", e.ID, e.X1, e.Y1, e.X2, e.Y2)
		}
	}
}

func TestRenderPNG(t *testing.T) {
	l := sampleLayout(t)
	data, err := RenderPNG(l, WithScale(1), WithBalance())
	if err != nil {
		t.Fatalf("RenderPNG: %v", err)
	}
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}

	v := buildScene(l, true).view
	if got, want := img.Bounds().Dx(), int(math.Ceil(v.Width)); got != want {
		t.Errorf("width = %d, want %d", got, want)
	}

	scaled, err := RenderPNG(l, WithScale(2), WithStyle(styles.Compass{}))
	if err != nil {
		t.Fatalf("RenderPNG(scale 2): %v", err)
	}
	img2, err := png.Decode(bytes.NewReader(scaled))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if img2.Bounds().Dx() < 2*img.Bounds().Dx()-2 {
		t.Errorf("scaled width = %d, want about %d", img2.Bounds().Dx(), 2*img.Bounds().Dx())
	}
}

func TestRenderPNGTooLarge(t *testing.T) {
	l := sampleLayout(t)
	if _, err := RenderPNG(l, WithScale(100)); err == nil {
		t.Error("expected error for oversized raster")
	}
}

func TestRenderJSON(t *testing.T) {
	l := sampleLayout(t)
	data, err := RenderJSON(l)
	if err != nil {
		t.Fatalf("RenderJSON: %v", err)
	}

	var out struct {
		PositionedNodes []struct {
			ID       string `json:"id"`
			Position struct {
				X float64 `json:"x"`
				Y float64 `json:"y"`
			} `json:"position"`
			Label string `json:"label"`
		} `json:"positionedNodes"`
		Edges []struct {
			ID   string `json:"id"`
			Type string `json:"type"`
			Data struct {
				ChildPolarity *string `json:"childPolarity"`
			} `json:"data"`
		} `json:"edges"`
	}
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(out.PositionedNodes) != 5 || len(out.Edges) != 4 {
		t.Fatalf("got %d nodes, %d edges, want 5, 4", len(out.PositionedNodes), len(out.Edges))
	}
	if root := out.PositionedNodes[0]; root.ID != "T" || root.Position.X != -100 || root.Position.Y != -30 {
		t.Errorf("root = %+v, want T at (-100, -30)", root)
	}
	for _, e := range out.Edges {
		if e.ID == "edge-b-d" && e.Data.ChildPolarity != nil {
			t.Errorf("edge-b-d childPolarity = %v, want null", *e.Data.ChildPolarity)
		}
	}
}
