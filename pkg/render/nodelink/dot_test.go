package nodelink

import (
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
		argmap.Root("T", "Remote work boosts productivity"),
		argmap.Child("a", "T", "Fewer interruptions", argmap.Tailwind, 70),
		argmap.Child("b", "T", "Harder mentoring", argmap.Headwind, 50),
	}
	cfg := radial.DefaultConfig()
	res, err := radial.NewEngine(radial.WithConfig(cfg)).Compute(nodes)
	if err != nil {
		t.Fatalf("Compute: %v", err)
	}
	return graph.FromResult(res, cfg, nodes)
}

func TestToDOT(t *testing.T) {
	l := sampleLayout(t)
	dot := ToDOT(l, Options{})

	for _, want := range []string{
		"digraph G {",
		"layout=neato;",
		`"T" [label="Remote work boosts`,
		`pos="0.0000,-0.0000!"`,
		`"T" -> "a" [color="` + styles.ColorTailwind + `"`,
		`"T" -> "b" [color="` + styles.ColorHeadwind + `"`,
		"width=2.7778",
	} {
		if !strings.Contains(dot, want) {
			t.Errorf("DOT missing %q\n%s", want, dot)
		}
	}
	if strings.Contains(dot, "strength:") {
		t.Error("non-detailed DOT should not include strength")
	}
}

func TestToDOTDetailed(t *testing.T) {
	l := sampleLayout(t)
	dot := ToDOT(l, Options{Detailed: true})
	if !strings.Contains(dot, `tailwind, strength: 70`) {
		t.Errorf("detailed DOT missing polarity/strength:\n%s", dot)
	}
}

func TestToDOTPinsEveryNode(t *testing.T) {
	l := sampleLayout(t)
	dot := ToDOT(l, Options{})
	if got := strings.Count(dot, `!"`); got != len(l.Nodes) {
		t.Errorf("pinned nodes = %d, want %d", got, len(l.Nodes))
	}
}

func TestNormalizeViewBox(t *testing.T) {
	in := []byte(`<svg width="100pt" height="50pt" viewBox="0.00 0.00 100.00 50.00"><g/></svg>`)
	out := string(normalizeViewBox(in))
	if !strings.Contains(out, `viewBox="0 0 100.00 50.00" width="100" height="50"`) {
		t.Errorf("normalizeViewBox() = %s", out)
	}
	if got := normalizeViewBox([]byte("<svg/>")); string(got) != "<svg/>" {
		t.Errorf("svg without viewBox changed: %s", got)
	}
}
