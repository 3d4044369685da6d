package cli

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/matzehuels/windrose/pkg/argmap"
	errs "github.com/matzehuels/windrose/pkg/errors"
	"github.com/matzehuels/windrose/pkg/graph"
	"github.com/matzehuels/windrose/pkg/pipeline"
)

const testOutline = `Remote work should be the default
    + [70] Commutes cost hours every week
        + [50] Hours are better spent on focus work
    - [40] Onboarding is harder
    ~ Hybrid setups exist
`

func writeTestMap(t *testing.T, dir string) string {
	t.Helper()
	m := argmap.Map{
		Title: "Remote work",
		Nodes: []argmap.Node{
			argmap.Root("t", "Remote work should be the default"),
			argmap.Child("a", "t", "Commutes cost hours", argmap.Tailwind, 70),
			argmap.Child("b", "t", "Onboarding is harder", argmap.Headwind, 40),
			argmap.Child("c", "a", "Focus time", argmap.Tailwind, 50),
		},
	}
	path := filepath.Join(dir, "remote.json")
	if err := argmap.WriteFile(m, path); err != nil {
		t.Fatalf("WriteFile() error: %v", err)
	}
	return path
}

func TestRootCommandRegistersSubcommands(t *testing.T) {
	c := New(os.Stderr, LogInfo)
	root := c.RootCommand()

	want := []string{"layout", "render", "visualize", "balance", "check", "import", "browse", "cache", "completion"}
	for _, name := range want {
		if cmd, _, err := root.Find([]string{name}); err != nil || cmd.Name() != name {
			t.Errorf("subcommand %q not registered", name)
		}
	}
	if root.PersistentFlags().Lookup("config") == nil {
		t.Error("--config flag not registered")
	}
}

func TestLoadConfigMissingExplicitPath(t *testing.T) {
	c := newTestCLI(t)
	c.configPath = filepath.Join(t.TempDir(), "missing.toml")

	err := c.loadConfig()
	if !errs.Is(err, errs.ErrCodeFileNotFound) {
		t.Errorf("loadConfig() error = %v, want FILE_NOT_FOUND", err)
	}
}

func TestLoadConfigFromFile(t *testing.T) {
	c := newTestCLI(t)
	path := filepath.Join(t.TempDir(), "config.toml")
	data := "[layout]\nring_radius = 260\n\n[render]\nstyle = \"compass\"\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}
	c.configPath = path

	if err := c.loadConfig(); err != nil {
		t.Fatalf("loadConfig() error: %v", err)
	}
	if c.Config.Layout.RingRadius != 260 {
		t.Errorf("RingRadius = %v, want 260", c.Config.Layout.RingRadius)
	}
	if c.Config.Render.Style != "compass" {
		t.Errorf("Style = %q, want compass", c.Config.Render.Style)
	}
}

func TestRunLayoutThenVisualize(t *testing.T) {
	c := newTestCLI(t)
	ctx := context.Background()
	dir := t.TempDir()
	input := writeTestMap(t, dir)

	if err := c.runLayout(ctx, input, pipeline.Options{Logger: c.Logger}, "", true); err != nil {
		t.Fatalf("runLayout() error: %v", err)
	}
	layoutPath := filepath.Join(dir, "remote.layout.json")
	l, err := graph.ReadLayoutFile(layoutPath)
	if err != nil {
		t.Fatalf("ReadLayoutFile() error: %v", err)
	}
	if len(l.Nodes) != 4 {
		t.Errorf("layout nodes = %d, want 4", len(l.Nodes))
	}

	opts := pipeline.Options{Formats: []string{"svg", "dot"}, Logger: c.Logger}
	if err := c.runVisualize(ctx, layoutPath, opts, "", true); err != nil {
		t.Fatalf("runVisualize() error: %v", err)
	}
	svg, err := os.ReadFile(filepath.Join(dir, "remote.svg"))
	if err != nil {
		t.Fatalf("svg not written: %v", err)
	}
	if !strings.Contains(string(svg), `id="node-t"`) {
		t.Error("svg should contain the thesis node")
	}
	if _, err := os.Stat(filepath.Join(dir, "remote.dot")); err != nil {
		t.Errorf("dot not written: %v", err)
	}
}

func TestRunRenderCachesLayout(t *testing.T) {
	c := newTestCLI(t)
	c.Config.Cache.Dir = t.TempDir()
	ctx := context.Background()
	dir := t.TempDir()
	input := writeTestMap(t, dir)

	opts := pipeline.Options{Formats: []string{"json", "png"}, Logger: c.Logger}
	for i := 0; i < 2; i++ {
		if err := c.runRender(ctx, input, opts, filepath.Join(dir, "out"), false); err != nil {
			t.Fatalf("runRender() run %d error: %v", i, err)
		}
	}

	for _, name := range []string{"out.layout.json", "out.png"} {
		if _, err := os.Stat(filepath.Join(dir, name)); err != nil {
			t.Errorf("%s not written: %v", name, err)
		}
	}
}

func TestRunImport(t *testing.T) {
	c := newTestCLI(t)
	dir := t.TempDir()
	input := filepath.Join(dir, "remote.txt")
	if err := os.WriteFile(input, []byte(testOutline), 0o644); err != nil {
		t.Fatal(err)
	}
	output := filepath.Join(dir, "remote.yaml")

	opts := pipeline.Options{Outline: true, Deterministic: true, Logger: c.Logger}
	if err := c.runImport(context.Background(), input, opts, "Remote", output); err != nil {
		t.Fatalf("runImport() error: %v", err)
	}

	m, err := argmap.ReadFile(output)
	if err != nil {
		t.Fatalf("ReadFile() error: %v", err)
	}
	if m.Title != "Remote" {
		t.Errorf("Title = %q, want Remote", m.Title)
	}
	if len(m.Nodes) != 5 {
		t.Errorf("nodes = %d, want 5", len(m.Nodes))
	}
}

func TestRunCheck(t *testing.T) {
	c := newTestCLI(t)
	dir := t.TempDir()

	if err := c.runCheck(context.Background(), writeTestMap(t, dir), false, false); err != nil {
		t.Errorf("runCheck() on a clean map error: %v", err)
	}

	broken := argmap.Map{Nodes: []argmap.Node{
		argmap.Root("t", "Thesis"),
		argmap.Root("u", "Second thesis"),
		argmap.Child("o", "missing", "Orphan", argmap.Tailwind, 10),
	}}
	path := filepath.Join(dir, "broken.json")
	if err := argmap.WriteFile(broken, path); err != nil {
		t.Fatal(err)
	}
	err := c.runCheck(context.Background(), path, true, false)
	if !errs.Is(err, errs.ErrCodeInvalidMap) {
		t.Errorf("runCheck() error = %v, want INVALID_MAP", err)
	}
}

func TestRunBalance(t *testing.T) {
	c := newTestCLI(t)
	input := writeTestMap(t, t.TempDir())
	ctx := context.Background()

	if err := c.runBalance(ctx, input, "", false, false); err != nil {
		t.Errorf("runBalance() error: %v", err)
	}
	if err := c.runBalance(ctx, input, "t", true, false); err != nil {
		t.Errorf("runBalance(--node t) error: %v", err)
	}
	err := c.runBalance(ctx, input, "nope", false, false)
	if !errs.Is(err, errs.ErrCodeNotFound) {
		t.Errorf("runBalance(--node nope) error = %v, want NOT_FOUND", err)
	}
}

func TestBarSegments(t *testing.T) {
	tests := []struct {
		ratio  float64
		width  int
		tw, hw int
	}{
		{0.5, 10, 5, 5},
		{1, 24, 24, 0},
		{0, 24, 0, 24},
		{0.6363, 24, 15, 9},
		{1.7, 10, 10, 0},
		{-0.2, 10, 0, 10},
	}

	for _, tt := range tests {
		tw, hw := barSegments(tt.ratio, tt.width)
		if tw != tt.tw || hw != tt.hw {
			t.Errorf("barSegments(%v, %d) = (%d, %d), want (%d, %d)", tt.ratio, tt.width, tw, hw, tt.tw, tt.hw)
		}
	}
}
