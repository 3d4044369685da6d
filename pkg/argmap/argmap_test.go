package argmap

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	errs "github.com/matzehuels/windrose/pkg/errors"
)

func sampleMap() Map {
	return Map{
		Title: "Cities should ban cars",
		Nodes: []Node{
			Root("thesis", "Cities should ban cars"),
			Child("air", "thesis", "Cleaner air", Tailwind, 80),
			Child("ev", "air", "Electric cars already solve this", Headwind, 30),
			{ID: "history", ParentID: Ref("thesis"), Statement: "Some cities tried it", Polarity: Neutral},
		},
	}
}

func TestParsePolarity(t *testing.T) {
	tests := []struct {
		in      string
		want    Polarity
		wantErr bool
	}{
		{"tailwind", Tailwind, false},
		{"HEADWIND", Headwind, false},
		{" neutral ", Neutral, false},
		{"", "", false},
		{"pro", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParsePolarity(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParsePolarity(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParsePolarity(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestChildren(t *testing.T) {
	idx := Children(sampleMap().Nodes)
	if got := len(idx["thesis"]); got != 2 {
		t.Fatalf("children of thesis = %d, want 2", got)
	}
	if idx["thesis"][0].ID != "air" || idx["thesis"][1].ID != "history" {
		t.Errorf("children order = %v, %v, want air, history", idx["thesis"][0].ID, idx["thesis"][1].ID)
	}
	if _, ok := idx[""]; ok {
		t.Error("root should not be indexed under empty parent")
	}
}

func TestNodeAccessors(t *testing.T) {
	n := Node{ID: "x"}
	if !n.IsRoot() || n.Parent() != "" || n.StrengthValue() != 0 {
		t.Errorf("zero node accessors: root=%v parent=%q strength=%d", n.IsRoot(), n.Parent(), n.StrengthValue())
	}
	c := Child("c", "x", "s", Headwind, 42)
	if c.IsRoot() || c.Parent() != "x" || c.StrengthValue() != 42 {
		t.Errorf("child accessors: root=%v parent=%q strength=%d", c.IsRoot(), c.Parent(), c.StrengthValue())
	}
}

func TestValidate(t *testing.T) {
	if err := Validate(sampleMap().Nodes); err != nil {
		t.Fatalf("Validate(sample) = %v", err)
	}

	tests := []struct {
		name string
		node Node
		code errs.Code
	}{
		{"empty id", Node{ID: ""}, errs.ErrCodeInvalidMap},
		{"self parent", Node{ID: "a", ParentID: Ref("a")}, errs.ErrCodeInvalidMap},
		{"bad polarity", Node{ID: "a", Polarity: "pro"}, errs.ErrCodeInvalidPolarity},
		{"strength too high", Node{ID: "a", Strength: Ref(101)}, errs.ErrCodeInvalidStrength},
		{"bad url", Node{ID: "a", Meta: map[string]any{MetaURL: "ftp://x"}}, errs.ErrCodeInvalidInput},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate([]Node{tt.node})
			if err == nil {
				t.Fatal("Validate() = nil, want error")
			}
			if !errs.Is(err, tt.code) {
				t.Errorf("Validate() code = %v, want %v", errs.GetCode(err), tt.code)
			}
		})
	}
}

func TestCodecRoundTrip(t *testing.T) {
	for _, f := range []Format{FormatJSON, FormatTOML, FormatYAML} {
		t.Run(string(f), func(t *testing.T) {
			want := sampleMap()
			data, err := Marshal(want, f)
			if err != nil {
				t.Fatalf("Marshal: %v", err)
			}
			got, err := Unmarshal(data, f)
			if err != nil {
				t.Fatalf("Unmarshal: %v\n%s", err, data)
			}
			if diff := cmp.Diff(want, got); diff != "" {
				t.Errorf("round trip mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestUnmarshalBareJSONArray(t *testing.T) {
	data := []byte(`[{"id":"r","parentId":null,"statement":"root"},{"id":"c","parentId":"r","statement":"","polarity":"headwind","strength":20}]`)
	m, err := Unmarshal(data, FormatJSON)
	if err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if len(m.Nodes) != 2 {
		t.Fatalf("nodes = %d, want 2", len(m.Nodes))
	}
	if !m.Nodes[0].IsRoot() || m.Nodes[1].Parent() != "r" || m.Nodes[1].StrengthValue() != 20 {
		t.Errorf("unexpected nodes: %+v", m.Nodes)
	}
}

func TestFormatFromPath(t *testing.T) {
	tests := []struct {
		path    string
		want    Format
		wantErr bool
	}{
		{"map.json", FormatJSON, false},
		{"map.TOML", FormatTOML, false},
		{"dir/map.yml", FormatYAML, false},
		{"map.yaml", FormatYAML, false},
		{"map.txt", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			got, err := FormatFromPath(tt.path)
			if (err != nil) != tt.wantErr {
				t.Fatalf("FormatFromPath(%q) error = %v", tt.path, err)
			}
			if got != tt.want {
				t.Errorf("FormatFromPath(%q) = %q, want %q", tt.path, got, tt.want)
			}
		})
	}
}

func TestReadWriteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "map.yaml")
	want := sampleMap()
	if err := WriteFile(want, path); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	got, err := ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}

	_, err = ReadFile(filepath.Join(t.TempDir(), "missing.json"))
	if !errs.Is(err, errs.ErrCodeFileNotFound) {
		t.Errorf("ReadFile(missing) code = %v, want %v", errs.GetCode(err), errs.ErrCodeFileNotFound)
	}
}

func TestWriteReader(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(&buf, sampleMap(), FormatJSON); err != nil {
		t.Fatalf("Write: %v", err)
	}
	m, err := Read(strings.NewReader(buf.String()), FormatJSON)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if root, ok := m.Root(); !ok || root.ID != "thesis" {
		t.Errorf("Root() = %v, %v, want thesis", root.ID, ok)
	}
}
