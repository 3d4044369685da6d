package buildinfo

import (
	"strings"
	"testing"
)

func TestString(t *testing.T) {
	old := Version
	Version = "v1.2.3"
	defer func() { Version = old }()

	if s := String(); !strings.Contains(s, "version: v1.2.3") {
		t.Errorf("String() = %q, want version line", s)
	}
	if got := Get().Version; got != "v1.2.3" {
		t.Errorf("Get().Version = %q, want v1.2.3", got)
	}
	if tpl := Template(); !strings.HasPrefix(tpl, "{{.Name}} version v1.2.3") {
		t.Errorf("Template() = %q", tpl)
	}
}
