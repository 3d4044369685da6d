package errors

import (
	"strings"
	"testing"
)

func TestValidateNodeID(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"valid simple", "thesis", false},
		{"valid with dash", "claim-1", false},
		{"valid uuid", "6ba7b810-9dad-11d1-80b4-00c04fd430c8", false},
		{"valid unicode", "argument-über", false},

		{"empty", "", true},
		{"too long", strings.Repeat("a", 300), true},
		{"space", "claim 1", true},
		{"tab", "claim\t1", true},
		{"null byte", "foo\x00bar", true},
		{"newline", "foo\nbar", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateNodeID(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateNodeID(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidMap) {
				t.Errorf("ValidateNodeID(%q) code = %v, want %v", tt.input, GetCode(err), ErrCodeInvalidMap)
			}
		})
	}
}

func TestValidateStrength(t *testing.T) {
	tests := []struct {
		name     string
		strength int
		wantErr  bool
	}{
		{"zero", 0, false},
		{"middle", 55, false},
		{"max", 100, false},
		{"negative", -1, true},
		{"over max", 101, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateStrength(tt.strength, 100)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateStrength(%d) error = %v, wantErr %v", tt.strength, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidStrength) {
				t.Errorf("code = %v, want %v", GetCode(err), ErrCodeInvalidStrength)
			}
		})
	}
}

func TestValidatePolarity(t *testing.T) {
	tests := []struct {
		input   string
		wantErr bool
	}{
		{"", false},
		{"tailwind", false},
		{"headwind", false},
		{"neutral", false},
		{"Tailwind", true},
		{"pro", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			err := ValidatePolarity(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidatePolarity(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestValidatePath(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"relative", "maps/climate.json", false},
		{"absolute", "/tmp/out.svg", false},
		{"dotted", "../shared/map.yaml", false},

		{"empty", "", true},
		{"too long", strings.Repeat("a", 5000), true},
		{"null byte", "map\x00.json", true},
		{"control char", "map\x01.json", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePath(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidatePath(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestValidateURL(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"https", "https://example.com/path", false},
		{"http", "http://example.com/path", false},

		{"empty", "", true},
		{"ftp", "ftp://example.com", true},
		{"file", "file:///etc/passwd", true},
		{"javascript", "javascript:alert(1)", true},
		{"no scheme", "example.com", true},
		{"no host", "https://", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateURL(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateURL(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}
