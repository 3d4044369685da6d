package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/matzehuels/windrose/pkg/pipeline"
)

// artifactWriteParams describes a set of rendered artifacts to write to disk.
type artifactWriteParams struct {
	artifacts map[string][]byte
	formats   []string
	input     string // source file, used to derive output names
	output    string // -o value: a file for one format, a base path otherwise
	cacheHit  bool
}

// writeArtifacts writes each artifact in format order and prints a summary.
func writeArtifacts(p artifactWriteParams) error {
	paths := make([]string, 0, len(p.formats))
	for _, format := range p.formats {
		data, ok := p.artifacts[format]
		if !ok {
			return fmt.Errorf("no %s output was produced", format)
		}
		path := artifactPath(p.input, p.output, format, len(p.formats))
		if err := os.WriteFile(path, data, 0o644); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
		paths = append(paths, path)
	}

	status := "Rendered"
	if p.cacheHit {
		status = "Rendered (cached)"
	}
	printSuccess("%s %d file(s)", status, len(paths))
	for _, path := range paths {
		printFile(path)
	}
	return nil
}

// artifactPath picks the output path for one format. A single-format run
// writes exactly to -o when it is given.
func artifactPath(input, output, format string, count int) string {
	if output != "" && count == 1 {
		return output
	}
	return basePath(output, input) + extension(format)
}

// extension returns the file suffix for format. The json artifact is a layout
// document and never replaces the map it was computed from.
func extension(format string) string {
	if format == pipeline.FormatJSON {
		return ".layout.json"
	}
	return "." + format
}

// basePath derives the output path stem from -o or, when empty, the input.
func basePath(output, input string) string {
	if output == "" {
		return stem(input)
	}
	ext := filepath.Ext(output)
	if pipeline.ValidFormats[strings.TrimPrefix(ext, ".")] {
		return strings.TrimSuffix(output, ext)
	}
	return output
}

// stem strips the extension from path, including a ".layout" marker.
func stem(path string) string {
	s := strings.TrimSuffix(path, filepath.Ext(path))
	return strings.TrimSuffix(s, ".layout")
}

// nopCloser wraps an io.Writer with a no-op Close method.
type nopCloser struct{ io.Writer }

// Close implements io.Closer with a no-op.
func (nopCloser) Close() error { return nil }

// openOutput returns a WriteCloser for the given path.
// If path is empty or "-", it returns stdout wrapped in nopCloser.
func openOutput(path string) (io.WriteCloser, error) {
	if path == "" || path == "-" {
		return nopCloser{stdout}, nil
	}
	return os.Create(path)
}
