package pipeline

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/matzehuels/windrose/pkg/argmap"
	errs "github.com/matzehuels/windrose/pkg/errors"
	"github.com/matzehuels/windrose/pkg/observability"
)

// outlineExts are file extensions read as outlines rather than map documents.
var outlineExts = map[string]bool{".txt": true, ".md": true, ".outline": true}

// IsOutlinePath reports whether path names an outline file.
func IsOutlinePath(path string) bool {
	return outlineExts[strings.ToLower(filepath.Ext(path))]
}

// Import reads an argument map from path. Map documents are decoded by
// extension; outlines (.txt, .md, .outline, or any file when opts.Outline is
// set) go through [argmap.ImportOutline]. The nodes are validated before they
// are returned.
func (r *Runner) Import(ctx context.Context, path string, opts Options) (argmap.Map, error) {
	r.applyLogger(&opts)
	if err := errs.ValidatePath(path); err != nil {
		return argmap.Map{}, err
	}

	hooks := observability.Pipeline()
	hooks.OnImportStart(ctx, path)
	start := time.Now()

	m, err := importFile(path, opts)
	if err == nil {
		err = argmap.Validate(m.Nodes)
	}
	hooks.OnImportComplete(ctx, path, len(m.Nodes), time.Since(start), err)
	if err != nil {
		return argmap.Map{}, err
	}

	opts.Logger.Debug("imported map", "path", path, "nodes", len(m.Nodes), "title", m.Title)
	return m, nil
}

func importFile(path string, opts Options) (argmap.Map, error) {
	if !opts.Outline && !IsOutlinePath(path) {
		return argmap.ReadFile(path)
	}

	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return argmap.Map{}, errs.Wrap(errs.ErrCodeFileNotFound, err, "outline file %s", path)
	}
	if err != nil {
		return argmap.Map{}, err
	}
	defer f.Close()

	return argmap.ImportOutline(f, argmap.OutlineOptions{Deterministic: opts.Deterministic})
}
