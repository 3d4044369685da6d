// Package pipeline provides the core visualization pipeline for windrose.
//
// This package implements the complete import → layout → render pipeline so
// that every CLI command goes through the same defaults, validation and
// caching.
//
// # Architecture
//
// The pipeline consists of three stages:
//
//  1. Import: Read an argument map (JSON, TOML, YAML) or convert an outline
//  2. Layout: Compute radial positions and balances for the map
//  3. Render: Generate output in various formats (SVG, PNG, PDF, JSON, DOT)
//
// Each stage can be run independently or as part of the complete pipeline.
//
// # Usage
//
// Create a Runner and execute the pipeline:
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	m, err := runner.Import(ctx, "debate.yaml", pipeline.Options{})
//	result, err := runner.Execute(ctx, m, pipeline.Options{
//	    Formats: []string{"svg", "png"},
//	    Style:   "compass",
//	})
//	svg := result.Artifacts["svg"]
//
// Run individual stages:
//
//	layout, err := runner.ComputeLayout(ctx, m, opts)
//	artifacts, err := runner.Render(ctx, layout, opts)
package pipeline

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/windrose/pkg/cache"
	errs "github.com/matzehuels/windrose/pkg/errors"
	"github.com/matzehuels/windrose/pkg/graph"
	"github.com/matzehuels/windrose/pkg/radial"
)

// =============================================================================
// Default Values - Single Source of Truth
// =============================================================================

// DefaultVizType is the default visualization type.
const DefaultVizType = graph.VizTypeRadial

// DefaultStyle is the default visual style.
const DefaultStyle = graph.StyleSimple

// DefaultScale is the default raster scale for PNG output.
const DefaultScale = 2.0

// Format constants for output formats.
const (
	FormatSVG  = "svg"
	FormatPNG  = "png"
	FormatPDF  = "pdf"
	FormatJSON = "json"
	FormatDOT  = "dot"
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatSVG:  true,
	FormatPNG:  true,
	FormatPDF:  true,
	FormatJSON: true,
	FormatDOT:  true,
}

// ValidStyles is the set of supported visual styles.
var ValidStyles = map[string]bool{
	graph.StyleSimple:  true,
	graph.StyleCompass: true,
}

// ValidVizTypes is the set of supported visualization types.
var ValidVizTypes = map[string]bool{
	graph.VizTypeRadial:   true,
	graph.VizTypeNodelink: true,
}

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for the visualization pipeline.
// Zero layout values fall back to the radial engine defaults.
type Options struct {
	// Import options
	Outline       bool `json:"outline,omitempty"` // treat the input as an indented outline
	Deterministic bool `json:"deterministic,omitempty"`

	// Layout options
	VizType       string  `json:"viz_type,omitempty"`
	Title         string  `json:"title,omitempty"`
	RingRadius    float64 `json:"ring_radius,omitempty"`
	MinSiblingGap float64 `json:"min_sibling_gap,omitempty"`
	MinArcPerLeaf float64 `json:"min_arc_per_leaf,omitempty"`
	NodeWidth     float64 `json:"node_width,omitempty"`
	NodeHeight    float64 `json:"node_height,omitempty"`
	EmptyLabel    string  `json:"empty_label,omitempty"`
	Refresh       bool    `json:"refresh,omitempty"` // ignore cached entries

	// Render options
	Formats     []string `json:"formats,omitempty"`
	Style       string   `json:"style,omitempty"`
	ShowBalance bool     `json:"show_balance,omitempty"`
	Scale       float64  `json:"scale,omitempty"`
	Detailed    bool     `json:"detailed,omitempty"` // polarity and strength in nodelink labels
	Interactive bool     `json:"interactive,omitempty"`

	// Runtime options (not serialized)
	Logger *log.Logger `json:"-"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool `json:"-"`
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// MapHash is the content hash of the input map.
	MapHash string

	// Layout is the computed layout document.
	Layout graph.Layout

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte

	// Stats contains timing and size information.
	Stats Stats

	// CacheInfo tracks which stages hit the cache.
	CacheInfo CacheInfo
}

// Stats contains pipeline execution statistics.
type Stats struct {
	NodeCount  int // nodes in the input map
	Placed     int // nodes in the layout
	EdgeCount  int
	LayoutTime time.Duration
	RenderTime time.Duration
}

// Excluded returns the number of input nodes left out of the layout.
func (s Stats) Excluded() int { return s.NodeCount - s.Placed }

// CacheInfo tracks cache hits for each pipeline stage.
type CacheInfo struct {
	LayoutHit bool // Whether layout result came from cache
	RenderHit bool // Whether all artifacts came from cache
}

// =============================================================================
// Validation Functions
// =============================================================================

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return errs.New(errs.ErrCodeInvalidFormat, "invalid format: %q (must be one of: svg, png, pdf, json, dot)", format)
	}
	return nil
}

// ValidateFormats checks that all formats are valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// ValidateStyle checks that a style is valid.
func ValidateStyle(style string) error {
	if !ValidStyles[style] {
		return errs.New(errs.ErrCodeInvalidStyle, "invalid style: %q (must be one of: simple, compass)", style)
	}
	return nil
}

// ValidateVizType checks that a visualization type is valid.
func ValidateVizType(vizType string) error {
	if !ValidVizTypes[vizType] {
		return errs.New(errs.ErrCodeInvalidVizType, "invalid viz_type: %q (must be one of: radial, nodelink)", vizType)
	}
	return nil
}

// =============================================================================
// Options Methods
// =============================================================================

// ValidateAndSetDefaults validates and applies defaults for the full pipeline.
// This method is idempotent - calling it multiple times has the same effect as calling it once.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if err := o.ValidateForRender(); err != nil {
		return err
	}
	o.validated = true
	return nil
}

// SetLayoutDefaults sets default values for layout computation.
func (o *Options) SetLayoutDefaults() {
	if o.VizType == "" {
		o.VizType = DefaultVizType
	}
	cfg := radial.DefaultConfig()
	if o.RingRadius == 0 {
		o.RingRadius = cfg.RingRadius
	}
	if o.MinSiblingGap == 0 {
		o.MinSiblingGap = cfg.MinSiblingGap
	}
	if o.MinArcPerLeaf == 0 {
		o.MinArcPerLeaf = cfg.MinArcPerLeaf
	}
	if o.NodeWidth == 0 {
		o.NodeWidth = cfg.NodeWidth
	}
	if o.NodeHeight == 0 {
		o.NodeHeight = cfg.NodeHeight
	}
	if o.EmptyLabel == "" {
		o.EmptyLabel = cfg.EmptyLabel
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// ValidateForLayout validates and sets defaults for layout computation.
func (o *Options) ValidateForLayout() error {
	o.SetLayoutDefaults()
	if err := ValidateVizType(o.VizType); err != nil {
		return err
	}
	if o.RingRadius < 0 || o.MinSiblingGap < 0 || o.MinArcPerLeaf < 0 || o.NodeWidth < 0 || o.NodeHeight < 0 {
		return errs.New(errs.ErrCodeInvalidInput, "layout geometry must not be negative")
	}
	return nil
}

// SetRenderDefaults sets default values for rendering.
func (o *Options) SetRenderDefaults() {
	if len(o.Formats) == 0 {
		o.Formats = []string{FormatSVG}
	}
	if o.Style == "" {
		o.Style = DefaultStyle
	}
	if o.Scale == 0 {
		o.Scale = DefaultScale
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// ValidateForRender validates and sets defaults for rendering.
func (o *Options) ValidateForRender() error {
	if err := o.ValidateForLayout(); err != nil {
		return err
	}
	o.SetRenderDefaults()
	if err := ValidateFormats(o.Formats); err != nil {
		return err
	}
	if o.Scale < 0 {
		return errs.New(errs.ErrCodeInvalidInput, "scale must be positive, got %v", o.Scale)
	}
	return ValidateStyle(o.Style)
}

// IsRadial returns true if this is a radial visualization.
func (o *Options) IsRadial() bool {
	return o.VizType == "" || o.VizType == graph.VizTypeRadial
}

// IsNodelink returns true if this is a nodelink visualization.
func (o *Options) IsNodelink() bool {
	return o.VizType == graph.VizTypeNodelink
}

// RadialConfig returns the engine configuration described by the options.
func (o *Options) RadialConfig() radial.Config {
	return radial.Config{
		RingRadius:    o.RingRadius,
		MinSiblingGap: o.MinSiblingGap,
		MinArcPerLeaf: o.MinArcPerLeaf,
		NodeWidth:     o.NodeWidth,
		NodeHeight:    o.NodeHeight,
		EmptyLabel:    o.EmptyLabel,
	}
}

// LayoutKeyOpts returns cache key options for layout computation.
func (o *Options) LayoutKeyOpts() cache.LayoutKeyOpts {
	return cache.LayoutKeyOpts{
		VizType:       o.VizType,
		RingRadius:    o.RingRadius,
		MinSiblingGap: o.MinSiblingGap,
		MinArcPerLeaf: o.MinArcPerLeaf,
		NodeWidth:     o.NodeWidth,
		NodeHeight:    o.NodeHeight,
		EmptyLabel:    o.EmptyLabel,
		Title:         o.Title,
		Style:         o.Style,
		Detailed:      o.Detailed,
	}
}

// ArtifactKeyOpts returns cache key options for artifact rendering.
func (o *Options) ArtifactKeyOpts(format string) cache.ArtifactKeyOpts {
	return cache.ArtifactKeyOpts{
		Format:      format,
		Style:       o.Style,
		ShowBalance: o.ShowBalance,
		Scale:       o.Scale,
		Detailed:    o.Detailed,
		Interactive: o.Interactive,
	}
}
