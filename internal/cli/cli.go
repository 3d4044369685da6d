package cli

import (
	"context"
	"errors"
	"io"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/windrose/pkg/buildinfo"
	"github.com/matzehuels/windrose/pkg/cache"
	"github.com/matzehuels/windrose/pkg/config"
	"github.com/matzehuels/windrose/pkg/pipeline"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// appName is the application name used for directories and display.
	appName = config.AppName

	// keyScope prefixes every cache key so entries from older engine
	// versions are never read back.
	keyScope = "radial/v1:"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
	Config config.Config

	configPath  string
	levelForced bool // set by SetLogLevel; the config level is then ignored
}

// New creates a new CLI instance with a default logger and the built-in
// configuration. The config file is loaded before any command runs.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
		Config: config.Default(),
	}
}

// SetLogLevel pins the logger's level, e.g. for --verbose.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
	c.levelForced = true
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   appName,
		Short: "Windrose lays out argument maps as concentric rings",
		Long: `Windrose is a CLI tool for drawing argument maps radially: the thesis sits
at the center, each generation of supporting and opposing claims on its own
ring, with arcs sized by how many leaves hang below each claim.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return c.loadConfig()
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().StringVar(&c.configPath, "config", "", "config file (default: $XDG_CONFIG_HOME/windrose/config.toml)")

	// Register all subcommands
	root.AddCommand(c.layoutCommand())
	root.AddCommand(c.renderCommand())
	root.AddCommand(c.visualizeCommand())
	root.AddCommand(c.balanceCommand())
	root.AddCommand(c.checkCommand())
	root.AddCommand(c.importCommand())
	root.AddCommand(c.browseCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// loadConfig reads the config file named by --config, or the default path.
func (c *CLI) loadConfig() error {
	cfg, err := config.Load(c.configPath)
	if err != nil {
		return err
	}
	c.Config = cfg
	configureLogger(c.Logger, cfg.Log, !c.levelForced)
	c.Logger.Debug("loaded config", "path", c.configPath, "cache", cfg.Cache.Backend)
	return nil
}

// =============================================================================
// Runner Factory
// =============================================================================

// newRunner creates a pipeline runner for CLI use.
func (c *CLI) newRunner(ctx context.Context, noCache bool) (*pipeline.Runner, error) {
	cc, err := c.newCache(ctx, noCache)
	if err != nil {
		return nil, err
	}
	runner := pipeline.NewRunner(cc, cache.NewScopedKeyer(nil, keyScope), c.Logger)
	runner.TTL = c.Config.Cache.TTL
	return runner, nil
}

// newCache opens the configured cache backend. An unreachable Redis falls
// back to the file cache so a missing server never blocks rendering.
func (c *CLI) newCache(ctx context.Context, noCache bool) (cache.Cache, error) {
	if noCache {
		return cache.NewNullCache(), nil
	}

	cfg := c.Config.Cache
	switch cfg.Backend {
	case config.BackendNone:
		return cache.NewNullCache(), nil
	case config.BackendRedis:
		rc, err := cache.NewRedisCache(ctx, cache.RedisConfig{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
			Prefix:   appName + ":",
			Retry:    cache.RetryPolicy{Attempts: cfg.RedisRetries},
		})
		if err == nil {
			return rc, nil
		}
		if !errors.Is(err, cache.ErrUnavailable) {
			return nil, err
		}
		c.Logger.Warn("redis cache unavailable, using file cache", "addr", cfg.RedisAddr, "error", err)
	}

	dir, err := c.Config.CacheDir()
	if err != nil {
		c.Logger.Debug("no cache directory, caching disabled", "error", err)
		return cache.NewNullCache(), nil
	}
	return cache.NewFileCache(dir)
}

// =============================================================================
// Options Helpers
// =============================================================================

// layoutFlags binds the geometry flags shared by layout-producing commands.
func layoutFlags(cmd *cobra.Command, opts *pipeline.Options) {
	cmd.Flags().StringVarP(&opts.VizType, "type", "t", "", "visualization type: radial (default), nodelink")
	cmd.Flags().StringVar(&opts.Title, "title", "", "title drawn above the map (default: the map's title)")
	cmd.Flags().Float64Var(&opts.RingRadius, "ring-radius", 0, "distance between rings")
	cmd.Flags().Float64Var(&opts.MinSiblingGap, "sibling-gap", 0, "minimum angular gap between siblings (radians)")
	cmd.Flags().Float64Var(&opts.MinArcPerLeaf, "arc-per-leaf", 0, "minimum angular width per leaf (radians)")
	cmd.Flags().Float64Var(&opts.NodeWidth, "node-width", 0, "node rectangle width")
	cmd.Flags().Float64Var(&opts.NodeHeight, "node-height", 0, "node rectangle height")
	cmd.Flags().BoolVar(&opts.Detailed, "detailed", false, "show polarity and strength in nodelink labels")
	cmd.Flags().BoolVar(&opts.Refresh, "refresh", false, "ignore cached results")
	_ = cmd.RegisterFlagCompletionFunc("type", completeChoices(pipeline.ValidVizTypes))
}

// renderFlags binds the output flags shared by rendering commands.
func renderFlags(cmd *cobra.Command, opts *pipeline.Options, formats *string) {
	cmd.Flags().StringVarP(formats, "format", "f", "", "output format(s): svg (default), png, pdf, json, dot (comma-separated)")
	cmd.Flags().StringVar(&opts.Style, "style", "", "visual style: simple (default), compass")
	cmd.Flags().BoolVar(&opts.ShowBalance, "balance", false, "draw a tailwind/headwind bar under each node")
	cmd.Flags().Float64Var(&opts.Scale, "scale", 0, "raster scale factor for png")
	cmd.Flags().BoolVar(&opts.Interactive, "interactive", false, "highlight a node's subtree on hover (svg)")
	_ = cmd.RegisterFlagCompletionFunc("style", completeChoices(pipeline.ValidStyles))
	_ = cmd.RegisterFlagCompletionFunc("format", completeFormats)
}

// applyConfig fills every option whose flag was not given on the command
// line from the loaded configuration.
func (c *CLI) applyConfig(cmd *cobra.Command, opts *pipeline.Options) {
	cfg := c.Config
	unset := func(name string) bool {
		f := cmd.Flags().Lookup(name)
		return f != nil && !f.Changed
	}

	if unset("ring-radius") {
		opts.RingRadius = cfg.Layout.RingRadius
	}
	if unset("sibling-gap") {
		opts.MinSiblingGap = cfg.Layout.MinSiblingGap
	}
	if unset("arc-per-leaf") {
		opts.MinArcPerLeaf = cfg.Layout.MinArcPerLeaf
	}
	if unset("node-width") {
		opts.NodeWidth = cfg.Layout.NodeWidth
	}
	if unset("node-height") {
		opts.NodeHeight = cfg.Layout.NodeHeight
	}
	if opts.EmptyLabel == "" {
		opts.EmptyLabel = cfg.Layout.EmptyLabel
	}
	if unset("style") {
		opts.Style = cfg.Render.Style
	}
	if unset("balance") {
		opts.ShowBalance = cfg.Render.ShowBalance
	}
	if unset("scale") {
		opts.Scale = cfg.Render.Scale
	}
	opts.Logger = c.Logger
}

// formats returns the --format selection, or the configured default.
func (c *CLI) formats(s string) []string {
	if s == "" && len(c.Config.Render.Formats) > 0 {
		return c.Config.Render.Formats
	}
	return parseFormats(s)
}

// parseFormats parses a comma-separated format string into a slice.
func parseFormats(s string) []string {
	if s == "" {
		return []string{pipeline.FormatSVG}
	}
	parts := strings.Split(s, ",")
	out := parts[:0]
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
