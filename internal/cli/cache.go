package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/windrose/pkg/cache"
	"github.com/matzehuels/windrose/pkg/config"
)

// cacheCommand creates the cache management command.
func (c *CLI) cacheCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cache",
		Short: "Manage the layout and artifact cache",
	}

	cmd.AddCommand(c.cacheClearCommand())
	cmd.AddCommand(c.cachePruneCommand())
	cmd.AddCommand(c.cachePathCommand())

	return cmd
}

// cacheClearCommand creates the "cache clear" subcommand.
func (c *CLI) cacheClearCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Clear all cached layouts and artifacts",
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runCacheClear(cmd.Context())
		},
	}
}

func (c *CLI) runCacheClear(ctx context.Context) error {
	cc, err := c.newCache(ctx, false)
	if err != nil {
		return fmt.Errorf("open cache: %w", err)
	}
	defer cc.Close()

	clearer, ok := cc.(cache.Clearer)
	if !ok {
		printInfo("Caching is disabled; nothing to clear")
		return nil
	}

	count, err := clearer.Clear(ctx)
	if err != nil {
		return fmt.Errorf("clear cache: %w", err)
	}
	printSuccess("Cleared %d cached entries", count)
	printDetail("Location: %s", cacheLocation(cc, c.Config.Cache))
	return nil
}

// cachePruneCommand creates the "cache prune" subcommand.
func (c *CLI) cachePruneCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "prune",
		Short: "Remove expired and corrupt cache entries",
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runCachePrune(cmd.Context())
		},
	}
}

func (c *CLI) runCachePrune(ctx context.Context) error {
	cc, err := c.newCache(ctx, false)
	if err != nil {
		return fmt.Errorf("open cache: %w", err)
	}
	defer cc.Close()

	pruner, ok := cc.(cache.Pruner)
	if !ok {
		printInfo("The %s cache expires entries itself; nothing to prune", c.Config.Cache.Backend)
		return nil
	}
	count, err := pruner.Prune(ctx)
	if err != nil {
		return fmt.Errorf("prune cache: %w", err)
	}
	printSuccess("Pruned %d expired entries", count)
	printDetail("Location: %s", cacheLocation(cc, c.Config.Cache))
	return nil
}

// cachePathCommand creates the "cache path" subcommand.
func (c *CLI) cachePathCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the cache directory path",
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := c.Config.CacheDir()
			if err != nil {
				return fmt.Errorf("get cache dir: %w", err)
			}
			fmt.Fprintln(stdout, dir)
			return nil
		},
	}
}

// cacheLocation describes where a cache keeps its entries.
func cacheLocation(cc cache.Cache, cfg config.CacheConfig) string {
	switch v := cc.(type) {
	case *cache.FileCache:
		return v.Dir()
	case *cache.RedisCache:
		return "redis://" + cfg.RedisAddr
	}
	return "-"
}
