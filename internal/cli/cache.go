package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"text/tabwriter"

	"github.com/cruciblehq/hyrun/internal/artifact"
	"github.com/cruciblehq/hyrun/internal/paths"
)

// Represents the 'hyrun cache' command group.
type CacheCmd struct {
	List  CacheListCmd  `cmd:"" default:"1" help:"List cached server jars."`
	Path  CachePathCmd  `cmd:"" help:"Print the cache directory."`
	Rm    CacheRmCmd    `cmd:"" help:"Remove the cached jar for a URL."`
	Clear CacheClearCmd `cmd:"" help:"Remove all cached jars."`
}

// Flags shared by the cache subcommands.
type cacheFlags struct {
	CacheDir string `help:"Cache root for downloaded server jars." type:"path" placeholder:"DIR"`
}

func (f cacheFlags) cache() *artifact.Cache {
	return artifact.NewCache(paths.ServerCache(f.CacheDir))
}

// Represents the 'hyrun cache list' command.
type CacheListCmd struct {
	Flags cacheFlags `embed:""`
}

// Executes the cache list command.
func (c *CacheListCmd) Run(ctx context.Context) error {
	entries, err := c.Flags.cache().List()
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "KEY\tSIZE\tDOWNLOADED")
	for _, e := range entries {
		fmt.Fprintf(w, "%s\t%d\t%s\n", e.Key, e.Size, e.ModTime.Format("2006-01-02 15:04:05"))
	}
	return w.Flush()
}

// Represents the 'hyrun cache path' command.
type CachePathCmd struct {
	Flags cacheFlags `embed:""`
}

// Executes the cache path command.
func (c *CachePathCmd) Run(ctx context.Context) error {
	fmt.Println(c.Flags.cache().Dir())
	return nil
}

// Represents the 'hyrun cache rm' command.
type CacheRmCmd struct {
	Flags cacheFlags `embed:""`
	URL   string     `arg:"" help:"Source URL whose cached jar should be removed."`
}

// Executes the cache rm command.
func (c *CacheRmCmd) Run(ctx context.Context) error {
	cache := c.Flags.cache()
	if err := cache.Remove(c.URL); err != nil {
		return err
	}
	slog.Info("cache entry removed", "url", c.URL, "path", cache.Path(c.URL))
	return nil
}

// Represents the 'hyrun cache clear' command.
type CacheClearCmd struct {
	Flags cacheFlags `embed:""`
}

// Executes the cache clear command.
func (c *CacheClearCmd) Run(ctx context.Context) error {
	cache := c.Flags.cache()
	if err := cache.Clear(); err != nil {
		return err
	}
	slog.Info("cache cleared", "dir", cache.Dir())
	return nil
}
