package artifact

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"

	"github.com/containerd/errdefs"
	"github.com/hashicorp/go-cleanhttp"
)

// Controls how specifiers are resolved.
type Config struct {
	ProjectRoot string       // Base for relative local paths.
	CacheDir    string       // Directory holding downloaded jars.
	Client      *http.Client // HTTP client for downloads. Nil uses a fresh cleanhttp client.
}

// Turns a server jar specifier into a local file path.
type Resolver struct {
	root   string
	cache  *Cache
	client *http.Client
}

// Creates a resolver.
//
// Nothing is touched on disk until [Resolver.Resolve] is called.
func New(cfg Config) *Resolver {
	client := cfg.Client
	if client == nil {
		client = cleanhttp.DefaultClient()
	}
	return &Resolver{
		root:   cfg.ProjectRoot,
		cache:  NewCache(cfg.CacheDir),
		client: client,
	}
}

// Returns the cache backing remote resolutions.
func (r *Resolver) Cache() *Cache {
	return r.cache
}

// Resolves a specifier to the path of a complete jar on disk.
//
// Remote specifiers are served from the cache when an entry exists, without
// any network access or content check. Otherwise the jar is downloaded and
// cached first. Local specifiers are checked for existence only; no
// directories are created for them.
func (r *Resolver) Resolve(ctx context.Context, spec string) (string, error) {
	src := ParseSource(spec)
	if src.Kind == Remote {
		return r.resolveRemote(ctx, src.Location)
	}
	return r.resolveLocal(src.Location)
}

// Serves url from the cache, downloading it on a miss.
func (r *Resolver) resolveRemote(ctx context.Context, url string) (string, error) {
	if path, ok := r.cache.Lookup(url); ok {
		slog.Info("using cached server jar", "url", url, "path", path)
		return path, nil
	}

	slog.Info("downloading server jar", "url", url)

	path, err := r.download(ctx, url)
	if err != nil {
		return "", err
	}

	slog.Info("server jar downloaded and cached", "path", path)
	return path, nil
}

// Resolves a path against the project root and checks it exists.
func (r *Resolver) resolveLocal(path string) (string, error) {
	if !filepath.IsAbs(path) {
		path = filepath.Join(r.root, path)
	}
	if abs, err := filepath.Abs(path); err == nil {
		path = abs
	}

	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", sourceNotFound(path, errdefs.ErrNotFound)
		}
		return "", sourceNotFound(path, err)
	}
	if info.IsDir() {
		return "", sourceNotFound(path, fmt.Errorf("%w: is a directory", errdefs.ErrInvalidArgument))
	}

	slog.Info("using local server jar", "path", path)
	return path, nil
}
