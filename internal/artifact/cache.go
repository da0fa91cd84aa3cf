package artifact

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/cruciblehq/hyrun/internal/paths"
	"github.com/opencontainers/go-digest"
)

// Directory of downloaded server jars keyed by source URL.
type Cache struct {
	dir string
}

// A file in the cache.
type Entry struct {
	Key     string    // Hex SHA-256 of the source URL.
	Path    string    // Absolute path of the cached jar.
	Size    int64     // Size in bytes.
	ModTime time.Time // When the download completed.
}

// Returns a cache rooted at dir. The directory is created lazily.
func NewCache(dir string) *Cache {
	return &Cache{dir: dir}
}

// Returns the cache directory.
func (c *Cache) Dir() string {
	return c.dir
}

// Returns the cache key for url: the hex SHA-256 of its bytes.
func Key(url string) string {
	return digest.FromString(url).Encoded()
}

// Returns the path at which the jar for url is or would be cached.
func (c *Cache) Path(url string) string {
	return filepath.Join(c.dir, Key(url)+paths.JarExt)
}

// Returns the cached jar for url if one exists.
func (c *Cache) Lookup(url string) (string, bool) {
	path := c.Path(url)
	info, err := os.Stat(path)
	if err != nil || !info.Mode().IsRegular() {
		return "", false
	}
	return path, true
}

// Lists the cached jars, sorted by key.
//
// Leftover temporary files from interrupted downloads are not entries and
// are skipped. A missing cache directory yields an empty list.
func (c *Cache) List() ([]Entry, error) {
	dirents, err := os.ReadDir(c.dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}

	var entries []Entry
	for _, d := range dirents {
		name := d.Name()
		if d.IsDir() || !strings.HasSuffix(name, paths.JarExt) {
			continue
		}
		key := strings.TrimSuffix(name, paths.JarExt)
		if _, err := digest.Parse(string(digest.Canonical) + ":" + key); err != nil {
			continue
		}
		info, err := d.Info()
		if err != nil {
			continue
		}
		entries = append(entries, Entry{
			Key:     key,
			Path:    filepath.Join(c.dir, name),
			Size:    info.Size(),
			ModTime: info.ModTime(),
		})
	}

	sort.Slice(entries, func(i, j int) bool { return entries[i].Key < entries[j].Key })
	return entries, nil
}

// Removes the cached jar for url. Removing an absent entry is not an error.
func (c *Cache) Remove(url string) error {
	if err := os.Remove(c.Path(url)); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}

// Removes every cached jar and leftover temporary file.
func (c *Cache) Clear() error {
	dirents, err := os.ReadDir(c.dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return err
	}

	var errs []error
	for _, d := range dirents {
		if d.IsDir() {
			continue
		}
		if err := os.Remove(filepath.Join(c.dir, d.Name())); err != nil && !errors.Is(err, fs.ErrNotExist) {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
