package paths

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
)

const (

	// Name used for the cache root subdirectory.
	appName = "hyrun"

	// Subdirectory of the cache root holding downloaded server jars.
	serverCacheDir = "hytale-cache"

	// Run directory, relative to the project root.
	RunDir = "run"

	// Plugin directory, relative to the run directory.
	PluginsDir = "plugins"

	// Name of the staged server jar inside the run directory.
	ServerJar = "server.jar"

	// Extension given to cached server jars.
	JarExt = ".jar"

	// Default permission mode for directories.
	DefaultDirMode os.FileMode = 0755

	// Default permission mode for files.
	DefaultFileMode os.FileMode = 0644
)

// Root of the launcher's durable cache.
//
//	Linux:   $XDG_CACHE_HOME/hyrun or ~/.cache/hyrun
//	macOS:   ~/Library/Caches/hyrun
//	Windows: %LOCALAPPDATA%\cache\hyrun
func CacheRoot() string {
	return filepath.Join(xdg.CacheHome, appName)
}

// Directory holding server jars downloaded from remote sources.
//
// An empty root selects [CacheRoot].
func ServerCache(root string) string {
	if root == "" {
		root = CacheRoot()
	}
	return filepath.Join(root, serverCacheDir)
}

// Run directory for the project at root.
func Run(root string) string {
	return filepath.Join(root, RunDir)
}
