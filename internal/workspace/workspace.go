package workspace

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/cruciblehq/hyrun/internal/paths"
)

// A staged run directory.
type Workspace struct {
	Root       string   // Run directory, the server's working directory.
	PluginsDir string   // Plugin directory inside Root.
	ServerJar  string   // Staged server jar.
	Plugin     string   // Staged plugin jar, empty when none was staged.
	Warnings   []string // Non-fatal problems found while staging.
}

// Stages the run directory under project.
//
// serverJar is copied to run/server.jar. plugin, if non-empty and present,
// is copied to run/plugins/<basename>. An empty or missing plugin adds a
// warning and staging continues.
func Stage(project, serverJar, plugin string) (*Workspace, error) {
	root := paths.Run(project)
	ws := &Workspace{
		Root:       root,
		PluginsDir: filepath.Join(root, paths.PluginsDir),
		ServerJar:  filepath.Join(root, paths.ServerJar),
	}

	if err := os.MkdirAll(ws.PluginsDir, paths.DefaultDirMode); err != nil {
		return nil, copyFailed(ws.PluginsDir, err)
	}

	if err := copyFile(serverJar, ws.ServerJar); err != nil {
		return nil, err
	}

	slog.Debug("server jar staged", "src", serverJar, "dest", ws.ServerJar)

	if err := ws.stagePlugin(plugin); err != nil {
		return nil, err
	}

	return ws, nil
}

// Copies the plugin into the plugin directory, or records why it could not.
func (ws *Workspace) stagePlugin(plugin string) error {
	if plugin == "" {
		ws.warn("no plugin artifact configured")
		return nil
	}

	info, err := os.Stat(plugin)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			ws.warn(fmt.Sprintf("plugin artifact not found: %s", plugin))
			return nil
		}
		return copyFailed(plugin, err)
	}
	if info.IsDir() {
		ws.warn(fmt.Sprintf("plugin artifact is a directory: %s", plugin))
		return nil
	}

	dest := filepath.Join(ws.PluginsDir, filepath.Base(plugin))
	if err := copyFile(plugin, dest); err != nil {
		return err
	}
	ws.Plugin = dest

	slog.Info("plugin staged", "path", dest)
	return nil
}

func (ws *Workspace) warn(msg string) {
	ws.Warnings = append(ws.Warnings, msg)
	slog.Warn(msg)
}
