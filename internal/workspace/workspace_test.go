package workspace

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeTemp(t *testing.T, dir, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func assertContent(t *testing.T, path string, want []byte) {
	t.Helper()
	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile %s: %v", path, err)
	}
	if !bytes.Equal(got, want) {
		t.Fatalf("%s = %q, want %q", path, got, want)
	}
}

func TestStage(t *testing.T) {
	project := t.TempDir()
	src := t.TempDir()

	jarBytes := []byte("0123456789")
	jar := writeTemp(t, src, "HytaleServer.jar", jarBytes)
	plugin := writeTemp(t, src, "camera-1.0.jar", []byte("plugin"))

	ws, err := Stage(project, jar, plugin)
	if err != nil {
		t.Fatalf("Stage: %v", err)
	}

	if ws.Root != filepath.Join(project, "run") {
		t.Errorf("Root = %q", ws.Root)
	}
	if ws.ServerJar != filepath.Join(project, "run", "server.jar") {
		t.Errorf("ServerJar = %q", ws.ServerJar)
	}
	if ws.Plugin != filepath.Join(project, "run", "plugins", "camera-1.0.jar") {
		t.Errorf("Plugin = %q", ws.Plugin)
	}
	if len(ws.Warnings) != 0 {
		t.Errorf("unexpected warnings: %v", ws.Warnings)
	}

	assertContent(t, ws.ServerJar, jarBytes)
	assertContent(t, ws.Plugin, []byte("plugin"))
}

func TestStageOverwrites(t *testing.T) {
	project := t.TempDir()
	src := t.TempDir()
	jar := writeTemp(t, src, "server.jar", []byte("server"))

	first := t.TempDir()
	second := t.TempDir()
	writeTemp(t, first, "plugin.jar", []byte("first build of the plugin"))
	writeTemp(t, second, "plugin.jar", []byte("second"))

	if _, err := Stage(project, jar, filepath.Join(first, "plugin.jar")); err != nil {
		t.Fatalf("first Stage: %v", err)
	}
	ws, err := Stage(project, jar, filepath.Join(second, "plugin.jar"))
	if err != nil {
		t.Fatalf("second Stage: %v", err)
	}

	assertContent(t, ws.Plugin, []byte("second"))

	entries, err := os.ReadDir(ws.PluginsDir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Fatalf("plugins dir has %d entries, want 1", len(entries))
	}
}

func TestStageMissingPlugin(t *testing.T) {
	tests := []struct {
		name   string
		plugin string
	}{
		{name: "unset", plugin: ""},
		{name: "absent file", plugin: filepath.Join(t.TempDir(), "missing.jar")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			project := t.TempDir()
			jar := writeTemp(t, t.TempDir(), "server.jar", []byte("server"))

			ws, err := Stage(project, jar, tt.plugin)
			if err != nil {
				t.Fatalf("Stage: %v", err)
			}
			if len(ws.Warnings) != 1 {
				t.Fatalf("warnings = %v, want one", ws.Warnings)
			}
			if ws.Plugin != "" {
				t.Errorf("Plugin = %q, want empty", ws.Plugin)
			}
			if info, err := os.Stat(ws.PluginsDir); err != nil || !info.IsDir() {
				t.Errorf("plugins dir not created: %v", err)
			}
			assertContent(t, ws.ServerJar, []byte("server"))
		})
	}
}

func TestStageMissingServerJar(t *testing.T) {
	project := t.TempDir()
	missing := filepath.Join(t.TempDir(), "server.jar")

	_, err := Stage(project, missing, "")
	if !errors.Is(err, ErrCopyFailed) {
		t.Fatalf("err = %v, want ErrCopyFailed", err)
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("err = %v, want cause to be not-exist", err)
	}

	var werr *Error
	if !errors.As(err, &werr) || werr.Path != missing {
		t.Errorf("error does not name %s: %v", missing, err)
	}
}
