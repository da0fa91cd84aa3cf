package artifact

import (
	"os"
	"path/filepath"
	"testing"
)

func TestCacheListRemoveClear(t *testing.T) {
	dir := t.TempDir()
	c := NewCache(dir)

	urls := []string{"https://a.test/server.jar", "https://b.test/server.jar"}
	for _, u := range urls {
		if err := os.WriteFile(c.Path(u), []byte(u), 0644); err != nil {
			t.Fatal(err)
		}
	}

	// Neither of these is a cache entry.
	if err := os.WriteFile(filepath.Join(dir, Key(urls[0])+"-123.part"), nil, 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "notes.jar"), nil, 0644); err != nil {
		t.Fatal(err)
	}

	entries, err := c.List()
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("List returned %d entries, want 2: %+v", len(entries), entries)
	}
	for _, e := range entries {
		if e.Key != Key(urls[0]) && e.Key != Key(urls[1]) {
			t.Errorf("unexpected key %q", e.Key)
		}
	}

	if err := c.Remove(urls[0]); err != nil {
		t.Fatalf("Remove: %v", err)
	}
	if _, ok := c.Lookup(urls[0]); ok {
		t.Fatal("entry still present after Remove")
	}
	if err := c.Remove(urls[0]); err != nil {
		t.Fatalf("second Remove: %v", err)
	}

	if err := c.Clear(); err != nil {
		t.Fatalf("Clear: %v", err)
	}
	remaining, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(remaining) != 0 {
		t.Fatalf("%d files left after Clear", len(remaining))
	}
}

func TestCacheMissingDir(t *testing.T) {
	c := NewCache(filepath.Join(t.TempDir(), "absent"))

	entries, err := c.List()
	if err != nil || len(entries) != 0 {
		t.Fatalf("List = %v, %v; want empty, nil", entries, err)
	}
	if err := c.Clear(); err != nil {
		t.Fatalf("Clear: %v", err)
	}
}
