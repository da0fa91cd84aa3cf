package workspace

import (
	"io"
	"os"
	"path/filepath"

	"github.com/cruciblehq/hyrun/internal/paths"
)

// Copies src to dest, replacing dest.
//
// The data goes through a temporary file in dest's directory that is
// renamed over dest once complete. Errors name the path that failed.
func copyFile(src, dest string) error {
	in, err := os.Open(src)
	if err != nil {
		return copyFailed(src, err)
	}
	defer in.Close()

	tmp, err := os.CreateTemp(filepath.Dir(dest), "."+filepath.Base(dest)+"-*")
	if err != nil {
		return copyFailed(dest, err)
	}

	if err := writeFile(tmp, in); err != nil {
		os.Remove(tmp.Name())
		return copyFailed(dest, err)
	}

	if err := os.Rename(tmp.Name(), dest); err != nil {
		os.Remove(tmp.Name())
		return copyFailed(dest, err)
	}

	return nil
}

// Writes r into f and closes it. f is closed on every path.
func writeFile(f *os.File, r io.Reader) error {
	if _, err := io.Copy(f, r); err != nil {
		f.Close()
		return err
	}
	if err := f.Chmod(paths.DefaultFileMode); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
