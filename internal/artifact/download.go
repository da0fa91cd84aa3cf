package artifact

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"

	"github.com/containerd/errdefs/pkg/errhttp"
	"github.com/cruciblehq/hyrun/internal/paths"
	"github.com/opencontainers/go-digest"
)

// Downloads url into the cache and returns the cache path.
//
// The body is streamed into a temporary file in the cache directory, which
// is renamed over the cache path only after the transfer and fsync succeed.
// Concurrent downloads of the same URL each use their own temporary file;
// the last rename wins. On failure the temporary file is removed and no
// cache entry is created.
func (r *Resolver) download(ctx context.Context, url string) (string, error) {
	dir := r.cache.Dir()
	if err := os.MkdirAll(dir, paths.DefaultDirMode); err != nil {
		return "", downloadFailed(url, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", downloadFailed(url, err)
	}

	resp, err := r.client.Do(req)
	if err != nil {
		return "", downloadFailed(url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", downloadFailed(url, fmt.Errorf("%w: unexpected status %s", errhttp.ToNative(resp.StatusCode), resp.Status))
	}

	tmp, err := os.CreateTemp(dir, Key(url)+"-*.part")
	if err != nil {
		return "", downloadFailed(url, err)
	}

	sum, n, err := writeBody(tmp, resp.Body)
	if err != nil {
		os.Remove(tmp.Name())
		return "", downloadFailed(url, err)
	}

	dest := r.cache.Path(url)
	if err := os.Rename(tmp.Name(), dest); err != nil {
		os.Remove(tmp.Name())
		return "", downloadFailed(url, err)
	}

	slog.Debug("download complete", "url", url, "bytes", n, "digest", sum)
	return dest, nil
}

// Streams body into f, syncs and closes it, and returns the content digest
// and byte count. f is closed on every path.
func writeBody(f *os.File, body io.Reader) (digest.Digest, int64, error) {
	digester := digest.Canonical.Digester()

	n, err := io.Copy(io.MultiWriter(f, digester.Hash()), body)
	if err != nil {
		f.Close()
		return "", n, err
	}
	if err := f.Chmod(paths.DefaultFileMode); err != nil {
		f.Close()
		return "", n, err
	}
	if err := f.Sync(); err != nil {
		f.Close()
		return "", n, err
	}
	if err := f.Close(); err != nil {
		return "", n, err
	}

	return digester.Digest(), n, nil
}
