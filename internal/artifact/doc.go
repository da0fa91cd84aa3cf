// Package artifact resolves a server jar specifier to a file on disk.
//
// A specifier is either an http(s) URL or a path relative to the project
// root. Remote jars are downloaded once and kept in a durable cache keyed by
// the SHA-256 of the URL string, so repeated runs against the same URL never
// touch the network again. Cache entries are written to a temporary file and
// renamed into place, so an entry is either absent or complete. Entries are
// never invalidated automatically: a URL whose content changes keeps serving
// the bytes that were cached first until the entry is removed by hand.
//
// Example usage:
//
//	r := artifact.New(artifact.Config{
//	    ProjectRoot: ".",
//	    CacheDir:    paths.ServerCache(""),
//	})
//
//	jar, err := r.Resolve(ctx, "https://example.test/server.jar")
//	if err != nil {
//	    return err
//	}
package artifact
