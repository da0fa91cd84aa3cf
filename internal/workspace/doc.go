// Package workspace stages the run directory for a server launch.
//
// The layout is fixed:
//
//	<project>/run/             working directory of the server
//	<project>/run/server.jar   resolved server jar
//	<project>/run/plugins/     plugin jars loaded by the server
//
// Staging is idempotent. Directories are created when missing and staged
// files are replaced on every run. Each copy is written to a temporary file
// next to its target and renamed into place, so a failed copy leaves the
// previous file untouched. A missing plugin artifact is recorded as a
// warning rather than an error, so the bare server can still be started.
package workspace
