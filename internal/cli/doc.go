// Parses flags, configures logging and dispatches the hyrun subcommands.
//
// Global flags:
//
//	-q, --quiet     Suppress informational output.
//	-v, --verbose   Include source locations in log records.
//	-d, --debug     Enable debug output.
//
// Subcommands are run, cache and version. Flags override build-time
// defaults set via linker flags. The logger is rebuilt after parsing so the
// final level applies to everything the subcommand logs. SIGINT, SIGTERM and
// SIGHUP end the session: the run command then stops the server gracefully
// and exits with the server's exit code.
package cli
