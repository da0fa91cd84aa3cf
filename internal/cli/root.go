package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/alecthomas/kong"
	"github.com/cruciblehq/hyrun/internal"
	"github.com/cruciblehq/hyrun/internal/config"
	"golang.org/x/sys/unix"
)

// Represents the root command.
var RootCmd struct {
	Quiet   bool       `short:"q" help:"Suppress informational output."`
	Verbose bool       `short:"v" help:"Include source locations in log output."`
	Debug   bool       `short:"d" help:"Enable debug output."`
	Run     RunCmd     `cmd:"" help:"Stage and run the server with the plugin."`
	Cache   CacheCmd   `cmd:"" help:"Inspect or clear downloaded server jars."`
	Version VersionCmd `cmd:"" help:"Show version information."`
}

// Returned by a subcommand that wants the process to exit with a specific
// code without reporting an error.
type ExitStatus struct {
	Code int
}

func (e *ExitStatus) Error() string {
	return fmt.Sprintf("exit status %d", e.Code)
}

// Signals that end the session.
var sessionSignals = []os.Signal{unix.SIGINT, unix.SIGTERM, unix.SIGHUP}

// Parses arguments, configures logging, and runs the selected subcommand.
//
// The context handed to subcommands ends on SIGINT, SIGTERM or SIGHUP.
func Execute() error {
	ctx, cancel := sessionContext(context.Background(), sessionSignals...)
	defer cancel()

	kongCtx := kong.Parse(&RootCmd,
		kong.Name(internal.Name),
		kong.Description("Runs a Hytale server with your plugin for local development.\n\nThe server jar is resolved from a URL (downloaded once and cached) or a project path, staged into run/ together with the plugin, and started with its console attached to this terminal."),
		kong.UsageOnError(),
		kong.Vars{
			"version":     internal.VersionString(),
			"default_jar": config.DefaultJarURL,
		},
		kong.BindTo(ctx, (*context.Context)(nil)),
	)

	configureLogger()

	return kongCtx.Run()
}

// Returns a context that ends on the first of sigs.
//
// Signal capture is released as soon as the context ends, so a second
// signal gets its default action and kills the launcher even while the
// server is still shutting down. The server runs in its own process group
// and is left behind in that case.
func sessionContext(parent context.Context, sigs ...os.Signal) (context.Context, context.CancelFunc) {
	ctx, stop := signal.NotifyContext(parent, sigs...)
	go func() {
		<-ctx.Done()
		stop()
	}()
	return ctx, stop
}

// Applies the logging flags and rebuilds the default logger.
func configureLogger() {
	internal.SetDebug(RootCmd.Debug || internal.IsDebug())
	internal.SetQuiet(RootCmd.Quiet || internal.IsQuiet())
	internal.SetVerbose(RootCmd.Verbose || internal.IsVerbose())

	SetDefaultLogger(os.Stderr)
}
