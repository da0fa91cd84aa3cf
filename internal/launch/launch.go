package launch

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/cruciblehq/hyrun/internal/artifact"
	"github.com/cruciblehq/hyrun/internal/paths"
	"github.com/cruciblehq/hyrun/internal/supervisor"
	"github.com/cruciblehq/hyrun/internal/workspace"
)

// How long to wait for the output relays after the server exits.
const DefaultDrainTimeout = 2 * time.Second

// Everything a session needs.
type Options struct {
	ProjectRoot  string             // Root for the run directory and relative jar paths.
	JarURL       string             // Server jar URL or project-relative path.
	Plugin       string             // Plugin artifact produced by the build. Empty if none.
	CacheDir     string             // Server jar cache directory.
	Client       *http.Client       // HTTP client for downloads. Nil uses the resolver default.
	Java         string             // JVM executable. Empty uses supervisor.DefaultJava.
	JVMArgs      []string           // Extra JVM options.
	ServerArgs   []string           // Arguments passed to the server.
	Debug        bool               // Start a JDWP listener.
	DebugPort    int                // JDWP port. Zero uses supervisor.DefaultDebugPort.
	StopTimeout  time.Duration      // Warn if the server outlives a stop request by this much.
	DrainTimeout time.Duration      // Bound on waiting for output after exit. Zero uses DefaultDrainTimeout.
	Console      supervisor.Console // Streams relayed to and from the server.
}

// Runs one server session and returns the server's exit code.
//
// Resolution, staging and spawn failures are returned as errors before any
// server runs. Once the server is up, the only outcome is its exit code.
// Cancelling ctx ends the session: the server is asked to stop and Run
// returns when it has exited.
func Run(ctx context.Context, opts Options) (int, error) {
	resolver := artifact.New(artifact.Config{
		ProjectRoot: opts.ProjectRoot,
		CacheDir:    opts.CacheDir,
		Client:      opts.Client,
	})

	jar, err := resolver.Resolve(ctx, opts.JarURL)
	if err != nil {
		return 0, err
	}

	ws, err := workspace.Stage(opts.ProjectRoot, jar, opts.Plugin)
	if err != nil {
		return 0, err
	}

	out := opts.Console.Stdout

	jvmArgs := opts.JVMArgs
	if opts.Debug {
		port := opts.DebugPort
		if port == 0 {
			port = supervisor.DefaultDebugPort
		}
		jvmArgs = append([]string{supervisor.DebugAgent(port)}, jvmArgs...)
		fmt.Fprintf(out, "Debug mode enabled. Connect debugger to port %d\n", port)
	}

	fmt.Fprintln(out, "Starting Hytale server...")
	fmt.Fprintln(out, "Press Ctrl+C to stop the server")

	proc, err := supervisor.Launch(supervisor.LaunchOptions{
		Dir:        ws.Root,
		Java:       opts.Java,
		JVMArgs:    jvmArgs,
		Jar:        paths.ServerJar,
		ServerArgs: opts.ServerArgs,
	})
	if err != nil {
		return 0, err
	}

	slog.Debug("server running", "pid", proc.PID(), "dir", ws.Root)

	pumps := supervisor.Relay(proc, opts.Console)

	coordinator := supervisor.NewCoordinator(proc, supervisor.WithStopTimeout(opts.StopTimeout))
	code := coordinator.Run(ctx)

	drain := opts.DrainTimeout
	if drain == 0 {
		drain = DefaultDrainTimeout
	}
	if !pumps.Wait(drain) {
		slog.Warn("server output still open after exit", "timeout", drain)
	}

	fmt.Fprintf(out, "Server exited with code %d\n", code)
	return code, nil
}
