package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/cruciblehq/hyrun/internal/config"
	"github.com/cruciblehq/hyrun/internal/launch"
	"github.com/cruciblehq/hyrun/internal/paths"
	"github.com/cruciblehq/hyrun/internal/supervisor"
	"golang.org/x/term"
)

// Represents the 'hyrun run' command.
type RunCmd struct {
	JarURL      string        `name:"jar-url" short:"j" help:"Server jar URL or path relative to the project (default: ${default_jar})." placeholder:"URL|PATH"`
	Plugin      string        `short:"p" help:"Plugin jar to stage into run/plugins." type:"path" placeholder:"PATH"`
	Project     string        `help:"Project root." type:"path" default:"."`
	Config      string        `help:"Configuration file (default: <project>/hyrun.yaml)." type:"path" placeholder:"PATH"`
	CacheDir    string        `help:"Cache root for downloaded server jars." type:"path" placeholder:"DIR"`
	Java        string        `help:"JVM executable (default: java)." placeholder:"PATH"`
	JVMArg      []string      `name:"jvm-arg" help:"Extra JVM option, placed before -jar. Repeatable." placeholder:"OPT"`
	DebugJVM    bool          `name:"debug-jvm" help:"Start a JDWP debug listener."`
	DebugPort   int           `help:"Port for the JDWP listener (default: 5005)." placeholder:"PORT"`
	StopTimeout time.Duration `help:"Warn if the server takes longer than this to stop." default:"30s"`
	Args        []string      `arg:"" optional:"" passthrough:"" help:"Arguments passed to the server."`
}

// Executes the run command.
//
// Blocks until the server exits. A non-zero server exit code is returned as
// an [ExitStatus] so that it becomes the process exit code.
func (c *RunCmd) Run(ctx context.Context) error {
	opts, err := c.options()
	if err != nil {
		return err
	}

	slog.Debug("starting session",
		"project", opts.ProjectRoot,
		"jar", opts.JarURL,
		"plugin", opts.Plugin,
		"cache", opts.CacheDir,
		"interactive", term.IsTerminal(int(os.Stdin.Fd())),
	)

	code, err := launch.Run(ctx, opts)
	if err != nil {
		return err
	}
	if code != 0 {
		return &ExitStatus{Code: code}
	}
	return nil
}

// Merges flags, the configuration file and defaults into launch options.
func (c *RunCmd) options() (launch.Options, error) {
	path := c.Config
	if path == "" {
		path = filepath.Join(c.Project, config.FileName)
	}

	file, err := config.Load(path, c.Config != "")
	if err != nil {
		return launch.Options{}, err
	}

	if err := config.CheckPort(c.DebugPort); err != nil {
		return launch.Options{}, fmt.Errorf("%w: --debug-port: %w", config.ErrConfig, err)
	}

	serverArgs := c.Args
	if len(serverArgs) == 0 {
		serverArgs = file.ServerArgs
	}

	return launch.Options{
		ProjectRoot: c.Project,
		JarURL:      config.Pick(c.JarURL, file.JarURL, config.DefaultJarURL),
		Plugin:      config.Pick(c.Plugin, file.Plugin),
		CacheDir:    paths.ServerCache(config.Pick(c.CacheDir, file.CacheDir)),
		Java:        config.Pick(c.Java, file.Java),
		JVMArgs:     append(append([]string{}, file.JVMArgs...), c.JVMArg...),
		ServerArgs:  serverArgs,
		Debug:       c.DebugJVM,
		DebugPort:   config.Pick(c.DebugPort, file.DebugPort, supervisor.DefaultDebugPort),
		StopTimeout: c.StopTimeout,
		Console:     supervisor.StdConsole(),
	}, nil
}
