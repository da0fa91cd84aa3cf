package supervisor

import (
	"errors"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"strconv"
	"sync"
	"sync/atomic"
	"syscall"

	"golang.org/x/sys/unix"
)

const (

	// JVM launched when no other is configured.
	DefaultJava = "java"

	// Port the JDWP agent listens on by default.
	DefaultDebugPort = 5005

	// Reported by [Process.ExitCode] before the child has exited.
	notExited = -1
)

// Describes the server command.
type LaunchOptions struct {
	Dir        string   // Working directory, normally the staged run directory.
	Java       string   // JVM executable. Empty uses [DefaultJava].
	JVMArgs    []string // Options for the JVM, placed before -jar.
	Jar        string   // Jar to run, relative to Dir or absolute.
	ServerArgs []string // Arguments for the server, placed after the jar.
	Env        []string // Extra environment, appended to the launcher's own.
}

// Returns the full command line.
//
// JVM options must come before -jar; anything after the jar is handed to
// the server instead of the JVM.
func (o LaunchOptions) Args() []string {
	java := o.Java
	if java == "" {
		java = DefaultJava
	}

	args := make([]string, 0, len(o.JVMArgs)+len(o.ServerArgs)+3)
	args = append(args, java)
	args = append(args, o.JVMArgs...)
	args = append(args, "-jar", o.Jar)
	args = append(args, o.ServerArgs...)
	return args
}

// Returns the JVM option that starts a JDWP listener on port without
// suspending the VM.
func DebugAgent(port int) string {
	return "-agentlib:jdwp=transport=dt_socket,server=y,suspend=n,address=" + strconv.Itoa(port)
}

// A running server child process.
//
// The handle owns the parent's ends of the child's three standard streams.
// It is safe for concurrent use.
type Process struct {
	cmd *exec.Cmd

	Stdin  io.WriteCloser // Write end of the child's stdin.
	Stdout io.ReadCloser  // Read end of the child's stdout.
	Stderr io.ReadCloser  // Read end of the child's stderr.

	done     chan struct{} // Closed once the child has been reaped.
	exited   atomic.Bool   // Set just before done is closed.
	exitCode atomic.Int32  // Exit code, notExited until reaped.
	waitErr  error         // Error from exec.Cmd.Wait, read after done.
	waitOnce sync.Once
}

// Starts the server described by opts.
func Launch(opts LaunchOptions) (*Process, error) {
	return Start(opts.Dir, opts.Args(), opts.Env)
}

// Starts argv in dir with the launcher's environment plus env.
//
// The child is connected through OS pipes that the returned handle owns, so
// reaping the child never closes a stream a pump is still reading. On
// failure nothing is left running and every pipe is closed.
func Start(dir string, argv []string, env []string) (*Process, error) {
	fail := func(err error) (*Process, error) {
		return nil, &Error{Args: argv, Dir: dir, Err: err}
	}

	if len(argv) == 0 {
		return fail(errors.New("empty command"))
	}

	var files pipes
	if err := files.open(); err != nil {
		files.closeAll()
		return fail(err)
	}

	cmd := exec.Command(argv[0], argv[1:]...)
	cmd.Dir = dir
	cmd.Env = append(os.Environ(), env...)
	cmd.Stdin = files.inR
	cmd.Stdout = files.outW
	cmd.Stderr = files.errW
	cmd.SysProcAttr = &syscall.SysProcAttr{Setpgid: true}

	if err := cmd.Start(); err != nil {
		files.closeAll()
		return fail(err)
	}

	// The child holds its own copies now.
	files.closeChildEnds()

	p := &Process{
		cmd:    cmd,
		Stdin:  files.inW,
		Stdout: files.outR,
		Stderr: files.errR,
		done:   make(chan struct{}),
	}
	p.exitCode.Store(notExited)

	slog.Debug("server started", "pid", cmd.Process.Pid, "args", argv, "dir", dir)

	go p.reap()

	return p, nil
}

// Waits for the child and records its exit code.
func (p *Process) reap() {
	p.waitOnce.Do(func() {
		p.waitErr = p.cmd.Wait()
		p.exitCode.Store(int32(exitCode(p.cmd.ProcessState, p.waitErr)))
		p.exited.Store(true)
		close(p.done)
	})
}

// Derives the reported exit code.
//
// A child killed by a signal reports 128 plus the signal number, as shells
// do, so callers always see a non-zero code for it.
func exitCode(state *os.ProcessState, err error) int {
	if state == nil {
		if err != nil {
			return 1
		}
		return 0
	}
	if ws, ok := state.Sys().(syscall.WaitStatus); ok && ws.Signaled() {
		return 128 + int(ws.Signal())
	}
	return state.ExitCode()
}

// Returns the child's process ID.
func (p *Process) PID() int {
	return p.cmd.Process.Pid
}

// Whether the child is still running. Never blocks.
func (p *Process) Alive() bool {
	return !p.exited.Load()
}

// Returns a channel closed once the child has exited.
func (p *Process) Done() <-chan struct{} {
	return p.done
}

// Returns the exit code, or -1 while the child is running.
func (p *Process) ExitCode() int {
	return int(p.exitCode.Load())
}

// Blocks until the child exits and returns its exit code.
//
// May be called any number of times from any goroutine.
func (p *Process) Wait() int {
	<-p.done
	return p.ExitCode()
}

// Returns the error reported when reaping the child, if any.
//
// Only meaningful after [Process.Done] is closed. A non-zero exit shows up
// here as an *exec.ExitError.
func (p *Process) WaitErr() error {
	select {
	case <-p.done:
		return p.waitErr
	default:
		return nil
	}
}

// Asks the child to shut down by sending SIGTERM.
//
// Calling Terminate after the child has exited does nothing and returns nil.
func (p *Process) Terminate() error {
	if !p.Alive() {
		return nil
	}
	err := p.cmd.Process.Signal(unix.SIGTERM)
	if errors.Is(err, os.ErrProcessDone) {
		return nil
	}
	return err
}

// The three pipes connecting parent and child.
type pipes struct {
	inR, inW   *os.File
	outR, outW *os.File
	errR, errW *os.File
}

func (p *pipes) open() (err error) {
	if p.inR, p.inW, err = os.Pipe(); err != nil {
		return err
	}
	if p.outR, p.outW, err = os.Pipe(); err != nil {
		return err
	}
	p.errR, p.errW, err = os.Pipe()
	return err
}

func (p *pipes) closeChildEnds() {
	closeFiles(p.inR, p.outW, p.errW)
}

func (p *pipes) closeAll() {
	closeFiles(p.inR, p.inW, p.outR, p.outW, p.errR, p.errW)
}

func closeFiles(files ...*os.File) {
	for _, f := range files {
		if f != nil {
			f.Close()
		}
	}
}
