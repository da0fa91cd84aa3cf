package supervisor

import (
	"context"
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"
)

// Lifecycle of a supervised process as seen by the [Coordinator].
type State int32

const (
	Running     State = iota // The child is running and no stop was requested.
	Terminating              // SIGTERM was sent and the child has not exited yet.
	Exited                   // The child has exited. Terminal.
)

func (s State) String() string {
	switch s {
	case Running:
		return "running"
	case Terminating:
		return "terminating"
	case Exited:
		return "exited"
	default:
		return fmt.Sprintf("unknown(%d)", int32(s))
	}
}

// Ends a supervised process when the session ends.
type Coordinator struct {
	proc        *Process
	state       atomic.Int32
	stopTimeout time.Duration
}

// Configures a [Coordinator].
type CoordinatorOption func(*Coordinator)

// Sets how long the child may take to exit after SIGTERM before a warning
// is logged. The child is still waited for; it is never killed. Zero, the
// default, disables the warning.
func WithStopTimeout(d time.Duration) CoordinatorOption {
	return func(c *Coordinator) {
		c.stopTimeout = d
	}
}

// Creates a coordinator for p in the [Running] state.
func NewCoordinator(p *Process, opts ...CoordinatorOption) *Coordinator {
	c := &Coordinator{proc: p}
	for _, opt := range opts {
		opt(c)
	}
	c.state.Store(int32(Running))

	go func() {
		<-p.Done()
		c.state.Store(int32(Exited))
	}()

	return c
}

// Returns the current state.
func (c *Coordinator) State() State {
	return State(c.state.Load())
}

// Asks the child to terminate.
//
// Only the first request while [Running] sends SIGTERM. Requests while
// [Terminating] or after [Exited] do nothing.
func (c *Coordinator) RequestStop() {
	if !c.state.CompareAndSwap(int32(Running), int32(Terminating)) {
		return
	}

	if !c.proc.Alive() {
		return
	}

	slog.Info("stopping server", "pid", c.proc.PID())

	if err := c.proc.Terminate(); err != nil {
		slog.Warn("failed to signal server", "pid", c.proc.PID(), "error", err)
	}
}

// Blocks until the child exits and returns its exit code.
//
// If ctx ends first, the session is over: the child is asked to terminate
// and is then waited for. The launcher may itself be torn down before the
// child finishes exiting; nothing here prevents that.
func (c *Coordinator) Run(ctx context.Context) int {
	select {
	case <-c.proc.Done():
	case <-ctx.Done():
		c.RequestStop()
		c.awaitStop()
	}

	code := c.proc.Wait()
	c.state.Store(int32(Exited))
	return code
}

// Waits for the child after a stop request, warning once if it overruns the
// stop timeout.
func (c *Coordinator) awaitStop() {
	if c.stopTimeout <= 0 {
		return
	}

	timer := time.NewTimer(c.stopTimeout)
	defer timer.Stop()

	select {
	case <-c.proc.Done():
	case <-timer.C:
		slog.Warn("server is still running after stop request", "pid", c.proc.PID(), "timeout", c.stopTimeout)
	}
}
