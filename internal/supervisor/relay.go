package supervisor

import (
	"bufio"
	"errors"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"
)

// The launcher's side of the relay.
type Console struct {
	Stdin  io.Reader // Lines forwarded to the child.
	Stdout io.Writer // Receives the child's stdout.
	Stderr io.Writer // Receives the child's stderr.
}

// Returns the launcher's own standard streams.
func StdConsole() Console {
	return Console{Stdin: os.Stdin, Stdout: os.Stdout, Stderr: os.Stderr}
}

// Running relay pumps.
type Pumps struct {
	output    errgroup.Group // Stdout and stderr pumps.
	outputEnd chan struct{}  // Closed when both output pumps have returned.
	stdinEnd  chan struct{}  // Closed when the stdin pump has returned.
}

// Starts the three pumps between p and console and returns immediately.
//
// Each pump copies one line at a time until its source ends or fails, then
// stops without affecting the others. When the console's stdin ends, the
// child's stdin is closed so the child sees end of input.
func Relay(p *Process, console Console) *Pumps {
	ps := &Pumps{
		outputEnd: make(chan struct{}),
		stdinEnd:  make(chan struct{}),
	}

	ps.output.Go(func() error {
		defer p.Stdout.Close()
		pumpOutput("stdout", p.Stdout, console.Stdout)
		return nil
	})
	ps.output.Go(func() error {
		defer p.Stderr.Close()
		pumpOutput("stderr", p.Stderr, console.Stderr)
		return nil
	})
	go func() {
		ps.output.Wait()
		close(ps.outputEnd)
	}()

	go func() {
		defer close(ps.stdinEnd)
		defer p.Stdin.Close()
		pumpInput(console.Stdin, p.Stdin)
	}()

	return ps
}

// Waits for the output pumps to drain.
//
// The pumps end when the child and anything it spawned close their output.
// A positive timeout bounds the wait and reports whether the pumps finished.
// The stdin pump is never waited for, since it may be blocked on a terminal
// read that will not return.
func (ps *Pumps) Wait(timeout time.Duration) bool {
	if timeout <= 0 {
		<-ps.outputEnd
		return true
	}

	timer := time.NewTimer(timeout)
	defer timer.Stop()

	select {
	case <-ps.outputEnd:
		return true
	case <-timer.C:
		return false
	}
}

// Returns a channel closed when the stdin pump has stopped.
func (ps *Pumps) StdinDone() <-chan struct{} {
	return ps.stdinEnd
}

// Copies lines from the child to the console.
//
// When the console stops accepting writes the remaining output is drained
// and discarded, so the child never blocks on a full pipe.
func pumpOutput(name string, r io.Reader, w io.Writer) {
	br := bufio.NewReader(r)
	for {
		line, err := br.ReadString('\n')
		if len(line) > 0 {
			if _, werr := io.WriteString(w, line); werr != nil {
				slog.Debug("relay stopped", "stream", name, "error", werr)
				io.Copy(io.Discard, br)
				return
			}
		}
		if err != nil {
			logEnd(name, err)
			return
		}
	}
}

// Forwards console lines to the child, each terminated by a single "\n".
func pumpInput(r io.Reader, w io.Writer) {
	br := bufio.NewReader(r)
	for {
		line, err := br.ReadString('\n')
		if len(line) > 0 {
			line = strings.TrimSuffix(strings.TrimSuffix(line, "\n"), "\r") + "\n"
			if _, werr := io.WriteString(w, line); werr != nil {
				slog.Debug("relay stopped", "stream", "stdin", "error", werr)
				return
			}
		}
		if err != nil {
			logEnd("stdin", err)
			return
		}
	}
}

func logEnd(name string, err error) {
	if errors.Is(err, io.EOF) || errors.Is(err, os.ErrClosed) {
		slog.Debug("relay finished", "stream", name)
		return
	}
	slog.Debug("relay stopped", "stream", name, "error", err)
}
