package cli

import (
	"context"
	"os"
	"os/signal"
	"testing"
	"time"

	"golang.org/x/sys/unix"
)

func TestSessionContextSignal(t *testing.T) {
	// Keeps the test binary alive once sessionContext releases the signal.
	guard := make(chan os.Signal, 2)
	signal.Notify(guard, unix.SIGUSR1)
	defer signal.Stop(guard)

	ctx, cancel := sessionContext(context.Background(), unix.SIGUSR1)
	defer cancel()

	if err := unix.Kill(os.Getpid(), unix.SIGUSR1); err != nil {
		t.Fatal(err)
	}
	select {
	case <-ctx.Done():
	case <-time.After(5 * time.Second):
		t.Fatal("context not done after signal")
	}

	// A second signal must not be swallowed by the released context.
	<-guard
	if err := unix.Kill(os.Getpid(), unix.SIGUSR1); err != nil {
		t.Fatal(err)
	}
	select {
	case <-guard:
	case <-time.After(5 * time.Second):
		t.Fatal("second signal not delivered")
	}
}

func TestSessionContextParentCancel(t *testing.T) {
	parent, cancelParent := context.WithCancel(context.Background())
	ctx, cancel := sessionContext(parent, unix.SIGUSR2)
	defer cancel()

	cancelParent()
	select {
	case <-ctx.Done():
	case <-time.After(5 * time.Second):
		t.Fatal("context not done after parent cancel")
	}
}
