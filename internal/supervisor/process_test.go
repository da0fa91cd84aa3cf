package supervisor

import (
	"errors"
	"os/exec"
	"reflect"
	"testing"
	"time"
)

func startShell(t *testing.T, script string) *Process {
	t.Helper()
	p, err := Start(t.TempDir(), []string{"sh", "-c", script}, nil)
	if err != nil {
		t.Fatalf("Start: %v", err)
	}
	t.Cleanup(func() {
		p.Terminate()
		p.Stdin.Close()
		p.Stdout.Close()
		p.Stderr.Close()
	})
	return p
}

func waitTimeout(t *testing.T, p *Process) int {
	t.Helper()
	select {
	case <-p.Done():
		return p.Wait()
	case <-time.After(10 * time.Second):
		t.Fatal("process did not exit")
		return 0
	}
}

func TestLaunchOptionsArgs(t *testing.T) {
	tests := []struct {
		name string
		opts LaunchOptions
		want []string
	}{
		{
			name: "defaults",
			opts: LaunchOptions{Jar: "server.jar"},
			want: []string{"java", "-jar", "server.jar"},
		},
		{
			name: "jvm args before jar",
			opts: LaunchOptions{
				Java:    "/opt/jdk/bin/java",
				JVMArgs: []string{DebugAgent(5005), "-Xmx2G"},
				Jar:     "server.jar",
			},
			want: []string{"/opt/jdk/bin/java", "-agentlib:jdwp=transport=dt_socket,server=y,suspend=n,address=5005", "-Xmx2G", "-jar", "server.jar"},
		},
		{
			name: "server args after jar",
			opts: LaunchOptions{Jar: "server.jar", ServerArgs: []string{"--assets", "Assets.zip"}},
			want: []string{"java", "-jar", "server.jar", "--assets", "Assets.zip"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.opts.Args(); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Args = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestStartSpawnFailed(t *testing.T) {
	dir := t.TempDir()
	_, err := Start(dir, []string{"/nonexistent/java", "-jar", "server.jar"}, nil)
	if !errors.Is(err, ErrSpawnFailed) {
		t.Fatalf("err = %v, want ErrSpawnFailed", err)
	}

	var serr *Error
	if !errors.As(err, &serr) || serr.Dir != dir {
		t.Errorf("error does not carry the directory: %v", err)
	}

	if _, err := Start(dir, nil, nil); !errors.Is(err, ErrSpawnFailed) {
		t.Fatalf("empty command err = %v, want ErrSpawnFailed", err)
	}
}

func TestLaunchMissingJava(t *testing.T) {
	_, err := Launch(LaunchOptions{Dir: t.TempDir(), Java: "hyrun-no-such-java", Jar: "server.jar"})
	if !errors.Is(err, ErrSpawnFailed) {
		t.Fatalf("err = %v, want ErrSpawnFailed", err)
	}
	if !errors.Is(err, exec.ErrNotFound) {
		t.Errorf("err = %v, want exec.ErrNotFound cause", err)
	}
}

func TestProcessExitCode(t *testing.T) {
	p := startShell(t, "exit 3")

	if code := waitTimeout(t, p); code != 3 {
		t.Fatalf("exit code = %d, want 3", code)
	}
	if p.Alive() {
		t.Error("Alive() = true after exit")
	}
	if p.ExitCode() != 3 {
		t.Errorf("ExitCode() = %d, want 3", p.ExitCode())
	}
	if p.Wait() != 3 {
		t.Error("second Wait returned a different code")
	}
	var exitErr *exec.ExitError
	if !errors.As(p.WaitErr(), &exitErr) {
		t.Errorf("WaitErr = %v, want *exec.ExitError", p.WaitErr())
	}
}

func TestProcessTerminate(t *testing.T) {
	p := startShell(t, "exec sleep 30")

	if !p.Alive() {
		t.Fatal("Alive() = false for a sleeping child")
	}
	if p.ExitCode() != -1 {
		t.Errorf("ExitCode() = %d before exit, want -1", p.ExitCode())
	}

	if err := p.Terminate(); err != nil {
		t.Fatalf("Terminate: %v", err)
	}
	if code := waitTimeout(t, p); code != 128+15 {
		t.Fatalf("exit code = %d, want %d", code, 128+15)
	}
}

func TestTerminateAfterExit(t *testing.T) {
	p := startShell(t, "exit 0")
	waitTimeout(t, p)

	for i := 0; i < 2; i++ {
		if err := p.Terminate(); err != nil {
			t.Fatalf("Terminate after exit: %v", err)
		}
	}
}
