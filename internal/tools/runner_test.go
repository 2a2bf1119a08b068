package tools

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
	"time"

	verrors "github.com/PolarWolf314/veil/internal/errors"
)

type exitStatus int

func (e exitStatus) Error() string { return fmt.Sprintf("exit status %d", int(e)) }
func (e exitStatus) ExitCode() int { return int(e) }

func TestExitCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
		wantOK   bool
	}{
		{"plain error", errors.New("launch failed"), 0, false},
		{"exit one", exitStatus(1), 1, true},
		{"wrapped exit two", fmt.Errorf("diff: %w", exitStatus(2)), 2, true},
		{"signalled", exitStatus(-1), 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, ok := ExitCode(tt.err)
			if code != tt.wantCode || ok != tt.wantOK {
				t.Errorf("ExitCode() = (%d, %v), want (%d, %v)", code, ok, tt.wantCode, tt.wantOK)
			}
		})
	}
}

func TestExecRunnerMissingProgram(t *testing.T) {
	err := ExecRunner{}.Run(context.Background(), Command{Name: "veil-no-such-program-xyz"})
	if !errors.Is(err, verrors.ErrToolNotFound) {
		t.Fatalf("Expected ErrToolNotFound, got: %v", err)
	}
}

func TestExecRunnerPassesStdinAndExitStatus(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("requires a POSIX shell")
	}
	if _, err := exec.LookPath("sh"); err != nil {
		t.Skip("sh not available")
	}

	var out bytes.Buffer
	err := ExecRunner{}.Run(context.Background(), Command{
		Name:   "sh",
		Args:   []string{"-c", "cat; exit 3"},
		Stdin:  strings.NewReader("secret"),
		Stdout: &out,
	})

	if out.String() != "secret" {
		t.Errorf("Expected stdin to reach the child, got: %q", out.String())
	}
	code, ok := ExitCode(err)
	if !ok || code != 3 {
		t.Errorf("ExitCode() = (%d, %v), want (3, true)", code, ok)
	}
}

func requireShell(t *testing.T) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("requires a POSIX shell")
	}
	if _, err := exec.LookPath("sh"); err != nil {
		t.Skip("sh not available")
	}
}

func TestExecRunnerCancelledBeforeStart(t *testing.T) {
	requireShell(t)
	marker := filepath.Join(t.TempDir(), "ran")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := ExecRunner{}.Run(ctx, Command{Name: "sh", Args: []string{"-c", "touch " + marker}})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("Expected context.Canceled, got: %v", err)
	}
	if _, err := os.Stat(marker); !os.IsNotExist(err) {
		t.Error("Program should not start after cancellation")
	}
}

func TestExecRunnerCancellation(t *testing.T) {
	requireShell(t)

	tests := []struct {
		name        string
		foreground  bool
		wantOutlive bool
	}{
		{"background child is killed", false, false},
		{"foreground child runs to completion", true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			marker := filepath.Join(t.TempDir(), "finished")
			ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
			defer cancel()

			err := ExecRunner{}.Run(ctx, Command{
				Name:       "sh",
				Args:       []string{"-c", "sleep 0.5; touch " + marker},
				Foreground: tt.foreground,
			})

			if !errors.Is(err, context.DeadlineExceeded) {
				t.Fatalf("Expected the cancellation to be reported, got: %v", err)
			}
			_, statErr := os.Stat(marker)
			if outlived := statErr == nil; outlived != tt.wantOutlive {
				t.Errorf("Child finished = %v, want %v", outlived, tt.wantOutlive)
			}
		})
	}
}

func TestInteractiveIsForeground(t *testing.T) {
	c := Interactive("vim", "notes")
	if !c.Foreground {
		t.Error("Interactive commands must not be killed on cancellation")
	}
	if c.Stdin != os.Stdin || c.Stdout != os.Stdout || c.Stderr != os.Stderr {
		t.Error("Interactive commands must use the terminal")
	}
}
