// ABOUTME: PTY session harness for end-to-end tests of the promptline binary
// ABOUTME: Builds the binary once, runs it on a creack/pty, and answers cursor position queries

//go:build linux || darwin || dragonfly || freebsd || netbsd || openbsd

package e2e

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/creack/pty"
)

// binary is the promptline executable built by TestMain; empty when the
// build failed or e2e tests are skipped.
var (
	binary   string
	buildErr error
)

func TestMain(m *testing.M) {
	dir, err := os.MkdirTemp("", "promptline-e2e")
	if err != nil {
		fmt.Fprintf(os.Stderr, "e2e: temp dir: %v\n", err)
		os.Exit(1)
	}
	binary = filepath.Join(dir, "promptline")
	build := exec.Command("go", "build", "-o", binary, "./cmd/promptline")
	build.Dir = ".."
	if out, err := build.CombinedOutput(); err != nil {
		buildErr = fmt.Errorf("go build: %v\n%s", err, out)
	}

	code := m.Run()
	_ = os.RemoveAll(dir)
	os.Exit(code)
}

type session struct {
	ptmx *os.File
	cmd  *exec.Cmd

	mu   sync.Mutex
	out  bytes.Buffer
	done chan struct{}
	err  error
}

// startPromptline runs the binary with args on a fresh pty. HOME and the
// working directory point at an empty temp dir so no user settings leak
// in; color and bell are turned off through the environment.
func startPromptline(t *testing.T, args ...string) *session {
	t.Helper()
	if testing.Short() {
		t.Skip("e2e tests skipped in short mode")
	}
	if buildErr != nil {
		t.Fatalf("building promptline: %v", buildErr)
	}

	home := t.TempDir()
	cmd := exec.Command(binary, args...)
	cmd.Dir = home
	cmd.Env = append(os.Environ(),
		"HOME="+home,
		"PROMPTLINE_COLOR=never",
		"PROMPTLINE_BELL=false",
		"PROMPTLINE_THEME=default",
	)
	ptmx, err := pty.StartWithSize(cmd, &pty.Winsize{Rows: 24, Cols: 80})
	if err != nil {
		t.Skipf("pty unavailable: %v", err)
	}

	s := &session{ptmx: ptmx, cmd: cmd, done: make(chan struct{})}
	go s.pump()
	return s
}

// pump copies terminal output into the buffer and answers every cursor
// position query with row 1, column 1.
func (s *session) pump() {
	buf := make([]byte, 4096)
	for {
		n, err := s.ptmx.Read(buf)
		if n > 0 {
			s.mu.Lock()
			s.out.Write(buf[:n])
			s.mu.Unlock()
			if queries := bytes.Count(buf[:n], []byte("\x1b[6n")); queries > 0 {
				_, _ = io.WriteString(s.ptmx, strings.Repeat("\x1b[1;1R", queries))
			}
		}
		if err != nil {
			return
		}
	}
}

func (s *session) output() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.out.String()
}

func (s *session) send(t *testing.T, input string) {
	t.Helper()
	if _, err := io.WriteString(s.ptmx, input); err != nil {
		t.Fatalf("writing %q: %v", input, err)
	}
}

func (s *session) expectStringTimeout(t *testing.T, want string, timeout time.Duration) {
	t.Helper()
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if strings.Contains(s.output(), want) {
			return
		}
		time.Sleep(20 * time.Millisecond)
	}
	t.Fatalf("timed out waiting for %q; output so far: %q", want, s.output())
}

// waitExit waits for the process and fails on a non-zero exit status.
func (s *session) waitExit(t *testing.T, timeout time.Duration) {
	t.Helper()
	go func() {
		s.err = s.cmd.Wait()
		close(s.done)
	}()
	select {
	case <-s.done:
	case <-time.After(timeout):
		t.Fatalf("process did not exit within %v; output: %q", timeout, s.output())
	}
	var exit *exec.ExitError
	if errors.As(s.err, &exit) {
		t.Fatalf("process exited with %d; output: %q", exit.ExitCode(), s.output())
	}
}

func (s *session) close() {
	if s.cmd.ProcessState == nil && s.cmd.Process != nil {
		_ = s.cmd.Process.Kill()
	}
	_ = s.ptmx.Close()
}
