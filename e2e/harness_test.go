// ABOUTME: PTY harness for e2e tests: builds the binary once, drives it in a pty
// ABOUTME: Provides send/expect/waitExit helpers over accumulated terminal output

package e2e

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/creack/pty"
)

var (
	buildOnce sync.Once
	binPath   string
	buildErr  error
)

// binary builds cmd/pi-table once per test run and returns its path.
func binary(t *testing.T) string {
	t.Helper()
	buildOnce.Do(func() {
		dir, err := os.MkdirTemp("", "pi-table-e2e")
		if err != nil {
			buildErr = err
			return
		}
		binPath = filepath.Join(dir, "pi-table")
		cmd := exec.Command("go", "build", "-o", binPath, "../cmd/pi-table")
		if out, err := cmd.CombinedOutput(); err != nil {
			buildErr = fmt.Errorf("building pi-table: %v\n%s", err, out)
		}
	})
	if buildErr != nil {
		t.Fatal(buildErr)
	}
	return binPath
}

// session is one running viewer instance attached to a pty.
type session struct {
	cmd  *exec.Cmd
	ptmx *os.File

	mu   sync.Mutex
	out  strings.Builder
	done chan error
}

// startViewer launches the binary under a 80x24 pty with the given args.
func startViewer(t *testing.T, args ...string) *session {
	t.Helper()

	cmd := exec.Command(binary(t), args...)
	cmd.Env = append(os.Environ(), "TERM=xterm-256color")

	ptmx, err := pty.StartWithSize(cmd, &pty.Winsize{Rows: 24, Cols: 80})
	if err != nil {
		t.Fatalf("starting pty: %v", err)
	}

	s := &session{cmd: cmd, ptmx: ptmx, done: make(chan error, 1)}

	go func() {
		buf := make([]byte, 4096)
		answered := 0
		for {
			n, err := ptmx.Read(buf)
			if n > 0 {
				s.mu.Lock()
				s.out.Write(buf[:n])
				all := s.out.String()
				s.mu.Unlock()
				// Answer cursor-position queries (ESC[6n) like a real
				// terminal would; termenv blocks on the reply for up to
				// five seconds during startup otherwise.
				for queries := strings.Count(all, "\x1b[6n"); answered < queries; answered++ {
					_, _ = ptmx.WriteString("\x1b[1;1R")
				}
			}
			if err != nil {
				break
			}
		}
	}()
	go func() { s.done <- cmd.Wait() }()

	return s
}

func (s *session) close() {
	_ = s.cmd.Process.Kill()
	_ = s.ptmx.Close()
}

// output returns everything the program has written so far.
func (s *session) output() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.out.String()
}

// send writes raw bytes to the pty.
func (s *session) send(t *testing.T, text string) {
	t.Helper()
	if _, err := s.ptmx.WriteString(text); err != nil {
		t.Fatalf("writing to pty: %v", err)
	}
}

// sendCtrl sends a control character (Ctrl+c for 'c', etc.).
func (s *session) sendCtrl(t *testing.T, c byte) {
	t.Helper()
	s.send(t, string(rune(c-'a'+1)))
}

// sendEscape sends a bare ESC.
func (s *session) sendEscape(t *testing.T) {
	t.Helper()
	s.send(t, "\x1b")
	// An ESC immediately followed by another key arrives in one read and
	// is parsed as a single alt-modified key; pause so it stays bare.
	time.Sleep(100 * time.Millisecond)
}

// sendKey sends a named cursor key escape sequence.
func (s *session) sendKey(t *testing.T, name string) {
	t.Helper()
	seqs := map[string]string{
		"up":     "\x1b[A",
		"down":   "\x1b[B",
		"home":   "\x1b[H",
		"end":    "\x1b[F",
		"pgdown": "\x1b[6~",
		"pgup":   "\x1b[5~",
		"enter":  "\r",
	}
	seq, ok := seqs[name]
	if !ok {
		t.Fatalf("unknown key %q", name)
	}
	s.send(t, seq)
}

// expectStringTimeout polls the accumulated output for want.
func (s *session) expectStringTimeout(t *testing.T, want string, timeout time.Duration) {
	t.Helper()
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if strings.Contains(s.output(), want) {
			return
		}
		time.Sleep(50 * time.Millisecond)
	}
	t.Fatalf("timed out waiting for %q; output:\n%s", want, tail(s.output(), 2000))
}

// waitExit waits for the process to terminate.
func (s *session) waitExit(t *testing.T, timeout time.Duration) {
	t.Helper()
	select {
	case <-s.done:
	case <-time.After(timeout):
		t.Fatal("process did not exit in time")
	}
}

func tail(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[len(s)-n:]
}
