//go:build e2e && unix

package main

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"regexp"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/creack/pty"
)

const ringSize = 1 << 20   // 1 MiB of scrollback
var binPath = "scribe_e2e" // set by TestMain

// Terminal input sequences
const (
	KeyEnter     = "\r"
	KeyEsc       = "\x1b"
	KeyBackspace = "\x7f"
	KeyCtrlC     = "\x03"
	KeyCtrlF     = "\x06"
	KeyCtrlQ     = "\x11"
	KeyCtrlS     = "\x13"
	KeyUp        = "\x1b[A"
	KeyDown      = "\x1b[B"
	KeyRight     = "\x1b[C"
	KeyLeft      = "\x1b[D"
)

// ANSI escape sequence regex for normalization - covers CSI, OSC, charset, keypad modes
var ansiRe = regexp.MustCompile(
	`(?:\x1b\[[0-9;?]*[ -/]*[@-~])|` + // CSI sequences
		`(?:\x1b\][^\x07]*\x07)|` + // OSC sequences
		`(?:\x1b[\(\)][A-Za-z])|` + // charset sequences
		`(?:\x1b=|\x1b>)|` + // keypad mode sequences
		`\r`,
)

// TUITestFramework drives the editor binary through a PTY
type TUITestFramework struct {
	t         *testing.T
	pty       *os.File
	cmd       *exec.Cmd
	workspace string

	// Ring buffer for continuous output capture
	mu   sync.Mutex
	buf  []byte
	head int
	full bool
}

// NewTUITest creates a framework with its own scratch workspace
func NewTUITest(t *testing.T) *TUITestFramework {
	return &TUITestFramework{
		t:         t,
		buf:       make([]byte, ringSize),
		workspace: t.TempDir(),
	}
}

// Path returns name inside the workspace
func (tf *TUITestFramework) Path(name string) string {
	return filepath.Join(tf.workspace, name)
}

// WriteFile creates a file in the workspace
func (tf *TUITestFramework) WriteFile(name, content string) string {
	tf.t.Helper()
	p := tf.Path(name)
	if err := os.WriteFile(p, []byte(content), 0o644); err != nil {
		tf.t.Fatalf("write %s: %v", p, err)
	}
	return p
}

// ReadFile returns the content of a workspace file
func (tf *TUITestFramework) ReadFile(name string) (string, error) {
	data, err := os.ReadFile(tf.Path(name))
	return string(data), err
}

// StartApp launches the editor with args in an 80x24 PTY. Config and
// log files stay inside the workspace.
func (tf *TUITestFramework) StartApp(args ...string) error {
	cmdArgs := append([]string{
		"-config", tf.Path("config.toml"),
		"-log", tf.Path("scribe.log"),
	}, args...)
	tf.cmd = exec.Command(binPath, cmdArgs...)
	tf.cmd.Dir = tf.workspace
	tf.cmd.Env = append(os.Environ(),
		"TERM=xterm-256color",
		"LC_ALL=C",
		"LANG=C",
		"HOME="+tf.workspace,
	)

	ptyFile, err := pty.StartWithSize(tf.cmd, &pty.Winsize{Rows: 24, Cols: 80})
	if err != nil {
		return fmt.Errorf("failed to start command: %w", err)
	}
	tf.pty = ptyFile

	tf.startReader()
	return nil
}

func (tf *TUITestFramework) startReader() {
	go func() {
		buf := make([]byte, 8192)
		for {
			n, err := tf.pty.Read(buf)
			if n > 0 {
				tf.mu.Lock()
				for i := 0; i < n; i++ {
					tf.buf[tf.head] = buf[i]
					tf.head = (tf.head + 1) % ringSize
					if tf.head == 0 {
						tf.full = true
					}
				}
				tf.mu.Unlock()
			}
			if err != nil {
				return
			}
		}
	}()
}

// SendKeys writes raw input to the application
func (tf *TUITestFramework) SendKeys(keys ...string) error {
	tf.t.Helper()
	for _, k := range keys {
		if _, err := tf.pty.Write([]byte(k)); err != nil {
			return err
		}
		// separate writes so escape sequences are not merged
		time.Sleep(20 * time.Millisecond)
	}
	return nil
}

// Type sends text one rune at a time
func (tf *TUITestFramework) Type(text string) error {
	tf.t.Helper()
	for _, r := range text {
		if err := tf.SendKeys(string(r)); err != nil {
			return err
		}
	}
	return nil
}

// Ready waits for the first full frame. It opens with the help hint unless
// a startup message has already replaced it.
func (tf *TUITestFramework) Ready() bool {
	tf.t.Helper()
	return tf.WaitFor(func(s string) bool {
		plain := ansiRe.ReplaceAllString(s, "")
		for _, marker := range []string{"HELP:", "New file:", "Config saved to"} {
			if strings.Contains(plain, marker) {
				return true
			}
		}
		return false
	}, 5*time.Second)
}

// SeePlain waits for specific plain text to appear
func (tf *TUITestFramework) SeePlain(text string) bool {
	tf.t.Helper()
	return tf.OutputContainsPlain(text, 3*time.Second)
}

// OutputContainsPlain checks if the normalized output contains text within a timeout
func (tf *TUITestFramework) OutputContainsPlain(text string, timeout time.Duration) bool {
	tf.t.Helper()
	return tf.WaitFor(func(s string) bool {
		return strings.Contains(ansiRe.ReplaceAllString(s, ""), text)
	}, timeout)
}

// WaitFor waits for a predicate to be true in the output
func (tf *TUITestFramework) WaitFor(pred func(string) bool, timeout time.Duration) bool {
	tf.t.Helper()
	deadline := time.Now().Add(timeout)
	for {
		if pred(tf.Snapshot()) {
			return true
		}
		if time.Now().After(deadline) {
			return false
		}
		time.Sleep(25 * time.Millisecond)
	}
}

// WaitExit waits for the process to end and returns its exit code
func (tf *TUITestFramework) WaitExit(timeout time.Duration) (int, error) {
	tf.t.Helper()
	done := make(chan error, 1)
	go func() { done <- tf.cmd.Wait() }()

	select {
	case err := <-done:
		if tf.cmd.ProcessState == nil {
			return -1, err
		}
		return tf.cmd.ProcessState.ExitCode(), nil
	case <-time.After(timeout):
		return -1, fmt.Errorf("process did not exit within %s", timeout)
	}
}

// Snapshot returns the current contents of the ring buffer
func (tf *TUITestFramework) Snapshot() string {
	tf.mu.Lock()
	defer tf.mu.Unlock()
	if !tf.full {
		return string(tf.buf[:tf.head])
	}
	out := make([]byte, ringSize)
	copy(out, tf.buf[tf.head:])
	copy(out[ringSize-tf.head:], tf.buf[:tf.head])
	return string(out)
}

// SnapshotPlain returns the ring buffer with ANSI sequences removed
func (tf *TUITestFramework) SnapshotPlain() string {
	return ansiRe.ReplaceAllString(tf.Snapshot(), "")
}

// DumpTailOnFail saves the last n bytes of normalized output for debugging
func (tf *TUITestFramework) DumpTailOnFail(t *testing.T, name string, n int) {
	s := tf.SnapshotPlain()
	if len(s) > n {
		s = s[len(s)-n:]
	}
	p := filepath.Join(t.TempDir(), name+".txt")
	_ = os.WriteFile(p, []byte(s), 0o644)
	t.Logf("Saved tail to %s", p)
}

// Cleanup closes the PTY and kills the application if it is still running
func (tf *TUITestFramework) Cleanup() {
	if tf.pty != nil {
		_ = tf.pty.Close()
		tf.pty = nil
	}
	if tf.cmd != nil && tf.cmd.Process != nil && tf.cmd.ProcessState == nil {
		_ = tf.cmd.Process.Kill()
		_, _ = tf.cmd.Process.Wait()
	}
}
