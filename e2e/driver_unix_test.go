//go:build e2e && unix

package main

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/creack/pty"
)

var binPath = "cinematch_e2e" // built by TestMain

// Terminal size every app starts with
const (
	termRows = 40
	termCols = 120
)

// Keys the tests send
const (
	KeyEnter    = "\r"
	KeyCtrlC    = "\x03"
	KeyCtrlS    = "\x13"
	KeyEsc      = "\x1b"
	KeyTab      = "\t"
	KeyDown     = "\x1b[B"
	KeyRight    = "l"
	KeyQuit     = "q"
	KeyHelp     = "?"
	KeyCardInfo = "i"
	KeyContact  = "3"
)

// ANSI escape sequence regex for normalization - covers CSI, OSC, charset, keypad modes
var ansiRe = regexp.MustCompile(
	`(?:\x1b\[[0-9;?]*[ -/]*[@-~])|` + // CSI sequences
		`(?:\x1b\][^\x07]*\x07)|` + // OSC sequences
		`(?:\x1b[\(\)][A-Za-z])|` + // charset sequences
		`(?:\x1b=|\x1b>)|` + // keypad mode sequences
		`\r`, // carriage returns
)

// catalogRe matches the title line indicator once the catalog is in
var catalogRe = regexp.MustCompile(`\d+ (sample )?movies`)

func containsPlain(s, text string) bool {
	return strings.Contains(ansiRe.ReplaceAllString(s, ""), text)
}

// TUITestFramework runs one cinematch process in a PTY and records its output
type TUITestFramework struct {
	t         *testing.T
	pty       *os.File
	cmd       *exec.Cmd
	workspace string
	backend   string
	screen    *screen
}

// NewTUITest creates a new TUI test framework instance
func NewTUITest(t *testing.T) *TUITestFramework {
	return &TUITestFramework{t: t, screen: newScreen()}
}

// UseBackend points the app at a backend base URL
func (tf *TUITestFramework) UseBackend(url string) {
	tf.backend = url
}

// StartApp launches cinematch with given arguments in a PTY.
// HOME points at a fresh workspace so no user config is read.
func (tf *TUITestFramework) StartApp(args ...string) error {
	if tf.workspace == "" {
		ws, err := os.MkdirTemp("", "cinematch-e2e-*")
		if err != nil {
			return fmt.Errorf("failed to create workspace: %w", err)
		}
		tf.workspace = ws
	}

	cmdArgs := append([]string{"--log-file", filepath.Join(tf.workspace, "cinematch.log")}, args...)
	tf.cmd = exec.Command(binPath, cmdArgs...)
	tf.cmd.Env = append(os.Environ(),
		"TERM=xterm-256color",
		"LC_ALL=C",
		"LANG=C",
		"HOME="+tf.workspace,
		"XDG_CONFIG_HOME="+tf.workspace,
		"CINEMATCH_BACKEND="+tf.backend,
		"CINEMATCH_BROWSER=true",
	)

	f, err := pty.StartWithSize(tf.cmd, &pty.Winsize{Rows: termRows, Cols: termCols})
	if err != nil {
		return fmt.Errorf("failed to start command: %w", err)
	}
	tf.pty = f

	go tf.screen.record(f)
	return nil
}

// SendKeys sends keystrokes to the application
func (tf *TUITestFramework) SendKeys(keys string) error {
	tf.t.Helper()
	_, err := tf.pty.Write([]byte(keys))
	return err
}

// Type sends text one key at a time
func (tf *TUITestFramework) Type(text string) error {
	tf.t.Helper()
	for _, r := range text {
		if err := tf.SendKeys(string(r)); err != nil {
			return err
		}
		time.Sleep(10 * time.Millisecond)
	}
	return nil
}

// SendCtrlC sends Ctrl+C to terminate the application
func (tf *TUITestFramework) SendCtrlC() error {
	tf.t.Helper()
	return tf.SendKeys(KeyCtrlC)
}

// Esc sends escape
func (tf *TUITestFramework) Esc() error {
	tf.t.Helper()
	return tf.SendKeys(KeyEsc)
}

// Enter sends enter key
func (tf *TUITestFramework) Enter() error {
	tf.t.Helper()
	return tf.SendKeys(KeyEnter)
}

// Down moves the suggestion focus
func (tf *TUITestFramework) Down() error {
	tf.t.Helper()
	return tf.SendKeys(KeyDown)
}

// Quit sends q, which quits the app or closes the pager
func (tf *TUITestFramework) Quit() error {
	tf.t.Helper()
	return tf.SendKeys(KeyQuit)
}

// Ready waits for the first frame with the catalog loaded
func (tf *TUITestFramework) Ready() bool {
	tf.t.Helper()
	return tf.WaitFor(func(s string) bool {
		return catalogRe.MatchString(ansiRe.ReplaceAllString(s, ""))
	}, 5*time.Second)
}

// SeePlain waits for specific plain text to appear (normalized output)
func (tf *TUITestFramework) SeePlain(text string) bool {
	tf.t.Helper()
	return tf.OutputContainsPlain(text, 3*time.Second)
}

// OutputContainsPlain checks if the normalized output contains specific text within a timeout
func (tf *TUITestFramework) OutputContainsPlain(text string, timeout time.Duration) bool {
	tf.t.Helper()
	return tf.WaitFor(func(s string) bool { return containsPlain(s, text) }, timeout)
}

// WaitFor polls the output until pred holds or the timeout passes
func (tf *TUITestFramework) WaitFor(pred func(string) bool, timeout time.Duration) bool {
	tf.t.Helper()
	return tf.screen.waitFor(pred, timeout)
}

// WaitForE is WaitFor with the output tail in the error
func (tf *TUITestFramework) WaitForE(pred func(string) bool, timeout time.Duration, failMsg string) error {
	tf.t.Helper()
	if tf.screen.waitFor(pred, timeout) {
		return nil
	}
	tail := tf.SnapshotPlain()
	if len(tail) > 4096 {
		tail = tail[len(tail)-4096:]
	}
	return fmt.Errorf("%s\n--- tail ---\n%s", failMsg, tail)
}

// Snapshot returns everything recorded so far
func (tf *TUITestFramework) Snapshot() string {
	return tf.screen.String()
}

// SnapshotPlain returns the recorded output with ANSI sequences removed
func (tf *TUITestFramework) SnapshotPlain() string {
	return ansiRe.ReplaceAllString(tf.Snapshot(), "")
}

// DumpTailOnFail saves the last n bytes of normalized output for debugging
func (tf *TUITestFramework) DumpTailOnFail(t *testing.T, name string, n int) {
	tf.t.Helper()
	s := tf.SnapshotPlain()
	if len(s) > n {
		s = s[len(s)-n:]
	}
	p := filepath.Join(t.TempDir(), name+".txt")
	_ = os.WriteFile(p, []byte(s), 0644)
	t.Logf("Saved tail to %s", p)
}

// Cleanup closes the PTY and terminates the application
func (tf *TUITestFramework) Cleanup() {
	// Closing the PTY delivers SIGHUP to the child
	if tf.pty != nil {
		_ = tf.pty.Close()
		tf.pty = nil
	}
	if tf.cmd != nil && tf.cmd.Process != nil {
		_ = tf.cmd.Process.Kill()
		_, _ = tf.cmd.Process.Wait()
		tf.cmd = nil
	}
	if tf.workspace != "" {
		_ = os.RemoveAll(tf.workspace)
		tf.workspace = ""
	}
}
