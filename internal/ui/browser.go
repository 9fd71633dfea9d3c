package ui

import (
	"fmt"
	"os"
	"os/exec"
	"runtime"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/cockroachdb/errors"
)

// EnvBrowser overrides the command used to open links
const EnvBrowser = "CINEMATCH_BROWSER"

// Opener opens watch links outside the TUI
type Opener struct {
	program *tea.Program // reference to Bubble Tea program for terminal management
}

// NewOpener creates a new Opener instance
func NewOpener() *Opener {
	return &Opener{}
}

// SetProgram sets the program reference for terminal management
func (o *Opener) SetProgram(p *tea.Program) {
	o.program = p
}

// systemOpener returns the platform's default URL handler
func systemOpener() (string, []string) {
	switch runtime.GOOS {
	case "darwin":
		return "open", nil
	case "windows":
		return "rundll32", []string{"url.dll,FileProtocolHandler"}
	default:
		return "xdg-open", nil
	}
}

// Open opens url. A browser set through EnvBrowser is run in the
// foreground with the terminal released, so text browsers work too.
func (o *Opener) Open(url string) error {
	if bin := os.Getenv(EnvBrowser); bin != "" {
		return o.runAttached(bin, url)
	}

	bin, args := systemOpener()
	if _, err := exec.LookPath(bin); err != nil {
		return errors.Wrapf(err, "no browser opener (%s)", bin)
	}
	cmd := exec.Command(bin, append(args, url)...)
	if err := cmd.Start(); err != nil {
		return errors.Wrapf(err, "start %s", bin)
	}
	// Reap the child without blocking the UI
	go func() { _ = cmd.Wait() }()
	return nil
}

func (o *Opener) runAttached(bin, url string) error {
	if o.program == nil {
		return errors.New("program not set")
	}

	if err := o.program.ReleaseTerminal(); err != nil {
		return errors.Wrap(err, "release terminal")
	}
	defer func() {
		// Clear screen to reduce visual artifacts when returning
		fmt.Print("\x1b[2J\x1b[H")
		time.Sleep(150 * time.Millisecond)
		_ = o.program.RestoreTerminal()
	}()

	cmd := exec.Command(bin, url)
	cmd.Stdout = os.Stdout
	cmd.Stdin = os.Stdin
	cmd.Stderr = os.Stderr

	return errors.Wrapf(cmd.Run(), "run %s", bin)
}
