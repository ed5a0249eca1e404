// Package clipboard copies text to the system clipboard, or to the
// terminal's clipboard over OSC 52 when no system clipboard is reachable.
package clipboard

import (
	"io"
	"os"

	"github.com/atotto/clipboard"
	"github.com/aymanbagabas/go-osc52/v2"
)

// Method says how text reached the clipboard.
type Method int

const (
	MethodSystem Method = iota
	MethodOSC52
)

func (m Method) String() string {
	if m == MethodOSC52 {
		return "terminal (OSC 52)"
	}
	return "system"
}

// Clipboard provides unified clipboard access with OSC52 support for SSH.
type Clipboard struct {
	// Last copied text, kept for when no clipboard is readable
	last string
	// Whether we're likely in an SSH session
	isSSH bool
	// Output writer for OSC52 sequences (typically os.Stdout)
	output io.Writer
	system func(string) error
}

// New creates a new Clipboard instance.
func New(output io.Writer) *Clipboard {
	if output == nil {
		output = os.Stdout
	}
	return &Clipboard{
		isSSH:  isSSHSession(os.Getenv),
		output: output,
		system: clipboard.WriteAll,
	}
}

// isSSHSession detects if we're running in an SSH session.
func isSSHSession(getenv func(string) string) bool {
	for _, v := range []string{"SSH_TTY", "SSH_CLIENT", "SSH_CONNECTION"} {
		if getenv(v) != "" {
			return true
		}
	}
	return false
}

// Copy copies the given text to the clipboard.
// In SSH sessions, it uses OSC52 escape sequences.
// Locally, it tries the system clipboard first, then falls back to OSC52.
func (c *Clipboard) Copy(text string) (Method, error) {
	c.last = text

	if !c.isSSH && c.system(text) == nil {
		return MethodSystem, nil
	}
	return MethodOSC52, c.copyOSC52(text)
}

// copyOSC52 copies text using OSC52 escape sequence.
func (c *Clipboard) copyOSC52(text string) error {
	_, err := io.WriteString(c.output, osc52.New(text).String())
	return err
}

// Last returns the most recently copied text.
func (c *Clipboard) Last() string {
	return c.last
}

// IsSSH returns true if we're in an SSH session.
func (c *Clipboard) IsSSH() bool {
	return c.isSSH
}
