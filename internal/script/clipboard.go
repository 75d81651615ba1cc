package script

import (
	"fmt"
	"io"
	"os"

	"github.com/aymanbagabas/go-osc52/v2"
)

// Clipboard copies text to the system clipboard through the terminal using
// the OSC 52 escape sequence, so it also works over SSH.
type Clipboard struct {
	out    io.Writer
	getenv func(string) string
}

// NewClipboard writes escape sequences to out. A nil out uses stderr so the
// sequence does not end up in piped stdout.
func NewClipboard(out io.Writer) *Clipboard {
	if out == nil {
		out = os.Stderr
	}
	return &Clipboard{out: out, getenv: os.Getenv}
}

// Copy sends text to the clipboard.
func (c *Clipboard) Copy(text string) error {
	seq := osc52.New(text)
	switch {
	case c.getenv("TMUX") != "":
		seq = seq.Tmux()
	case c.getenv("STY") != "":
		seq = seq.Screen()
	}
	if _, err := seq.WriteTo(c.out); err != nil {
		return fmt.Errorf("write clipboard sequence: %w", err)
	}
	return nil
}
