package ui

import (
	"fmt"
	"io"
	"os"
)

// Notifier prints transient notifications to the terminal, the CLI's
// stand-in for toast messages. The gateway routes every request failure
// through it, so a failure is visible even when a command also reports
// its own error.
type Notifier struct {
	out io.Writer
}

// NewNotifier writes notifications to stderr so they never mix with
// pipeable command output.
func NewNotifier() *Notifier {
	return &Notifier{out: os.Stderr}
}

func (n *Notifier) Success(msg string) {
	fmt.Fprintln(n.out, FormatSuccess(msg))
}

func (n *Notifier) Error(msg string) {
	fmt.Fprintln(n.out, FormatError(msg))
}

func (n *Notifier) Info(msg string) {
	fmt.Fprintln(n.out, FormatInfo(msg))
}
