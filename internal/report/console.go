package report

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/briandowns/spinner"
)

// Console prints run events to a terminal or any other writer.
type Console struct {
	out      io.Writer
	progress bool
	spinner  *spinner.Spinner
}

// ConsoleOption configures a Console.
type ConsoleOption func(*Console)

// WithProgress shows a spinner next to the name of the test whose request is
// in flight. It has no effect unless out is an *os.File, and the spinner only
// draws when that file is a terminal.
func WithProgress(enabled bool) ConsoleOption {
	return func(c *Console) {
		c.progress = enabled
	}
}

// NewConsole creates a Console writing to out.
func NewConsole(out io.Writer, opts ...ConsoleOption) *Console {
	c := &Console{out: out}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// LogLine prints "LOG: <text>" with the text in yellow.
func (c *Console) LogLine(msg string) {
	c.println(logLine(msg, true))
}

// RecordSuccess prints "[ OK ] <name>" with OK in green.
func (c *Console) RecordSuccess(name string) {
	c.println(successLine(name, true))
}

// RecordFailure prints "[FAIL] <name>" with FAIL in red.
func (c *Console) RecordFailure(name string) {
	c.println(failureLine(name, true))
}

// ReportTestStart starts the spinner for name, if progress is enabled.
func (c *Console) ReportTestStart(name string) {
	f, ok := c.out.(*os.File)
	if !c.progress || !ok {
		return
	}
	c.stopSpinner()

	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond, spinner.WithWriterFile(f))
	s.Suffix = " " + name
	s.Start()
	c.spinner = s
}

// println clears any spinner before writing so it never interleaves with output.
func (c *Console) println(line string) {
	c.stopSpinner()
	fmt.Fprintln(c.out, line)
}

func (c *Console) stopSpinner() {
	if c.spinner == nil {
		return
	}
	c.spinner.Stop()
	c.spinner = nil
}
