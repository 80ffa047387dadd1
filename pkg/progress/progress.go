// Package progress reports the steps of a run: each step starts, may be updated by starting
// it again with a new message, and ends with success or failure.
package progress

import (
	"io"
	"sync"

	"github.com/fatih/color"
)

// Reporter receives progress messages. Start begins (or updates) the current step,
// Succeed and Fail end it, Info prints a standalone message.
type Reporter interface {
	Info(format string, args ...any)
	Start(format string, args ...any)
	Succeed(format string, args ...any)
	Fail(format string, args ...any)
}

// Nop discards everything.
type Nop struct{}

func (Nop) Info(string, ...any)    {}
func (Nop) Start(string, ...any)   {}
func (Nop) Succeed(string, ...any) {}
func (Nop) Fail(string, ...any)    {}

// OrNop returns r, or a Nop reporter when r is nil.
func OrNop(r Reporter) Reporter {
	if r == nil {
		return Nop{}
	}
	return r
}

// Console prints colored progress lines. Failures go to Err, everything else to Out.
type Console struct {
	Out io.Writer
	Err io.Writer

	mu sync.Mutex
}

var (
	infoColor    = color.New(color.FgCyan)
	startColor   = color.New(color.FgYellow)
	succeedColor = color.New(color.FgGreen)
	failColor    = color.New(color.FgRed)
)

// NewConsole returns a Console writing to out and err.
func NewConsole(out, err io.Writer) *Console {
	return &Console{Out: out, Err: err}
}

func (c *Console) Info(format string, args ...any) {
	c.mu.Lock()
	defer c.mu.Unlock()
	infoColor.Fprintf(c.Out, "ℹ "+format+"\n", args...)
}

func (c *Console) Start(format string, args ...any) {
	c.mu.Lock()
	defer c.mu.Unlock()
	startColor.Fprintf(c.Out, "… "+format+"\n", args...)
}

func (c *Console) Succeed(format string, args ...any) {
	c.mu.Lock()
	defer c.mu.Unlock()
	succeedColor.Fprintf(c.Out, "✔ "+format+"\n", args...)
}

// Fail ends the current step with an error message.
func (c *Console) Fail(format string, args ...any) {
	c.mu.Lock()
	defer c.mu.Unlock()
	failColor.Fprintf(c.Err, "✖ "+format+"\n", args...)
}

