// Package logging provides the small leveled logger shared by every
// service in the application. Each logger writes lines of the form
// "[PREFIX] [LEVEL] message" with an ANSI color per component.
package logging

import (
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/beka-birhanu/driftwalk-api/config"
)

// Logger writes colored, prefixed log lines to a single output writer.
// Implements i.Logger.
type Logger struct {
	prefix string
	color  string
	out    io.Writer
	mu     sync.Mutex
}

// New creates a Logger with the given prefix, ANSI color, and output writer.
func New(prefix, color string, out io.Writer) (*Logger, error) {
	if out == nil {
		return nil, errors.New("nil output writer")
	}
	return &Logger{
		prefix: prefix,
		color:  color,
		out:    out,
	}, nil
}

// Info logs an informational message.
func (l *Logger) Info(msg string) {
	l.write("INFO", msg)
}

// Warning logs a warning message.
func (l *Logger) Warning(msg string) {
	l.write("WARNING", msg)
}

// Error logs an error message.
func (l *Logger) Error(msg string) {
	l.write("ERROR", msg)
}

func (l *Logger) write(level, msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.out, "%s[%s] [%s]%s %s\n", l.color, l.prefix, level, config.ColorReset, msg)
}
