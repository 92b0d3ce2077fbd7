// Package logger prints leveled, colorized console output.
package logger

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

// Logger writes human-readable output to a single stream.
// Errors go to the same stream as everything else.
type Logger struct {
	out   io.Writer
	debug bool

	info    *color.Color
	success *color.Color
	warn    *color.Color
	err     *color.Color
	dbg     *color.Color
	heading *color.Color
}

// New returns a Logger writing to out. Debug output is only emitted when debug is true.
func New(out io.Writer, debug bool) *Logger {
	return &Logger{
		out:     out,
		debug:   debug,
		info:    color.New(color.FgCyan),
		success: color.New(color.FgGreen),
		warn:    color.New(color.FgHiMagenta),
		err:     color.New(color.FgRed),
		dbg:     color.New(color.FgHiBlack),
		heading: color.New(color.Bold),
	}
}

// DisableColor turns off ANSI colors for every Logger in the process.
func DisableColor() {
	color.NoColor = true
}

// Writer returns the underlying output stream.
func (l *Logger) Writer() io.Writer {
	return l.out
}

// Printf prints without decoration.
func (l *Logger) Printf(format string, a ...any) {
	fmt.Fprintf(l.out, format, a...)
}

// Println prints its arguments followed by a newline.
func (l *Logger) Println(a ...any) {
	fmt.Fprintln(l.out, a...)
}

// Info prints an informational line.
func (l *Logger) Info(format string, a ...any) {
	l.info.Fprintf(l.out, format+"\n", a...)
}

// Success prints a line prefixed with a check mark.
func (l *Logger) Success(format string, a ...any) {
	l.success.Fprintf(l.out, "✓ "+format+"\n", a...)
}

// Warn prints a warning line.
func (l *Logger) Warn(format string, a ...any) {
	l.warn.Fprintf(l.out, "Warning: "+format+"\n", a...)
}

// Error prints an error line.
func (l *Logger) Error(format string, a ...any) {
	l.err.Fprintf(l.out, format+"\n", a...)
}

// Heading prints a bold line.
func (l *Logger) Heading(format string, a ...any) {
	l.heading.Fprintf(l.out, format+"\n", a...)
}

// Debug prints only when debug output is enabled.
func (l *Logger) Debug(format string, a ...any) {
	if !l.debug {
		return
	}
	l.dbg.Fprintf(l.out, "[debug] "+format+"\n", a...)
}

