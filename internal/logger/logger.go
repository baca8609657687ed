// Package logger provides the leveled, optionally colored output sink for
// the CLI. Results go to stdout elsewhere; everything here goes to stderr.
package logger

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

// Level defines log severity.
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

// Logger writes leveled messages to an output sink.
type Logger struct {
	out       io.Writer
	useColors bool
	level     Level
}

// New creates a Logger writing to out. Colors are enabled only when out is
// the terminal.
func New(out io.Writer) *Logger {
	useColors := false
	if f, ok := out.(*os.File); ok {
		useColors = isatty.IsTerminal(f.Fd())
	}

	return &Logger{
		out:       out,
		useColors: useColors,
		level:     LevelInfo,
	}
}

// SetLevel sets the minimum severity that gets written.
func (l *Logger) SetLevel(level Level) {
	l.level = level
}

func (l *Logger) Debug(format string, args ...any) {
	l.log(LevelDebug, "DEBUG", color.CyanString, format, args...)
}

func (l *Logger) Info(format string, args ...any) {
	l.log(LevelInfo, "INFO", color.BlueString, format, args...)
}

func (l *Logger) Warn(format string, args ...any) {
	l.log(LevelWarn, "WARN", color.YellowString, format, args...)
}

func (l *Logger) Error(format string, args ...any) {
	l.log(LevelError, "ERROR", color.RedString, format, args...)
}

func (l *Logger) log(level Level, prefix string, colorize func(string, ...any) string, format string, args ...any) {
	if l.level > level {
		return
	}
	if l.useColors {
		prefix = colorize(prefix)
	}
	fmt.Fprintf(l.out, "[%s] %s\n", prefix, fmt.Sprintf(format, args...))
}
