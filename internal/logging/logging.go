// Package logging provides the leveled logger shared by the scene, the shell
// bridge and the binaries.
package logging

import (
	"fmt"
	"io"
	"log"
	"os"
)

// Logger writes info and warn lines to one writer and errors to another.
type Logger struct {
	infoLogger  *log.Logger
	warnLogger  *log.Logger
	errorLogger *log.Logger
}

// New creates a logger writing to stdout and stderr.
func New() *Logger {
	return NewWithWriters(os.Stdout, os.Stderr)
}

// NewWithWriters creates a logger over arbitrary writers.
func NewWithWriters(out, errOut io.Writer) *Logger {
	const flags = log.Ldate | log.Ltime | log.Lshortfile
	return &Logger{
		infoLogger:  log.New(out, "[carryloop-info] ", flags),
		warnLogger:  log.New(out, "[carryloop-warn] ", flags),
		errorLogger: log.New(errOut, "[carryloop-error] ", flags),
	}
}

// Discard returns a logger that drops everything.
func Discard() *Logger {
	return NewWithWriters(io.Discard, io.Discard)
}

func (l *Logger) Info(msg string) {
	l.infoLogger.Output(2, msg)
}

func (l *Logger) Infof(format string, args ...any) {
	l.infoLogger.Output(2, fmt.Sprintf(format, args...))
}

func (l *Logger) Warn(msg string) {
	l.warnLogger.Output(2, msg)
}

func (l *Logger) Warnf(format string, args ...any) {
	l.warnLogger.Output(2, fmt.Sprintf(format, args...))
}

func (l *Logger) Error(msg string) {
	l.errorLogger.Output(2, msg)
}

func (l *Logger) Errorf(format string, args ...any) {
	l.errorLogger.Output(2, fmt.Sprintf(format, args...))
}

// Event logs a gameplay event such as a zone transition or a sale.
func (l *Logger) Event(kind string, details string) {
	l.infoLogger.Output(2, fmt.Sprintf("[event:%s] %s", kind, details))
}
