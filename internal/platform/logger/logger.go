// Package logger provides leveled logging for the simulation. The engine
// mirrors every run-level action here so the audit trail in the event log
// stays traceable from the console.
package logger

import (
	"io"
	"log"
	"os"
)

// Logger provides leveled logging with a per-level prefix. Its surface is
// deliberately small: warnings, errors, and the audit Event line.
type Logger struct {
	eventLogger *log.Logger
	warnLogger  *log.Logger
	errorLogger *log.Logger
}

// New creates a logger writing to the given streams.
func New(out, errOut io.Writer) *Logger {
	return &Logger{
		eventLogger: log.New(out, "[VIVARIUM-EVENT] ", log.Ldate|log.Ltime),
		warnLogger:  log.New(out, "[VIVARIUM-WARN] ", log.Ldate|log.Ltime),
		errorLogger: log.New(errOut, "[VIVARIUM-ERROR] ", log.Ldate|log.Ltime),
	}
}

// NewLogger creates a logger writing to the standard streams.
func NewLogger() *Logger {
	return New(os.Stdout, os.Stderr)
}

// Warn logs warning messages.
func (l *Logger) Warn(msg string) {
	l.warnLogger.Println(msg)
}

// Error logs error messages.
func (l *Logger) Error(msg string) {
	l.errorLogger.Println(msg)
}

// Event logs a simulation event for auditing alongside the event log.
func (l *Logger) Event(eventType string, actorID string, details string) {
	l.eventLogger.Printf("[%s] Actor:%s | %s", eventType, actorID, details)
}
