// Package logger implements a logging adapter using log/slog.
package logger

import (
	"errors"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"

	"go.trai.ch/mesonci/internal/core/ports"
)

// messager is implemented by zerr errors; Message returns the text without the cause chain.
type messager interface {
	Message() string
}

// Logger implements ports.Logger using log/slog.
type Logger struct {
	logger *slog.Logger
	mu     sync.RWMutex
}

// New creates a new Logger writing to stderr.
func New() ports.Logger {
	return NewWithWriter(os.Stderr)
}

// NewWithWriter creates a Logger writing to w.
func NewWithWriter(w io.Writer) *Logger {
	l := &Logger{}
	l.SetOutput(w)
	return l
}

// SetOutput updates the logger's output destination.
func (l *Logger) SetOutput(w io.Writer) {
	if w == nil {
		w = os.Stderr
	}
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})
	l.mu.Lock()
	defer l.mu.Unlock()
	l.logger = slog.New(handler)
}

// Info logs an informational message.
func (l *Logger) Info(msg string) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	l.logger.Info(msg)
}

// Warn logs a warning message.
func (l *Logger) Warn(msg string) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	l.logger.Warn(msg)
}

// Error logs err with its cause chain.
func (l *Logger) Error(err error) {
	if err == nil {
		return
	}
	l.mu.RLock()
	defer l.mu.RUnlock()
	l.logger.Error(formatChain(err))
}

// formatChain renders err as "Error: msg" followed by one "Caused by" line per wrapped cause.
// Joined errors contribute one line per member.
func formatChain(err error) string {
	messages := collectMessages(nil, err)

	var b strings.Builder
	for i, msg := range messages {
		switch i {
		case 0:
			b.WriteString("Error: " + msg)
		case 1:
			b.WriteString("\n  Caused by:\n    -> " + msg)
		default:
			b.WriteString("\n    -> " + msg)
		}
	}
	return b.String()
}

func collectMessages(messages []string, err error) []string {
	switch e := err.(type) {
	case nil:
		return messages
	case messager:
		if msg := e.Message(); msg != "" {
			messages = append(messages, msg)
		}
		return collectMessages(messages, errors.Unwrap(err))
	case interface{ Unwrap() []error }:
		for _, member := range e.Unwrap() {
			messages = collectMessages(messages, member)
		}
		return messages
	default:
		return append(messages, err.Error())
	}
}
