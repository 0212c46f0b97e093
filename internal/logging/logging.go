// Package logging writes the plain-text run log: one line per event with
// timestamp and severity, optionally mirrored to a console writer.
package logging

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"
)

type Level int

const (
	LevelInfo Level = iota
	LevelWarn
	LevelError
)

func (l Level) String() string {
	switch l {
	case LevelWarn:
		return "WARNING"
	case LevelError:
		return "ERROR"
	default:
		return "INFO"
	}
}

// Logger appends leveled lines to a writer. Safe for concurrent use.
type Logger struct {
	mu     sync.Mutex
	out    io.Writer
	mirror io.Writer
	file   *os.File
	now    func() time.Time
}

// New returns a logger writing to w.
func New(w io.Writer) *Logger {
	return &Logger{out: w, now: time.Now}
}

// Open creates or appends to the log file at path.
func Open(path string) (*Logger, error) {
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("opening log file %s: %w", path, err)
	}
	l := New(file)
	l.file = file
	return l, nil
}

// Mirror duplicates every line to w, in addition to the primary writer.
func (l *Logger) Mirror(w io.Writer) {
	l.mu.Lock()
	l.mirror = w
	l.mu.Unlock()
}

func (l *Logger) Infof(format string, args ...any)  { l.logf(LevelInfo, format, args...) }
func (l *Logger) Warnf(format string, args ...any)  { l.logf(LevelWarn, format, args...) }
func (l *Logger) Errorf(format string, args ...any) { l.logf(LevelError, format, args...) }

func (l *Logger) logf(level Level, format string, args ...any) {
	line := fmt.Sprintf("%s - %s - %s\n",
		l.now().Format("2006-01-02 15:04:05"),
		level,
		fmt.Sprintf(format, args...),
	)

	l.mu.Lock()
	defer l.mu.Unlock()
	if l.out != nil {
		fmt.Fprint(l.out, line)
	}
	if l.mirror != nil {
		fmt.Fprint(l.mirror, line)
	}
}

// Close closes the underlying log file, if the logger owns one.
func (l *Logger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.file == nil {
		return nil
	}
	err := l.file.Close()
	l.file = nil
	return err
}
