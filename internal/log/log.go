// Package log provides structured, category-tagged logging for parley.
// Logging is off until Init is called, which cmd does when --debug is passed
// or PARLEY_DEBUG is set. Every written entry is also republished on a pubsub
// broker so an in-app log view can follow it.
package log

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/zjrosen/parley/internal/pubsub"
)

// Level represents log severity.
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// Category groups related log messages.
type Category string

const (
	CatEmoji   Category = "emoji"   // Catalog builds and row materialization
	CatPicker  Category = "picker"  // Emoji picker session and cursor events
	CatPrefs   Category = "prefs"   // Preference store reads and writes
	CatCustom  Category = "custom"  // Custom emoji packs and search
	CatUI      Category = "ui"      // Generic component updates
	CatConfig  Category = "config"  // Configuration loading/saving
	CatDB      Category = "db"      // SQLite and migrations
	CatWatcher Category = "watcher" // File watcher events
	CatCache   Category = "cache"   // Row cache hits and flushes
	CatTrace   Category = "trace"   // Tracing provider lifecycle
)

// EnvDebug enables logging when set to any non-empty value.
const EnvDebug = "PARLEY_DEBUG"

type logger struct {
	mu       sync.Mutex
	out      io.Writer
	closer   io.Closer
	minLevel Level
	enabled  bool
	broker   *pubsub.Broker[string]
}

var (
	mu  sync.RWMutex
	std *logger
)

// Init opens path for appending and installs it as the global log sink.
// The returned func closes the file and disables logging.
func Init(path string) (func(), error) {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644) //nolint:gosec // G304: debug log path comes from the user
	if err != nil {
		return nil, fmt.Errorf("opening log file: %w", err)
	}
	install(f, f)
	return func() {
		mu.Lock()
		defer mu.Unlock()
		if std != nil && std.closer != nil {
			_ = std.closer.Close()
		}
		std = nil
	}, nil
}

// InitWriter installs w as the sink. Used by tests.
func InitWriter(w io.Writer) {
	install(w, nil)
}

func install(w io.Writer, c io.Closer) {
	mu.Lock()
	defer mu.Unlock()
	if std != nil && std.broker != nil {
		std.broker.Close()
	}
	std = &logger{
		out:      w,
		closer:   c,
		minLevel: LevelDebug,
		enabled:  true,
		broker:   pubsub.NewBroker[string](),
	}
}

// DebugRequested reports whether the environment asks for debug logging.
func DebugRequested() bool {
	return os.Getenv(EnvDebug) != ""
}

// SetEnabled toggles logging on/off.
func SetEnabled(enabled bool) {
	mu.RLock()
	defer mu.RUnlock()
	if std != nil {
		std.mu.Lock()
		std.enabled = enabled
		std.mu.Unlock()
	}
}

// SetMinLevel drops entries below level.
func SetMinLevel(level Level) {
	mu.RLock()
	defer mu.RUnlock()
	if std != nil {
		std.mu.Lock()
		std.minLevel = level
		std.mu.Unlock()
	}
}

func Debug(cat Category, msg string, fields ...any) { write(LevelDebug, cat, msg, fields) }
func Info(cat Category, msg string, fields ...any)  { write(LevelInfo, cat, msg, fields) }
func Warn(cat Category, msg string, fields ...any)  { write(LevelWarn, cat, msg, fields) }
func Error(cat Category, msg string, fields ...any) { write(LevelError, cat, msg, fields) }

// ErrorErr logs err under the "error" key.
func ErrorErr(cat Category, msg string, err error, fields ...any) {
	val := "<nil>"
	if err != nil {
		val = err.Error()
	}
	write(LevelError, cat, msg, append(fields, "error", val))
}

// format renders: 2025-12-06T10:45:00 [ERROR] [emoji] message key=value
func format(ts time.Time, level Level, cat Category, msg string, fields []any) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s [%s] [%s] %s", ts.Format("2006-01-02T15:04:05"), level, cat, msg)
	for i := 0; i+1 < len(fields); i += 2 {
		fmt.Fprintf(&b, " %v=%v", fields[i], fields[i+1])
	}
	if len(fields)%2 != 0 {
		fmt.Fprintf(&b, " %v=<missing>", fields[len(fields)-1])
	}
	b.WriteByte('\n')
	return b.String()
}

func write(level Level, cat Category, msg string, fields []any) {
	mu.RLock()
	l := std
	mu.RUnlock()
	if l == nil {
		return
	}

	l.mu.Lock()
	if !l.enabled || level < l.minLevel {
		l.mu.Unlock()
		return
	}
	entry := format(time.Now(), level, cat, msg, fields)
	if l.out != nil {
		_, _ = io.WriteString(l.out, entry)
	}
	broker := l.broker
	l.mu.Unlock()

	broker.Publish(pubsub.CreatedEvent, entry)
}

// NewListener follows log entries until ctx is done. Returns nil when
// logging has not been initialised.
func NewListener(ctx context.Context) *pubsub.Listener[string] {
	mu.RLock()
	defer mu.RUnlock()
	if std == nil {
		return nil
	}
	return pubsub.NewListener(ctx, std.broker)
}
