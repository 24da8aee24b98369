package testutil

import (
	"context"
	"log/slog"
	"sync"
)

type logEntry struct {
	level   slog.Level
	message string
	attrs   map[string]any
}

// LogCapture is a slog.Handler that keeps every record for assertions.
type LogCapture struct {
	mu      *sync.Mutex
	entries *[]logEntry
	attrs   []slog.Attr
}

func NewLogCapture() *LogCapture {
	return &LogCapture{mu: &sync.Mutex{}, entries: &[]logEntry{}}
}

func (h *LogCapture) Enabled(context.Context, slog.Level) bool {
	return true
}

func (h *LogCapture) Handle(_ context.Context, record slog.Record) error {
	attrs := make(map[string]any, record.NumAttrs()+len(h.attrs))
	for _, attr := range h.attrs {
		attrs[attr.Key] = attr.Value.Any()
	}
	record.Attrs(func(attr slog.Attr) bool {
		attrs[attr.Key] = attr.Value.Any()
		return true
	})

	h.mu.Lock()
	defer h.mu.Unlock()
	*h.entries = append(*h.entries, logEntry{level: record.Level, message: record.Message, attrs: attrs})
	return nil
}

// WithAttrs shares the record store so request-scoped loggers are captured
// too.
func (h *LogCapture) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &LogCapture{mu: h.mu, entries: h.entries, attrs: append(append([]slog.Attr(nil), h.attrs...), attrs...)}
}

func (h *LogCapture) WithGroup(string) slog.Handler {
	return h
}

func (h *LogCapture) snapshot() []logEntry {
	h.mu.Lock()
	defer h.mu.Unlock()
	return append([]logEntry(nil), *h.entries...)
}

// Logged reports an exact message match at level.
func (h *LogCapture) Logged(level slog.Level, message string) bool {
	for _, entry := range h.snapshot() {
		if entry.level == level && entry.message == message {
			return true
		}
	}
	return false
}

// AttrValue returns the first value logged under key with message.
func (h *LogCapture) AttrValue(message, key string) (any, bool) {
	for _, entry := range h.snapshot() {
		if entry.message != message {
			continue
		}
		if v, ok := entry.attrs[key]; ok {
			return v, true
		}
	}
	return nil, false
}
