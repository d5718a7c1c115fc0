package logging

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"
)

// consoleHandler renders "HH:MM:SS LEVEL message key=value" lines. It keeps
// attrs resolved eagerly; group nesting flattens to dotted keys, which is
// all a one-shot CLI needs.
type consoleHandler struct {
	mu     *sync.Mutex
	writer io.Writer
	level  slog.Level
	prefix string
	attrs  []slog.Attr
}

func newConsoleHandler(w io.Writer, level slog.Level) *consoleHandler {
	return &consoleHandler{mu: &sync.Mutex{}, writer: w, level: level}
}

func (h *consoleHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level
}

func (h *consoleHandler) Handle(_ context.Context, record slog.Record) error {
	var sb strings.Builder
	if !record.Time.IsZero() {
		sb.WriteString(record.Time.Format("15:04:05"))
		sb.WriteByte(' ')
	}
	sb.WriteString(record.Level.String())
	sb.WriteByte(' ')
	sb.WriteString(record.Message)

	for _, attr := range h.attrs {
		writeAttr(&sb, h.prefix, attr)
	}
	record.Attrs(func(attr slog.Attr) bool {
		writeAttr(&sb, h.prefix, attr)
		return true
	})
	sb.WriteByte('\n')

	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := io.WriteString(h.writer, sb.String())
	return err
}

func (h *consoleHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	clone := *h
	clone.attrs = append(append([]slog.Attr(nil), h.attrs...), attrs...)
	return &clone
}

func (h *consoleHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	clone := *h
	clone.prefix = h.prefix + name + "."
	return &clone
}

func writeAttr(sb *strings.Builder, prefix string, attr slog.Attr) {
	value := attr.Value.Resolve()
	if attr.Key == "" && value.Any() == nil {
		return
	}
	if value.Kind() == slog.KindGroup {
		nested := prefix
		if attr.Key != "" {
			nested += attr.Key + "."
		}
		for _, member := range value.Group() {
			writeAttr(sb, nested, member)
		}
		return
	}
	sb.WriteByte(' ')
	sb.WriteString(prefix)
	sb.WriteString(attr.Key)
	sb.WriteByte('=')
	text := value.String()
	if strings.ContainsAny(text, " \t") {
		fmt.Fprintf(sb, "%q", text)
	} else {
		sb.WriteString(text)
	}
}
