package logger

import (
	"context"
	"io"
	"log/slog"
	"os"
	"slices"
	"strings"

	"github.com/muesli/termenv"
	"go.trai.ch/dex/internal/ui/output"
	"go.trai.ch/dex/internal/ui/style"
)

// locationKeys name the attributes that point into the repository tree. They
// are printed as a trailing location instead of key=value pairs, in this order.
var locationKeys = []string{"path", "root"}

// PrettyHandler is a slog.Handler for terminals. Each record is a level icon,
// the message, key=value attributes and the tree location it concerns.
// Multi-line messages keep the attributes on their first line.
type PrettyHandler struct {
	out   *termenv.Output
	level slog.Leveler
	attrs []slog.Attr
	group string
}

// NewPrettyHandler creates a new PrettyHandler writing to w, or stderr when w is nil.
func NewPrettyHandler(w io.Writer, opts *slog.HandlerOptions) *PrettyHandler {
	if w == nil {
		w = os.Stderr
	}

	levelVar := &slog.LevelVar{}
	if opts != nil && opts.Level != nil {
		levelVar.Set(opts.Level.Level())
	}

	return &PrettyHandler{
		out:   output.New(w),
		level: levelVar,
	}
}

// Enabled reports whether the handler handles records at the given level.
func (h *PrettyHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

// Handle formats and outputs the log record.
//
//nolint:gocritic // slog.Handler interface requires slog.Record by value
func (h *PrettyHandler) Handle(_ context.Context, r slog.Record) error {
	icon, color := levelStyle(r.Level)

	var fields []string
	locations := make(map[string]string)
	collect := func(attr slog.Attr) bool {
		if h.group == "" && slices.Contains(locationKeys, attr.Key) {
			if _, seen := locations[attr.Key]; !seen {
				locations[attr.Key] = attr.Value.String()
			}
			return true
		}
		fields = append(fields, formatAttr(h.group, attr))
		return true
	}
	for _, attr := range h.attrs {
		collect(attr)
	}
	r.Attrs(collect)

	head, rest, multiline := strings.Cut(r.Message, "\n")
	if icon != "" {
		head = icon + " " + head
	}
	if len(fields) > 0 {
		head += " " + strings.Join(fields, " ")
	}

	var b strings.Builder
	b.WriteString(h.out.String(head).Foreground(color).String())
	if loc := formatLocation(locations); loc != "" {
		b.WriteString(" " + h.out.String(loc).Faint().String())
	}
	if multiline {
		b.WriteString("\n" + h.out.String(rest).Foreground(color).String())
	}
	b.WriteString("\n")

	_, err := h.out.WriteString(b.String())
	return err
}

// WithAttrs returns a new Handler with the given attributes appended.
func (h *PrettyHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	newAttrs := make([]slog.Attr, len(h.attrs)+len(attrs))
	copy(newAttrs, h.attrs)
	copy(newAttrs[len(h.attrs):], attrs)

	return &PrettyHandler{
		out:   h.out,
		level: h.level,
		attrs: newAttrs,
		group: h.group,
	}
}

// WithGroup returns a new Handler with the given group name.
func (h *PrettyHandler) WithGroup(name string) slog.Handler {
	return &PrettyHandler{
		out:   h.out,
		level: h.level,
		attrs: h.attrs,
		group: name,
	}
}

func levelStyle(level slog.Level) (string, termenv.Color) {
	switch {
	case level >= slog.LevelError:
		return style.Cross, termenv.RGBColor(string(style.Red))
	case level >= slog.LevelWarn:
		return style.Warning, termenv.RGBColor(string(style.Yellow))
	case level == LevelSuccess:
		return style.Check, termenv.RGBColor(string(style.Green))
	default:
		return "", termenv.RGBColor(string(style.Slate))
	}
}

// formatLocation renders the collected locations as "(at a, b)".
func formatLocation(locations map[string]string) string {
	var parts []string
	for _, key := range locationKeys {
		if v, ok := locations[key]; ok && v != "" {
			parts = append(parts, v)
		}
	}
	if len(parts) == 0 {
		return ""
	}
	return "(at " + strings.Join(parts, ", ") + ")"
}

func formatAttr(group string, attr slog.Attr) string {
	key := attr.Key
	if group != "" {
		key = group + "." + key
	}
	return key + "=" + attr.Value.String()
}
