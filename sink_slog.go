package priorityadapter

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/pjscruggs/slogcp"
)

var _ Sink = (*SlogSink)(nil)

// slog levels for the severities slog does not define. The values follow the
// Cloud Logging severity ladder so slogcp renders them as NOTICE, CRITICAL,
// ALERT and EMERGENCY.
const (
	SlogLevelNotice    = slog.Level(2)
	SlogLevelCritical  = slog.Level(12)
	SlogLevelAlert     = slog.Level(16)
	SlogLevelEmergency = slog.Level(20)
)

// SlogLevel returns the slog.Level for l. The boolean is false when l is not
// one of the standard level names.
func SlogLevel(l Level) (slog.Level, bool) {
	switch l {
	case LevelDebug:
		return slog.LevelDebug, true
	case LevelInfo:
		return slog.LevelInfo, true
	case LevelNotice:
		return SlogLevelNotice, true
	case LevelWarning:
		return slog.LevelWarn, true
	case LevelError:
		return slog.LevelError, true
	case LevelCritical:
		return SlogLevelCritical, true
	case LevelAlert:
		return SlogLevelAlert, true
	case LevelEmergency:
		return SlogLevelEmergency, true
	default:
		return 0, false
	}
}

// SlogSink forwards translated calls to a slog.Logger, preserving ctx for
// trace propagation.
type SlogSink struct {
	log *slog.Logger
}

// NewSlogSink wraps logger. A nil logger falls back to slog.Default.
func NewSlogSink(logger *slog.Logger) *SlogSink {
	if logger == nil {
		logger = slog.Default()
	}
	return &SlogSink{log: logger}
}

// NewSlogcpSink builds a sink that writes Cloud Logging structured JSON to w.
//
// Example:
//
//	sink, _ := priorityadapter.NewSlogcpSink(os.Stdout)
//	translator, _ := priorityadapter.New(sink)
//	_ = translator.Log(ctx, priorityadapter.PriorityNotice, "config reloaded")
func NewSlogcpSink(w io.Writer) (*SlogSink, error) {
	handler, err := slogcp.NewHandler(w)
	if err != nil {
		return nil, fmt.Errorf("priorityadapter: create slogcp handler: %w", err)
	}
	return NewSlogSink(slog.New(handler)), nil
}

// Log implements Sink.
func (s *SlogSink) Log(ctx context.Context, level Level, msg string, fields map[string]any) error {
	lvl, ok := SlogLevel(level)
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownLevel, level)
	}
	s.log.LogAttrs(ctx, lvl, msg, buildAttrs(fields)...)
	return nil
}

// buildAttrs converts context fields into slog attributes in key order.
func buildAttrs(fields map[string]any) []slog.Attr {
	keys := sortedKeys(fields)
	if len(keys) == 0 {
		return nil
	}

	attrs := make([]slog.Attr, 0, len(keys))
	for _, k := range keys {
		attrs = append(attrs, slog.Any(k, fields[k]))
	}
	return attrs
}
