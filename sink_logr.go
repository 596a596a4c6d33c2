package priorityadapter

import (
	"context"
	"fmt"

	"github.com/go-logr/logr"
)

var _ Sink = (*LogrSink)(nil)

// LogrSink forwards translated calls to a logr.Logger. Debug is written at
// V(1), error and above through Error with a nil error, everything else at
// V(0).
type LogrSink struct {
	l logr.Logger
}

// NewLogrSink wraps l.
func NewLogrSink(l logr.Logger) *LogrSink {
	return &LogrSink{l: l}
}

// Log implements Sink.
func (s *LogrSink) Log(_ context.Context, level Level, msg string, fields map[string]any) error {
	keys := sortedKeys(fields)
	keyvals := make([]any, 0, 2+2*len(keys))
	keyvals = append(keyvals, SeverityKey, string(level))
	for _, k := range keys {
		keyvals = append(keyvals, k, fields[k])
	}

	switch level {
	case LevelDebug:
		s.l.V(1).Info(msg, keyvals...)
	case LevelInfo, LevelNotice, LevelWarning:
		s.l.Info(msg, keyvals...)
	case LevelError, LevelCritical, LevelAlert, LevelEmergency:
		s.l.Error(nil, msg, keyvals...)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownLevel, level)
	}
	return nil
}
