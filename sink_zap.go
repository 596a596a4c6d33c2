package priorityadapter

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var _ Sink = (*ZapSink)(nil)

// SeverityKey is the field under which zap and go-kit sinks keep the original
// level name, since neither backend distinguishes all eight levels.
const SeverityKey = "severity"

// ZapSink forwards translated calls to a zap.Logger.
type ZapSink struct {
	l *zap.Logger
}

// NewZapSink wraps l. A nil logger becomes a no-op logger.
func NewZapSink(l *zap.Logger) *ZapSink {
	if l == nil {
		l = zap.NewNop()
	}
	return &ZapSink{l: l}
}

// Log implements Sink. Severe levels are written at Error; zap's DPanic, Panic
// and Fatal levels are never used.
func (s *ZapSink) Log(_ context.Context, level Level, msg string, fields map[string]any) error {
	zlvl, ok := toZapLevel(level)
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownLevel, level)
	}

	ce := s.l.Check(zlvl, msg)
	if ce == nil {
		return nil
	}

	keys := sortedKeys(fields)
	zfs := make([]zap.Field, 0, 1+len(keys))
	zfs = append(zfs, zap.String(SeverityKey, string(level)))
	for _, k := range keys {
		zfs = append(zfs, zap.Any(k, fields[k]))
	}
	ce.Write(zfs...)
	return nil
}

func toZapLevel(l Level) (zapcore.Level, bool) {
	switch l {
	case LevelDebug:
		return zapcore.DebugLevel, true
	case LevelInfo, LevelNotice:
		return zapcore.InfoLevel, true
	case LevelWarning:
		return zapcore.WarnLevel, true
	case LevelError, LevelCritical, LevelAlert, LevelEmergency:
		return zapcore.ErrorLevel, true
	default:
		return zapcore.InvalidLevel, false
	}
}
