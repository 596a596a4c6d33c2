package priorityadapter

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
)

var _ Sink = (*ZerologSink)(nil)

// ZerologSink forwards translated calls to a zerolog.Logger.
type ZerologSink struct {
	l zerolog.Logger
}

// NewZerologSink wraps l.
func NewZerologSink(l zerolog.Logger) *ZerologSink {
	return &ZerologSink{l: l}
}

// Log implements Sink. Severe levels are written at Error so zerolog never
// exits or panics on behalf of the caller.
func (s *ZerologSink) Log(_ context.Context, level Level, msg string, fields map[string]any) error {
	zlvl, ok := toZerologLevel(level)
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownLevel, level)
	}
	if zlvl < s.l.GetLevel() {
		return nil
	}

	ev := s.l.WithLevel(zlvl)
	ev.Str(SeverityKey, string(level))
	for _, k := range sortedKeys(fields) {
		ev.Interface(k, fields[k])
	}
	ev.Msg(msg)
	return nil
}

func toZerologLevel(l Level) (zerolog.Level, bool) {
	switch l {
	case LevelDebug:
		return zerolog.DebugLevel, true
	case LevelInfo, LevelNotice:
		return zerolog.InfoLevel, true
	case LevelWarning:
		return zerolog.WarnLevel, true
	case LevelError, LevelCritical, LevelAlert, LevelEmergency:
		return zerolog.ErrorLevel, true
	default:
		return zerolog.NoLevel, false
	}
}
