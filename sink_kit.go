package priorityadapter

import (
	"context"
	"fmt"

	kitlog "github.com/go-kit/log"
	"github.com/go-kit/log/level"
)

var _ Sink = (*KitSink)(nil)

// KitSink forwards translated calls to a go-kit logger as alternating
// key/value pairs: the go-kit level, "msg", the severity and then the fields
// in key order.
type KitSink struct {
	logger kitlog.Logger
}

// NewKitSink wraps logger. A nil logger becomes a no-op logger.
func NewKitSink(logger kitlog.Logger) *KitSink {
	if logger == nil {
		logger = kitlog.NewNopLogger()
	}
	return &KitSink{logger: logger}
}

// Log implements Sink and returns the go-kit logger's error unchanged.
func (s *KitSink) Log(_ context.Context, lvl Level, msg string, fields map[string]any) error {
	var leveled kitlog.Logger
	switch lvl {
	case LevelDebug:
		leveled = level.Debug(s.logger)
	case LevelInfo, LevelNotice:
		leveled = level.Info(s.logger)
	case LevelWarning:
		leveled = level.Warn(s.logger)
	case LevelError, LevelCritical, LevelAlert, LevelEmergency:
		leveled = level.Error(s.logger)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownLevel, lvl)
	}

	keys := sortedKeys(fields)
	keyvals := make([]any, 0, 4+2*len(keys))
	keyvals = append(keyvals, "msg", msg, SeverityKey, string(lvl))
	for _, k := range keys {
		keyvals = append(keyvals, k, fields[k])
	}
	return leveled.Log(keyvals...)
}
