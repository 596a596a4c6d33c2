package priorityadapter

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"maps"
	"reflect"
	"slices"

	kitlog "github.com/go-kit/log"
	"github.com/go-logr/logr"
	"github.com/rs/zerolog"
	"go.uber.org/zap"
)

var (
	// ErrInvalidConfiguration is returned when a Translator cannot be built.
	ErrInvalidConfiguration = errors.New("priorityadapter: invalid configuration")

	// ErrUnknownLevel is returned by the bundled sinks for level names they
	// cannot map onto their backend.
	ErrUnknownLevel = errors.New("priorityadapter: unknown level")
)

// errMissingCapability is the message callers see when no usable sink was given.
const errMissingCapability = "Logger needs to implement priorityadapter.Sink"

// Sink receives translated log calls. Implementations decide how to persist or
// route a record and whether to reject unknown levels.
type Sink interface {
	Log(ctx context.Context, level Level, msg string, fields map[string]any) error
}

// SinkFunc adapts an ordinary function to the Sink interface.
type SinkFunc func(ctx context.Context, level Level, msg string, fields map[string]any) error

// Log calls f.
func (f SinkFunc) Log(ctx context.Context, level Level, msg string, fields map[string]any) error {
	return f(ctx, level, msg, fields)
}

// AsSink returns a Sink for v. Besides Sink implementations it accepts plain
// functions with the Sink signature, *slog.Logger, slog.Handler (including
// *slogcp.Handler), *zap.Logger, go-kit log.Logger, zerolog.Logger and
// logr.Logger values. Any other value, including nil, yields an error
// wrapping ErrInvalidConfiguration.
func AsSink(v any) (Sink, error) {
	switch s := v.(type) {
	case nil:
	case SinkFunc:
		if s != nil {
			return s, nil
		}
	case Sink:
		if !isNilValue(s) {
			return s, nil
		}
	case func(context.Context, Level, string, map[string]any) error:
		if s != nil {
			return SinkFunc(s), nil
		}
	case *slog.Logger:
		if s != nil {
			return NewSlogSink(s), nil
		}
	case slog.Handler:
		if !isNilValue(s) {
			return NewSlogSink(slog.New(s)), nil
		}
	case *zap.Logger:
		if s != nil {
			return NewZapSink(s), nil
		}
	case kitlog.Logger:
		if !isNilValue(s) {
			return NewKitSink(s), nil
		}
	case zerolog.Logger:
		return NewZerologSink(s), nil
	case *zerolog.Logger:
		if s != nil {
			return NewZerologSink(*s), nil
		}
	case logr.Logger:
		return NewLogrSink(s), nil
	}
	return nil, fmt.Errorf("%w: %s, got %T", ErrInvalidConfiguration, errMissingCapability, v)
}

// isNilValue reports whether v is a typed nil: a nil pointer, func, map,
// chan, slice or interface stored in a non-nil interface value.
func isNilValue(v any) bool {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Func, reflect.Map, reflect.Chan, reflect.Interface, reflect.Slice:
		return rv.IsNil()
	}
	return false
}

// sortedKeys returns the keys of fields in lexical order so backends that
// render fields positionally produce stable output.
func sortedKeys(fields map[string]any) []string {
	if len(fields) == 0 {
		return nil
	}
	return slices.Sorted(maps.Keys(fields))
}
