package priorityadapter

import (
	"context"
	"errors"
	"testing"

	grpc_logging "github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/logging"
)

// TestGRPCLoggerTranslatesLevels checks middleware levels become syslog priorities.
func TestGRPCLoggerTranslatesLevels(t *testing.T) {
	tests := []struct {
		name string
		in   grpc_logging.Level
		want Level
	}{
		{"debug", grpc_logging.LevelDebug, LevelDebug},
		{"info", grpc_logging.LevelInfo, LevelInfo},
		{"warn", grpc_logging.LevelWarn, LevelWarning},
		{"error", grpc_logging.LevelError, LevelError},
		{"unknown", grpc_logging.Level(123), LevelError},
	}
	for _, tt := range tests {
		tr, rec := newTestTranslator(t)
		NewGRPCLogger(tr).Log(context.Background(), tt.in, "call")
		if len(rec.calls) != 1 {
			t.Fatalf("%s: expected 1 call, got %d", tt.name, len(rec.calls))
		}
		if rec.calls[0].level != tt.want {
			t.Fatalf("%s: expected %s, got %s", tt.name, tt.want, rec.calls[0].level)
		}
	}
}

// TestGRPCLoggerForwardsFields ensures middleware fields become event context.
func TestGRPCLoggerForwardsFields(t *testing.T) {
	tr, rec := newTestTranslator(t, WithEventContext(true))
	NewGRPCLogger(tr).Log(context.Background(), grpc_logging.LevelInfo, "finished call",
		"grpc.method", "Check",
		"grpc.code", "OK",
	)

	fields := rec.calls[0].fields
	if fields["grpc.method"] != "Check" || fields["grpc.code"] != "OK" {
		t.Fatalf("unexpected fields: %v", fields)
	}
	if fields[FieldPriority] != PriorityInfo {
		t.Fatalf("expected priority info in context, got %v", fields[FieldPriority])
	}
}

// TestGRPCLoggerReportsSinkErrors verifies the error handler receives sink failures.
func TestGRPCLoggerReportsSinkErrors(t *testing.T) {
	sinkErr := errors.New("sink failed")
	tr, err := New(&recordingSink{err: sinkErr})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	var got error
	NewGRPCLogger(tr, WithErrorHandler(func(err error) { got = err })).
		Log(context.Background(), grpc_logging.LevelError, "boom")
	if got != sinkErr {
		t.Fatalf("expected sink error, got %v", got)
	}

	// Without a handler the error is dropped.
	NewGRPCLogger(tr).Log(context.Background(), grpc_logging.LevelError, "boom")
}

// TestGRPCLoggerHandlesNilReceiver ensures Log tolerates nil loggers.
func TestGRPCLoggerHandlesNilReceiver(t *testing.T) {
	defer func() {
		if r := recover(); r != nil {
			t.Fatalf("Log should not panic on nil receiver: %v", r)
		}
	}()

	var logger *GRPCLogger
	logger.Log(context.Background(), grpc_logging.LevelInfo, "noop")
	NewGRPCLogger(nil).Log(context.Background(), grpc_logging.LevelInfo, "noop")
}

// TestInterceptorsConstruct verifies interceptor helpers return non-nil interceptors.
func TestInterceptorsConstruct(t *testing.T) {
	tr, _ := newTestTranslator(t)
	if UnaryServerInterceptor(tr) == nil {
		t.Fatalf("UnaryServerInterceptor returned nil")
	}
	if StreamServerInterceptor(tr) == nil {
		t.Fatalf("StreamServerInterceptor returned nil")
	}
	if UnaryClientInterceptor(tr) == nil {
		t.Fatalf("UnaryClientInterceptor returned nil")
	}
	if StreamClientInterceptor(tr) == nil {
		t.Fatalf("StreamClientInterceptor returned nil")
	}
}
