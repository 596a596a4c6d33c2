package priorityadapter

import (
	"context"

	grpc_logging "github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/logging"
	"google.golang.org/grpc"
)

var _ grpc_logging.Logger = (*GRPCLogger)(nil)

// GRPCLogger implements go-grpc-middleware's logging.Logger by turning each
// call into an Event and handing it to a Translator.
type GRPCLogger struct {
	t       *Translator
	onError func(error)
}

// GRPCLoggerOption customizes a GRPCLogger.
type GRPCLoggerOption func(*GRPCLogger)

// NewGRPCLogger creates a middleware logger backed by t.
func NewGRPCLogger(t *Translator, opts ...GRPCLoggerOption) *GRPCLogger {
	l := &GRPCLogger{t: t}
	for _, opt := range opts {
		if opt != nil {
			opt(l)
		}
	}
	return l
}

// WithErrorHandler receives sink errors, which the middleware Logger
// interface has no way to return.
func WithErrorHandler(fn func(error)) GRPCLoggerOption {
	return func(l *GRPCLogger) {
		l.onError = fn
	}
}

// Log satisfies the go-grpc-middleware logging.Logger interface.
func (l *GRPCLogger) Log(ctx context.Context, level grpc_logging.Level, msg string, fields ...any) {
	if l == nil || l.t == nil {
		return
	}
	if err := l.t.Log(ctx, grpcPriority(level), msg, fields...); err != nil && l.onError != nil {
		l.onError(err)
	}
}

// grpcPriority converts middleware levels into syslog priorities.
func grpcPriority(level grpc_logging.Level) Priority {
	switch level {
	case grpc_logging.LevelDebug:
		return PriorityDebug
	case grpc_logging.LevelInfo:
		return PriorityInfo
	case grpc_logging.LevelWarn:
		return PriorityWarn
	default:
		return PriorityErr
	}
}

// UnaryServerInterceptor returns a grpc.UnaryServerInterceptor that logs through t.
//
// Example:
//
//	translator, _ := priorityadapter.New(handler, priorityadapter.WithEventContext(true))
//	server := grpc.NewServer(
//		grpc.ChainUnaryInterceptor(priorityadapter.UnaryServerInterceptor(translator)),
//	)
func UnaryServerInterceptor(t *Translator, opts ...grpc_logging.Option) grpc.UnaryServerInterceptor {
	return grpc_logging.UnaryServerInterceptor(NewGRPCLogger(t), opts...)
}

// StreamServerInterceptor returns a grpc.StreamServerInterceptor that logs through t.
func StreamServerInterceptor(t *Translator, opts ...grpc_logging.Option) grpc.StreamServerInterceptor {
	return grpc_logging.StreamServerInterceptor(NewGRPCLogger(t), opts...)
}

// UnaryClientInterceptor returns a grpc.UnaryClientInterceptor that logs through t.
func UnaryClientInterceptor(t *Translator, opts ...grpc_logging.Option) grpc.UnaryClientInterceptor {
	return grpc_logging.UnaryClientInterceptor(NewGRPCLogger(t), opts...)
}

// StreamClientInterceptor returns a grpc.StreamClientInterceptor that logs through t.
func StreamClientInterceptor(t *Translator, opts ...grpc_logging.Option) grpc.StreamClientInterceptor {
	return grpc_logging.StreamClientInterceptor(NewGRPCLogger(t), opts...)
}
