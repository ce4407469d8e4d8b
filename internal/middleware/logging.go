// internal/middleware/logging.go
package middleware

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// LoggingInterceptor logs one line per unary call.
type LoggingInterceptor struct {
	log zerolog.Logger
}

func NewLoggingInterceptor(log zerolog.Logger) *LoggingInterceptor {
	return &LoggingInterceptor{log: log}
}

// Unary returns a unary server interceptor that logs the call with its client
func (l *LoggingInterceptor) Unary() grpc.UnaryServerInterceptor {
	return func(
		ctx context.Context,
		req interface{},
		info *grpc.UnaryServerInfo,
		handler grpc.UnaryHandler,
	) (interface{}, error) {
		start := time.Now()
		resp, err := handler(ctx, req)

		code := status.Code(err)
		level := zerolog.InfoLevel
		switch code {
		case codes.OK:
		case codes.InvalidArgument, codes.NotFound:
			level = zerolog.WarnLevel
		default:
			level = zerolog.ErrorLevel
		}

		l.log.WithLevel(level).
			Str("method", info.FullMethod).
			Str("code", code.String()).
			Str("ip", GetIPAddressFromContext(ctx)).
			Str("user_agent", GetUserAgentFromContext(ctx)).
			Dur("latency", time.Since(start)).
			Err(err).
			Msg("gRPC request")

		return resp, err
	}
}
