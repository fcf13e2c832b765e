package grpc

import (
	"context"
	"time"

	"github.com/dmitrijs2005/authkeeper/internal/rpc"
	"google.golang.org/grpc"
	"google.golang.org/grpc/status"
)

// loggingInterceptor logs every call with its operation name, outcome and
// duration. Request bodies are never logged.
func (s *GRPCServer) loggingInterceptor(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
	start := time.Now()

	resp, err := handler(ctx, req)

	pattern, ok := rpc.Patterns[info.FullMethod]
	if !ok {
		pattern = info.FullMethod
	}
	args := []any{
		"pattern", pattern,
		"code", status.Code(err).String(),
		"duration", time.Since(start),
	}
	if err != nil {
		s.logger.Warn(ctx, "request failed", append(args, "error", status.Convert(err).Message())...)
	} else {
		s.logger.Info(ctx, "request handled", args...)
	}

	return resp, err
}
