package grpc

import (
	"context"
	"net/http"
	"strconv"

	"github.com/dmitrijs2005/authkeeper/internal/common"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

// toStatusError converts a service error into a gRPC status carrying only
// the public message. The numeric status is also sent in the trailer.
func toStatusError(ctx context.Context, err error) error {
	rpcErr := common.ToRPCError(err)

	// Fails outside a server stream (e.g. unit tests); the status still carries the code.
	_ = grpc.SetTrailer(ctx, metadata.Pairs(common.StatusTrailerName, strconv.Itoa(rpcErr.Status)))

	return status.Error(codeFor(rpcErr.Status), rpcErr.Message)
}

func codeFor(httpStatus int) codes.Code {
	switch httpStatus {
	case http.StatusBadRequest:
		return codes.InvalidArgument
	case http.StatusUnauthorized:
		return codes.Unauthenticated
	default:
		return codes.Internal
	}
}
