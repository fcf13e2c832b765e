package common

import (
	"errors"
	"fmt"
	"net/http"
)

// RPCError is the only failure shape that crosses the service boundary:
// a status code and a human-readable message.
type RPCError struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
}

func (e *RPCError) Error() string {
	return fmt.Sprintf("%d: %s", e.Status, e.Message)
}

// ToRPCError maps an error returned by the service layer to an RPCError.
// Unknown errors become a generic 500 so no internal detail leaks out.
func ToRPCError(err error) *RPCError {
	var rpcErr *RPCError
	switch {
	case err == nil:
		return nil
	case errors.As(err, &rpcErr):
		return rpcErr
	case errors.Is(err, ErrUserAlreadyExists):
		return &RPCError{Status: http.StatusBadRequest, Message: ErrUserAlreadyExists.Error()}
	case errors.Is(err, ErrUserNotFound):
		return &RPCError{Status: http.StatusBadRequest, Message: ErrUserNotFound.Error()}
	case errors.Is(err, ErrInvalidPassword):
		return &RPCError{Status: http.StatusBadRequest, Message: ErrInvalidPassword.Error()}
	case errors.Is(err, ErrorValidation):
		return &RPCError{Status: http.StatusBadRequest, Message: err.Error()}
	case errors.Is(err, ErrInvalidToken):
		return &RPCError{Status: http.StatusUnauthorized, Message: ErrInvalidToken.Error()}
	default:
		return &RPCError{Status: http.StatusInternalServerError, Message: "Internal server error"}
	}
}
