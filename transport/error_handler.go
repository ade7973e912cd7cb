// Package transport holds pieces shared by the transports of this module and
// the servers built next to them.
package transport

import (
	"context"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
)

// ErrorHandler receives a transport error to be processed for diagnostic
// purposes. Usually this means logging the error.
type ErrorHandler interface {
	Handle(ctx context.Context, err error)
}

// ErrorHandlerFunc is an adapter to allow the use of an ordinary function as
// an ErrorHandler.
type ErrorHandlerFunc func(ctx context.Context, err error)

// Handle calls f(ctx, err).
func (f ErrorHandlerFunc) Handle(ctx context.Context, err error) {
	f(ctx, err)
}

// LogErrorHandler is a transport error handler implementation which logs an
// error at error level.
type LogErrorHandler struct {
	logger log.Logger
}

// NewLogErrorHandler returns a LogErrorHandler writing to logger.
func NewLogErrorHandler(logger log.Logger) *LogErrorHandler {
	return &LogErrorHandler{
		logger: logger,
	}
}

// Handle implements ErrorHandler.
func (h *LogErrorHandler) Handle(_ context.Context, err error) {
	level.Error(h.logger).Log("err", err)
}
