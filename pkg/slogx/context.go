package slogx

import (
	"context"
	"log/slog"

	"github.com/aussiebroadwan/simapi/pkg/idx"
)

type ctxKey struct{}

type reqIDKey struct{}

func WithContext(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, ctxKey{}, logger)
}

func FromContext(ctx context.Context) *slog.Logger {
	l, ok := ctx.Value(ctxKey{}).(*slog.Logger)
	if !ok {
		return slog.Default()
	}
	return l
}

// WithRequestID pins the request ID the Transport will send and log for
// requests made with ctx.
func WithRequestID(ctx context.Context, reqID idx.RequestID) context.Context {
	l := FromContext(ctx)
	ctx = context.WithValue(ctx, reqIDKey{}, reqID)
	return WithContext(ctx, l.With("req_id", reqID.String()))
}

// RequestIDFromContext returns the pinned request ID, if any.
func RequestIDFromContext(ctx context.Context) (idx.RequestID, bool) {
	id, ok := ctx.Value(reqIDKey{}).(idx.RequestID)
	return id, ok
}
