package slogx

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/aussiebroadwan/simapi/pkg/idx"
)

// RequestIDHeader carries the ID stamped on every outbound request.
const RequestIDHeader = "X-Request-ID"

// Transport logs outbound requests and stamps them with a request ID.
type Transport struct {
	// Base performs the request. Defaults to http.DefaultTransport.
	Base http.RoundTripper

	// Logger is used when the request context carries no logger.
	Logger *slog.Logger
}

// NewTransport wraps base with request logging.
func NewTransport(base http.RoundTripper, logger *slog.Logger) *Transport {
	return &Transport{Base: base, Logger: logger}
}

// RoundTrip implements http.RoundTripper.
func (t *Transport) RoundTrip(r *http.Request) (*http.Response, error) {
	ctx := r.Context()

	reqID, ok := RequestIDFromContext(ctx)
	if !ok {
		if parsed, err := idx.Parse(r.Header.Get(RequestIDHeader)); err == nil {
			reqID = parsed
		} else {
			reqID = idx.New()
		}
	}

	// RoundTrippers must not modify the caller's request
	r = r.Clone(ctx)
	r.Header.Set(RequestIDHeader, reqID.String())

	logger := t.Logger
	if _, has := ctx.Value(ctxKey{}).(*slog.Logger); has || logger == nil {
		logger = FromContext(ctx)
	}
	logger = logger.With(
		"req_id", reqID.String(),
		"method", r.Method,
		"path", r.URL.Path,
	)

	base := t.Base
	if base == nil {
		base = http.DefaultTransport
	}

	start := time.Now()
	resp, err := base.RoundTrip(r)
	duration := time.Since(start).Milliseconds()
	if err != nil {
		logger.Warn("http_request_failed", "duration_ms", duration, "error", err)
		return nil, err
	}

	logger.Debug("http_request",
		"status", resp.StatusCode,
		"duration_ms", duration,
	)
	return resp, nil
}
