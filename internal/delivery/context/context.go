// Package context carries request-scoped values between the delivery layer
// and the services: the request id, a request-scoped logger and the
// authenticated principal taken from the X-Sharer-User-Id header.
package context

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
)

// ContextKey is a custom type for context keys to avoid collisions.
type ContextKey string

const (
	// KeyRequestID is the key for storing the request ID in context.
	KeyRequestID ContextKey = "request_id"

	// KeyLogger is the key for storing the request-scoped logger in context.
	KeyLogger ContextKey = "logger"

	// KeyPrincipal is the key for storing the authenticated caller id.
	KeyPrincipal ContextKey = "principal"

	// HeaderXRequestID is the HTTP header name for the request ID.
	HeaderXRequestID = "X-Request-Id"
)

// NewRequestID generates a fresh request identifier.
func NewRequestID() string {
	return uuid.New().String()
}

// WithRequestID returns a new context with the request ID.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, KeyRequestID, requestID)
}

// GetRequestID extracts the request ID; empty string when absent.
func GetRequestID(ctx context.Context) string {
	if id, ok := ctx.Value(KeyRequestID).(string); ok {
		return id
	}

	return ""
}

// WithLogger returns a new context carrying a request-scoped logger.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, KeyLogger, logger)
}

// GetLoggerOrDefault extracts the request-scoped logger, falling back to
// the supplied default.
func GetLoggerOrDefault(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if logger, ok := ctx.Value(KeyLogger).(*slog.Logger); ok && logger != nil {
		return logger
	}

	return fallback
}

// WithPrincipal returns a new context carrying the authenticated caller id.
func WithPrincipal(ctx context.Context, userID int64) context.Context {
	return context.WithValue(ctx, KeyPrincipal, userID)
}

// GetPrincipal extracts the authenticated caller id; ok is false when the
// request carried no identity header.
func GetPrincipal(ctx context.Context) (int64, bool) {
	id, ok := ctx.Value(KeyPrincipal).(int64)

	return id, ok
}
