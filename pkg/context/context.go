package context

import (
	"context"

	"github.com/gofiber/fiber/v2"
)

type ctxKey string

const (
	RequestIDKey    ctxKey = "request_id"
	RequestIDHeader        = "X-Request-ID"
)

func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, RequestIDKey, requestID)
}

func GetRequestID(ctx context.Context) string {
	if ctx == nil {
		return "unknown"
	}
	requestID, ok := ctx.Value(RequestIDKey).(string)
	if !ok || requestID == "" {
		return "unknown"
	}
	return requestID
}

// FromFiberCtx derives a context from the request's user context and tags it
// with the request ID set by the request ID middleware.
func FromFiberCtx(c *fiber.Ctx) context.Context {
	requestID, ok := c.Locals(RequestIDHeader).(string)
	if !ok || requestID == "" {
		requestID = c.Get(RequestIDHeader)
	}

	return WithRequestID(c.UserContext(), requestID)
}
