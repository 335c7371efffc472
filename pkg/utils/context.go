package utils

import (
	"context"

	"github.com/google/uuid"
)

type contextKey string

const RequestIDKey contextKey = "request_id"

func SetRequestIDContext(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, RequestIDKey, requestID)
}

// GetRequestIDFromContext mendapatkan request ID dari context
func GetRequestIDFromContext(ctx context.Context) (string, bool) {
	val := ctx.Value(RequestIDKey)
	if val == nil {
		return "", false
	}

	requestID, ok := val.(string)
	return requestID, ok
}

// EnsureRequestID returns the incoming ID when it is a valid UUID, else a new one
func EnsureRequestID(incoming string) string {
	if _, err := uuid.Parse(incoming); err == nil {
		return incoming
	}
	return uuid.New().String()
}
