package service

import "context"

type contextKey string

const userIDKey contextKey = "user_id"

// WithUserID attaches the caller identity used to attribute history records.
func WithUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, userIDKey, userID)
}

// UserIDFromContext returns the caller identity, or "" for anonymous calls.
func UserIDFromContext(ctx context.Context) string {
	userID, _ := ctx.Value(userIDKey).(string)
	return userID
}
