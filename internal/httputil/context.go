package httputil

import (
	"context"
	"net/http"
)

// Context key type to avoid collisions
type contextKey string

const (
	actorIDKey     contextKey = "actorID"
	authorityKey   contextKey = "authority"
	bearerTokenKey contextKey = "bearerToken"
)

// WithActor adds the authenticated actor's id and authority to the request context
func WithActor(r *http.Request, actorID int64, authority string) *http.Request {
	ctx := context.WithValue(r.Context(), actorIDKey, actorID)
	ctx = context.WithValue(ctx, authorityKey, authority)
	return r.WithContext(ctx)
}

// ActorID retrieves the actor id from context, returns 0 if not found
func ActorID(ctx context.Context) int64 {
	id, _ := ctx.Value(actorIDKey).(int64)
	return id
}

// Authority retrieves the actor's token authority from context
func Authority(ctx context.Context) string {
	authority, _ := ctx.Value(authorityKey).(string)
	return authority
}

// WithBearerToken stores the caller's raw bearer credential in the context so
// outbound calls to the user directory can forward it.
func WithBearerToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, bearerTokenKey, token)
}

// BearerToken retrieves the caller's bearer credential, empty if absent
func BearerToken(ctx context.Context) string {
	token, _ := ctx.Value(bearerTokenKey).(string)
	return token
}
