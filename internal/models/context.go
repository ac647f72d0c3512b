package models

import "context"

type ctxKey int

const userCtxKey ctxKey = 0

func ContextWithUser(ctx context.Context, claims *Claims) context.Context {
	return context.WithValue(ctx, userCtxKey, claims)
}

// UserFromContext returns the authenticated caller's claims, if any.
func UserFromContext(ctx context.Context) (*Claims, bool) {
	claims, ok := ctx.Value(userCtxKey).(*Claims)
	return claims, ok
}
