package ctxkeys

import (
	"context"

	"github.com/paperhub/paperhub/internal/model"
)

// contextKey is a type for context keys to avoid collisions
type contextKey string

const (
	UserKey contextKey = "user"
)

func WithUser(ctx context.Context, user *model.User) context.Context {
	return context.WithValue(ctx, UserKey, user)
}

// User returns the authenticated user from the context, or nil
func User(ctx context.Context) *model.User {
	user, ok := ctx.Value(UserKey).(*model.User)
	if !ok {
		return nil
	}
	return user
}
