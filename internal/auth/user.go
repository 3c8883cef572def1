package auth

import (
	"context"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
)

type userKeyType struct{}

var userKey userKeyType

// User is the authenticated caller. ID is the owner identity every job
// operation is scoped by.
type User struct {
	ID    string
	Name  string
	Token *jwt.Token
}

func NewUserContext(ctx context.Context, u User) context.Context {
	return context.WithValue(ctx, userKey, u)
}

func UserFromContext(ctx context.Context) (User, bool) {
	val := ctx.Value(userKey)
	if val == nil {
		return User{}, false
	}
	return val.(User), true
}

// MustHaveUser returns the user injected by the authenticator middleware.
// Reaching a handler without one is a programming error.
func MustHaveUser(ctx context.Context) User {
	user, found := UserFromContext(ctx)
	if !found {
		zap.S().Named("auth").Panic("failed to find user in context")
	}
	return user
}
