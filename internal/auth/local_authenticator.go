package auth

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
)

// LocalAuthenticator validates HS256 bearer tokens signed with a shared
// secret. The token carries the owner identity in the userId claim.
type LocalAuthenticator struct {
	secret []byte
}

func NewLocalAuthenticator(secret string) (*LocalAuthenticator, error) {
	if secret == "" {
		return nil, errors.New("jwt secret must not be empty")
	}
	return &LocalAuthenticator{secret: []byte(secret)}, nil
}

func (l *LocalAuthenticator) Authenticate(token string) (User, error) {
	parser := jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Name}), jwt.WithIssuedAt(), jwt.WithExpirationRequired())
	t, err := parser.Parse(token, func(t *jwt.Token) (any, error) { return l.secret, nil })
	if err != nil {
		zap.S().Named("auth").Errorw("failed to parse or validate token", "error", err)
		return User{}, fmt.Errorf("failed to authenticate token: %w", err)
	}

	if !t.Valid {
		return User{}, errors.New("failed to parse or validate token")
	}

	return l.parseToken(t)
}

func (l *LocalAuthenticator) parseToken(userToken *jwt.Token) (User, error) {
	claims, ok := userToken.Claims.(jwt.MapClaims)
	if !ok {
		return User{}, errors.New("failed to parse jwt token claims")
	}

	userID, ok := claims["userId"].(string)
	if !ok || userID == "" {
		return User{}, errors.New("token has no userId claim")
	}
	name, _ := claims["name"].(string)

	return User{
		ID:    userID,
		Name:  name,
		Token: userToken,
	}, nil
}

func (l *LocalAuthenticator) Authenticator(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		accessToken := r.Header.Get("Authorization")
		if !strings.HasPrefix(accessToken, "Bearer ") {
			http.Error(w, "No token provided", http.StatusUnauthorized)
			return
		}

		accessToken = strings.TrimPrefix(accessToken, "Bearer ")
		user, err := l.Authenticate(accessToken)
		if err != nil {
			http.Error(w, "authentication failed", http.StatusUnauthorized)
			return
		}

		ctx := NewUserContext(r.Context(), user)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
