package auth

import (
	"context"
	"errors"
	"strings"

	"connectrpc.com/connect"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"orgusers-api/pkg/response"
)

type contextKey string

const (
	UserIDKey    contextKey = "user_id"
	UserEmailKey contextKey = "user_email"
)

var (
	ErrMissingToken  = connect.NewError(connect.CodeUnauthenticated, errors.New("missing authorization token"))
	ErrInvalidToken  = connect.NewError(connect.CodeUnauthenticated, errors.New("invalid authorization token"))
	ErrTokenExpired  = connect.NewError(connect.CodeUnauthenticated, errors.New("token has expired"))
	ErrInvalidClaims = connect.NewError(connect.CodeUnauthenticated, errors.New("invalid token claims"))
)

type Middleware struct {
	jwtSecret []byte
}

func NewMiddleware(jwtSecret []byte) *Middleware {
	return &Middleware{
		jwtSecret: jwtSecret,
	}
}

// Handler validates the bearer token and stores the caller identity on the
// request context.
func (m *Middleware) Handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, err := m.authenticate(c.Request.Context(), c.GetHeader("Authorization"))
		if err != nil {
			response.Error(c, err)
			return
		}

		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}

func (m *Middleware) authenticate(ctx context.Context, authHeader string) (context.Context, error) {
	if authHeader == "" {
		return nil, ErrMissingToken
	}

	tokenString := strings.TrimPrefix(authHeader, "Bearer ")
	if tokenString == authHeader {
		return nil, ErrInvalidToken
	}

	token, err := jwt.ParseWithClaims(tokenString, &JwtClaims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}

		return m.jwtSecret, nil
	})

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrInvalidToken
	}

	if !token.Valid {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*JwtClaims)
	if !ok {
		return nil, ErrInvalidClaims
	}

	userID, err := claims.GetSubject()
	if err != nil || userID == "" {
		return nil, ErrInvalidClaims
	}

	ctx = context.WithValue(ctx, UserIDKey, userID)
	ctx = context.WithValue(ctx, UserEmailKey, claims.Email)

	return ctx, nil
}

func GetUserID(ctx context.Context) (string, bool) {
	userID, ok := ctx.Value(UserIDKey).(string)
	return userID, ok
}

func GetUserEmail(ctx context.Context) (string, bool) {
	email, ok := ctx.Value(UserEmailKey).(string)
	return email, ok
}

func MustGetUserID(ctx context.Context) (string, error) {
	userID, ok := GetUserID(ctx)
	if !ok {
		return "", connect.NewError(connect.CodeUnauthenticated, errors.New("user not authenticated"))
	}
	return userID, nil
}
