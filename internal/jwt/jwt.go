package jwt

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Cookie names under which the token pair is set on login.
const (
	AccessCookie  = "accessToken"
	RefreshCookie = "refreshToken"
)

var (
	ErrMissingToken = errors.New("authorization token missing")
	ErrInvalidToken = errors.New("invalid token")
)

// Claims carries the authenticated user identity extracted from a token.
type Claims struct {
	UserID uuid.UUID
}

// JWT issues and validates the access/refresh token pair.
type JWT struct {
	AccessSecret  string
	RefreshSecret string
	AccessExp     time.Duration
	RefreshExp    time.Duration
}

// New creates a JWT service for the given secrets and lifetimes.
func New(accessSecret, refreshSecret string, accessExp, refreshExp time.Duration) *JWT {
	return &JWT{
		AccessSecret:  accessSecret,
		RefreshSecret: refreshSecret,
		AccessExp:     accessExp,
		RefreshExp:    refreshExp,
	}
}

// GenerateAccess creates a short-lived access token for a user.
func (j *JWT) GenerateAccess(ctx context.Context, userID uuid.UUID) (string, error) {
	return generate(userID, j.AccessSecret, j.AccessExp)
}

// GenerateRefresh creates a long-lived refresh token for a user.
func (j *JWT) GenerateRefresh(ctx context.Context, userID uuid.UUID) (string, error) {
	return generate(userID, j.RefreshSecret, j.RefreshExp)
}

func generate(userID uuid.UUID, secret string, exp time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"user_id": userID.String(),
		"exp":     time.Now().Add(exp).Unix(),
		"iat":     time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// GetClaims parses an access token and returns its claims if valid.
func (j *JWT) GetClaims(ctx context.Context, tokenString string) (*Claims, error) {
	return parse(tokenString, j.AccessSecret)
}

// GetRefreshClaims parses a refresh token and returns its claims if valid.
func (j *JWT) GetRefreshClaims(ctx context.Context, tokenString string) (*Claims, error) {
	return parse(tokenString, j.RefreshSecret)
}

func parse(tokenString, secret string) (*Claims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}

	userIDStr, ok := claims["user_id"].(string)
	if !ok {
		return nil, errors.New("user_id not found in token")
	}
	userID, err := uuid.Parse(userIDStr)
	if err != nil {
		return nil, errors.New("invalid user_id format")
	}

	return &Claims{UserID: userID}, nil
}

// GetTokenFromRequest extracts the access token from the Authorization
// header, falling back to the accessToken cookie.
func (j *JWT) GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error) {
	if authHeader := r.Header.Get("Authorization"); authHeader != "" {
		parts := strings.Fields(authHeader)
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			return "", errors.New("invalid authorization header format")
		}
		return parts[1], nil
	}

	if c, err := r.Cookie(AccessCookie); err == nil && c.Value != "" {
		return c.Value, nil
	}

	return "", ErrMissingToken
}

// GetRefreshTokenFromRequest extracts the refresh token from the
// refreshToken cookie. Handlers that also accept the token in the request
// body fall back to it when the cookie is absent.
func (j *JWT) GetRefreshTokenFromRequest(ctx context.Context, r *http.Request) (string, error) {
	if c, err := r.Cookie(RefreshCookie); err == nil && c.Value != "" {
		return c.Value, nil
	}
	return "", ErrMissingToken
}
