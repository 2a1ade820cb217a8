package jwt

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// DefaultExpiration is the token lifetime used when none is configured.
const DefaultExpiration = 10 * time.Hour

// JWT issues and validates HMAC-SHA256 signed bearer tokens whose
// subject claim carries the user's login.
type JWT struct {
	SecretKey string        // Secret key for signing tokens
	Exp       time.Duration // Token expiration duration
}

// New creates a new JWT instance. A non-positive expiration falls back
// to DefaultExpiration.
func New(secretKey string, expiration time.Duration) *JWT {
	if expiration <= 0 {
		expiration = DefaultExpiration
	}
	return &JWT{
		SecretKey: secretKey,
		Exp:       expiration,
	}
}

// Generate creates a signed token for the given login.
func (j *JWT) Generate(ctx context.Context, login string) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub": login,
		"iat": now.Unix(),
		"exp": now.Add(j.Exp).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(j.SecretKey))
}

// GetLogin parses the token and returns the login from the subject claim.
// Any parse, signature or expiry failure is returned as an error; callers
// must treat it as "unauthenticated".
func (j *JWT) GetLogin(ctx context.Context, tokenString string) (string, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(j.SecretKey), nil
	})
	if err != nil {
		return "", err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return "", errors.New("invalid token")
	}

	login, ok := claims["sub"].(string)
	if !ok || login == "" {
		return "", errors.New("subject not found in token")
	}
	return login, nil
}

// Validate reports whether the token is well formed, correctly signed,
// not expired and issued for the given login. It fails closed: any error
// results in false.
func (j *JWT) Validate(ctx context.Context, tokenString, login string) bool {
	extracted, err := j.GetLogin(ctx, tokenString)
	if err != nil {
		return false
	}
	return extracted == login
}

// GetTokenFromRequest extracts the token string from the Authorization header.
func (j *JWT) GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return "", errors.New("authorization header missing")
	}

	parts := strings.Fields(authHeader)
	if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
		return "", errors.New("invalid authorization header format")
	}

	return parts[1], nil
}
