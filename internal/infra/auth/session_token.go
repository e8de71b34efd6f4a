package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"marketplace/config"
	"marketplace/internal/domain/entity"
	"marketplace/internal/domain/service"
)

// ErrInvalidSessionToken is returned when a token fails signature or claim
// validation. Callers treat it as "anonymous", not as a hard failure.
var ErrInvalidSessionToken = errors.New("invalid session token")

// sessionTokenService is a concrete implementation of the SessionTokenService
// interface using HMAC-signed JWTs.
type sessionTokenService struct {
	secret string        // Secret key for signing session tokens.
	ttl    time.Duration // Time-to-live for session tokens.
}

// NewSessionTokenService is the constructor for sessionTokenService.
// The secret comes from config; when it was generated per process, existing
// sessions become invalid on restart.
func NewSessionTokenService(cfg *config.Config) (service.SessionTokenService, error) {
	if cfg.Session.Secret == "" {
		return nil, errors.New("session secret must be provided")
	}

	ttl := cfg.Session.TTL
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}

	return &sessionTokenService{
		secret: cfg.Session.Secret,
		ttl:    ttl,
	}, nil
}

// Issue creates a signed session token carrying the identity and the cached
// cart count.
func (s *sessionTokenService) Issue(info entity.UserInfo) (string, error) {
	claims := jwt.MapClaims{
		"sub":       float64(info.UserID),       // Subject (who the token is for)
		"username":  info.Username,              // Display identity
		"cartCount": float64(info.CartCount),    // Denormalized badge counter
		"iat":       time.Now().Unix(),          // Issued At
		"exp":       time.Now().Add(s.ttl).Unix(), // Expiration Time
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	return token.SignedString([]byte(s.secret))
}

// Validate checks the token signature and expiry and rebuilds the identity
// from the claims.
func (s *sessionTokenService) Validate(tokenString string) (entity.UserInfo, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return []byte(s.secret), nil
	})
	if err != nil || !token.Valid {
		return entity.UserInfo{}, ErrInvalidSessionToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return entity.UserInfo{}, ErrInvalidSessionToken
	}

	sub, ok := claims["sub"].(float64)
	if !ok || sub <= 0 {
		return entity.UserInfo{}, ErrInvalidSessionToken
	}
	username, _ := claims["username"].(string)
	cartCount, _ := claims["cartCount"].(float64)

	return entity.UserInfo{
		UserID:    uint(sub),
		Username:  username,
		CartCount: int64(cartCount),
	}, nil
}
