// Package auth is the guest-authentication collaborator for the concierge
// path. There are no stored accounts; a login mints a short-lived guest token
// bound to the booking session, and logout revokes it.
package auth

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/golang-jwt/jwt"
)

const revokedPrefix = "auth:revoked:"

// Service gates the concierge flow. The booking controller only ever asks
// these three questions; credential handling stays out of the core.
type Service interface {
	Login(ctx context.Context, sessionID string) (string, error)
	IsAuthenticated(ctx context.Context, token, sessionID string) bool
	Logout(ctx context.Context, token string) error
}

// JWTService issues HS256 guest tokens with the booking session ID as the
// subject. Revoked tokens are tracked by hash in Redis until they expire.
type JWTService struct {
	Secret []byte
	TTL    time.Duration
	Cache  *redis.Client
}

func NewJWTService(secret string, ttl time.Duration, cache *redis.Client) *JWTService {
	return &JWTService{Secret: []byte(secret), TTL: ttl, Cache: cache}
}

func (s *JWTService) Login(ctx context.Context, sessionID string) (string, error) {
	claims := jwt.MapClaims{
		"sub": sessionID,
		"iat": time.Now().Unix(),
		"exp": time.Now().Add(s.TTL).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.Secret)
}

func (s *JWTService) IsAuthenticated(ctx context.Context, tokenString, sessionID string) bool {
	sub, err := s.subject(tokenString)
	if err != nil || sub != sessionID {
		return false
	}
	revoked, err := s.Cache.Exists(ctx, revokedPrefix+hashToken(tokenString)).Result()
	return err == nil && revoked == 0
}

func (s *JWTService) Logout(ctx context.Context, tokenString string) error {
	if _, err := s.subject(tokenString); err != nil {
		return err
	}
	return s.Cache.Set(ctx, revokedPrefix+hashToken(tokenString), "1", s.TTL).Err()
}

func (s *JWTService) subject(tokenString string) (string, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return s.Secret, nil
	})
	if err != nil {
		return "", err
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return "", errors.New("invalid token")
	}
	sub, ok := claims["sub"].(string)
	if !ok || sub == "" {
		return "", errors.New("token does not contain a valid 'sub' claim")
	}
	return sub, nil
}

func hashToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}
