package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/guttosm/order-service/internal/domain/dto"
)

// TokenIssuer is the iss claim of tokens minted and accepted by this service.
const TokenIssuer = "order-service"

var (
	// ErrInvalidToken is returned for tokens that fail signature, expiry or issuer checks.
	ErrInvalidToken = errors.New("invalid token")
	// ErrTokenSecretMissing is returned when no signing secret is configured.
	ErrTokenSecretMissing = errors.New("token secret not configured")
)

// TokenService validates bearer tokens presented to the API and mints them
// for operators.
type TokenService interface {
	Issue(claims dto.Claims, ttl time.Duration) (string, error)
	Validate(tokenString string) (*dto.Claims, error)
}

// claimsWithJWT embeds the caller identity in the registered JWT claims.
type claimsWithJWT struct {
	Email string   `json:"email,omitempty"`
	Name  string   `json:"name,omitempty"`
	Roles []string `json:"roles,omitempty"`
	jwt.RegisteredClaims
}

// TokenServiceImpl signs and verifies HS256 tokens with a shared secret.
type TokenServiceImpl struct {
	secretKey []byte
	now       func() time.Time
}

// NewTokenService creates a token service for secret.
func NewTokenService(secret string) (TokenService, error) {
	if secret == "" {
		return nil, ErrTokenSecretMissing
	}
	return &TokenServiceImpl{
		secretKey: []byte(secret),
		now:       time.Now,
	}, nil
}

// Issue signs claims. A zero ttl yields a token without expiry; a negative
// ttl yields one that is already expired.
func (s *TokenServiceImpl) Issue(claims dto.Claims, ttl time.Duration) (string, error) {
	now := s.now()
	registered := jwt.RegisteredClaims{
		Subject:  claims.Subject,
		Issuer:   TokenIssuer,
		IssuedAt: jwt.NewNumericDate(now),
	}
	if ttl != 0 {
		registered.ExpiresAt = jwt.NewNumericDate(now.Add(ttl))
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claimsWithJWT{
		Email:            claims.Email,
		Name:             claims.Name,
		Roles:            claims.Roles,
		RegisteredClaims: registered,
	})
	signed, err := token.SignedString(s.secretKey)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// Validate checks the signature, expiry and issuer of tokenString.
func (s *TokenServiceImpl) Validate(tokenString string) (*dto.Claims, error) {
	parsed := &claimsWithJWT{}
	token, err := jwt.ParseWithClaims(tokenString, parsed, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", token.Header["alg"])
		}
		return s.secretKey, nil
	},
		jwt.WithIssuer(TokenIssuer),
		jwt.WithTimeFunc(s.now),
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
	)
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}
	if parsed.Subject == "" {
		return nil, ErrInvalidToken
	}

	return &dto.Claims{
		Subject: parsed.Subject,
		Email:   parsed.Email,
		Name:    parsed.Name,
		Roles:   parsed.Roles,
	}, nil
}
