package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// DefaultTokenTTL is how long an admin token stays valid.
const DefaultTokenTTL = 30 * 24 * time.Hour

// ErrTokenExpired is returned by Validate for an expired token.
var ErrTokenExpired = errors.New("auth: token expired")

// TokenService signs and verifies admin tokens (HS256).
type TokenService struct {
	secret []byte
	issuer string
	ttl    time.Duration
}

// NewTokenService returns a TokenService. The secret must be at least 16
// characters. A zero ttl selects DefaultTokenTTL.
func NewTokenService(secret, issuer string, ttl time.Duration) (*TokenService, error) {
	if len(secret) < 16 {
		return nil, errors.New("auth: JWT secret must be at least 16 characters")
	}
	if issuer == "" {
		issuer = "folio"
	}
	if ttl <= 0 {
		ttl = DefaultTokenTTL
	}
	return &TokenService{secret: []byte(secret), issuer: issuer, ttl: ttl}, nil
}

// TTL reports the lifetime of tokens issued by Generate.
func (s *TokenService) TTL() time.Duration { return s.ttl }

type claims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// Generate issues a token for the admin email with the default lifetime.
func (s *TokenService) Generate(email string) (string, error) {
	return s.GenerateWithDuration(email, s.ttl)
}

// GenerateWithDuration issues a token that expires after d.
func (s *TokenService) GenerateWithDuration(email string, d time.Duration) (string, error) {
	now := time.Now()
	c := claims{
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   email,
			Issuer:    s.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(d)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, c).SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("auth: signing token: %w", err)
	}
	return signed, nil
}

// Validate verifies signature, issuer and expiry and returns the admin email.
func (s *TokenService) Validate(tokenStr string) (string, error) {
	token, err := jwt.ParseWithClaims(
		tokenStr,
		&claims{},
		func(token *jwt.Token) (any, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("auth: unexpected signing method: %v", token.Header["alg"])
			}
			return s.secret, nil
		},
		jwt.WithValidMethods([]string{"HS256"}),
		jwt.WithIssuer(s.issuer),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", ErrTokenExpired
		}
		return "", fmt.Errorf("auth: invalid token: %w", err)
	}

	c, ok := token.Claims.(*claims)
	if !ok || !token.Valid {
		return "", errors.New("auth: invalid token claims")
	}
	if c.Email != "" {
		return c.Email, nil
	}
	return c.Subject, nil
}
