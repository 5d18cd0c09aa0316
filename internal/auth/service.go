package auth

import (
	"fmt"
	"strings"
	"time"

	apperrors "idea-marketplace-backend/internal/errors"

	"github.com/golang-jwt/jwt/v5"
)

const defaultTokenTTL = time.Hour

// AuthClaims represents JWT token claims. Email is the actor identity on every core call.
type AuthClaims struct {
	Email string `json:"email" example:"john.doe@example.com"`
	Name  string `json:"name,omitempty" example:"John Doe"`
	jwt.RegisteredClaims
}

// TokenService issues and validates bearer tokens
type TokenService struct {
	secret []byte
	issuer string
	ttl    time.Duration
	now    func() time.Time
}

// NewTokenService creates a token service signing with secret
func NewTokenService(secret, issuer string, ttl time.Duration) (*TokenService, error) {
	if strings.TrimSpace(secret) == "" {
		return nil, apperrors.NewConfigurationError("JWT secret is required")
	}
	if ttl <= 0 {
		ttl = defaultTokenTTL
	}
	return &TokenService{secret: []byte(secret), issuer: issuer, ttl: ttl, now: time.Now}, nil
}

// GenerateToken creates a signed token for email
func (s *TokenService) GenerateToken(email, name string) (string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return "", apperrors.NewValidationError("email", "is required")
	}

	now := s.now()
	claims := &AuthClaims{
		Email: email,
		Name:  name,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    s.issuer,
			Subject:   email,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// ValidateToken validates and parses a token
func (s *TokenService) ValidateToken(tokenString string) (*AuthClaims, error) {
	options := []jwt.ParserOption{jwt.WithTimeFunc(s.now)}
	if s.issuer != "" {
		options = append(options, jwt.WithIssuer(s.issuer))
	}

	token, err := jwt.ParseWithClaims(tokenString, &AuthClaims{}, func(token *jwt.Token) (interface{}, error) {
		// Verify signing method
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	}, options...)
	if err != nil {
		return nil, apperrors.NewAuthenticationError(fmt.Sprintf("failed to parse token: %v", err))
	}

	claims, ok := token.Claims.(*AuthClaims)
	if !ok || !token.Valid || claims.Email == "" {
		return nil, apperrors.NewAuthenticationError("invalid token")
	}
	return claims, nil
}
