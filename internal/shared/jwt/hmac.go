package jwt

import (
	"context"
	"fmt"
	"time"

	jwtlib "github.com/golang-jwt/jwt/v5"
)

var _ TokenManager = (*hmacManager)(nil)

type hmacManager struct {
	secret []byte
	method jwtlib.SigningMethod
	issuer string
	ttl    time.Duration
	now    func() time.Time
}

func NewHMAC(opts Options) (TokenManager, error) {
	if len(opts.Secret) < 32 {
		return nil, fmt.Errorf("jwt: HMAC secret must be at least 32 bytes, got %d", len(opts.Secret))
	}

	var method jwtlib.SigningMethod
	switch opts.Algorithm {
	case "", "HS256":
		method = jwtlib.SigningMethodHS256
	case "HS384":
		method = jwtlib.SigningMethodHS384
	case "HS512":
		method = jwtlib.SigningMethodHS512
	default:
		return nil, fmt.Errorf("jwt: unsupported HMAC algorithm %q", opts.Algorithm)
	}

	return &hmacManager{
		secret: opts.Secret,
		method: method,
		issuer: opts.Issuer,
		ttl:    opts.TTL,
		now:    time.Now,
	}, nil
}

func (m *hmacManager) Sign(_ context.Context, claims Claims) (string, error) {
	now := m.now()

	registered := jwtlib.RegisteredClaims{
		Subject:  claims.Subject,
		ID:       claims.ID,
		Issuer:   m.issuer,
		Audience: jwtlib.ClaimStrings(claims.Audience),
		IssuedAt: jwtlib.NewNumericDate(now),
	}
	if claims.Issuer != "" {
		registered.Issuer = claims.Issuer
	}
	if !claims.IssuedAt.IsZero() {
		registered.IssuedAt = jwtlib.NewNumericDate(claims.IssuedAt)
	}
	switch {
	case !claims.ExpiresAt.IsZero():
		registered.ExpiresAt = jwtlib.NewNumericDate(claims.ExpiresAt)
	case m.ttl > 0:
		registered.ExpiresAt = jwtlib.NewNumericDate(now.Add(m.ttl))
	}
	if !claims.NotBefore.IsZero() {
		registered.NotBefore = jwtlib.NewNumericDate(claims.NotBefore)
	}

	signed, err := jwtlib.NewWithClaims(m.method, registered).SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("jwt: failed to sign token: %w", err)
	}
	return signed, nil
}

func (m *hmacManager) Verify(_ context.Context, tokenString string) (*Claims, error) {
	parserOptions := []jwtlib.ParserOption{
		jwtlib.WithValidMethods([]string{m.method.Alg()}),
		jwtlib.WithTimeFunc(m.now),
	}
	if m.issuer != "" {
		parserOptions = append(parserOptions, jwtlib.WithIssuer(m.issuer))
	}

	registered := &jwtlib.RegisteredClaims{}
	_, err := jwtlib.ParseWithClaims(tokenString, registered, func(*jwtlib.Token) (any, error) {
		return m.secret, nil
	}, parserOptions...)
	if err != nil {
		return nil, fmt.Errorf("jwt: token validation failed: %w", err)
	}

	claims := &Claims{
		Subject:  registered.Subject,
		Issuer:   registered.Issuer,
		Audience: []string(registered.Audience),
		ID:       registered.ID,
	}
	if registered.ExpiresAt != nil {
		claims.ExpiresAt = registered.ExpiresAt.Time
	}
	if registered.IssuedAt != nil {
		claims.IssuedAt = registered.IssuedAt.Time
	}
	if registered.NotBefore != nil {
		claims.NotBefore = registered.NotBefore.Time
	}
	return claims, nil
}
