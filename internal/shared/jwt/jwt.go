package jwt

import (
	"context"
	"fmt"
	"slices"
	"time"
)

type Strategy string

const StrategyHMAC Strategy = "hmac"

type Options struct {
	Strategy Strategy

	// Secret is the shared HMAC key, at least 32 bytes.
	Secret []byte

	// Algorithm is HS256 (default), HS384 or HS512.
	Algorithm string

	Issuer string
	TTL    time.Duration
}

// Claims are the registered claims the coordinator uses. Subject is the API client id and the
// single Audience entry is the client's role.
type Claims struct {
	Subject   string
	Issuer    string
	Audience  []string
	ExpiresAt time.Time
	IssuedAt  time.Time
	NotBefore time.Time
	ID        string
}

func (c Claims) HasAudience(audience string) bool {
	return slices.Contains(c.Audience, audience)
}

// TokenManager signs and verifies tokens. Implementations must be safe for concurrent use.
type TokenManager interface {
	Sign(ctx context.Context, claims Claims) (string, error)
	Verify(ctx context.Context, tokenString string) (*Claims, error)
}

func New(opts Options) (TokenManager, error) {
	switch opts.Strategy {
	case StrategyHMAC, "":
		return NewHMAC(opts)
	default:
		return nil, fmt.Errorf("jwt: unknown strategy %q", opts.Strategy)
	}
}
