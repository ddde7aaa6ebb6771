package services

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/ethereum/go-ethereum/common"

	"github.com/joshuarp/vrf-coordinator/internal/domain/vo"
)

type AuthorizationRegistry struct {
	mu             sync.Mutex
	authorizations AuthorizationRepository
	configs        ConfigRepository
	logger         *slog.Logger
	now            func() time.Time
}

func NewAuthorizationRegistry(authorizations AuthorizationRepository, configs ConfigRepository, logger *slog.Logger) *AuthorizationRegistry {
	if logger == nil {
		logger = slog.Default()
	}
	return &AuthorizationRegistry{
		authorizations: authorizations,
		configs:        configs,
		logger:         logger,
		now:            func() time.Time { return time.Now().UTC() },
	}
}

func (r *AuthorizationRegistry) IsAuthorized(ctx context.Context, caller common.Address) (bool, error) {
	if caller == (common.Address{}) {
		return false, nil
	}
	return r.authorizations.IsAuthorized(ctx, caller)
}

// Authorize grants or revokes the right of a calling contract to open commitments. Revocation does
// not touch commitments the caller already holds.
func (r *AuthorizationRegistry) Authorize(ctx context.Context, actor, caller common.Address, authorized bool) (vo.AuthorizedCaller, error) {
	if caller == (common.Address{}) {
		return vo.AuthorizedCaller{}, vo.ErrInvalidAddress
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	cfg, err := r.configs.LoadConfig(ctx)
	if err != nil {
		return vo.AuthorizedCaller{}, err
	}

	if err := requireAdmin(cfg, actor); err != nil {
		return vo.AuthorizedCaller{}, err
	}

	if err := r.authorizations.SetAuthorized(ctx, caller, authorized, r.now()); err != nil {
		return vo.AuthorizedCaller{}, err
	}

	r.logger.InfoContext(ctx, "caller authorization changed",
		slog.String("caller", caller.Hex()),
		slog.Bool("authorized", authorized),
		slog.String("actor", actor.Hex()),
	)

	return vo.AuthorizedCaller{Caller: caller, Authorized: authorized}, nil
}

func (r *AuthorizationRegistry) ListAuthorized(ctx context.Context) ([]vo.AuthorizedCaller, error) {
	return r.authorizations.ListAuthorized(ctx)
}
