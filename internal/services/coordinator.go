package services

import (
	"context"
	"log/slog"
	"math/big"
	"sync"
	"time"

	"github.com/ethereum/go-ethereum/common"

	"github.com/joshuarp/vrf-coordinator/internal/domain"
	"github.com/joshuarp/vrf-coordinator/internal/domain/vo"
)

type CommitmentRepository interface {
	GetCommitment(ctx context.Context, key domain.CommitmentKey) (domain.Commitment, error)
	GetCommitmentByHandle(ctx context.Context, handle string) (domain.Commitment, error)
	CreateCommitment(ctx context.Context, commitment domain.Commitment, issue domain.RequestIssuer) (domain.Commitment, error)
	MarkFulfilled(ctx context.Context, handle string, words []*big.Int, state domain.CommitmentState, at time.Time) (bool, error)
	ConsumeCommitment(ctx context.Context, key domain.CommitmentKey, revealedAt time.Time) error
	ListExpired(ctx context.Context, position uint64, limit int) ([]domain.Commitment, error)
	WasRevealed(ctx context.Context, handle string) (bool, error)
}

type ConfigRepository interface {
	LoadConfig(ctx context.Context) (domain.CoordinatorConfig, error)
	SaveConfig(ctx context.Context, cfg domain.CoordinatorConfig) error
}

type AuthorizationRepository interface {
	IsAuthorized(ctx context.Context, caller common.Address) (bool, error)
	SetAuthorized(ctx context.Context, caller common.Address, authorized bool, at time.Time) error
	ListAuthorized(ctx context.Context) ([]vo.AuthorizedCaller, error)
}

type OracleClient interface {
	SubmitRequest(ctx context.Context, request domain.OracleRequest) (string, error)
}

type ChainReader interface {
	CurrentPosition(ctx context.Context) (uint64, error)
	Entropy(ctx context.Context) (domain.Entropy, error)
}

type MetricsRecorder interface {
	RequestObserved(result string)
	FulfillmentObserved(result string)
	RevealObserved(kind string, batchSize uint32)
	ForceRevealObserved(result string)
}

type nopMetrics struct{}

func (nopMetrics) RequestObserved(string)        {}
func (nopMetrics) FulfillmentObserved(string)    {}
func (nopMetrics) RevealObserved(string, uint32) {}
func (nopMetrics) ForceRevealObserved(string)    {}

// RequestCoordinator owns the commitment lifecycle: request, fulfill, reveal and the expiry
// fallback. Every mutation runs under one lock, so the ledger has a single writer per process.
type RequestCoordinator struct {
	mu sync.Mutex

	commitments    CommitmentRepository
	configs        ConfigRepository
	authorizations AuthorizationRepository
	oracle         OracleClient
	chain          ChainReader
	expansion      *SeedExpansionEngine
	metrics        MetricsRecorder
	logger         *slog.Logger
	now            func() time.Time
}

func NewRequestCoordinator(
	commitments CommitmentRepository,
	configs ConfigRepository,
	authorizations AuthorizationRepository,
	oracle OracleClient,
	chain ChainReader,
	expansion *SeedExpansionEngine,
	metrics MetricsRecorder,
	logger *slog.Logger,
) *RequestCoordinator {
	if metrics == nil {
		metrics = nopMetrics{}
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &RequestCoordinator{
		commitments:    commitments,
		configs:        configs,
		authorizations: authorizations,
		oracle:         oracle,
		chain:          chain,
		expansion:      expansion,
		metrics:        metrics,
		logger:         logger,
		now:            func() time.Time { return time.Now().UTC() },
	}
}

func validatePair(caller, requester common.Address) error {
	if caller == (common.Address{}) || requester == (common.Address{}) {
		return vo.ErrInvalidAddress
	}
	return nil
}

func copyWords(words []*big.Int) []*big.Int {
	copied := make([]*big.Int, len(words))
	for i, word := range words {
		copied[i] = new(big.Int).Set(word)
	}
	return copied
}
