package repository

import (
	"context"
	"math/big"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/ethereum/go-ethereum/common"

	"github.com/joshuarp/vrf-coordinator/internal/domain"
	"github.com/joshuarp/vrf-coordinator/internal/domain/vo"
)

// ArchivedCommitment is a revealed commitment kept for audit.
type ArchivedCommitment struct {
	domain.Commitment
	RevealedAt time.Time
}

// MemoryLedger is an in-process store for commitments, authorizations, coordinator configuration
// and API clients. It serves single-instance deployments and tests.
type MemoryLedger struct {
	mu sync.RWMutex

	commitments map[domain.CommitmentKey]domain.Commitment
	handles     map[string]domain.CommitmentKey
	archive     []ArchivedCommitment
	revealed    map[string]struct{}
	authorized  map[common.Address]bool
	config      domain.CoordinatorConfig
	clients     map[string]domain.APIClient
}

func NewMemoryLedger(clients ...domain.APIClient) *MemoryLedger {
	ledger := &MemoryLedger{
		commitments: make(map[domain.CommitmentKey]domain.Commitment),
		handles:     make(map[string]domain.CommitmentKey),
		revealed:    make(map[string]struct{}),
		authorized:  make(map[common.Address]bool),
		clients:     make(map[string]domain.APIClient),
	}
	for _, client := range clients {
		ledger.clients[strings.ToLower(client.ClientID)] = client
	}
	return ledger
}

func (l *MemoryLedger) GetCommitment(_ context.Context, key domain.CommitmentKey) (domain.Commitment, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	commitment, ok := l.commitments[key]
	if !ok {
		return domain.Commitment{}, vo.ErrCommitmentNotFound
	}
	return cloneCommitment(commitment), nil
}

func (l *MemoryLedger) GetCommitmentByHandle(_ context.Context, handle string) (domain.Commitment, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	key, ok := l.handles[handle]
	if !ok {
		return domain.Commitment{}, vo.ErrUnknownRequest
	}
	return cloneCommitment(l.commitments[key]), nil
}

// CreateCommitment holds the ledger lock across issue, so the slot check, the oracle request and the
// insert are observed as one step.
func (l *MemoryLedger) CreateCommitment(ctx context.Context, commitment domain.Commitment, issue domain.RequestIssuer) (domain.Commitment, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	key := commitment.Key()
	if _, exists := l.commitments[key]; exists {
		return domain.Commitment{}, vo.ErrAlreadyPending
	}

	handle, err := issue(ctx)
	if err != nil {
		return domain.Commitment{}, err
	}

	commitment.RequestHandle = handle
	commitment.State = domain.CommitmentRequested
	l.commitments[key] = cloneCommitment(commitment)
	l.handles[handle] = key

	return commitment, nil
}

func (l *MemoryLedger) MarkFulfilled(_ context.Context, handle string, words []*big.Int, state domain.CommitmentState, at time.Time) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	key, ok := l.handles[handle]
	if !ok {
		return false, nil
	}

	commitment := l.commitments[key]
	if commitment.State != domain.CommitmentRequested {
		return false, nil
	}

	commitment.State = state
	commitment.RandomWords = cloneWords(words)
	commitment.FulfilledAt = at
	l.commitments[key] = commitment

	return true, nil
}

func (l *MemoryLedger) ConsumeCommitment(_ context.Context, key domain.CommitmentKey, revealedAt time.Time) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	commitment, ok := l.commitments[key]
	if !ok {
		return vo.ErrCommitmentNotFound
	}

	l.archive = append(l.archive, ArchivedCommitment{Commitment: commitment, RevealedAt: revealedAt})
	delete(l.commitments, key)
	delete(l.handles, commitment.RequestHandle)
	if commitment.RequestHandle != "" {
		l.revealed[commitment.RequestHandle] = struct{}{}
	}

	return nil
}

func (l *MemoryLedger) ListExpired(_ context.Context, position uint64, limit int) ([]domain.Commitment, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	expired := make([]domain.Commitment, 0)
	for _, commitment := range l.commitments {
		if commitment.State != domain.CommitmentRequested {
			continue
		}
		if commitment.Window.Closes(commitment.Anchor) < position {
			expired = append(expired, cloneCommitment(commitment))
		}
	}

	sort.Slice(expired, func(i, j int) bool { return expired[i].Anchor < expired[j].Anchor })
	if limit > 0 && len(expired) > limit {
		expired = expired[:limit]
	}

	return expired, nil
}

func (l *MemoryLedger) ListPending(_ context.Context, limit int) ([]domain.Commitment, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	pending := make([]domain.Commitment, 0)
	for _, commitment := range l.commitments {
		if commitment.State == domain.CommitmentRequested && commitment.RequestHandle != "" {
			pending = append(pending, cloneCommitment(commitment))
		}
	}

	sort.Slice(pending, func(i, j int) bool { return pending[i].Anchor < pending[j].Anchor })
	if limit > 0 && len(pending) > limit {
		pending = pending[:limit]
	}

	return pending, nil
}

func (l *MemoryLedger) WasRevealed(_ context.Context, handle string) (bool, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	_, ok := l.revealed[handle]
	return ok, nil
}

// Archive returns the revealed commitments in reveal order.
func (l *MemoryLedger) Archive() []ArchivedCommitment {
	l.mu.RLock()
	defer l.mu.RUnlock()

	archive := make([]ArchivedCommitment, len(l.archive))
	copy(archive, l.archive)
	return archive
}

func (l *MemoryLedger) IsAuthorized(_ context.Context, caller common.Address) (bool, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return l.authorized[caller], nil
}

func (l *MemoryLedger) SetAuthorized(_ context.Context, caller common.Address, authorized bool, _ time.Time) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.authorized[caller] = authorized
	return nil
}

func (l *MemoryLedger) ListAuthorized(_ context.Context) ([]vo.AuthorizedCaller, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	callers := make([]vo.AuthorizedCaller, 0, len(l.authorized))
	for caller, authorized := range l.authorized {
		if authorized {
			callers = append(callers, vo.AuthorizedCaller{Caller: caller, Authorized: true})
		}
	}

	sort.Slice(callers, func(i, j int) bool {
		return strings.ToLower(callers[i].Caller.Hex()) < strings.ToLower(callers[j].Caller.Hex())
	})
	return callers, nil
}

func (l *MemoryLedger) LoadConfig(_ context.Context) (domain.CoordinatorConfig, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return cloneConfig(l.config), nil
}

func (l *MemoryLedger) SaveConfig(_ context.Context, cfg domain.CoordinatorConfig) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.config = cloneConfig(cfg)
	return nil
}

func (l *MemoryLedger) GetAPIClient(_ context.Context, clientID string) (domain.APIClient, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	client, ok := l.clients[strings.ToLower(strings.TrimSpace(clientID))]
	if !ok {
		return domain.APIClient{}, vo.ErrClientNotFound
	}
	return client, nil
}

func cloneCommitment(commitment domain.Commitment) domain.Commitment {
	if commitment.Payment != nil {
		commitment.Payment = new(big.Int).Set(commitment.Payment)
	}
	commitment.RandomWords = cloneWords(commitment.RandomWords)
	return commitment
}

func cloneWords(words []*big.Int) []*big.Int {
	if words == nil {
		return nil
	}
	cloned := make([]*big.Int, len(words))
	for i, word := range words {
		cloned[i] = new(big.Int).Set(word)
	}
	return cloned
}

func cloneConfig(cfg domain.CoordinatorConfig) domain.CoordinatorConfig {
	if cfg.Fee != nil {
		fee := *cfg.Fee
		fee.OracleBasePrice = cloneAmount(fee.OracleBasePrice)
		fee.PlatformMarkup = cloneAmount(fee.PlatformMarkup)
		fee.CallbackGasPrice = cloneAmount(fee.CallbackGasPrice)
		cfg.Fee = &fee
	}
	if cfg.Gas != nil {
		gas := *cfg.Gas
		cfg.Gas = &gas
	}
	if cfg.Window != nil {
		window := *cfg.Window
		cfg.Window = &window
	}
	if cfg.Oracle != nil {
		oracle := *cfg.Oracle
		cfg.Oracle = &oracle
	}
	return cfg
}

func cloneAmount(value *big.Int) *big.Int {
	if value == nil {
		return nil
	}
	return new(big.Int).Set(value)
}
