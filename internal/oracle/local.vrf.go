package oracle

import (
	"context"
	"crypto/ecdsa"
	"encoding/binary"
	"errors"
	"fmt"
	"log/slog"
	"math/big"
	"sync"
	"time"

	"github.com/ethereum/go-ethereum/common/math"
	"github.com/ethereum/go-ethereum/crypto"

	"github.com/joshuarp/vrf-coordinator/internal/domain"
	"github.com/joshuarp/vrf-coordinator/internal/shared/uid"
)

type PositionReader interface {
	CurrentPosition(ctx context.Context) (uint64, error)
}

// PendingSource lists requested commitments that are still waiting for randomness.
type PendingSource interface {
	ListPending(ctx context.Context, limit int) ([]domain.Commitment, error)
}

type pendingRequest struct {
	request domain.OracleRequest
	handle  string
}

// LocalVRF is an in-process oracle keyed by a secp256k1 key. Its output for a request is the hash
// of a deterministic signature over (handle, anchor), so anyone holding the public key can check a
// delivery with VerifyProof.
type LocalVRF struct {
	key        *ecdsa.PrivateKey
	ids        uid.UIDGenerator
	chain      PositionReader
	logger     *slog.Logger
	deliveries chan Fulfillment

	mu      sync.Mutex
	pending map[string]pendingRequest
}

func NewLocalVRF(key *ecdsa.PrivateKey, ids uid.UIDGenerator, chain PositionReader, buffer int, logger *slog.Logger) (*LocalVRF, error) {
	if key == nil {
		return nil, errors.New("oracle: signing key is required")
	}
	if buffer <= 0 {
		buffer = 64
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &LocalVRF{
		key:        key,
		ids:        ids,
		chain:      chain,
		logger:     logger,
		deliveries: make(chan Fulfillment, buffer),
		pending:    make(map[string]pendingRequest),
	}, nil
}

// LoadKey parses a hex private key, or generates an ephemeral one when hexKey is empty.
func LoadKey(hexKey string) (*ecdsa.PrivateKey, error) {
	if hexKey == "" {
		return crypto.GenerateKey()
	}
	key, err := crypto.HexToECDSA(hexKey)
	if err != nil {
		return nil, fmt.Errorf("oracle: invalid signing key: %w", err)
	}
	return key, nil
}

func (o *LocalVRF) PublicKey() []byte {
	return crypto.FromECDSAPub(&o.key.PublicKey)
}

func (o *LocalVRF) SubmitRequest(ctx context.Context, request domain.OracleRequest) (string, error) {
	if request.NumWords == 0 {
		return "", errors.New("oracle: at least one word must be requested")
	}

	handle, err := o.ids.Generate(ctx)
	if err != nil {
		return "", fmt.Errorf("oracle: failed to assign request handle: %w", err)
	}

	o.mu.Lock()
	o.pending[handle] = pendingRequest{request: request, handle: handle}
	o.mu.Unlock()

	return handle, nil
}

// Hydrate re-registers commitments that were waiting when the process last stopped. Answers depend
// only on handle and anchor, so a restored request yields the words the first run would have.
// Handles already queued are left alone.
func (o *LocalVRF) Hydrate(ctx context.Context, source PendingSource, confirmations uint16, limit int) (int, error) {
	commitments, err := source.ListPending(ctx, limit)
	if err != nil {
		return 0, fmt.Errorf("oracle: failed to list pending commitments: %w", err)
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	restored := 0
	for _, commitment := range commitments {
		if commitment.RequestHandle == "" || commitment.NumWords == 0 {
			continue
		}
		if _, queued := o.pending[commitment.RequestHandle]; queued {
			continue
		}

		o.pending[commitment.RequestHandle] = pendingRequest{
			handle: commitment.RequestHandle,
			request: domain.OracleRequest{
				NumWords:         commitment.NumWords,
				CallbackGasLimit: commitment.CallbackGasLimit,
				Confirmations:    confirmations,
				Anchor:           commitment.Anchor,
			},
		}
		restored++
	}

	return restored, nil
}

func (o *LocalVRF) Deliveries() <-chan Fulfillment {
	return o.deliveries
}

func (o *LocalVRF) Pending() int {
	o.mu.Lock()
	defer o.mu.Unlock()
	return len(o.pending)
}

// Tick answers every pending request whose confirmations have passed and returns how many were
// delivered.
func (o *LocalVRF) Tick(ctx context.Context) (int, error) {
	position, err := o.chain.CurrentPosition(ctx)
	if err != nil {
		return 0, fmt.Errorf("oracle: failed to read chain position: %w", err)
	}

	o.mu.Lock()
	ready := make([]pendingRequest, 0)
	for handle, pending := range o.pending {
		if position >= pending.request.Anchor+uint64(pending.request.Confirmations) {
			ready = append(ready, pending)
			delete(o.pending, handle)
		}
	}
	o.mu.Unlock()

	delivered := 0
	for i, pending := range ready {
		fulfillment, err := o.Answer(pending.handle, pending.request)
		if err != nil {
			return delivered, err
		}

		select {
		case o.deliveries <- fulfillment:
			delivered++
		case <-ctx.Done():
			o.requeue(ready[i:])
			return delivered, ctx.Err()
		}
	}

	return delivered, nil
}

func (o *LocalVRF) requeue(requests []pendingRequest) {
	o.mu.Lock()
	defer o.mu.Unlock()
	for _, pending := range requests {
		o.pending[pending.handle] = pending
	}
}

// Run ticks every interval until ctx is done.
func (o *LocalVRF) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if _, err := o.Tick(ctx); err != nil && !errors.Is(err, context.Canceled) {
				o.logger.ErrorContext(ctx, "local oracle tick failed", slog.String("error", err.Error()))
			}
		}
	}
}

// Answer computes the fulfillment for a request without delivering it.
func (o *LocalVRF) Answer(handle string, request domain.OracleRequest) (Fulfillment, error) {
	proof, err := crypto.Sign(proofMessage(handle, request.Anchor), o.key)
	if err != nil {
		return Fulfillment{}, fmt.Errorf("oracle: failed to sign request %s: %w", handle, err)
	}

	output := crypto.Keccak256(proof)
	words := make([]*big.Int, request.NumWords)
	for i := range words {
		index := math.U256Bytes(big.NewInt(int64(i)))
		words[i] = new(big.Int).SetBytes(crypto.Keccak256(output, index))
	}

	return Fulfillment{Handle: handle, RandomWords: words, Proof: proof}, nil
}

// VerifyProof checks that proof is the oracle key's signature for (handle, anchor).
func VerifyProof(publicKey []byte, handle string, anchor uint64, proof []byte) bool {
	if len(proof) != crypto.SignatureLength {
		return false
	}
	return crypto.VerifySignature(publicKey, proofMessage(handle, anchor), proof[:crypto.RecoveryIDOffset])
}

func proofMessage(handle string, anchor uint64) []byte {
	var position [8]byte
	binary.BigEndian.PutUint64(position[:], anchor)
	return crypto.Keccak256([]byte(handle), position[:])
}
