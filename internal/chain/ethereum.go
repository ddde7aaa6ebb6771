package chain

import (
	"context"
	"errors"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/ethclient"

	"github.com/joshuarp/vrf-coordinator/internal/domain"
)

// HeaderReader is the part of ethclient.Client the head reader needs.
type HeaderReader interface {
	BlockNumber(ctx context.Context) (uint64, error)
	HeaderByNumber(ctx context.Context, number *big.Int) (*types.Header, error)
}

// EthereumHead anchors commitments to block heights of an EVM chain.
type EthereumHead struct {
	client HeaderReader
	closer func()
}

func DialEthereum(ctx context.Context, rpcURL string) (*EthereumHead, error) {
	if rpcURL == "" {
		return nil, errors.New("chain: rpc url is required")
	}

	client, err := ethclient.DialContext(ctx, rpcURL)
	if err != nil {
		return nil, fmt.Errorf("chain: failed to dial %s: %w", rpcURL, err)
	}

	return &EthereumHead{client: client, closer: client.Close}, nil
}

func NewEthereumHead(client HeaderReader) *EthereumHead {
	return &EthereumHead{client: client}
}

func (h *EthereumHead) CurrentPosition(ctx context.Context) (uint64, error) {
	height, err := h.client.BlockNumber(ctx)
	if err != nil {
		return 0, fmt.Errorf("chain: failed to read block number: %w", err)
	}
	return height, nil
}

// Entropy reads the latest header. Post-merge chains carry prevrandao in MixDigest.
func (h *EthereumHead) Entropy(ctx context.Context) (domain.Entropy, error) {
	header, err := h.client.HeaderByNumber(ctx, nil)
	if err != nil {
		return domain.Entropy{}, fmt.Errorf("chain: failed to read latest header: %w", err)
	}
	if header == nil || header.Number == nil {
		return domain.Entropy{}, errors.New("chain: latest header is empty")
	}

	return domain.Entropy{
		Height:     header.Number.Uint64(),
		Timestamp:  header.Time,
		BlockHash:  header.Hash(),
		Randomness: header.MixDigest,
	}, nil
}

func (h *EthereumHead) Close() {
	if h.closer != nil {
		h.closer()
	}
}
