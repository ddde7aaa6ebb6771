package services

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/math"
	"github.com/ethereum/go-ethereum/crypto"

	"github.com/joshuarp/vrf-coordinator/internal/domain"
	"github.com/joshuarp/vrf-coordinator/internal/domain/vo"
)

// RollDenominator is the modulus of a rarity roll; tier bounds are expressed against it.
const RollDenominator = 10000

var ErrInvalidRarityTable = errors.New("invalid rarity table")

// RarityTier is one row of a cumulative rarity table. A roll below Bound (and at or above the
// previous tier's Bound) lands in this tier.
type RarityTier struct {
	Bound    uint32
	MinPower uint32
	MaxPower uint32
}

type RarityTable []RarityTier

// DefaultRarityTable is the 50 / 25 / 15 / 7.5 / 2.5 percent split over five tiers.
func DefaultRarityTable() RarityTable {
	return RarityTable{
		{Bound: 5000, MinPower: 15, MaxPower: 50},
		{Bound: 7500, MinPower: 50, MaxPower: 100},
		{Bound: 9000, MinPower: 100, MaxPower: 150},
		{Bound: 9750, MinPower: 150, MaxPower: 200},
		{Bound: 10000, MinPower: 200, MaxPower: 255},
	}
}

func (t RarityTable) Validate() error {
	if len(t) == 0 || len(t) > 255 {
		return fmt.Errorf("%w: need between 1 and 255 tiers, got %d", ErrInvalidRarityTable, len(t))
	}

	var previous uint32
	for i, tier := range t {
		if tier.Bound <= previous {
			return fmt.Errorf("%w: tier %d bound %d is not above %d", ErrInvalidRarityTable, i+1, tier.Bound, previous)
		}
		if tier.MinPower > tier.MaxPower {
			return fmt.Errorf("%w: tier %d power range %d-%d is inverted", ErrInvalidRarityTable, i+1, tier.MinPower, tier.MaxPower)
		}
		previous = tier.Bound
	}

	if previous != RollDenominator {
		return fmt.Errorf("%w: last bound must be %d, got %d", ErrInvalidRarityTable, RollDenominator, previous)
	}

	return nil
}

// SeedExpansionEngine turns one random word into any number of independent per-item outcomes.
// It is a pure function of its inputs.
type SeedExpansionEngine struct {
	table RarityTable
}

func NewSeedExpansionEngine(table RarityTable) (*SeedExpansionEngine, error) {
	if err := table.Validate(); err != nil {
		return nil, err
	}
	return &SeedExpansionEngine{table: table}, nil
}

// ItemSeed is keccak256(uint256(base) ‖ uint256(index)). Distinct indices give independent seeds.
func ItemSeed(base *big.Int, index uint32) common.Hash {
	word := math.U256Bytes(new(big.Int).Set(base))
	position := math.U256Bytes(new(big.Int).SetUint64(uint64(index)))
	return crypto.Keccak256Hash(word, position)
}

// Outcome derives the attributes of one item. The low bits of the seed drive the rarity roll and the
// upper 128 bits drive power, so the two draws do not share bits.
func (e *SeedExpansionEngine) Outcome(seed common.Hash, index uint32, params domain.OutcomeParams) domain.Outcome {
	value := seed.Big()

	roll := new(big.Int).Mod(value, big.NewInt(RollDenominator)).Uint64()
	tier := len(e.table)
	for i, candidate := range e.table {
		if roll < uint64(candidate.Bound) {
			tier = i + 1
			break
		}
	}

	if params.MaxRarity > 0 && tier > int(params.MaxRarity) {
		tier = int(params.MaxRarity)
	}

	band := e.table[tier-1]
	span := new(big.Int).SetUint64(uint64(band.MaxPower-band.MinPower) + 1)
	offset := new(big.Int).Mod(new(big.Int).Rsh(value, 128), span).Uint64()

	return domain.Outcome{
		Index:  index,
		Seed:   seed,
		Rarity: uint8(tier),
		Power:  band.MinPower + uint32(offset),
	}
}

// Expand derives quantity outcomes from words[0]. Further words are kept on the commitment but do
// not feed the expansion.
func (e *SeedExpansionEngine) Expand(words []*big.Int, quantity uint32, params domain.OutcomeParams) ([]domain.Outcome, error) {
	if len(words) == 0 || words[0] == nil {
		return nil, vo.ErrEmptyRandomWords
	}
	if quantity == 0 {
		return nil, vo.ErrInvalidQuantity
	}

	base := words[0]
	outcomes := make([]domain.Outcome, quantity)
	for i := uint32(0); i < quantity; i++ {
		outcomes[i] = e.Outcome(ItemSeed(base, i), i, params)
	}

	return outcomes, nil
}
