package handlers

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/math"
	"github.com/gofiber/fiber/v3"

	"github.com/joshuarp/vrf-coordinator/internal/middlewares"
)

func parseAddress(field, raw string) (common.Address, error) {
	value := strings.TrimSpace(raw)
	if !common.IsHexAddress(value) {
		return common.Address{}, fmt.Errorf("%s must be a hex address", field)
	}
	return common.HexToAddress(value), nil
}

// authenticatedAddress is the address a minter or admin client acts as: its token subject.
func authenticatedAddress(c fiber.Ctx) (common.Address, bool) {
	clientID := middlewares.ClientIDFromContext(c)
	if !common.IsHexAddress(clientID) {
		return common.Address{}, false
	}
	return common.HexToAddress(clientID), true
}

// parseUint256 accepts decimal or 0x-prefixed hex, matching how amounts and random words travel
// on chain.
func parseUint256(field, raw string) (*big.Int, error) {
	value := strings.TrimSpace(raw)
	if value == "" {
		return nil, fmt.Errorf("%s is required", field)
	}
	parsed, ok := math.ParseBig256(value)
	if !ok || parsed.Sign() < 0 {
		return nil, fmt.Errorf("%s must be an unsigned 256-bit integer", field)
	}
	return parsed, nil
}

func unauthenticated(c fiber.Ctx) error {
	return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
		"error": "missing authenticated client",
	})
}
