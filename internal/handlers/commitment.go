package handlers

import (
	"context"
	"log/slog"

	"github.com/ethereum/go-ethereum/common"
	"github.com/gofiber/fiber/v3"

	"github.com/joshuarp/vrf-coordinator/internal/domain/vo"
)

type CommitmentService interface {
	Status(ctx context.Context, caller, requester common.Address) (vo.CommitmentStatus, error)
	ForceReveal(ctx context.Context, actor, caller, requester common.Address) (vo.ForceRevealReceipt, error)
}

// CommitmentHandler serves the public view of a commitment and the permissionless recovery of an
// expired one.
type CommitmentHandler struct {
	service   CommitmentService
	logger    *slog.Logger
	rateLimit fiber.Handler
}

func NewCommitmentHandler(service CommitmentService, logger *slog.Logger) *CommitmentHandler {
	return &CommitmentHandler{service: service, logger: logger}
}

func (h *CommitmentHandler) WithRateLimit(rateLimit fiber.Handler) *CommitmentHandler {
	h.rateLimit = rateLimit
	return h
}

func (h *CommitmentHandler) Register(router fiber.Router) {
	router.Get("/commitments/:caller/:requester", h.Status)
	if h.rateLimit != nil {
		router.Post("/commitments/:caller/:requester/force-reveal", h.rateLimit, h.ForceReveal)
		return
	}
	router.Post("/commitments/:caller/:requester/force-reveal", h.ForceReveal)
}

func (h *CommitmentHandler) Status(c fiber.Ctx) error {
	caller, requester, err := commitmentKeyParams(c)
	if err != nil {
		return badRequest(c, err.Error())
	}

	status, err := h.service.Status(c.Context(), caller, requester)
	if err != nil {
		return writeServiceError(c, h.logger, "failed to load commitment", err,
			"caller", caller.Hex(), "requester", requester.Hex())
	}

	return c.Status(fiber.StatusOK).JSON(status)
}

func (h *CommitmentHandler) ForceReveal(c fiber.Ctx) error {
	caller, requester, err := commitmentKeyParams(c)
	if err != nil {
		return badRequest(c, err.Error())
	}

	// Anyone may recover an expired commitment; an anonymous actor is recorded as the zero address.
	actor, _ := authenticatedAddress(c)

	receipt, err := h.service.ForceReveal(c.Context(), actor, caller, requester)
	if err != nil {
		return writeServiceError(c, h.logger, "failed to force reveal", err,
			"caller", caller.Hex(), "requester", requester.Hex())
	}

	return c.Status(fiber.StatusOK).JSON(receipt)
}

func commitmentKeyParams(c fiber.Ctx) (common.Address, common.Address, error) {
	caller, err := parseAddress("caller", c.Params("caller"))
	if err != nil {
		return common.Address{}, common.Address{}, err
	}
	requester, err := parseAddress("requester", c.Params("requester"))
	if err != nil {
		return common.Address{}, common.Address{}, err
	}
	return caller, requester, nil
}
