package handlers

import (
	"context"
	"log/slog"

	"github.com/ethereum/go-ethereum/common"
	"github.com/gofiber/fiber/v3"

	"github.com/joshuarp/vrf-coordinator/internal/domain/vo"
)

type RevealService interface {
	Reveal(ctx context.Context, caller, requester common.Address) (vo.RevealResult, error)
}

type RevealHandler struct {
	service RevealService
	logger  *slog.Logger
}

func NewRevealHandler(service RevealService, logger *slog.Logger) *RevealHandler {
	return &RevealHandler{service: service, logger: logger}
}

func (h *RevealHandler) Register(router fiber.Router) {
	router.Post("/requests/:requester/reveal", h.Handle)
}

func (h *RevealHandler) Handle(c fiber.Ctx) error {
	caller, ok := authenticatedAddress(c)
	if !ok {
		return unauthenticated(c)
	}

	requester, err := parseAddress("requester", c.Params("requester"))
	if err != nil {
		return badRequest(c, err.Error())
	}

	result, err := h.service.Reveal(c.Context(), caller, requester)
	if err != nil {
		return writeServiceError(c, h.logger, "failed to reveal commitment", err,
			"caller", caller.Hex(), "requester", requester.Hex())
	}

	return c.Status(fiber.StatusOK).JSON(result)
}
