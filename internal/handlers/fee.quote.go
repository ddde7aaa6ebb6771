package handlers

import (
	"context"
	"log/slog"
	"strconv"

	"github.com/gofiber/fiber/v3"

	"github.com/joshuarp/vrf-coordinator/internal/domain/vo"
)

type FeeQuoteService interface {
	Quote(ctx context.Context, batchSize uint32) (vo.FeeQuote, error)
}

type FeeQuoteHandler struct {
	service FeeQuoteService
	logger  *slog.Logger
}

func NewFeeQuoteHandler(service FeeQuoteService, logger *slog.Logger) *FeeQuoteHandler {
	return &FeeQuoteHandler{service: service, logger: logger}
}

func (h *FeeQuoteHandler) Register(router fiber.Router) {
	router.Get("/quotes", h.Handle)
}

func (h *FeeQuoteHandler) Handle(c fiber.Ctx) error {
	batchSize, err := strconv.ParseUint(c.Query("batch_size"), 10, 32)
	if err != nil || batchSize == 0 {
		return badRequest(c, "batch_size must be a positive integer")
	}

	quote, err := h.service.Quote(c.Context(), uint32(batchSize))
	if err != nil {
		return writeServiceError(c, h.logger, "failed to quote fee", err, "batch_size", batchSize)
	}

	return c.Status(fiber.StatusOK).JSON(quote)
}
