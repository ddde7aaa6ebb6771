package handlers

import (
	"context"
	"fmt"
	"log/slog"
	"math/big"
	"strings"

	"github.com/gofiber/fiber/v3"

	"github.com/joshuarp/vrf-coordinator/internal/domain/vo"
)

type FulfillmentService interface {
	Fulfill(ctx context.Context, handle string, words []*big.Int) (vo.FulfillmentResult, error)
}

type OracleFulfillmentHandler struct {
	service FulfillmentService
	logger  *slog.Logger
}

type fulfillmentRequest struct {
	RequestHandle string   `json:"request_handle"`
	RandomWords   []string `json:"random_words"`
}

func NewOracleFulfillmentHandler(service FulfillmentService, logger *slog.Logger) *OracleFulfillmentHandler {
	return &OracleFulfillmentHandler{service: service, logger: logger}
}

func (h *OracleFulfillmentHandler) Register(router fiber.Router) {
	router.Post("/oracle/fulfillments", h.Handle)
}

// Handle is the oracle callback. A repeated delivery for an already fulfilled handle answers 200 with
// duplicate set so the oracle stops retrying.
func (h *OracleFulfillmentHandler) Handle(c fiber.Ctx) error {
	var requestBody fulfillmentRequest
	if err := c.Bind().JSON(&requestBody); err != nil {
		return badRequest(c, "invalid request body")
	}

	handle := strings.TrimSpace(requestBody.RequestHandle)
	if handle == "" {
		return badRequest(c, "request_handle is required")
	}

	words := make([]*big.Int, 0, len(requestBody.RandomWords))
	for i, raw := range requestBody.RandomWords {
		word, err := parseUint256(fmt.Sprintf("random_words[%d]", i), raw)
		if err != nil {
			return badRequest(c, err.Error())
		}
		words = append(words, word)
	}

	result, err := h.service.Fulfill(c.Context(), handle, words)
	if err != nil {
		return writeServiceError(c, h.logger, "failed to fulfill request", err, "request_handle", handle)
	}

	return c.Status(fiber.StatusOK).JSON(result)
}
