package handlers

import (
	"context"
	"log/slog"

	"github.com/gofiber/fiber/v3"

	"github.com/joshuarp/vrf-coordinator/internal/domain/vo"
)

type RandomnessRequestService interface {
	Request(ctx context.Context, input vo.RequestInput) (vo.RequestReceipt, error)
}

type RandomnessRequestHandler struct {
	service RandomnessRequestService
	logger  *slog.Logger

	rateLimit   fiber.Handler
	idempotency fiber.Handler
}

type randomnessRequest struct {
	Requester string `json:"requester"`
	Quantity  uint32 `json:"quantity"`
	MaxRarity uint8  `json:"max_rarity"`
	Payment   string `json:"payment"`
}

func NewRandomnessRequestHandler(service RandomnessRequestService, logger *slog.Logger) *RandomnessRequestHandler {
	return &RandomnessRequestHandler{service: service, logger: logger}
}

// WithGuards puts the rate limit and the idempotency middleware in front of POST /requests only, so
// the reveal route under the same prefix is not throttled.
func (h *RandomnessRequestHandler) WithGuards(rateLimit, idempotency fiber.Handler) *RandomnessRequestHandler {
	h.rateLimit = rateLimit
	h.idempotency = idempotency
	return h
}

func (h *RandomnessRequestHandler) Register(router fiber.Router) {
	if h.rateLimit != nil && h.idempotency != nil {
		router.Post("/requests", h.rateLimit, h.idempotency, h.Handle)
		return
	}
	router.Post("/requests", h.Handle)
}

// Handle opens a commitment on behalf of the authenticated caller. The payment is the amount the
// caller forwards with the request, in wei.
func (h *RandomnessRequestHandler) Handle(c fiber.Ctx) error {
	caller, ok := authenticatedAddress(c)
	if !ok {
		return unauthenticated(c)
	}

	var requestBody randomnessRequest
	if err := c.Bind().JSON(&requestBody); err != nil {
		return badRequest(c, "invalid request body")
	}

	requester, err := parseAddress("requester", requestBody.Requester)
	if err != nil {
		return badRequest(c, err.Error())
	}

	payment, err := parseUint256("payment", requestBody.Payment)
	if err != nil {
		return badRequest(c, err.Error())
	}

	receipt, err := h.service.Request(c.Context(), vo.RequestInput{
		Caller:    caller,
		Requester: requester,
		Quantity:  requestBody.Quantity,
		MaxRarity: requestBody.MaxRarity,
		Payment:   payment,
	})
	if err != nil {
		return writeServiceError(c, h.logger, "failed to request randomness", err,
			"caller", caller.Hex(), "requester", requester.Hex())
	}

	return c.Status(fiber.StatusCreated).JSON(receipt)
}
