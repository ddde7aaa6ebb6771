package handlers

import (
	"context"
	"log/slog"

	"github.com/ethereum/go-ethereum/common"
	"github.com/gofiber/fiber/v3"

	"github.com/joshuarp/vrf-coordinator/internal/domain/vo"
)

type AuthorizationService interface {
	Authorize(ctx context.Context, actor, caller common.Address, authorized bool) (vo.AuthorizedCaller, error)
	ListAuthorized(ctx context.Context) ([]vo.AuthorizedCaller, error)
}

type AdminAuthorizationHandler struct {
	service AuthorizationService
	logger  *slog.Logger
}

type authorizationRequest struct {
	Authorized *bool `json:"authorized"`
}

func NewAdminAuthorizationHandler(service AuthorizationService, logger *slog.Logger) *AdminAuthorizationHandler {
	return &AdminAuthorizationHandler{service: service, logger: logger}
}

func (h *AdminAuthorizationHandler) Register(router fiber.Router) {
	router.Get("/admin/authorizations", h.List)
	router.Put("/admin/authorizations/:caller", h.Authorize)
}

func (h *AdminAuthorizationHandler) List(c fiber.Ctx) error {
	callers, err := h.service.ListAuthorized(c.Context())
	if err != nil {
		return writeServiceError(c, h.logger, "failed to list authorized callers", err)
	}
	if callers == nil {
		callers = []vo.AuthorizedCaller{}
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"callers": callers})
}

func (h *AdminAuthorizationHandler) Authorize(c fiber.Ctx) error {
	actor, ok := authenticatedAddress(c)
	if !ok {
		return unauthenticated(c)
	}

	caller, err := parseAddress("caller", c.Params("caller"))
	if err != nil {
		return badRequest(c, err.Error())
	}

	var requestBody authorizationRequest
	if err := c.Bind().JSON(&requestBody); err != nil {
		return badRequest(c, "invalid request body")
	}
	if requestBody.Authorized == nil {
		return badRequest(c, "authorized is required")
	}

	result, err := h.service.Authorize(c.Context(), actor, caller, *requestBody.Authorized)
	if err != nil {
		return writeServiceError(c, h.logger, "failed to change caller authorization", err, "caller", caller.Hex())
	}

	return c.Status(fiber.StatusOK).JSON(result)
}
