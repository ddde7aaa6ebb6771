package handlers

import (
	"context"
	"log/slog"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/gofiber/fiber/v3"

	"github.com/joshuarp/vrf-coordinator/internal/domain"
	"github.com/joshuarp/vrf-coordinator/internal/domain/vo"
)

type CoordinatorConfigService interface {
	Config(ctx context.Context) (domain.CoordinatorConfig, error)
	SetFeeParameters(ctx context.Context, actor common.Address, input vo.FeeParametersInput) (domain.CoordinatorConfig, error)
	SetBillingMode(ctx context.Context, actor common.Address, mode domain.BillingMode) (domain.CoordinatorConfig, error)
	SetCallbackGasPrice(ctx context.Context, actor common.Address, price *big.Int) (domain.CoordinatorConfig, error)
	SetCallbackGasPolicy(ctx context.Context, actor common.Address, input vo.CallbackGasPolicyInput) (domain.CoordinatorConfig, error)
	SetRevealWindow(ctx context.Context, actor common.Address, input vo.RevealWindowInput) (domain.CoordinatorConfig, error)
	SetBatchLimit(ctx context.Context, actor common.Address, limit uint32) (domain.CoordinatorConfig, error)
	SetOracleRequestPolicy(ctx context.Context, actor common.Address, input vo.OracleRequestPolicyInput) (domain.CoordinatorConfig, error)
	TransferAdmin(ctx context.Context, actor, newAdmin common.Address) (domain.CoordinatorConfig, error)
}

// AdminConfigHandler exposes the administrator setters. Whether the authenticated address is the
// current administrator is decided by the service, not by the route.
type AdminConfigHandler struct {
	service CoordinatorConfigService
	logger  *slog.Logger
}

type feeParametersRequest struct {
	OracleBasePrice string `json:"oracle_base_price"`
	PlatformMarkup  string `json:"platform_markup"`
}

type billingModeRequest struct {
	Mode string `json:"mode"`
}

type gasPriceRequest struct {
	CallbackGasPrice string `json:"callback_gas_price"`
}

type gasPolicyRequest struct {
	Min     uint32 `json:"min"`
	Max     uint32 `json:"max"`
	PerItem uint32 `json:"per_item"`
}

type revealWindowRequest struct {
	MinDelay  uint64 `json:"min_delay"`
	MaxWindow uint64 `json:"max_window"`
}

type batchLimitRequest struct {
	BatchLimit uint32 `json:"batch_limit"`
}

type oraclePolicyRequest struct {
	NumWords      uint32 `json:"num_words"`
	Confirmations uint16 `json:"confirmations"`
}

type transferAdminRequest struct {
	NewAdmin string `json:"new_admin"`
}

func NewAdminConfigHandler(service CoordinatorConfigService, logger *slog.Logger) *AdminConfigHandler {
	return &AdminConfigHandler{service: service, logger: logger}
}

func (h *AdminConfigHandler) Register(router fiber.Router) {
	router.Get("/admin/config", h.Config)
	router.Put("/admin/fee-parameters", h.SetFeeParameters)
	router.Put("/admin/billing-mode", h.SetBillingMode)
	router.Put("/admin/callback-gas-price", h.SetCallbackGasPrice)
	router.Put("/admin/callback-gas-policy", h.SetCallbackGasPolicy)
	router.Put("/admin/reveal-window", h.SetRevealWindow)
	router.Put("/admin/batch-limit", h.SetBatchLimit)
	router.Put("/admin/oracle-request-policy", h.SetOracleRequestPolicy)
	router.Put("/admin/admin", h.TransferAdmin)
}

func (h *AdminConfigHandler) Config(c fiber.Ctx) error {
	cfg, err := h.service.Config(c.Context())
	if err != nil {
		return writeServiceError(c, h.logger, "failed to load coordinator config", err)
	}
	return c.Status(fiber.StatusOK).JSON(cfg)
}

func (h *AdminConfigHandler) SetFeeParameters(c fiber.Ctx) error {
	actor, ok := authenticatedAddress(c)
	if !ok {
		return unauthenticated(c)
	}

	var requestBody feeParametersRequest
	if err := c.Bind().JSON(&requestBody); err != nil {
		return badRequest(c, "invalid request body")
	}

	basePrice, err := parseUint256("oracle_base_price", requestBody.OracleBasePrice)
	if err != nil {
		return badRequest(c, err.Error())
	}
	markup, err := parseUint256("platform_markup", requestBody.PlatformMarkup)
	if err != nil {
		return badRequest(c, err.Error())
	}

	return h.respond(c, "fee_parameters", func(ctx context.Context) (domain.CoordinatorConfig, error) {
		return h.service.SetFeeParameters(ctx, actor, vo.FeeParametersInput{OracleBasePrice: basePrice, PlatformMarkup: markup})
	})
}

func (h *AdminConfigHandler) SetBillingMode(c fiber.Ctx) error {
	actor, ok := authenticatedAddress(c)
	if !ok {
		return unauthenticated(c)
	}

	var requestBody billingModeRequest
	if err := c.Bind().JSON(&requestBody); err != nil {
		return badRequest(c, "invalid request body")
	}

	return h.respond(c, "billing_mode", func(ctx context.Context) (domain.CoordinatorConfig, error) {
		return h.service.SetBillingMode(ctx, actor, domain.BillingMode(requestBody.Mode))
	})
}

func (h *AdminConfigHandler) SetCallbackGasPrice(c fiber.Ctx) error {
	actor, ok := authenticatedAddress(c)
	if !ok {
		return unauthenticated(c)
	}

	var requestBody gasPriceRequest
	if err := c.Bind().JSON(&requestBody); err != nil {
		return badRequest(c, "invalid request body")
	}

	price, err := parseUint256("callback_gas_price", requestBody.CallbackGasPrice)
	if err != nil {
		return badRequest(c, err.Error())
	}

	return h.respond(c, "callback_gas_price", func(ctx context.Context) (domain.CoordinatorConfig, error) {
		return h.service.SetCallbackGasPrice(ctx, actor, price)
	})
}

func (h *AdminConfigHandler) SetCallbackGasPolicy(c fiber.Ctx) error {
	actor, ok := authenticatedAddress(c)
	if !ok {
		return unauthenticated(c)
	}

	var requestBody gasPolicyRequest
	if err := c.Bind().JSON(&requestBody); err != nil {
		return badRequest(c, "invalid request body")
	}

	return h.respond(c, "callback_gas_policy", func(ctx context.Context) (domain.CoordinatorConfig, error) {
		return h.service.SetCallbackGasPolicy(ctx, actor, vo.CallbackGasPolicyInput(requestBody))
	})
}

func (h *AdminConfigHandler) SetRevealWindow(c fiber.Ctx) error {
	actor, ok := authenticatedAddress(c)
	if !ok {
		return unauthenticated(c)
	}

	var requestBody revealWindowRequest
	if err := c.Bind().JSON(&requestBody); err != nil {
		return badRequest(c, "invalid request body")
	}

	return h.respond(c, "reveal_window", func(ctx context.Context) (domain.CoordinatorConfig, error) {
		return h.service.SetRevealWindow(ctx, actor, vo.RevealWindowInput(requestBody))
	})
}

func (h *AdminConfigHandler) SetBatchLimit(c fiber.Ctx) error {
	actor, ok := authenticatedAddress(c)
	if !ok {
		return unauthenticated(c)
	}

	var requestBody batchLimitRequest
	if err := c.Bind().JSON(&requestBody); err != nil {
		return badRequest(c, "invalid request body")
	}

	return h.respond(c, "batch_limit", func(ctx context.Context) (domain.CoordinatorConfig, error) {
		return h.service.SetBatchLimit(ctx, actor, requestBody.BatchLimit)
	})
}

func (h *AdminConfigHandler) SetOracleRequestPolicy(c fiber.Ctx) error {
	actor, ok := authenticatedAddress(c)
	if !ok {
		return unauthenticated(c)
	}

	var requestBody oraclePolicyRequest
	if err := c.Bind().JSON(&requestBody); err != nil {
		return badRequest(c, "invalid request body")
	}

	return h.respond(c, "oracle_request_policy", func(ctx context.Context) (domain.CoordinatorConfig, error) {
		return h.service.SetOracleRequestPolicy(ctx, actor, vo.OracleRequestPolicyInput(requestBody))
	})
}

func (h *AdminConfigHandler) TransferAdmin(c fiber.Ctx) error {
	actor, ok := authenticatedAddress(c)
	if !ok {
		return unauthenticated(c)
	}

	var requestBody transferAdminRequest
	if err := c.Bind().JSON(&requestBody); err != nil {
		return badRequest(c, "invalid request body")
	}

	newAdmin, err := parseAddress("new_admin", requestBody.NewAdmin)
	if err != nil {
		return badRequest(c, err.Error())
	}

	return h.respond(c, "admin", func(ctx context.Context) (domain.CoordinatorConfig, error) {
		return h.service.TransferAdmin(ctx, actor, newAdmin)
	})
}

func (h *AdminConfigHandler) respond(c fiber.Ctx, section string, update func(ctx context.Context) (domain.CoordinatorConfig, error)) error {
	cfg, err := update(c.Context())
	if err != nil {
		return writeServiceError(c, h.logger, "failed to update coordinator config", err, "section", section)
	}
	return c.Status(fiber.StatusOK).JSON(cfg)
}
