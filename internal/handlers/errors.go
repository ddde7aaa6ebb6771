package handlers

import (
	"errors"
	"log/slog"

	"github.com/gofiber/fiber/v3"

	"github.com/joshuarp/vrf-coordinator/internal/domain/vo"
)

var errorStatuses = []struct {
	err    error
	status int
}{
	{vo.ErrInvalidCredentials, fiber.StatusUnauthorized},
	{vo.ErrUnauthorized, fiber.StatusForbidden},
	{vo.ErrPermissionDenied, fiber.StatusForbidden},
	{vo.ErrAlreadyPending, fiber.StatusConflict},
	{vo.ErrWindowNotElapsed, fiber.StatusConflict},
	{vo.ErrAlreadyFulfilled, fiber.StatusConflict},
	{vo.ErrInsufficientPayment, fiber.StatusPaymentRequired},
	{vo.ErrNotReady, fiber.StatusTooEarly},
	{vo.ErrOutOfGasRisk, fiber.StatusUnprocessableEntity},
	{vo.ErrInvalidQuantity, fiber.StatusBadRequest},
	{vo.ErrInvalidAddress, fiber.StatusBadRequest},
	{vo.ErrEmptyRandomWords, fiber.StatusBadRequest},
	{vo.ErrInvalidRandomWord, fiber.StatusBadRequest},
	{vo.ErrInvalidConfig, fiber.StatusBadRequest},
	{vo.ErrCommitmentNotFound, fiber.StatusNotFound},
	{vo.ErrUnknownRequest, fiber.StatusNotFound},
	{vo.ErrNotConfigured, fiber.StatusServiceUnavailable},
}

// writeServiceError maps coordinator errors to their HTTP status. Anything unmapped is logged and
// hidden behind a 500.
func writeServiceError(c fiber.Ctx, logger *slog.Logger, message string, err error, attrs ...any) error {
	for _, entry := range errorStatuses {
		if errors.Is(err, entry.err) {
			return c.Status(entry.status).JSON(fiber.Map{"error": err.Error()})
		}
	}

	logger.ErrorContext(c.Context(), message, append(attrs, "error", err)...)
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal server error"})
}

func badRequest(c fiber.Ctx, message string) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": message})
}
