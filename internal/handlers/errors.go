package handlers

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"jobfluence/api/internal/services"
)

// ErrorHandler renders every error as {"error": ..., "code": ...}. The message
// is repeated under "detail" for clients of the earlier API.
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError

	var e *fiber.Error
	if errors.As(err, &e) {
		code = e.Code
	}

	return c.Status(code).JSON(fiber.Map{
		"error":  err.Error(),
		"detail": err.Error(),
		"code":   code,
	})
}

// documentError maps upload and parse failures to client errors. Anything
// outside the parse taxonomy is reported as an internal error.
func documentError(log *zap.Logger, filename string, err error, maxFileSizeLabel string) *fiber.Error {
	if errors.Is(err, services.ErrFileTooLarge) {
		return fiber.NewError(fiber.StatusRequestEntityTooLarge,
			fmt.Sprintf("File too large. Maximum allowed size is %s.", maxFileSizeLabel))
	}

	if services.IsParseError(err) {
		var pe *services.ParseError
		errors.As(err, &pe)

		kind := services.ParseErrorKind(err)
		fields := []zap.Field{
			zap.String("filename", filename),
			zap.NamedError("kind", kind),
			zap.String("detail", pe.Detail()),
		}
		switch kind {
		case services.ErrExtraction, services.ErrCorruptFile:
			log.Warn("document extraction failed", fields...)
		default:
			log.Info("document rejected", fields...)
		}
		return fiber.NewError(fiber.StatusBadRequest, pe.Error())
	}

	log.Error("unexpected document error", zap.String("filename", filename), zap.Error(err))
	return fiber.NewError(fiber.StatusInternalServerError, "failed to process document")
}
