package handlers

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"jobfluence/api/internal/models"
	"jobfluence/api/internal/repositories"
)

const paymentNotImplemented = "Payment processing not yet implemented"

type PaymentHandler struct {
	chargeRepo repositories.ChargeRepository
	log        *zap.Logger
}

// NewPaymentHandler wires the payment stub. chargeRepo may be nil when the
// ledger database is disabled; requests are then acknowledged but not recorded.
func NewPaymentHandler(chargeRepo repositories.ChargeRepository, log *zap.Logger) *PaymentHandler {
	return &PaymentHandler{
		chargeRepo: chargeRepo,
		log:        log,
	}
}

// HandleCharge handles POST /payment/charge
func (h *PaymentHandler) HandleCharge(c *fiber.Ctx) error {
	var req models.ChargeRequest

	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request payload")
		}
	}

	if req.Amount < 0 {
		return fiber.NewError(fiber.StatusBadRequest, "amount must not be negative")
	}

	req.Currency = strings.ToUpper(strings.TrimSpace(req.Currency))
	if req.Currency != "" && len(req.Currency) != 3 {
		return fiber.NewError(fiber.StatusBadRequest, "currency must be a 3-letter ISO code")
	}

	if h.chargeRepo == nil {
		return c.JSON(models.ChargeResponse{Message: paymentNotImplemented})
	}

	charge := &models.Charge{
		ID:        uuid.New(),
		Amount:    req.Amount,
		Currency:  req.Currency,
		Status:    models.ChargeNotImplemented,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	if err := h.chargeRepo.Create(charge); err != nil {
		h.log.Error("failed to record charge", zap.Error(err))
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to record charge")
	}

	return c.JSON(models.ChargeResponse{
		Message:  paymentNotImplemented,
		ChargeID: charge.ID.String(),
	})
}

// HandleGetCharge handles GET /payment/charge/:id
func (h *PaymentHandler) HandleGetCharge(c *fiber.Ctx) error {
	if h.chargeRepo == nil {
		return fiber.NewError(fiber.StatusNotFound, "Payment ledger is disabled")
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid charge ID format")
	}

	charge, err := h.chargeRepo.FindByID(id)
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, "Charge not found")
	}

	return c.JSON(charge)
}
