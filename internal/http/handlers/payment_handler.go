package handlers

import (
	"github.com/gofiber/fiber/v2"

	applog "ecofinds/internal/log"
	"ecofinds/internal/services"
)

type PaymentHandler struct {
	Payments *services.PaymentService
}

type paymentRequest struct {
	PaymentMethod string   `json:"paymentMethod"`
	Amount        *float64 `json:"amount"`
	OrderID       string   `json:"orderId"`
}

// Process is POST /api/payment (simulated provider).
func (h *PaymentHandler) Process(c *fiber.Ctx) error {
	var req paymentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid JSON body"})
	}
	if req.PaymentMethod == "" || req.Amount == nil || req.OrderID == "" {
		applog.Security(c, "validation.fail", map[string]any{"field": "payment"})
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Missing required payment fields"})
	}

	result, err := h.Payments.Process(req.PaymentMethod, *req.Amount, req.OrderID)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Unsupported payment method"})
	}

	applog.Audit(c, "payment.process", map[string]any{"order_id": req.OrderID, "method": req.PaymentMethod})
	return c.JSON(fiber.Map{
		"success": true,
		"payment": result,
		"message": "Payment processed successfully",
	})
}
