package handlers

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"ecofinds/internal/domain"
	applog "ecofinds/internal/log"
	"ecofinds/internal/services"
	"ecofinds/internal/validate"
)

type OrderHandler struct {
	Order *services.OrderService
}

// List is GET /api/orders with optional search/status/timeFilter parameters.
func (h *OrderHandler) List(c *fiber.Ctx) error {
	orders := h.Order.List(c.Query("search"), c.Query("status"), c.Query("timeFilter"))
	return c.JSON(fiber.Map{"orders": orders})
}

func (h *OrderHandler) Get(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Order not found"})
	}
	o, found := h.Order.Orders.Get(id)
	if !found {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Order not found"})
	}
	return c.JSON(fiber.Map{"order": o})
}

type placeOrderItem struct {
	ID       string  `json:"id"`
	Title    string  `json:"title"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
}

type placeOrderRequest struct {
	BuyerName       string                  `json:"buyerName"`
	BuyerEmail      string                  `json:"buyerEmail"`
	Items           []placeOrderItem        `json:"items"`
	ShippingAddress *domain.ShippingAddress `json:"shippingAddress"`
	ShippingMethod  string                  `json:"shippingMethod"`
	PaymentMethod   string                  `json:"paymentMethod"`
	PaymentID       string                  `json:"paymentId"`
	Total           *float64                `json:"total"`
}

func (r placeOrderRequest) missingField() string {
	switch {
	case len(r.Items) == 0:
		return "items"
	case r.ShippingAddress == nil:
		return "shippingAddress"
	case r.PaymentMethod == "":
		return "paymentMethod"
	case r.Total == nil:
		return "total"
	}
	return ""
}

// Place is POST /api/orders.
func (h *OrderHandler) Place(c *fiber.Ctx) error {
	var req placeOrderRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid JSON body"})
	}
	if f := req.missingField(); f != "" {
		applog.Security(c, "validation.fail", map[string]any{"field": f})
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": fmt.Sprintf("Missing required field: %s", f)})
	}

	items := make([]domain.OrderItem, 0, len(req.Items))
	for _, it := range req.Items {
		qty := it.Quantity
		if qty < 1 {
			qty = 1
		}
		items = append(items, domain.OrderItem{
			ProductID:    it.ID,
			ProductTitle: it.Title,
			Quantity:     qty,
			Price:        it.Price,
		})
	}

	order, err := h.Order.Place(services.PlaceOrderInput{
		BuyerName:       req.BuyerName,
		BuyerEmail:      req.BuyerEmail,
		Items:           items,
		ShippingAddress: *req.ShippingAddress,
		ShippingMethod:  req.ShippingMethod,
		PaymentID:       req.PaymentID,
		Total:           *req.Total,
	})
	if err == services.ErrTotalMismatch {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Total amount mismatch"})
	}
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	applog.Audit(c, "order.place", map[string]any{"id": order.ID, "total": order.Total})
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"order":   order,
		"message": "Order placed successfully",
	})
}
