package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/printagehq/printage-api/internal/application/dto"
	"github.com/printagehq/printage-api/internal/application/usecase"
)

// OrderHandler job order CRUD, copy and the paginated listing.
type OrderHandler struct {
	uc *usecase.OrderUseCase
}

// NewOrderHandler builds the order handler.
func NewOrderHandler(uc *usecase.OrderUseCase) *OrderHandler {
	return &OrderHandler{uc: uc}
}

// List returns one filtered, paginated page of orders.
func (h *OrderHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(usecase.ListParams{
		Page:      c.Query("page"),
		Limit:     c.Query("limit"),
		Search:    c.Query("search"),
		JobNumber: c.Query("jobNumber"),
		JobName:   c.Query("jobName"),
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(out)
}

// GetByID fetches one order.
func (h *OrderHandler) GetByID(c *fiber.Ctx) error {
	order, err := h.uc.GetByID(c.Params("orderId"))
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(order)
}

// Create persists a new order with a freshly allocated job number.
func (h *OrderHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateOrderRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Message: "Invalid request body"})
	}
	order, err := h.uc.Create(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.CreateOrderResponse{
		Message: "Order created successfully",
		OrderID: order.ID,
	})
}

// Copy duplicates an existing order under a fresh job number.
func (h *OrderHandler) Copy(c *fiber.Ctx) error {
	order, err := h.uc.Copy(c.Params("orderId"))
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.CopyOrderResponse{
		Message:    "Order copied successfully",
		NewOrderID: order.ID,
	})
}

// Update applies a partial patch to an order.
func (h *OrderHandler) Update(c *fiber.Ctx) error {
	var patch dto.UpdateOrderRequest
	if err := c.BodyParser(&patch); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Message: "Invalid request body"})
	}
	order, err := h.uc.Update(c.Params("orderId"), patch)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(dto.UpdateOrderResponse{
		Message:      "Order updated successfully",
		UpdatedOrder: *order,
	})
}

// Delete removes an order.
func (h *OrderHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("orderId")); err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(dto.MessageResponse{Message: "Order deleted successfully"})
}
