package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/printagehq/printage-api/internal/application/dto"
	"github.com/printagehq/printage-api/internal/application/usecase"
)

// CompanyHandler client company listing, creation and rename.
type CompanyHandler struct {
	uc *usecase.CompanyUseCase
}

// NewCompanyHandler builds the company handler.
func NewCompanyHandler(uc *usecase.CompanyUseCase) *CompanyHandler {
	return &CompanyHandler{uc: uc}
}

// List returns all companies in creation order.
func (h *CompanyHandler) List(c *fiber.Ctx) error {
	companies, err := h.uc.List()
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(companies)
}

// Create registers a new company.
func (h *CompanyHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateCompanyRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Message: "Invalid request body"})
	}
	company, err := h.uc.Create(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(company)
}

// Update renames a company.
func (h *CompanyHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateCompanyRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Message: "Invalid request body"})
	}
	company, err := h.uc.Update(c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(company)
}
