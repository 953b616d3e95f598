package handlers

import (
	"errors"

	"github.com/caretrack/caretrack-backend/internal/careplan"
	"github.com/caretrack/caretrack-backend/internal/dto"
	"github.com/caretrack/caretrack-backend/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type ResidentHandler struct {
	residentService *services.ResidentService
}

func NewResidentHandler(residentService *services.ResidentService) *ResidentHandler {
	return &ResidentHandler{residentService: residentService}
}

func (h *ResidentHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateResidentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	resp, err := h.residentService.Create(&req)
	if err != nil {
		if errors.Is(err, careplan.ErrBadDate) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: true, Message: "Invalid birthday",
			})
		}
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: err.Error(),
		})
	}

	return c.Status(fiber.StatusCreated).JSON(resp)
}

func (h *ResidentHandler) List(c *fiber.Ctx) error {
	residents, err := h.residentService.List()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to list residents",
		})
	}

	return c.JSON(dto.ResidentListResponse{Residents: residents})
}

func (h *ResidentHandler) Delete(c *fiber.Ctx) error {
	residentID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid resident ID",
		})
	}

	if err := h.residentService.Delete(residentID); err != nil {
		if errors.Is(err, services.ErrResidentNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to delete resident",
		})
	}

	return c.JSON(dto.MessageResponse{Success: true, Message: "Resident Deleted Successfully."})
}

func (h *ResidentHandler) UpdateIcon(c *fiber.Ctx) error {
	residentID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid resident ID",
		})
	}

	var req dto.UpdateIconRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	resp, err := h.residentService.UpdateIcon(residentID, req.Icon)
	if err != nil {
		if errors.Is(err, services.ErrResidentNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to update icon",
		})
	}

	return c.JSON(resp)
}
