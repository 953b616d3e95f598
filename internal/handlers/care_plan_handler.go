package handlers

import (
	"errors"

	"github.com/caretrack/caretrack-backend/internal/careplan"
	"github.com/caretrack/caretrack-backend/internal/dto"
	"github.com/caretrack/caretrack-backend/internal/middleware"
	"github.com/caretrack/caretrack-backend/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type CarePlanHandler struct {
	carePlanService *services.CarePlanService
}

func NewCarePlanHandler(carePlanService *services.CarePlanService) *CarePlanHandler {
	return &CarePlanHandler{carePlanService: carePlanService}
}

func (h *CarePlanHandler) Get(c *fiber.Ctx) error {
	residentID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid resident ID",
		})
	}

	resp, err := h.carePlanService.Get(residentID)
	if err != nil {
		if errors.Is(err, services.ErrResidentNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to fetch care plan",
		})
	}

	return c.JSON(fiber.Map{"care_plan": resp})
}

func (h *CarePlanHandler) Update(c *fiber.Ctx) error {
	residentID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid resident ID",
		})
	}

	editorID, err := middleware.UserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	var upd careplan.Update
	if err := c.BodyParser(&upd); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	resp, err := h.carePlanService.ApplyPartialUpdate(residentID, editorID, upd)
	if err != nil {
		if errors.Is(err, services.ErrResidentNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		if errors.Is(err, careplan.ErrBadDate) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to update care plan",
		})
	}

	return c.JSON(fiber.Map{"care_plan": resp})
}
