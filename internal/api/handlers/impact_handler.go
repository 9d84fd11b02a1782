package handlers

import (
	"Food2Plate-Backend/domain"
	"Food2Plate-Backend/internal/api/presenters"
	"Food2Plate-Backend/pkg/impact"

	"github.com/gofiber/fiber/v2"
)

type (
	ImpactHandler interface {
		GetImpactStats(c *fiber.Ctx) error
	}

	impactHandler struct {
		impactService impact.ImpactService
	}
)

func NewImpactHandler(impactService impact.ImpactService) ImpactHandler {
	return &impactHandler{impactService: impactService}
}

func (h *impactHandler) GetImpactStats(c *fiber.Ctx) error {
	res, err := h.impactService.GetImpactStats(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, statusFor(err), domain.MessageFailedGetImpactStats, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetImpactStats)
}
