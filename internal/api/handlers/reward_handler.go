package handlers

import (
	"Food2Plate-Backend/domain"
	"Food2Plate-Backend/internal/api/presenters"
	"Food2Plate-Backend/pkg/reward"

	"github.com/gofiber/fiber/v2"
)

type (
	RewardHandler interface {
		GetMyReward(c *fiber.Ctx) error
		GetLeaderboard(c *fiber.Ctx) error
	}

	rewardHandler struct {
		rewardService reward.RewardService
	}
)

func NewRewardHandler(rewardService reward.RewardService) RewardHandler {
	return &rewardHandler{rewardService: rewardService}
}

func (h *rewardHandler) GetMyReward(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	res, err := h.rewardService.GetMyReward(c.Context(), userID)
	if err != nil {
		return presenters.ErrorResponse(c, statusFor(err), domain.MessageFailedGetReward, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetReward)
}

func (h *rewardHandler) GetLeaderboard(c *fiber.Ctx) error {
	res, err := h.rewardService.GetLeaderboard(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, statusFor(err), domain.MessageFailedGetLeaderboard, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetLeaderboard)
}
