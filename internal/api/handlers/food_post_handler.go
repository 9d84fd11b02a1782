package handlers

import (
	"Food2Plate-Backend/domain"
	"Food2Plate-Backend/internal/api/presenters"
	"Food2Plate-Backend/pkg/foodpost"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	FoodPostHandler interface {
		CreateFoodPost(c *fiber.Ctx) error
		GetMyFoodPosts(c *fiber.Ctx) error
		BrowseFoodPosts(c *fiber.Ctx) error
		DeleteFoodPost(c *fiber.Ctx) error
	}

	foodPostHandler struct {
		foodPostService foodpost.FoodPostService
		validator       *validator.Validate
	}
)

func NewFoodPostHandler(foodPostService foodpost.FoodPostService, validator *validator.Validate) FoodPostHandler {
	return &foodPostHandler{
		foodPostService: foodPostService,
		validator:       validator,
	}
}

func (h *foodPostHandler) CreateFoodPost(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.CreateFoodPostRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if file, err := c.FormFile("image"); err == nil {
		req.Image = file
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateFoodPost, err)
	}

	res, err := h.foodPostService.CreateFoodPost(c.Context(), userID, *req)
	if err != nil {
		return presenters.ErrorResponse(c, statusFor(err), domain.MessageFailedCreateFoodPost, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessCreateFoodPost)
}

func (h *foodPostHandler) GetMyFoodPosts(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	res, err := h.foodPostService.GetMyFoodPosts(c.Context(), userID)
	if err != nil {
		return presenters.ErrorResponse(c, statusFor(err), domain.MessageFailedGetFoodPosts, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetFoodPosts)
}

func (h *foodPostHandler) BrowseFoodPosts(c *fiber.Ctx) error {
	res, err := h.foodPostService.BrowseFoodPosts(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, statusFor(err), domain.MessageFailedBrowseFoodPosts, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessBrowseFoodPosts)
}

func (h *foodPostHandler) DeleteFoodPost(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	postID := c.Params("id")

	if err := h.foodPostService.DeleteFoodPost(c.Context(), userID, postID); err != nil {
		return presenters.ErrorResponse(c, statusFor(err), domain.MessageFailedDeleteFoodPost, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteFoodPost)
}
