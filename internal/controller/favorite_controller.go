package controller

import (
	"phonefinder-be/internal/dto"
	"phonefinder-be/internal/pkg/serverutils"
	"phonefinder-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IFavoriteController interface {
	RegisterRoutes(r fiber.Router)
	Toggle(ctx *fiber.Ctx) error
	List(ctx *fiber.Ctx) error
}

type favoriteController struct {
	service service.IFavoriteService
}

func NewFavoriteController(service service.IFavoriteService) IFavoriteController {
	return &favoriteController{service: service}
}

func (c *favoriteController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/favorite/v1")
	h.Get("", c.List)
	h.Post("/toggle", c.Toggle)
}

func (c *favoriteController) Toggle(ctx *fiber.Ctx) error {
	var req dto.ToggleFavoriteRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.Toggle(ctx.Context(), req.Id)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success toggle favorite", res))
}

func (c *favoriteController) List(ctx *fiber.Ctx) error {
	res, err := c.service.List(ctx.Context())
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get favorites", res))
}
