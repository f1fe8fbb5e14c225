package controller

import (
	"phonefinder-be/internal/dto"
	"phonefinder-be/internal/pkg/serverutils"
	"phonefinder-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IAdvisorController interface {
	RegisterRoutes(r fiber.Router)
	Search(ctx *fiber.Ctx) error
	Results(ctx *fiber.Ctx) error
	Clear(ctx *fiber.Ctx) error
}

type advisorController struct {
	service service.IAdvisorService
}

func NewAdvisorController(service service.IAdvisorService) IAdvisorController {
	return &advisorController{service: service}
}

func (c *advisorController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/advisor/v1")
	h.Post("/search", c.Search)
	h.Get("/search", c.Results)
	h.Delete("/search", c.Clear)
}

func (c *advisorController) Search(ctx *fiber.Ctx) error {
	var req dto.SubmitPreferencesRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.SubmitPreferences(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get recommendations", res))
}

func (c *advisorController) Results(ctx *fiber.Ctx) error {
	res, err := c.service.GetResults(ctx.Context())
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get current results", res))
}

func (c *advisorController) Clear(ctx *fiber.Ctx) error {
	if err := c.service.ClearResults(ctx.Context()); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Success clear results", nil))
}
