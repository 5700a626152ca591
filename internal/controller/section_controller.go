package controller

import (
	"github.com/DevDad-Main/ServIQ/internal/dto"
	"github.com/DevDad-Main/ServIQ/internal/pkg/serverutils"
	"github.com/DevDad-Main/ServIQ/internal/pkg/session"
	"github.com/DevDad-Main/ServIQ/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type ISectionController interface {
	RegisterRoutes(r fiber.Router)
	Create(ctx *fiber.Ctx) error
	Fetch(ctx *fiber.Ctx) error
	Update(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
}

type sectionController struct {
	service service.ISectionService
	codec   *session.Codec
}

func NewSectionController(service service.ISectionService, codec *session.Codec) ISectionController {
	return &sectionController{service: service, codec: codec}
}

func (c *sectionController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/section")
	h.Use(serverutils.SessionMiddleware(c.codec))
	h.Post("/create", c.Create)
	h.Get("/fetch", c.Fetch)
	h.Put("/update/:id", c.Update)
	h.Delete("/delete/:id", c.Delete)
}

func (c *sectionController) Create(ctx *fiber.Ctx) error {
	var req dto.CreateSectionRequest
	if err := ctx.BodyParser(&req); err != nil {
		return serverutils.NewInvalidRequestError("Invalid request body")
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.Create(ctx.Context(), serverutils.SessionEmail(ctx), &req)
	if err != nil {
		return err
	}

	return ctx.Status(fiber.StatusCreated).
		JSON(serverutils.SuccessResponse("Success create section", res))
}

func (c *sectionController) Fetch(ctx *fiber.Ctx) error {
	res, err := c.service.Fetch(ctx.Context(), serverutils.SessionEmail(ctx))
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success fetch sections", res))
}

func (c *sectionController) Update(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return serverutils.NewInvalidRequestError("Invalid section id")
	}

	var req dto.UpdateSectionRequest
	if err := ctx.BodyParser(&req); err != nil {
		return serverutils.NewInvalidRequestError("Invalid request body")
	}
	req.Id = id

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.Update(ctx.Context(), serverutils.SessionEmail(ctx), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success update section", res))
}

func (c *sectionController) Delete(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return serverutils.NewInvalidRequestError("Invalid section id")
	}

	if err := c.service.Delete(ctx.Context(), serverutils.SessionEmail(ctx), id); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success delete section", struct{}{}))
}
