package controller

import (
	"encoding/json"
	"time"

	"github.com/DevDad-Main/ServIQ/internal/dto"
	"github.com/DevDad-Main/ServIQ/internal/pkg/serverutils"
	"github.com/DevDad-Main/ServIQ/internal/pkg/session"
	"github.com/DevDad-Main/ServIQ/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IMetadataController interface {
	RegisterRoutes(r fiber.Router)
	Fetch(ctx *fiber.Ctx) error
	Store(ctx *fiber.Ctx) error
}

type metadataController struct {
	service      service.IMetadataService
	codec        *session.Codec
	secureCookie bool
}

func NewMetadataController(service service.IMetadataService, codec *session.Codec, secureCookie bool) IMetadataController {
	return &metadataController{service: service, codec: codec, secureCookie: secureCookie}
}

func (c *metadataController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/metadata")
	h.Use(serverutils.SessionMiddleware(c.codec))
	h.Get("/fetch", c.Fetch)
	h.Post("/store", c.Store)
}

func (c *metadataController) Fetch(ctx *fiber.Ctx) error {
	res, err := c.service.Fetch(ctx.Context(), serverutils.SessionEmail(ctx))
	if err != nil {
		return err
	}

	if res.Exists {
		c.refreshMetadataCookie(ctx, res.Data)
	}

	return ctx.JSON(serverutils.SuccessResponse("Success fetch metadata", res))
}

func (c *metadataController) Store(ctx *fiber.Ctx) error {
	var req dto.StoreMetadataRequest
	if err := ctx.BodyParser(&req); err != nil {
		return serverutils.NewInvalidRequestError("Invalid request body")
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.Store(ctx.Context(), serverutils.SessionEmail(ctx), &req)
	if err != nil {
		return err
	}

	c.refreshMetadataCookie(ctx, res)

	return ctx.Status(fiber.StatusCreated).
		JSON(serverutils.SuccessResponse("Success store metadata", res))
}

// refreshMetadataCookie mirrors the profile into a client-readable cookie.
// The cookie is a convenience copy for the frontend; the server never reads
// it back, the database row stays authoritative.
func (c *metadataController) refreshMetadataCookie(ctx *fiber.Ctx, data *dto.MetadataData) {
	encoded, err := json.Marshal(data)
	if err != nil {
		return
	}

	ctx.Cookie(&fiber.Cookie{
		Name:     serverutils.MetadataCookieName,
		Value:    string(encoded),
		MaxAge:   int((7 * 24 * time.Hour).Seconds()),
		HTTPOnly: false,
		Secure:   c.secureCookie,
		SameSite: fiber.CookieSameSiteLaxMode,
		Path:     "/",
	})
}
