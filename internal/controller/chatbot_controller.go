package controller

import (
	"github.com/DevDad-Main/ServIQ/internal/pkg/serverutils"
	"github.com/DevDad-Main/ServIQ/internal/pkg/session"
	"github.com/DevDad-Main/ServIQ/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IChatbotController interface {
	RegisterRoutes(r fiber.Router)
	Fetch(ctx *fiber.Ctx) error
}

type chatbotController struct {
	service service.IChatbotService
	codec   *session.Codec
}

func NewChatbotController(service service.IChatbotService, codec *session.Codec) IChatbotController {
	return &chatbotController{service: service, codec: codec}
}

func (c *chatbotController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/chatbot")
	h.Use(serverutils.SessionMiddleware(c.codec))
	h.Get("/fetch", c.Fetch)
}

func (c *chatbotController) Fetch(ctx *fiber.Ctx) error {
	res, err := c.service.FetchConfig(ctx.Context(), serverutils.SessionEmail(ctx))
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success fetch chatbot config", res))
}
