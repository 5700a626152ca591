package controller

import (
	"io"
	"strings"

	"github.com/DevDad-Main/ServIQ/internal/dto"
	"github.com/DevDad-Main/ServIQ/internal/pkg/serverutils"
	"github.com/DevDad-Main/ServIQ/internal/pkg/session"
	"github.com/DevDad-Main/ServIQ/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IKnowledgeController interface {
	RegisterRoutes(r fiber.Router)
	Fetch(ctx *fiber.Ctx) error
	Store(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
}

type knowledgeController struct {
	service service.IKnowledgeService
	codec   *session.Codec
}

func NewKnowledgeController(service service.IKnowledgeService, codec *session.Codec) IKnowledgeController {
	return &knowledgeController{service: service, codec: codec}
}

func (c *knowledgeController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/knowledge")
	h.Use(serverutils.SessionMiddleware(c.codec))
	h.Get("/fetch", c.Fetch)
	h.Post("/store", c.Store)
	h.Delete("/:id", c.Delete)
}

func (c *knowledgeController) Fetch(ctx *fiber.Ctx) error {
	res, err := c.service.Fetch(ctx.Context(), serverutils.SessionEmail(ctx))
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success fetch knowledge sources", res))
}

// Store accepts either a multipart upload (type=upload with a csv file field)
// or a JSON body for the website and text branches.
func (c *knowledgeController) Store(ctx *fiber.Ctx) error {
	input, err := c.parseIngestInput(ctx)
	if err != nil {
		return err
	}

	res, err := c.service.Ingest(ctx.Context(), serverutils.SessionEmail(ctx), input)
	if err != nil {
		return err
	}

	return ctx.Status(fiber.StatusCreated).
		JSON(serverutils.SuccessResponse("Success store knowledge source", dto.StoreKnowledgeResponse{Source: res}))
}

func (c *knowledgeController) Delete(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return serverutils.NewInvalidRequestError("Invalid knowledge source id")
	}

	if err := c.service.Delete(ctx.Context(), serverutils.SessionEmail(ctx), id); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success delete knowledge source", struct{}{}))
}

func (c *knowledgeController) parseIngestInput(ctx *fiber.Ctx) (*dto.IngestKnowledgeInput, error) {
	contentType := ctx.Get(fiber.HeaderContentType)
	if strings.HasPrefix(contentType, fiber.MIMEMultipartForm) {
		input := dto.IngestKnowledgeInput{
			Type:  ctx.FormValue("type"),
			Title: ctx.FormValue("title"),
		}

		fileHeader, err := ctx.FormFile("file")
		if err != nil {
			return nil, serverutils.ErrNoFile
		}
		file, err := fileHeader.Open()
		if err != nil {
			return nil, serverutils.NewInternalError(err)
		}
		defer file.Close()

		data, err := io.ReadAll(file)
		if err != nil {
			return nil, serverutils.NewInternalError(err)
		}

		input.CSVData = data
		input.FileName = fileHeader.Filename
		return &input, nil
	}

	var req dto.IngestKnowledgeRequest
	if err := ctx.BodyParser(&req); err != nil {
		return nil, serverutils.NewInvalidRequestError("Invalid request body")
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return nil, err
	}

	return &dto.IngestKnowledgeInput{
		Type:    req.Type,
		Url:     req.Url,
		Title:   req.Title,
		Content: req.Content,
	}, nil
}
