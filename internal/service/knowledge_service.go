package service

import (
	"bytes"
	"context"
	"encoding/csv"
	"encoding/json"
	"errors"
	"io"
	"net/url"
	"time"

	"github.com/DevDad-Main/ServIQ/internal/dto"
	"github.com/DevDad-Main/ServIQ/internal/entity"
	"github.com/DevDad-Main/ServIQ/internal/pkg/logger"
	"github.com/DevDad-Main/ServIQ/internal/pkg/serverutils"
	"github.com/DevDad-Main/ServIQ/internal/repository/specification"
	"github.com/DevDad-Main/ServIQ/internal/repository/unitofwork"
	"github.com/DevDad-Main/ServIQ/pkg/summarizer"

	"github.com/google/uuid"
)

// WebScraper fetches a page as markdown. Satisfied by scraper.Client.
type WebScraper interface {
	Scrape(ctx context.Context, target string) (string, error)
}

type IKnowledgeService interface {
	ParseCSV(data []byte) (*dto.ParsedCSVResult, error)
	Ingest(ctx context.Context, userEmail string, input *dto.IngestKnowledgeInput) (*dto.KnowledgeSourceResponse, error)
	Fetch(ctx context.Context, userEmail string) (*dto.FetchKnowledgeResponse, error)
	Delete(ctx context.Context, userEmail string, id uuid.UUID) error
}

type knowledgeService struct {
	uowFactory       unitofwork.RepositoryFactory
	scraper          WebScraper
	summarizer       summarizer.Provider
	publisherService IPublisherService
	log              logger.ILogger
}

func NewKnowledgeService(
	uowFactory unitofwork.RepositoryFactory,
	scraper WebScraper,
	summarizer summarizer.Provider,
	publisherService IPublisherService,
	log logger.ILogger,
) IKnowledgeService {
	return &knowledgeService{
		uowFactory:       uowFactory,
		scraper:          scraper,
		summarizer:       summarizer,
		publisherService: publisherService,
		log:              log,
	}
}

// ParseCSV treats the first row as the header and returns every data row as
// a header-keyed map. An empty file yields zero rows, not an error.
func (s *knowledgeService) ParseCSV(data []byte) (*dto.ParsedCSVResult, error) {
	reader := csv.NewReader(bytes.NewReader(data))

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return &dto.ParsedCSVResult{
			Rows:     make([]map[string]string, 0),
			FirstTen: make([]map[string]string, 0),
		}, nil
	}
	if err != nil {
		return nil, err
	}

	rows := make([]map[string]string, 0)
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}

		row := make(map[string]string, len(header))
		for i, key := range header {
			row[key] = record[i]
		}
		rows = append(rows, row)
	}

	firstTen := rows
	if len(firstTen) > 10 {
		firstTen = firstTen[:10]
	}

	return &dto.ParsedCSVResult{
		Rows:      rows,
		TotalRows: len(rows),
		FirstTen:  firstTen,
	}, nil
}

// Ingest normalizes one source synchronously: acquire the raw content for the
// requested branch, summarize it, persist exactly one active row, then emit
// the audit event. On any failure before persistence nothing is written.
func (s *knowledgeService) Ingest(ctx context.Context, userEmail string, input *dto.IngestKnowledgeInput) (*dto.KnowledgeSourceResponse, error) {
	var (
		raw       string
		name      string
		sourceUrl *string
	)

	switch entity.KnowledgeType(input.Type) {
	case entity.KnowledgeTypeUpload:
		if len(input.CSVData) == 0 {
			return nil, serverutils.ErrNoFile
		}
		parsed, err := s.ParseCSV(input.CSVData)
		if err != nil {
			return nil, serverutils.NewParseError(err)
		}
		serialized, err := json.Marshal(parsed.Rows)
		if err != nil {
			return nil, serverutils.NewInternalError(err)
		}
		raw = string(serialized)
		name = firstNonEmpty(input.Title, input.FileName, "CSV Upload")

	case entity.KnowledgeTypeWebsite:
		if input.Url == "" {
			return nil, serverutils.NewValidationError("url is required for website sources")
		}
		markdown, err := s.scraper.Scrape(ctx, input.Url)
		if err != nil {
			return nil, serverutils.NewScrapeError(err)
		}
		raw = markdown
		name = firstNonEmpty(input.Title, hostnameOf(input.Url), input.Url)
		u := input.Url
		sourceUrl = &u

	case entity.KnowledgeTypeText:
		if input.Title == "" || input.Content == "" {
			return nil, serverutils.NewValidationError("title and content are required for text sources")
		}
		raw = input.Content
		name = input.Title

	default:
		return nil, serverutils.NewInvalidRequestError("unsupported knowledge type: " + input.Type)
	}

	summary, err := s.summarizer.Summarize(ctx, raw)
	if err != nil {
		return nil, serverutils.NewUpstreamError("Failed to summarize content", err)
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	source := entity.KnowledgeSource{
		Id:        uuid.New(),
		UserEmail: userEmail,
		Type:      entity.KnowledgeType(input.Type),
		Name:      name,
		SourceUrl: sourceUrl,
		Content:   summary,
		Status:    entity.KnowledgeStatusActive,
		CreatedAt: time.Now(),
	}

	if err := uow.KnowledgeSourceRepository().Create(ctx, &source); err != nil {
		return nil, err
	}

	payload := dto.PublishKnowledgeIngestedMessage{
		SourceId:   source.Id,
		OwnerEmail: userEmail,
		SourceType: input.Type,
	}
	payloadJson, err := json.Marshal(payload)
	if err == nil {
		err = s.publisherService.Publish(ctx, payloadJson)
	}
	if err != nil {
		// The row is already committed; auditing is best effort.
		s.log.Warn("knowledge", "failed to publish ingestion event", map[string]interface{}{
			"source_id": source.Id.String(),
			"error":     err.Error(),
		})
	}

	s.log.Info("knowledge", "source ingested", map[string]interface{}{
		"source_id": source.Id.String(),
		"type":      input.Type,
		"user":      userEmail,
	})

	return toKnowledgeSourceResponse(&source), nil
}

func (s *knowledgeService) Fetch(ctx context.Context, userEmail string) (*dto.FetchKnowledgeResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	sources, err := uow.KnowledgeSourceRepository().FindAll(ctx,
		specification.OwnedBy{Email: userEmail},
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	result := make([]*dto.KnowledgeSourceResponse, 0, len(sources))
	for _, source := range sources {
		result = append(result, toKnowledgeSourceResponse(source))
	}

	return &dto.FetchKnowledgeResponse{Sources: result}, nil
}

func (s *knowledgeService) Delete(ctx context.Context, userEmail string, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	source, err := uow.KnowledgeSourceRepository().FindOne(ctx,
		specification.ByID{ID: id},
		specification.OwnedBy{Email: userEmail},
	)
	if err != nil {
		return err
	}
	if source == nil {
		return serverutils.NewNotFoundError("Knowledge source not found")
	}

	return uow.KnowledgeSourceRepository().Delete(ctx, id, userEmail)
}

func toKnowledgeSourceResponse(source *entity.KnowledgeSource) *dto.KnowledgeSourceResponse {
	return &dto.KnowledgeSourceResponse{
		Id:        source.Id,
		UserEmail: source.UserEmail,
		Type:      string(source.Type),
		Name:      source.Name,
		SourceUrl: source.SourceUrl,
		Content:   source.Content,
		Status:    string(source.Status),
		CreatedAt: source.CreatedAt,
		UpdatedAt: source.UpdatedAt,
	}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

func hostnameOf(raw string) string {
	u, err := url.Parse(raw)
	if err != nil || u.Hostname() == "" {
		return ""
	}
	return u.Hostname()
}
