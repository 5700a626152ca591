package service

import (
	"context"

	"github.com/DevDad-Main/ServIQ/internal/dto"
	"github.com/DevDad-Main/ServIQ/internal/entity"
	"github.com/DevDad-Main/ServIQ/internal/pkg/serverutils"
	"github.com/DevDad-Main/ServIQ/internal/repository/specification"
	"github.com/DevDad-Main/ServIQ/internal/repository/unitofwork"
)

type IChatbotService interface {
	FetchConfig(ctx context.Context, userEmail string) (*dto.ChatbotConfigResponse, error)
}

type chatbotService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewChatbotService(uowFactory unitofwork.RepositoryFactory) IChatbotService {
	return &chatbotService{uowFactory: uowFactory}
}

// FetchConfig assembles the preview payload: the business profile plus every
// active section. Onboarding must be finished first, hence the 404 when no
// profile row exists yet.
func (s *chatbotService) FetchConfig(ctx context.Context, userEmail string) (*dto.ChatbotConfigResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	metadata, err := uow.MetadataRepository().FindOne(ctx, specification.OwnedBy{Email: userEmail})
	if err != nil {
		return nil, err
	}
	if metadata == nil {
		return nil, serverutils.NewNotFoundError("Cannot find existing metadata")
	}

	sections, err := uow.SectionRepository().FindAll(ctx,
		specification.OwnedBy{Email: userEmail},
		specification.Filter("status", string(entity.SectionStatusActive)),
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	result := make([]*dto.SectionResponse, 0, len(sections))
	for _, section := range sections {
		result = append(result, toSectionResponse(section))
	}

	return &dto.ChatbotConfigResponse{
		Metadata: toMetadataData(metadata),
		Sections: result,
	}, nil
}
