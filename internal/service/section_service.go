package service

import (
	"context"
	"time"

	"github.com/DevDad-Main/ServIQ/internal/dto"
	"github.com/DevDad-Main/ServIQ/internal/entity"
	"github.com/DevDad-Main/ServIQ/internal/pkg/serverutils"
	"github.com/DevDad-Main/ServIQ/internal/repository/specification"
	"github.com/DevDad-Main/ServIQ/internal/repository/unitofwork"

	"github.com/google/uuid"
)

type ISectionService interface {
	Create(ctx context.Context, userEmail string, req *dto.CreateSectionRequest) (*dto.SectionResponse, error)
	Fetch(ctx context.Context, userEmail string) (*dto.FetchSectionsResponse, error)
	Update(ctx context.Context, userEmail string, req *dto.UpdateSectionRequest) (*dto.SectionResponse, error)
	Delete(ctx context.Context, userEmail string, id uuid.UUID) error
}

type sectionService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewSectionService(uowFactory unitofwork.RepositoryFactory) ISectionService {
	return &sectionService{uowFactory: uowFactory}
}

func (s *sectionService) Create(ctx context.Context, userEmail string, req *dto.CreateSectionRequest) (*dto.SectionResponse, error) {
	tone := entity.SectionTone(req.Tone)
	if !tone.Valid() {
		return nil, serverutils.NewValidationError("invalid tone: " + req.Tone)
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	section := entity.Section{
		Id:            uuid.New(),
		UserEmail:     userEmail,
		Name:          req.Name,
		Description:   req.Description,
		Tone:          tone,
		AllowedTopics: emptyIfNilStrings(req.AllowedTopics),
		BlockedTopics: emptyIfNilStrings(req.BlockedTopics),
		SourceIds:     req.SourceIds,
		Status:        entity.SectionStatusActive,
		CreatedAt:     time.Now(),
	}

	if err := uow.SectionRepository().Create(ctx, &section); err != nil {
		return nil, err
	}

	return toSectionResponse(&section), nil
}

func (s *sectionService) Fetch(ctx context.Context, userEmail string) (*dto.FetchSectionsResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	sections, err := uow.SectionRepository().FindAll(ctx,
		specification.OwnedBy{Email: userEmail},
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	result := make([]*dto.SectionResponse, 0, len(sections))
	for _, section := range sections {
		result = append(result, toSectionResponse(section))
	}

	return &dto.FetchSectionsResponse{Sections: result}, nil
}

// Update applies only the fields present in the request. Absent fields keep
// their stored values, including topic lists set to empty slices earlier.
func (s *sectionService) Update(ctx context.Context, userEmail string, req *dto.UpdateSectionRequest) (*dto.SectionResponse, error) {
	if req.Name == nil && req.Description == nil && req.Tone == nil &&
		req.AllowedTopics == nil && req.BlockedTopics == nil &&
		req.SourceIds == nil && req.Status == nil {
		return nil, serverutils.NewValidationError("No valid fields to update")
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	section, err := uow.SectionRepository().FindOne(ctx,
		specification.ByID{ID: req.Id},
		specification.OwnedBy{Email: userEmail},
	)
	if err != nil {
		return nil, err
	}
	if section == nil {
		return nil, serverutils.NewNotFoundError("Section not found")
	}

	if req.Name != nil {
		section.Name = *req.Name
	}
	if req.Description != nil {
		section.Description = *req.Description
	}
	if req.Tone != nil {
		tone := entity.SectionTone(*req.Tone)
		if !tone.Valid() {
			return nil, serverutils.NewValidationError("invalid tone: " + *req.Tone)
		}
		section.Tone = tone
	}
	if req.AllowedTopics != nil {
		section.AllowedTopics = emptyIfNilStrings(*req.AllowedTopics)
	}
	if req.BlockedTopics != nil {
		section.BlockedTopics = emptyIfNilStrings(*req.BlockedTopics)
	}
	if req.SourceIds != nil {
		if len(*req.SourceIds) == 0 {
			return nil, serverutils.NewValidationError("sourceIds must not be empty")
		}
		section.SourceIds = *req.SourceIds
	}
	if req.Status != nil {
		status := entity.SectionStatus(*req.Status)
		if !status.Valid() {
			return nil, serverutils.NewValidationError("invalid status: " + *req.Status)
		}
		section.Status = status
	}
	section.UpdatedAt = time.Now()

	if err := uow.SectionRepository().Update(ctx, section); err != nil {
		return nil, err
	}

	return toSectionResponse(section), nil
}

func (s *sectionService) Delete(ctx context.Context, userEmail string, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	section, err := uow.SectionRepository().FindOne(ctx,
		specification.ByID{ID: id},
		specification.OwnedBy{Email: userEmail},
	)
	if err != nil {
		return err
	}
	if section == nil {
		return serverutils.NewNotFoundError("Section not found")
	}

	return uow.SectionRepository().Delete(ctx, id, userEmail)
}

func toSectionResponse(section *entity.Section) *dto.SectionResponse {
	return &dto.SectionResponse{
		Id:            section.Id,
		UserEmail:     section.UserEmail,
		Name:          section.Name,
		Description:   section.Description,
		Tone:          string(section.Tone),
		AllowedTopics: section.AllowedTopics,
		BlockedTopics: section.BlockedTopics,
		SourceIds:     section.SourceIds,
		Status:        string(section.Status),
		CreatedAt:     section.CreatedAt,
		UpdatedAt:     section.UpdatedAt,
	}
}

func emptyIfNilStrings(values []string) []string {
	if values == nil {
		return make([]string, 0)
	}
	return values
}
