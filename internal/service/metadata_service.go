package service

import (
	"context"
	"time"

	"github.com/DevDad-Main/ServIQ/internal/dto"
	"github.com/DevDad-Main/ServIQ/internal/entity"
	"github.com/DevDad-Main/ServIQ/internal/repository/specification"
	"github.com/DevDad-Main/ServIQ/internal/repository/unitofwork"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"
)

const (
	metadataSourceCache    = "cache"
	metadataSourceDatabase = "database"
)

type IMetadataService interface {
	Store(ctx context.Context, userEmail string, req *dto.StoreMetadataRequest) (*dto.MetadataData, error)
	Fetch(ctx context.Context, userEmail string) (*dto.FetchMetadataResponse, error)
}

// metadataService keeps a short-lived per-user read cache in front of the
// database. Writes go through to the row and refresh the cache, so a stale
// entry can only outlive a write by the cache TTL.
type metadataService struct {
	uowFactory unitofwork.RepositoryFactory
	cache      *cache.Cache
}

func NewMetadataService(uowFactory unitofwork.RepositoryFactory, readCache *cache.Cache) IMetadataService {
	return &metadataService{
		uowFactory: uowFactory,
		cache:      readCache,
	}
}

func (s *metadataService) Store(ctx context.Context, userEmail string, req *dto.StoreMetadataRequest) (*dto.MetadataData, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	metadata, err := uow.MetadataRepository().FindOne(ctx, specification.OwnedBy{Email: userEmail})
	if err != nil {
		return nil, err
	}

	now := time.Now()
	if metadata == nil {
		metadata = &entity.Metadata{
			Id:            uuid.New(),
			UserEmail:     userEmail,
			BusinessName:  req.BusinessName,
			WebsiteUrl:    req.WebsiteUrl,
			ExternalLinks: req.ExternalLinks,
			CreatedAt:     now,
		}
		if err := uow.MetadataRepository().Create(ctx, metadata); err != nil {
			return nil, err
		}
	} else {
		metadata.BusinessName = req.BusinessName
		metadata.WebsiteUrl = req.WebsiteUrl
		metadata.ExternalLinks = req.ExternalLinks
		metadata.UpdatedAt = now
		if err := uow.MetadataRepository().Update(ctx, metadata); err != nil {
			return nil, err
		}
	}

	data := toMetadataData(metadata)
	s.cache.Set(userEmail, data, cache.DefaultExpiration)

	return data, nil
}

func (s *metadataService) Fetch(ctx context.Context, userEmail string) (*dto.FetchMetadataResponse, error) {
	if cached, found := s.cache.Get(userEmail); found {
		if data, ok := cached.(*dto.MetadataData); ok {
			return &dto.FetchMetadataResponse{
				Exists: true,
				Source: metadataSourceCache,
				Data:   data,
			}, nil
		}
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	metadata, err := uow.MetadataRepository().FindOne(ctx, specification.OwnedBy{Email: userEmail})
	if err != nil {
		return nil, err
	}
	if metadata == nil {
		return &dto.FetchMetadataResponse{Exists: false}, nil
	}

	data := toMetadataData(metadata)
	s.cache.Set(userEmail, data, cache.DefaultExpiration)

	return &dto.FetchMetadataResponse{
		Exists: true,
		Source: metadataSourceDatabase,
		Data:   data,
	}, nil
}

func toMetadataData(metadata *entity.Metadata) *dto.MetadataData {
	return &dto.MetadataData{
		Id:            metadata.Id,
		UserEmail:     metadata.UserEmail,
		BusinessName:  metadata.BusinessName,
		WebsiteUrl:    metadata.WebsiteUrl,
		ExternalLinks: metadata.ExternalLinks,
		CreatedAt:     metadata.CreatedAt,
		UpdatedAt:     metadata.UpdatedAt,
	}
}
