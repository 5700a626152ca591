package mapper

import (
	"github.com/DevDad-Main/ServIQ/internal/entity"
	"github.com/DevDad-Main/ServIQ/internal/model"

	"gorm.io/datatypes"
)

type MetadataMapper struct{}

func NewMetadataMapper() *MetadataMapper {
	return &MetadataMapper{}
}

func (m *MetadataMapper) ToEntity(md *model.Metadata) *entity.Metadata {
	if md == nil {
		return nil
	}
	return &entity.Metadata{
		Id:            md.Id,
		UserEmail:     md.UserEmail,
		BusinessName:  md.BusinessName,
		WebsiteUrl:    md.WebsiteUrl,
		ExternalLinks: md.ExternalLinks.Data(),
		CreatedAt:     md.CreatedAt,
		UpdatedAt:     md.UpdatedAt,
	}
}

func (m *MetadataMapper) ToModel(md *entity.Metadata) *model.Metadata {
	if md == nil {
		return nil
	}
	return &model.Metadata{
		Id:            md.Id,
		UserEmail:     md.UserEmail,
		BusinessName:  md.BusinessName,
		WebsiteUrl:    md.WebsiteUrl,
		ExternalLinks: datatypes.NewJSONType(md.ExternalLinks),
		CreatedAt:     md.CreatedAt,
		UpdatedAt:     md.UpdatedAt,
	}
}
