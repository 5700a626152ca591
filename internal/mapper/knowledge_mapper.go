package mapper

import (
	"github.com/DevDad-Main/ServIQ/internal/entity"
	"github.com/DevDad-Main/ServIQ/internal/model"
)

type KnowledgeMapper struct{}

func NewKnowledgeMapper() *KnowledgeMapper {
	return &KnowledgeMapper{}
}

func (m *KnowledgeMapper) ToEntity(s *model.KnowledgeSource) *entity.KnowledgeSource {
	if s == nil {
		return nil
	}
	return &entity.KnowledgeSource{
		Id:        s.Id,
		UserEmail: s.UserEmail,
		Type:      entity.KnowledgeType(s.Type),
		Name:      s.Name,
		SourceUrl: s.SourceUrl,
		Content:   s.Content,
		Status:    entity.KnowledgeStatus(s.Status),
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
}

func (m *KnowledgeMapper) ToModel(s *entity.KnowledgeSource) *model.KnowledgeSource {
	if s == nil {
		return nil
	}
	return &model.KnowledgeSource{
		Id:        s.Id,
		UserEmail: s.UserEmail,
		Type:      string(s.Type),
		Name:      s.Name,
		SourceUrl: s.SourceUrl,
		Content:   s.Content,
		Status:    string(s.Status),
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
}

func (m *KnowledgeMapper) ToEntities(sources []*model.KnowledgeSource) []*entity.KnowledgeSource {
	entities := make([]*entity.KnowledgeSource, len(sources))
	for i, s := range sources {
		entities[i] = m.ToEntity(s)
	}
	return entities
}
