package mapper

import (
	"github.com/DevDad-Main/ServIQ/internal/entity"
	"github.com/DevDad-Main/ServIQ/internal/model"

	"gorm.io/datatypes"
)

type SectionMapper struct{}

func NewSectionMapper() *SectionMapper {
	return &SectionMapper{}
}

func (m *SectionMapper) ToEntity(s *model.Section) *entity.Section {
	if s == nil {
		return nil
	}
	return &entity.Section{
		Id:            s.Id,
		UserEmail:     s.UserEmail,
		Name:          s.Name,
		Description:   s.Description,
		Tone:          entity.SectionTone(s.Tone),
		AllowedTopics: jsonSliceToStrings(s.AllowedTopics),
		BlockedTopics: jsonSliceToStrings(s.BlockedTopics),
		SourceIds:     jsonSliceToStrings(s.SourceIds),
		Status:        entity.SectionStatus(s.Status),
		CreatedAt:     s.CreatedAt,
		UpdatedAt:     s.UpdatedAt,
	}
}

func (m *SectionMapper) ToModel(s *entity.Section) *model.Section {
	if s == nil {
		return nil
	}
	return &model.Section{
		Id:            s.Id,
		UserEmail:     s.UserEmail,
		Name:          s.Name,
		Description:   s.Description,
		Tone:          string(s.Tone),
		AllowedTopics: datatypes.NewJSONSlice(emptyIfNil(s.AllowedTopics)),
		BlockedTopics: datatypes.NewJSONSlice(emptyIfNil(s.BlockedTopics)),
		SourceIds:     datatypes.NewJSONSlice(emptyIfNil(s.SourceIds)),
		Status:        string(s.Status),
		CreatedAt:     s.CreatedAt,
		UpdatedAt:     s.UpdatedAt,
	}
}

func (m *SectionMapper) ToEntities(sections []*model.Section) []*entity.Section {
	entities := make([]*entity.Section, len(sections))
	for i, s := range sections {
		entities[i] = m.ToEntity(s)
	}
	return entities
}

func jsonSliceToStrings(s datatypes.JSONSlice[string]) []string {
	out := make([]string, len(s))
	copy(out, s)
	return out
}

// emptyIfNil keeps jsonb columns as [] instead of null.
func emptyIfNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
