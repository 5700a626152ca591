package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateSectionRequest struct {
	Name          string   `json:"name" validate:"required"`
	Description   string   `json:"description" validate:"required"`
	Tone          string   `json:"tone" validate:"required,oneof=strict neutral friendly empathetic"`
	AllowedTopics []string `json:"allowedTopics"`
	BlockedTopics []string `json:"blockedTopics"`
	SourceIds     []string `json:"sourceIds" validate:"required,min=1"`
}

// UpdateSectionRequest carries partial update semantics: nil fields are left
// unchanged.
type UpdateSectionRequest struct {
	Id            uuid.UUID `json:"-"`
	Name          *string   `json:"name"`
	Description   *string   `json:"description"`
	Tone          *string   `json:"tone" validate:"omitempty,oneof=strict neutral friendly empathetic"`
	AllowedTopics *[]string `json:"allowedTopics"`
	BlockedTopics *[]string `json:"blockedTopics"`
	SourceIds     *[]string `json:"sourceIds"`
	Status        *string   `json:"status" validate:"omitempty,oneof=active draft disabled"`
}

type SectionResponse struct {
	Id            uuid.UUID `json:"id"`
	UserEmail     string    `json:"userEmail"`
	Name          string    `json:"name"`
	Description   string    `json:"description"`
	Tone          string    `json:"tone"`
	AllowedTopics []string  `json:"allowedTopics"`
	BlockedTopics []string  `json:"blockedTopics"`
	SourceIds     []string  `json:"sourceIds"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

type FetchSectionsResponse struct {
	Sections []*SectionResponse `json:"sections"`
}
