package entity

import (
	"time"

	"github.com/google/uuid"
)

type KnowledgeType string
type KnowledgeStatus string

const (
	KnowledgeTypeUpload  KnowledgeType = "upload"
	KnowledgeTypeWebsite KnowledgeType = "website"
	KnowledgeTypeText    KnowledgeType = "text"

	KnowledgeStatusActive     KnowledgeStatus = "active"
	KnowledgeStatusProcessing KnowledgeStatus = "processing"
	KnowledgeStatusError      KnowledgeStatus = "error"
)

// KnowledgeSource is one normalized piece of business knowledge. Immutable
// after creation except for Status.
type KnowledgeSource struct {
	Id        uuid.UUID
	UserEmail string
	Type      KnowledgeType
	Name      string
	SourceUrl *string
	Content   string
	Status    KnowledgeStatus
	CreatedAt time.Time
	UpdatedAt time.Time
}
