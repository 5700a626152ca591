package dto

import (
	"time"

	"github.com/google/uuid"
)

// IngestKnowledgeRequest is the JSON body of POST /api/knowledge/store for
// the website and text branches. Uploads arrive as multipart instead.
type IngestKnowledgeRequest struct {
	Type    string `json:"type" validate:"required"`
	Url     string `json:"url"`
	Title   string `json:"title"`
	Content string `json:"content"`
}

// IngestKnowledgeInput is the tagged union handed to the ingestion service;
// exactly one branch is populated depending on Type.
type IngestKnowledgeInput struct {
	Type     string
	Url      string
	Title    string
	Content  string
	CSVData  []byte
	FileName string
}

type ParsedCSVResult struct {
	Rows      []map[string]string `json:"rows"`
	TotalRows int                 `json:"totalRows"`
	FirstTen  []map[string]string `json:"firstTen"`
}

type KnowledgeSourceResponse struct {
	Id        uuid.UUID `json:"id"`
	UserEmail string    `json:"userEmail"`
	Type      string    `json:"type"`
	Name      string    `json:"name"`
	SourceUrl *string   `json:"sourceUrl,omitempty"`
	Content   string    `json:"content"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type FetchKnowledgeResponse struct {
	Sources []*KnowledgeSourceResponse `json:"sources"`
}

type StoreKnowledgeResponse struct {
	Source *KnowledgeSourceResponse `json:"source"`
}

// PublishKnowledgeIngestedMessage is the wire payload of the ingestion audit
// event.
type PublishKnowledgeIngestedMessage struct {
	SourceId   uuid.UUID `json:"source_id"`
	OwnerEmail string    `json:"owner_email"`
	SourceType string    `json:"source_type"`
}
