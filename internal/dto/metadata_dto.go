package dto

import (
	"time"

	"github.com/google/uuid"
)

type StoreMetadataRequest struct {
	BusinessName  string            `json:"business_name" validate:"required"`
	WebsiteUrl    string            `json:"website_url" validate:"required"`
	ExternalLinks map[string]string `json:"external_links"`
}

type MetadataData struct {
	Id            uuid.UUID         `json:"id"`
	UserEmail     string            `json:"userEmail"`
	BusinessName  string            `json:"businessName"`
	WebsiteUrl    string            `json:"websiteUrl"`
	ExternalLinks map[string]string `json:"externalLinks,omitempty"`
	CreatedAt     time.Time         `json:"createdAt"`
	UpdatedAt     time.Time         `json:"updatedAt"`
}

// FetchMetadataResponse reports where the profile was served from; the
// database stays authoritative, "cache" only signals the read-through layer.
type FetchMetadataResponse struct {
	Exists bool          `json:"exists"`
	Source string        `json:"source,omitempty"`
	Data   *MetadataData `json:"data,omitempty"`
}
